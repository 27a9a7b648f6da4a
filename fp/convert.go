package fp

import "math"

// Conversion is a single-operand conversion between floats and integers.
type Conversion int

// The conversions, in bench column order.
const (
	FloatToInt Conversion = iota
	FloatToUint
	IntToFloat
	UintToFloat
)

// Port returns the output role of the conversion.
func (c Conversion) Port() string {
	switch c {
	case FloatToInt:
		return "ftoi"
	case FloatToUint:
		return "ftoui"
	case IntToFloat:
		return "itof"
	case UintToFloat:
		return "uitof"
	default:
		panic("invalid conversion")
	}
}

func (c Conversion) String() string {
	return c.Port()
}

// Apply computes the reference output bits of the conversion for the given
// input bits. Integer inputs and outputs are carried as raw 32-bit words.
func (c Conversion) Apply(in uint32) uint32 {
	switch c {
	case FloatToInt:
		return uint32(ToInt32(Value(in)))
	case FloatToUint:
		return ToUint32(Value(in))
	case IntToFloat:
		return FromInt32(int32(in)).Bits()
	case UintToFloat:
		return FromUint32(in).Bits()
	default:
		panic("invalid conversion")
	}
}

// ToInt32 truncates v toward zero. NaN and values above the range saturate to
// MaxInt32, values below the range saturate to MinInt32.
func ToInt32(v Value) int32 {
	if v.IsNaN() {
		return math.MaxInt32
	}

	t := math.Trunc(float64(v.Float32()))
	switch {
	case t > math.MaxInt32:
		return math.MaxInt32
	case t < math.MinInt32:
		return math.MinInt32
	}

	return int32(t)
}

// ToUint32 truncates v toward zero. NaN and values above the range saturate to
// MaxUint32, negative values saturate to zero.
func ToUint32(v Value) uint32 {
	if v.IsNaN() {
		return math.MaxUint32
	}

	t := math.Trunc(float64(v.Float32()))
	switch {
	case t > math.MaxUint32:
		return math.MaxUint32
	case t < 0:
		return 0
	}

	return uint32(t)
}

// FromInt32 converts a signed integer with round-to-nearest-even.
func FromInt32(i int32) Value {
	return FromFloat32(float32(i))
}

// FromUint32 converts an unsigned integer with round-to-nearest-even.
func FromUint32(u uint32) Value {
	return FromFloat32(float32(u))
}
