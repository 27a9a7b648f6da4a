// Package fp provides the bit-level view of IEEE-754 single-precision values
// used throughout the harness.
//
// Values are always carried as raw bit patterns (Value) and compared by bits,
// never by numeric equality, so that -0/+0 and distinct NaN encodings stay
// distinguishable. Conversion between a Value and a float32 goes through
// math.Float32bits and math.Float32frombits only.
package fp

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is the raw 32-bit encoding of a single-precision float.
type Value uint32

// Field masks and well-known encodings.
const (
	SignMask     Value = 0x80000000
	ExponentMask Value = 0x7f800000
	MantissaMask Value = 0x007fffff

	PosZero      Value = 0x00000000
	NegZero      Value = 0x80000000
	PosInf       Value = 0x7f800000
	NegInf       Value = 0xff800000
	QNaN         Value = 0x7fc00000
	NegQNaN      Value = 0xffc00000
	One          Value = 0x3f800000
	NegOne       Value = 0xbf800000
	MaxNormal    Value = 0x7f7fffff
	MinSubnormal Value = 0x00000001
)

// FromFloat32 reinterprets the bits of f.
func FromFloat32(f float32) Value {
	return Value(math.Float32bits(f))
}

// Float32 reinterprets v as a float32.
func (v Value) Float32() float32 {
	return math.Float32frombits(uint32(v))
}

// Bits returns the raw encoding.
func (v Value) Bits() uint32 {
	return uint32(v)
}

// IsNaN reports whether v encodes a NaN of either sign.
func (v Value) IsNaN() bool {
	return v&ExponentMask == ExponentMask && v&MantissaMask != 0
}

// IsInf reports whether v encodes an infinity of either sign.
func (v Value) IsInf() bool {
	return v&^SignMask == PosInf
}

// IsFinite reports whether v is neither NaN nor infinity.
func (v Value) IsFinite() bool {
	return v&ExponentMask != ExponentMask
}

// IsZero reports whether v is +0 or -0.
func (v Value) IsZero() bool {
	return v&^SignMask == 0
}

// IsSubnormal reports whether v is a nonzero denormalized number.
func (v Value) IsSubnormal() bool {
	return v&ExponentMask == 0 && v&MantissaMask != 0
}

// Negative reports whether the sign bit is set.
func (v Value) Negative() bool {
	return v&SignMask != 0
}

// FlipSign returns v with the sign bit inverted.
func (v Value) FlipSign() Value {
	return v ^ SignMask
}

// Abs returns v with the sign bit cleared.
func (v Value) Abs() Value {
	return v &^ SignMask
}

// Hex returns the fixed-width hexadecimal form, e.g. 0x3f800000.
func (v Value) Hex() string {
	return fmt.Sprintf("0x%08x", uint32(v))
}

func (v Value) String() string {
	return Format(v)
}

// ParseHex parses up to eight hexadecimal digits with an optional 0x prefix.
func ParseHex(s string) (Value, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if digits == "" || len(digits) > 8 {
		return 0, fmt.Errorf("invalid bit pattern %q", s)
	}

	bits, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid bit pattern %q: %w", s, err)
	}

	return Value(bits), nil
}
