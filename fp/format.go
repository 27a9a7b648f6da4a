package fp

import (
	"fmt"
	"math"
)

const logThreshold = 65536

// Format converts v into a canonical, diff-friendly token.
//
// Zeros render as "+0" and "-0". Finite values with magnitude >= 65536 or
// below 1 render as "±2^E" with E = floor(log2|v|). Everything else uses the
// signed fixed-point form ("+1.000000", "+Inf", "-NaN").
func Format(v Value) string {
	switch {
	case v == NegZero:
		return "-0"
	case v == PosZero:
		return "+0"
	case v.IsNaN():
		return signOf(v) + "NaN"
	}

	f := float64(v.Float32())
	mag := math.Abs(f)
	if v.IsFinite() && (mag >= logThreshold || mag < 1) {
		return fmt.Sprintf("%s2^%d", signOf(v), Log2Floor(v))
	}

	return fmt.Sprintf("%+f", f)
}

// Log2Floor returns floor(log2|v|) computed from the binary exponent. The
// result is meaningless for zeros, infinities and NaNs.
func Log2Floor(v Value) int {
	_, exp := math.Frexp(math.Abs(float64(v.Float32())))
	return exp - 1
}

// FormatInt renders a signed conversion operand or result, e.g. "-1".
func FormatInt(i int32) string {
	return fmt.Sprintf("%+d", i)
}

// FormatUint renders an unsigned conversion operand or result, e.g. "+1".
func FormatUint(u uint32) string {
	return fmt.Sprintf("+%d", u)
}

func signOf(v Value) string {
	if v.Negative() {
		return "-"
	}
	return "+"
}
