// Package vector holds the edge-case test-vector catalogue.
//
// The catalogue owns the canonical ordering of test values; report rows and
// columns follow it. Every function returns a fresh slice, so callers may
// iterate, mutate or re-request the catalogue freely.
package vector

import "github.com/sarchlab/fpdiff/fp"

// Theme selects a float catalogue.
type Theme int

const (
	// ThemeArith is the catalogue for the pairwise arithmetic matrix.
	ThemeArith Theme = iota
	// ThemeConvert is the catalogue for the float-to-integer bench.
	ThemeConvert
)

// Name returns the name of the theme.
func (t Theme) Name() string {
	switch t {
	case ThemeArith:
		return "arith"
	case ThemeConvert:
		return "convert"
	default:
		panic("invalid theme")
	}
}

var arith = []fp.Value{
	fp.QNaN,
	fp.NegQNaN,
	fp.PosInf,
	fp.NegInf,
	fp.PosZero,
	fp.NegZero,
	fp.One,
	fp.NegOne,
	fp.MaxNormal,
	fp.MaxNormal | fp.SignMask,
	fp.MinSubnormal,
	fp.MinSubnormal | fp.SignMask,
}

// 129 sits just past the 8-bit boundary and needs rounding-free truncation.
var convertExtra = []fp.Value{
	0x43010000,
	0xc3010000,
}

var ints = []int32{
	0,
	-1,
	128,
	129,
	-400000,
	2000000000,
	-21005040,
	-2147483648,
	2147483647,
}

// Floats returns the float catalogue of the theme.
func Floats(theme Theme) []fp.Value {
	switch theme {
	case ThemeArith:
		return append([]fp.Value(nil), arith...)
	case ThemeConvert:
		out := make([]fp.Value, 0, len(arith)+len(convertExtra))
		out = append(out, arith[:8]...)
		out = append(out, convertExtra...)
		out = append(out, arith[8:]...)
		return out
	default:
		panic("invalid theme")
	}
}

// Ints returns the integer catalogue of the conversion bench.
func Ints() []int32 {
	return append([]int32(nil), ints...)
}

// Ops returns the arithmetic operations in report order.
func Ops() []fp.Op {
	return []fp.Op{fp.Mul, fp.Div, fp.Add, fp.Sub}
}

// FloatConversions returns the float-input conversions.
func FloatConversions() []fp.Conversion {
	return []fp.Conversion{fp.FloatToInt, fp.FloatToUint}
}

// IntConversions returns the integer-input conversions.
func IntConversions() []fp.Conversion {
	return []fp.Conversion{fp.IntToFloat, fp.UintToFloat}
}

// Pair is the input of one arithmetic invocation.
type Pair struct {
	LHS, RHS fp.Value
}

// Key returns the cache key of the pair, e.g. 0x3f800000/0x00000000.
func (p Pair) Key() string {
	return p.LHS.Hex() + "/" + p.RHS.Hex()
}

// Pairs expands values into their row-major cross product: the pair at
// index i*len(values)+j has LHS values[i] and RHS values[j].
func Pairs(values []fp.Value) []Pair {
	pairs := make([]Pair, 0, len(values)*len(values))
	for _, lhs := range values {
		for _, rhs := range values {
			pairs = append(pairs, Pair{LHS: lhs, RHS: rhs})
		}
	}

	return pairs
}

// Tokens formats every value of the catalogue.
func Tokens(values []fp.Value) []string {
	tokens := make([]string, len(values))
	for i, v := range values {
		tokens[i] = fp.Format(v)
	}

	return tokens
}
