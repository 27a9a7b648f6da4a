package core

import (
	"fmt"

	"github.com/sarchlab/fpdiff/fp"
)

// A Quirk is a known hardware defect the software models can reproduce.
type Quirk string

const (
	// QuirkSignedZeroAdd makes the sum of opposite zeros, and the difference
	// of equal zeros, negative.
	QuirkSignedZeroAdd Quirk = "signed-zero-add"

	// QuirkCanonicalNaN replaces every NaN result with 0x7fc00000.
	QuirkCanonicalNaN Quirk = "canonical-nan"

	// QuirkFlushSubnormal flushes subnormal operands and results to a zero of
	// the same sign.
	QuirkFlushSubnormal Quirk = "flush-subnormal"

	// QuirkDivZeroNaN makes division of a non-NaN by zero return NaN instead
	// of infinity.
	QuirkDivZeroNaN Quirk = "div-zero-nan"
)

// Quirks lists every known quirk.
func Quirks() []Quirk {
	return []Quirk{
		QuirkSignedZeroAdd,
		QuirkCanonicalNaN,
		QuirkFlushSubnormal,
		QuirkDivZeroNaN,
	}
}

// ParseQuirk returns the quirk with the given name.
func ParseQuirk(name string) (Quirk, error) {
	for _, q := range Quirks() {
		if string(q) == name {
			return q, nil
		}
	}

	return "", fmt.Errorf("unknown quirk %q", name)
}

type quirkSet struct {
	signedZeroAdd  bool
	canonicalNaN   bool
	flushSubnormal bool
	divZeroNaN     bool
}

func newQuirkSet(quirks []Quirk) quirkSet {
	var s quirkSet
	for _, q := range quirks {
		switch q {
		case QuirkSignedZeroAdd:
			s.signedZeroAdd = true
		case QuirkCanonicalNaN:
			s.canonicalNaN = true
		case QuirkFlushSubnormal:
			s.flushSubnormal = true
		case QuirkDivZeroNaN:
			s.divZeroNaN = true
		default:
			panic(fmt.Sprintf("unknown quirk %q", q))
		}
	}

	return s
}

func (s quirkSet) operand(v fp.Value) fp.Value {
	if s.flushSubnormal && v.IsSubnormal() {
		return v & fp.SignMask
	}

	return v
}

func (s quirkSet) result(op fp.Op, lhs, rhs, r fp.Value) fp.Value {
	if s.signedZeroAdd && lhs.IsZero() && rhs.IsZero() {
		if (op == fp.Add && lhs != rhs) || (op == fp.Sub && lhs == rhs) {
			r = fp.NegZero
		}
	}

	if s.divZeroNaN && op == fp.Div && rhs.IsZero() && r.IsInf() {
		r = fp.QNaN
	}

	if s.flushSubnormal && r.IsSubnormal() {
		r &= fp.SignMask
	}

	if s.canonicalNaN && r.IsNaN() {
		r = fp.QNaN
	}

	return r
}
