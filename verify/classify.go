package verify

import (
	"sync/atomic"

	"github.com/sarchlab/fpdiff/fp"
)

// Category is the kind of disagreement between a reference result and the
// result of the unit under test.
type Category int

const (
	// CategoryMatch means the bit patterns are identical.
	CategoryMatch Category = iota
	// CategorySign means the results differ only in the sign bit, or are
	// NaNs of opposite sign.
	CategorySign
	// CategoryNaNEncoding means both results are NaNs of the same sign with
	// different payloads. It is not counted as a divergence.
	CategoryNaNEncoding
	// CategoryInfNaN means one result is NaN and the other is infinite.
	CategoryInfNaN
	// CategoryValue is any other difference.
	CategoryValue
)

func (c Category) String() string {
	switch c {
	case CategoryMatch:
		return "match"
	case CategorySign:
		return "sign"
	case CategoryNaNEncoding:
		return "nan-encoding"
	case CategoryInfNaN:
		return "inf-nan-transposition"
	case CategoryValue:
		return "value"
	default:
		panic("invalid category")
	}
}

// Counted reports whether the category counts as a divergence.
func (c Category) Counted() bool {
	return c != CategoryMatch && c != CategoryNaNEncoding
}

// Classify compares the reference result ref with the result got of the unit
// under test. Every pair of bit patterns falls into exactly one category.
func Classify(ref, got fp.Value) Category {
	switch {
	case ref == got:
		return CategoryMatch
	case ref.IsNaN() && got.IsNaN():
		if (ref^got)&fp.SignMask != 0 {
			return CategorySign
		}
		return CategoryNaNEncoding
	case ref == got.FlipSign():
		return CategorySign
	case ref.IsNaN() && got.IsInf(), ref.IsInf() && got.IsNaN():
		return CategoryInfNaN
	default:
		return CategoryValue
	}
}

// Label returns the cell text of the difference report. A match is blank.
func Label(ref, got fp.Value) string {
	switch Classify(ref, got) {
	case CategoryMatch:
		return ""
	case CategorySign:
		return "sign"
	case CategoryNaNEncoding:
		return "enc"
	case CategoryInfNaN:
		if ref.IsNaN() {
			return "nan/inf"
		}
		return "inf/nan"
	default:
		return "value"
	}
}

// Counters holds the number of counted divergences per operation. It is safe
// for concurrent use.
type Counters struct {
	counts [fp.NumOps]atomic.Int64
}

// Record classifies one result and counts it when it diverges.
func (c *Counters) Record(op fp.Op, ref, got fp.Value) Category {
	cat := Classify(ref, got)
	if cat.Counted() {
		c.counts[op].Add(1)
	}

	return cat
}

// Count returns the number of divergences of the operation.
func (c *Counters) Count(op fp.Op) int64 {
	return c.counts[op].Load()
}

// Total returns the number of divergences over all operations.
func (c *Counters) Total() int64 {
	var total int64
	for op := fp.Op(0); op < fp.NumOps; op++ {
		total += c.Count(op)
	}

	return total
}
