package verify

import (
	"context"
	"fmt"

	"github.com/sarchlab/fpdiff/core"
	"github.com/sarchlab/fpdiff/fp"
	"github.com/sarchlab/fpdiff/oracle"
	"github.com/sarchlab/fpdiff/vector"
)

// Oracle provides the results of the unit under test.
type Oracle interface {
	Prefetch(ctx context.Context, pairs []vector.Pair) error
	Query(ctx context.Context, lhs, rhs fp.Value) (oracle.Result, error)
}

// Divergence is one counted disagreement.
type Divergence struct {
	Op       fp.Op
	LHS, RHS fp.Value
	Expected fp.Value
	Got      fp.Value
	Category Category
}

func (d Divergence) String() string {
	return fmt.Sprintf("%s %s %s: expected %s (%s), got %s (%s): %s",
		fp.Format(d.LHS), d.Op.Symbol(), fp.Format(d.RHS),
		fp.Format(d.Expected), d.Expected.Hex(),
		fp.Format(d.Got), d.Got.Hex(),
		d.Category)
}

// Report is the outcome of a matrix run. Its matrices are indexed by
// operation.
type Report struct {
	Values      []fp.Value
	Expected    []Matrix
	Result      []Matrix
	Difference  []Matrix
	Divergences []Divergence
	Counters    *Counters
}

func newReport(values []fp.Value) *Report {
	r := &Report{
		Values:   values,
		Counters: &Counters{},
	}

	for _, op := range vector.Ops() {
		r.Expected = append(r.Expected, NewMatrix(op, values, false))
		r.Result = append(r.Result, NewMatrix(op, values, false))
		r.Difference = append(r.Difference, NewMatrix(op, values, true))
	}

	return r
}

// Run computes every operation over the cross product of values, in software
// and through the oracle, and classifies the differences. The oracle cache is
// filled first; the tables are then built in catalogue order.
func Run(ctx context.Context, o Oracle, values []fp.Value) (*Report, error) {
	err := o.Prefetch(ctx, vector.Pairs(values))
	if err != nil {
		return nil, err
	}

	r := newReport(values)
	for i, lhs := range values {
		for j, rhs := range values {
			res, err := o.Query(ctx, lhs, rhs)
			if err != nil {
				return nil, err
			}

			r.record(i, j, lhs, rhs, res)
		}
	}

	return r, nil
}

func (r *Report) record(i, j int, lhs, rhs fp.Value, res oracle.Result) {
	for _, op := range vector.Ops() {
		ref := op.Apply(lhs, rhs)
		got := res.Get(op)

		r.Expected[op].Cells[i][j] = fp.Format(ref)
		r.Result[op].Cells[i][j] = fp.Format(got)
		r.Difference[op].Cells[i][j] = Label(ref, got)

		cat := r.Counters.Record(op, ref, got)
		if !cat.Counted() {
			continue
		}

		d := Divergence{
			Op:       op,
			LHS:      lhs,
			RHS:      rhs,
			Expected: ref,
			Got:      got,
			Category: cat,
		}
		r.Divergences = append(r.Divergences, d)

		core.Trace("Divergence",
			"Op", op.Name(),
			"LHS", lhs.Hex(),
			"RHS", rhs.Hex(),
			"Expected", ref.Hex(),
			"Got", got.Hex(),
			"Category", cat.String(),
		)
	}
}
