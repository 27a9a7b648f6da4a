package verify

import (
	"github.com/sarchlab/fpdiff/fp"
	"github.com/sarchlab/fpdiff/vector"
)

// Matrix is the table of one operation over the catalogue. The cell at
// Cells[i][j] belongs to the row value i as left operand and the column value
// j as right operand.
type Matrix struct {
	Op      fp.Op
	Columns []string
	Rows    []string
	Cells   [][]string

	// Labels marks a difference matrix. Its cells are category labels and
	// are written without quotes.
	Labels bool
}

// NewMatrix creates an empty matrix of the operation over values.
func NewMatrix(op fp.Op, values []fp.Value, labels bool) Matrix {
	m := Matrix{
		Op:      op,
		Columns: vector.Tokens(values),
		Rows:    vector.Tokens(values),
		Cells:   make([][]string, len(values)),
		Labels:  labels,
	}

	for i := range m.Cells {
		m.Cells[i] = make([]string, len(values))
	}

	return m
}
