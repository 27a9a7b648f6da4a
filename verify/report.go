package verify

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sarchlab/fpdiff/fp"
	"github.com/sarchlab/fpdiff/vector"
)

// Names of the report files written by SaveToDir.
const (
	ExpectedFile   = "expected.csv"
	ResultFile     = "result.csv"
	DifferenceFile = "difference.csv"
)

// WriteCSV writes the matrices as ;-separated tables. Every block starts with
// a blank line and a header row holding the operation symbol and the column
// tokens. Tokens are quoted; labels are not.
func WriteCSV(w io.Writer, matrices []Matrix) error {
	var b strings.Builder

	for _, m := range matrices {
		b.WriteString("\n")
		b.WriteString(quote(m.Op.Symbol()))
		for _, c := range m.Columns {
			b.WriteString(";" + quote(c))
		}
		b.WriteString("\n")

		for i, row := range m.Rows {
			b.WriteString(quote(row))
			for _, cell := range m.Cells[i] {
				if !m.Labels {
					cell = quote(cell)
				}
				b.WriteString(";" + cell)
			}
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func quote(s string) string {
	return `"` + s + `"`
}

// RenderMatrix renders one matrix as an aligned table.
func RenderMatrix(m Matrix, title string) string {
	t := table.NewWriter()
	t.SetTitle(title)

	header := table.Row{m.Op.Symbol()}
	for _, c := range m.Columns {
		header = append(header, c)
	}
	t.AppendHeader(header)

	for i, row := range m.Rows {
		r := table.Row{row}
		for _, cell := range m.Cells[i] {
			r = append(r, cell)
		}
		t.AppendRow(r)
	}

	return t.Render()
}

// WriteSummary writes the number of divergences of every operation.
func (r *Report) WriteSummary(w io.Writer) {
	fmt.Fprintln(w, "Number of differences:")
	for _, op := range vector.Ops() {
		fmt.Fprintf(w, "%s: %d\n", op.Title(), r.Counters.Count(op))
	}
}

// WriteReport writes the difference tables, the divergence list and the
// summary for a reader.
func (r *Report) WriteReport(w io.Writer) {
	for _, m := range r.Difference {
		fmt.Fprintln(w, RenderMatrix(m, fmt.Sprintf("Differences (%s)", m.Op.Title())))
		fmt.Fprintln(w)
	}

	if len(r.Divergences) > 0 {
		t := table.NewWriter()
		t.SetTitle("Divergences")
		t.AppendHeader(table.Row{"Op", "LHS", "RHS", "Expected", "Got", "Category"})
		for _, d := range r.Divergences {
			t.AppendRow(table.Row{
				d.Op.Symbol(),
				fp.Format(d.LHS),
				fp.Format(d.RHS),
				d.Expected.Hex(),
				d.Got.Hex(),
				d.Category.String(),
			})
		}
		fmt.Fprintln(w, t.Render())
		fmt.Fprintln(w)
	}

	r.WriteSummary(w)
}

// SaveToDir writes the expected, result and difference tables to dir.
func (r *Report) SaveToDir(dir string) error {
	files := []struct {
		name     string
		matrices []Matrix
	}{
		{ExpectedFile, r.Expected},
		{ResultFile, r.Result},
		{DifferenceFile, r.Difference},
	}

	for _, f := range files {
		err := saveCSV(filepath.Join(dir, f.name), f.matrices)
		if err != nil {
			return err
		}
	}

	return nil
}

func saveCSV(path string, matrices []Matrix) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}

	err = WriteCSV(file, matrices)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("failed to write report file %s: %w", path, err)
	}

	return nil
}
