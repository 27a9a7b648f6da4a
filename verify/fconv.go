package verify

import (
	"fmt"
	"io"
	"strings"

	"github.com/sarchlab/fpdiff/api"
	"github.com/sarchlab/fpdiff/dut"
	"github.com/sarchlab/fpdiff/fp"
)

// ConversionTable is the outcome of a conversion bench. Header names the
// columns; every row holds formatted cells.
type ConversionTable struct {
	Header     []string
	Rows       [][]string
	Mismatches []ConversionMismatch
}

// ConversionMismatch is a conversion whose output differs from the reference.
type ConversionMismatch struct {
	Conversion fp.Conversion
	Input      uint32
	Expected   uint32
	Got        uint32
}

func (m ConversionMismatch) String() string {
	return fmt.Sprintf("%s(0x%08x): expected 0x%08x, got 0x%08x",
		m.Conversion, m.Input, m.Expected, m.Got)
}

// RunFloatToInt drives the converter with every float and compares its
// integer outputs with the saturating reference conversions.
func RunFloatToInt(d api.Driver, values []fp.Value) (*ConversionTable, error) {
	t := &ConversionTable{
		Header: []string{"float", "exp", "uexp", "res", "ures"},
	}

	for _, v := range values {
		out, err := d.Step(map[string]uint32{dut.PortVal: v.Bits()})
		if err != nil {
			return nil, err
		}

		exp := uint32(fp.ToInt32(v))
		uexp := fp.ToUint32(v)
		res := out[dut.PortFtoi]
		ures := out[dut.PortFtoui]

		t.Rows = append(t.Rows, []string{
			fp.Format(v),
			fp.FormatInt(int32(exp)),
			fp.FormatUint(uexp),
			fp.FormatInt(int32(res)),
			fp.FormatUint(ures),
		})

		t.check(fp.FloatToInt, v.Bits(), exp, res)
		t.check(fp.FloatToUint, v.Bits(), uexp, ures)
	}

	return t, nil
}

// RunIntToFloat drives the converter with every integer, read both as signed
// and as unsigned, and compares its float outputs with the reference.
func RunIntToFloat(d api.Driver, values []int32) (*ConversionTable, error) {
	t := &ConversionTable{
		Header: []string{"int", "uint", "exp", "uexp", "res", "ures"},
	}

	for _, i := range values {
		in := uint32(i)

		out, err := d.Step(map[string]uint32{dut.PortVal: in})
		if err != nil {
			return nil, err
		}

		exp := fp.FromInt32(i)
		uexp := fp.FromUint32(in)
		res := fp.Value(out[dut.PortItof])
		ures := fp.Value(out[dut.PortUitof])

		t.Rows = append(t.Rows, []string{
			fp.FormatInt(i),
			fp.FormatUint(in),
			fp.Format(exp),
			fp.Format(uexp),
			fp.Format(res),
			fp.Format(ures),
		})

		t.check(fp.IntToFloat, in, exp.Bits(), res.Bits())
		t.check(fp.UintToFloat, in, uexp.Bits(), ures.Bits())
	}

	return t, nil
}

func (t *ConversionTable) check(c fp.Conversion, in, exp, got uint32) {
	if exp == got {
		return
	}

	t.Mismatches = append(t.Mismatches, ConversionMismatch{
		Conversion: c,
		Input:      in,
		Expected:   exp,
		Got:        got,
	})
}

// WriteCSV writes the table with a bare header row and quoted cells.
func (t *ConversionTable) WriteCSV(w io.Writer) error {
	var b strings.Builder

	b.WriteString(strings.Join(t.Header, ";"))
	b.WriteString("\n")
	for _, row := range t.Rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteString(";")
			}
			b.WriteString(quote(cell))
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())

	return err
}
