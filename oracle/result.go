package oracle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sarchlab/fpdiff/fp"
)

// Result holds the outputs of one simulation, in the order they are written
// to the result file.
type Result struct {
	Mul, Div, Add, Sub fp.Value
}

// Get returns the output of the given operation.
func (r Result) Get(op fp.Op) fp.Value {
	switch op {
	case fp.Mul:
		return r.Mul
	case fp.Div:
		return r.Div
	case fp.Add:
		return r.Add
	case fp.Sub:
		return r.Sub
	default:
		panic("invalid op")
	}
}

// String formats the result as one line of the result file, without the line
// break.
func (r Result) String() string {
	return fmt.Sprintf("%s %s %s %s", r.Mul.Hex(), r.Div.Hex(), r.Add.Hex(), r.Sub.Hex())
}

// ParseResult parses the content of a result file.
func ParseResult(s string) (Result, error) {
	fields := strings.Fields(s)
	if len(fields) != fp.NumOps {
		return Result{}, fmt.Errorf("%w: expected %d fields, got %d",
			ErrMalformedResult, fp.NumOps, len(fields))
	}

	var words [fp.NumOps]fp.Value
	for i, f := range fields {
		v, err := parseWord(f)
		if err != nil {
			return Result{}, err
		}
		words[i] = v
	}

	return Result{
		Mul: words[fp.Mul],
		Div: words[fp.Div],
		Add: words[fp.Add],
		Sub: words[fp.Sub],
	}, nil
}

func parseWord(f string) (fp.Value, error) {
	if len(f) != 10 || !strings.HasPrefix(f, "0x") {
		return 0, fmt.Errorf("%w: bad word %q", ErrMalformedResult, f)
	}

	v, err := strconv.ParseUint(f[2:], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: bad word %q", ErrMalformedResult, f)
	}

	return fp.Value(v), nil
}
