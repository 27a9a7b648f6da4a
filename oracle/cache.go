package oracle

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sarchlab/fpdiff/fp"
)

// Cache is the on-disk layout of simulation results. The result of lhs op rhs
// lives in <root>/<lhs>/<rhs>.txt, next to the waveform <rhs>.vcd, with both
// operands written as 0x%08x. Both files are written under a temporary name
// and renamed into place, so a reader never sees a partial file.
type Cache struct {
	Root string
}

// Dir returns the directory holding every result with the given left operand.
func (c Cache) Dir(lhs fp.Value) string {
	return filepath.Join(c.Root, lhs.Hex())
}

// ResultPath returns the path of the result file of the pair.
func (c Cache) ResultPath(lhs, rhs fp.Value) string {
	return filepath.Join(c.Dir(lhs), rhs.Hex()+".txt")
}

// TracePath returns the path of the waveform of the pair.
func (c Cache) TracePath(lhs, rhs fp.Value) string {
	return filepath.Join(c.Dir(lhs), rhs.Hex()+".vcd")
}

// Has reports whether a result file exists for the pair.
func (c Cache) Has(lhs, rhs fp.Value) (bool, error) {
	_, err := os.Stat(c.ResultPath(lhs, rhs))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

// Load reads and parses the result file of the pair.
func (c Cache) Load(lhs, rhs fp.Value) (Result, error) {
	data, err := os.ReadFile(c.ResultPath(lhs, rhs))
	if errors.Is(err, fs.ErrNotExist) {
		return Result{}, ErrMissingResult
	}
	if err != nil {
		return Result{}, err
	}

	return ParseResult(string(data))
}
