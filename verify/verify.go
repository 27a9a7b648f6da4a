// Package verify compares the floating-point unit under test with a software
// reference.
//
// # Matrix run
//
// Run evaluates mul, div, add and sub over the cross product of a value
// catalogue. The reference result is computed with float32 arithmetic; the
// result of the unit comes from an Oracle, normally an *oracle.Oracle that
// runs the simulation out of process and caches it on disk.
//
//	o := oracle.NewBuilder().
//		WithExecutor(oracle.ProcessExecutor{Command: []string{"build/fpu-sim"}}).
//		WithCacheDir("build").
//		Build()
//	report, err := verify.Run(ctx, o, vector.Floats(vector.ThemeArith))
//	if err != nil {
//		return err
//	}
//	report.SaveToDir("build")
//	report.WriteSummary(os.Stdout)
//
// # Classification
//
// Every pair of results falls into exactly one category, checked in order:
//
//   - match: identical bit patterns
//   - sign: two NaNs of opposite sign, whatever their payload
//   - nan-encoding: two NaNs of the same sign (not counted)
//   - sign: the patterns differ only in the sign bit
//   - inf-nan-transposition: one NaN, one infinity
//   - value: anything else
//
// # Reports
//
// SaveToDir writes expected.csv, result.csv and difference.csv. Each holds
// one block per operation: a blank line, a header row with the operation
// symbol and the column tokens, and one row per left operand. Cells are
// separated by ';'. Tokens are quoted, difference labels are not.
//
// # Conversion benches
//
// RunFloatToInt and RunIntToFloat drive a combinational converter through an
// api.Driver and tabulate its outputs next to the saturating reference
// conversions.
package verify
