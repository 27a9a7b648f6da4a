// Command fpu-sim simulates the arithmetic unit for one operand pair.
//
//	fpu-sim <result-path> <trace-path> <lhs-hex> <rhs-hex>
//
// It writes "0x%08x 0x%08x 0x%08x 0x%08x" (mul div add sub) to the result
// path and the waveform to the trace path. verify-fpu runs it once per pair
// when the simulator is configured as an external command.
package main

import (
	"fmt"
	"os"

	"github.com/tebeka/atexit"

	"github.com/sarchlab/fpdiff/config"
	"github.com/sarchlab/fpdiff/core"
	"github.com/sarchlab/fpdiff/fp"
	"github.com/sarchlab/fpdiff/oracle"
)

func run(resultPath, tracePath, lhsHex, rhsHex string) error {
	lhs, err := fp.ParseHex(lhsHex)
	if err != nil {
		return &config.StartupError{Err: err}
	}

	rhs, err := fp.ParseHex(rhsHex)
	if err != nil {
		return &config.StartupError{Err: err}
	}

	cfg, _, err := config.LoadFromEnv()
	if err != nil {
		return err
	}

	// The log file belongs to the run that spawned us.
	cfg.LogFile = ""
	err = config.SetupLogging(cfg)
	if err != nil {
		return err
	}

	d, err := config.NewBenchBuilder(cfg).WithTrace(true).BuildArith("FPUSim", tracePath)
	if err != nil {
		return err
	}

	inv := oracle.Invocation{
		ResultPath: resultPath,
		TracePath:  tracePath,
		LHS:        lhs,
		RHS:        rhs,
	}

	r, err := oracle.Simulate(d, inv)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		core.PrintState(os.Stdout, "FPUSim", d.Unit())
	}

	return oracle.WriteResult(resultPath, r)
}

func main() {
	if len(os.Args) != 5 {
		fmt.Printf("Usage: %s <result-path> <trace-path> <lhs-hex> <rhs-hex>\n", os.Args[0])
		atexit.Exit(1)
	}

	err := run(os.Args[1], os.Args[2], os.Args[3], os.Args[4])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	atexit.Exit(config.ExitCode(err))
}
