package oracle

import (
	"context"
	"fmt"
	"os"

	"github.com/sarchlab/fpdiff/api"
	"github.com/sarchlab/fpdiff/dut"
	"github.com/sarchlab/fpdiff/fp"
)

// DriverExecutor runs the simulation in-process. NewDriver is called once per
// invocation with the trace path of the pair and must return a driver over a
// fresh arithmetic unit.
type DriverExecutor struct {
	NewDriver func(tracePath string) (api.Driver, error)
}

func (e DriverExecutor) Run(ctx context.Context, inv Invocation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	d, err := e.NewDriver(inv.TracePath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSimulationFailed, err)
	}

	r, err := Simulate(d, inv)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSimulationFailed, err)
	}

	return WriteResult(inv.ResultPath, r)
}

// Simulate applies the operands of the invocation to the driver, reads the
// four results and closes the driver.
func Simulate(d api.Driver, inv Invocation) (Result, error) {
	out, err := d.Step(map[string]uint32{
		dut.PortLHS: inv.LHS.Bits(),
		dut.PortRHS: inv.RHS.Bits(),
	})

	closeErr := d.Close()
	if err != nil {
		return Result{}, err
	}
	if closeErr != nil {
		return Result{}, closeErr
	}

	return Result{
		Mul: fp.Value(out[dut.PortMul]),
		Div: fp.Value(out[dut.PortDiv]),
		Add: fp.Value(out[dut.PortAdd]),
		Sub: fp.Value(out[dut.PortSub]),
	}, nil
}

// WriteResult writes r as a result file at path.
func WriteResult(path string, r Result) error {
	err := os.WriteFile(path, []byte(r.String()+"\n"), 0o644)
	if err != nil {
		return fmt.Errorf("unable to write %s: %w", path, err)
	}

	return nil
}
