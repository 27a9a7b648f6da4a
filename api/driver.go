// Package api defines the driver that runs a simulated unit in-process.
package api

import (
	"fmt"
	"sort"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/fpdiff/core"
	"github.com/sarchlab/fpdiff/dut"
)

// Driver applies inputs to a unit, lets it settle and reads its outputs.
type Driver interface {
	// Step writes the given input registers, evaluates the unit and returns
	// a snapshot of every output register. A clocked unit is toggled until
	// it signals completion or the half-cycle budget runs out; the outputs
	// are read once, after the last toggle. A unit that has already finished
	// is only evaluated, without a clock edge, so a clocked unit keeps
	// returning the outputs it finished with. Build a new driver per input.
	Step(inputs map[string]uint32) (map[string]uint32, error)

	// Unit returns the driven unit.
	Unit() dut.Unit

	// HalfCycles returns the number of clock toggles of the last step.
	HalfCycles() int

	// Close closes the trace and reports the first error it met.
	Close() error
}

type driverImpl struct {
	*sim.TickingComponent

	unit          dut.Unit
	trace         dut.Trace
	maxHalfCycles int

	clk        uint32
	halfCycles int
	samples    uint64
}

// Tick toggles the clock of the unit once.
func (d *driverImpl) Tick() (madeProgress bool) {
	if d.halfCycles >= d.maxHalfCycles || d.unit.GotFinish() {
		return false
	}

	d.clk ^= 1
	d.unit.Set(dut.PortClk, d.clk)
	d.unit.Eval()
	d.sample()
	d.halfCycles++

	core.Trace("HalfCycle",
		"Driver", d.Name(),
		"Time", float64(d.Engine.CurrentTime()*1e9),
		"HalfCycle", d.halfCycles,
		"Clk", d.clk,
	)

	return true
}

func (d *driverImpl) sample() {
	d.trace.Dump(d.samples*10, d.unit)
	d.samples++
}

func (d *driverImpl) Step(inputs map[string]uint32) (map[string]uint32, error) {
	names := make([]string, 0, len(inputs))
	for name := range inputs {
		if name == dut.PortClk || !dut.HasPort(d.unit, name, false) {
			return nil, fmt.Errorf("%s: unknown input port %q", d.Name(), name)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		d.unit.Set(name, inputs[name])
	}

	if d.maxHalfCycles == 0 || d.unit.GotFinish() {
		d.halfCycles = 0
		d.unit.Eval()
		d.sample()

		return dut.Outputs(d.unit), nil
	}

	d.halfCycles = 0
	d.TickLater()

	err := d.Engine.Run()
	if err != nil {
		return nil, fmt.Errorf("%s: simulation failed: %w", d.Name(), err)
	}

	return dut.Outputs(d.unit), nil
}

func (d *driverImpl) Unit() dut.Unit {
	return d.unit
}

func (d *driverImpl) HalfCycles() int {
	return d.halfCycles
}

func (d *driverImpl) Close() error {
	return d.trace.Close()
}
