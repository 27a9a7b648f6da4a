package api

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/fpdiff/dut"
)

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	engine        sim.Engine
	freq          sim.Freq
	unit          dut.Unit
	trace         dut.Trace
	maxHalfCycles int
}

// WithEngine sets the engine.
func (b DriverBuilder) WithEngine(engine sim.Engine) DriverBuilder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the driver. Every tick is one half cycle of
// the unit clock.
func (b DriverBuilder) WithFreq(freq sim.Freq) DriverBuilder {
	b.freq = freq
	return b
}

// WithUnit sets the unit to drive.
func (b DriverBuilder) WithUnit(unit dut.Unit) DriverBuilder {
	b.unit = unit
	return b
}

// WithTrace sets the waveform sink. The driver owns it and closes it on
// Close.
func (b DriverBuilder) WithTrace(trace dut.Trace) DriverBuilder {
	b.trace = trace
	return b
}

// WithMaxHalfCycles bounds the clock toggles of one step. Zero drives the
// unit as a combinational design.
func (b DriverBuilder) WithMaxHalfCycles(n int) DriverBuilder {
	if n < 0 {
		panic("max half cycles cannot be negative")
	}
	b.maxHalfCycles = n
	return b
}

// Build create a driver.
func (b DriverBuilder) Build(name string) Driver {
	if b.unit == nil {
		panic("driver needs a unit")
	}

	if b.maxHalfCycles > 0 && !dut.HasPort(b.unit, dut.PortClk, false) {
		panic("clocked driver needs a unit with a clock input")
	}

	if b.engine == nil {
		b.engine = sim.NewSerialEngine()
	}

	if b.freq == 0 {
		b.freq = 1 * sim.GHz
	}

	if b.trace == nil {
		b.trace = dut.Discard
	}

	d := &driverImpl{
		unit:          b.unit,
		trace:         b.trace,
		maxHalfCycles: b.maxHalfCycles,
	}

	d.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, d)

	return d
}
