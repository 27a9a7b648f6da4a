package config

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/fpdiff/api"
	"github.com/sarchlab/fpdiff/core"
	"github.com/sarchlab/fpdiff/dut"
	"github.com/sarchlab/fpdiff/oracle"
)

// BenchBuilder can build drivers over the software units.
type BenchBuilder struct {
	engine        sim.Engine
	freq          sim.Freq
	latency       int
	quirks        []core.Quirk
	maxHalfCycles int
	finish        bool
	trace         bool
}

// NewBenchBuilder creates a builder configured by cfg. The configuration must
// be valid.
func NewBenchBuilder(cfg Config) BenchBuilder {
	quirks, err := cfg.ParsedQuirks()
	if err != nil {
		panic(err)
	}

	return BenchBuilder{
		freq:          sim.Freq(cfg.FreqGHz) * sim.GHz,
		latency:       cfg.Latency,
		quirks:        quirks,
		maxHalfCycles: cfg.MaxHalfCycles,
		finish:        cfg.FinishOnSettle,
		trace:         cfg.Trace,
	}
}

// WithEngine sets the engine that drives the simulation. Without one, every
// driver gets its own serial engine.
func (b BenchBuilder) WithEngine(engine sim.Engine) BenchBuilder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the drivers.
func (b BenchBuilder) WithFreq(freq sim.Freq) BenchBuilder {
	b.freq = freq
	return b
}

// WithTrace enables or disables waveform traces.
func (b BenchBuilder) WithTrace(trace bool) BenchBuilder {
	b.trace = trace
	return b
}

// BuildArith creates a clocked driver over a fresh arithmetic unit. The
// waveform goes to tracePath when traces are enabled. With finish_on_settle
// the unit stops the clock once its first result has left the pipeline.
func (b BenchBuilder) BuildArith(name, tracePath string) (api.Driver, error) {
	unit := core.NewBuilder().
		WithLatency(b.latency).
		WithQuirks(b.quirks...).
		WithFinishOnSettle(b.finish).
		BuildArith(name + ".FPU")

	maxHalfCycles := b.maxHalfCycles
	if b.latency == 0 {
		maxHalfCycles = 0
	}

	return b.build(name, unit, maxHalfCycles, tracePath)
}

// BuildConverter creates a combinational driver over a fresh converter.
func (b BenchBuilder) BuildConverter(name, tracePath string) (api.Driver, error) {
	unit := core.NewBuilder().
		WithQuirks(b.quirks...).
		BuildConverter(name + ".FConv")

	return b.build(name, unit, 0, tracePath)
}

// Executor returns an oracle executor that runs arithmetic benches
// in-process.
func (b BenchBuilder) Executor() oracle.DriverExecutor {
	return oracle.DriverExecutor{
		NewDriver: func(tracePath string) (api.Driver, error) {
			return b.BuildArith("Bench", tracePath)
		},
	}
}

func (b BenchBuilder) build(
	name string,
	unit dut.Unit,
	maxHalfCycles int,
	tracePath string,
) (api.Driver, error) {
	var trace dut.Trace = dut.Discard
	if b.trace && tracePath != "" {
		vcd, err := dut.CreateVCD(tracePath)
		if err != nil {
			return nil, &StartupError{Path: tracePath, Err: err}
		}
		trace = vcd
	}

	return api.DriverBuilder{}.
		WithEngine(b.engine).
		WithFreq(b.freq).
		WithUnit(unit).
		WithTrace(trace).
		WithMaxHalfCycles(maxHalfCycles).
		Build(name), nil
}

// NewOracle creates the oracle described by cfg: the simulator command when
// one is set, the in-process bench otherwise.
func NewOracle(cfg Config) *oracle.Oracle {
	var executor oracle.Executor = NewBenchBuilder(cfg).Executor()
	if len(cfg.Simulator) > 0 {
		executor = oracle.ProcessExecutor{Command: cfg.Simulator}
	}

	return oracle.NewBuilder().
		WithExecutor(executor).
		WithCacheDir(cfg.BuildDir).
		WithTimeout(cfg.Timeout).
		WithWorkers(cfg.Workers).
		Build()
}
