// Package dut defines the black-box contract of a simulated design under test.
//
// A Unit exposes named 32-bit (or 1-bit) registers. Inputs are written with
// Set, the design is evaluated with Eval, and settled outputs are read with
// Get. Clocked designs take their clock as the "clk" input; the harness
// toggles it and calls Eval once per half cycle.
package dut

// Port roles shared by the harness and the designs.
const (
	PortClk = "clk"
	PortVal = "val"
	PortLHS = "lhs"
	PortRHS = "rhs"

	PortMul = "mul"
	PortDiv = "div"
	PortAdd = "add"
	PortSub = "sub"

	PortFtoi  = "ftoi"
	PortFtoui = "ftoui"
	PortItof  = "itof"
	PortUitof = "uitof"
)

// Port describes one register of a unit.
type Port struct {
	Name   string
	Width  int
	Output bool
}

// Unit is a simulated design under test.
type Unit interface {
	// Ports lists the registers of the unit in a stable order.
	Ports() []Port

	// Set writes an input register. The new value takes effect at the next
	// Eval.
	Set(port string, value uint32)

	// Get reads a register.
	Get(port string) uint32

	// Eval propagates inputs through the design.
	Eval()

	// GotFinish reports whether the design has signalled completion. Once
	// set it stays set.
	GotFinish() bool
}

// HasPort reports whether the unit has a port with the given name and
// direction.
func HasPort(u Unit, name string, output bool) bool {
	for _, p := range u.Ports() {
		if p.Name == name && p.Output == output {
			return true
		}
	}

	return false
}

// Outputs snapshots every output register of the unit.
func Outputs(u Unit) map[string]uint32 {
	out := make(map[string]uint32)
	for _, p := range u.Ports() {
		if p.Output {
			out[p.Name] = u.Get(p.Name)
		}
	}

	return out
}

// Trace is a waveform sink. Dump records the state of every port of the unit
// at the given timestamp. Write failures are sticky and reported by Close.
type Trace interface {
	Dump(timestamp uint64, u Unit)
	Close() error
}

type discard struct{}

func (discard) Dump(uint64, Unit) {}

func (discard) Close() error { return nil }

// Discard is a Trace that drops every sample.
var Discard Trace = discard{}
