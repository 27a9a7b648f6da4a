// Package core provides software models of the floating-point unit. They
// implement dut.Unit and stand in for the hardware design: a clocked
// arithmetic unit with a configurable pipeline depth and a combinational
// integer/float converter. Both can reproduce known hardware defects through
// quirks.
package core

import (
	"fmt"

	"github.com/sarchlab/fpdiff/dut"
	"github.com/sarchlab/fpdiff/fp"
)

type results [fp.NumOps]fp.Value

// ArithUnit computes mul, div, add and sub of its two operands. Operands are
// sampled at every rising clock edge and the results appear latency edges
// later. A unit with zero latency is combinational and ignores the clock.
type ArithUnit struct {
	name           string
	latency        int
	quirks         quirkSet
	finishOnSettle bool

	clk      bool
	prevClk  bool
	lhs, rhs fp.Value
	stages   []results
	out      results
	edges    int
	finished bool
}

// Name returns the name of the unit.
func (u *ArithUnit) Name() string {
	return u.name
}

// Latency returns the number of rising edges between sampling and result.
func (u *ArithUnit) Latency() int {
	return u.latency
}

// Ports lists the clock, the operands and one output per operation.
func (u *ArithUnit) Ports() []dut.Port {
	ports := []dut.Port{
		{Name: dut.PortClk, Width: 1},
		{Name: dut.PortLHS, Width: 32},
		{Name: dut.PortRHS, Width: 32},
	}

	for op := fp.Op(0); op < fp.NumOps; op++ {
		ports = append(ports, dut.Port{Name: op.Name(), Width: 32, Output: true})
	}

	return ports
}

func (u *ArithUnit) Set(port string, value uint32) {
	switch port {
	case dut.PortClk:
		u.clk = value&1 == 1
	case dut.PortLHS:
		u.lhs = fp.Value(value)
	case dut.PortRHS:
		u.rhs = fp.Value(value)
	default:
		panic(fmt.Sprintf("%s: no input port %q", u.name, port))
	}
}

func (u *ArithUnit) Get(port string) uint32 {
	switch port {
	case dut.PortClk:
		if u.clk {
			return 1
		}
		return 0
	case dut.PortLHS:
		return u.lhs.Bits()
	case dut.PortRHS:
		return u.rhs.Bits()
	case dut.PortMul:
		return u.out[fp.Mul].Bits()
	case dut.PortDiv:
		return u.out[fp.Div].Bits()
	case dut.PortAdd:
		return u.out[fp.Add].Bits()
	case dut.PortSub:
		return u.out[fp.Sub].Bits()
	default:
		panic(fmt.Sprintf("%s: no port %q", u.name, port))
	}
}

// Eval advances the pipeline on a rising clock edge.
func (u *ArithUnit) Eval() {
	if u.latency == 0 {
		u.out = u.compute()
		return
	}

	rising := u.clk && !u.prevClk
	u.prevClk = u.clk
	if !rising {
		return
	}

	copy(u.stages[1:], u.stages[:len(u.stages)-1])
	u.stages[0] = u.compute()
	u.out = u.stages[len(u.stages)-1]
	u.edges++

	if u.finishOnSettle && u.edges >= u.latency {
		u.finished = true
	}

	Trace("Edge",
		"Unit", u.name,
		"Edge", u.edges,
		"LHS", u.lhs.Hex(),
		"RHS", u.rhs.Hex(),
		"Mul", u.out[fp.Mul].Hex(),
		"Div", u.out[fp.Div].Hex(),
		"Add", u.out[fp.Add].Hex(),
		"Sub", u.out[fp.Sub].Hex(),
	)
}

func (u *ArithUnit) GotFinish() bool {
	return u.finished
}

func (u *ArithUnit) compute() results {
	lhs, rhs := u.quirks.operand(u.lhs), u.quirks.operand(u.rhs)

	var r results
	for op := fp.Op(0); op < fp.NumOps; op++ {
		r[op] = u.quirks.result(op, lhs, rhs, op.Apply(lhs, rhs))
	}

	return r
}
