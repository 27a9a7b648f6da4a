package core_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/fpdiff/core"
	"github.com/sarchlab/fpdiff/dut"
	"github.com/sarchlab/fpdiff/fp"
)

func clock(u dut.Unit, edges int) {
	for i := 0; i < edges; i++ {
		u.Set(dut.PortClk, 1)
		u.Eval()
		u.Set(dut.PortClk, 0)
		u.Eval()
	}
}

var _ = Describe("ArithUnit", func() {
	var unit *core.ArithUnit

	BeforeEach(func() {
		unit = core.NewBuilder().BuildArith("FPU")
	})

	It("should expose clock, operands and one output per operation", func() {
		Expect(unit.Name()).To(Equal("FPU"))
		Expect(unit.Latency()).To(Equal(3))
		Expect(dut.HasPort(unit, dut.PortClk, false)).To(BeTrue())
		Expect(dut.HasPort(unit, dut.PortLHS, false)).To(BeTrue())
		Expect(dut.HasPort(unit, dut.PortRHS, false)).To(BeTrue())
		for _, name := range []string{dut.PortMul, dut.PortDiv, dut.PortAdd, dut.PortSub} {
			Expect(dut.HasPort(unit, name, true)).To(BeTrue())
		}
	})

	It("should deliver results after the pipeline latency", func() {
		unit.Set(dut.PortLHS, fp.One.Bits())
		unit.Set(dut.PortRHS, fp.FromFloat32(2).Bits())

		clock(unit, 2)
		Expect(unit.Get(dut.PortAdd)).To(Equal(uint32(0)))

		clock(unit, 1)
		Expect(dut.Outputs(unit)).To(Equal(map[string]uint32{
			dut.PortMul: fp.FromFloat32(2).Bits(),
			dut.PortDiv: fp.FromFloat32(0.5).Bits(),
			dut.PortAdd: fp.FromFloat32(3).Bits(),
			dut.PortSub: fp.NegOne.Bits(),
		}))
	})

	It("should only advance on rising edges", func() {
		unit.Set(dut.PortLHS, fp.One.Bits())
		unit.Set(dut.PortRHS, fp.One.Bits())

		for i := 0; i < 10; i++ {
			unit.Eval()
		}
		Expect(unit.Get(dut.PortMul)).To(Equal(uint32(0)))

		unit.Set(dut.PortClk, 1)
		unit.Eval()
		unit.Eval()
		unit.Eval()
		Expect(unit.Get(dut.PortMul)).To(Equal(uint32(0)))
	})

	It("should be combinational without latency", func() {
		unit = core.NewBuilder().WithLatency(0).BuildArith("FPU")
		unit.Set(dut.PortLHS, fp.One.Bits())
		unit.Set(dut.PortRHS, fp.PosZero.Bits())
		unit.Eval()

		Expect(unit.Get(dut.PortDiv)).To(Equal(fp.PosInf.Bits()))
		Expect(unit.GotFinish()).To(BeFalse())
	})

	It("should signal completion once settled", func() {
		unit = core.NewBuilder().WithLatency(2).WithFinishOnSettle(true).BuildArith("FPU")

		clock(unit, 1)
		Expect(unit.GotFinish()).To(BeFalse())
		clock(unit, 1)
		Expect(unit.GotFinish()).To(BeTrue())
		clock(unit, 1)
		Expect(unit.GotFinish()).To(BeTrue())
	})

	It("should read back its inputs", func() {
		unit.Set(dut.PortClk, 3)
		unit.Set(dut.PortLHS, 0xdeadbeef)
		Expect(unit.Get(dut.PortClk)).To(Equal(uint32(1)))
		Expect(unit.Get(dut.PortLHS)).To(Equal(uint32(0xdeadbeef)))
	})

	It("should panic on unknown ports", func() {
		Expect(func() { unit.Set(dut.PortMul, 1) }).To(Panic())
		Expect(func() { unit.Get(dut.PortVal) }).To(Panic())
	})

	It("should reject a negative latency", func() {
		Expect(func() { core.NewBuilder().WithLatency(-1) }).To(Panic())
	})

	It("should render its state", func() {
		unit.Set(dut.PortLHS, fp.NegInf.Bits())
		buf := new(bytes.Buffer)
		core.PrintState(buf, unit.Name(), unit)

		Expect(buf.String()).To(ContainSubstring("State@FPU"))
		Expect(buf.String()).To(ContainSubstring("0xff800000"))
		Expect(buf.String()).To(ContainSubstring("-Inf"))
		core.LogState(unit.Name(), unit)
	})
})

var _ = Describe("Converter", func() {
	var conv *core.Converter

	BeforeEach(func() {
		conv = core.NewBuilder().BuildConverter("FCVT")
	})

	It("should convert the input in every direction", func() {
		conv.Set(dut.PortVal, fp.FromFloat32(-129).Bits())
		conv.Eval()

		Expect(int32(conv.Get(dut.PortFtoi))).To(Equal(int32(-129)))
		Expect(conv.Get(dut.PortFtoui)).To(Equal(uint32(0)))
		Expect(conv.Get(dut.PortItof)).To(Equal(fp.FromInt32(int32(fp.FromFloat32(-129).Bits())).Bits()))
		Expect(conv.Get(dut.PortVal)).To(Equal(fp.FromFloat32(-129).Bits()))
	})

	It("should convert integers to floats", func() {
		conv.Set(dut.PortVal, uint32(0xffffffff))
		conv.Eval()

		Expect(conv.Get(dut.PortItof)).To(Equal(fp.NegOne.Bits()))
		Expect(conv.Get(dut.PortUitof)).To(Equal(fp.FromFloat32(4294967296).Bits()))
	})

	It("should never finish and reject unknown ports", func() {
		Expect(conv.GotFinish()).To(BeFalse())
		Expect(func() { conv.Set(dut.PortLHS, 1) }).To(Panic())
		Expect(func() { conv.Get(dut.PortMul) }).To(Panic())
		Expect(conv.Ports()).To(HaveLen(5))
	})
})
