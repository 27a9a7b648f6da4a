package api

import (
	"errors"

	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/fpdiff/core"
	"github.com/sarchlab/fpdiff/dut"
	"github.com/sarchlab/fpdiff/fp"
)

var _ = Describe("Driver", func() {
	var (
		mockCtrl   *gomock.Controller
		mockTrace  *MockTrace
		timestamps []uint64
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		mockTrace = NewMockTrace(mockCtrl)
		timestamps = nil
		mockTrace.EXPECT().
			Dump(gomock.Any(), gomock.Any()).
			Do(func(ts uint64, _ dut.Unit) {
				timestamps = append(timestamps, ts)
			}).
			AnyTimes()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	Context("combinational unit", func() {
		var driver Driver

		BeforeEach(func() {
			driver = DriverBuilder{}.
				WithUnit(core.NewBuilder().BuildConverter("FCVT")).
				WithTrace(mockTrace).
				Build("Driver")
		})

		It("should evaluate once and sample once per step", func() {
			out, err := driver.Step(map[string]uint32{dut.PortVal: fp.FromFloat32(-129).Bits()})
			Expect(err).ToNot(HaveOccurred())
			Expect(int32(out[dut.PortFtoi])).To(Equal(int32(-129)))
			Expect(out[dut.PortFtoui]).To(Equal(uint32(0)))

			_, err = driver.Step(map[string]uint32{dut.PortVal: fp.NegInf.Bits()})
			Expect(err).ToNot(HaveOccurred())

			Expect(timestamps).To(Equal([]uint64{0, 10}))
			Expect(driver.HalfCycles()).To(Equal(0))
		})

		It("should reject unknown inputs", func() {
			_, err := driver.Step(map[string]uint32{dut.PortLHS: 1})
			Expect(err).To(MatchError(ContainSubstring(`unknown input port "lhs"`)))

			_, err = driver.Step(map[string]uint32{dut.PortFtoi: 1})
			Expect(err).To(HaveOccurred())
			Expect(timestamps).To(BeEmpty())
		})

		It("should close the trace", func() {
			mockTrace.EXPECT().Close().Return(errors.New("disk full"))
			Expect(driver.Close()).To(MatchError("disk full"))
		})
	})

	Context("clocked unit", func() {
		It("should toggle the clock up to the half-cycle budget", func() {
			unit := core.NewBuilder().BuildArith("FPU")
			driver := DriverBuilder{}.
				WithUnit(unit).
				WithTrace(mockTrace).
				WithMaxHalfCycles(11).
				Build("Driver")

			out, err := driver.Step(map[string]uint32{
				dut.PortLHS: fp.One.Bits(),
				dut.PortRHS: fp.PosZero.Bits(),
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(driver.HalfCycles()).To(Equal(11))
			Expect(timestamps).To(HaveLen(11))
			Expect(timestamps[10]).To(Equal(uint64(100)))
			Expect(out[dut.PortDiv]).To(Equal(fp.PosInf.Bits()))
			Expect(out[dut.PortMul]).To(Equal(fp.PosZero.Bits()))
			Expect(out).ToNot(HaveKey(dut.PortClk))
		})

		It("should run again on the next step", func() {
			driver := DriverBuilder{}.
				WithUnit(core.NewBuilder().BuildArith("FPU")).
				WithTrace(mockTrace).
				WithMaxHalfCycles(11).
				Build("Driver")

			_, err := driver.Step(map[string]uint32{dut.PortLHS: fp.One.Bits(), dut.PortRHS: fp.One.Bits()})
			Expect(err).ToNot(HaveOccurred())

			out, err := driver.Step(map[string]uint32{dut.PortLHS: fp.NegOne.Bits()})
			Expect(err).ToNot(HaveOccurred())
			Expect(driver.HalfCycles()).To(Equal(11))
			Expect(timestamps).To(HaveLen(22))
			Expect(timestamps[21]).To(Equal(uint64(210)))
			Expect(out[dut.PortAdd]).To(Equal(fp.PosZero.Bits()))
		})

		It("should stop when the unit finishes", func() {
			unit := core.NewBuilder().WithFinishOnSettle(true).BuildArith("FPU")
			driver := DriverBuilder{}.
				WithUnit(unit).
				WithTrace(mockTrace).
				WithMaxHalfCycles(11).
				Build("Driver")

			out, err := driver.Step(map[string]uint32{
				dut.PortLHS: fp.FromFloat32(3).Bits(),
				dut.PortRHS: fp.FromFloat32(2).Bits(),
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(driver.HalfCycles()).To(Equal(5))
			Expect(unit.GotFinish()).To(BeTrue())
			Expect(out[dut.PortSub]).To(Equal(fp.One.Bits()))

			out, err = driver.Step(map[string]uint32{dut.PortLHS: fp.FromFloat32(5).Bits()})
			Expect(err).ToNot(HaveOccurred())
			Expect(driver.HalfCycles()).To(Equal(0))
			Expect(out[dut.PortSub]).To(Equal(fp.One.Bits()))
		})

		It("should ask the unit whether it finished before every toggle", func() {
			unit := NewMockUnit(mockCtrl)
			evals := 0
			unit.EXPECT().Ports().Return([]dut.Port{
				{Name: dut.PortClk, Width: 1},
				{Name: dut.PortLHS, Width: 32},
				{Name: dut.PortMul, Width: 32, Output: true},
			}).AnyTimes()
			unit.EXPECT().Set(dut.PortLHS, uint32(7))
			unit.EXPECT().Set(dut.PortClk, gomock.Any()).Times(2)
			unit.EXPECT().Eval().Do(func() { evals++ }).Times(2)
			unit.EXPECT().GotFinish().DoAndReturn(func() bool { return evals >= 2 }).AnyTimes()
			unit.EXPECT().Get(dut.PortMul).Return(uint32(42))

			driver := DriverBuilder{}.
				WithUnit(unit).
				WithTrace(mockTrace).
				WithMaxHalfCycles(11).
				Build("Driver")

			out, err := driver.Step(map[string]uint32{dut.PortLHS: 7})
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(Equal(map[string]uint32{dut.PortMul: 42}))
			Expect(driver.HalfCycles()).To(Equal(2))
			Expect(driver.Unit()).To(BeIdenticalTo(unit))
		})

		It("should never accept the clock as an input", func() {
			driver := DriverBuilder{}.
				WithUnit(core.NewBuilder().BuildArith("FPU")).
				WithMaxHalfCycles(11).
				Build("Driver")

			_, err := driver.Step(map[string]uint32{dut.PortClk: 1})
			Expect(err).To(HaveOccurred())
			Expect(driver.Close()).To(Succeed())
		})
	})

	It("should refuse to build without a unit", func() {
		Expect(func() { DriverBuilder{}.Build("Driver") }).To(Panic())
	})

	It("should refuse to clock a unit without a clock", func() {
		Expect(func() {
			DriverBuilder{}.
				WithUnit(core.NewBuilder().BuildConverter("FCVT")).
				WithMaxHalfCycles(2).
				Build("Driver")
		}).To(Panic())
		Expect(func() { DriverBuilder{}.WithMaxHalfCycles(-1) }).To(Panic())
	})
})
