package vector_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/fpdiff/fp"
	"github.com/sarchlab/fpdiff/vector"
)

var _ = Describe("Catalogue", func() {
	It("should list the arithmetic theme in its fixed order", func() {
		Expect(vector.Tokens(vector.Floats(vector.ThemeArith))).To(Equal([]string{
			"+NaN", "-NaN", "+Inf", "-Inf", "+0", "-0",
			"+1.000000", "-1.000000", "+2^127", "-2^127", "+2^-149", "-2^-149",
		}))
	})

	It("should insert +/-129 into the conversion theme", func() {
		values := vector.Floats(vector.ThemeConvert)
		Expect(values).To(HaveLen(14))
		Expect(values[8]).To(Equal(fp.FromFloat32(129)))
		Expect(values[9]).To(Equal(fp.FromFloat32(-129)))
		Expect(values[:8]).To(Equal(vector.Floats(vector.ThemeArith)[:8]))
		Expect(values[10:]).To(Equal(vector.Floats(vector.ThemeArith)[8:]))
	})

	It("should be restartable", func() {
		first := vector.Floats(vector.ThemeArith)
		first[0] = fp.One

		Expect(vector.Floats(vector.ThemeArith)[0]).To(Equal(fp.QNaN))
		Expect(vector.Ints()).To(Equal(vector.Ints()))
	})

	It("should span the signed 32-bit range in the integer theme", func() {
		ints := vector.Ints()
		Expect(ints).To(HaveLen(9))
		Expect(ints).To(ContainElements(int32(0), int32(-2147483648), int32(2147483647)))
	})

	It("should list operations in report order", func() {
		Expect(vector.Ops()).To(Equal([]fp.Op{fp.Mul, fp.Div, fp.Add, fp.Sub}))
		Expect(vector.Ops()).To(HaveLen(fp.NumOps))
		Expect(vector.FloatConversions()).To(Equal([]fp.Conversion{fp.FloatToInt, fp.FloatToUint}))
		Expect(vector.IntConversions()).To(Equal([]fp.Conversion{fp.IntToFloat, fp.UintToFloat}))
	})

	It("should expand pairs row-major", func() {
		values := []fp.Value{fp.One, fp.PosZero, fp.NegInf}
		pairs := vector.Pairs(values)

		Expect(pairs).To(HaveLen(9))
		Expect(pairs[1]).To(Equal(vector.Pair{LHS: fp.One, RHS: fp.PosZero}))
		Expect(pairs[5]).To(Equal(vector.Pair{LHS: fp.PosZero, RHS: fp.NegInf}))
		Expect(pairs[5].Key()).To(Equal("0x00000000/0xff800000"))
	})
})
