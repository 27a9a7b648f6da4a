package fp_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/fpdiff/fp"
)

var _ = Describe("Format", func() {
	It("should render signed zeros literally", func() {
		Expect(fp.Format(fp.PosZero)).To(Equal("+0"))
		Expect(fp.Format(fp.NegZero)).To(Equal("-0"))
	})

	DescribeTable("logarithmic tokens",
		func(v fp.Value, token string) {
			Expect(fp.Format(v)).To(Equal(token))
		},
		Entry("max normal", fp.MaxNormal, "+2^127"),
		Entry("negative max normal", fp.MaxNormal.FlipSign(), "-2^127"),
		Entry("min subnormal", fp.MinSubnormal, "+2^-149"),
		Entry("negative min subnormal", fp.MinSubnormal.FlipSign(), "-2^-149"),
		Entry("exactly 65536", fp.FromFloat32(65536), "+2^16"),
		Entry("just below 65536 stays fixed", fp.FromFloat32(65535.5), "+65535.500000"),
		Entry("one half", fp.FromFloat32(0.5), "+2^-1"),
		Entry("just below one", fp.FromFloat32(0.75), "+2^-1"),
		Entry("negative fraction", fp.FromFloat32(-0.3), "-2^-2"),
		Entry("large negative", fp.FromFloat32(-1e10), "-2^33"),
	)

	DescribeTable("fixed-point tokens",
		func(v fp.Value, token string) {
			Expect(fp.Format(v)).To(Equal(token))
		},
		Entry("one", fp.One, "+1.000000"),
		Entry("minus one", fp.NegOne, "-1.000000"),
		Entry("129", fp.FromFloat32(129), "+129.000000"),
		Entry("positive infinity", fp.PosInf, "+Inf"),
		Entry("negative infinity", fp.NegInf, "-Inf"),
		Entry("quiet NaN", fp.QNaN, "+NaN"),
		Entry("negative quiet NaN", fp.NegQNaN, "-NaN"),
	)

	It("should render NaNs with different payloads and the same sign identically", func() {
		Expect(fp.Format(fp.Value(0x7f800001))).To(Equal(fp.Format(fp.QNaN)))
		Expect(fp.Format(fp.Value(0xffbfffff))).To(Equal(fp.Format(fp.NegQNaN)))
	})

	It("should be deterministic across the whole encoding space", func() {
		for bits := uint64(0); bits <= math.MaxUint32; bits += 0x00100003 {
			v := fp.Value(bits)
			Expect(fp.Format(v)).To(Equal(fp.Format(v)), v.Hex())
		}
	})

	It("should use floor(log2) for every finite out-of-band magnitude", func() {
		for bits := uint64(1); bits < uint64(fp.PosInf); bits += 0x00010001 {
			v := fp.Value(bits)
			mag := float64(v.Float32())
			if mag >= 1 && mag < 65536 {
				continue
			}

			e := int(math.Floor(math.Log2(mag)))
			Expect(fp.Log2Floor(v)).To(Equal(e), v.Hex())
		}
	})

	It("should format integer conversion operands with explicit signs", func() {
		Expect(fp.FormatInt(0)).To(Equal("+0"))
		Expect(fp.FormatInt(-21005040)).To(Equal("-21005040"))
		Expect(fp.FormatUint(4294967295)).To(Equal("+4294967295"))
	})
})
