package oracle

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/fpdiff/fp"
)

var _ = Describe("Result", func() {
	It("should parse a result line in mul div add sub order", func() {
		r, err := ParseResult("0x3f800000 0x7f800000 0x00000000 0x80000000\n")
		Expect(err).ToNot(HaveOccurred())
		Expect(r).To(Equal(Result{Mul: fp.One, Div: fp.PosInf, Add: fp.PosZero, Sub: fp.NegZero}))
		Expect(r.Get(fp.Div)).To(Equal(fp.PosInf))
		Expect(r.Get(fp.Sub)).To(Equal(fp.NegZero))
		Expect(r.String()).To(Equal("0x3f800000 0x7f800000 0x00000000 0x80000000"))
	})

	DescribeTable("should reject malformed lines",
		func(line string) {
			_, err := ParseResult(line)
			Expect(err).To(MatchError(ErrMalformedResult))
		},
		Entry("empty", ""),
		Entry("three fields", "0x00000000 0x00000000 0x00000000"),
		Entry("five fields", "0x00000000 0x00000000 0x00000000 0x00000000 0x00000000"),
		Entry("missing prefix", "00000000 0x00000000 0x00000000 0x00000000"),
		Entry("short hex", "0x0 0x00000000 0x00000000 0x00000000"),
		Entry("bad digit", "0x0000000g 0x00000000 0x00000000 0x00000000"),
		Entry("signed", "0x+0000000 0x00000000 0x00000000 0x00000000"),
	)

	It("should pass operands as bare hex words", func() {
		inv := Invocation{ResultPath: "r.txt", TracePath: "r.vcd", LHS: fp.One, RHS: fp.MinSubnormal}
		Expect(inv.Args()).To(Equal([]string{"r.txt", "r.vcd", "3f800000", "00000001"}))
	})
})
