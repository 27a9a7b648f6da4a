package core

import (
	"fmt"

	"github.com/sarchlab/fpdiff/dut"
	"github.com/sarchlab/fpdiff/fp"
)

var conversions = []fp.Conversion{
	fp.FloatToInt,
	fp.FloatToUint,
	fp.IntToFloat,
	fp.UintToFloat,
}

// Converter is a combinational unit that converts its single input in all
// four directions at once. The input is read as a float by ftoi and ftoui and
// as an integer by itof and uitof. Only operand quirks apply; integer
// conversions never produce NaN or subnormal results.
type Converter struct {
	name   string
	quirks quirkSet

	val uint32
	out [4]uint32
}

// Name returns the name of the unit.
func (c *Converter) Name() string {
	return c.name
}

func (c *Converter) Ports() []dut.Port {
	ports := []dut.Port{{Name: dut.PortVal, Width: 32}}
	for _, conv := range conversions {
		ports = append(ports, dut.Port{Name: conv.Port(), Width: 32, Output: true})
	}

	return ports
}

func (c *Converter) Set(port string, value uint32) {
	if port != dut.PortVal {
		panic(fmt.Sprintf("%s: no input port %q", c.name, port))
	}

	c.val = value
}

func (c *Converter) Get(port string) uint32 {
	if port == dut.PortVal {
		return c.val
	}

	for i, conv := range conversions {
		if conv.Port() == port {
			return c.out[i]
		}
	}

	panic(fmt.Sprintf("%s: no port %q", c.name, port))
}

func (c *Converter) Eval() {
	for i, conv := range conversions {
		in := c.val
		if conv == fp.FloatToInt || conv == fp.FloatToUint {
			in = c.quirks.operand(fp.Value(in)).Bits()
		}

		c.out[i] = conv.Apply(in)
	}
}

// GotFinish is always false. The converter has no clock.
func (c *Converter) GotFinish() bool {
	return false
}
