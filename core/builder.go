package core

// Builder can create the software units.
type Builder struct {
	latency        int
	quirks         []Quirk
	finishOnSettle bool
}

func NewBuilder() Builder {
	return Builder{
		latency: 3, // results settle on the third rising edge
	}
}

// WithLatency sets the pipeline depth of arithmetic units. Zero builds a
// combinational unit.
func (b Builder) WithLatency(latency int) Builder {
	if latency < 0 {
		panic("latency cannot be negative")
	}
	b.latency = latency
	return b
}

// WithQuirks sets the defects the units reproduce.
func (b Builder) WithQuirks(quirks ...Quirk) Builder {
	b.quirks = append([]Quirk(nil), quirks...)
	return b
}

// WithFinishOnSettle makes arithmetic units signal completion once the first
// sampled operands reach the outputs.
func (b Builder) WithFinishOnSettle(finish bool) Builder {
	b.finishOnSettle = finish
	return b
}

// BuildArith creates an arithmetic unit.
func (b Builder) BuildArith(name string) *ArithUnit {
	u := &ArithUnit{
		name:           name,
		latency:        b.latency,
		quirks:         newQuirkSet(b.quirks),
		finishOnSettle: b.finishOnSettle,
	}

	if b.latency > 0 {
		u.stages = make([]results, b.latency)
	}

	return u
}

// BuildConverter creates a converter.
func (b Builder) BuildConverter(name string) *Converter {
	return &Converter{
		name:   name,
		quirks: newQuirkSet(b.quirks),
	}
}
