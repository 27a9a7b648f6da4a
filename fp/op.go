package fp

// Op is a binary arithmetic operation of the unit under test.
type Op int

// The operations, in report order.
const (
	Mul Op = iota
	Div
	Add
	Sub
)

// NumOps is the number of arithmetic operations.
const NumOps = 4

// Name returns the lowercase name, which is also the output port role.
func (op Op) Name() string {
	switch op {
	case Mul:
		return "mul"
	case Div:
		return "div"
	case Add:
		return "add"
	case Sub:
		return "sub"
	default:
		panic("invalid op")
	}
}

// Title returns the capitalised name used in summaries.
func (op Op) Title() string {
	switch op {
	case Mul:
		return "Mul"
	case Div:
		return "Div"
	case Add:
		return "Add"
	case Sub:
		return "Sub"
	default:
		panic("invalid op")
	}
}

// Symbol returns the arithmetic symbol used in report headers.
func (op Op) Symbol() string {
	switch op {
	case Mul:
		return "*"
	case Div:
		return "/"
	case Add:
		return "+"
	case Sub:
		return "-"
	default:
		panic("invalid op")
	}
}

func (op Op) String() string {
	return op.Name()
}

// Apply computes the software reference result of lhs op rhs in
// round-to-nearest-even single precision.
func (op Op) Apply(lhs, rhs Value) Value {
	a, b := lhs.Float32(), rhs.Float32()

	switch op {
	case Mul:
		return FromFloat32(a * b)
	case Div:
		return FromFloat32(a / b)
	case Add:
		return FromFloat32(a + b)
	case Sub:
		return FromFloat32(a - b)
	default:
		panic("invalid op")
	}
}
