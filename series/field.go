package series

// Field is the coefficient arithmetic a Ring is generic over. Coefficients
// are immutable values; every method returns a new one.
type Field[C any] interface {
	Zero() C
	One() C
	FromInt(n int64) C
	Add(a, b C) C
	Sub(a, b C) C
	Mul(a, b C) C
	Quo(a, b C) C
	Pow(a, b C) C
	Equal(a, b C) bool
	IsZero(a C) bool
	// Apply evaluates a named elementary function at a scalar.
	Apply(name string, a C) C
}

// Elementary function names passed to Field.Apply.
const (
	FuncSin   = "sin"
	FuncCos   = "cos"
	FuncTan   = "tan"
	FuncAsin  = "asin"
	FuncAcos  = "acos"
	FuncAtan  = "atan"
	FuncSinh  = "sinh"
	FuncCosh  = "cosh"
	FuncTanh  = "tanh"
	FuncAsinh = "asinh"
	FuncAtanh = "atanh"
	FuncExp   = "exp"
	FuncLog   = "log"
)
