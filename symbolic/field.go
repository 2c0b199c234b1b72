package symbolic

// Field exposes Expr arithmetic as a coefficient field for the series ring.
// Every result is simplified, so IsZero and Equal are structural checks on
// canonical forms: an expression that is zero only by an identity the
// simplifier does not know, such as sin(a)^2 + cos(a)^2 - 1, is not zero.
type Field struct{}

func (Field) Zero() Expr           { return N(0) }
func (Field) One() Expr            { return N(1) }
func (Field) FromInt(n int64) Expr { return N(n) }
func (Field) Add(a, b Expr) Expr   { return AddOf(a, b) }
func (Field) Sub(a, b Expr) Expr   { return SubOf(a, b) }
func (Field) Mul(a, b Expr) Expr   { return MulOf(a, b) }
func (Field) Quo(a, b Expr) Expr   { return QuoOf(a, b) }
func (Field) Pow(a, b Expr) Expr   { return PowOf(a, b) }
func (Field) IsZero(a Expr) bool   { return IsZero(a) }
func (Field) Equal(a, b Expr) bool { return a.Simplify().Equal(b.Simplify()) }
func (Field) Apply(name string, a Expr) Expr {
	if name == "log" {
		return LnOf(a)
	}
	return Apply(name, a)
}
