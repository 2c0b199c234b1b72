package symbolic

import (
	"github.com/cespare/xxhash/v2"
)

// ============================================================
// Func: named function applications
// ============================================================

type Func struct {
	name string
	arg  Expr
}

// Apply builds name(arg). Unknown names are kept as opaque functions.
func Apply(name string, arg Expr) Expr { return (&Func{name: name, arg: arg}).Simplify() }

func SinOf(arg Expr) Expr   { return Apply("sin", arg) }
func CosOf(arg Expr) Expr   { return Apply("cos", arg) }
func TanOf(arg Expr) Expr   { return Apply("tan", arg) }
func ExpOf(arg Expr) Expr   { return Apply("exp", arg) }
func LnOf(arg Expr) Expr    { return Apply("ln", arg) }
func AbsOf(arg Expr) Expr   { return Apply("abs", arg) }
func AsinOf(arg Expr) Expr  { return Apply("asin", arg) }
func AcosOf(arg Expr) Expr  { return Apply("acos", arg) }
func AtanOf(arg Expr) Expr  { return Apply("atan", arg) }
func SinhOf(arg Expr) Expr  { return Apply("sinh", arg) }
func CoshOf(arg Expr) Expr  { return Apply("cosh", arg) }
func TanhOf(arg Expr) Expr  { return Apply("tanh", arg) }
func AsinhOf(arg Expr) Expr { return Apply("asinh", arg) }
func AtanhOf(arg Expr) Expr { return Apply("atanh", arg) }

// zeroAt lists the functions that vanish at 0; oneAt those equal to 1 there.
var (
	zeroAt = map[string]bool{"sin": true, "tan": true, "asin": true, "atan": true,
		"sinh": true, "tanh": true, "asinh": true, "atanh": true, "abs": true}
	oneAt = map[string]bool{"cos": true, "cosh": true, "exp": true}
)

// Simplify folds only exact values; sin(1) stays sin(1).
func (f *Func) Simplify() Expr {
	arg := f.arg.Simplify()
	if n, ok := arg.(*Num); ok {
		switch {
		case n.IsZero() && zeroAt[f.name]:
			return N(0)
		case n.IsZero() && oneAt[f.name]:
			return N(1)
		case n.IsOne() && (f.name == "ln" || f.name == "acos"):
			return N(0)
		case f.name == "abs":
			if n.IsNegative() {
				return numNeg(n)
			}
			return n
		}
	}
	switch f.name {
	case "ln":
		if inner, ok := arg.(*Func); ok && inner.name == "exp" {
			return inner.arg
		}
	case "exp":
		if inner, ok := arg.(*Func); ok && inner.name == "ln" {
			return inner.arg
		}
	}
	return &Func{name: f.name, arg: arg}
}

func (f *Func) String() string { return f.name + "(" + f.arg.String() + ")" }

func (f *Func) LaTeX() string {
	switch f.name {
	case "sin", "cos", "tan", "exp", "ln", "sinh", "cosh", "tanh":
		return "\\" + f.name + "\\left(" + f.arg.LaTeX() + "\\right)"
	case "asin", "acos", "atan":
		return "\\arc" + f.name[1:] + "\\left(" + f.arg.LaTeX() + "\\right)"
	case "abs":
		return "\\left|" + f.arg.LaTeX() + "\\right|"
	}
	return "\\operatorname{" + f.name + "}\\left(" + f.arg.LaTeX() + "\\right)"
}

func (f *Func) Equal(other Expr) bool {
	o, ok := other.(*Func)
	return ok && f.name == o.name && f.arg.Equal(o.arg)
}

func (f *Func) rank() int { return rankFunc }

func (f *Func) hashInto(d *xxhash.Digest) {
	_, _ = d.WriteString("f")
	_, _ = d.WriteString(f.name)
	_, _ = d.WriteString("(")
	f.arg.hashInto(d)
	_, _ = d.WriteString(")")
}

func (f *Func) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "func", "name": f.name, "arg": f.arg.toJSON()}
}

func (f *Func) FuncName() string { return f.name }
func (f *Func) Arg() Expr        { return f.arg }
