package symbolic

import "sort"

// ============================================================
// Helpers
// ============================================================

func Simplify(e Expr) Expr { return e.Simplify() }
func String(e Expr) string { return e.String() }
func LaTeX(e Expr) string  { return e.LaTeX() }

// Neg is -e.
func Neg(e Expr) Expr { return MulOf(N(-1), e) }

// SubOf is a - b.
func SubOf(a, b Expr) Expr { return AddOf(a, Neg(b)) }

// QuoOf is a / b.
func QuoOf(a, b Expr) Expr { return MulOf(a, PowOf(b, N(-1))) }

// IsZero reports whether e simplifies to the number 0.
func IsZero(e Expr) bool {
	n, ok := e.Simplify().(*Num)
	return ok && n.IsZero()
}

// FreeSymbols returns the sorted names of the symbols occurring in e.
func FreeSymbols(e Expr) []string {
	set := map[string]struct{}{}
	collectSymbols(e, set)
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether the symbol name occurs in e.
func Has(e Expr, name string) bool {
	switch v := e.(type) {
	case *Sym:
		return v.name == name
	case *Add:
		for _, t := range v.terms {
			if Has(t, name) {
				return true
			}
		}
	case *Mul:
		for _, f := range v.factors {
			if Has(f, name) {
				return true
			}
		}
	case *Pow:
		return Has(v.base, name) || Has(v.exp, name)
	case *Func:
		return Has(v.arg, name)
	}
	return false
}

func collectSymbols(e Expr, out map[string]struct{}) {
	switch v := e.(type) {
	case *Sym:
		out[v.name] = struct{}{}
	case *Add:
		for _, t := range v.terms {
			collectSymbols(t, out)
		}
	case *Mul:
		for _, f := range v.factors {
			collectSymbols(f, out)
		}
	case *Pow:
		collectSymbols(v.base, out)
		collectSymbols(v.exp, out)
	case *Func:
		collectSymbols(v.arg, out)
	}
}
