package symbolic

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ============================================================
// Mul: product of factors
// ============================================================

type Mul struct{ factors []Expr }

func MulOf(factors ...Expr) Expr { return (&Mul{factors: factors}).Simplify() }

// Simplify flattens nested products, folds the numeric coefficient to the
// front and merges factors with a common base by adding their exponents.
func (m *Mul) Simplify() Expr {
	flat := make([]Expr, 0, len(m.factors))
	for _, f := range m.factors {
		s := f.Simplify()
		if inner, ok := s.(*Mul); ok {
			flat = append(flat, inner.factors...)
		} else {
			flat = append(flat, s)
		}
	}
	coeff := N(1)
	var like likeTerms[[]Expr]
	for _, f := range flat {
		if n, ok := f.(*Num); ok {
			coeff = numMul(coeff, n)
			continue
		}
		base, exp := splitPower(f)
		i := like.index(base, nil)
		like.vals[i] = append(like.vals[i], exp)
	}
	if coeff.IsZero() {
		return N(0)
	}
	others := make([]Expr, 0, len(like.keys))
	for i, f := range like.keys {
		if es := like.vals[i]; len(es) > 1 || !isNumEqual(es[0], 1) {
			f = PowOf(f, AddOf(es...))
		}
		switch v := f.(type) {
		case *Num:
			coeff = numMul(coeff, v)
		case *Mul:
			for _, g := range v.factors {
				if n, ok := g.(*Num); ok {
					coeff = numMul(coeff, n)
				} else {
					others = append(others, g)
				}
			}
		default:
			others = append(others, f)
		}
	}
	if coeff.IsZero() {
		return N(0)
	}
	if len(others) == 0 {
		return coeff
	}
	sortExprs(others)
	if coeff.IsOne() {
		if len(others) == 1 {
			return others[0]
		}
		return &Mul{factors: others}
	}
	return &Mul{factors: append([]Expr{coeff}, others...)}
}

// splitPower views any factor as base^exp.
func splitPower(e Expr) (Expr, Expr) {
	if p, ok := e.(*Pow); ok {
		return p.base, p.exp
	}
	return e, N(1)
}

func (m *Mul) String() string {
	return m.join("*", func(e Expr) string { return e.String() }, "(", ")")
}

func (m *Mul) LaTeX() string {
	return m.join(" ", func(e Expr) string { return e.LaTeX() }, "\\left(", "\\right)")
}

func (m *Mul) join(sep string, render func(Expr) string, open, close string) string {
	if len(m.factors) == 0 {
		return "1"
	}
	factors := m.factors
	prefix := ""
	if n, ok := factors[0].(*Num); ok && n.IsNegOne() && len(factors) > 1 {
		prefix = "-"
		factors = factors[1:]
	}
	parts := make([]string, len(factors))
	for i, f := range factors {
		if _, isAdd := f.(*Add); isAdd {
			parts[i] = open + render(f) + close
		} else {
			parts[i] = render(f)
		}
	}
	return prefix + strings.Join(parts, sep)
}

func (m *Mul) Equal(other Expr) bool {
	o, ok := other.(*Mul)
	return ok && equalLists(m.factors, o.factors)
}

func (m *Mul) rank() int { return rankMul }

func (m *Mul) hashInto(d *xxhash.Digest) {
	_, _ = d.WriteString("*(")
	for _, f := range m.factors {
		f.hashInto(d)
	}
	_, _ = d.WriteString(")")
}

func (m *Mul) toJSON() map[string]interface{} {
	fs := make([]map[string]interface{}, len(m.factors))
	for i, f := range m.factors {
		fs[i] = f.toJSON()
	}
	return map[string]interface{}{"type": "mul", "factors": fs}
}

// Factors returns a copy of the factors, numeric coefficient first.
func (m *Mul) Factors() []Expr { return append([]Expr(nil), m.factors...) }

func isNumEqual(e Expr, v int64) bool {
	n, ok := e.(*Num)
	if !ok {
		return false
	}
	i, ok := n.Int64()
	return ok && i == v
}
