package symbolic

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ============================================================
// Add: sum of terms
// ============================================================

type Add struct{ terms []Expr }

func AddOf(terms ...Expr) Expr { return (&Add{terms: terms}).Simplify() }

// Simplify flattens nested sums, folds numbers and merges terms that differ
// only by a numeric coefficient. Non-numeric terms are kept in Compare order
// with the numeric part last.
func (a *Add) Simplify() Expr {
	flat := make([]Expr, 0, len(a.terms))
	for _, t := range a.terms {
		s := t.Simplify()
		if inner, ok := s.(*Add); ok {
			flat = append(flat, inner.terms...)
		} else {
			flat = append(flat, s)
		}
	}
	constant := N(0)
	var like likeTerms[*Num]
	for _, t := range flat {
		if n, ok := t.(*Num); ok {
			constant = numAdd(constant, n)
			continue
		}
		c, rest := splitCoefficient(t)
		i := like.index(rest, N(0))
		like.vals[i] = numAdd(like.vals[i], c)
	}
	result := make([]Expr, 0, len(like.keys)+1)
	for i, rest := range like.keys {
		c := like.vals[i]
		switch {
		case c.IsZero():
		case c.IsOne():
			result = append(result, rest)
		default:
			result = append(result, MulOf(c, rest))
		}
	}
	sortExprs(result)
	if !constant.IsZero() {
		result = append(result, constant)
	}
	switch len(result) {
	case 0:
		return N(0)
	case 1:
		return result[0]
	}
	return &Add{terms: result}
}

// splitCoefficient separates the leading numeric factor of a product.
func splitCoefficient(e Expr) (*Num, Expr) {
	if m, ok := e.(*Mul); ok && len(m.factors) >= 2 {
		if coeff, ok2 := m.factors[0].(*Num); ok2 {
			rest := m.factors[1:]
			if len(rest) == 1 {
				return coeff, rest[0]
			}
			return coeff, &Mul{factors: rest}
		}
	}
	return N(1), e
}

func (a *Add) String() string {
	return a.join(func(e Expr) string { return e.String() })
}

func (a *Add) LaTeX() string {
	return a.join(func(e Expr) string { return e.LaTeX() })
}

// join renders terms, writing negative coefficients as subtraction.
func (a *Add) join(render func(Expr) string) string {
	if len(a.terms) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, t := range a.terms {
		c, rest := splitCoefficient(t)
		if n, ok := t.(*Num); ok {
			c, rest = n, nil
		}
		if i == 0 || !c.IsNegative() {
			if i > 0 {
				b.WriteString(" + ")
			}
			b.WriteString(render(t))
			continue
		}
		b.WriteString(" - ")
		if rest == nil {
			b.WriteString(render(numNeg(c)))
		} else {
			b.WriteString(render(MulOf(numNeg(c), rest)))
		}
	}
	return b.String()
}

func (a *Add) Equal(other Expr) bool {
	o, ok := other.(*Add)
	return ok && equalLists(a.terms, o.terms)
}

func (a *Add) rank() int { return rankAdd }

func (a *Add) hashInto(d *xxhash.Digest) {
	_, _ = d.WriteString("+(")
	for _, t := range a.terms {
		t.hashInto(d)
	}
	_, _ = d.WriteString(")")
}

func (a *Add) toJSON() map[string]interface{} {
	ts := make([]map[string]interface{}, len(a.terms))
	for i, t := range a.terms {
		ts[i] = t.toJSON()
	}
	return map[string]interface{}{"type": "add", "terms": ts}
}

// Terms returns a copy of the summands.
func (a *Add) Terms() []Expr { return append([]Expr(nil), a.terms...) }

func equalLists(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
