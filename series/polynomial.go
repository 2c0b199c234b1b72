package series

import (
	"iter"
	"slices"
)

// Polynomial is a sparse, immutable map from exponent to coefficient in a
// single named variable. The zero value is the empty polynomial.
//
// Ring operations never store a zero coefficient, so Degree is both the
// largest key and the largest non-zero term. The empty polynomial has
// degree 0.
type Polynomial[C any] struct {
	name   string
	terms  map[int]C
	exps   []int
	degree int
}

// newPolynomial takes ownership of terms.
func newPolynomial[C any](name string, terms map[int]C) Polynomial[C] {
	exps := make([]int, 0, len(terms))
	for e := range terms {
		exps = append(exps, e)
	}
	slices.Sort(exps)
	p := Polynomial[C]{name: name, terms: terms, exps: exps}
	if len(exps) > 0 {
		p.degree = exps[len(exps)-1]
	}
	return p
}

// Var is the name of the expansion variable; empty for a pure constant.
func (p Polynomial[C]) Var() string { return p.name }

func (p Polynomial[C]) Len() int     { return len(p.exps) }
func (p Polynomial[C]) IsZero() bool { return len(p.exps) == 0 }
func (p Polynomial[C]) Degree() int  { return p.degree }

// Exponents returns the exponents present, ascending.
func (p Polynomial[C]) Exponents() []int { return slices.Clone(p.exps) }

// Coefficient looks up the coefficient stored at exp.
func (p Polynomial[C]) Coefficient(exp int) (C, bool) {
	c, ok := p.terms[exp]
	return c, ok
}

// All yields (exponent, coefficient) pairs in ascending exponent order.
func (p Polynomial[C]) All() iter.Seq2[int, C] {
	return func(yield func(int, C) bool) {
		for _, e := range p.exps {
			if !yield(e, p.terms[e]) {
				return
			}
		}
	}
}

// varOf picks the variable name for a result built from a and b.
func varOf(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
