package series

import (
	"fmt"
	"maps"
)

// ============================================================
// Ring: truncated arithmetic over Polynomial[C]
// ============================================================

// Ring implements truncated power series arithmetic over a coefficient
// field. It holds no state besides the field, and every operation returns a
// fresh Polynomial without touching its inputs. Operations that take a
// precision never return a term whose exponent is >= that precision.
type Ring[C any] struct{ f Field[C] }

func NewRing[C any](f Field[C]) Ring[C] { return Ring[C]{f: f} }

func (r Ring[C]) Field() Field[C] { return r.f }

// build drops zero coefficients and takes ownership of terms.
func (r Ring[C]) build(name string, terms map[int]C) Polynomial[C] {
	for e, c := range terms {
		if r.f.IsZero(c) {
			delete(terms, e)
		}
	}
	return newPolynomial(name, terms)
}

func (r Ring[C]) empty(name string) Polynomial[C] {
	return newPolynomial(name, map[int]C{})
}

func (r Ring[C]) one(name string) Polynomial[C] {
	return newPolynomial(name, map[int]C{0: r.f.One()})
}

// Var is the polynomial 1*name^1, the seed of every expansion.
func (r Ring[C]) Var(name string) Polynomial[C] {
	return newPolynomial(name, map[int]C{1: r.f.One()})
}

// Convert embeds a scalar as a coefficient. It is the identity.
func (r Ring[C]) Convert(c C) C { return c }

// Constant is the polynomial c*x^0, or the empty polynomial when c is zero.
func (r Ring[C]) Constant(c C) Polynomial[C] {
	return r.build("", map[int]C{0: c})
}

// FromMap builds a polynomial from a copy of terms, dropping zeros.
func (r Ring[C]) FromMap(name string, terms map[int]C) Polynomial[C] {
	return r.build(name, maps.Clone(terms))
}

// LowDegree returns the smallest exponent of p. p must not be empty.
func (r Ring[C]) LowDegree(p Polynomial[C]) (int, error) {
	if p.IsZero() {
		return 0, ErrEmptySeries
	}
	return p.exps[0], nil
}

// Truncate drops every term with exponent >= prec.
func (r Ring[C]) Truncate(p Polynomial[C], prec int) Polynomial[C] {
	terms := make(map[int]C, len(p.exps))
	for _, e := range p.exps {
		if e >= prec {
			break
		}
		terms[e] = p.terms[e]
	}
	return newPolynomial(p.name, terms)
}

func (r Ring[C]) Add(a, b Polynomial[C]) Polynomial[C] {
	terms := maps.Clone(a.terms)
	if terms == nil {
		terms = make(map[int]C, len(b.exps))
	}
	for _, e := range b.exps {
		if c, ok := terms[e]; ok {
			terms[e] = r.f.Add(c, b.terms[e])
		} else {
			terms[e] = b.terms[e]
		}
	}
	return r.build(varOf(a.name, b.name), terms)
}

func (r Ring[C]) Sub(a, b Polynomial[C]) Polynomial[C] {
	return r.Add(a, r.Neg(b))
}

func (r Ring[C]) Neg(p Polynomial[C]) Polynomial[C] {
	return r.Scale(p, r.f.FromInt(-1))
}

// Scale multiplies every coefficient of p by c.
func (r Ring[C]) Scale(p Polynomial[C], c C) Polynomial[C] {
	terms := make(map[int]C, len(p.exps))
	for _, e := range p.exps {
		terms[e] = r.f.Mul(p.terms[e], c)
	}
	return r.build(p.name, terms)
}

// Mul is the product a*b with every term of exponent >= prec discarded.
func (r Ring[C]) Mul(a, b Polynomial[C], prec int) Polynomial[C] {
	terms := make(map[int]C)
	for _, i := range a.exps {
		ca := a.terms[i]
		for _, j := range b.exps {
			k := i + j
			// b.exps ascends, so every later j overshoots too.
			if k >= prec {
				break
			}
			prod := r.f.Mul(ca, b.terms[j])
			if acc, ok := terms[k]; ok {
				terms[k] = r.f.Add(acc, prod)
			} else {
				terms[k] = prod
			}
		}
	}
	return r.build(varOf(a.name, b.name), terms)
}

// Pow raises base to a non-negative integer power by square-and-multiply,
// truncating every intermediate product at prec.
func (r Ring[C]) Pow(base Polynomial[C], n int, prec int) (Polynomial[C], error) {
	if n < 0 {
		return Polynomial[C]{}, fmt.Errorf("pow: negative exponent %d: %w", n, ErrUnsupported)
	}
	if n == 0 {
		if base.IsZero() {
			return Polynomial[C]{}, fmt.Errorf("pow: 0^0: %w", ErrUndefined)
		}
		return r.Truncate(r.one(base.name), prec), nil
	}
	x, y := base, r.one(base.name)
	for n > 1 {
		if n%2 == 0 {
			x = r.Mul(x, x, prec)
			n /= 2
		} else {
			y = r.Mul(x, y, prec)
			x = r.Mul(x, x, prec)
			n = (n - 1) / 2
		}
	}
	return r.Mul(x, y, prec), nil
}

// sameVar reports whether p can be treated as a polynomial in v's variable.
func sameVar[C any](p, v Polynomial[C]) bool {
	return p.name == "" || v.name == "" || p.name == v.name
}

// Diff differentiates p term by term with respect to v's variable. A
// polynomial in another variable is a constant, so its derivative is empty.
func (r Ring[C]) Diff(p, v Polynomial[C]) Polynomial[C] {
	if !sameVar(p, v) {
		return newPolynomial(p.name, map[int]C{})
	}
	terms := make(map[int]C, len(p.exps))
	for _, e := range p.exps {
		if e == 0 {
			continue
		}
		terms[e-1] = r.f.Mul(r.f.FromInt(int64(e)), p.terms[e])
	}
	return r.build(varOf(p.name, v.name), terms)
}

// Integrate is the term-wise antiderivative with zero constant term. A term
// in x^-1 integrates to a logarithm and is rejected.
func (r Ring[C]) Integrate(p, v Polynomial[C]) (Polynomial[C], error) {
	if p.IsZero() {
		return newPolynomial(varOf(p.name, v.name), map[int]C{}), nil
	}
	if !sameVar(p, v) {
		return Polynomial[C]{}, fmt.Errorf("integrate: series in %s with respect to %s: %w", p.name, v.name, ErrUnsupported)
	}
	terms := make(map[int]C, len(p.exps))
	for _, e := range p.exps {
		if e == -1 {
			return Polynomial[C]{}, fmt.Errorf("integrate: term of degree -1: %w", ErrUnsupported)
		}
		terms[e+1] = r.f.Quo(p.terms[e], r.f.FromInt(int64(e+1)))
	}
	return r.build(varOf(p.name, v.name), terms), nil
}

// FindCoefficient returns the coefficient at deg, or zero when absent.
func (r Ring[C]) FindCoefficient(p Polynomial[C], deg int) C {
	if c, ok := p.terms[deg]; ok {
		return c
	}
	return r.f.Zero()
}

// Root is the principal n-th root c^(1/n).
func (r Ring[C]) Root(c C, n int) (C, error) {
	if n <= 0 {
		var zero C
		return zero, fmt.Errorf("root: degree %d: %w", n, ErrUndefined)
	}
	return r.f.Pow(c, r.f.Quo(r.f.One(), r.f.FromInt(int64(n)))), nil
}

// Substitute would compose two series. It is not supported.
func (r Ring[C]) Substitute(p, v, repl Polynomial[C], prec int) (Polynomial[C], error) {
	return Polynomial[C]{}, fmt.Errorf("substitute: %w", ErrUnsupported)
}
