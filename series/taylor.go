package series

import (
	"fmt"
	"maps"
)

// ============================================================
// Series-valued elementary functions
// ============================================================
//
// Each function is expanded from the differential equation it satisfies,
// using only ring operations: f(p) = f(p0) + integral(f'(p) * p'). The
// scalar evaluators supply f(p0) at the constant term p0. At precision 0
// every result is empty whatever the input; otherwise input with negative
// exponents is rejected.

// Inverse returns 1/p. p must have a non-zero constant term.
func (r Ring[C]) Inverse(p Polynomial[C], prec int) (Polynomial[C], error) {
	if prec <= 0 {
		return r.empty(p.name), nil
	}
	if p.IsZero() {
		return Polynomial[C]{}, fmt.Errorf("inverse: division by zero series: %w", ErrUndefined)
	}
	if low := p.exps[0]; low != 0 {
		return Polynomial[C]{}, fmt.Errorf("inverse: series with lowest degree %d: %w", low, ErrUnsupported)
	}
	inv0 := r.f.Quo(r.f.One(), p.terms[0])
	b := make([]C, 0, max(prec, 0))
	for n := 0; n < prec; n++ {
		if n == 0 {
			b = append(b, inv0)
			continue
		}
		// b[n] = -(1/p0) * sum_{k=1..n} p[k]*b[n-k]
		acc := r.f.Zero()
		for _, k := range p.exps[1:] {
			if k > n {
				break
			}
			acc = r.f.Add(acc, r.f.Mul(p.terms[k], b[n-k]))
		}
		b = append(b, r.f.Sub(r.f.Zero(), r.f.Mul(inv0, acc)))
	}
	terms := make(map[int]C, len(b))
	for n, c := range b {
		terms[n] = c
	}
	return r.build(p.name, terms), nil
}

// constantPart splits p into its constant term and the remainder.
func (r Ring[C]) constantPart(p Polynomial[C], op string) (C, Polynomial[C], error) {
	if low, err := r.LowDegree(p); err == nil && low < 0 {
		var zero C
		return zero, Polynomial[C]{}, fmt.Errorf("%s: pole of order %d: %w", op, -low, ErrUnsupported)
	}
	terms := maps.Clone(p.terms)
	delete(terms, 0)
	return r.FindCoefficient(p, 0), newPolynomial(p.name, terms), nil
}

// ExpSeries is exp(p).
func (r Ring[C]) ExpSeries(p Polynomial[C], prec int) (Polynomial[C], error) {
	if prec <= 0 {
		return r.empty(p.name), nil
	}
	c0, t, err := r.constantPart(p, "exp")
	if err != nil {
		return Polynomial[C]{}, err
	}
	v := r.Var(p.name)
	dt := r.Diff(t, v)
	// f' = t'f, f(0) = 1; each pass fixes one more coefficient.
	f := r.one(p.name)
	for i := 1; i < prec; i++ {
		g, err := r.Integrate(r.Mul(dt, f, prec-1), v)
		if err != nil {
			return Polynomial[C]{}, fmt.Errorf("exp: %w", err)
		}
		f = r.Add(r.one(p.name), g)
	}
	return r.Scale(r.Truncate(f, prec), r.Exp(c0)), nil
}

// LogSeries is log(p). p must have a non-zero constant term.
func (r Ring[C]) LogSeries(p Polynomial[C], prec int) (Polynomial[C], error) {
	if prec <= 0 {
		return r.empty(p.name), nil
	}
	c0, _, err := r.constantPart(p, "log")
	if err != nil {
		return Polynomial[C]{}, err
	}
	if r.f.IsZero(c0) {
		return Polynomial[C]{}, fmt.Errorf("log: series without constant term: %w", ErrUnsupported)
	}
	v := r.Var(p.name)
	inv, err := r.Inverse(p, prec-1)
	if err != nil {
		return Polynomial[C]{}, fmt.Errorf("log: %w", err)
	}
	return r.integral(r.Log(c0), r.Mul(r.Diff(p, v), inv, prec-1), v, prec)
}

// integral is c + the antiderivative of d, truncated at prec.
func (r Ring[C]) integral(c C, d, v Polynomial[C], prec int) (Polynomial[C], error) {
	g, err := r.Integrate(d, v)
	if err != nil {
		return Polynomial[C]{}, err
	}
	return r.Truncate(r.Add(r.Constant(c), g), prec), nil
}

// PowCoeff is p^a for a scalar exponent a. p must have a non-zero constant
// term p0; the result is p0^a * exp(a*log(p/p0)).
func (r Ring[C]) PowCoeff(p Polynomial[C], a C, prec int) (Polynomial[C], error) {
	if prec <= 0 {
		return r.empty(p.name), nil
	}
	c0, _, err := r.constantPart(p, "pow")
	if err != nil {
		return Polynomial[C]{}, err
	}
	if r.f.IsZero(c0) {
		return Polynomial[C]{}, fmt.Errorf("pow: scalar power of a series without constant term: %w", ErrUnsupported)
	}
	return r.powScaled(p, a, r.f.Pow(c0, a), c0, prec)
}

// RootSeries is the principal n-th root of p, seeded by Root on p0.
func (r Ring[C]) RootSeries(p Polynomial[C], n int, prec int) (Polynomial[C], error) {
	if prec <= 0 {
		return r.empty(p.name), nil
	}
	c0, _, err := r.constantPart(p, "root")
	if err != nil {
		return Polynomial[C]{}, err
	}
	if r.f.IsZero(c0) {
		return Polynomial[C]{}, fmt.Errorf("root: series without constant term: %w", ErrUnsupported)
	}
	lead, err := r.Root(c0, n)
	if err != nil {
		return Polynomial[C]{}, err
	}
	return r.powScaled(p, r.f.Quo(r.f.One(), r.f.FromInt(int64(n))), lead, c0, prec)
}

func (r Ring[C]) powScaled(p Polynomial[C], a, lead, c0 C, prec int) (Polynomial[C], error) {
	u := r.Scale(p, r.f.Quo(r.f.One(), c0))
	l, err := r.LogSeries(u, prec)
	if err != nil {
		return Polynomial[C]{}, err
	}
	e, err := r.ExpSeries(r.Scale(l, a), prec)
	if err != nil {
		return Polynomial[C]{}, err
	}
	return r.Scale(e, lead), nil
}

// sinCos returns (sin t, cos t), or (sinh t, cosh t) when hyperbolic, for
// a series t without constant term.
func (r Ring[C]) sinCos(t Polynomial[C], prec int, hyperbolic bool) (Polynomial[C], Polynomial[C], error) {
	v := r.Var(t.name)
	dt := r.Diff(t, v)
	s, c := newPolynomial(t.name, map[int]C{}), r.one(t.name)
	for i := 1; i < prec; i++ {
		ns, err := r.Integrate(r.Mul(dt, c, prec-1), v)
		if err != nil {
			return Polynomial[C]{}, Polynomial[C]{}, err
		}
		is, err := r.Integrate(r.Mul(dt, s, prec-1), v)
		if err != nil {
			return Polynomial[C]{}, Polynomial[C]{}, err
		}
		if hyperbolic {
			c = r.Add(r.one(t.name), is)
		} else {
			c = r.Sub(r.one(t.name), is)
		}
		s = ns
	}
	return r.Truncate(s, prec), r.Truncate(c, prec), nil
}

// SinSeries is sin(p) = sin(p0)cos(t) + cos(p0)sin(t) with t = p - p0.
func (r Ring[C]) SinSeries(p Polynomial[C], prec int) (Polynomial[C], error) {
	if prec <= 0 {
		return r.empty(p.name), nil
	}
	c0, t, err := r.constantPart(p, "sin")
	if err != nil {
		return Polynomial[C]{}, err
	}
	s, c, err := r.sinCos(t, prec, false)
	if err != nil {
		return Polynomial[C]{}, fmt.Errorf("sin: %w", err)
	}
	return r.Add(r.Scale(c, r.Sin(c0)), r.Scale(s, r.Cos(c0))), nil
}

// CosSeries is cos(p) = cos(p0)cos(t) - sin(p0)sin(t).
func (r Ring[C]) CosSeries(p Polynomial[C], prec int) (Polynomial[C], error) {
	if prec <= 0 {
		return r.empty(p.name), nil
	}
	c0, t, err := r.constantPart(p, "cos")
	if err != nil {
		return Polynomial[C]{}, err
	}
	s, c, err := r.sinCos(t, prec, false)
	if err != nil {
		return Polynomial[C]{}, fmt.Errorf("cos: %w", err)
	}
	return r.Sub(r.Scale(c, r.Cos(c0)), r.Scale(s, r.Sin(c0))), nil
}

// TanSeries is sin(p)/cos(p).
func (r Ring[C]) TanSeries(p Polynomial[C], prec int) (Polynomial[C], error) {
	return r.quotient(p, prec, r.SinSeries, r.CosSeries, "tan")
}

// SinhSeries is sinh(p) = sinh(p0)cosh(t) + cosh(p0)sinh(t).
func (r Ring[C]) SinhSeries(p Polynomial[C], prec int) (Polynomial[C], error) {
	if prec <= 0 {
		return r.empty(p.name), nil
	}
	c0, t, err := r.constantPart(p, "sinh")
	if err != nil {
		return Polynomial[C]{}, err
	}
	s, c, err := r.sinCos(t, prec, true)
	if err != nil {
		return Polynomial[C]{}, fmt.Errorf("sinh: %w", err)
	}
	return r.Add(r.Scale(c, r.Sinh(c0)), r.Scale(s, r.Cosh(c0))), nil
}

// CoshSeries is cosh(p) = cosh(p0)cosh(t) + sinh(p0)sinh(t).
func (r Ring[C]) CoshSeries(p Polynomial[C], prec int) (Polynomial[C], error) {
	if prec <= 0 {
		return r.empty(p.name), nil
	}
	c0, t, err := r.constantPart(p, "cosh")
	if err != nil {
		return Polynomial[C]{}, err
	}
	s, c, err := r.sinCos(t, prec, true)
	if err != nil {
		return Polynomial[C]{}, fmt.Errorf("cosh: %w", err)
	}
	return r.Add(r.Scale(c, r.Cosh(c0)), r.Scale(s, r.Sinh(c0))), nil
}

// TanhSeries is sinh(p)/cosh(p).
func (r Ring[C]) TanhSeries(p Polynomial[C], prec int) (Polynomial[C], error) {
	return r.quotient(p, prec, r.SinhSeries, r.CoshSeries, "tanh")
}

type seriesFunc[C any] func(Polynomial[C], int) (Polynomial[C], error)

func (r Ring[C]) quotient(p Polynomial[C], prec int, num, den seriesFunc[C], op string) (Polynomial[C], error) {
	if prec <= 0 {
		return r.empty(p.name), nil
	}
	n, err := num(p, prec)
	if err != nil {
		return Polynomial[C]{}, err
	}
	d, err := den(p, prec)
	if err != nil {
		return Polynomial[C]{}, err
	}
	inv, err := r.Inverse(d, prec)
	if err != nil {
		return Polynomial[C]{}, fmt.Errorf("%s: %w", op, err)
	}
	return r.Mul(n, inv, prec), nil
}

// AsinSeries is asin(p0) + integral(p' / sqrt(1 - p^2)).
func (r Ring[C]) AsinSeries(p Polynomial[C], prec int) (Polynomial[C], error) {
	return r.inverseTrig(p, prec, "asin", r.Asin, -1, true, false)
}

// AcosSeries is acos(p0) - integral(p' / sqrt(1 - p^2)).
func (r Ring[C]) AcosSeries(p Polynomial[C], prec int) (Polynomial[C], error) {
	return r.inverseTrig(p, prec, "acos", r.Acos, -1, true, true)
}

// AtanSeries is atan(p0) + integral(p' / (1 + p^2)).
func (r Ring[C]) AtanSeries(p Polynomial[C], prec int) (Polynomial[C], error) {
	return r.inverseTrig(p, prec, "atan", r.Atan, 1, false, false)
}

// AsinhSeries is asinh(p0) + integral(p' / sqrt(1 + p^2)).
func (r Ring[C]) AsinhSeries(p Polynomial[C], prec int) (Polynomial[C], error) {
	return r.inverseTrig(p, prec, "asinh", r.Asinh, 1, true, false)
}

// AtanhSeries is atanh(p0) + integral(p' / (1 - p^2)).
func (r Ring[C]) AtanhSeries(p Polynomial[C], prec int) (Polynomial[C], error) {
	return r.inverseTrig(p, prec, "atanh", r.Atanh, -1, false, false)
}

// inverseTrig integrates p' / w^(1/2 if root) with w = 1 + sign*p^2.
func (r Ring[C]) inverseTrig(p Polynomial[C], prec int, op string, at func(C) C, sign int64, root, negate bool) (Polynomial[C], error) {
	c0, _, err := r.constantPart(p, op)
	if err != nil {
		return Polynomial[C]{}, err
	}
	if prec <= 0 {
		return r.empty(p.name), nil
	}
	v := r.Var(p.name)
	w := r.Add(r.one(p.name), r.Scale(r.Mul(p, p, prec-1), r.f.FromInt(sign)))
	if root {
		if w, err = r.RootSeries(w, 2, prec-1); err != nil {
			return Polynomial[C]{}, fmt.Errorf("%s: %w", op, err)
		}
	}
	inv, err := r.Inverse(w, prec-1)
	if err != nil {
		return Polynomial[C]{}, fmt.Errorf("%s: %w", op, err)
	}
	d := r.Mul(r.Diff(p, v), inv, prec-1)
	if negate {
		d = r.Neg(d)
	}
	return r.integral(at(c0), d, v, prec)
}
