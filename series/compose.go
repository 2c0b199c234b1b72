package series

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/njchilds90/goseries/symbolic"
)

// Compose expands e as a truncated power series in the variable name. seed
// is the series standing in for the variable itself, normally
// Ring.Var(name). The expression is simplified once and then walked bottom
// up: a subtree free of name becomes a constant, the variable becomes seed,
// and every other node combines the series of its children with the
// matching ring operation.
func Compose(seed Polynomial[symbolic.Expr], name string, prec int, e symbolic.Expr) (Polynomial[symbolic.Expr], error) {
	c := &composer{ring: ring, seed: seed, name: name, prec: prec}
	return c.series(e.Simplify())
}

var ring = NewRing[symbolic.Expr](symbolic.Field{})

type composer struct {
	ring Ring[symbolic.Expr]
	seed Polynomial[symbolic.Expr]
	name string
	prec int
}

func (c *composer) constant(e symbolic.Expr) Polynomial[symbolic.Expr] {
	return c.ring.Truncate(c.ring.FromMap(c.name, map[int]symbolic.Expr{0: e}), c.prec)
}

func (c *composer) series(e symbolic.Expr) (Polynomial[symbolic.Expr], error) {
	if !symbolic.Has(e, c.name) {
		return c.constant(e), nil
	}
	switch v := e.(type) {
	case *symbolic.Sym:
		return c.ring.Truncate(c.seed, c.prec), nil
	case *symbolic.Add:
		sum := c.constant(symbolic.N(0))
		for _, t := range v.Terms() {
			s, err := c.series(t)
			if err != nil {
				return Polynomial[symbolic.Expr]{}, err
			}
			sum = c.ring.Add(sum, s)
		}
		return sum, nil
	case *symbolic.Mul:
		prod := c.constant(symbolic.N(1))
		for _, f := range v.Factors() {
			s, err := c.series(f)
			if err != nil {
				return Polynomial[symbolic.Expr]{}, err
			}
			prod = c.ring.Mul(prod, s, c.prec)
		}
		return prod, nil
	case *symbolic.Pow:
		return c.pow(v)
	case *symbolic.Func:
		return c.function(v)
	}
	return Polynomial[symbolic.Expr]{}, fmt.Errorf("compose: %s: %w", e, ErrUnsupported)
}

func (c *composer) pow(v *symbolic.Pow) (Polynomial[symbolic.Expr], error) {
	b, err := c.series(v.Base())
	if err != nil {
		return Polynomial[symbolic.Expr]{}, err
	}
	n, ok := v.ExpExpr().(*symbolic.Num)
	if !ok {
		// b^e = exp(e*log(b))
		l, err := c.ring.LogSeries(b, c.prec)
		if err != nil {
			return Polynomial[symbolic.Expr]{}, fmt.Errorf("compose: %s: %w", v, err)
		}
		e, err := c.series(v.ExpExpr())
		if err != nil {
			return Polynomial[symbolic.Expr]{}, err
		}
		return c.ring.ExpSeries(c.ring.Mul(e, l, c.prec), c.prec)
	}
	if !n.IsInteger() {
		return c.ring.PowCoeff(b, n, c.prec)
	}
	k, fits := n.Int64()
	exp, err := safecast.Conv[int](k)
	if !fits || err != nil {
		// Too large for repeated squaring. A base without constant term
		// vanishes; any other base has binomial coefficients in n.
		if !n.IsNegative() && c.vanishes(b) {
			return c.constant(symbolic.N(0)), nil
		}
		return c.ring.PowCoeff(b, n, c.prec)
	}
	if exp >= c.prec && c.vanishes(b) {
		return c.constant(symbolic.N(0)), nil
	}
	if exp >= 0 {
		return c.ring.Pow(b, exp, c.prec)
	}
	p, err := c.ring.Pow(b, -exp, c.prec)
	if err != nil {
		return Polynomial[symbolic.Expr]{}, err
	}
	return c.ring.Inverse(p, c.prec)
}

// vanishes reports whether b has no term below degree 1.
func (c *composer) vanishes(b Polynomial[symbolic.Expr]) bool {
	low, err := c.ring.LowDegree(b)
	return err != nil || low >= 1
}

func (c *composer) function(v *symbolic.Func) (Polynomial[symbolic.Expr], error) {
	arg, err := c.series(v.Arg())
	if err != nil {
		return Polynomial[symbolic.Expr]{}, err
	}
	var apply seriesFunc[symbolic.Expr]
	switch v.FuncName() {
	case FuncSin:
		apply = c.ring.SinSeries
	case FuncCos:
		apply = c.ring.CosSeries
	case FuncTan:
		apply = c.ring.TanSeries
	case FuncAsin:
		apply = c.ring.AsinSeries
	case FuncAcos:
		apply = c.ring.AcosSeries
	case FuncAtan:
		apply = c.ring.AtanSeries
	case FuncSinh:
		apply = c.ring.SinhSeries
	case FuncCosh:
		apply = c.ring.CoshSeries
	case FuncTanh:
		apply = c.ring.TanhSeries
	case FuncAsinh:
		apply = c.ring.AsinhSeries
	case FuncAtanh:
		apply = c.ring.AtanhSeries
	case FuncExp:
		apply = c.ring.ExpSeries
	case FuncLog, "ln":
		apply = c.ring.LogSeries
	default:
		return Polynomial[symbolic.Expr]{}, fmt.Errorf("compose: function %s: %w", v.FuncName(), ErrUnsupported)
	}
	return apply(arg, c.prec)
}
