package series

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/njchilds90/goseries/symbolic"
)

// Series is a truncated expansion of an expression around 0 in one
// variable. Every stored exponent is below Precision. A Series is immutable
// and safe for concurrent use.
type Series struct {
	poly Polynomial[symbolic.Expr]
	name string
	prec int
}

// Expand returns the series of e in name with every term of degree >= prec
// dropped.
//
//	s, err := series.Expand(symbolic.SinOf(symbolic.S("x")), "x", 5)
//	// s.String() == "x - 1/6*x^3 + O(x^5)"
func Expand(e symbolic.Expr, name string, prec int) (*Series, error) {
	if prec < 0 {
		return nil, fmt.Errorf("expand: precision %d: %w", prec, ErrInvalidPrecision)
	}
	p, err := Compose(ring.Var(name), name, prec, e)
	if err != nil {
		return nil, fmt.Errorf("expand %s in %s: %w", e, name, err)
	}
	return &Series{poly: p, name: name, prec: prec}, nil
}

// FromPolynomial wraps p, truncated at prec, as a series in name.
func FromPolynomial(p Polynomial[symbolic.Expr], name string, prec int) (*Series, error) {
	if prec < 0 {
		return nil, fmt.Errorf("series: precision %d: %w", prec, ErrInvalidPrecision)
	}
	return &Series{poly: ring.Truncate(p, prec), name: name, prec: prec}, nil
}

func (s *Series) Var() string                           { return s.name }
func (s *Series) Precision() int                        { return s.prec }
func (s *Series) Degree() int                           { return s.poly.Degree() }
func (s *Series) Polynomial() Polynomial[symbolic.Expr] { return s.poly }

// CoefficientAt returns the coefficient of x^deg, zero when absent.
func (s *Series) CoefficientAt(deg int) symbolic.Expr {
	return ring.FindCoefficient(s.poly, deg)
}

// Coefficients returns the dense coefficient list for degrees 0..Degree,
// with zero at every missing degree. It is nil for an empty series and for
// a series whose terms all have negative degree.
func (s *Series) Coefficients() []symbolic.Expr {
	if s.poly.IsZero() || s.Degree() < 0 {
		return nil
	}
	out := make([]symbolic.Expr, s.Degree()+1)
	for i := range out {
		out[i] = s.CoefficientAt(i)
	}
	return out
}

// ToExpression rebuilds sum(c_k * x^k) as a simplified expression.
func (s *Series) ToExpression() symbolic.Expr {
	x := symbolic.S(s.name)
	terms := make([]symbolic.Expr, 0, s.poly.Len())
	for e, c := range s.poly.All() {
		terms = append(terms, symbolic.MulOf(c, symbolic.PowOf(x, symbolic.N(int64(e)))))
	}
	return symbolic.AddOf(terms...)
}

const degreeHashFactor = 84728863

// Hash mixes every (exponent, coefficient hash) pair with the degree. Equal
// series hash alike whatever their precision or variable name.
func (s *Series) Hash() uint64 {
	d := xxhash.New()
	var buf [16]byte
	for e, c := range s.poly.All() {
		binary.LittleEndian.PutUint64(buf[:8], uint64(e))
		binary.LittleEndian.PutUint64(buf[8:], symbolic.Hash(c))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64() + uint64(s.Degree())*degreeHashFactor
}

// Compare orders series by their expression form.
func (s *Series) Compare(o *Series) int {
	return symbolic.Compare(s.ToExpression(), o.ToExpression())
}

func (s *Series) Equal(o *Series) bool { return s.Compare(o) == 0 }

// String renders the terms in ascending degree followed by the order term,
// e.g. "x - 1/6*x^3 + O(x^5)".
func (s *Series) String() string {
	return s.render(symbolic.String, "O(%s)", s.orderString(false))
}

// LaTeX is String in LaTeX notation.
func (s *Series) LaTeX() string {
	return s.render(symbolic.LaTeX, `\mathcal{O}\left(%s\right)`, s.orderString(true))
}

func (s *Series) orderString(latex bool) string {
	switch {
	case s.prec == 0:
		return "1"
	case s.prec == 1:
		return s.name
	case latex:
		return fmt.Sprintf("%s^{%d}", s.name, s.prec)
	}
	return fmt.Sprintf("%s^%d", s.name, s.prec)
}

func (s *Series) render(term func(symbolic.Expr) string, order, arg string) string {
	var sb strings.Builder
	x := symbolic.S(s.name)
	for e, c := range s.poly.All() {
		t := term(symbolic.MulOf(c, symbolic.PowOf(x, symbolic.N(int64(e)))))
		switch {
		case sb.Len() == 0:
			sb.WriteString(t)
		case strings.HasPrefix(t, "-"):
			sb.WriteString(" - " + t[1:])
		default:
			sb.WriteString(" + " + t)
		}
	}
	if sb.Len() > 0 {
		sb.WriteString(" + ")
	}
	fmt.Fprintf(&sb, order, arg)
	return sb.String()
}
