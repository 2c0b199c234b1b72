package series_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/goseries/series"
	"github.com/njchilds90/goseries/symbolic"
)

func expand(t *testing.T, e symbolic.Expr, name string, prec int) *series.Series {
	t.Helper()
	s, err := series.Expand(e, name, prec)
	require.NoError(t, err)
	return s
}

func strs(es []symbolic.Expr) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.String()
	}
	return out
}

// ============================================================
// Expand
// ============================================================

func TestExpand_Sin(t *testing.T) {
	s := expand(t, symbolic.SinOf(x), "x", 5)
	assert.Equal(t, "x", s.Var())
	assert.Equal(t, 5, s.Precision())
	assert.Equal(t, 3, s.Degree())
	assert.Equal(t, map[int]string{1: "1", 3: "-1/6"}, render(s.Polynomial()))
	assert.Equal(t, "x - 1/6*x^3 + O(x^5)", s.String())
	assert.Equal(t, `x - \frac{1}{6} x^{3} + \mathcal{O}\left(x^{5}\right)`, s.LaTeX())
}

func TestExpand_String(t *testing.T) {
	tests := []struct {
		expr symbolic.Expr
		prec int
		want string
	}{
		{symbolic.ExpOf(x), 4, "1 + x + 1/2*x^2 + 1/6*x^3 + O(x^4)"},
		{symbolic.CosOf(x), 1, "1 + O(x)"},
		{symbolic.SinOf(x), 0, "O(1)"},
		{symbolic.MulOf(a, x), 3, "a*x + O(x^3)"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, expand(t, tc.expr, "x", tc.prec).String())
	}
}

func TestExpand_NegativePrecision(t *testing.T) {
	_, err := series.Expand(x, "x", -1)
	assert.ErrorIs(t, err, series.ErrInvalidPrecision)
}

func TestExpand_WrapsCompositionErrors(t *testing.T) {
	_, err := series.Expand(symbolic.LnOf(x), "x", 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, series.ErrUnsupported)
	assert.Contains(t, err.Error(), "ln(x)")
}

func TestFromPolynomial_Truncates(t *testing.T) {
	s, err := series.FromPolynomial(poly(map[int]int64{0: 1, 2: 1, 5: 1}), "x", 3)
	require.NoError(t, err)
	assert.Equal(t, map[int]string{0: "1", 2: "1"}, render(s.Polynomial()))

	_, err = series.FromPolynomial(poly(nil), "x", -2)
	assert.ErrorIs(t, err, series.ErrInvalidPrecision)
}

// ============================================================
// Coefficients
// ============================================================

func TestCoefficientAt_IsTotal(t *testing.T) {
	s := expand(t, symbolic.SinOf(x), "x", 5)
	assert.Equal(t, "1", s.CoefficientAt(1).String())
	assert.Equal(t, "-1/6", s.CoefficientAt(3).String())
	for _, d := range []int{-7, -1, 0, 2, 4, 5, 99} {
		assert.True(t, symbolic.IsZero(s.CoefficientAt(d)), "degree %d", d)
	}
}

func TestCoefficients_Dense(t *testing.T) {
	s := expand(t, symbolic.ExpOf(x), "x", 4)
	assert.Equal(t, []string{"1", "1", "1/2", "1/6"}, strs(s.Coefficients()))
}

func TestCoefficients_SparseFillsZeros(t *testing.T) {
	s := expand(t, symbolic.SinOf(x), "x", 5)
	assert.Equal(t, []string{"0", "1", "0", "-1/6"}, strs(s.Coefficients()))
}

func TestCoefficients_Empty(t *testing.T) {
	s := expand(t, symbolic.SinOf(x), "x", 0)
	assert.Nil(t, s.Coefficients())
	assert.Equal(t, 0, s.Degree())
}

// ============================================================
// Round trip, hashing and ordering
// ============================================================

func TestToExpression_RoundTrip(t *testing.T) {
	exprs := []symbolic.Expr{
		symbolic.SinOf(x),
		symbolic.ExpOf(x),
		symbolic.ExpOf(symbolic.MulOf(a, x)),
		symbolic.CosOf(symbolic.AddOf(x, a)),
		symbolic.AtanOf(x),
		symbolic.SqrtOf(symbolic.AddOf(symbolic.N(1), x)),
		symbolic.AddOf(symbolic.SinOf(a), symbolic.N(3)),
	}
	for _, e := range exprs {
		s := expand(t, e, "x", 6)
		back := expand(t, s.ToExpression(), "x", 6)
		assert.True(t, s.Equal(back), "%s: %s != %s", e, s, back)
		assert.Equal(t, render(s.Polynomial()), render(back.Polynomial()), "expr %s", e)
		assert.Equal(t, s.Hash(), back.Hash(), "expr %s", e)
	}
}

func TestToExpression(t *testing.T) {
	s := expand(t, symbolic.SinOf(x), "x", 5)
	assert.Equal(t, "x - 1/6*x^3", s.ToExpression().String())
}

func TestHash_IgnoresPrecisionAndVariable(t *testing.T) {
	s5 := expand(t, symbolic.SinOf(x), "x", 5)
	s4 := expand(t, symbolic.SinOf(x), "x", 4)
	st := expand(t, symbolic.SinOf(symbolic.S("t")), "t", 5)
	assert.Equal(t, s5.Hash(), s4.Hash())
	assert.Equal(t, s5.Hash(), st.Hash())
	assert.True(t, s5.Equal(s4))
}

func TestEqual_DependsOnVariable(t *testing.T) {
	sx := expand(t, symbolic.SinOf(x), "x", 5)
	st := expand(t, symbolic.SinOf(symbolic.S("t")), "t", 5)
	assert.False(t, sx.Equal(st))
	assert.NotZero(t, sx.Compare(st))
	assert.Equal(t, -sx.Compare(st), st.Compare(sx))
}

func TestHash_DistinguishesSeries(t *testing.T) {
	sin := expand(t, symbolic.SinOf(x), "x", 6)
	sinh := expand(t, symbolic.SinhOf(x), "x", 6)
	assert.NotEqual(t, sin.Hash(), sinh.Hash())
	assert.False(t, sin.Equal(sinh))
}

func TestCompare_Antisymmetric(t *testing.T) {
	sin := expand(t, symbolic.SinOf(x), "x", 6)
	exp := expand(t, symbolic.ExpOf(x), "x", 6)
	assert.Zero(t, sin.Compare(sin))
	assert.NotZero(t, sin.Compare(exp))
	assert.Equal(t, -sin.Compare(exp), exp.Compare(sin))
}
