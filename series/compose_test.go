package series_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/goseries/series"
	"github.com/njchilds90/goseries/symbolic"
)

var (
	x = symbolic.S("x")
	a = symbolic.S("a")
)

func compose(t *testing.T, e symbolic.Expr, prec int) map[int]string {
	t.Helper()
	p, err := series.Compose(r.Var("x"), "x", prec, e)
	require.NoError(t, err)
	for _, exp := range p.Exponents() {
		require.Less(t, exp, prec)
	}
	return render(p)
}

func TestCompose_Sin(t *testing.T) {
	assert.Equal(t, map[int]string{1: "1", 3: "-1/6"}, compose(t, symbolic.SinOf(x), 5))
}

func TestCompose_Elementary(t *testing.T) {
	onePlusX := symbolic.AddOf(symbolic.N(1), x)
	tests := []struct {
		name string
		expr symbolic.Expr
		prec int
		want map[int]string
	}{
		{"exp", symbolic.ExpOf(x), 4, map[int]string{0: "1", 1: "1", 2: "1/2", 3: "1/6"}},
		{"cos", symbolic.CosOf(x), 6, map[int]string{0: "1", 2: "-1/2", 4: "1/24"}},
		{"tan", symbolic.TanOf(x), 6, map[int]string{1: "1", 3: "1/3", 5: "2/15"}},
		{"sinh", symbolic.SinhOf(x), 6, map[int]string{1: "1", 3: "1/6", 5: "1/120"}},
		{"cosh", symbolic.CoshOf(x), 5, map[int]string{0: "1", 2: "1/2", 4: "1/24"}},
		{"tanh", symbolic.TanhOf(x), 6, map[int]string{1: "1", 3: "-1/3", 5: "2/15"}},
		{"log", symbolic.LnOf(onePlusX), 4, map[int]string{1: "1", 2: "-1/2", 3: "1/3"}},
		{"atan", symbolic.AtanOf(x), 6, map[int]string{1: "1", 3: "-1/3", 5: "1/5"}},
		{"asin", symbolic.AsinOf(x), 6, map[int]string{1: "1", 3: "1/6", 5: "3/40"}},
		{"asinh", symbolic.AsinhOf(x), 6, map[int]string{1: "1", 3: "-1/6", 5: "3/40"}},
		{"atanh", symbolic.AtanhOf(x), 6, map[int]string{1: "1", 3: "1/3", 5: "1/5"}},
		{"geometric", symbolic.QuoOf(symbolic.N(1), symbolic.SubOf(symbolic.N(1), x)), 4,
			map[int]string{0: "1", 1: "1", 2: "1", 3: "1"}},
		{"sqrt", symbolic.SqrtOf(onePlusX), 3, map[int]string{0: "1", 1: "1/2", 2: "-1/8"}},
		{"polynomial", symbolic.PowOf(onePlusX, symbolic.N(3)), 10, map[int]string{0: "1", 1: "3", 2: "3", 3: "1"}},
		{"sin squared", symbolic.PowOf(symbolic.SinOf(x), symbolic.N(2)), 5, map[int]string{2: "1", 4: "-1/3"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, compose(t, tc.expr, tc.prec))
		})
	}
}

func TestCompose_SymbolicCoefficients(t *testing.T) {
	got := compose(t, symbolic.ExpOf(symbolic.AddOf(x, a)), 3)
	assert.Equal(t, map[int]string{0: "exp(a)", 1: "exp(a)", 2: "1/2*exp(a)"}, got)

	got = compose(t, symbolic.ExpOf(symbolic.MulOf(a, x)), 4)
	assert.Equal(t, map[int]string{0: "1", 1: "a", 2: "1/2*a^2", 3: "1/6*a^3"}, got)

	got = compose(t, symbolic.CosOf(symbolic.AddOf(x, a)), 2)
	assert.Equal(t, map[int]string{0: "cos(a)", 1: "-sin(a)"}, got)
}

func TestCompose_ConstantsIgnoreTheVariable(t *testing.T) {
	assert.Equal(t, map[int]string{0: "sin(a)"}, compose(t, symbolic.SinOf(a), 3))
	assert.Empty(t, compose(t, symbolic.N(5), 0))
	assert.Empty(t, compose(t, symbolic.N(0), 4))
}

func TestCompose_PrecisionZeroIsEmpty(t *testing.T) {
	onePlusX := symbolic.AddOf(symbolic.N(1), x)
	for _, e := range []symbolic.Expr{
		x,
		symbolic.ExpOf(x),
		symbolic.CosOf(x),
		symbolic.AtanOf(x),
		symbolic.AsinOf(x),
		symbolic.TanOf(x),
		symbolic.TanhOf(x),
		symbolic.LnOf(onePlusX),
		symbolic.SqrtOf(onePlusX),
		symbolic.QuoOf(symbolic.N(1), onePlusX),
		symbolic.PowOf(onePlusX, a),
	} {
		assert.Empty(t, compose(t, e, 0), "expr %s", e)
	}
}

func TestExpand_PrecisionZeroPrintsOrderTerm(t *testing.T) {
	for _, e := range []symbolic.Expr{
		symbolic.TanOf(x),
		symbolic.LnOf(symbolic.AddOf(symbolic.N(1), x)),
		symbolic.QuoOf(symbolic.N(1), symbolic.AddOf(symbolic.N(1), x)),
	} {
		s, err := series.Expand(e, "x", 0)
		require.NoError(t, err, "expr %s", e)
		assert.Equal(t, "O(1)", s.String())
	}
}

func TestCompose_HugeIntegerExponent(t *testing.T) {
	huge := symbolic.NRat(new(big.Rat).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(30), nil)))

	assert.Empty(t, compose(t, symbolic.PowOf(x, huge), 4))
	assert.Empty(t, compose(t, symbolic.PowOf(symbolic.SinOf(x), huge), 4))

	got := compose(t, symbolic.PowOf(symbolic.AddOf(symbolic.N(1), x), huge), 2)
	assert.Equal(t, map[int]string{0: "1", 1: huge.String()}, got)

	_, err := series.Compose(r.Var("x"), "x", 4, symbolic.PowOf(x, symbolic.Neg(huge)))
	assert.ErrorIs(t, err, series.ErrUnsupported)
}

func TestCompose_PowerBeyondPrecisionVanishes(t *testing.T) {
	assert.Empty(t, compose(t, symbolic.PowOf(symbolic.SinOf(x), symbolic.N(4)), 4))
	assert.Equal(t, map[int]string{3: "1"}, compose(t, symbolic.PowOf(symbolic.SinOf(x), symbolic.N(3)), 4))
}

func TestCompose_Unsupported(t *testing.T) {
	tests := []struct {
		name string
		expr symbolic.Expr
	}{
		{"pole", symbolic.PowOf(x, symbolic.N(-1))},
		{"log at zero", symbolic.LnOf(x)},
		{"sqrt at zero", symbolic.SqrtOf(x)},
		{"symbolic exponent at zero", symbolic.PowOf(x, a)},
		{"asin at branch point", symbolic.AsinOf(symbolic.AddOf(symbolic.N(1), x))},
		{"unknown function", symbolic.AbsOf(x)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := series.Compose(r.Var("x"), "x", 4, tc.expr)
			assert.ErrorIs(t, err, series.ErrUnsupported)
		})
	}
}
