package series_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/goseries/series"
	"github.com/njchilds90/goseries/symbolic"
)

var r = series.NewRing[symbolic.Expr](symbolic.Field{})

// poly builds a polynomial in x with integer coefficients.
func poly(terms map[int]int64) series.Polynomial[symbolic.Expr] {
	m := make(map[int]symbolic.Expr, len(terms))
	for e, c := range terms {
		m[e] = symbolic.N(c)
	}
	return r.FromMap("x", m)
}

// render maps each exponent to its coefficient's string form.
func render(p series.Polynomial[symbolic.Expr]) map[int]string {
	out := make(map[int]string, p.Len())
	for e, c := range p.All() {
		out[e] = c.String()
	}
	return out
}

// ============================================================
// Construction
// ============================================================

func TestFromMap_DropsZeros(t *testing.T) {
	p := poly(map[int]int64{0: 1, 1: 0, 4: 0})
	assert.Equal(t, map[int]string{0: "1"}, render(p))
	assert.Equal(t, 0, p.Degree())
}

func TestPolynomial_EmptyHasDegreeZero(t *testing.T) {
	var p series.Polynomial[symbolic.Expr]
	assert.True(t, p.IsZero())
	assert.Equal(t, 0, p.Degree())
	assert.Empty(t, p.Exponents())
}

func TestPolynomial_ExponentsAscend(t *testing.T) {
	p := poly(map[int]int64{5: 1, -2: 3, 0: 7})
	assert.Equal(t, []int{-2, 0, 5}, p.Exponents())
	assert.Equal(t, 5, p.Degree())
	assert.Equal(t, "x", p.Var())
}

func TestLowDegree(t *testing.T) {
	low, err := r.LowDegree(poly(map[int]int64{3: 1, 7: 2}))
	require.NoError(t, err)
	assert.Equal(t, 3, low)

	_, err = r.LowDegree(poly(nil))
	assert.ErrorIs(t, err, series.ErrEmptySeries)
}

// ============================================================
// Multiplication and powers
// ============================================================

func TestMul_TruncatesAtPrecision(t *testing.T) {
	onePlusX := poly(map[int]int64{0: 1, 1: 1})
	got := r.Mul(onePlusX, onePlusX, 2)
	assert.Equal(t, map[int]string{0: "1", 1: "2"}, render(got))
}

func TestMul_TruncationClosure(t *testing.T) {
	polys := []series.Polynomial[symbolic.Expr]{
		poly(nil),
		poly(map[int]int64{0: 1}),
		poly(map[int]int64{0: 2, 1: -1, 3: 5}),
		poly(map[int]int64{-1: 1, 2: 4}),
		poly(map[int]int64{1: 1, 2: 1, 6: -3}),
	}
	for _, a := range polys {
		for _, b := range polys {
			for prec := 0; prec <= 8; prec++ {
				for _, e := range r.Mul(a, b, prec).Exponents() {
					assert.Less(t, e, prec)
				}
			}
		}
	}
}

func TestMul_DoesNotMutateInputs(t *testing.T) {
	a := poly(map[int]int64{0: 1, 1: 1})
	before := render(a)
	_ = r.Mul(a, a, 10)
	_ = r.Add(a, a)
	assert.Equal(t, before, render(a))
}

func TestPow_TruncatesAtPrecision(t *testing.T) {
	got, err := r.Pow(poly(map[int]int64{0: 1, 1: 1}), 3, 2)
	require.NoError(t, err)
	assert.Equal(t, map[int]string{0: "1", 1: "3"}, render(got))
}

func TestPow_MatchesRepeatedMultiplication(t *testing.T) {
	bases := []series.Polynomial[symbolic.Expr]{
		poly(map[int]int64{0: 1, 1: 1}),
		poly(map[int]int64{0: 2, 2: -1}),
		poly(map[int]int64{1: 1, 2: 3}),
	}
	for _, base := range bases {
		for n := 1; n <= 6; n++ {
			for prec := 0; prec <= 7; prec++ {
				naive := poly(map[int]int64{0: 1})
				for i := 0; i < n; i++ {
					naive = r.Mul(naive, base, 1<<20)
				}
				got, err := r.Pow(base, n, prec)
				require.NoError(t, err)
				assert.Equal(t, render(r.Truncate(naive, prec)), render(got), "n=%d prec=%d", n, prec)
			}
		}
	}
}

func TestPow_ZeroToTheZeroIsUndefined(t *testing.T) {
	_, err := r.Pow(poly(nil), 0, 3)
	assert.ErrorIs(t, err, series.ErrUndefined)
}

func TestPow_NegativeExponentIsUnsupported(t *testing.T) {
	_, err := r.Pow(poly(map[int]int64{0: 1, 1: 1}), -1, 3)
	assert.ErrorIs(t, err, series.ErrUnsupported)
}

func TestPow_ZeroExponentIsOne(t *testing.T) {
	got, err := r.Pow(poly(map[int]int64{1: 1}), 0, 3)
	require.NoError(t, err)
	assert.Equal(t, map[int]string{0: "1"}, render(got))

	got, err = r.Pow(poly(map[int]int64{1: 1}), 0, 0)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

// ============================================================
// Calculus
// ============================================================

func TestDiffIntegrate_RoundTrip(t *testing.T) {
	x := r.Var("x")
	p := poly(map[int]int64{-3: 2, 0: 1, 1: 2, 3: 5})
	integral, err := r.Integrate(p, x)
	require.NoError(t, err)
	assert.Equal(t, map[int]string{-2: "-1", 1: "1", 2: "1", 4: "5/4"}, render(integral))
	assert.Equal(t, render(p), render(r.Diff(integral, x)))
}

func TestIntegrate_RejectsInverseTerm(t *testing.T) {
	_, err := r.Integrate(poly(map[int]int64{-1: 1, 0: 1}), r.Var("x"))
	assert.ErrorIs(t, err, series.ErrUnsupported)
}

func TestIntegrate_OtherVariableIsUnsupported(t *testing.T) {
	_, err := r.Integrate(poly(map[int]int64{0: 1}), r.Var("y"))
	assert.ErrorIs(t, err, series.ErrUnsupported)
}

func TestDiff_OtherVariableIsZero(t *testing.T) {
	assert.True(t, r.Diff(poly(map[int]int64{2: 1}), r.Var("y")).IsZero())
}

func TestDiff_DropsConstant(t *testing.T) {
	got := r.Diff(poly(map[int]int64{0: 9, 2: 1}), r.Var("x"))
	assert.Equal(t, map[int]string{1: "2"}, render(got))
}

// ============================================================
// Scalars and lookups
// ============================================================

func TestFindCoefficient_DefaultsToZero(t *testing.T) {
	p := poly(map[int]int64{1: 4})
	assert.Equal(t, "4", r.FindCoefficient(p, 1).String())
	for _, d := range []int{-5, 0, 2, 1000} {
		assert.True(t, symbolic.IsZero(r.FindCoefficient(p, d)), "degree %d", d)
	}
}

func TestRoot(t *testing.T) {
	c, err := r.Root(symbolic.N(9), 2)
	require.NoError(t, err)
	assert.Equal(t, "3", c.String())

	c, err = r.Root(symbolic.N(2), 3)
	require.NoError(t, err)
	assert.Equal(t, "2^(1/3)", c.String())

	_, err = r.Root(symbolic.N(4), 0)
	assert.ErrorIs(t, err, series.ErrUndefined)
}

func TestScalarEvaluators(t *testing.T) {
	a := symbolic.S("a")
	assert.Equal(t, "0", r.Sin(symbolic.N(0)).String())
	assert.Equal(t, "1", r.Cos(symbolic.N(0)).String())
	assert.Equal(t, "ln(a)", r.Log(a).String())
	assert.Equal(t, "atanh(a)", r.Atanh(a).String())
	assert.Equal(t, "7", r.Convert(symbolic.N(7)).String())
}

func TestSubstitute_IsUnsupported(t *testing.T) {
	x := r.Var("x")
	_, err := r.Substitute(x, x, poly(map[int]int64{2: 1}), 4)
	assert.ErrorIs(t, err, series.ErrUnsupported)
}

// ============================================================
// Other coefficient fields
// ============================================================

// ratField is exact rational arithmetic without elementary functions.
type ratField struct{}

func (ratField) Zero() *big.Rat                  { return new(big.Rat) }
func (ratField) One() *big.Rat                   { return big.NewRat(1, 1) }
func (ratField) FromInt(n int64) *big.Rat        { return big.NewRat(n, 1) }
func (ratField) Add(a, b *big.Rat) *big.Rat      { return new(big.Rat).Add(a, b) }
func (ratField) Sub(a, b *big.Rat) *big.Rat      { return new(big.Rat).Sub(a, b) }
func (ratField) Mul(a, b *big.Rat) *big.Rat      { return new(big.Rat).Mul(a, b) }
func (ratField) Quo(a, b *big.Rat) *big.Rat      { return new(big.Rat).Quo(a, b) }
func (ratField) Equal(a, b *big.Rat) bool        { return a.Cmp(b) == 0 }
func (ratField) IsZero(a *big.Rat) bool          { return a.Sign() == 0 }
func (ratField) Apply(string, *big.Rat) *big.Rat { panic("ratField: no elementary functions") }

func (ratField) Pow(a, b *big.Rat) *big.Rat {
	if !b.IsInt() || !b.Num().IsInt64() {
		panic("ratField: non-integer power")
	}
	out := big.NewRat(1, 1)
	for i := int64(0); i < b.Num().Int64(); i++ {
		out.Mul(out, a)
	}
	return out
}

func TestRing_RationalField(t *testing.T) {
	rr := series.NewRing[*big.Rat](ratField{})
	onePlusX := rr.FromMap("x", map[int]*big.Rat{0: big.NewRat(1, 1), 1: big.NewRat(1, 1)})

	inv, err := rr.Inverse(onePlusX, 5)
	require.NoError(t, err)
	for e := 0; e < 5; e++ {
		want := int64(1)
		if e%2 == 1 {
			want = -1
		}
		assert.Zero(t, rr.FindCoefficient(inv, e).Cmp(big.NewRat(want, 1)), "degree %d", e)
	}

	cube, err := rr.Pow(onePlusX, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, cube.Exponents())
	assert.Zero(t, rr.FindCoefficient(cube, 2).Cmp(big.NewRat(3, 1)))
}

func TestInverse(t *testing.T) {
	got, err := r.Inverse(poly(map[int]int64{0: 2, 1: -1}), 4)
	require.NoError(t, err)
	assert.Equal(t, map[int]string{0: "1/2", 1: "1/4", 2: "1/8", 3: "1/16"}, render(got))

	_, err = r.Inverse(poly(nil), 4)
	assert.ErrorIs(t, err, series.ErrUndefined)

	_, err = r.Inverse(poly(map[int]int64{1: 1}), 4)
	assert.ErrorIs(t, err, series.ErrUnsupported)
}
