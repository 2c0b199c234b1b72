package batch_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/goseries/internal/batch"
	"github.com/njchilds90/goseries/series"
	"github.com/njchilds90/goseries/symbolic"
)

var x = symbolic.S("x")

func TestRun_PreservesOrder(t *testing.T) {
	var jobs []batch.Job
	for n := int64(1); n <= 40; n++ {
		jobs = append(jobs, batch.Job{Expr: symbolic.PowOf(x, symbolic.N(n)), Var: "x", Prec: 100})
	}
	out, err := batch.New(4, nil).Run(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, out, len(jobs))
	for i, s := range out {
		assert.Equal(t, i+1, s.Degree(), "job %d", i)
	}
}

func TestRun_FirstErrorWins(t *testing.T) {
	jobs := []batch.Job{
		{Expr: symbolic.SinOf(x), Var: "x", Prec: 5},
		{Expr: symbolic.LnOf(x), Var: "x", Prec: 5},
		{Expr: symbolic.CosOf(x), Var: "x", Prec: 5},
	}
	out, err := batch.New(1, nil).Run(context.Background(), jobs)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, series.ErrUnsupported)
	assert.Contains(t, err.Error(), "job 1")
}

func TestRun_Empty(t *testing.T) {
	out, err := batch.New(2, nil).Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := batch.New(2, nil).Run(ctx, []batch.Job{{Expr: x, Var: "x", Prec: 3}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCollect_ReportsEachJob(t *testing.T) {
	jobs := []batch.Job{
		{Expr: symbolic.ExpOf(x), Var: "x", Prec: 3},
		{Expr: symbolic.SqrtOf(x), Var: "x", Prec: 3},
		{Expr: x, Var: "x", Prec: -1},
		{Expr: symbolic.SinOf(x), Var: "x", Prec: 4},
	}
	res := batch.New(3, nil).Collect(context.Background(), jobs)
	require.Len(t, res, 4)

	require.NoError(t, res[0].Err)
	assert.Equal(t, "1 + x + 1/2*x^2 + O(x^3)", res[0].Series.String())
	assert.ErrorIs(t, res[1].Err, series.ErrUnsupported)
	assert.Nil(t, res[1].Series)
	assert.ErrorIs(t, res[2].Err, series.ErrInvalidPrecision)
	require.NoError(t, res[3].Err)
	assert.Equal(t, "x - 1/6*x^3 + O(x^4)", fmt.Sprint(res[3].Series))
}
