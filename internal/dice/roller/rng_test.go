package roller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dicenotation/internal/dice/model"
	"github.com/KirkDiggler/dicenotation/internal/errors"
)

func TestRNGRoller_Roll_InBounds(t *testing.T) {
	r := NewFromSeed(42)
	ctx := context.Background()

	vals, err := r.Roll(ctx, 100, 6, 1, model.Polyhedral)
	require.NoError(t, err)
	require.Len(t, vals, 100)
	for _, v := range vals {
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 6)
	}
}

func TestRNGRoller_Roll_ZeroDice(t *testing.T) {
	r := NewFromSeed(1)
	vals, err := r.Roll(context.Background(), 0, 6, 1, model.Polyhedral)
	require.NoError(t, err)
	assert.Empty(t, vals)
}

func TestRNGRoller_Roll_RejectsBadBounds(t *testing.T) {
	r := NewFromSeed(1)
	_, err := r.Roll(context.Background(), 1, 1, 1, model.Polyhedral)
	assert.Error(t, err)
}

func TestRNGRoller_RollVals_FromSet(t *testing.T) {
	r := NewFromSeed(7)
	vals := []int{-1, 0, 1}
	out, err := r.RollVals(context.Background(), 50, vals, model.Fudge)
	require.NoError(t, err)
	require.Len(t, out, 50)
	for _, v := range out {
		assert.Contains(t, vals, v)
	}
}

func TestRNGRoller_Deterministic(t *testing.T) {
	a := NewFromSeed(99)
	b := NewFromSeed(99)
	ctx := context.Background()

	va, err := a.Roll(ctx, 20, 20, 1, model.Polyhedral)
	require.NoError(t, err)
	vb, err := b.Roll(ctx, 20, 20, 1, model.Polyhedral)
	require.NoError(t, err)
	assert.Equal(t, va, vb)
}

func TestNewSecure_DoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = NewSecure()
	})
}

func TestRNGRoller_Roll_CanceledContext(t *testing.T) {
	r := NewFromSeed(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Roll(ctx, 1, 6, 1, model.Polyhedral)
	require.Error(t, err)
	assert.True(t, errors.IsCanceled(err))
}

func TestRNGRoller_RollVals_CanceledContext(t *testing.T) {
	r := NewFromSeed(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.RollVals(ctx, 1, []int{-1, 0, 1}, model.Fudge)
	require.Error(t, err)
	assert.True(t, errors.IsCanceled(err))
}
