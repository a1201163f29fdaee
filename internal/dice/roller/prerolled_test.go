package roller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dicenotation/internal/dice/model"
	"github.com/KirkDiggler/dicenotation/internal/errors"
)

func TestPreRolledRoller_Roll_Consumes(t *testing.T) {
	p := NewPreRolled([]int{3, 5, 1, 6})
	out, err := p.Roll(context.Background(), 2, 6, 1, model.Polyhedral)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 5}, out)
	assert.Equal(t, 2, p.Remaining())
}

func TestPreRolledRoller_Exhausted(t *testing.T) {
	p := NewPreRolled([]int{1})
	_, err := p.Roll(context.Background(), 2, 6, 1, model.Polyhedral)
	require.Error(t, err)
	assert.True(t, errors.IsRollerExhausted(err))
}

func TestPreRolledRoller_OutOfRange(t *testing.T) {
	p := NewPreRolled([]int{99})
	_, err := p.Roll(context.Background(), 1, 6, 1, model.Polyhedral)
	require.Error(t, err)
	assert.True(t, errors.IsRollerOutOfRange(err))
}

func TestPreRolledRoller_RollVals(t *testing.T) {
	p := NewPreRolled([]int{-1, 1, 0})
	out, err := p.RollVals(context.Background(), 3, []int{-1, 0, 1}, model.Fudge)
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 1, 0}, out)
}

func TestPreRolledRoller_RollVals_OutOfRange(t *testing.T) {
	p := NewPreRolled([]int{2})
	_, err := p.RollVals(context.Background(), 1, []int{-1, 0, 1}, model.Fudge)
	require.Error(t, err)
	assert.True(t, errors.IsRollerOutOfRange(err))
}
