package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dicenotation/internal/dice/ast"
	"github.com/KirkDiggler/dicenotation/internal/dice/parser"
	"github.com/KirkDiggler/dicenotation/internal/dice/roller"
	"github.com/KirkDiggler/dicenotation/internal/pkg/idgen"
)

// fixedClock always reports the same instant, so duration-logging tests
// don't depend on wall time.
type fixedClock struct{ t time.Time }

func (f fixedClock) Now() time.Time { return f.t }

func TestDriver_Run_ComputesDistribution(t *testing.T) {
	node, err := parser.Parse("1d6")
	require.NoError(t, err)

	env := ast.NewEnv(roller.NewPreRolled([]int{1, 2, 3, 4, 5, 6}))
	d, err := New(&Config{
		Expression:  node,
		Env:         env,
		IDGenerator: idgen.NewSequential("run"),
		Clock:       fixedClock{t: time.Unix(0, 0)},
	})
	require.NoError(t, err)

	result, err := d.Run(context.Background(), 6)
	require.NoError(t, err)

	assert.Equal(t, 6, result.Count)
	assert.Equal(t, 1, result.Min)
	assert.Equal(t, 6, result.Max)
	assert.InDelta(t, 3.5, result.Mean, 0.01)
	for total, freq := range result.Histogram {
		assert.GreaterOrEqual(t, total, 1)
		assert.LessOrEqual(t, total, 6)
		assert.Equal(t, 1, freq)
	}
}

func TestDriver_Run_DefaultsCountTo1000(t *testing.T) {
	node, err := parser.Parse("2d6")
	require.NoError(t, err)

	env := ast.NewEnv(roller.NewSecure())
	d, err := New(&Config{Expression: node, Env: env})
	require.NoError(t, err)

	result, err := d.Run(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultRuns, result.Count)
	assert.GreaterOrEqual(t, result.Min, 2)
	assert.LessOrEqual(t, result.Max, 12)
}

func TestDriver_Run_PropagatesEvalError(t *testing.T) {
	node, err := parser.Parse("3d6")
	require.NoError(t, err)

	env := ast.NewEnv(roller.NewPreRolled([]int{1, 2}))
	d, err := New(&Config{Expression: node, Env: env})
	require.NoError(t, err)

	_, err = d.Run(context.Background(), 1)
	require.Error(t, err)
}

func TestNew_RequiresExpressionAndEnv(t *testing.T) {
	_, err := New(&Config{})
	require.Error(t, err)
}

func TestStdDev_KnownSequence(t *testing.T) {
	// [2,4,4,4,5,5,7,9] has a population stddev of 2.
	vals := []int{2, 4, 4, 4, 5, 5, 7, 9}
	mean := 5.0
	assert.InDelta(t, 2.0, stdDev(vals, mean), 0.0001)
}

func TestRoundTo2(t *testing.T) {
	assert.Equal(t, 3.14, roundTo2(3.14159))
	assert.Equal(t, 3.15, roundTo2(3.14501))
}
