package ast

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dicenotation/internal/dice/model"
	"github.com/KirkDiggler/dicenotation/internal/dice/roller/rollermock"
)

// TestAddNode_EvaluatesLeftBeforeRight asserts the post-order, left-to-
// right walk node.go documents: for `2d6+1d8`, the left operand's Roll
// call must land on the mock before the right operand's, not just in
// the final result.
func TestAddNode_EvaluatesLeftBeforeRight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRoller := rollermock.NewMockRoller(ctrl)
	ctx := context.Background()

	leftCall := mockRoller.EXPECT().
		Roll(ctx, 2, 6, 1, model.Polyhedral).
		Return([]int{3, 4}, nil)
	rightCall := mockRoller.EXPECT().
		Roll(ctx, 1, 8, 1, model.Polyhedral).
		Return([]int{5}, nil)
	gomock.InOrder(leftCall, rightCall)

	n := &AddNode{
		Left:  stdDice(&ValueNode{Text: "2"}, 6),
		Right: stdDice(&ValueNode{Text: "1"}, 8),
	}
	env := NewEnv(mockRoller)
	r, err := n.Eval(ctx, env)
	require.NoError(t, err)
	require.Equal(t, 12, r.Total())
}
