package ast

import (
	"context"
	"strconv"

	"github.com/KirkDiggler/dicenotation/internal/dice/model"
)

// ValueNode is an integer literal, or the empty atom (ε) when Text is
// empty — the parser's "empty input parses to zero" and "missing
// operand" cases both bottom out here.
type ValueNode struct {
	Text string
}

var _ Node = (*ValueNode)(nil)

// Eval returns a single-element result holding the parsed singleVal, or
// an empty result for the empty atom.
func (v *ValueNode) Eval(_ context.Context, _ *Env) (*model.RollResult, error) {
	if v.Text == "" {
		return model.New(v.String(), model.OpValue, nil, nil), nil
	}
	n, err := strconv.Atoi(v.Text)
	if err != nil {
		return nil, err
	}
	return model.New(v.String(), model.OpValue, []model.RolledDie{model.NewSingleVal(n)}, nil), nil
}

// String renders the literal's own text.
func (v *ValueNode) String() string {
	return v.Text
}
