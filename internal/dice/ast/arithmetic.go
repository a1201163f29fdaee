package ast

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/dicenotation/internal/dice/model"
)

// childOrNil returns result unless node is a raw integer literal, per
// §3's "left/right children are only attached when they represent a
// meaningful subexpression".
func childOrNil(node Node, result *model.RollResult) *model.RollResult {
	if _, literal := node.(*ValueNode); literal {
		return nil
	}
	return result
}

// AddNode is binary `+`.
type AddNode struct{ Left, Right Node }

var _ Node = (*AddNode)(nil)

func (n *AddNode) Eval(ctx context.Context, env *Env) (*model.RollResult, error) {
	left, err := evalChild(ctx, env, n.Left)
	if err != nil {
		return nil, err
	}
	right, err := evalChild(ctx, env, n.Right)
	if err != nil {
		return nil, err
	}
	return model.Add(n.String(), left, right, childOrNil(n.Left, left), childOrNil(n.Right, right)), nil
}

func (n *AddNode) String() string { return fmt.Sprintf("%s+%s", n.Left, n.Right) }

// SubNode is binary `-`.
type SubNode struct{ Left, Right Node }

var _ Node = (*SubNode)(nil)

func (n *SubNode) Eval(ctx context.Context, env *Env) (*model.RollResult, error) {
	left, err := evalChild(ctx, env, n.Left)
	if err != nil {
		return nil, err
	}
	right, err := evalChild(ctx, env, n.Right)
	if err != nil {
		return nil, err
	}
	return model.Sub(n.String(), left, right, childOrNil(n.Left, left), childOrNil(n.Right, right)), nil
}

func (n *SubNode) String() string { return fmt.Sprintf("%s-%s", n.Left, n.Right) }

// MulNode is binary `*`.
type MulNode struct{ Left, Right Node }

var _ Node = (*MulNode)(nil)

func (n *MulNode) Eval(ctx context.Context, env *Env) (*model.RollResult, error) {
	left, err := evalChild(ctx, env, n.Left)
	if err != nil {
		return nil, err
	}
	right, err := evalChild(ctx, env, n.Right)
	if err != nil {
		return nil, err
	}
	return model.Mul(n.String(), left, right, childOrNil(n.Left, left), childOrNil(n.Right, right)), nil
}

func (n *MulNode) String() string { return fmt.Sprintf("%s*%s", n.Left, n.Right) }

// CommaNode is the pool-concatenation `,` operator.
type CommaNode struct{ Left, Right Node }

var _ Node = (*CommaNode)(nil)

func (n *CommaNode) Eval(ctx context.Context, env *Env) (*model.RollResult, error) {
	left, err := evalChild(ctx, env, n.Left)
	if err != nil {
		return nil, err
	}
	right, err := evalChild(ctx, env, n.Right)
	if err != nil {
		return nil, err
	}
	return model.Comma(n.String(), left, right, childOrNil(n.Left, left), childOrNil(n.Right, right)), nil
}

func (n *CommaNode) String() string { return fmt.Sprintf("%s,%s", n.Left, n.Right) }

// AggregateNode is the `{expr}` total-collapsing operator.
type AggregateNode struct{ Inner Node }

var _ Node = (*AggregateNode)(nil)

func (n *AggregateNode) Eval(ctx context.Context, env *Env) (*model.RollResult, error) {
	inner, err := evalChild(ctx, env, n.Inner)
	if err != nil {
		return nil, err
	}
	return model.Aggregate(n.String(), inner, childOrNil(n.Inner, inner)), nil
}

func (n *AggregateNode) String() string { return fmt.Sprintf("{%s}", n.Inner) }
