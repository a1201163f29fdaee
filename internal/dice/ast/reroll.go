package ast

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/dicenotation/internal/dice/model"
	"github.com/KirkDiggler/dicenotation/internal/errors"
)

// iterationCap is the shared recursion bound L from §5/§6: 1000 normally,
// overridden to 1 by the `o`-suffixed forms.
const iterationCap = 1000

// RerollKind names `r` or `ro` (once-only).
type RerollKind string

const (
	RerollAlways RerollKind = "r"
	RerollOnce   RerollKind = "ro"
)

// RerollNode implements `r…`/`ro…`: replaces each matching die with a
// freshly rolled one of the same type, repeating while the replacement
// still matches (bounded by L).
type RerollNode struct {
	Left       Node
	Kind       RerollKind
	Comparator Comparator
	Right      Node
	Pos        int
}

var _ Node = (*RerollNode)(nil)

func (n *RerollNode) cap() int {
	if n.Kind == RerollOnce {
		return 1
	}
	return iterationCap
}

func (n *RerollNode) Eval(ctx context.Context, env *Env) (*model.RollResult, error) {
	left, err := evalChild(ctx, env, n.Left)
	if err != nil {
		return nil, err
	}
	if n.Right == nil {
		return nil, errors.FormatError(n.String(), n.Pos, "Invalid reroll operation. Missing reroll target")
	}
	target, rightResult, err := totalOrDefault(ctx, env, n.Right, 0)
	if err != nil {
		return nil, err
	}

	kept := make([]model.RolledDie, 0, len(left.Results))
	discarded := append([]model.RolledDie{}, left.Discarded...)
	limit := n.cap()

	for _, d := range left.Results {
		if !n.Comparator.Match(d.Result, target) {
			kept = append(kept, d)
			continue
		}
		original := d
		current := d
		for i := 0; i < limit && n.Comparator.Match(current.Result, target); i++ {
			fresh, err := env.Dice.Reroll(ctx, current)
			if err != nil {
				return nil, err
			}
			current = fresh
		}
		original.Discarded = true
		original.Rerolled = true
		discarded = append(discarded, original)
		current.Reroll = true
		current.From = []model.RolledDie{original}
		kept = append(kept, current)
	}

	result := model.New(n.String(), model.OpReroll, kept, discarded)
	result.Left = childOrNil(n.Left, left)
	result.Right = childOrNil(n.Right, rightResult)
	return result, nil
}

func (n *RerollNode) String() string {
	return fmt.Sprintf("%s%s%s%s", n.Left, n.Kind, n.Comparator, n.Right)
}
