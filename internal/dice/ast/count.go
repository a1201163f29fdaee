package ast

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/dicenotation/internal/dice/model"
	"github.com/KirkDiggler/dicenotation/internal/errors"
)

// CountKind names `#`, `#s`, `#f`, `#cs`, `#cf`.
type CountKind string

const (
	CountAll         CountKind = "#"
	CountSuccess     CountKind = "#s"
	CountFailure     CountKind = "#f"
	CountCritSuccess CountKind = "#cs"
	CountCritFailure CountKind = "#cf"
)

// CountNode implements the counting-operator family. A plain `#`
// collapses to one singleVal; the flagged forms mark matching dice in
// place and keep the pool intact.
type CountNode struct {
	Left       Node
	Kind       CountKind
	Comparator Comparator
	Right      Node
	Pos        int
}

var _ Node = (*CountNode)(nil)

// perDieDefault reports the default target for d under Kind when no
// right-hand side was written: max_potential for the success family,
// min_potential for the failure family, unused (0) for plain `#`.
func (n *CountNode) perDieDefault(d model.RolledDie) int {
	switch n.Kind {
	case CountSuccess, CountCritSuccess:
		return d.MaxPotential()
	case CountFailure, CountCritFailure:
		return d.MinPotential()
	default:
		return 0
	}
}

// matches reports whether d counts, honoring the "suppress trivial
// matches against a degenerate die with a defaulted target" rule from
// §9's open question (a), generalized to any min==max die.
func (n *CountNode) matches(d model.RolledDie, hasRight bool, target int) bool {
	if n.Kind == CountAll {
		return true
	}
	t := target
	if !hasRight {
		t = n.perDieDefault(d)
		if d.IsDegenerate() {
			return false
		}
	}
	return n.Comparator.Match(d.Result, t)
}

func (n *CountNode) Eval(ctx context.Context, env *Env) (*model.RollResult, error) {
	left, err := evalChild(ctx, env, n.Left)
	if err != nil {
		return nil, err
	}

	if n.Right == nil && n.Comparator != CmpNone {
		return nil, errors.FormatError(n.String(), n.Pos, "counting comparator given without a target")
	}

	var target int
	var rightResult *model.RollResult
	hasRight := n.Right != nil
	if hasRight {
		target, rightResult, err = totalOrDefault(ctx, env, n.Right, 0)
		if err != nil {
			return nil, err
		}
	}

	if n.Kind == CountAll {
		count := len(left.Results)
		if hasRight {
			count = 0
			for _, d := range left.Results {
				if n.Comparator.Match(d.Result, target) {
					count++
				}
			}
		}
		discarded := append(append([]model.RolledDie{}, left.Discarded...), left.Results...)
		result := model.New(n.String(), model.OpCount, []model.RolledDie{model.NewSingleVal(count)}, discarded)
		result.Left = childOrNil(n.Left, left)
		result.Right = childOrNil(n.Right, rightResult)
		return result, nil
	}

	kept := make([]model.RolledDie, len(left.Results))
	for i, d := range left.Results {
		if n.matches(d, hasRight, target) {
			switch n.Kind {
			case CountSuccess:
				d.Success = true
			case CountFailure:
				d.Failure = true
			case CountCritSuccess:
				d.CritSuccess = true
			case CountCritFailure:
				d.CritFailure = true
			}
		}
		kept[i] = d
	}

	result := model.New(n.String(), model.OpCount, kept, append([]model.RolledDie{}, left.Discarded...))
	result.Left = childOrNil(n.Left, left)
	result.Right = childOrNil(n.Right, rightResult)
	return result, nil
}

func (n *CountNode) String() string {
	if n.Right == nil {
		return fmt.Sprintf("%s%s%s", n.Left, n.Kind, n.Comparator)
	}
	return fmt.Sprintf("%s%s%s%s", n.Left, n.Kind, n.Comparator, n.Right)
}
