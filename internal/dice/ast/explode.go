package ast

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/dicenotation/internal/dice/model"
	"github.com/KirkDiggler/dicenotation/internal/errors"
)

// explodeMatcher builds the per-die match predicate for explode/compound:
// an explicit comparator+target applies uniformly; an omitted target
// falls back to each die's own max_potential, per §4.6.
func explodeMatcher(hasRight bool, cmp Comparator, target int) func(model.RolledDie) bool {
	if hasRight {
		return func(d model.RolledDie) bool { return cmp.Match(d.Result, target) }
	}
	return func(d model.RolledDie) bool { return d.Result == d.MaxPotential() }
}

// ExplodeKind names `!`/`!o` (explode) or `!!`/`!!o` (compound).
type ExplodeKind string

const (
	Explode      ExplodeKind = "!"
	ExplodeOnce  ExplodeKind = "!o"
	Compound     ExplodeKind = "!!"
	CompoundOnce ExplodeKind = "!!o"
)

func (k ExplodeKind) cap() int {
	if k == ExplodeOnce || k == CompoundOnce {
		return 1
	}
	return iterationCap
}

func (k ExplodeKind) isCompound() bool {
	return k == Compound || k == CompoundOnce
}

// ExplodeNode implements `!`, `!o`, `!!`, `!!o`.
type ExplodeNode struct {
	Left       Node
	Kind       ExplodeKind
	Comparator Comparator
	Right      Node
	Pos        int
}

var _ Node = (*ExplodeNode)(nil)

func (n *ExplodeNode) Eval(ctx context.Context, env *Env) (*model.RollResult, error) {
	left, err := evalChild(ctx, env, n.Left)
	if err != nil {
		return nil, err
	}
	if n.Right == nil && n.Comparator != CmpNone {
		return nil, errors.FormatError(n.String(), n.Pos, "explode comparator given without a target")
	}
	var target int
	var rightResult *model.RollResult
	if n.Right != nil {
		target, rightResult, err = totalOrDefault(ctx, env, n.Right, 0)
		if err != nil {
			return nil, err
		}
	}
	matches := explodeMatcher(n.Right != nil, n.Comparator, target)
	limit := n.Kind.cap()

	op := model.OpExplode
	if n.Kind.isCompound() {
		op = model.OpCompound
	}

	var kept, discarded []model.RolledDie
	discarded = append(discarded, left.Discarded...)

	for _, d := range left.Results {
		if !d.DieType.Explodable() || !matches(d) {
			kept = append(kept, d)
			continue
		}

		if n.Kind.isCompound() {
			original := d
			original.Discarded = true
			original.Compounded = true
			discarded = append(discarded, original)

			sum := d.Result
			current := d
			for i := 0; i < limit; i++ {
				fresh, err := env.Dice.Reroll(ctx, current)
				if err != nil {
					return nil, err
				}
				sum += fresh.Result
				if !matches(fresh) {
					fresh.Compounded = true
					discarded = append(discarded, fresh)
					current = fresh
					break
				}
				fresh.Compounded = true
				discarded = append(discarded, fresh)
				current = fresh
			}
			final := d.WithResult(sum)
			final.CompoundedFinal = true
			final.From = []model.RolledDie{d}
			kept = append(kept, final)
			continue
		}

		exploded := d
		exploded.Exploded = true
		kept = append(kept, exploded)

		current := d
		for i := 0; i < limit && matches(current); i++ {
			fresh, err := env.Dice.Reroll(ctx, current)
			if err != nil {
				return nil, err
			}
			fresh.Explosion = true
			kept = append(kept, fresh)
			current = fresh
		}
	}

	result := model.New(n.String(), op, kept, discarded)
	result.Left = childOrNil(n.Left, left)
	result.Right = childOrNil(n.Right, rightResult)
	return result, nil
}

func (n *ExplodeNode) String() string {
	if n.Right == nil {
		return fmt.Sprintf("%s%s%s", n.Left, n.Kind, n.Comparator)
	}
	return fmt.Sprintf("%s%s%s%s", n.Left, n.Kind, n.Comparator, n.Right)
}

// PenetrateNode implements `p`/`pM`: polyhedral-only explode with a
// per-follow-on -1 penalty, netted at the end.
type PenetrateNode struct {
	Left Node
	Size Node // optional: size of the penetration die, defaults to the original's sides
	Pos  int
}

var _ Node = (*PenetrateNode)(nil)

func (n *PenetrateNode) Eval(ctx context.Context, env *Env) (*model.RollResult, error) {
	left, err := evalChild(ctx, env, n.Left)
	if err != nil {
		return nil, err
	}

	var kept, discarded []model.RolledDie
	discarded = append(discarded, left.Discarded...)

	for _, d := range left.Results {
		if d.DieType != model.Polyhedral || d.Result != d.MaxPotential() {
			kept = append(kept, d)
			continue
		}

		size := d.NSides
		if n.Size != nil {
			sz, _, err := totalOrDefault(ctx, env, n.Size, d.NSides)
			if err != nil {
				return nil, err
			}
			size = sz
		}

		sum := d.Result
		numPenetrations := 0
		for i := 0; i < iterationCap; i++ {
			vals, err := env.Dice.Roll(ctx, 1, size)
			if err != nil {
				return nil, err
			}
			follow := vals[0]
			follow.Penetrator = true
			discarded = append(discarded, follow)
			sum += follow.Result
			numPenetrations++
			if follow.Result != follow.MaxPotential() {
				break
			}
		}

		bookkeeper := model.NewSingleVal(-numPenetrations)
		bookkeeper.Penetrator = true
		discarded = append(discarded, bookkeeper)

		emitted := d.WithResult(sum - numPenetrations)
		emitted.Penetrated = true
		kept = append(kept, emitted)
	}

	result := model.New(n.String(), model.OpRollPenetration, kept, discarded)
	result.Left = childOrNil(n.Left, left)
	return result, nil
}

func (n *PenetrateNode) String() string {
	if n.Size == nil {
		return fmt.Sprintf("%sp", n.Left)
	}
	return fmt.Sprintf("%sp%s", n.Left, n.Size)
}
