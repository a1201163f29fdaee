package ast

import (
	"context"
	"fmt"
	"sort"

	"github.com/KirkDiggler/dicenotation/internal/dice/model"
	"github.com/KirkDiggler/dicenotation/internal/errors"
)

// DropCompareKind names one of the `-<`, `-<=`, `->`, `->=`, `-=` family.
type DropCompareKind string

const (
	DropLt  DropCompareKind = "-<"
	DropLte DropCompareKind = "-<="
	DropGt  DropCompareKind = "->"
	DropGte DropCompareKind = "->="
	DropEq  DropCompareKind = "-="
)

// DropCompareNode drops every die in Left's results whose value
// satisfies Kind against total(Right).
type DropCompareNode struct {
	Left  Node
	Kind  DropCompareKind
	Right Node
	Pos   int
}

var _ Node = (*DropCompareNode)(nil)

func (n *DropCompareNode) Eval(ctx context.Context, env *Env) (*model.RollResult, error) {
	left, err := evalChild(ctx, env, n.Left)
	if err != nil {
		return nil, err
	}
	if n.Right == nil {
		return nil, errors.FormatError(n.String(), n.Pos, "Invalid drop operation. Missing drop target")
	}
	target, rightResult, err := totalOrDefault(ctx, env, n.Right, 0)
	if err != nil {
		return nil, err
	}

	cmp := dropCompareToComparator(n.Kind)
	kept := make([]model.RolledDie, 0, len(left.Results))
	discarded := append([]model.RolledDie{}, left.Discarded...)
	for _, d := range left.Results {
		if cmp.Match(d.Result, target) {
			d.Discarded = true
			discarded = append(discarded, d)
		} else {
			kept = append(kept, d)
		}
	}

	result := model.New(n.String(), model.OpDrop, kept, discarded)
	result.Left = childOrNil(n.Left, left)
	result.Right = childOrNil(n.Right, rightResult)
	return result, nil
}

func dropCompareToComparator(k DropCompareKind) Comparator {
	switch k {
	case DropLt:
		return CmpLt
	case DropLte:
		return CmpLte
	case DropGt:
		return CmpGt
	case DropGte:
		return CmpGte
	default:
		return CmpEq
	}
}

func (n *DropCompareNode) String() string { return fmt.Sprintf("%s%s%s", n.Left, n.Kind, n.Right) }

// DropHighLowKind names one of `-h`, `-l`, `kh`, `kl`, `k`.
type DropHighLowKind string

const (
	DropHigh DropHighLowKind = "-h"
	DropLow  DropHighLowKind = "-l"
	KeepHigh DropHighLowKind = "kh"
	KeepLow  DropHighLowKind = "kl"
	KeepK    DropHighLowKind = "k" // alias of KeepHigh
)

// DropHighLowNode implements `-h`, `-l`, `kh`, `kl`, `k`.
type DropHighLowNode struct {
	Left  Node
	Kind  DropHighLowKind
	Right Node
}

var _ Node = (*DropHighLowNode)(nil)

func (n *DropHighLowNode) Eval(ctx context.Context, env *Env) (*model.RollResult, error) {
	left, err := evalChild(ctx, env, n.Left)
	if err != nil {
		return nil, err
	}
	k, rightResult, err := totalOrDefault(ctx, env, n.Right, 1)
	if err != nil {
		return nil, err
	}

	sorted := append([]model.RolledDie{}, left.Results...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Result < sorted[j].Result })

	if k < 0 {
		k = 0
	}
	n2 := len(sorted)
	var kept, dropped []model.RolledDie
	switch n.Kind {
	case DropHigh:
		if k >= n2 {
			kept, dropped = nil, sorted
		} else {
			kept, dropped = sorted[:n2-k], sorted[n2-k:]
		}
	case DropLow:
		if k >= n2 {
			kept, dropped = nil, sorted
		} else {
			kept, dropped = sorted[k:], sorted[:k]
		}
	case KeepHigh, KeepK:
		if k >= n2 {
			kept, dropped = sorted, nil
		} else {
			kept, dropped = sorted[n2-k:], sorted[:n2-k]
		}
	case KeepLow:
		if k >= n2 {
			kept, dropped = sorted, nil
		} else {
			kept, dropped = sorted[:k], sorted[k:]
		}
	}

	discarded := append([]model.RolledDie{}, left.Discarded...)
	for _, d := range dropped {
		d.Discarded = true
		discarded = append(discarded, d)
	}

	result := model.New(n.String(), model.OpDrop, append([]model.RolledDie{}, kept...), discarded)
	result.Left = childOrNil(n.Left, left)
	result.Right = childOrNil(n.Right, rightResult)
	return result, nil
}

func (n *DropHighLowNode) String() string {
	if n.Right == nil {
		return fmt.Sprintf("%s%s", n.Left, n.Kind)
	}
	return fmt.Sprintf("%s%s%s", n.Left, n.Kind, n.Right)
}

// ClampKind names `C>`/`c>` (ceiling) or `C<`/`c<` (floor).
type ClampKind string

const (
	ClampCeiling ClampKind = "C>"
	ClampFloor   ClampKind = "C<"
)

// ClampNode implements `C>`, `C<` and their lowercase aliases.
type ClampNode struct {
	Left  Node
	Kind  ClampKind
	Right Node
	Pos   int
}

var _ Node = (*ClampNode)(nil)

func (n *ClampNode) Eval(ctx context.Context, env *Env) (*model.RollResult, error) {
	left, err := evalChild(ctx, env, n.Left)
	if err != nil {
		return nil, err
	}
	if n.Right == nil {
		return nil, errors.FormatError(n.String(), n.Pos, "Invalid clamp operation. Missing clamp target")
	}
	target, rightResult, err := totalOrDefault(ctx, env, n.Right, 0)
	if err != nil {
		return nil, err
	}

	kept := make([]model.RolledDie, 0, len(left.Results))
	discarded := append([]model.RolledDie{}, left.Discarded...)
	for _, d := range left.Results {
		switch n.Kind {
		case ClampCeiling:
			if d.Result > target {
				discarded = append(discarded, d)
				clamped := d.WithResult(target)
				clamped.ClampCeiling = true
				kept = append(kept, clamped)
				continue
			}
		case ClampFloor:
			if d.Result < target {
				discarded = append(discarded, d)
				clamped := d.WithResult(target)
				clamped.ClampFloor = true
				kept = append(kept, clamped)
				continue
			}
		}
		kept = append(kept, d)
	}

	result := model.New(n.String(), model.OpClamp, kept, discarded)
	result.Left = childOrNil(n.Left, left)
	result.Right = childOrNil(n.Right, rightResult)
	return result, nil
}

func (n *ClampNode) String() string { return fmt.Sprintf("%s%s%s", n.Left, n.Kind, n.Right) }

// SortKind names `s` (ascending) or `sd` (descending).
type SortKind string

const (
	SortAsc  SortKind = "s"
	SortDesc SortKind = "sd"
)

// SortNode reorders Left's results (and discarded) without changing
// membership.
type SortNode struct {
	Left Node
	Kind SortKind
}

var _ Node = (*SortNode)(nil)

func (n *SortNode) Eval(ctx context.Context, env *Env) (*model.RollResult, error) {
	left, err := evalChild(ctx, env, n.Left)
	if err != nil {
		return nil, err
	}
	results := append([]model.RolledDie{}, left.Results...)
	discarded := append([]model.RolledDie{}, left.Discarded...)
	less := func(a, b model.RolledDie) bool { return a.Result < b.Result }
	if n.Kind == SortDesc {
		less = func(a, b model.RolledDie) bool { return a.Result > b.Result }
	}
	sort.SliceStable(results, func(i, j int) bool { return less(results[i], results[j]) })
	sort.SliceStable(discarded, func(i, j int) bool { return less(discarded[i], discarded[j]) })

	result := model.New(n.String(), model.OpSort, results, discarded)
	result.Left = childOrNil(n.Left, left)
	return result, nil
}

func (n *SortNode) String() string { return fmt.Sprintf("%s%s", n.Left, n.Kind) }
