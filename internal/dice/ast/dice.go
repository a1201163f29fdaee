package ast

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/dicenotation/internal/dice/model"
	"github.com/KirkDiggler/dicenotation/internal/dice/roller"
	"github.com/KirkDiggler/dicenotation/internal/errors"
)

// validateDice checks ndice/nsides against the roller package's bounds,
// raising a FormatError carrying expr's position rather than the raw
// OutOfRange the roller would produce — dice-count/size limits are a
// grammar-level concern at this node's position, not a roller failure.
func validateDice(expr string, pos int, ndice, nsides int) error {
	if ndice < roller.MinNDice || ndice > roller.MaxNDice {
		return errors.FormatErrorf(expr, pos, "ndice %d not in [%d,%d]", ndice, roller.MinNDice, roller.MaxNDice)
	}
	if nsides != 0 && (nsides < roller.MinSides || nsides > roller.MaxSides) {
		return errors.FormatErrorf(expr, pos, "nsides %d not in [%d,%d]", nsides, roller.MinSides, roller.MaxSides)
	}
	return nil
}

// StdDiceNode is `N d S`: a polyhedral roll, or a dice-valued S (`d(2d4)`).
type StdDiceNode struct {
	Left, Right Node
	Pos         int
}

var _ Node = (*StdDiceNode)(nil)

func (n *StdDiceNode) Eval(ctx context.Context, env *Env) (*model.RollResult, error) {
	ndice, leftResult, err := totalOrDefault(ctx, env, n.Left, 1)
	if err != nil {
		return nil, err
	}
	nsides, rightResult, err := totalOrDefault(ctx, env, n.Right, 0)
	if err != nil {
		return nil, err
	}
	if n.Right == nil {
		return nil, errors.FormatError(n.String(), n.Pos, "missing number of sides after 'd'")
	}
	if err := validateDice(n.String(), n.Pos, ndice, nsides); err != nil {
		return nil, err
	}
	dice, err := env.Dice.Roll(ctx, ndice, nsides)
	if err != nil {
		return nil, err
	}
	result := model.New(n.String(), model.OpRollDice, dice, nil)
	result.Left = childOrNil(n.Left, leftResult)
	result.Right = childOrNil(n.Right, rightResult)
	return result, nil
}

func (n *StdDiceNode) String() string { return fmt.Sprintf("%sd%s", leftText(n.Left), n.Right) }

// PercentDiceNode is `N d%` / `N d100`: an N d 100 roll.
type PercentDiceNode struct {
	Left Node
	Pos  int
}

var _ Node = (*PercentDiceNode)(nil)

func (n *PercentDiceNode) Eval(ctx context.Context, env *Env) (*model.RollResult, error) {
	ndice, leftResult, err := totalOrDefault(ctx, env, n.Left, 1)
	if err != nil {
		return nil, err
	}
	if err := validateDice(n.String(), n.Pos, ndice, 100); err != nil {
		return nil, err
	}
	dice, err := env.Dice.Roll(ctx, ndice, 100)
	if err != nil {
		return nil, err
	}
	result := model.New(n.String(), model.OpRollPercent, dice, nil)
	result.Left = childOrNil(n.Left, leftResult)
	return result, nil
}

func (n *PercentDiceNode) String() string { return fmt.Sprintf("%sd%%", leftText(n.Left)) }

// D66DiceNode is `N D66`: N composed tens*10+ones dice.
type D66DiceNode struct {
	Left Node
	Pos  int
}

var _ Node = (*D66DiceNode)(nil)

func (n *D66DiceNode) Eval(ctx context.Context, env *Env) (*model.RollResult, error) {
	ndice, leftResult, err := totalOrDefault(ctx, env, n.Left, 1)
	if err != nil {
		return nil, err
	}
	if err := validateDice(n.String(), n.Pos, ndice, 0); err != nil {
		return nil, err
	}
	dice, err := env.Dice.RollD66(ctx, ndice)
	if err != nil {
		return nil, err
	}
	// Each composed die carries its two contributing d6 in From; §4.1
	// requires both source dice to also surface in this node's discarded
	// pool, not just in that per-die provenance chain.
	var discarded []model.RolledDie
	for _, d := range dice {
		for _, src := range d.From {
			src.Discarded = true
			discarded = append(discarded, src)
		}
	}
	result := model.New(n.String(), model.OpRollD66, dice, discarded)
	result.Left = childOrNil(n.Left, leftResult)
	return result, nil
}

func (n *D66DiceNode) String() string { return fmt.Sprintf("%sD66", leftText(n.Left)) }

// FudgeDiceNode is `N dF`: N fudge dice.
type FudgeDiceNode struct {
	Left Node
	Pos  int
}

var _ Node = (*FudgeDiceNode)(nil)

func (n *FudgeDiceNode) Eval(ctx context.Context, env *Env) (*model.RollResult, error) {
	ndice, leftResult, err := totalOrDefault(ctx, env, n.Left, 1)
	if err != nil {
		return nil, err
	}
	if err := validateDice(n.String(), n.Pos, ndice, 0); err != nil {
		return nil, err
	}
	dice, err := env.Dice.RollFudge(ctx, ndice)
	if err != nil {
		return nil, err
	}
	result := model.New(n.String(), model.OpRollFudge, dice, nil)
	result.Left = childOrNil(n.Left, leftResult)
	return result, nil
}

func (n *FudgeDiceNode) String() string { return fmt.Sprintf("%sdF", leftText(n.Left)) }

// CsvDiceNode is `N d[v1,v2,...]`: N dice drawn uniformly from Vals.
type CsvDiceNode struct {
	Left Node
	Vals []int
	Pos  int
}

var _ Node = (*CsvDiceNode)(nil)

func (n *CsvDiceNode) Eval(ctx context.Context, env *Env) (*model.RollResult, error) {
	ndice, leftResult, err := totalOrDefault(ctx, env, n.Left, 1)
	if err != nil {
		return nil, err
	}
	if len(n.Vals) == 0 {
		return nil, errors.FormatError(n.String(), n.Pos, "empty value list")
	}
	if err := validateDice(n.String(), n.Pos, ndice, 0); err != nil {
		return nil, err
	}
	dice, err := env.Dice.RollVals(ctx, ndice, n.Vals)
	if err != nil {
		return nil, err
	}
	result := model.New(n.String(), model.OpRollVals, dice, nil)
	result.Left = childOrNil(n.Left, leftResult)
	return result, nil
}

func (n *CsvDiceNode) String() string {
	return fmt.Sprintf("%sd%v", leftText(n.Left), n.Vals)
}

// leftText renders a possibly-nil operand for String() without
// evaluating it.
func leftText(node Node) string {
	if node == nil {
		return ""
	}
	return node.String()
}
