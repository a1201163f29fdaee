package roller

import (
	"context"

	"github.com/KirkDiggler/dicenotation/internal/dice/model"
	"github.com/KirkDiggler/dicenotation/internal/errors"
)

// DefaultFudgeValues is the six-face fudge/FATE die: two blanks, two
// minuses, two pluses.
var DefaultFudgeValues = []int{-1, -1, 0, 0, 1, 1}

// DiceResultRoller wraps a raw Roller and returns typed model.RolledDie
// slices instead of bare ints, so the ast package never builds a drawn
// die itself — it only asks for them (it builds only singleVal dice).
type DiceResultRoller struct {
	Roller Roller
}

// NewDiceResultRoller wraps r.
func NewDiceResultRoller(r Roller) *DiceResultRoller {
	return &DiceResultRoller{Roller: r}
}

// Roll draws ndice standard polyhedral outcomes in [1, nsides].
func (d *DiceResultRoller) Roll(ctx context.Context, ndice, nsides int) ([]model.RolledDie, error) {
	vals, err := d.Roller.Roll(ctx, ndice, nsides, 1, model.Polyhedral)
	if err != nil {
		return nil, err
	}
	out := make([]model.RolledDie, len(vals))
	for i, v := range vals {
		out[i] = model.NewPolyhedral(v, nsides)
	}
	return out, nil
}

// RollFudge draws ndice fudge-die outcomes.
func (d *DiceResultRoller) RollFudge(ctx context.Context, ndice int) ([]model.RolledDie, error) {
	vals, err := d.Roller.RollVals(ctx, ndice, DefaultFudgeValues, model.Fudge)
	if err != nil {
		return nil, err
	}
	out := make([]model.RolledDie, len(vals))
	for i, v := range vals {
		out[i] = model.NewFudge(v, DefaultFudgeValues)
	}
	return out, nil
}

// RollD66 draws ndice D66 outcomes: each is two standard d6 rolls, tens
// digit first, composed as tens*10+ones. The two contributing d6 are
// recorded in the result's From chain.
func (d *DiceResultRoller) RollD66(ctx context.Context, ndice int) ([]model.RolledDie, error) {
	out := make([]model.RolledDie, ndice)
	for i := range out {
		tens, err := d.Roller.Roll(ctx, 1, 6, 1, model.Polyhedral)
		if err != nil {
			return nil, err
		}
		ones, err := d.Roller.Roll(ctx, 1, 6, 1, model.Polyhedral)
		if err != nil {
			return nil, err
		}
		composed := tens[0]*10 + ones[0]
		out[i] = model.NewD66(composed).WithFrom(
			model.NewPolyhedral(tens[0], 6),
			model.NewPolyhedral(ones[0], 6),
		)
	}
	return out, nil
}

// RollVals draws ndice outcomes from an arbitrary bracketed value list.
func (d *DiceResultRoller) RollVals(ctx context.Context, ndice int, vals []int) ([]model.RolledDie, error) {
	results, err := d.Roller.RollVals(ctx, ndice, vals, model.NVals)
	if err != nil {
		return nil, err
	}
	out := make([]model.RolledDie, len(results))
	for i, v := range results {
		out[i] = model.NewNVals(v, vals)
	}
	return out, nil
}

// Reroll draws a single replacement outcome for die, dispatching on its
// DieType to the matching draw method. die's own state (Discarded,
// Reroll flags, etc.) is left to the caller to set; Reroll only produces
// the fresh RolledDie.
func (d *DiceResultRoller) Reroll(ctx context.Context, die model.RolledDie) (model.RolledDie, error) {
	switch die.DieType {
	case model.Polyhedral:
		vals, err := d.Roll(ctx, 1, die.NSides)
		if err != nil {
			return model.RolledDie{}, err
		}
		return vals[0], nil
	case model.Fudge:
		vals, err := d.RollFudge(ctx, 1)
		if err != nil {
			return model.RolledDie{}, err
		}
		return vals[0], nil
	case model.D66:
		vals, err := d.RollD66(ctx, 1)
		if err != nil {
			return model.RolledDie{}, err
		}
		return vals[0], nil
	case model.NVals:
		vals, err := d.RollVals(ctx, 1, die.PotentialValues)
		if err != nil {
			return model.RolledDie{}, err
		}
		return vals[0], nil
	default:
		return model.RolledDie{}, errors.FailedPreconditionf("cannot reroll die type %q", die.DieType)
	}
}
