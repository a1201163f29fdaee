package roller

import (
	"context"

	"github.com/KirkDiggler/dicenotation/internal/dice/model"
)

// RollFunc produces ndice outcomes in [min, min+nsides-1]. It is free to
// block on ctx — this is the seam spec.md's "asynchronous" evaluation
// model exists for, e.g. a physical-dice-camera integration or a remote
// fairness service.
type RollFunc func(ctx context.Context, ndice, nsides, min int, dieType model.DieType) ([]int, error)

// RollValsFunc is RollFunc's counterpart for value-set dice (fudge and
// arbitrary bracketed value lists; D66 is drawn through RollFunc).
type RollValsFunc func(ctx context.Context, ndice int, vals []int, dieType model.DieType) ([]int, error)

// CallbackRoller delegates every request to caller-supplied functions.
// Both fields must be set; CallbackRoller does no validation of its own
// beyond what the callbacks choose to do, since it has no opinion about
// where outcomes come from.
type CallbackRoller struct {
	RollFn     RollFunc
	RollValsFn RollValsFunc
}

// NewCallback returns a CallbackRoller wrapping rollFn and rollValsFn.
func NewCallback(rollFn RollFunc, rollValsFn RollValsFunc) *CallbackRoller {
	return &CallbackRoller{RollFn: rollFn, RollValsFn: rollValsFn}
}

// Roll implements Roller.
func (c *CallbackRoller) Roll(ctx context.Context, ndice, nsides, min int, dieType model.DieType) ([]int, error) {
	return c.RollFn(ctx, ndice, nsides, min, dieType)
}

// RollVals implements Roller.
func (c *CallbackRoller) RollVals(ctx context.Context, ndice int, vals []int, dieType model.DieType) ([]int, error) {
	return c.RollValsFn(ctx, ndice, vals, dieType)
}
