// Package roller defines the pluggable randomness source the evaluator
// calls into, and the three variants spec.md names: RNG-backed,
// PreRolled (a consumed queue), and Callback (user-supplied async
// functions). None of this is the interesting engineering in this
// module — the grammar and evaluator are — but the interface is the
// seam that makes the evaluator replayable and testable.
package roller

import (
	"context"

	"github.com/KirkDiggler/dicenotation/internal/dice/model"
	"github.com/KirkDiggler/dicenotation/internal/errors"
)

//go:generate mockgen -destination=rollermock/mock_roller.go -package=rollermock github.com/KirkDiggler/dicenotation/internal/dice/roller Roller

// MinNDice and MaxNDice bound how many dice a single roll may request.
const (
	MinNDice = 0
	MaxNDice = 1000
	MinSides = 2
	MaxSides = 100000
)

// Roller produces sequences of raw integer outcomes for a requested die
// specification. Implementations may suspend on ctx (the Callback
// variant, in particular, may hand off to I/O).
type Roller interface {
	// Roll returns ndice outcomes in [min, min+nsides-1].
	Roll(ctx context.Context, ndice, nsides, min int, dieType model.DieType) ([]int, error)
	// RollVals returns ndice outcomes, each drawn from vals.
	RollVals(ctx context.Context, ndice int, vals []int, dieType model.DieType) ([]int, error)
}

// ValidateBounds checks the limits spec.md makes observable: ndice in
// [0,1000], nsides in [2,100000].
func ValidateBounds(ndice, nsides int) error {
	if err := ValidateNDice(ndice); err != nil {
		return err
	}
	if nsides < MinSides || nsides > MaxSides {
		return errors.OutOfRangef("nsides %d not in [%d,%d]", nsides, MinSides, MaxSides)
	}
	return nil
}

// ValidateNDice checks only the dice-count bound; RollVals has no nsides
// to validate since its outcomes are drawn from an arbitrary value list.
func ValidateNDice(ndice int) error {
	if ndice < MinNDice || ndice > MaxNDice {
		return errors.OutOfRangef("ndice %d not in [%d,%d]", ndice, MinNDice, MaxNDice)
	}
	return nil
}

func valueInRange(v, min, nsides int) bool {
	return v >= min && v <= min+nsides-1
}

func valueInSet(v int, vals []int) bool {
	for _, c := range vals {
		if v == c {
			return true
		}
	}
	return false
}
