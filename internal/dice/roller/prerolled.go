package roller

import (
	"context"
	"sync"

	"github.com/KirkDiggler/dicenotation/internal/dice/model"
	"github.com/KirkDiggler/dicenotation/internal/errors"
)

// PreRolledRoller consumes an ordered, single-consumer queue of integers.
// It is the deterministic-replay variant: spec.md's end-to-end scenarios
// and the "replay the sequence an RNG produced" property both depend on
// it delivering queued values left-to-right, depth-first, post-order —
// i.e. in exactly the order the evaluator asks for them.
type PreRolledRoller struct {
	mu    sync.Mutex
	queue []int
	pos   int
}

// NewPreRolled returns a PreRolledRoller that will hand out queue's
// values in order, one per requested die.
func NewPreRolled(queue []int) *PreRolledRoller {
	return &PreRolledRoller{queue: append([]int{}, queue...)}
}

// Remaining reports how many values are left in the queue.
func (p *PreRolledRoller) Remaining() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue) - p.pos
}

func (p *PreRolledRoller) next() (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pos >= len(p.queue) {
		return 0, false
	}
	v := p.queue[p.pos]
	p.pos++
	return v, true
}

// Roll implements Roller.
func (p *PreRolledRoller) Roll(_ context.Context, ndice, nsides, min int, _ model.DieType) ([]int, error) {
	if err := ValidateBounds(ndice, nsides); err != nil {
		return nil, err
	}
	out := make([]int, ndice)
	for i := range out {
		v, ok := p.next()
		if !ok {
			return nil, errors.RollerExhausted("pre-rolled queue exhausted")
		}
		if !valueInRange(v, min, nsides) {
			return nil, errors.RollerOutOfRangef("pre-rolled value %d not in [%d,%d]", v, min, min+nsides-1)
		}
		out[i] = v
	}
	return out, nil
}

// RollVals implements Roller.
func (p *PreRolledRoller) RollVals(_ context.Context, ndice int, vals []int, _ model.DieType) ([]int, error) {
	if err := ValidateNDice(ndice); err != nil {
		return nil, err
	}
	out := make([]int, ndice)
	for i := range out {
		v, ok := p.next()
		if !ok {
			return nil, errors.RollerExhausted("pre-rolled queue exhausted")
		}
		if !valueInSet(v, vals) {
			return nil, errors.RollerOutOfRangef("pre-rolled value %d not in %v", v, vals)
		}
		out[i] = v
	}
	return out, nil
}
