package roller

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand/v2"

	"github.com/KirkDiggler/dicenotation/internal/dice/model"
	"github.com/KirkDiggler/dicenotation/internal/errors"
)

// ctxErr translates a cancelled or expired context into our error
// taxonomy, so a roll made against a context the caller already gave up
// on surfaces as a structured error rather than running to completion
// anyway.
func ctxErr(ctx context.Context) error {
	switch ctx.Err() {
	case context.Canceled:
		return errors.Canceled("roll canceled")
	case context.DeadlineExceeded:
		return errors.DeadlineExceeded("roll deadline exceeded")
	default:
		return nil
	}
}

// RNGRoller draws outcomes from a supplied PRNG. The zero-arg
// constructor seeds a ChaCha8 source from crypto/rand, so callers who
// don't care about reproducibility get a cryptographically seeded
// generator "for free"; callers who do care (statistics runs, replay
// tooling) can supply their own math/rand/v2 source instead.
type RNGRoller struct {
	rng *mathrand.Rand
}

// NewSecure returns an RNGRoller seeded from the operating system's CSPRNG.
func NewSecure() *RNGRoller {
	var seed [32]byte
	if _, err := rand.Read(seed[:]); err != nil {
		// crypto/rand.Read failing indicates a broken system; there is
		// no sane fallback that preserves the "secure by default" contract.
		panic("roller: crypto/rand unavailable: " + err.Error())
	}
	return &RNGRoller{rng: mathrand.New(mathrand.NewChaCha8(seed))}
}

// NewFromSeed returns an RNGRoller seeded deterministically, for tests
// and reproducible statistics runs.
func NewFromSeed(seed uint64) *RNGRoller {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	return &RNGRoller{rng: mathrand.New(mathrand.NewChaCha8(key))}
}

// New wraps an existing math/rand/v2 source.
func New(src mathrand.Source) *RNGRoller {
	return &RNGRoller{rng: mathrand.New(src)}
}

// Roll implements Roller.
func (r *RNGRoller) Roll(ctx context.Context, ndice, nsides, min int, _ model.DieType) ([]int, error) {
	if err := ValidateBounds(ndice, nsides); err != nil {
		return nil, err
	}
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	out := make([]int, ndice)
	for i := range out {
		out[i] = min + r.rng.IntN(nsides)
	}
	return out, nil
}

// RollVals implements Roller: each outcome is drawn uniformly from vals,
// with replacement.
func (r *RNGRoller) RollVals(ctx context.Context, ndice int, vals []int, _ model.DieType) ([]int, error) {
	if err := ValidateNDice(ndice); err != nil {
		return nil, err
	}
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	out := make([]int, ndice)
	for i := range out {
		out[i] = vals[r.rng.IntN(len(vals))]
	}
	return out, nil
}
