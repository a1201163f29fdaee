// Package model holds the value types evaluation produces: RolledDie (one
// atomic outcome plus provenance), RollResult (a node of the evaluated
// tree), and RollSummary (the root-level flattening of that tree).
package model

// RolledDie is one atomic outcome plus the provenance and state flags
// modifiers use to explain why it ended up in a roll's results or
// discarded pile. RolledDie is a value type: every mutation a modifier
// makes is expressed as a fresh copy, never an in-place update.
type RolledDie struct {
	Result          int     `json:"result,omitempty"`
	DieType         DieType `json:"dieType,omitempty"`
	NSides          int     `json:"nsides,omitempty"`
	PotentialValues []int   `json:"potentialValues,omitempty"`

	Discarded       bool `json:"discarded,omitempty"`
	Success         bool `json:"success,omitempty"`
	Failure         bool `json:"failure,omitempty"`
	CritSuccess     bool `json:"critSuccess,omitempty"`
	CritFailure     bool `json:"critFailure,omitempty"`
	Exploded        bool `json:"exploded,omitempty"`
	Explosion       bool `json:"explosion,omitempty"`
	Compounded      bool `json:"compounded,omitempty"`
	CompoundedFinal bool `json:"compoundedFinal,omitempty"`
	Penetrated      bool `json:"penetrated,omitempty"`
	Penetrator      bool `json:"penetrator,omitempty"`
	Reroll          bool `json:"reroll,omitempty"`
	Rerolled        bool `json:"rerolled,omitempty"`
	ClampCeiling    bool `json:"clampHigh,omitempty"`
	ClampFloor      bool `json:"clampLow,omitempty"`
	Totaled         bool `json:"totaled,omitempty"`

	From []RolledDie `json:"-"`
}

// NewPolyhedral builds a standard N-sided die outcome (1..nsides).
func NewPolyhedral(result, nsides int) RolledDie {
	return RolledDie{Result: result, DieType: Polyhedral, NSides: nsides}
}

// NewD66 builds a composed d66 outcome; tens and ones are recorded as the
// two contributing polyhedral d6 rolls (callers attach them via From/Discarded).
func NewD66(result int) RolledDie {
	return RolledDie{Result: result, DieType: D66}
}

// NewFudge builds a fudge die outcome drawn from vals.
func NewFudge(result int, vals []int) RolledDie {
	return RolledDie{Result: result, DieType: Fudge, PotentialValues: append([]int{}, vals...)}
}

// NewNVals builds an outcome drawn from an arbitrary bracketed value list.
func NewNVals(result int, vals []int) RolledDie {
	return RolledDie{Result: result, DieType: NVals, PotentialValues: append([]int{}, vals...)}
}

// NewSingleVal builds a synthetic die holding one fixed, non-rolled value
// (literals and derived aggregates such as totals, products, and counts).
func NewSingleVal(result int) RolledDie {
	return RolledDie{Result: result, DieType: SingleVal, Totaled: true}
}

// MinPotential returns the smallest value this die could have produced.
func (d RolledDie) MinPotential() int {
	switch d.DieType {
	case Polyhedral:
		return 1
	case D66:
		return 1
	case SingleVal:
		return d.Result
	default: // Fudge, NVals
		return minOf(d.PotentialValues)
	}
}

// MaxPotential returns the largest value this die could have produced.
// Compounding/penetration may legitimately push Result above this.
func (d RolledDie) MaxPotential() int {
	switch d.DieType {
	case Polyhedral:
		return d.NSides
	case D66:
		return 66
	case SingleVal:
		return d.Result
	default: // Fudge, NVals
		return maxOf(d.PotentialValues)
	}
}

// IsDegenerate reports whether min==max — a die that cannot meaningfully
// "succeed" against a defaulted target, because every outcome is the only
// outcome.
func (d RolledDie) IsDegenerate() bool {
	return d.MinPotential() == d.MaxPotential()
}

// WithResult returns a copy with Result replaced.
func (d RolledDie) WithResult(result int) RolledDie {
	d.Result = result
	return d
}

// WithFrom returns a copy whose From chain is set to ancestors.
func (d RolledDie) WithFrom(ancestors ...RolledDie) RolledDie {
	d.From = ancestors
	return d
}

func minOf(vals []int) int {
	if len(vals) == 0 {
		return 0
	}
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(vals []int) int {
	if len(vals) == 0 {
		return 0
	}
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
