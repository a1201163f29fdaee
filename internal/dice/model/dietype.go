package model

// DieType classifies what a RolledDie was drawn from, and therefore how
// its min/max potential values are derived.
type DieType string

const (
	// Polyhedral is an N-sided die numbered 1..N (std dice, d66-as-polyhedral, percent).
	Polyhedral DieType = "polyhedral"
	// Fudge is a die drawn from the six-value fudge set.
	Fudge DieType = "fudge"
	// D66 is the composed tens*10+ones die.
	D66 DieType = "d66"
	// NVals is a die drawn uniformly from an arbitrary bracketed value list.
	NVals DieType = "nvals"
	// SingleVal is a synthetic die holding one fixed value (literals, totals,
	// and other derived aggregates).
	SingleVal DieType = "singleVal"
)

// RequirePotentialValues reports whether this die type must carry a
// non-empty PotentialValues slice.
func (t DieType) RequirePotentialValues() bool {
	switch t {
	case Fudge, NVals:
		return true
	default:
		return false
	}
}

// RequireNSides reports whether this die type must carry a non-zero NSides.
func (t DieType) RequireNSides() bool {
	return t == Polyhedral
}

// Explodable reports whether dice of this type may legitimately explode,
// compound, or penetrate. A die with no fixed maximum (or a degenerate
// single value) cannot.
func (t DieType) Explodable() bool {
	switch t {
	case Polyhedral, D66, Fudge, NVals:
		return true
	default:
		return false
	}
}
