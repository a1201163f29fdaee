package ast

// Comparator is the optional suffix on counting/reroll/explode
// modifiers (`=`, `>`, `<`, `>=`, `<=`). The zero value means "no
// comparator was written" — callers interpret that per-operator
// (equality for reroll/explode, "count all" for bare `#`).
type Comparator string

const (
	CmpNone Comparator = ""
	CmpEq   Comparator = "="
	CmpGt   Comparator = ">"
	CmpLt   Comparator = "<"
	CmpGte  Comparator = ">="
	CmpLte  Comparator = "<="
)

// Match reports whether value satisfies the comparator against target.
// CmpNone is treated as equality, matching §4.6's "no comparator, bare
// `=`, or missing comparator → equality".
func (c Comparator) Match(value, target int) bool {
	switch c {
	case CmpGt:
		return value > target
	case CmpLt:
		return value < target
	case CmpGte:
		return value >= target
	case CmpLte:
		return value <= target
	default: // CmpNone, CmpEq
		return value == target
	}
}

// String renders the comparator's source text.
func (c Comparator) String() string {
	return string(c)
}
