package model

import "encoding/json"

// RollResult is a node of the evaluated expression tree: the dice/values
// it kept, the ones it discarded, and — when the operand was itself a
// meaningful subexpression rather than a raw integer literal — the
// children it was built from.
type RollResult struct {
	Expression string      `json:"expression,omitempty"`
	OpType     OpType      `json:"opType,omitempty"`
	Results    []RolledDie `json:"results,omitempty"`
	Discarded  []RolledDie `json:"discarded,omitempty"`
	Left       *RollResult `json:"left,omitempty"`
	Right      *RollResult `json:"right,omitempty"`
}

// rollResultJSON is the wire projection: Total and the four counts are
// derived, not stored, so the default struct tags can't surface them —
// MarshalJSON computes them at marshal time, at every node in the tree
// (Left/Right marshal through the same method, recursively).
type rollResultJSON struct {
	Expression       string      `json:"expression,omitempty"`
	OpType           OpType      `json:"opType,omitempty"`
	Results          []RolledDie `json:"results,omitempty"`
	Discarded        []RolledDie `json:"discarded,omitempty"`
	Left             *RollResult `json:"left,omitempty"`
	Right            *RollResult `json:"right,omitempty"`
	Total            int         `json:"total,omitempty"`
	SuccessCount     int         `json:"successCount,omitempty"`
	FailureCount     int         `json:"failureCount,omitempty"`
	CritSuccessCount int         `json:"critSuccessCount,omitempty"`
	CritFailureCount int         `json:"critFailureCount,omitempty"`
}

// MarshalJSON emits the §6 projection: the stored fields plus total and
// the four flag counts, all computed from Results. The sparsity rule
// (omit null/empty/zero/false) is carried by the projection's own
// omitempty tags.
func (r *RollResult) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	success, failure, critSuccess, critFailure := r.Counts()
	return json.Marshal(rollResultJSON{
		Expression:       r.Expression,
		OpType:           r.OpType,
		Results:          r.Results,
		Discarded:        r.Discarded,
		Left:             r.Left,
		Right:            r.Right,
		Total:            r.Total(),
		SuccessCount:     success,
		FailureCount:     failure,
		CritSuccessCount: critSuccess,
		CritFailureCount: critFailure,
	})
}

// Total is the sum of Results[i].Result.
func (r *RollResult) Total() int {
	if r == nil {
		return 0
	}
	total := 0
	for _, d := range r.Results {
		total += d.Result
	}
	return total
}

// Counts tallies the success/failure/critical flags across Results. A
// critical flag implies its ordinary counterpart for counting purposes:
// a crit success counts toward both SuccessCount and CritSuccessCount.
func (r *RollResult) Counts() (success, failure, critSuccess, critFailure int) {
	if r == nil {
		return 0, 0, 0, 0
	}
	for _, d := range r.Results {
		if d.Success || d.CritSuccess {
			success++
		}
		if d.Failure || d.CritFailure {
			failure++
		}
		if d.CritSuccess {
			critSuccess++
		}
		if d.CritFailure {
			critFailure++
		}
	}
	return
}

// New builds a bare RollResult for op with the given kept/discarded pools.
func New(expression string, op OpType, results, discarded []RolledDie) *RollResult {
	return &RollResult{Expression: expression, OpType: op, Results: results, Discarded: discarded}
}

// cloneDice returns a fresh slice so combinators never alias a child's
// backing array into a parent's Results/Discarded.
func cloneDice(ds []RolledDie) []RolledDie {
	if len(ds) == 0 {
		return nil
	}
	out := make([]RolledDie, len(ds))
	copy(out, ds)
	return out
}

// Add concatenates both sides' results and discarded pools. leftChild and
// rightChild are attached as provenance only when non-nil (raw integer
// literal operands are never attached).
func Add(expression string, left, right *RollResult, leftChild, rightChild *RollResult) *RollResult {
	res := &RollResult{
		Expression: expression,
		OpType:     OpAdd,
		Results:    append(cloneDice(left.Results), right.Results...),
		Discarded:  append(cloneDice(left.Discarded), right.Discarded...),
		Left:       leftChild,
		Right:      rightChild,
	}
	return res
}

// Sub keeps left's results unchanged, appends a single singleVal equal to
// -right.Total(), and moves all of right's results to discarded.
func Sub(expression string, left, right *RollResult, leftChild, rightChild *RollResult) *RollResult {
	res := &RollResult{
		Expression: expression,
		OpType:     OpSubtract,
		Results:    append(cloneDice(left.Results), NewSingleVal(-right.Total())),
		Discarded:  append(append(cloneDice(left.Discarded), right.Results...), right.Discarded...),
		Left:       leftChild,
		Right:      rightChild,
	}
	return res
}

// Mul collapses both sides into a single singleVal equal to the product
// of their totals; every contributing die from both sides is discarded.
func Mul(expression string, left, right *RollResult, leftChild, rightChild *RollResult) *RollResult {
	discarded := append(cloneDice(left.Results), left.Discarded...)
	discarded = append(discarded, right.Results...)
	discarded = append(discarded, right.Discarded...)
	return &RollResult{
		Expression: expression,
		OpType:     OpMultiply,
		Results:    []RolledDie{NewSingleVal(left.Total() * right.Total())},
		Discarded:  discarded,
		Left:       leftChild,
		Right:      rightChild,
	}
}

// Comma preserves ordered aggregation: a side that is already a comma
// node splices its results/discarded in directly; any other side is
// totaled into one singleVal and its originals moved to discarded.
func Comma(expression string, left, right *RollResult, leftChild, rightChild *RollResult) *RollResult {
	results := make([]RolledDie, 0, 2)
	var discarded []RolledDie

	absorb := func(side *RollResult) {
		if side.OpType == OpComma {
			results = append(results, side.Results...)
			discarded = append(discarded, side.Discarded...)
			return
		}
		results = append(results, NewSingleVal(side.Total()))
		discarded = append(discarded, side.Results...)
		discarded = append(discarded, side.Discarded...)
	}
	absorb(left)
	absorb(right)

	return &RollResult{
		Expression: expression,
		OpType:     OpComma,
		Results:    results,
		Discarded:  discarded,
		Left:       leftChild,
		Right:      rightChild,
	}
}

// Aggregate reduces inner's results to a single singleVal (the `{expr}`
// aggregate operator); every contributing die is moved to discarded.
func Aggregate(expression string, inner *RollResult, innerChild *RollResult) *RollResult {
	discarded := append(cloneDice(inner.Results), inner.Discarded...)
	return &RollResult{
		Expression: expression,
		OpType:     OpTotal,
		Results:    []RolledDie{NewSingleVal(inner.Total())},
		Discarded:  discarded,
		Left:       innerChild,
	}
}
