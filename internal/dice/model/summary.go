package model

import (
	"fmt"
	"strings"
)

// RollSummary is the root-level flattening of an evaluated RollResult
// tree: cached totals/counts plus the root node itself for graph
// inspection.
type RollSummary struct {
	Expression       string      `json:"expression,omitempty"`
	Total            int         `json:"total,omitempty"`
	SuccessCount     int         `json:"successCount,omitempty"`
	FailureCount     int         `json:"failureCount,omitempty"`
	CritSuccessCount int         `json:"critSuccessCount,omitempty"`
	CritFailureCount int         `json:"critFailureCount,omitempty"`
	Results          []RolledDie `json:"results,omitempty"`
	Discarded        []RolledDie `json:"discarded,omitempty"`
	DetailedResults  *RollResult `json:"detailedResults,omitempty"`
}

// NewSummary builds a RollSummary wrapping root, precomputing its totals
// and flag counts.
func NewSummary(root *RollResult) *RollSummary {
	success, failure, critSuccess, critFailure := root.Counts()
	return &RollSummary{
		Expression:       root.Expression,
		Total:            root.Total(),
		SuccessCount:     success,
		FailureCount:     failure,
		CritSuccessCount: critSuccess,
		CritFailureCount: critFailure,
		Results:          root.Results,
		Discarded:        root.Discarded,
		DetailedResults:  root,
	}
}

// String renders a compact one-line summary, e.g. "4d6 kh2 = 11 [6,5]".
func (s *RollSummary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s = %d", s.Expression, s.Total)
	if len(s.Results) > 0 {
		b.WriteString(" [")
		for i, d := range s.Results {
			if i > 0 {
				b.WriteString(",")
			}
			fmt.Fprintf(&b, "%d", d.Result)
		}
		b.WriteString("]")
	}
	if s.SuccessCount > 0 || s.FailureCount > 0 {
		fmt.Fprintf(&b, " (%d success, %d failure)", s.SuccessCount, s.FailureCount)
	}
	return b.String()
}

// Dump renders an indented tree walk of the detailed result graph, for
// debugging and for the CLI's verbose mode.
func (s *RollSummary) Dump() string {
	var b strings.Builder
	dumpNode(&b, s.DetailedResults, 0)
	return b.String()
}

func dumpNode(b *strings.Builder, r *RollResult, depth int) {
	if r == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%s%s (%s) total=%d\n", indent, r.Expression, r.OpType, r.Total())
	for _, d := range r.Results {
		fmt.Fprintf(b, "%s  keep %d\n", indent, d.Result)
	}
	for _, d := range r.Discarded {
		fmt.Fprintf(b, "%s  drop %d\n", indent, d.Result)
	}
	dumpNode(b, r.Left, depth+1)
	dumpNode(b, r.Right, depth+1)
}
