package ast

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dicenotation/internal/dice/model"
	"github.com/KirkDiggler/dicenotation/internal/dice/roller"
	"github.com/KirkDiggler/dicenotation/internal/errors"
)

func evalNode(t *testing.T, n Node, queue []int) *model.RollResult {
	t.Helper()
	env := NewEnv(roller.NewPreRolled(queue))
	result, err := n.Eval(context.Background(), env)
	require.NoError(t, err)
	return result
}

func stdDice(left Node, nsides int) *StdDiceNode {
	return &StdDiceNode{Left: left, Right: &ValueNode{Text: itoaHelper(nsides)}}
}

func itoaHelper(n int) string {
	if n == 0 {
		return "0"
	}
	var buf []byte
	for n > 0 {
		buf = append([]byte{byte('0' + n%10)}, buf...)
		n /= 10
	}
	return string(buf)
}

func TestValueNode_EmptyTextEvalsToNothing(t *testing.T) {
	r := evalNode(t, &ValueNode{Text: ""}, nil)
	assert.Equal(t, 0, r.Total())
}

func TestValueNode_LiteralIsSingleVal(t *testing.T) {
	r := evalNode(t, &ValueNode{Text: "7"}, nil)
	assert.Equal(t, 7, r.Total())
}

func TestStdDiceNode_DefaultsLeftTo1(t *testing.T) {
	n := &StdDiceNode{Right: &ValueNode{Text: "6"}}
	r := evalNode(t, n, []int{4})
	assert.Equal(t, 4, r.Total())
	assert.Len(t, r.Results, 1)
}

func TestStdDiceNode_MissingRightIsFormatError(t *testing.T) {
	n := &StdDiceNode{Left: &ValueNode{Text: "4"}}
	env := NewEnv(roller.NewPreRolled(nil))
	_, err := n.Eval(context.Background(), env)
	require.Error(t, err)
}

func TestCountNode_PlainCountCollapsesToTotal(t *testing.T) {
	n := &CountNode{Left: stdDice(&ValueNode{Text: "4"}, 6), Kind: CountAll}
	r := evalNode(t, n, []int{6, 2, 1, 5})
	assert.Equal(t, 4, r.Total())
	assert.Len(t, r.Results, 1)
	assert.Len(t, r.Discarded, 4)
}

func TestCountNode_SuccessFamilyFlagsInPlace(t *testing.T) {
	n := &CountNode{
		Left:       stdDice(&ValueNode{Text: "4"}, 6),
		Kind:       CountSuccess,
		Comparator: CmpGt,
		Right:      &ValueNode{Text: "3"},
	}
	r := evalNode(t, n, []int{6, 2, 1, 5})
	success, failure, _, _ := r.Counts()
	assert.Equal(t, 2, success)
	assert.Equal(t, 0, failure)
	assert.Len(t, r.Results, 4) // pool stays intact, only flags change
}

func TestCountNode_DegenerateDieSuppressedWhenDefaulted(t *testing.T) {
	// (4d6+1)#s#f: the literal +1 is a degenerate singleVal and must
	// never count as a success or failure against its own defaulted target.
	add := &AddNode{Left: stdDice(&ValueNode{Text: "4"}, 6), Right: &ValueNode{Text: "1"}}
	success := &CountNode{Left: add, Kind: CountSuccess}
	both := &CountNode{Left: success, Kind: CountFailure}
	r := evalNode(t, both, []int{6, 2, 1, 5})
	s, f, _, _ := r.Counts()
	assert.Equal(t, 1, s)
	assert.Equal(t, 1, f)
}

func TestCountNode_AllWithComparatorButNoTargetIsFormatError(t *testing.T) {
	// 4d6#> : a comparator with no integer is a FormatError for every
	// counting form, plain `#` included — not just the success/failure
	// operators.
	n := &CountNode{Left: stdDice(&ValueNode{Text: "4"}, 6), Kind: CountAll, Comparator: CmpGt}
	env := NewEnv(roller.NewPreRolled([]int{6, 2, 1, 5}))
	_, err := n.Eval(context.Background(), env)
	require.Error(t, err)
	assert.True(t, errors.IsFormatError(err))
}

func TestDropHighLowNode_KeepHighest(t *testing.T) {
	n := &DropHighLowNode{Left: stdDice(&ValueNode{Text: "4"}, 6), Kind: KeepHigh, Right: &ValueNode{Text: "2"}}
	r := evalNode(t, n, []int{6, 2, 1, 5})
	assert.Equal(t, 11, r.Total())
	assert.Len(t, r.Results, 2)
	assert.Len(t, r.Discarded, 2)
}

func TestDropHighLowNode_KIsAliasOfKeepHigh(t *testing.T) {
	a := &DropHighLowNode{Left: stdDice(&ValueNode{Text: "4"}, 6), Kind: KeepK, Right: &ValueNode{Text: "2"}}
	b := &DropHighLowNode{Left: stdDice(&ValueNode{Text: "4"}, 6), Kind: KeepHigh, Right: &ValueNode{Text: "2"}}
	ra := evalNode(t, a, []int{6, 2, 1, 5})
	rb := evalNode(t, b, []int{6, 2, 1, 5})
	assert.Equal(t, rb.Total(), ra.Total())
}

func TestDropHighLowNode_DefaultsKTo1(t *testing.T) {
	n := &DropHighLowNode{Left: stdDice(&ValueNode{Text: "3"}, 6), Kind: DropLow}
	r := evalNode(t, n, []int{6, 2, 5})
	assert.Len(t, r.Discarded, 1)
	assert.Equal(t, 2, r.Discarded[0].Result)
}

func TestDropCompareNode_DropsMatchingValues(t *testing.T) {
	n := &DropCompareNode{Left: stdDice(&ValueNode{Text: "4"}, 6), Kind: DropLt, Right: &ValueNode{Text: "3"}}
	r := evalNode(t, n, []int{6, 2, 1, 5})
	assert.Equal(t, 11, r.Total())
	assert.Len(t, r.Discarded, 2)
}

func TestClampNode_CeilingClampsHighValues(t *testing.T) {
	n := &ClampNode{Left: stdDice(&ValueNode{Text: "3"}, 6), Kind: ClampCeiling, Right: &ValueNode{Text: "4"}}
	r := evalNode(t, n, []int{6, 2, 1})
	assert.Equal(t, 4+2+1, r.Total())
	assert.True(t, r.Results[0].ClampCeiling)
}

func TestSortNode_Ascending(t *testing.T) {
	n := &SortNode{Left: stdDice(&ValueNode{Text: "4"}, 6), Kind: SortAsc}
	r := evalNode(t, n, []int{6, 2, 1, 5})
	var got []int
	for _, d := range r.Results {
		got = append(got, d.Result)
	}
	assert.Equal(t, []int{1, 2, 5, 6}, got)
}

func TestRerollNode_ReplacesMatchingDie(t *testing.T) {
	n := &RerollNode{Left: stdDice(&ValueNode{Text: "1"}, 6), Kind: RerollAlways, Comparator: CmpLt, Right: &ValueNode{Text: "2"}}
	r := evalNode(t, n, []int{1, 6})
	assert.Equal(t, 6, r.Total())
}

func TestExplodeNode_AppendsOnMax(t *testing.T) {
	n := &ExplodeNode{Left: stdDice(&ValueNode{Text: "1"}, 6)}
	r := evalNode(t, n, []int{6, 3})
	assert.Equal(t, 9, r.Total())
	assert.Len(t, r.Results, 2)
}

func TestExplodeNode_CompoundSumsIntoOneDie(t *testing.T) {
	n := &ExplodeNode{Left: stdDice(&ValueNode{Text: "1"}, 6), Kind: Compound}
	r := evalNode(t, n, []int{6, 3})
	assert.Equal(t, 9, r.Total())
	assert.Len(t, r.Results, 1)
}

func TestPenetrateNode_SubtractsOnePerExplosion(t *testing.T) {
	n := &PenetrateNode{Left: stdDice(&ValueNode{Text: "1"}, 6)}
	r := evalNode(t, n, []int{6, 3})
	// explodes once (6 -> max), penetration nets -1 on the follow-up.
	assert.Equal(t, 6+(3-1), r.Total())
}

func TestAggregateNode_CollapsesInnerTotal(t *testing.T) {
	inner := stdDice(&ValueNode{Text: "2"}, 6)
	n := &AggregateNode{Inner: inner}
	r := evalNode(t, n, []int{3, 4})
	assert.Equal(t, 7, r.Total())
	assert.Len(t, r.Results, 1)
}

func TestComparator_Match(t *testing.T) {
	assert.True(t, CmpGt.Match(5, 3))
	assert.False(t, CmpGt.Match(3, 3))
	assert.True(t, CmpGte.Match(3, 3))
	assert.True(t, CmpLte.Match(3, 3))
	assert.True(t, CmpEq.Match(3, 3))
	assert.True(t, CmpNone.Match(3, 3)) // CmpNone is equality, same as CmpEq
	assert.False(t, CmpNone.Match(3, 4))
}
