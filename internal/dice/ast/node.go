// Package ast holds the expression tree: one node type per grammar
// production, each a tagged variant dispatching to its own Eval method
// rather than sharing a base class. The tree is built once by the
// parser and is stateless afterward — the same tree may be evaluated
// any number of times, each producing an independent model.RollResult.
package ast

import (
	"context"

	"github.com/KirkDiggler/dicenotation/internal/dice/model"
	"github.com/KirkDiggler/dicenotation/internal/dice/roller"
	"github.com/KirkDiggler/dicenotation/internal/errors"
)

// Node is one production of the grammar. Eval walks post-order: a node
// awaits its children (through evalChild, which also fires the on_roll
// listener) before computing and returning its own result.
type Node interface {
	Eval(ctx context.Context, env *Env) (*model.RollResult, error)
	// String renders the canonical re-print used as RollResult.Expression.
	String() string
}

// Listener observes nodes as they're evaluated.
type Listener struct {
	// OnRoll fires once per non-root node, with that node's result.
	OnRoll func(*model.RollResult)
	// OnSummary fires once, with the root's summary.
	OnSummary func(*model.RollSummary)
}

// Env carries the dependencies a tree needs to evaluate: the dice
// source and the optional listener pair.
type Env struct {
	Dice     *roller.DiceResultRoller
	Listener Listener
}

// NewEnv wraps r in a DiceResultRoller and returns a bare Env with no
// listeners registered.
func NewEnv(r roller.Roller) *Env {
	return &Env{Dice: roller.NewDiceResultRoller(r)}
}

// Evaluate runs root to completion, firing OnSummary (but not OnRoll,
// per the non-root rule) for the root itself, and returns the summary.
func Evaluate(ctx context.Context, env *Env, root Node) (*model.RollSummary, error) {
	result, err := root.Eval(ctx, env)
	if err != nil {
		return nil, err
	}
	summary := model.NewSummary(result)
	if env.Listener.OnSummary != nil {
		env.Listener.OnSummary(summary)
	}
	return summary, nil
}

// evalChild evaluates a non-root node and fires OnRoll on its result.
// A nil node means the grammar position required an operand the input
// never supplied outside of the three documented defaulting contexts
// (those call totalOrDefault instead, never evalChild, on a possibly
// nil node) — it is always a malformed-input FormatError here.
func evalChild(ctx context.Context, env *Env, node Node) (*model.RollResult, error) {
	if node == nil {
		return nil, errors.FormatError("", -1, "missing operand")
	}
	result, err := node.Eval(ctx, env)
	if err != nil {
		return nil, err
	}
	if env.Listener.OnRoll != nil {
		env.Listener.OnRoll(result)
	}
	return result, nil
}

// totalOrDefault evaluates node (if non-nil) and returns its total; a
// nil node yields def, matching the grammar's documented defaults for
// omitted right-hand sides.
func totalOrDefault(ctx context.Context, env *Env, node Node, def int) (int, *model.RollResult, error) {
	if node == nil {
		return def, nil, nil
	}
	result, err := evalChild(ctx, env, node)
	if err != nil {
		return 0, nil, err
	}
	return result.Total(), result, nil
}
