// Package stats implements the statistics driver: it evaluates the same
// parsed expression tree K times against its Roller and yields the
// resulting distribution (mean, stddev, min, max, count, histogram).
package stats

import (
	"context"
	"log/slog"
	"math"

	"github.com/KirkDiggler/dicenotation/internal/dice/ast"
	"github.com/KirkDiggler/dicenotation/internal/errors"
	"github.com/KirkDiggler/dicenotation/internal/pkg/clock"
	"github.com/KirkDiggler/dicenotation/internal/pkg/idgen"
)

// DefaultRuns is K when the caller doesn't specify one.
const DefaultRuns = 1000

// Config carries a driver's dependencies.
type Config struct {
	// Expression is the already-parsed tree to re-evaluate K times.
	Expression ast.Node
	// Env supplies the Roller the tree was built against; the driver
	// calls ast.Evaluate(ctx, Env, Expression) once per run.
	Env *ast.Env
	// IDGenerator tags each run with a correlation ID for its log
	// lines. Defaults to a UUID generator if nil.
	IDGenerator idgen.Generator
	// Clock times the run's duration. Defaults to the real clock if nil.
	Clock clock.Clock
	// Logger receives the run's start/finish log lines. Defaults to
	// slog.Default() if nil.
	Logger *slog.Logger
}

// Validate ensures the required dependencies are provided.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Expression == nil {
		vb.RequiredField("Expression")
	}
	if c.Env == nil {
		vb.RequiredField("Env")
	}
	return vb.Build()
}

// Result is the distribution produced by a run of K evaluations.
type Result struct {
	Count     int         `json:"count,omitempty"`
	Mean      float64     `json:"mean,omitempty"`
	StdDev    float64     `json:"stdDev,omitempty"`
	Min       int         `json:"min,omitempty"`
	Max       int         `json:"max,omitempty"`
	Histogram map[int]int `json:"histogram,omitempty"`
}

// Driver runs repeated evaluations of a parsed expression and summarizes
// the resulting distribution.
type Driver interface {
	Run(ctx context.Context, k int) (*Result, error)
}

type driver struct {
	cfg *Config
}

var _ Driver = (*driver)(nil)

// New constructs a Driver with defaults filled in for any dependency cfg
// left nil, then validates the result.
func New(cfg *Config) (Driver, error) {
	if cfg.IDGenerator == nil {
		cfg.IDGenerator = idgen.NewUUID("statsrun")
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &driver{cfg: cfg}, nil
}

// Run evaluates the configured expression k times (DefaultRuns if k<=0)
// and returns the resulting distribution. Each evaluation reuses the
// same Env, so a PreRolled Roller is consumed across the whole run
// rather than per-evaluation.
func (d *driver) Run(ctx context.Context, k int) (*Result, error) {
	if k <= 0 {
		k = DefaultRuns
	}

	runID := d.cfg.IDGenerator.Generate()
	start := d.cfg.Clock.Now()
	d.cfg.Logger.Info("stats run started", "run_id", runID, "count", k, "expression", d.cfg.Expression.String())

	totals := make([]int, 0, k)
	histogram := make(map[int]int)
	sum := 0
	min, max := 0, 0

	for i := 0; i < k; i++ {
		summary, err := ast.Evaluate(ctx, d.cfg.Env, d.cfg.Expression)
		if err != nil {
			d.cfg.Logger.Info("stats run failed", "run_id", runID, "run", i, "error", err)
			return nil, err
		}
		total := summary.Total
		totals = append(totals, total)
		histogram[total]++
		sum += total
		if i == 0 || total < min {
			min = total
		}
		if i == 0 || total > max {
			max = total
		}
	}

	mean := float64(sum) / float64(k)
	stddev := roundTo2(stdDev(totals, mean))

	result := &Result{
		Count:     k,
		Mean:      roundTo2(mean),
		StdDev:    stddev,
		Min:       min,
		Max:       max,
		Histogram: histogram,
	}

	d.cfg.Logger.Info("stats run completed", "run_id", runID, "duration", d.cfg.Clock.Now().Sub(start),
		"count", k, "mean", result.Mean, "stddev", result.StdDev, "min", result.Min, "max", result.Max)

	return result, nil
}

func stdDev(vals []int, mean float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sumSq float64
	for _, v := range vals {
		diff := float64(v) - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(vals)))
}

// roundTo2 rounds to 2 decimal places, per the driver's documented
// stddev/mean precision.
func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
