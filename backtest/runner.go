// Package backtest runs the relative-strength strategy across a basket
// of equities and compares each result against buy-and-hold.
package backtest

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/rustyeddy/relstrength/indicators"
	"github.com/rustyeddy/relstrength/ledger"
	"github.com/rustyeddy/relstrength/market"
	"github.com/rustyeddy/relstrength/strategies"
)

// Config holds the strategy parameters for one run.
type Config struct {
	// BenchmarkSymbol is the reference index whose change series drives
	// signal generation (e.g. SPY).
	BenchmarkSymbol string

	// LargeMoveThreshold is the benchmark down-move that arms the
	// signal, as a negative percent (-0.5 means "fell 0.5% or more").
	LargeMoveThreshold float64

	// ProfitTarget is the absolute currency gain over the entry value
	// that triggers the exit.
	ProfitTarget float64

	// StartingCapital is the cash available per equity.
	StartingCapital float64

	// TimeHorizon trims every series to its last N rows before
	// simulation. 0 keeps the full history.
	TimeHorizon int

	// SMAWindow adds a rolling-average overlay to the buy-and-hold
	// curve. 0 disables it.
	SMAWindow int
}

// Validate checks the parameters before a run.
func (c Config) Validate() error {
	if c.BenchmarkSymbol == "" {
		return fmt.Errorf("benchmark symbol is required")
	}
	if c.LargeMoveThreshold >= 0 {
		return fmt.Errorf("large-move threshold must be negative, got %v", c.LargeMoveThreshold)
	}
	if c.ProfitTarget <= 0 {
		return fmt.Errorf("profit target must be positive, got %v", c.ProfitTarget)
	}
	if c.StartingCapital <= 0 {
		return fmt.Errorf("starting capital must be positive, got %v", c.StartingCapital)
	}
	if c.TimeHorizon < 0 {
		return fmt.Errorf("time horizon must not be negative, got %d", c.TimeHorizon)
	}
	if c.SMAWindow < 0 {
		return fmt.Errorf("sma window must not be negative, got %d", c.SMAWindow)
	}
	return nil
}

// Runner orchestrates one backtest over a set of equity series.
type Runner struct {
	Config Config
}

// Run simulates every symbol in the set against the benchmark.
//
// The benchmark series itself goes through the same pipeline (its curve
// is trivially "benchmark vs itself"; callers usually suppress it).
// Symbols are simulated concurrently; each pipeline is independent and
// the per-symbol fold stays strictly sequential.
func (r *Runner) Run(ctx context.Context, set market.Set) (Results, error) {
	cfg := r.Config
	if err := cfg.Validate(); err != nil {
		return Results{}, err
	}

	bench, err := set.Benchmark(cfg.BenchmarkSymbol)
	if err != nil {
		return Results{}, err
	}
	if err := bench.Validate(); err != nil {
		return Results{}, fmt.Errorf("benchmark: %w", err)
	}
	bench = bench.Tail(cfg.TimeHorizon)

	// Benchmark change warnings surface on the benchmark's own result,
	// which runs through the same pipeline below.
	benchChanges, _ := indicators.Changes(bench.Bars)

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		out Results
	)

	// On cancellation stop spawning but still wait for the workers
	// already launched, so nothing appends to out after Run returns.
	var ctxErr error
	for _, sym := range set.Symbols() {
		if ctxErr = ctx.Err(); ctxErr != nil {
			break
		}

		wg.Add(1)
		go func(sym string) {
			defer wg.Done()

			res, err := r.runOne(set[sym], bench, benchChanges)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				out.Failed = append(out.Failed, Failure{Symbol: sym, Err: err})
				return
			}
			out.Results = append(out.Results, res)
		}(sym)
	}
	wg.Wait()

	if ctxErr != nil {
		return Results{}, ctxErr
	}

	sort.Slice(out.Results, func(i, j int) bool { return out.Results[i].Symbol < out.Results[j].Symbol })
	sort.Slice(out.Failed, func(i, j int) bool { return out.Failed[i].Symbol < out.Failed[j].Symbol })
	return out, nil
}

func (r *Runner) runOne(s market.Series, bench market.Series, benchChanges []market.Change) (Result, error) {
	cfg := r.Config

	if err := s.Validate(); err != nil {
		return Result{}, err
	}
	s = s.Tail(cfg.TimeHorizon)

	days, warns, err := strategies.Rows(s, bench, benchChanges, cfg.LargeMoveThreshold)
	if err != nil {
		return Result{}, err
	}

	curve, ledgerWarns, err := ledger.Run(s.Symbol, days, cfg.StartingCapital, cfg.ProfitTarget)
	if err != nil {
		return Result{}, err
	}
	warns = append(warns, ledgerWarns...)

	baseline := NewBaseline(s.Bars, cfg.StartingCapital, cfg.SMAWindow)

	res := Result{
		Symbol:   s.Symbol,
		Curve:    curve,
		Baseline: baseline,
		Warnings: warns,
	}
	res.ProfitLoss = res.FinalEquity() - baseline.Final()
	return res, nil
}
