package backtest

import (
	"github.com/rustyeddy/relstrength/ledger"
	"github.com/rustyeddy/relstrength/market"
)

// Result is the full outcome of running the strategy over one equity.
// Immutable once returned.
type Result struct {
	Symbol string

	// Curve is the strategy equity curve, one row per trading day.
	Curve []ledger.Row

	// Baseline is the buy-and-hold reference over the same days.
	Baseline Baseline

	// ProfitLoss is the final strategy total equity minus the final
	// buy-and-hold equity.
	ProfitLoss float64

	// Warnings collects the non-fatal conditions hit during the run.
	Warnings []market.Warning
}

// FinalEquity returns the strategy's total equity on the last day.
func (r Result) FinalEquity() float64 {
	if len(r.Curve) == 0 {
		return 0
	}
	return r.Curve[len(r.Curve)-1].TotalEquity
}

// Failure records a symbol whose simulation aborted.
type Failure struct {
	Symbol string
	Err    error
}

// Results aggregates one orchestrator invocation. One bad equity never
// aborts the batch: failed symbols are reported separately, sorted by
// symbol like the successes.
type Results struct {
	Results []Result
	Failed  []Failure
}
