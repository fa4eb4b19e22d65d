// Package journal persists backtest runs: parameters, per-symbol
// outcomes and full equity curves.
package journal

import "time"

// RunRecord mirrors the runs table: one row per orchestrator invocation.
type RunRecord struct {
	RunID   string
	Created time.Time

	Benchmark       string
	LargeMove       float64
	ProfitTarget    float64
	StartingCapital float64
	TimeHorizon     int
	SMAWindow       int

	Symbols int
	Failed  int
}

// ResultRecord mirrors the results table: final figures for one symbol.
type ResultRecord struct {
	RunID        string
	Symbol       string
	FinalEquity  float64
	FinalBuyHold float64
	ProfitLoss   float64
	Warnings     int
}

// CurveRow mirrors the curves table: one simulated day of one symbol.
type CurveRow struct {
	RunID         string
	Symbol        string
	Date          time.Time
	Action        string
	Quantity      int64
	PositionValue float64
	Cash          float64
	TotalEquity   float64
	BuyAndHold    float64
}

type Journal interface {
	RecordRun(RunRecord) error
	RecordResult(ResultRecord) error
	RecordCurve(CurveRow) error
	Close() error
}
