// Package ledger implements the per-equity position state machine: a
// strictly sequential fold over a day-ordered signal series that tracks
// cash, shares held and cost basis, and emits one output row per day.
package ledger

import (
	"time"

	"github.com/rustyeddy/relstrength/market"
)

// Action taken on a single trading day.
type Action string

const (
	None Action = "NONE"
	Buy  Action = "BUY"
	Hold Action = "HOLD"
	Sell Action = "SELL"
)

// Status of the position.
type Status string

const (
	Out Status = "OUT"
	In  Status = "IN"
)

// State is the position carried from one day to the next. It belongs to
// exactly one equity for exactly one run.
type State struct {
	Status    Status
	Quantity  int64
	CostBasis float64 // position value recorded at entry
	Cash      float64
}

// Row is one day of simulation output. The ordered sequence of rows for
// an equity is its strategy equity curve.
type Row struct {
	Date          time.Time
	Action        Action
	Quantity      int64
	PositionValue float64
	Cash          float64
	TotalEquity   float64
}

// NewState returns the initial OUT state with starting capital rounded
// down to whole-share terms at the first close, so the strategy and the
// buy-and-hold reference compare like for like.
func NewState(capital, firstClose float64) State {
	qty := floorQty(capital, firstClose)
	return State{
		Status: Out,
		Cash:   float64(qty) * firstClose,
	}
}

// Step advances the state by one day. The decision depends only on the
// carried state and that day's own close and signal; there is no
// lookahead.
//
// The position is marked to market at every step: the HOLD/SELL test
// compares the day's quantity*close against the value recorded at entry,
// not cost per share. A BUY that affords zero whole shares still flips
// the state to IN (degenerate no-op buy, kept to match the reference
// simulation) and is reported as an InsufficientCapital warning.
func Step(s State, date time.Time, close float64, signal bool, profitTarget float64) (State, Row, *market.Warning) {
	positionValue := float64(s.Quantity) * close

	var row Row
	var warn *market.Warning

	switch {
	case s.Status == Out && !signal:
		row = Row{Date: date, Action: None, Quantity: s.Quantity, PositionValue: positionValue, Cash: s.Cash}

	case s.Status == Out && signal:
		qty := floorQty(s.Cash, close)
		if qty == 0 {
			warn = &market.Warning{Kind: market.WarnInsufficientCapital, Date: date}
		}
		positionValue = float64(qty) * close
		s.Status = In
		s.Quantity = qty
		s.CostBasis = positionValue
		s.Cash -= positionValue
		row = Row{Date: date, Action: Buy, Quantity: qty, PositionValue: positionValue, Cash: s.Cash}

	case positionValue-s.CostBasis < profitTarget: // IN, below target
		row = Row{Date: date, Action: Hold, Quantity: s.Quantity, PositionValue: positionValue, Cash: s.Cash}

	default: // IN, target reached
		s.Cash += float64(s.Quantity) * close
		s.Status = Out
		s.Quantity = 0
		s.CostBasis = 0
		positionValue = 0
		row = Row{Date: date, Action: Sell, Quantity: 0, PositionValue: 0, Cash: s.Cash}
	}

	row.TotalEquity = row.Cash + row.PositionValue
	return s, row, warn
}

// Run folds the state machine over the full day sequence, producing
// exactly one row per input day. Warnings never interrupt the fold.
func Run(symbol string, days []market.SignalRow, capital, profitTarget float64) ([]Row, []market.Warning, error) {
	if len(days) == 0 {
		return nil, nil, &market.EmptySeriesError{Symbol: symbol}
	}

	state := NewState(capital, days[0].Bar.Close)
	rows := make([]Row, 0, len(days))
	var warns []market.Warning

	for _, d := range days {
		var row Row
		var warn *market.Warning
		state, row, warn = Step(state, d.Bar.Date, d.Bar.Close, d.Signal, profitTarget)
		rows = append(rows, row)
		if warn != nil {
			warns = append(warns, *warn)
		}
	}
	return rows, warns, nil
}

// floorQty is the whole number of shares purchasable with cash at the
// given price. A non-positive price affords nothing.
func floorQty(cash, price float64) int64 {
	if price <= 0 {
		return 0
	}
	return int64(cash / price)
}
