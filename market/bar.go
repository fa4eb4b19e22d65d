package market

import "time"

// Bar is one daily OHLC row for a single equity.
type Bar struct {
	Date  time.Time
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// Change is a day-over-day percentage move (a percent, not a fraction).
// Valid is false on the first row of a series and on any row whose
// previous close was zero.
type Change struct {
	Pct   float64
	Valid bool
}

// SignalRow is a bar joined with its benchmark context for the same date.
type SignalRow struct {
	Bar         Bar
	Change      Change
	BenchChange Change
	Signal      bool
}

// DateKey is the canonical map key for joining series by calendar date.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
