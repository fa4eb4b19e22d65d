package strategies

import (
	"github.com/rustyeddy/relstrength/indicators"
	"github.com/rustyeddy/relstrength/market"
)

// RelativeStrength reports whether an equity held up while the benchmark
// sold off: the benchmark's change is at or below threshold (a negative
// percent, e.g. -0.5) and the equity's change is at or above zero.
//
// An undefined change on either side never signals. Pure and stateless,
// evaluated per row with no memory of prior days.
func RelativeStrength(bench, equity market.Change, threshold float64) bool {
	if !bench.Valid || !equity.Valid {
		return false
	}
	return bench.Pct <= threshold && equity.Pct >= 0
}

// BuildRows joins an equity's bars and changes against the benchmark's
// changes by calendar date and evaluates the signal for every day.
//
// Every equity date must have a matching benchmark date; a gap is a data
// error, not a silent skip.
func BuildRows(equity market.Series, changes []market.Change, bench market.Series, benchChanges []market.Change, threshold float64) ([]market.SignalRow, error) {
	byDate := make(map[string]market.Change, len(bench.Bars))
	for i, b := range bench.Bars {
		byDate[market.DateKey(b.Date)] = benchChanges[i]
	}

	rows := make([]market.SignalRow, len(equity.Bars))
	for i, b := range equity.Bars {
		bc, ok := byDate[market.DateKey(b.Date)]
		if !ok {
			return nil, &market.AlignmentError{Symbol: equity.Symbol, Date: b.Date}
		}
		rows[i] = market.SignalRow{
			Bar:         b,
			Change:      changes[i],
			BenchChange: bc,
			Signal:      RelativeStrength(bc, changes[i], threshold),
		}
	}
	return rows, nil
}

// Rows computes an equity's changes and joins them against a prepared
// benchmark, returning the full signal-row sequence plus any
// change-calculation warnings.
func Rows(equity market.Series, bench market.Series, benchChanges []market.Change, threshold float64) ([]market.SignalRow, []market.Warning, error) {
	changes, warns := indicators.Changes(equity.Bars)
	rows, err := BuildRows(equity, changes, bench, benchChanges, threshold)
	if err != nil {
		return nil, nil, err
	}
	return rows, warns, nil
}
