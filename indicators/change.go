package indicators

import "github.com/rustyeddy/relstrength/market"

// Changes computes the day-over-day percentage change of closing prices.
//
// The result has one entry per bar. Index 0 is always invalid (no prior
// day). A zero previous close makes that day's change invalid as well and
// is reported as a warning rather than an error; the simulation treats
// such a day as "no signal" and carries on.
func Changes(bars []market.Bar) ([]market.Change, []market.Warning) {
	out := make([]market.Change, len(bars))
	var warns []market.Warning

	for i := 1; i < len(bars); i++ {
		prev := bars[i-1].Close
		if prev == 0 {
			warns = append(warns, market.Warning{
				Kind: market.WarnUndefinedChange,
				Date: bars[i].Date,
			})
			continue
		}
		out[i] = market.Change{
			Pct:   (bars[i].Close - prev) / prev * 100,
			Valid: true,
		}
	}
	return out, warns
}
