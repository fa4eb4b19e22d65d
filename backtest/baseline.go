package backtest

import (
	"github.com/rustyeddy/relstrength/indicators"
	"github.com/rustyeddy/relstrength/market"
)

// Baseline is the buy-and-hold reference for one equity: the value of
// buying whole shares at the first close and never trading again.
type Baseline struct {
	Quantity int64
	Values   []float64 // Quantity * close, one per bar

	// SMA is the smoothed overlay (rolling average of close scaled by
	// Quantity). Nil when disabled or when the series is shorter than
	// the window.
	SMA []float64
}

// NewBaseline computes the buy-and-hold curve for the series, using the
// same whole-share floor division as the strategy ledger. A positive
// smaWindow adds the smoothed overlay.
func NewBaseline(bars []market.Bar, capital float64, smaWindow int) Baseline {
	var qty int64
	if len(bars) > 0 && bars[0].Close > 0 {
		qty = int64(capital / bars[0].Close)
	}

	b := Baseline{
		Quantity: qty,
		Values:   make([]float64, len(bars)),
	}
	for i, bar := range bars {
		b.Values[i] = float64(qty) * bar.Close
	}

	if smaWindow > 0 && len(bars) >= smaWindow {
		sma, err := indicators.SMA(bars, smaWindow)
		if err == nil {
			for i := range sma {
				sma[i] *= float64(qty)
			}
			b.SMA = sma
		}
	}
	return b
}

// Final returns the last value of the buy-and-hold curve, or 0 for an
// empty one.
func (b Baseline) Final() float64 {
	if len(b.Values) == 0 {
		return 0
	}
	return b.Values[len(b.Values)-1]
}
