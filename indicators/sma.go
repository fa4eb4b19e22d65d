package indicators

import (
	"fmt"

	"github.com/rustyeddy/relstrength/market"
)

// SMA returns the rolling simple moving average of closing prices over
// the given window, one value per bar.
//
// The first window-1 positions are back-filled from the first computable
// average so the output has no leading undefined values.
func SMA(bars []market.Bar, window int) ([]float64, error) {
	if window <= 0 {
		return nil, fmt.Errorf("window must be positive, got %d", window)
	}
	if len(bars) < window {
		return nil, fmt.Errorf("not enough bars: need %d, got %d", window, len(bars))
	}

	out := make([]float64, len(bars))

	sum := 0.0
	for i := 0; i < window; i++ {
		sum += bars[i].Close
	}
	out[window-1] = sum / float64(window)

	for i := window; i < len(bars); i++ {
		sum += bars[i].Close - bars[i-window].Close
		out[i] = sum / float64(window)
	}

	// Back-fill the leading positions
	for i := 0; i < window-1; i++ {
		out[i] = out[window-1]
	}
	return out, nil
}
