package backtest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/relstrength/market"
)

func barsFromCloses(closes ...float64) []market.Bar {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	out := make([]market.Bar, len(closes))
	for i, c := range closes {
		out[i] = market.Bar{Date: start.AddDate(0, 0, i), Close: c}
	}
	return out
}

func TestNewBaseline(t *testing.T) {
	t.Parallel()

	b := NewBaseline(barsFromCloses(100, 100, 90, 95, 120), 1000, 0)

	assert.Equal(t, int64(10), b.Quantity)
	assert.Equal(t, []float64{1000, 1000, 900, 950, 1200}, b.Values)
	assert.Nil(t, b.SMA)
	assert.Equal(t, 1200.0, b.Final())
}

func TestNewBaseline_SMAOverlay(t *testing.T) {
	t.Parallel()

	b := NewBaseline(barsFromCloses(10, 20, 30, 40), 100, 2)

	assert.Equal(t, int64(10), b.Quantity)
	require.Len(t, b.SMA, 4)

	// Rolling mean of closes scaled by the buy-and-hold quantity, with
	// the first value back-filled.
	assert.InDelta(t, 150.0, b.SMA[0], 1e-9)
	assert.InDelta(t, 150.0, b.SMA[1], 1e-9)
	assert.InDelta(t, 250.0, b.SMA[2], 1e-9)
	assert.InDelta(t, 350.0, b.SMA[3], 1e-9)
}

func TestNewBaseline_ShortSeriesSkipsOverlay(t *testing.T) {
	t.Parallel()

	b := NewBaseline(barsFromCloses(10, 20), 100, 5)
	assert.Nil(t, b.SMA)
	assert.Len(t, b.Values, 2)
}

func TestNewBaseline_Degenerate(t *testing.T) {
	t.Parallel()

	// Capital below one share: curve is flat zero.
	b := NewBaseline(barsFromCloses(100, 110), 5, 0)
	assert.Equal(t, int64(0), b.Quantity)
	assert.Equal(t, []float64{0, 0}, b.Values)

	// Empty bars
	b = NewBaseline(nil, 1000, 0)
	assert.Equal(t, 0.0, b.Final())
}
