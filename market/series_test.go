package market

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeries(symbol string, n int) Series {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	s := Series{Symbol: symbol}
	for i := 0; i < n; i++ {
		s.Bars = append(s.Bars, Bar{Date: start.AddDate(0, 0, i), Close: 100 + float64(i)})
	}
	return s
}

func TestSeries_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, testSeries("AMD", 5).Validate())
	})

	t.Run("single bar", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, testSeries("AMD", 1).Validate())
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		err := Series{Symbol: "AMD"}.Validate()
		require.Error(t, err)

		var empty *EmptySeriesError
		require.ErrorAs(t, err, &empty)
		assert.Equal(t, "AMD", empty.Symbol)
	})

	t.Run("duplicate date", func(t *testing.T) {
		t.Parallel()

		s := testSeries("AMD", 3)
		s.Bars[2].Date = s.Bars[1].Date
		assert.Error(t, s.Validate())
	})

	t.Run("out of order", func(t *testing.T) {
		t.Parallel()

		s := testSeries("AMD", 3)
		s.Bars[1], s.Bars[2] = s.Bars[2], s.Bars[1]
		assert.Error(t, s.Validate())
	})
}

func TestSeries_Tail(t *testing.T) {
	t.Parallel()

	s := testSeries("AMD", 10)

	tail := s.Tail(3)
	require.Len(t, tail.Bars, 3)
	assert.Equal(t, s.Bars[7], tail.Bars[0])
	assert.Equal(t, "AMD", tail.Symbol)

	assert.Len(t, s.Tail(0).Bars, 10)
	assert.Len(t, s.Tail(-1).Bars, 10)
	assert.Len(t, s.Tail(100).Bars, 10)
}

func TestNewSet(t *testing.T) {
	t.Parallel()

	set, err := NewSet([]Series{testSeries("SPY", 3), testSeries("AMD", 3)})
	require.NoError(t, err)
	assert.Len(t, set, 2)

	_, err = NewSet([]Series{testSeries("AMD", 3), testSeries("AMD", 5)})
	assert.Error(t, err)
}

func TestSet_Benchmark(t *testing.T) {
	t.Parallel()

	set, err := NewSet([]Series{testSeries("SPY", 3), testSeries("AMD", 3)})
	require.NoError(t, err)

	b, err := set.Benchmark("SPY")
	require.NoError(t, err)
	assert.Equal(t, "SPY", b.Symbol)

	_, err = set.Benchmark("QQQ")
	assert.Error(t, err)
}
