package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRun(id string) RunRecord {
	return RunRecord{
		RunID:           id,
		Created:         time.Date(2026, 3, 6, 17, 0, 0, 0, time.UTC),
		Benchmark:       "SPY",
		LargeMove:       -0.5,
		ProfitTarget:    1000,
		StartingCapital: 5000,
		TimeHorizon:     200,
		SMAWindow:       10,
		Symbols:         13,
		Failed:          1,
	}
}

func TestSQLiteJournal_RoundTrip(t *testing.T) {
	t.Parallel()

	j, err := NewSQLite(filepath.Join(t.TempDir(), "runs.sqlite"))
	require.NoError(t, err)
	defer j.Close()

	run := testRun("01RUN")
	require.NoError(t, j.RecordRun(run))

	got, err := j.GetRun("01RUN")
	require.NoError(t, err)
	assert.Equal(t, run.Benchmark, got.Benchmark)
	assert.Equal(t, run.LargeMove, got.LargeMove)
	assert.Equal(t, run.Symbols, got.Symbols)
	assert.Equal(t, run.Failed, got.Failed)

	_, err = j.GetRun("missing")
	assert.Error(t, err)
}

func TestSQLiteJournal_Results(t *testing.T) {
	t.Parallel()

	j, err := NewSQLite(filepath.Join(t.TempDir(), "runs.sqlite"))
	require.NoError(t, err)
	defer j.Close()

	require.NoError(t, j.RecordRun(testRun("01RUN")))

	recs := []ResultRecord{
		{RunID: "01RUN", Symbol: "MSFT", FinalEquity: 5100, FinalBuyHold: 5000, ProfitLoss: 100},
		{RunID: "01RUN", Symbol: "AMD", FinalEquity: 5250, FinalBuyHold: 4800, ProfitLoss: 450, Warnings: 1},
	}
	for _, r := range recs {
		require.NoError(t, j.RecordResult(r))
	}

	got, err := j.ListResults("01RUN")
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Ordered by symbol.
	assert.Equal(t, "AMD", got[0].Symbol)
	assert.Equal(t, 450.0, got[0].ProfitLoss)
	assert.Equal(t, 1, got[0].Warnings)
	assert.Equal(t, "MSFT", got[1].Symbol)

	empty, err := j.ListResults("other")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSQLiteJournal_Curves(t *testing.T) {
	t.Parallel()

	j, err := NewSQLite(filepath.Join(t.TempDir(), "runs.sqlite"))
	require.NoError(t, err)
	defer j.Close()

	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	rows := []CurveRow{
		{RunID: "01RUN", Symbol: "AMD", Date: start, Action: "NONE", Cash: 1000, TotalEquity: 1000, BuyAndHold: 1000},
		{RunID: "01RUN", Symbol: "AMD", Date: start.AddDate(0, 0, 1), Action: "BUY", Quantity: 10, PositionValue: 950, Cash: 50, TotalEquity: 1000, BuyAndHold: 950},
	}
	for _, c := range rows {
		require.NoError(t, j.RecordCurve(c))
	}

	got, err := j.ListCurve("01RUN", "AMD")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "NONE", got[0].Action)
	assert.Equal(t, "BUY", got[1].Action)
	assert.Equal(t, int64(10), got[1].Quantity)
	assert.Equal(t, 950.0, got[1].PositionValue)
	assert.True(t, got[1].Date.After(got[0].Date))
}
