package journal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReport_Render(t *testing.T) {
	t.Parallel()

	rpt := &RunReport{
		Run: testRun("01RUN"),
		Results: []ResultRecord{
			{RunID: "01RUN", Symbol: "AMD", FinalEquity: 5250, FinalBuyHold: 4800, ProfitLoss: 450, Warnings: 1},
			{RunID: "01RUN", Symbol: "MSFT", FinalEquity: 5100, FinalBuyHold: 5000, ProfitLoss: 100},
		},
		Failures: []string{"BA: empty series"},
	}

	out, err := rpt.Render()
	require.NoError(t, err)

	assert.Contains(t, out, "* BACKTEST: Relative Strength vs SPY")
	assert.Contains(t, out, ":RUN_ID:      01RUN")
	assert.Contains(t, out, ":LARGE_MOVE:  -0.50%")
	assert.Contains(t, out, "| AMD | 5250.00 | 4800.00 | 450.00 | 1 |")
	assert.Contains(t, out, "| MSFT | 5100.00 | 5000.00 | 100.00 | 0 |")
	assert.Contains(t, out, "** Failed Symbols")
	assert.Contains(t, out, "- BA: empty series")
	assert.Contains(t, out, "[2026-03-06 Fri 17:00]")
}

func TestRunReport_NoFailures(t *testing.T) {
	t.Parallel()

	rpt := &RunReport{Run: testRun("01RUN")}
	out, err := rpt.Render()
	require.NoError(t, err)
	assert.NotContains(t, out, "Failed Symbols")
}

func TestRunReport_WriteOrg(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "run.org")
	rpt := &RunReport{Run: testRun("01RUN"), OrgPath: path}
	require.NoError(t, rpt.WriteOrg())

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), ":BENCHMARK:   SPY")
}
