package cli

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/relstrength/backtest"
	"github.com/rustyeddy/relstrength/config"
	"github.com/rustyeddy/relstrength/internal/id"
	"github.com/rustyeddy/relstrength/journal"
	"github.com/rustyeddy/relstrength/market"
)

func newBacktestCmd(rc *RootConfig) *cobra.Command {
	var (
		benchmark    string
		largeMove    float64
		profitTarget float64
		capital      float64
		horizon      int
		smaWindow    int
		orgPath      string
	)

	cmd := &cobra.Command{
		Use:   "backtest",
		Short: "Run the relative-strength strategy over a basket of equities",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rc)
			if err != nil {
				return err
			}

			// Flags override the config file when set.
			flags := cmd.Flags()
			if flags.Changed("benchmark") {
				cfg.Strategy.Benchmark = benchmark
			}
			if flags.Changed("large-move") {
				cfg.Strategy.LargeMove = largeMove
			}
			if flags.Changed("profit-target") {
				cfg.Strategy.ProfitTarget = profitTarget
			}
			if flags.Changed("capital") {
				cfg.Strategy.StartingCapital = capital
			}
			if flags.Changed("horizon") {
				cfg.Data.TimeHorizon = horizon
			}
			if flags.Changed("sma") {
				cfg.Strategy.SMAWindow = smaWindow
			}
			if rc.DataDir != "" {
				cfg.Data.Dir = rc.DataDir
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			set, err := market.LoadDir(cfg.Data.Dir)
			if err != nil {
				return err
			}

			runner := &backtest.Runner{
				Config: backtest.Config{
					BenchmarkSymbol:    cfg.Strategy.Benchmark,
					LargeMoveThreshold: cfg.Strategy.LargeMove,
					ProfitTarget:       cfg.Strategy.ProfitTarget,
					StartingCapital:    cfg.Strategy.StartingCapital,
					TimeHorizon:        cfg.Data.TimeHorizon,
					SMAWindow:          cfg.Strategy.SMAWindow,
				},
			}

			res, err := runner.Run(context.Background(), set)
			if err != nil {
				return err
			}

			runID := id.New()
			printResults(runID, res)

			if err := record(cfg, runID, runner.Config, res, orgPath); err != nil {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&benchmark, "benchmark", "SPY", "Benchmark symbol")
	cmd.Flags().Float64Var(&largeMove, "large-move", -0.5, "Benchmark large down move in percent (negative)")
	cmd.Flags().Float64Var(&profitTarget, "profit-target", 1000, "Absolute profit amount triggering the exit")
	cmd.Flags().Float64Var(&capital, "capital", 5000, "Starting capital per equity")
	cmd.Flags().IntVar(&horizon, "horizon", 200, "Trading days of history to use (0 = all)")
	cmd.Flags().IntVar(&smaWindow, "sma", 10, "Buy-and-hold SMA overlay window (0 disables)")
	cmd.Flags().StringVar(&orgPath, "org", "", "Write an org-mode run report to this path")

	return cmd
}

func loadConfig(rc *RootConfig) (*config.Config, error) {
	if rc.ConfigPath == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(rc.ConfigPath)
}

func printResults(runID string, res backtest.Results) {
	fmt.Printf("run %s\n", runID)
	for _, r := range res.Results {
		fmt.Printf("%-6s final=%.2f buy-hold=%.2f pnl=%+.2f\n",
			r.Symbol, r.FinalEquity(), r.Baseline.Final(), r.ProfitLoss)
		for _, w := range r.Warnings {
			log.Printf("warning: %s: %s", r.Symbol, w)
		}
	}
	for _, f := range res.Failed {
		log.Printf("failed: %s: %v", f.Symbol, f.Err)
	}
}

// record persists the run according to the journal config and optionally
// writes the org report.
func record(cfg *config.Config, runID string, bc backtest.Config, res backtest.Results, orgPath string) error {
	run := journal.RunRecord{
		RunID:           runID,
		Created:         time.Now(),
		Benchmark:       bc.BenchmarkSymbol,
		LargeMove:       bc.LargeMoveThreshold,
		ProfitTarget:    bc.ProfitTarget,
		StartingCapital: bc.StartingCapital,
		TimeHorizon:     bc.TimeHorizon,
		SMAWindow:       bc.SMAWindow,
		Symbols:         len(res.Results) + len(res.Failed),
		Failed:          len(res.Failed),
	}

	j, err := openJournal(cfg)
	if err != nil {
		return err
	}

	if j != nil {
		defer j.Close()
		if err := writeJournal(j, run, res); err != nil {
			return err
		}
	}

	if orgPath != "" {
		report := &journal.RunReport{Run: run, OrgPath: orgPath}
		for _, r := range res.Results {
			report.Results = append(report.Results, resultRecord(runID, r))
		}
		for _, f := range res.Failed {
			report.Failures = append(report.Failures, fmt.Sprintf("%s: %v", f.Symbol, f.Err))
		}
		if err := report.WriteOrg(); err != nil {
			return err
		}
	}
	return nil
}

func openJournal(cfg *config.Config) (journal.Journal, error) {
	switch cfg.Journal.Type {
	case "sqlite":
		return journal.NewSQLite(cfg.Journal.DBPath)
	case "csv":
		return journal.NewCSV(cfg.Journal.ResultsFile, cfg.Journal.CurvesFile)
	default:
		return nil, nil
	}
}

func writeJournal(j journal.Journal, run journal.RunRecord, res backtest.Results) error {
	if err := j.RecordRun(run); err != nil {
		return err
	}
	for _, r := range res.Results {
		if err := j.RecordResult(resultRecord(run.RunID, r)); err != nil {
			return err
		}
		for i, row := range r.Curve {
			if err := j.RecordCurve(journal.CurveRow{
				RunID:         run.RunID,
				Symbol:        r.Symbol,
				Date:          row.Date,
				Action:        string(row.Action),
				Quantity:      row.Quantity,
				PositionValue: row.PositionValue,
				Cash:          row.Cash,
				TotalEquity:   row.TotalEquity,
				BuyAndHold:    r.Baseline.Values[i],
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

func resultRecord(runID string, r backtest.Result) journal.ResultRecord {
	return journal.ResultRecord{
		RunID:        runID,
		Symbol:       r.Symbol,
		FinalEquity:  r.FinalEquity(),
		FinalBuyHold: r.Baseline.Final(),
		ProfitLoss:   r.ProfitLoss,
		Warnings:     len(r.Warnings),
	}
}
