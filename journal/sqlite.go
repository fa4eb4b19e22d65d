package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordRun(r RunRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, created, benchmark, large_move, profit_target, starting_capital, time_horizon, sma_window, symbols, failed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Created, r.Benchmark, r.LargeMove, r.ProfitTarget,
		r.StartingCapital, r.TimeHorizon, r.SMAWindow, r.Symbols, r.Failed,
	)
	return err
}

func (j *SQLiteJournal) RecordResult(r ResultRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO results
		(run_id, symbol, final_equity, final_buy_hold, profit_loss, warnings)
		VALUES (?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Symbol, r.FinalEquity, r.FinalBuyHold, r.ProfitLoss, r.Warnings,
	)
	return err
}

func (j *SQLiteJournal) RecordCurve(c CurveRow) error {
	_, err := j.db.Exec(`
		INSERT INTO curves
		(run_id, symbol, date, action, quantity, position_value, cash, total_equity, buy_and_hold)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.RunID, c.Symbol, c.Date, c.Action, c.Quantity,
		c.PositionValue, c.Cash, c.TotalEquity, c.BuyAndHold,
	)
	return err
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
