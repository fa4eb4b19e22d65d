package journal

import (
	"database/sql"
	"fmt"
)

// GetRun returns a single run record by ID.
func (j *SQLiteJournal) GetRun(runID string) (RunRecord, error) {
	var rec RunRecord

	row := j.db.QueryRow(`
		SELECT run_id, created, benchmark, large_move, profit_target, starting_capital, time_horizon, sma_window, symbols, failed
		FROM runs
		WHERE run_id = ?`, runID)

	err := row.Scan(
		&rec.RunID,
		&rec.Created,
		&rec.Benchmark,
		&rec.LargeMove,
		&rec.ProfitTarget,
		&rec.StartingCapital,
		&rec.TimeHorizon,
		&rec.SMAWindow,
		&rec.Symbols,
		&rec.Failed,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return RunRecord{}, fmt.Errorf("run %q not found", runID)
		}
		return RunRecord{}, err
	}
	return rec, nil
}

// ListResults returns the per-symbol outcomes of one run, ordered by symbol.
func (j *SQLiteJournal) ListResults(runID string) ([]ResultRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, symbol, final_equity, final_buy_hold, profit_loss, warnings
		FROM results
		WHERE run_id = ?
		ORDER BY symbol ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ResultRecord
	for rows.Next() {
		var rec ResultRecord
		if err := rows.Scan(
			&rec.RunID,
			&rec.Symbol,
			&rec.FinalEquity,
			&rec.FinalBuyHold,
			&rec.ProfitLoss,
			&rec.Warnings,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListCurve returns the full equity curve of one symbol in one run, in
// date order.
func (j *SQLiteJournal) ListCurve(runID, symbol string) ([]CurveRow, error) {
	rows, err := j.db.Query(`
		SELECT run_id, symbol, date, action, quantity, position_value, cash, total_equity, buy_and_hold
		FROM curves
		WHERE run_id = ? AND symbol = ?
		ORDER BY date ASC`, runID, symbol)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CurveRow
	for rows.Next() {
		var c CurveRow
		if err := rows.Scan(
			&c.RunID,
			&c.Symbol,
			&c.Date,
			&c.Action,
			&c.Quantity,
			&c.PositionValue,
			&c.Cash,
			&c.TotalEquity,
			&c.BuyAndHold,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
