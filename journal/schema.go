// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	created DATETIME NOT NULL,
	benchmark TEXT NOT NULL,
	large_move REAL NOT NULL,
	profit_target REAL NOT NULL,
	starting_capital REAL NOT NULL,
	time_horizon INTEGER NOT NULL,
	sma_window INTEGER NOT NULL,
	symbols INTEGER NOT NULL,
	failed INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS results (
	run_id TEXT NOT NULL,
	symbol TEXT NOT NULL,
	final_equity REAL NOT NULL,
	final_buy_hold REAL NOT NULL,
	profit_loss REAL NOT NULL,
	warnings INTEGER NOT NULL,
	PRIMARY KEY (run_id, symbol)
);

CREATE TABLE IF NOT EXISTS curves (
	run_id TEXT NOT NULL,
	symbol TEXT NOT NULL,
	date DATETIME NOT NULL,
	action TEXT NOT NULL,
	quantity INTEGER NOT NULL,
	position_value REAL NOT NULL,
	cash REAL NOT NULL,
	total_equity REAL NOT NULL,
	buy_and_hold REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_curves_run_symbol ON curves(run_id, symbol, date);
`
