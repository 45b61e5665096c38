package journal

const schema = `
CREATE TABLE IF NOT EXISTS trades (
	id TEXT PRIMARY KEY,
	date TEXT NOT NULL,
	setup_type TEXT NOT NULL,
	side TEXT NOT NULL,
	entry TEXT NOT NULL,
	stop_loss TEXT NOT NULL,
	take_profit1 TEXT NOT NULL,
	take_profit2 TEXT NOT NULL,
	outcome TEXT NOT NULL,
	rr_ratio REAL NOT NULL,
	tags TEXT NOT NULL,
	created_at TEXT NOT NULL,
	notes TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_outcome ON trades(outcome);
`
