package journal

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore keeps the journal in a single SQLite file. Trades get a
// row each; the draft and checklist blobs live in a small kv table so
// one file holds the whole journal.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) SaveTrade(t Trade) error {
	tags, err := json.Marshal(t.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO trades
		(id, date, setup_type, side, entry, stop_loss, take_profit1, take_profit2, outcome, rr_ratio, tags, created_at, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Date, t.SetupType, t.Side, t.Entry, t.StopLoss,
		t.TakeProfit1, t.TakeProfit2, string(t.Outcome), t.RRRatio,
		string(tags), t.CreatedAt, t.Notes,
	)
	return err
}

func (s *SQLiteStore) GetTrade(id string) (Trade, error) {
	row := s.db.QueryRow(`
		SELECT id, date, setup_type, side, entry, stop_loss, take_profit1, take_profit2, outcome, rr_ratio, tags, created_at, notes
		FROM trades
		WHERE id = ?`, id)

	t, err := scanTrade(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Trade{}, fmt.Errorf("trade %q not found", id)
		}
		return Trade{}, err
	}
	return t, nil
}

// ListTrades returns all trades newest first. ULIDs sort by creation
// time, so ordering by id gives insertion order.
func (s *SQLiteStore) ListTrades() ([]Trade, error) {
	rows, err := s.db.Query(`
		SELECT id, date, setup_type, side, entry, stop_loss, take_profit1, take_profit2, outcome, rr_ratio, tags, created_at, notes
		FROM trades
		ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Trade
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQLiteStore) UpdateTrade(id string, upd Update) error {
	t, err := s.GetTrade(id)
	if err != nil {
		return err
	}
	t.apply(upd)

	_, err = s.db.Exec(`
		UPDATE trades SET outcome = ?, rr_ratio = ?, notes = ?
		WHERE id = ?`,
		string(t.Outcome), t.RRRatio, t.Notes, id,
	)
	return err
}

func (s *SQLiteStore) DeleteTrade(id string) error {
	res, err := s.db.Exec(`DELETE FROM trades WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("trade %q not found", id)
	}
	return nil
}

func (s *SQLiteStore) SaveDraft(e Entry) error {
	return s.putKV(draftKey, e)
}

func (s *SQLiteStore) LoadDraft() (Entry, bool, error) {
	var e Entry
	ok, err := s.getKV(draftKey, &e)
	return e, ok, err
}

func (s *SQLiteStore) SaveChecklist(state map[string]bool) error {
	return s.putKV(checklistKey, state)
}

func (s *SQLiteStore) LoadChecklist() (map[string]bool, error) {
	state := map[string]bool{}
	if _, err := s.getKV(checklistKey, &state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) putKV(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	_, err = s.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(data),
	)
	return err
}

func (s *SQLiteStore) getKV(key string, v any) (bool, error) {
	var data string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&data)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return false, fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return true, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTrade(row scanner) (Trade, error) {
	var t Trade
	var outcome, tags string

	err := row.Scan(
		&t.ID, &t.Date, &t.SetupType, &t.Side, &t.Entry, &t.StopLoss,
		&t.TakeProfit1, &t.TakeProfit2, &outcome, &t.RRRatio,
		&tags, &t.CreatedAt, &t.Notes,
	)
	if err != nil {
		return Trade{}, err
	}

	t.Outcome = Outcome(outcome)
	if err := json.Unmarshal([]byte(tags), &t.Tags); err != nil {
		return Trade{}, fmt.Errorf("unmarshal tags for trade %s: %w", t.ID, err)
	}
	return t, nil
}
