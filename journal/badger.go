package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys, kept stable so existing journals survive upgrades.
const (
	tradesKey    = "historical-trades"
	draftKey     = "journal-draft"
	checklistKey = "trade-checklist"
)

// BadgerStore keeps the journal as JSON documents in an embedded
// key-value database: the full trade list under one key, the draft and
// checklist state under their own. Trade mutations are read-modify-
// write over the list, so a mutex serializes them across HTTP handlers.
type BadgerStore struct {
	db *badger.DB
	mu sync.Mutex
}

// NewBadger opens (or creates) the journal database at dir. An empty
// dir opens an in-memory database, which is handy in tests.
func NewBadger(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open journal db: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

func (s *BadgerStore) SaveTrade(t Trade) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	trades, err := s.loadTrades()
	if err != nil {
		return err
	}
	// Newest first, same as the journal form's insertion order.
	trades = append([]Trade{t}, trades...)
	return s.storeTrades(trades)
}

func (s *BadgerStore) GetTrade(id string) (Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trades, err := s.loadTrades()
	if err != nil {
		return Trade{}, err
	}
	for _, t := range trades {
		if t.ID == id {
			return t, nil
		}
	}
	return Trade{}, fmt.Errorf("trade %q not found", id)
}

func (s *BadgerStore) ListTrades() ([]Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadTrades()
}

func (s *BadgerStore) UpdateTrade(id string, upd Update) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	trades, err := s.loadTrades()
	if err != nil {
		return err
	}
	for i := range trades {
		if trades[i].ID == id {
			trades[i].apply(upd)
			return s.storeTrades(trades)
		}
	}
	return fmt.Errorf("trade %q not found", id)
}

func (s *BadgerStore) DeleteTrade(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	trades, err := s.loadTrades()
	if err != nil {
		return err
	}
	for i := range trades {
		if trades[i].ID == id {
			return s.storeTrades(append(trades[:i], trades[i+1:]...))
		}
	}
	return fmt.Errorf("trade %q not found", id)
}

func (s *BadgerStore) SaveDraft(e Entry) error {
	return s.putJSON(draftKey, e)
}

func (s *BadgerStore) LoadDraft() (Entry, bool, error) {
	var e Entry
	ok, err := s.getJSON(draftKey, &e)
	return e, ok, err
}

func (s *BadgerStore) SaveChecklist(state map[string]bool) error {
	return s.putJSON(checklistKey, state)
}

func (s *BadgerStore) LoadChecklist() (map[string]bool, error) {
	state := map[string]bool{}
	if _, err := s.getJSON(checklistKey, &state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}

func (s *BadgerStore) loadTrades() ([]Trade, error) {
	var trades []Trade
	if _, err := s.getJSON(tradesKey, &trades); err != nil {
		return nil, err
	}
	return trades, nil
}

func (s *BadgerStore) storeTrades(trades []Trade) error {
	return s.putJSON(tradesKey, trades)
}

func (s *BadgerStore) putJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

func (s *BadgerStore) getJSON(key string, v any) (bool, error) {
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(data []byte) error {
			return json.Unmarshal(data, v)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	return true, nil
}
