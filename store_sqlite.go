package tracker

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// Keys of the two collections in the key-value table.
const (
	keyInvestments = "investments"
	keyRecords     = "investmentData"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// SQLiteStore keeps the snapshot as two JSON documents in a key-value table.
type SQLiteStore struct {
	db  *sql.DB
	log zerolog.Logger
}

// OpenSQLiteStore opens (and creates if needed) the database file at path.
func OpenSQLiteStore(path string, log zerolog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store %q: %w", path, err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init sqlite store %q: %w", path, err)
	}
	log.Debug().Str("path", path).Msg("sqlite store opened")
	return &SQLiteStore{db: db, log: log}, nil
}

// get unmarshals the value stored under key into v. Missing keys leave v untouched.
func (s *SQLiteStore) get(key string, v any) error {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load error: key %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("load error: key %q: not a correct json: %w", key, err)
	}
	return nil
}

// Load reads both collections.
func (s *SQLiteStore) Load() (Snapshot, error) {
	var snap Snapshot
	if err := s.get(keyInvestments, &snap.Investments); err != nil {
		return Snapshot{}, err
	}
	if err := s.get(keyRecords, &snap.Records); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// Save replaces both collections in a single transaction.
func (s *SQLiteStore) Save(snap Snapshot) error {
	sorted, err := sortRecords(snap.Records, false)
	if err != nil {
		return fmt.Errorf("persist error: %w", err)
	}
	records := make([]Record, 0, len(sorted))
	for _, r := range sorted {
		records = append(records, r.Record)
	}
	investments := snap.Investments
	if investments == nil {
		investments = []Investment{}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("persist error: %w", err)
	}
	defer tx.Rollback()

	for key, v := range map[string]any{keyInvestments: investments, keyRecords: records} {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("persist error: key %q: %w", key, err)
		}
		_, err = tx.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, string(data))
		if err != nil {
			return fmt.Errorf("persist error: key %q: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("persist error: %w", err)
	}
	s.log.Debug().Int("investments", len(investments)).Int("records", len(records)).Msg("snapshot saved")
	return nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error { return s.db.Close() }
