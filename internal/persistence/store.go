// Package persistence provides SQLite-backed storage for world snapshots and
// the event journal. Snapshots are zstd-compressed state JSON validated
// against a schema on load, so a corrupted save is rejected instead of fed to
// the engine.
package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/klauspost/compress/zstd"
	_ "modernc.org/sqlite"

	"github.com/talgya/anthill/internal/events"
	"github.com/talgya/anthill/internal/state"
)

// ErrNoSnapshot is returned by LoadLatest when the store is empty.
var ErrNoSnapshot = errors.New("no snapshot stored")

// Store wraps a SQLite connection for simulation persistence.
type Store struct {
	conn *sqlx.DB
	enc  *zstd.Encoder
	dec  *zstd.Decoder
}

// Snapshot is one stored world state.
type Snapshot struct {
	ID        string `db:"id"`
	Tick      uint64 `db:"tick"`
	Seed      uint64 `db:"seed"`
	Blob      []byte `db:"blob"`
	CreatedAt int64  `db:"created_at"`
}

// Open opens or creates the store at the given path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("init zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("init zstd decoder: %w", err)
	}

	s := &Store{conn: conn, enc: enc, dec: dec}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	s.enc.Close()
	s.dec.Close()
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id TEXT PRIMARY KEY,
		tick INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		blob BLOB NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS journal (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		tick INTEGER NOT NULL,
		type TEXT NOT NULL,
		payload TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_snapshots_tick ON snapshots(tick);
	CREATE INDEX IF NOT EXISTS idx_journal_tick ON journal(tick);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// SaveSnapshot stores the world as a compressed snapshot and returns its id.
func (s *Store) SaveSnapshot(w *state.World, seed uint64) (string, error) {
	data, err := w.ToJSON()
	if err != nil {
		return "", fmt.Errorf("encode state: %w", err)
	}

	id := uuid.NewString()
	blob := s.enc.EncodeAll(data, nil)
	_, err = s.conn.Exec(
		"INSERT INTO snapshots (id, tick, seed, blob, created_at) VALUES (?, ?, ?, ?, ?)",
		id, w.Tick, seed, blob, time.Now().Unix(),
	)
	if err != nil {
		return "", fmt.Errorf("insert snapshot: %w", err)
	}

	slog.Info("snapshot saved", "id", id, "tick", w.Tick, "bytes", len(blob))
	return id, nil
}

// LoadLatest restores the highest-tick snapshot. The decompressed JSON is
// schema-validated and integrity-checked before it is returned.
func (s *Store) LoadLatest() (*state.World, uint64, error) {
	var snap Snapshot
	err := s.conn.Get(&snap,
		"SELECT id, tick, seed, blob, created_at FROM snapshots ORDER BY tick DESC, created_at DESC LIMIT 1")
	if err != nil {
		return nil, 0, ErrNoSnapshot
	}

	data, err := s.dec.DecodeAll(snap.Blob, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("decompress snapshot %s: %w", snap.ID, err)
	}
	if err := ValidateStateJSON(data); err != nil {
		return nil, 0, fmt.Errorf("snapshot %s: %w", snap.ID, err)
	}

	w, err := state.FromJSON(data)
	if err != nil {
		return nil, 0, fmt.Errorf("decode snapshot %s: %w", snap.ID, err)
	}
	if err := w.Validate(); err != nil {
		return nil, 0, fmt.Errorf("snapshot %s: %w", snap.ID, err)
	}

	slog.Info("snapshot loaded", "id", snap.ID, "tick", w.Tick)
	return w, snap.Seed, nil
}

// AppendEvents writes one tick's event stream to the journal.
func (s *Store) AppendEvents(evs events.Stream) error {
	if len(evs) == 0 {
		return nil
	}

	tx, err := s.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, e := range evs {
		payload, err := json.Marshal(e.Payload)
		if err != nil {
			return fmt.Errorf("encode %s payload: %w", e.Kind, err)
		}
		if _, err := tx.Exec(
			"INSERT INTO journal (tick, type, payload) VALUES (?, ?, ?)",
			e.Tick, string(e.Kind), string(payload),
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// journalRow mirrors one journal record for sqlx scanning.
type journalRow struct {
	Tick    uint64 `db:"tick"`
	Type    string `db:"type"`
	Payload string `db:"payload"`
}

// RecentEvents returns the most recent N journal entries, oldest first.
func (s *Store) RecentEvents(limit int) (events.Stream, error) {
	var rows []journalRow
	err := s.conn.Select(&rows,
		"SELECT tick, type, payload FROM journal ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}

	out := make(events.Stream, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		raw := fmt.Sprintf(`{"tick":%d,"type":%q,"payload":%s}`,
			rows[i].Tick, rows[i].Type, rows[i].Payload)
		var e events.Event
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			return nil, fmt.Errorf("decode journal entry: %w", err)
		}
		out = append(out, e)
	}
	return out, nil
}

// SaveMeta stores a key-value pair.
func (s *Store) SaveMeta(key, value string) error {
	_, err := s.conn.Exec(
		"INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)", key, value)
	return err
}

// GetMeta retrieves a stored value.
func (s *Store) GetMeta(key string) (string, error) {
	var value string
	err := s.conn.Get(&value, "SELECT value FROM meta WHERE key = ?", key)
	return value, err
}
