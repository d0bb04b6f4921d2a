package snapshot

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/verdantworks/idlefarm/internal/domain"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// SQLiteStore keeps the snapshot in a single-row SQLite table. WAL mode is
// enabled so the periodic save never blocks a concurrent load.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at path and runs
// pending migrations.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create snapshot dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Load reads the saved state. Missing or undecodable snapshots surface as
// ErrNoSnapshot so the caller can start fresh; decodable states are
// repaired field by field before use.
func (s *SQLiteStore) Load(ctx context.Context) (*domain.FarmState, error) {
	var payload []byte
	row := s.db.QueryRowContext(ctx, `SELECT payload FROM snapshots WHERE id = 1`)
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var state domain.FarmState
	if err := json.Unmarshal(payload, &state); err != nil {
		return nil, fmt.Errorf("%w: decode failed: %v", ErrNoSnapshot, err)
	}
	state.Repair(time.Now())
	return &state, nil
}

// Save serializes the state and upserts the single snapshot row.
func (s *SQLiteStore) Save(ctx context.Context, state *domain.FarmState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (id, payload, saved_at) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET payload = excluded.payload, saved_at = excluded.saved_at`,
		payload, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
