package pinstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"retitle/internal/showmatch"
)

const (
	sqliteBusyCode          = 5
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond
)

const schema = `
CREATE TABLE IF NOT EXISTS pins (
    query        TEXT PRIMARY KEY,
    candidate_id TEXT NOT NULL,
    created_at   TEXT NOT NULL,
    updated_at   TEXT NOT NULL
)`

// Entry is one persisted pin.
type Entry struct {
	Query       string
	CandidateID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Store is the SQLite-backed pin database. It implements
// showmatch.PinStore.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open connects to (or creates) the pin database at path and takes the
// process lock. It fails when another process already holds the lock.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("pin store path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure pin store directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire pin store lock: %w", err)
	}
	if !ok {
		return nil, errors.New("pin store is locked by another process")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open pin db: %w", err)
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, fmt.Errorf("init pin schema: %w", err)
	}

	return &Store{db: db, path: path, lock: lock}, nil
}

// Close releases the database and the process lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var dbErr error
	if s.db != nil {
		dbErr = s.db.Close()
		s.db = nil
	}
	if s.lock != nil {
		if err := s.lock.Unlock(); err != nil && dbErr == nil {
			dbErr = err
		}
		s.lock = nil
	}
	return dbErr
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Pin returns the pinned candidate id for query, if one exists.
func (s *Store) Pin(ctx context.Context, query string) (string, bool, error) {
	key := pinKey(query)
	if key == "" {
		return "", false, nil
	}
	ctx = ensureContext(ctx)

	var id string
	err := retryOnBusy(ctx, func() error {
		return s.db.QueryRowContext(ctx,
			`SELECT candidate_id FROM pins WHERE query = ?`, key).Scan(&id)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("lookup pin: %w", err)
	}
	return id, true, nil
}

// SetPin records candidateID for query, replacing any previous pin.
func (s *Store) SetPin(ctx context.Context, query, candidateID string) error {
	key := pinKey(query)
	if key == "" {
		return errors.New("pin query cannot be empty")
	}
	candidateID = strings.TrimSpace(candidateID)
	if candidateID == "" {
		return errors.New("pin candidate id cannot be empty")
	}
	ctx = ensureContext(ctx)

	now := time.Now().UTC().Format(time.RFC3339)
	return retryOnBusy(ctx, func() error {
		_, err := s.db.ExecContext(ctx, `
INSERT INTO pins (query, candidate_id, created_at, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(query) DO UPDATE SET candidate_id = excluded.candidate_id, updated_at = excluded.updated_at`,
			key, candidateID, now, now)
		return err
	})
}

// ClearPin removes the pin for query and reports whether one existed.
func (s *Store) ClearPin(ctx context.Context, query string) (bool, error) {
	key := pinKey(query)
	if key == "" {
		return false, nil
	}
	ctx = ensureContext(ctx)

	var affected int64
	err := retryOnBusy(ctx, func() error {
		res, execErr := s.db.ExecContext(ctx, `DELETE FROM pins WHERE query = ?`, key)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		return false, fmt.Errorf("clear pin: %w", err)
	}
	return affected > 0, nil
}

// List returns every pin ordered by query.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	ctx = ensureContext(ctx)

	var entries []Entry
	err := retryOnBusy(ctx, func() error {
		rows, queryErr := s.db.QueryContext(ctx,
			`SELECT query, candidate_id, created_at, updated_at FROM pins ORDER BY query`)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()

		entries = entries[:0]
		for rows.Next() {
			var entry Entry
			var created, updated string
			if scanErr := rows.Scan(&entry.Query, &entry.CandidateID, &created, &updated); scanErr != nil {
				return scanErr
			}
			entry.CreatedAt, _ = time.Parse(time.RFC3339, created)
			entry.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
			entries = append(entries, entry)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list pins: %w", err)
	}
	return entries, nil
}

// pinKey normalizes a query so spelling variants of the same show share
// one pin.
func pinKey(query string) string {
	return showmatch.CanonicalTokens(query)
}

func ensureContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == sqliteBusyCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func retryOnBusy(ctx context.Context, op func() error) error {
	delay := busyRetryInitialBackoff
	var lastErr error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !isSQLiteBusy(lastErr) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}
	return lastErr
}
