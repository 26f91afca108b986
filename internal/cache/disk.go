package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite" // Pure-Go SQLite driver
)

const schema = `
	CREATE TABLE IF NOT EXISTS responses (
		key        TEXT PRIMARY KEY,
		body       BLOB NOT NULL,
		stored_at  INTEGER NOT NULL,
		expires_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_responses_expires ON responses(expires_at);
`

// Disk is a SQLite-backed response cache.
type Disk struct {
	db     *sql.DB
	ttl    time.Duration
	now    func() time.Time
	logger *log.Logger
}

// OpenDisk opens (creating if needed) the cache database at path.
func OpenDisk(path string, ttl time.Duration, logger *log.Logger) (*Disk, error) {
	if path == "" {
		return nil, errors.New("cache path is empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("cache ttl must be positive, got %s", ttl)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect cache: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate cache: %w", err)
	}

	return &Disk{db: db, ttl: ttl, now: time.Now, logger: logger}, nil
}

// Get returns the unexpired body stored under key.
func (d *Disk) Get(key string) ([]byte, bool) {
	if d == nil {
		return nil, false
	}
	var body []byte
	err := d.db.QueryRow(
		`SELECT body FROM responses WHERE key = ? AND expires_at > ?`,
		key, d.now().Unix(),
	).Scan(&body)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			d.logger.Warn("cache read failed", "key", key, "err", err)
		}
		return nil, false
	}
	return body, true
}

// Put stores body under key, replacing any previous entry.
func (d *Disk) Put(key string, body []byte) {
	if d == nil {
		return
	}
	now := d.now()
	_, err := d.db.Exec(
		`INSERT OR REPLACE INTO responses (key, body, stored_at, expires_at) VALUES (?, ?, ?, ?)`,
		key, body, now.Unix(), now.Add(d.ttl).Unix(),
	)
	if err != nil {
		d.logger.Warn("cache write failed", "key", key, "err", err)
	}
}

// Purge deletes expired entries, or every entry when all is set, and returns
// how many rows went away.
func (d *Disk) Purge(ctx context.Context, all bool) (int64, error) {
	var (
		res sql.Result
		err error
	)
	if all {
		res, err = d.db.ExecContext(ctx, `DELETE FROM responses`)
	} else {
		res, err = d.db.ExecContext(ctx, `DELETE FROM responses WHERE expires_at <= ?`, d.now().Unix())
	}
	if err != nil {
		return 0, fmt.Errorf("purge cache: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count purged rows: %w", err)
	}
	return n, nil
}

// Len returns the number of stored entries, expired ones included.
func (d *Disk) Len(ctx context.Context) (int, error) {
	var n int
	if err := d.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM responses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count cache: %w", err)
	}
	return n, nil
}

// Close releases the database handle.
func (d *Disk) Close() error {
	if d == nil || d.db == nil {
		return nil
	}
	return d.db.Close()
}
