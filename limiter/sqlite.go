package limiter

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/uniquetopup/ff_info_bot/clock"
	"github.com/uniquetopup/ff_info_bot/logger"
)

var _ Limiter = (*SQLite)(nil)

// memoryDSN keeps the limiter table in memory only; cooldowns are not
// meant to survive a restart.
const memoryDSN = "file:ff_rate_limits?mode=memory&cache=shared&_busy_timeout=5000"

const migration = `
CREATE TABLE IF NOT EXISTS invocations (
	user_id TEXT PRIMARY KEY,
	last_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_invocations_last_at ON invocations(last_at);
`

// SQLite is a fixed-window limiter backed by an in-memory SQLite
// database. The connection pool is pinned to one connection, making
// the database a single-threaded state owner: check-and-set for a
// user cannot interleave with another check for the same user.
type SQLite struct {
	db       *sql.DB
	window   time.Duration
	maxUsers int
	clock    clock.Clock
	logger   logger.Logger
}

type SQLiteParams struct {
	Window   time.Duration
	MaxUsers int
	Clock    clock.Clock
	Logger   logger.Logger
}

func NewSQLite(p SQLiteParams) *SQLite {
	window := p.Window
	if window <= 0 {
		window = 10 * time.Second
	}
	maxUsers := p.MaxUsers
	if maxUsers <= 0 {
		maxUsers = 1024
	}
	clk := p.Clock
	if clk == nil {
		clk = clock.System()
	}
	log := p.Logger
	if log == nil {
		log = logger.NewNop()
	}
	return &SQLite{
		window:   window,
		maxUsers: maxUsers,
		clock:    clk,
		logger:   log,
	}
}

func (s *SQLite) Open(ctx context.Context) error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite3", memoryDSN)
	if err != nil {
		return err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}

	if _, err = db.ExecContext(ctx, migration); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

func (s *SQLite) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLite) Check(ctx context.Context, userID string) (Decision, error) {
	if s.db == nil {
		return Allowed, errors.New("limiter is not open")
	}

	now := s.clock.Now().UnixNano()
	cutoff := now - s.window.Nanoseconds()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Allowed, err
	}
	defer func() { _ = tx.Rollback() }()

	var lastAt int64
	err = tx.QueryRowContext(ctx,
		`SELECT last_at FROM invocations WHERE user_id = ?`, userID).Scan(&lastAt)
	switch {
	case err == nil:
		if lastAt > cutoff {
			return Throttled, nil
		}
	case errors.Is(err, sql.ErrNoRows):
		// first invocation for this user
	default:
		return Allowed, err
	}

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO invocations (user_id, last_at) VALUES (?, ?)
		ON CONFLICT(user_id) DO UPDATE SET last_at = excluded.last_at`,
		userID, now); err != nil {
		return Allowed, err
	}

	// Bound the table: keep the most recently seen users only.
	if _, err = tx.ExecContext(ctx, `
		DELETE FROM invocations WHERE user_id NOT IN (
			SELECT user_id FROM invocations ORDER BY last_at DESC LIMIT ?
		)`, s.maxUsers); err != nil {
		return Allowed, err
	}

	if err = tx.Commit(); err != nil {
		return Allowed, err
	}

	return Allowed, nil
}
