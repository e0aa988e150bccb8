package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/hrmslite/backend/internal/config"
	"github.com/hrmslite/backend/internal/pkg/logger"
)

// SQLite wraps the database handle for the local store.
type SQLite struct {
	DB *sql.DB
}

// NewSQLite opens the SQLite database file and applies connection pragmas.
func NewSQLite(cfg *config.Config) (*SQLite, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := sql.Open("sqlite", DSN(cfg.Database.Path))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", cfg.Database.Path, err)
	}

	conn.SetMaxOpenConns(cfg.Database.MaxOpenConns)

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	return &SQLite{DB: conn}, nil
}

// DSN decorates a database path with the connection pragmas every pooled
// connection must carry. foreign_keys is per-connection in SQLite, so it
// has to ride on the DSN rather than a one-off Exec.
func DSN(path string) string {
	pragmas := "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	if strings.Contains(path, "?") {
		return path + "&" + pragmas
	}
	return path + "?" + pragmas
}

// Ping verifies the database connection is alive.
func (d *SQLite) Ping(ctx context.Context) error {
	return d.DB.PingContext(ctx)
}

// Close closes the underlying handle.
func (d *SQLite) Close() error {
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}

// TransactionFn is a function that executes within a transaction
type TransactionFn func(ctx context.Context, tx *sql.Tx) error

// WithTransaction runs a function within a transaction, rolling back on
// error or panic and committing otherwise.
func (d *SQLite) WithTransaction(ctx context.Context, fn TransactionFn) error {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
	}

	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Error().Err(rbErr).Msg("Failed to rollback transaction")
			return fmt.Errorf("error: %v, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
