package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"Postagram/internal/db/migrations"

	"github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

// PostgreSQL error codes the repositories translate into domain errors
const (
	uniqueViolation = "23505"
	checkViolation  = "23514"
)

// Open connects to PostgreSQL and verifies the connection
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Migrate applies every pending migration embedded in the migrations package
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// constraintViolation returns the violated constraint's name when err is a
// PostgreSQL error with the given code
func constraintViolation(err error, code string) (string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == code {
		return pqErr.Constraint, true
	}
	return "", false
}

type scanner interface {
	Scan(dest ...any) error
}

// queryList runs a query and scans every row, returning an empty (non-nil) slice for no rows
func queryList[T any](ctx context.Context, db *sql.DB, scan func(scanner) (*T, error), query string, args ...any) ([]*T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	list := make([]*T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// nullable stores an empty id as NULL
func nullable(id string) sql.NullString {
	return sql.NullString{String: id, Valid: id != ""}
}

// Truncate empties every table and restarts insertion order. It backs the
// Clear used by tests and by the seed tool's reset flag.
func Truncate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `TRUNCATE reactions, comments, posts, images, users RESTART IDENTITY`)
	if err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}
	return nil
}
