package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"Postagram/internal/core/pagination"
	"Postagram/internal/core/users"
	"Postagram/internal/db"
)

const userColumns = `id, username, email, full_name, password_hash, created_at, updated_at`

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.Repository {
	return &postgresUserRepo{db: db}
}

// Create inserts a new user into the users table
func (r *postgresUserRepo) Create(ctx context.Context, input users.NewUser) (*users.User, error) {
	now := db.Now()
	query := `
		INSERT INTO users (id, username, email, full_name, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRowContext(ctx, query,
		db.NewID(), input.Username, input.Email, input.FullName, input.PasswordHash, now))
	if err != nil {
		if constraint, ok := constraintViolation(err, uniqueViolation); ok {
			switch constraint {
			case "users_username_key":
				return nil, users.ErrUsernameTaken
			case "users_email_key":
				return nil, users.ErrEmailTaken
			}
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by id
func (r *postgresUserRepo) GetByID(ctx context.Context, id string) (*users.User, error) {
	if !db.IsID(id) {
		return nil, users.ErrNotFound
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, users.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// List returns users in creation order. Empty filter fields match every row.
func (r *postgresUserRepo) List(ctx context.Context, filter users.ListFilter, page pagination.Page) ([]*users.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE ($1::text = '' OR username = $1::text)
		  AND ($2::text = '' OR email = $2::text)
		ORDER BY seq
		LIMIT $3 OFFSET $4`

	list, err := queryList(ctx, r.db, scanUser, query, filter.Username, filter.Email, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return list, nil
}

// Delete hard-deletes a user
func (r *postgresUserRepo) Delete(ctx context.Context, id string) error {
	if !db.IsID(id) {
		return users.ErrNotFound
	}
	return deleteByID(ctx, r.db, "users", id, users.ErrNotFound)
}

func scanUser(row scanner) (*users.User, error) {
	var u users.User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.FullName, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return &u, nil
}

// deleteByID removes one row from table and returns notFound when nothing matched.
// table is always a constant from this package.
func deleteByID(ctx context.Context, conn *sql.DB, table, id string, notFound error) error {
	res, err := conn.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
