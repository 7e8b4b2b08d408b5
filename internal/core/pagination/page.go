// Package pagination holds the skip/take window shared by every list query.
package pagination

import (
	"database/sql"
	"errors"
)

// ErrInvalidPage is returned when skip or take is negative
var ErrInvalidPage = errors.New("invalid page: skip and take must not be negative")

// Page selects a window of an ordered result set.
// Zero means "no limit" for both fields.
type Page struct {
	Skip int `json:"skip"`
	Take int `json:"take"`
}

// All is the page that returns every row
var All = Page{}

// New builds a page from take/skip in the argument order the services expose
func New(take, skip int) Page {
	return Page{Skip: skip, Take: take}
}

// Validate rejects negative bounds
func (p Page) Validate() error {
	if p.Skip < 0 || p.Take < 0 {
		return ErrInvalidPage
	}
	return nil
}

// Limit returns the SQL LIMIT argument. NULL means LIMIT ALL in PostgreSQL.
func (p Page) Limit() sql.NullInt64 {
	if p.Take <= 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(p.Take), Valid: true}
}

// Offset returns the SQL OFFSET argument
func (p Page) Offset() int {
	if p.Skip < 0 {
		return 0
	}
	return p.Skip
}

// Apply cuts the window out of an already ordered slice
func Apply[T any](items []T, p Page) []T {
	start := p.Offset()
	if start >= len(items) {
		return items[:0]
	}
	items = items[start:]

	if p.Take > 0 && p.Take < len(items) {
		items = items[:p.Take]
	}
	return items
}
