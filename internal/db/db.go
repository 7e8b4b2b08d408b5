// Package db holds what the storage backends share so that records written by
// either one look the same to callers.
package db

import (
	"time"

	"github.com/google/uuid"
)

// NewID returns a random (v4) UUID in canonical lowercase form
func NewID() string {
	return uuid.NewString()
}

// Now returns the current UTC time truncated to PostgreSQL's timestamp precision
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// IsID reports whether id is a UUID in the canonical form NewID produces.
// Anything else cannot name a stored record.
func IsID(id string) bool {
	parsed, err := uuid.Parse(id)
	return err == nil && parsed.String() == id
}
