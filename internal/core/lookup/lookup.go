// Package lookup resolves references between entities.
package lookup

import (
	"context"
	"errors"
)

// Exists calls get and reports whether id names a record. notFound is the
// entity's not-found sentinel; any other error is returned as is.
func Exists[T any](ctx context.Context, get func(context.Context, string) (*T, error), id string, notFound error) (bool, error) {
	_, err := get(ctx, id)
	if errors.Is(err, notFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
