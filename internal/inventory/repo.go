package inventory

import (
	"context"
	"errors"
)

// ErrNotFound is returned by repositories when a line id does not exist.
var ErrNotFound = errors.New("inventory: line not found")

// Repository is the collection-level read/write contract over the line
// inventory and its named groups.
//
// Ordering invariant: List preserves insertion order; Put keeps an existing
// line's position and appends new lines at the end.
//
// Writes are atomic with respect to the collection: a Put either fully
// replaces/inserts a line or leaves the collection untouched.
type Repository interface {
	List(ctx context.Context) ([]Line, error)
	Get(ctx context.Context, id string) (Line, error)
	Put(ctx context.Context, l Line) error
	Groups(ctx context.Context) ([]Group, error)
}
