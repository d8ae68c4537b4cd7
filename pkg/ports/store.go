package ports

import (
	"context"
	"errors"
)

// ErrValueNotFound is returned by a ValueStore when a key has no stored value.
var ErrValueNotFound = errors.New("value not found")

// ErrStoreUnavailable wraps backend failures met while persisting a value.
var ErrStoreUnavailable = errors.New("store unavailable")

// ValueStore persists the textual values of bound properties, keyed by full path.
type ValueStore interface {
	// Load returns the stored value, or ErrValueNotFound.
	Load(ctx context.Context, key string) (string, error)

	// Save stores the value for key.
	Save(ctx context.Context, key, value string) error

	// Delete removes the value for key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
