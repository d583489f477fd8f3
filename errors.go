package dhash

import "errors"

var (
	// ErrNotFound is returned by Lookup when the key is absent.
	ErrNotFound = errors.New("key not found")
	// ErrDestroyed is returned (or raised, for operations without an error
	// result) when a table is used after Destroy.
	ErrDestroyed = errors.New("table destroyed")
)
