package drivers

import "errors"

var (
	// ErrNotFound is returned by Get when no object is stored under the key
	ErrNotFound = errors.New("object not found")
	// ErrInvalidKey is returned for keys that could escape the storage root
	ErrInvalidKey = errors.New("invalid storage key")
)
