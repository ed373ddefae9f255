package properties

import (
	"errors"
	"fmt"

	"github.com/shapestone/shape-tables/internal/source"
)

// Common errors
var (
	// ErrOpen indicates the properties source could not be opened or read.
	// Every load failure matches it.
	ErrOpen = source.ErrOpen

	// ErrInvalidOptions indicates an unusable separator. Like every load
	// failure it is reported inside an *OpenError.
	ErrInvalidOptions = source.ErrInvalidOptions

	// ErrKeyNotFound indicates a single-value lookup of an absent key.
	ErrKeyNotFound = errors.New("property not found")
)

// OpenError records a failure to load properties.
// It matches ErrOpen with errors.Is.
type OpenError = source.Error

// KeyError reports a lookup of a key without entries.
type KeyError struct {
	Key string
}

// Error returns a formatted error message.
func (e *KeyError) Error() string {
	return fmt.Sprintf("property not found: %s", e.Key)
}

// Unwrap returns ErrKeyNotFound.
func (e *KeyError) Unwrap() error {
	return ErrKeyNotFound
}

// wrap reports any load failure as an *OpenError, so callers see a single
// failure kind for construction.
func wrap(err error, path string) error {
	var openErr *OpenError
	if errors.As(err, &openErr) {
		return err
	}
	return &OpenError{Op: "read", Path: path, Err: err}
}
