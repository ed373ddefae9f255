package properties

import (
	"go.uber.org/zap"

	"github.com/shapestone/shape-tables/internal/source"
)

// ReaderOptions configures properties loading.
type ReaderOptions struct {
	// Separator separates the key from the value.
	// Zero means the default.
	// Default: '='
	Separator rune

	// Logger receives debug and info events while loading.
	// Default: nil (no logging)
	Logger *zap.Logger
}

// DefaultReaderOptions returns the default reader configuration.
func DefaultReaderOptions() ReaderOptions {
	return ReaderOptions{
		Separator: '=',
		Logger:    nil,
	}
}

// withDefaults fills in zero fields.
func (o ReaderOptions) withDefaults() ReaderOptions {
	if o.Separator == 0 {
		o.Separator = '='
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// validate returns an error matching ErrInvalidOptions.
func (o ReaderOptions) validate() error {
	return source.CheckSeparator(o.Separator)
}
