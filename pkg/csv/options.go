// Package csv provides configurable options for loading CSV tables.
package csv

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/shapestone/shape-tables/internal/source"
)

// ReaderOptions configures CSV loading.
type ReaderOptions struct {
	// Separator is the field delimiter. There is no quoting, so the
	// separator can never appear inside a field.
	// Zero means the default.
	// Default: ','
	Separator rune

	// Columns is the expected number of fields per record for uniform
	// tables. If 0, the first data record determines the count.
	// Ignored when column types are given explicitly.
	// Default: 0
	Columns int

	// Logger receives debug and info events while loading.
	// Default: nil (no logging)
	Logger *zap.Logger
}

// DefaultReaderOptions returns the default reader configuration.
func DefaultReaderOptions() ReaderOptions {
	return ReaderOptions{
		Separator: ',',
		Columns:   0,
		Logger:    nil,
	}
}

// withDefaults fills in zero fields.
func (o ReaderOptions) withDefaults() ReaderOptions {
	if o.Separator == 0 {
		o.Separator = ','
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// validate returns an error matching ErrInvalidOptions.
func (o ReaderOptions) validate() error {
	if err := source.CheckSeparator(o.Separator); err != nil {
		return err
	}
	if o.Columns < 0 {
		return fmt.Errorf("%w: column count %d", ErrInvalidOptions, o.Columns)
	}
	return nil
}

// isIgnored reports whether a line is blank or a comment. Comment lines
// start with '#' or '!' in the very first column.
func isIgnored(line string) bool {
	return len(line) == 0 || line[0] == '#' || line[0] == '!'
}
