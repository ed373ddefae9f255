// Package source feeds text to the table readers one line at a time.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"
)

// maxLineSize bounds a single line. Longer lines fail with a read error.
const maxLineSize = 16 << 20

// ErrOpen indicates the source could not be opened or read.
var ErrOpen = errors.New("cannot open source")

// ErrInvalidOptions indicates reader options that cannot be used.
var ErrInvalidOptions = errors.New("invalid reader options")

// CheckSeparator returns an error matching ErrInvalidOptions unless sep is
// a valid character other than utf8.RuneError, which stands for undecodable
// bytes.
func CheckSeparator(sep rune) error {
	if !utf8.ValidRune(sep) || sep == utf8.RuneError {
		return fmt.Errorf("%w: separator %q", ErrInvalidOptions, sep)
	}
	return nil
}

// Error records a failure to open or read a line source.
type Error struct {
	// Op is "open" or "read".
	Op string
	// Path is the file name, empty for io.Reader sources.
	Path string
	// Err is the underlying error.
	Err error
}

// Error returns a formatted error message.
func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrOpen.
func (e *Error) Is(target error) bool {
	return target == ErrOpen
}

// LineFunc receives each line with its 1-based line number.
// Returning an error stops the scan and is passed through unchanged.
type LineFunc func(lineNo int, line string) error

// ReadFile opens path and calls fn for every line in order.
// The file is closed before ReadFile returns, whatever the outcome.
func ReadFile(path string, logger *zap.Logger, fn LineFunc) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	file, err := os.Open(path)
	if err != nil {
		logger.Debug("open failed", zap.String("path", path), zap.Error(err))
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			err = pathErr.Err
		}
		return &Error{Op: "open", Path: path, Err: err}
	}
	defer file.Close()

	logger.Debug("reading source", zap.String("path", path))
	return read(file, path, fn)
}

// Read calls fn for every line of r in order.
func Read(r io.Reader, fn LineFunc) error {
	if r == nil {
		return &Error{Op: "open", Err: errors.New("nil reader")}
	}
	return read(r, "", fn)
}

func read(r io.Reader, path string, fn LineFunc) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := fn(lineNo, scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return &Error{Op: "read", Path: path, Err: err}
	}
	return nil
}
