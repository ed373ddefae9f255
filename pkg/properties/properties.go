// Package properties loads Java-style properties files into a read-only,
// in-memory multimap.
//
// Every line of the form key=value is an entry. All whitespace is removed
// from the key, including whitespace inside it, and the value is trimmed at
// both ends only. Lines without the separator, lines with an empty key and
// lines whose key starts with '#' or '!' are ignored. Keys may repeat: every
// occurrence is kept, in file order.
//
// Values are stored as text and converted when queried, using the same
// permissive numeric rules as the csv package.
//
// # Example usage:
//
//	props, err := properties.ReadFile("app.properties", properties.DefaultReaderOptions())
//	if err != nil {
//	    // handle error
//	}
//	port, err := properties.Value[int](props, "port")
//	hosts := properties.Values[string](props, "host")
package properties

import (
	"io"
	"iter"
	"slices"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/shapestone/shape-tables/internal/coerce"
	"github.com/shapestone/shape-tables/internal/source"
)

// Scalar is the set of types values can be converted to.
type Scalar = coerce.Scalar

// Entry is a single key/value pair.
type Entry struct {
	Key   string
	Value string
	// Line is the 1-based line the entry was read from.
	Line int
}

// Properties is a loaded, read-only properties multimap. It is never
// modified after loading, so it is safe for concurrent use.
type Properties struct {
	entries []Entry
	index   map[string][]int // key -> entry positions, in file order
	keys    []string         // distinct keys, in first-seen order
}

// Read loads properties from r.
func Read(r io.Reader, opts ReaderOptions) (*Properties, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, &OpenError{Op: "open", Err: err}
	}
	p := newProperties()
	if err := source.Read(r, p.lineFunc(opts)); err != nil {
		return nil, wrap(err, "")
	}
	p.loaded(opts.Logger, "")
	return p, nil
}

// ReadFile loads properties from the named file. The file is closed
// before ReadFile returns.
func ReadFile(path string, opts ReaderOptions) (*Properties, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, &OpenError{Op: "open", Path: path, Err: err}
	}
	p := newProperties()
	if err := source.ReadFile(path, opts.Logger, p.lineFunc(opts)); err != nil {
		return nil, wrap(err, path)
	}
	p.loaded(opts.Logger, path)
	return p, nil
}

func newProperties() *Properties {
	return &Properties{index: make(map[string][]int)}
}

func (p *Properties) lineFunc(opts ReaderOptions) source.LineFunc {
	return func(lineNo int, line string) error {
		key, value, ok := parseLine(line, opts.Separator)
		if !ok {
			opts.Logger.Debug("skipping line", zap.Int("line", lineNo))
			return nil
		}
		p.add(Entry{Key: key, Value: value, Line: lineNo})
		return nil
	}
}

func (p *Properties) loaded(logger *zap.Logger, path string) {
	logger.Info("properties loaded",
		zap.String("path", path),
		zap.Int("entries", len(p.entries)),
		zap.Int("keys", len(p.keys)))
}

func (p *Properties) add(e Entry) {
	positions, seen := p.index[e.Key]
	if !seen {
		p.keys = append(p.keys, e.Key)
	}
	p.index[e.Key] = append(positions, len(p.entries))
	p.entries = append(p.entries, e)
}

// isSpace matches the C isspace set. Bytes outside ASCII are never space.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// parseLine splits a line into key and value. ok is false for lines that
// are not properties.
func parseLine(line string, sep rune) (key, value string, ok bool) {
	keyBuf, sepIdx := scanKey(line, sep)
	if sepIdx < 0 || len(keyBuf) == 0 || keyBuf[0] == '#' || keyBuf[0] == '!' {
		return "", "", false
	}
	value = trimSpace(line[sepIdx+utf8.RuneLen(sep):])
	return string(keyBuf), value, true
}

// scanKey collects the non-space characters before the first separator.
// The returned index is -1 if the line has no separator.
func scanKey(line string, sep rune) ([]byte, int) {
	keyBuf := make([]byte, 0, len(line))
	if sep < utf8.RuneSelf {
		for i := 0; i < len(line); i++ {
			if line[i] == byte(sep) {
				return keyBuf, i
			}
			if !isSpace(line[i]) {
				keyBuf = append(keyBuf, line[i])
			}
		}
		return keyBuf, -1
	}

	for i := 0; i < len(line); {
		r, size := utf8.DecodeRuneInString(line[i:])
		if r == sep && size > 1 {
			return keyBuf, i
		}
		if size > 1 || !isSpace(line[i]) {
			keyBuf = append(keyBuf, line[i:i+size]...)
		}
		i += size
	}
	return keyBuf, -1
}

func trimSpace(s string) string {
	start, end := 0, len(s)
	for start < end && isSpace(s[start]) {
		start++
	}
	for end > start && isSpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

// Len returns the number of entries, duplicates included.
func (p *Properties) Len() int {
	return len(p.entries)
}

// Keys returns each distinct key once, in order of first appearance.
func (p *Properties) Keys() []string {
	return slices.Clone(p.keys)
}

// Has reports whether key has at least one entry.
func (p *Properties) Has(key string) bool {
	_, ok := p.index[key]
	return ok
}

// Entries returns a copy of all entries in file order.
func (p *Properties) Entries() []Entry {
	return slices.Clone(p.entries)
}

// All iterates over all key/value pairs in file order.
func (p *Properties) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, e := range p.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Lookup returns the first value for key.
func (p *Properties) Lookup(key string) (string, bool) {
	positions, ok := p.index[key]
	if !ok {
		return "", false
	}
	return p.entries[positions[0]].Value, true
}

// Get returns the first value for key as text.
// It fails with a *KeyError if the key has no entries.
func (p *Properties) Get(key string) (string, error) {
	return Value[string](p, key)
}

// Strings returns every value for key as text, in file order.
func (p *Properties) Strings(key string) []string {
	return Values[string](p, key)
}

// Values returns every value for key converted to T, in file order.
// It returns an empty slice if the key is absent.
func Values[T Scalar](p *Properties, key string) []T {
	positions := p.index[key]
	out := make([]T, 0, len(positions))
	for _, pos := range positions {
		out = append(out, coerce.To[T](p.entries[pos].Value))
	}
	return out
}

// Value returns the first value for key converted to T.
// It fails with a *KeyError if the key has no entries.
func Value[T Scalar](p *Properties, key string) (T, error) {
	text, ok := p.Lookup(key)
	if !ok {
		var zero T
		return zero, &KeyError{Key: key}
	}
	return coerce.To[T](text), nil
}
