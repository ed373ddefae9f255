package tokenizer

import (
	"strings"
	"unicode/utf8"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// lineStream is a tokenizer.Stream over a single line that reports byte
// offsets into that line. Bytes that are not valid UTF-8 are read as
// utf8.RuneError one byte at a time, so offsets always stay on the original
// bytes and fields can be sliced from the line unchanged.
//
// A lineStream is reset for every line and reused for the whole load.
type lineStream struct {
	line   string
	offset int
}

var _ tokenizer.Stream = (*lineStream)(nil)

func (s *lineStream) reset(line string) {
	s.line = line
	s.offset = 0
}

// Clone returns a copy positioned at the same offset.
func (s *lineStream) Clone() tokenizer.Stream {
	c := *s
	return &c
}

// Match moves s to the position of other, which must be a clone of s.
func (s *lineStream) Match(other tokenizer.Stream) {
	o, ok := other.(*lineStream)
	if !ok {
		panic("type assertion failed: expected *lineStream")
	}
	s.offset = o.offset
}

func (s *lineStream) PeekChar() (rune, bool) {
	if s.IsEos() {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s.line[s.offset:])
	return r, true
}

func (s *lineStream) NextChar() (rune, bool) {
	if s.IsEos() {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(s.line[s.offset:])
	s.offset += size
	return r, true
}

// MatchChars advances past match if the stream continues with it and
// leaves the position unchanged otherwise.
func (s *lineStream) MatchChars(match []rune) bool {
	orig := s.offset
	for _, want := range match {
		r, ok := s.NextChar()
		if !ok || r != want {
			s.offset = orig
			return false
		}
	}
	return true
}

func (s *lineStream) IsEos() bool { return s.offset >= len(s.line) }

// GetOffset returns the byte offset into the line.
func (s *lineStream) GetOffset() int { return s.offset }

// GetRow is always 1, a lineStream never spans lines.
func (s *lineStream) GetRow() int { return 1 }

// GetColumn returns the 1-based byte column.
func (s *lineStream) GetColumn() int { return s.offset + 1 }

func (s *lineStream) Reset() { s.offset = 0 }

// skipToByte advances to the next occurrence of sep, or to the end of the
// line, and returns the bytes passed over.
func (s *lineStream) skipToByte(sep byte) string {
	rest := s.line[s.offset:]
	n := strings.IndexByte(rest, sep)
	if n < 0 {
		n = len(rest)
	}
	s.offset += n
	return rest[:n]
}
