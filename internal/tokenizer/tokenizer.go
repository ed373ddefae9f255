package tokenizer

import (
	"unicode/utf8"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// Options configures the tokenizer behavior.
type Options struct {
	// Separator is the field delimiter. Default: ','
	Separator rune
}

// DefaultOptions returns default tokenizer options.
func DefaultOptions() Options {
	return Options{
		Separator: ',',
	}
}

// NewTokenizer creates a tokenizer for comma separated lines.
func NewTokenizer() tokenizer.Tokenizer {
	return NewTokenizerWithOptions(DefaultOptions())
}

// NewTokenizerWithOptions creates a tokenizer with custom options.
//
// Lines are tokenized at the character level:
// 1. Separator
// 2. Field content (any non-separator character)
//
// There is no quoting and no escaping: every separator occurrence ends a
// field. Line terminators are not special, callers tokenize one line at a time.
func NewTokenizerWithOptions(opts Options) tokenizer.Tokenizer {
	if opts.Separator == 0 {
		opts.Separator = DefaultOptions().Separator
	}
	return tokenizer.NewTokenizerWithoutWhitespace(
		tokenizer.StringMatcherFunc(TokenSeparator, string(opts.Separator)),
		FieldContentMatcherWithSep(opts.Separator),
	)
}

// FieldContentMatcherWithSep creates a matcher for field content.
// Matches runs of characters that are not the separator.
//
// Grammar:
//
//	Field = Character+ ;
//	Character = <any character except separator> ;
//
// Performance: an ASCII separator is searched bytewise on line streams.
func FieldContentMatcherWithSep(sep rune) tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		if sep < utf8.RuneSelf {
			if ls, ok := stream.(*lineStream); ok {
				return fieldContentMatcherByte(ls, byte(sep))
			}
		}
		return fieldContentMatcherRune(stream, sep)
	}
}

func fieldContentMatcherByte(stream *lineStream, sep byte) *tokenizer.Token {
	value := stream.skipToByte(sep)
	if len(value) == 0 {
		return nil
	}
	return tokenizer.NewToken(TokenField, []rune(value))
}

func fieldContentMatcherRune(stream tokenizer.Stream, sep rune) *tokenizer.Token {
	var value []rune

	for {
		r, ok := stream.PeekChar()
		if !ok || r == sep {
			break
		}
		stream.NextChar()
		value = append(value, r)
	}

	if len(value) == 0 {
		return nil
	}

	return tokenizer.NewToken(TokenField, value)
}

// Splitter splits single lines into fields on a fixed separator.
// The tokenizer and its stream are created once and reset per line.
// A Splitter is not safe for concurrent use.
type Splitter struct {
	tok    tokenizer.Tokenizer
	stream *lineStream
}

// NewSplitter creates a Splitter for the given separator.
func NewSplitter(sep rune) *Splitter {
	s := &Splitter{
		tok:    NewTokenizerWithOptions(Options{Separator: sep}),
		stream: &lineStream{},
	}
	s.tok.InitializeFromStream(s.stream)
	return s
}

// Split tokenizes line and appends its fields to dst[:0].
//
// Every separator ends a field, so adjacent separators yield empty fields
// and a trailing separator yields a trailing empty field. A line without
// the separator yields a single field equal to the line. Fields are
// substrings of line, byte for byte, whatever its encoding. Split never
// fails.
func (s *Splitter) Split(dst []string, line string) []string {
	dst = dst[:0]
	s.stream.reset(line)

	start := 0
	for {
		end := s.stream.GetOffset()
		token, ok := s.tok.NextToken()
		if !ok {
			break
		}
		if token.Kind() == TokenSeparator {
			dst = append(dst, line[start:end])
			start = s.stream.GetOffset()
		}
	}

	return append(dst, line[start:])
}

// Split is a convenience wrapper that tokenizes a single line.
func Split(line string, sep rune) []string {
	return NewSplitter(sep).Split(nil, line)
}
