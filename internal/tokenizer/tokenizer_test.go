package tokenizer

import (
	"reflect"
	"strings"
	"testing"
)

// TestTokenTypes tests that all token constants are defined and non-empty.
func TestTokenTypes(t *testing.T) {
	tests := []struct {
		name      string
		tokenType string
	}{
		{"separator token", TokenSeparator},
		{"field token", TokenField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tokenType == "" {
				t.Errorf("%s is empty", tt.name)
			}
		})
	}
}

// TestNewTokenizer_BasicTokens tests the raw token stream.
func TestNewTokenizer_BasicTokens(t *testing.T) {
	type tok struct {
		kind  string
		value string
	}

	tests := []struct {
		name     string
		input    string
		expected []tok
	}{
		{
			name:     "single separator",
			input:    ",",
			expected: []tok{{TokenSeparator, ","}},
		},
		{
			name:     "single field",
			input:    "abc",
			expected: []tok{{TokenField, "abc"}},
		},
		{
			name:  "simple row",
			input: "a,b,c",
			expected: []tok{
				{TokenField, "a"},
				{TokenSeparator, ","},
				{TokenField, "b"},
				{TokenSeparator, ","},
				{TokenField, "c"},
			},
		},
		{
			name:  "quotes are plain content",
			input: `"a,b"`,
			expected: []tok{
				{TokenField, `"a`},
				{TokenSeparator, ","},
				{TokenField, `b"`},
			},
		},
		{
			name:  "whitespace is kept",
			input: " a , b ",
			expected: []tok{
				{TokenField, " a "},
				{TokenSeparator, ","},
				{TokenField, " b "},
			},
		},
		{
			name:  "empty fields",
			input: ",,",
			expected: []tok{
				{TokenSeparator, ","},
				{TokenSeparator, ","},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := NewTokenizer()
			tk.Initialize(tt.input)

			for i, exp := range tt.expected {
				token, ok := tk.NextToken()
				if !ok {
					t.Fatalf("token %d: expected token, got none (expected %s: %q)", i, exp.kind, exp.value)
				}
				if token.Kind() != exp.kind {
					t.Errorf("token %d: expected kind %s, got %s (value: %q)", i, exp.kind, token.Kind(), token.ValueString())
				}
				if token.ValueString() != exp.value {
					t.Errorf("token %d: expected value %q, got %q (kind: %s)", i, exp.value, token.ValueString(), token.Kind())
				}
			}

			token, ok := tk.NextToken()
			if ok {
				t.Errorf("expected no more tokens, got %s: %q", token.Kind(), token.ValueString())
			}
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		line string
		sep  rune
		want []string
	}{
		{"interior and trailing empties", "a;;b;", ';', []string{"a", "", "b", ""}},
		{"no separator", "hello world", ';', []string{"hello world"}},
		{"empty line", "", ',', []string{""}},
		{"only separator", ",", ',', []string{"", ""}},
		{"leading empty", ",b,c", ',', []string{"", "b", "c"}},
		{"tab separated", "1\tAlice\t2.5", '\t', []string{"1", "Alice", "2.5"}},
		{"hash separator", "a#b", '#', []string{"a", "b"}},
		{"other separators are content", "a,b;c", ';', []string{"a,b", "c"}},
		{"carriage return kept", "a,b\r", ',', []string{"a", "b\r"}},
		{"latin-1 bytes kept", "1;caf\xe9;2", ';', []string{"1", "caf\xe9", "2"}},
		{"invalid bytes around separator", "\xff,\xfe\xfd,", ',', []string{"\xff", "\xfe\xfd", ""}},
		{"multi-byte separator", "a→\xe9→", '→', []string{"a", "\xe9", ""}},
		{"multi-byte content", "ä,ö", ',', []string{"ä", "ö"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.line, tt.sep)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q, %q) = %q, want %q", tt.line, tt.sep, got, tt.want)
			}
		})
	}
}

// TestSplitter_ReusesBuffer tests that Split clears the caller buffer.
func TestSplitter_ReusesBuffer(t *testing.T) {
	s := NewSplitter(',')
	buf := make([]string, 0, 8)

	buf = s.Split(buf, "a,b,c,d,e")
	if len(buf) != 5 {
		t.Fatalf("expected 5 fields, got %d", len(buf))
	}

	buf = s.Split(buf, "x,y")
	if want := []string{"x", "y"}; !reflect.DeepEqual(buf, want) {
		t.Errorf("second Split = %q, want %q", buf, want)
	}
}

// TestSplitter_ManyLines tests that one Splitter handles lines of
// different lengths back to back.
func TestSplitter_ManyLines(t *testing.T) {
	s := NewSplitter(';')
	lines := []string{"a;b;c", "", "long field with spaces;x", ";", "caf\xe9"}
	for round := 0; round < 3; round++ {
		for _, line := range lines {
			got := s.Split(nil, line)
			if want := strings.Split(line, ";"); !reflect.DeepEqual(got, want) {
				t.Fatalf("round %d: Split(%q) = %q, want %q", round, line, got, want)
			}
		}
	}
}

// TestSplit_FieldCount tests that n separators always yield n+1 fields.
func TestSplit_FieldCount(t *testing.T) {
	for n := 0; n < 50; n++ {
		line := strings.Repeat("x,", n) + "x"
		if got := len(Split(line, ',')); got != n+1 {
			t.Fatalf("%d separators: got %d fields, want %d", n, got, n+1)
		}
		line = strings.Repeat(",", n)
		if got := len(Split(line, ',')); got != n+1 {
			t.Fatalf("%d bare separators: got %d fields, want %d", n, got, n+1)
		}
	}
}
