// Package tokenizer provides line tokenization using Shape's tokenizer framework.
package tokenizer

// Token type constants for delimited lines.
//
// Note: The tokenizer emits a token per separator and per run of field
// content. Empty fields produce no field token; Splitter infers them from
// adjacent separators.
const (
	// Structural token
	TokenSeparator = "Separator" // the configured single-character separator

	// Field content token
	TokenField = "Field" // Field content (any non-separator character)
)
