// Package wordfreq provides a public API for counting word frequencies in
// text sources.
//
// This package provides functions to:
//   - Convert between character encodings (CP437, CP850, ISO-8859-1, UTF-8)
//   - Tokenize text into whitespace-delimited words
//   - Build frequency tables from files, readers or in-memory data
//
// Example usage:
//
//	import "github.com/mbakhoff/wordfreq/pkg/wordfreq"
//
//	table, _ := wordfreq.CountFile("book.txt")
//	for _, entry := range table.SortedEntries() {
//		fmt.Printf("%s: %d\n", entry.Word, entry.Count)
//	}
package wordfreq

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/mbakhoff/wordfreq/internal/counter"
	"github.com/mbakhoff/wordfreq/internal/tokenizer"
	"github.com/mbakhoff/wordfreq/internal/types"
)

// Type aliases for public API
type (
	// Token represents a single whitespace-delimited word with its position
	Token = types.Token

	// TokenStats contains statistics about a tokenized input
	TokenStats = types.TokenStats

	// Entry is a single (word, count) pair of a frequency table
	Entry = types.Entry

	// Tokenizer is the interface for tokenizers
	Tokenizer = types.Tokenizer

	// TokenizerWithStats is a tokenizer that also provides statistics
	TokenizerWithStats = types.TokenizerWithStats

	// Table is a frequency table mapping words to occurrence counts
	Table = counter.Table

	// WhitespaceTokenizer splits input on runs of whitespace
	WhitespaceTokenizer = tokenizer.Tokenizer
)

// UTF-8 BOM (Byte Order Mark) sequence
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// stripUTF8BOM removes the UTF-8 BOM if present at the beginning of the data
func stripUTF8BOM(data []byte) []byte {
	if len(data) >= 3 && bytes.Equal(data[:3], utf8BOM) {
		return data[3:]
	}
	return data
}

// ConvertToUTF8 converts byte data from a source encoding to UTF-8.
// Supported encodings: "utf8", "cp437", "cp850", "iso-8859-1"
// The UTF-8 BOM (Byte Order Mark) is automatically stripped if present.
func ConvertToUTF8(data []byte, sourceEncoding string) ([]byte, error) {
	if sourceEncoding == "utf8" {
		return stripUTF8BOM(data), nil
	}

	var decoder *encoding.Decoder

	switch sourceEncoding {
	case "cp437":
		decoder = charmap.CodePage437.NewDecoder()
	case "cp850":
		decoder = charmap.CodePage850.NewDecoder()
	case "iso-8859-1":
		decoder = charmap.ISO8859_1.NewDecoder()
	default:
		return nil, fmt.Errorf("unsupported encoding: %s", sourceEncoding)
	}

	reader := transform.NewReader(bytes.NewReader(data), decoder)
	utf8Data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("encoding conversion error: %w", err)
	}

	// Strip BOM if present after conversion
	return stripUTF8BOM(utf8Data), nil
}

// NewTokenizer creates a new whitespace tokenizer for the given data.
// The input should be UTF-8 encoded (use ConvertToUTF8 if needed).
func NewTokenizer(data []byte) *WhitespaceTokenizer {
	return tokenizer.NewTokenizer(data)
}

// Count tokenizes data and builds its frequency table.
func Count(data []byte) *Table {
	tok := tokenizer.NewTokenizer(data)
	return counter.FromTokens(tok.Tokenize())
}

// CountReader reads r in full and builds the frequency table of its content.
func CountReader(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}
	return Count(data), nil
}

// CountFile reads the file at path in full and builds the frequency table of
// its content. A file that cannot be opened or read yields an error and no
// table.
func CountFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return Count(data), nil
}
