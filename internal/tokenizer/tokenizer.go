package tokenizer

import (
	"unicode"
	"unicode/utf8"

	"github.com/mbakhoff/wordfreq/internal/types"
)

// Tokenizer splits an input buffer into whitespace-delimited word tokens.
// A token is a maximal run of non-whitespace characters; the delimiters
// themselves are discarded. The input is expected to be UTF-8 encoded
// (use wordfreq.ConvertToUTF8 if needed).
type Tokenizer struct {
	input []byte
	pos   int
	line  int

	Tokens []types.Token
	Stats  types.TokenStats
}

func NewTokenizer(input []byte) *Tokenizer {
	return &Tokenizer{
		input:  input,
		pos:    0,
		line:   1,
		Tokens: make([]types.Token, 0),
		Stats: types.TokenStats{
			FileSize: int64(len(input)),
		},
	}
}

func (t *Tokenizer) Tokenize() []types.Token {
	for t.pos < len(t.input) {
		t.nextToken()
	}

	t.Stats.TotalTokens = len(t.Tokens)
	if len(t.input) > 0 {
		t.Stats.TotalLines = t.line
	}

	return t.Tokens
}

func (t *Tokenizer) GetStats() types.TokenStats {
	return t.Stats
}

func (t *Tokenizer) nextToken() {
	r, _ := utf8.DecodeRune(t.input[t.pos:])

	if unicode.IsSpace(r) {
		t.skipWhitespace()
		return
	}

	t.parseWord(t.pos)
}

func (t *Tokenizer) skipWhitespace() {
	for t.pos < len(t.input) {
		r, size := utf8.DecodeRune(t.input[t.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		if r == '\n' {
			t.line++
		}
		t.pos += size
	}
}

func (t *Tokenizer) parseWord(start int) {
	for t.pos < len(t.input) {
		r, size := utf8.DecodeRune(t.input[t.pos:])
		if unicode.IsSpace(r) {
			break
		}
		t.pos += size
	}

	t.Tokens = append(t.Tokens, types.Token{
		Value: string(t.input[start:t.pos]),
		Pos:   start,
		Line:  t.line,
	})
}
