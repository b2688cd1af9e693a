package types

/////////////////////////////////////////////////////////////////////////////
// TOKEN
/////////////////////////////////////////////////////////////////////////////

// Token is a maximal run of non-whitespace characters extracted from the
// input, in encounter order.
type Token struct {
	Value string `json:"value"`
	Pos   int    `json:"pos"`
	Line  int    `json:"line"`
}

func (t Token) String() string {
	return "TEXT: " + t.Value
}

/////////////////////////////////////////////////////////////////////////////
// STATISTICS
/////////////////////////////////////////////////////////////////////////////

// TokenStats contains statistics collected while tokenizing an input.
type TokenStats struct {
	FileSize    int64 `json:"file_size"`
	TotalTokens int   `json:"total_tokens"`
	TotalLines  int   `json:"total_lines"`
}

// Entry is a single (word, count) pair of a frequency table.
type Entry struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}
