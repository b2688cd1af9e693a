package counter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbakhoff/wordfreq/internal/tokenizer"
	"github.com/mbakhoff/wordfreq/internal/types"
)

func TestFromTokens(t *testing.T) {
	tokens := tokenizer.NewTokenizer([]byte("a b a c b a")).Tokenize()
	table := FromTokens(tokens)

	assert.Equal(t, 3, table.Count("a"))
	assert.Equal(t, 2, table.Count("b"))
	assert.Equal(t, 1, table.Count("c"))
	assert.Equal(t, 0, table.Count("d"))
	assert.Equal(t, 3, table.Len())
	assert.Equal(t, 6, table.Total())
}

func TestTotalEqualsTokenCount(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"single word", "one"},
		{"repeated words", "a b a c b a"},
		{"empty", ""},
		{"whitespace only", "   \n\t  "},
		{"mixed", "the quick brown fox jumps over the lazy dog the"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := tokenizer.NewTokenizer([]byte(tt.input)).Tokenize()
			table := FromTokens(tokens)

			assert.Equal(t, len(tokens), table.Total())

			sum := 0
			for _, entry := range table.Entries() {
				sum += entry.Count
			}
			assert.Equal(t, len(tokens), sum)
		})
	}
}

func TestEntriesAreDistinct(t *testing.T) {
	tokens := tokenizer.NewTokenizer([]byte("x y x z y x")).Tokenize()
	table := FromTokens(tokens)

	seen := make(map[string]bool)
	for _, entry := range table.Entries() {
		assert.False(t, seen[entry.Word], "word %q emitted twice", entry.Word)
		seen[entry.Word] = true
	}
	assert.Len(t, seen, table.Len())
}

func TestSortedEntries(t *testing.T) {
	table := NewTable()
	for _, word := range []string{"b", "a", "a", "c", "c", "c"} {
		table.Add(word)
	}

	entries := table.SortedEntries()
	require.Len(t, entries, 3)

	assert.Equal(t, types.Entry{Word: "c", Count: 3}, entries[0])
	assert.Equal(t, types.Entry{Word: "a", Count: 2}, entries[1])
	assert.Equal(t, types.Entry{Word: "b", Count: 1}, entries[2])
}

func TestSortedEntriesTieBreak(t *testing.T) {
	table := NewTable()
	table.Add("zebra")
	table.Add("apple")

	entries := table.SortedEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "apple", entries[0].Word)
	assert.Equal(t, "zebra", entries[1].Word)
}

func TestTop(t *testing.T) {
	table := NewTable()
	for _, word := range []string{"a", "a", "a", "b", "b", "c"} {
		table.Add(word)
	}

	top := table.Top(2)
	require.Len(t, top, 2)
	assert.Equal(t, "a", top[0].Word)
	assert.Equal(t, "b", top[1].Word)

	assert.Len(t, table.Top(10), 3)
	assert.Len(t, table.Top(-1), 3)
	assert.Len(t, table.Top(0), 0)
}

func TestIdempotence(t *testing.T) {
	input := []byte("to be or not to be")

	first := FromTokens(tokenizer.NewTokenizer(input).Tokenize())
	second := FromTokens(tokenizer.NewTokenizer(input).Tokenize())

	assert.Equal(t, first.SortedEntries(), second.SortedEntries())
}
