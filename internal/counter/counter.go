package counter

import (
	"sort"

	"github.com/mbakhoff/wordfreq/internal/types"
)

// Table is a frequency table: a mapping from word to occurrence count.
// It is built by a single forward pass over the token stream and holds no
// state across runs.
type Table struct {
	counts map[string]int
	total  int
}

func NewTable() *Table {
	return &Table{
		counts: make(map[string]int),
	}
}

// FromTokens builds a frequency table from a token stream, incrementing the
// count of each token value in encounter order.
func FromTokens(tokens []types.Token) *Table {
	table := NewTable()
	for _, token := range tokens {
		table.Add(token.Value)
	}
	return table
}

func (t *Table) Add(word string) {
	t.counts[word]++
	t.total++
}

func (t *Table) Count(word string) int {
	return t.counts[word]
}

// Len returns the number of distinct words.
func (t *Table) Len() int {
	return len(t.counts)
}

// Total returns the sum of all counts, which equals the number of tokens
// the table was built from.
func (t *Table) Total() int {
	return t.total
}

// Entries returns all (word, count) pairs in unspecified order.
func (t *Table) Entries() []types.Entry {
	entries := make([]types.Entry, 0, len(t.counts))
	for word, count := range t.counts {
		entries = append(entries, types.Entry{Word: word, Count: count})
	}
	return entries
}

// SortedEntries returns all (word, count) pairs ordered by descending count,
// ties broken alphabetically.
func (t *Table) SortedEntries() []types.Entry {
	entries := t.Entries()
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Word < entries[j].Word
	})
	return entries
}

// Top returns the n most frequent entries (all entries when n exceeds the
// number of distinct words, or is negative).
func (t *Table) Top(n int) []types.Entry {
	entries := t.SortedEntries()
	if n < 0 || n > len(entries) {
		return entries
	}
	return entries[:n]
}
