package exporter

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbakhoff/wordfreq/internal/counter"
	"github.com/mbakhoff/wordfreq/internal/tokenizer"
)

func tableFor(input string) *counter.Table {
	return counter.FromTokens(tokenizer.NewTokenizer([]byte(input)).Tokenize())
}

func TestWriteCounts(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteCounts(&buf, tableFor("a b a c b a")))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	sort.Strings(lines)

	assert.Equal(t, []string{"a: 3", "b: 2", "c: 1"}, lines)
}

func TestWriteCountsEmpty(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteCounts(&buf, tableFor("   \n\t  ")))

	assert.Empty(t, buf.String())
}

func TestWriteSortedCounts(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteSortedCounts(&buf, tableFor("a b a c b a"), -1))

	assert.Equal(t, "a: 3\nb: 2\nc: 1\n", buf.String())
}

func TestWriteSortedCountsTop(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteSortedCounts(&buf, tableFor("a b a c b a"), 1))

	assert.Equal(t, "a: 3\n", buf.String())
}
