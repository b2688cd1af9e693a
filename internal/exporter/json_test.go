package exporter

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbakhoff/wordfreq/internal/tokenizer"
	"github.com/mbakhoff/wordfreq/internal/types"
)

func TestWriteCountsJSON(t *testing.T) {
	tok := tokenizer.NewTokenizer([]byte("a b a c b a"))
	tok.Tokenize()
	table := tableFor("a b a c b a")

	var buf strings.Builder
	require.NoError(t, WriteCountsJSON(&buf, table, tok.GetStats()))

	var output CountsJSONOutput
	require.NoError(t, json.Unmarshal([]byte(buf.String()), &output))

	assert.Equal(t, 6, output.Stats.TotalTokens)
	assert.Equal(t, []types.Entry{
		{Word: "a", Count: 3},
		{Word: "b", Count: 2},
		{Word: "c", Count: 1},
	}, output.Counts)
}
