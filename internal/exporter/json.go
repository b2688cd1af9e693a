package exporter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mbakhoff/wordfreq/internal/counter"
	"github.com/mbakhoff/wordfreq/internal/types"
)

type CountsJSONOutput struct {
	Stats  types.TokenStats `json:"stats"`
	Counts []types.Entry    `json:"counts"`
}

// WriteCountsJSON writes the frequency table and tokenizer statistics as an
// indented JSON document. Entries are ordered by descending count so the
// document is stable for identical inputs.
func WriteCountsJSON(w io.Writer, table *counter.Table, stats types.TokenStats) error {
	output := CountsJSONOutput{
		Stats:  stats,
		Counts: table.SortedEntries(),
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON serialization error: %w", err)
	}

	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("error writing JSON: %w", err)
	}
	return nil
}
