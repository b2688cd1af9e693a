package exporter

import (
	"fmt"
	"io"

	"github.com/mbakhoff/wordfreq/internal/counter"
)

// WriteTable writes the frequency table as a box-drawing table ordered by
// descending count, with the share of each word in the total token count.
func WriteTable(w io.Writer, table *counter.Table) error {
	fmt.Fprintln(w, "┌────────┬──────────────────────────────────────┬────────┬─────────┐")
	fmt.Fprintf(w, "│ %-6s │ %-36s │ %-6s │ %-7s │\n", "Rank", "Word", "Count", "Percent")
	fmt.Fprintln(w, "├────────┼──────────────────────────────────────┼────────┼─────────┤")

	total := table.Total()
	for i, entry := range table.SortedEntries() {
		percent := 0.0
		if total > 0 {
			percent = float64(entry.Count) / float64(total) * 100
		}

		fmt.Fprintf(w, "│ %-6d │ %-36s │ %-6d │ %6.1f%% │\n",
			i+1, truncate(entry.Word, 36), entry.Count, percent)
	}

	fmt.Fprintln(w, "└────────┴──────────────────────────────────────┴────────┴─────────┘")

	return nil
}

func truncate(s string, maxLen int) string {
	s = fmt.Sprintf("%q", s)

	// Remove quote added by %q
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	if len(s) > maxLen {
		return s[:maxLen-3] + "..."
	}
	return s
}
