package exporter

import (
	"fmt"
	"io"

	"github.com/mbakhoff/wordfreq/internal/counter"
	"github.com/mbakhoff/wordfreq/internal/types"
)

// WriteStats writes a summary of the counted input: sizes, totals and the
// most frequent words.
func WriteStats(w io.Writer, table *counter.Table, stats types.TokenStats) error {
	fmt.Fprintln(w, "=== Word Statistics ===")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Input size: %d bytes\n", stats.FileSize)
	fmt.Fprintf(w, "  Total lines: %d\n", stats.TotalLines)
	fmt.Fprintf(w, "  Total words: %d\n", table.Total())
	fmt.Fprintf(w, "  Distinct words: %d\n", table.Len())

	if table.Len() == 0 {
		return nil
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- Most Frequent Words")
	writeTopN(w, table, 10)

	return nil
}

func writeTopN(w io.Writer, table *counter.Table, n int) {
	total := table.Total()
	for i, entry := range table.SortedEntries() {
		if i >= n {
			break
		}

		percentage := float64(entry.Count) / float64(total) * 100
		fmt.Fprintf(w, "  %-30s: %5d (%.1f%%)\n", entry.Word, entry.Count, percentage)
	}
}
