package exporter

import (
	"fmt"
	"io"

	"github.com/mbakhoff/wordfreq/internal/counter"
)

// WriteCounts writes one "word: count" line per distinct word. The emission
// order is the iteration order of the underlying map and is not stable
// between runs.
func WriteCounts(w io.Writer, table *counter.Table) error {
	for _, entry := range table.Entries() {
		if _, err := fmt.Fprintf(w, "%s: %d\n", entry.Word, entry.Count); err != nil {
			return fmt.Errorf("error writing counts: %w", err)
		}
	}
	return nil
}

// WriteSortedCounts writes "word: count" lines ordered by descending count.
// A non-negative top limits the output to the top most frequent words.
func WriteSortedCounts(w io.Writer, table *counter.Table, top int) error {
	for _, entry := range table.Top(top) {
		if _, err := fmt.Fprintf(w, "%s: %d\n", entry.Word, entry.Count); err != nil {
			return fmt.Errorf("error writing counts: %w", err)
		}
	}
	return nil
}
