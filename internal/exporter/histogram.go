package exporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/mbakhoff/wordfreq/internal/counter"
)

const (
	histLabelWidth = 20
	histCountWidth = 6
)

// WriteHistogram renders the top n words as a horizontal bar chart. Rows are
// laid out in an off-screen simulation screen and read back as plain text,
// so labels, counts and bars stay cell-aligned regardless of word content.
func WriteHistogram(w io.Writer, table *counter.Table, n, width int) error {
	entries := table.Top(n)
	if len(entries) == 0 {
		return nil
	}

	if width < histLabelWidth+histCountWidth+10 {
		width = histLabelWidth + histCountWidth + 10
	}

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		return fmt.Errorf("error initializing screen buffer: %w", err)
	}
	defer screen.Fini()

	screen.SetSize(width, len(entries))

	maxCount := entries[0].Count
	barWidth := width - histLabelWidth - histCountWidth - 2

	for y, entry := range entries {
		style := tcell.StyleDefault
		if y == 0 {
			style = style.Bold(true)
		}

		label := fmt.Sprintf("%-*s %*d ",
			histLabelWidth, truncate(entry.Word, histLabelWidth),
			histCountWidth, entry.Count)

		x := 0
		for _, r := range label {
			screen.SetContent(x, y, r, nil, style)
			x++
		}

		bar := entry.Count * barWidth / maxCount
		if bar < 1 {
			bar = 1
		}
		for i := 0; i < bar; i++ {
			screen.SetContent(x+i, y, '█', nil, style)
		}
	}

	screen.Show()

	for y := 0; y < len(entries); y++ {
		var line strings.Builder
		for x := 0; x < width; x++ {
			mainc, _, _, _ := screen.GetContent(x, y)
			if mainc == 0 {
				mainc = ' '
			}
			line.WriteRune(mainc)
		}

		if _, err := fmt.Fprintln(w, strings.TrimRight(line.String(), " ")); err != nil {
			return fmt.Errorf("error writing histogram: %w", err)
		}
	}

	return nil
}
