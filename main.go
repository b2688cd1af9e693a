package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/mbakhoff/wordfreq/internal/counter"
	"github.com/mbakhoff/wordfreq/internal/editor"
	"github.com/mbakhoff/wordfreq/internal/exporter"
	"github.com/mbakhoff/wordfreq/internal/filefilter"
	"github.com/mbakhoff/wordfreq/internal/fn"
	"github.com/mbakhoff/wordfreq/internal/tokenizer"
	"github.com/mbakhoff/wordfreq/pkg/wordfreq"
)

var cli struct {
	Count  CountCmd  `cmd:"" default:"withargs" help:"Count word frequencies in a text file."`
	Edit   EditCmd   `cmd:"" help:"Rewrite a file line by line, converting indentation."`
	Filter FilterCmd `cmd:"" help:"List files in a directory matching suffix filters."`
}

type CountCmd struct {
	JSON      bool   `short:"j" help:"Display counts in JSON format."`
	Table     bool   `short:"t" help:"Display counts in table format."`
	Stats     bool   `short:"s" help:"Display word statistics."`
	Chart     bool   `short:"c" help:"Display a bar chart of the most frequent words."`
	Sort      bool   `help:"Sort plain output by descending count."`
	Top       int    `default:"-1" placeholder:"N" help:"Limit sorted output to the N most frequent words."`
	Width     int    `default:"80" help:"Chart width in columns."`
	Encoding  string `short:"e" default:"utf8" enum:"utf8,cp437,cp850,iso-8859-1" help:"Input encoding."`
	Multifile string `short:"m" placeholder:"PATH" help:"Export counts to PATH.txt and PATH.json."`

	File string `arg:"" optional:"" help:"Input file (reads from stdin when omitted and piped)."`
}

func (c *CountCmd) Run() error {
	data, err := c.readInput()
	if err != nil {
		return err
	}

	data, err = wordfreq.ConvertToUTF8(data, c.Encoding)
	if err != nil {
		return err
	}

	tok := tokenizer.NewTokenizer(data)
	table := counter.FromTokens(tok.Tokenize())
	stats := tok.GetStats()

	switch {
	case c.Multifile != "":
		if err := exporter.ExportToMultifile(table, stats, c.Multifile); err != nil {
			return err
		}
		base := strings.TrimSuffix(c.Multifile, filepath.Ext(c.Multifile))
		fmt.Printf("Files exported: %s.txt and %s.json\n", base, base)
		return nil

	case c.Stats:
		return exporter.WriteStats(os.Stdout, table, stats)

	case c.JSON:
		return exporter.WriteCountsJSON(os.Stdout, table, stats)

	case c.Table:
		return exporter.WriteTable(os.Stdout, table)

	case c.Chart:
		top := c.Top
		if top < 0 {
			top = 10
		}
		return exporter.WriteHistogram(os.Stdout, table, top, c.Width)

	case c.Sort || c.Top >= 0:
		return exporter.WriteSortedCounts(os.Stdout, table, c.Top)

	default:
		return exporter.WriteCounts(os.Stdout, table)
	}
}

func (c *CountCmd) readInput() ([]byte, error) {
	if c.File != "" {
		data, err := os.ReadFile(c.File)
		if err != nil {
			return nil, fmt.Errorf("error reading file: %w", err)
		}
		return data, nil
	}

	// Check if stdin is a pipe or has data
	stat, err := os.Stdin.Stat()
	if err != nil {
		return nil, fmt.Errorf("error checking stdin: %w", err)
	}

	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return nil, fmt.Errorf("no input file and stdin is not a pipe")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("error reading from stdin: %w", err)
	}
	return data, nil
}

type EditCmd struct {
	Mode string `arg:"" enum:"tabs,spaces" help:"Conversion mode: 'tabs' converts indentation to tabs, 'spaces' to spaces."`
	In   string `arg:"" help:"Input file."`
	Out  string `arg:"" help:"Output file."`
}

func (c *EditCmd) Run() error {
	var transform editor.Transform
	if c.Mode == "tabs" {
		transform = editor.SpacesToTabs
	} else {
		transform = editor.TabsToSpaces
	}

	return editor.Edit(c.In, c.Out, transform)
}

type FilterCmd struct {
	Dir    string   `arg:"" help:"Directory to list."`
	Suffix []string `short:"x" help:"Keep only names ending with one of these suffixes."`
}

func (c *FilterCmd) Run() error {
	filters := fn.Map(c.Suffix, filefilter.Suffix)

	names, err := filefilter.List(c.Dir, filefilter.Any(filters...))
	if err != nil {
		return err
	}

	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("wordfreq"),
		kong.Description("Count word frequencies in text files."),
		kong.UsageOnError(),
	)

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
