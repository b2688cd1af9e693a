package exporter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mbakhoff/wordfreq/internal/counter"
	"github.com/mbakhoff/wordfreq/internal/types"
)

type MetadataFile struct {
	Version   string           `json:"version"`
	CountFile string           `json:"count_file"`
	Stats     types.TokenStats `json:"stats"`
	Counts    []types.Entry    `json:"counts"`
}

// ExportToMultifile exports the frequency table to two files:
// - .txt : the plain "word: count" lines
// - .json : the statistics and counts as structured metadata
func ExportToMultifile(table *counter.Table, stats types.TokenStats, basePath string) error {
	// Remove ext if exists
	basePath = strings.TrimSuffix(basePath, filepath.Ext(basePath))

	txtPath := basePath + ".txt"
	jsonPath := basePath + ".json"

	txtFile, err := os.Create(txtPath)
	if err != nil {
		return fmt.Errorf("error creating .txt file: %w", err)
	}
	defer txtFile.Close()

	if err := WriteSortedCounts(txtFile, table, -1); err != nil {
		return fmt.Errorf("error writing .txt file: %w", err)
	}

	metadata := MetadataFile{
		Version:   "1.0",
		CountFile: filepath.Base(txtPath),
		Stats:     stats,
		Counts:    table.SortedEntries(),
	}

	data, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON serialization error: %w", err)
	}

	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return fmt.Errorf("error writing .json file: %w", err)
	}

	return nil
}
