package filefilter

import (
	"fmt"
	"os"
	"strings"

	"github.com/mbakhoff/wordfreq/internal/fn"
)

// Filter decides whether a directory entry name is kept.
type Filter func(name string) bool

// Suffix returns a filter keeping names that end with suffix.
func Suffix(suffix string) Filter {
	return func(name string) bool {
		return strings.HasSuffix(name, suffix)
	}
}

// Any combines filters; a name is kept when at least one filter accepts it.
// With no filters every name is kept.
func Any(filters ...Filter) Filter {
	return func(name string) bool {
		if len(filters) == 0 {
			return true
		}
		for _, filter := range filters {
			if filter(name) {
				return true
			}
		}
		return false
	}
}

// List returns the names of the regular files in dir accepted by the filter,
// in directory order.
func List(dir string, filter Filter) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading directory: %w", err)
	}

	files := fn.Filter(entries, func(entry os.DirEntry) bool {
		return !entry.IsDir()
	})

	names := fn.Map(files, func(entry os.DirEntry) string {
		return entry.Name()
	})

	return fn.Filter(names, filter), nil
}
