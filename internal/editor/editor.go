package editor

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Transform rewrites a single line of text. The line is passed without its
// trailing newline.
type Transform func(string) string

const indentWidth = 4

func TabsToSpaces(line string) string {
	return strings.ReplaceAll(line, "\t", strings.Repeat(" ", indentWidth))
}

func SpacesToTabs(line string) string {
	return strings.ReplaceAll(line, strings.Repeat(" ", indentWidth), "\t")
}

// Edit reads inPath line by line, applies the transform to each line and
// writes the result to outPath, terminating every line with "\n".
func Edit(inPath, outPath string, transform Transform) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("error reading input file: %w", err)
	}

	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer outFile.Close()

	writer := bufio.NewWriter(outFile)
	for _, line := range splitLines(string(data)) {
		if _, err := writer.WriteString(transform(line)); err != nil {
			return fmt.Errorf("error writing output file: %w", err)
		}
		if _, err := writer.WriteString("\n"); err != nil {
			return fmt.Errorf("error writing output file: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("error writing output file: %w", err)
	}

	return nil
}

// splitLines splits content into lines without their terminators. A trailing
// newline does not produce an empty final line.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.TrimSuffix(content, "\n")

	return strings.Split(content, "\n")
}
