// Package extract locates fenced Go code regions inside a chapter source.
// A region opens with the literal ```{go} fence on its own line and closes
// with a bare ``` fence on its own line; everything between the two is the
// block's text, captured verbatim.
package extract

import (
	"fmt"
	"os"
	"strings"
)

const (
	openFence  = "```{go}"
	closeFence = "```"
)

// Block is one fenced code region, addressed by its 1-based position in
// document order. Text is the literal content between the fences, embedded
// newlines and blank lines included.
type Block struct {
	Index int
	Text  string
}

// Load reads one chapter source from disk.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read chapter %s: %w", path, err)
	}
	return string(data), nil
}

// Extract scans source and returns its fenced Go blocks in document order.
// Pairing is non-greedy: each opener closes at the next bare fence line.
// An opener with no matching closer is not a block; blocks extracted before
// it are unaffected. Zero matches returns an empty slice, not an error.
func Extract(source string) []Block {
	var blocks []Block
	var buf strings.Builder
	inBlock := false

	for _, line := range strings.SplitAfter(source, "\n") {
		marker := strings.TrimRight(line, "\r\n")
		if !inBlock {
			if marker == openFence {
				inBlock = true
				buf.Reset()
			}
			continue
		}
		if marker == closeFence {
			inBlock = false
			blocks = append(blocks, Block{Index: len(blocks) + 1, Text: buf.String()})
			continue
		}
		buf.WriteString(line)
	}

	return blocks
}
