package detect

import (
	"strings"

	"github.com/fwojciec/faqstrip"
)

var _ faqstrip.BlockDetector = (*LineScanDetector)(nil)

// LineScanDetector finds JSON-LD script blocks by scanning lines and counting
// braces. It tolerates formatting the pattern detector rejects, such as a
// different attribute order or a script body instead of an inline attribute.
//
// A line containing both "<script" and "application/ld+json" opens a block.
// The block closes on the first line that brings the brace depth back to
// zero or below and either contains "</script>" or ends a self-closing tag.
// Blocks without the marker are skipped.
type LineScanDetector struct {
	marker string
}

// NewLineScanDetector creates a LineScanDetector for the given schema type.
// An empty marker selects faqstrip.DefaultMarker.
func NewLineScanDetector(marker string) *LineScanDetector {
	if marker == "" {
		marker = faqstrip.DefaultMarker
	}
	return &LineScanDetector{marker: marker}
}

// Detect scans content line by line. Each block includes the newline that
// terminates its closing line.
func (d *LineScanDetector) Detect(content string) []faqstrip.Block {
	var blocks []faqstrip.Block

	inBlock := false
	start, depth, offset := 0, 0, 0

	for _, line := range strings.SplitAfter(content, "\n") {
		lineStart := offset
		offset += len(line)

		if strings.Contains(line, "<script") && strings.Contains(line, "application/ld+json") {
			inBlock = true
			start = lineStart
			depth = 0
		}
		if !inBlock {
			continue
		}

		depth += strings.Count(line, "{") - strings.Count(line, "}")

		if depth <= 0 && closesScript(line) {
			if strings.Contains(content[start:offset], d.marker) {
				blocks = append(blocks, faqstrip.NewBlock(content, start, offset, d.Name()))
			}
			inBlock = false
		}
	}

	return blocks
}

// Name returns "linescan".
func (d *LineScanDetector) Name() string {
	return "linescan"
}

func closesScript(line string) bool {
	return strings.Contains(line, "</script>") || strings.HasSuffix(strings.TrimSpace(line), "/>")
}
