package faqstrip

import "strings"

// DefaultMarker is the schema type whose blocks are removed.
const DefaultMarker = "FAQPage"

// Block is a structured-data script block found in a page source.
type Block struct {
	// Byte offsets into the scanned content, half-open.
	Start int `json:"start"`
	End   int `json:"end"`

	// Line range, 1-based and inclusive.
	StartLine int `json:"startLine"`
	EndLine   int `json:"endLine"`

	// Text is the verbatim source of the block.
	Text string `json:"text"`

	// Source names the detector that found the block.
	Source string `json:"source"`
}

// NewBlock returns the block spanning content[start:end].
func NewBlock(content string, start, end int, source string) Block {
	text := content[start:end]
	startLine := strings.Count(content[:start], "\n") + 1
	endLine := startLine + strings.Count(strings.TrimSuffix(text, "\n"), "\n")
	return Block{
		Start:     start,
		End:       end,
		StartLine: startLine,
		EndLine:   endLine,
		Text:      text,
		Source:    source,
	}
}

// BlockDetector finds structured-data blocks in page source text.
type BlockDetector interface {
	// Detect returns matching blocks in order of appearance.
	// Returns nil if nothing matches.
	Detect(content string) []Block

	// Name returns the detector's identifier (e.g., "pattern", "linescan").
	Name() string
}

// RemoveBlocks deletes each block from content exactly once, in order.
//
// When every block span is valid for content the blocks are cut out by
// position. Otherwise each block's text replaces its first occurrence in the
// working copy, so a text repeated in the file loses one occurrence per
// detected block rather than all of them.
func RemoveBlocks(content string, blocks []Block) (string, bool) {
	if len(blocks) == 0 {
		return content, false
	}

	var out string
	if spansValid(content, blocks) {
		var b strings.Builder
		b.Grow(len(content))
		pos := 0
		for _, blk := range blocks {
			b.WriteString(content[pos:blk.Start])
			pos = blk.End
		}
		b.WriteString(content[pos:])
		out = b.String()
	} else {
		out = content
		for _, blk := range blocks {
			if blk.Text == "" {
				continue
			}
			out = strings.Replace(out, blk.Text, "", 1)
		}
	}

	return out, out != content
}

func spansValid(content string, blocks []Block) bool {
	pos := 0
	for _, b := range blocks {
		if b.Start < pos || b.End < b.Start || b.End > len(content) {
			return false
		}
		if content[b.Start:b.End] != b.Text {
			return false
		}
		pos = b.End
	}
	return true
}
