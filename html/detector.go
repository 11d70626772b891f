// Package html provides detection of structured-data blocks in HTML pages
// using the golang.org/x/net/html tokenizer.
package html

import (
	"bytes"
	"strings"

	"github.com/fwojciec/faqstrip"
	"golang.org/x/net/html"
)

// Ensure ScriptDetector implements faqstrip.BlockDetector at compile time.
var _ faqstrip.BlockDetector = (*ScriptDetector)(nil)

const ldJSONType = "application/ld+json"

// ScriptDetector finds <script type="application/ld+json"> elements whose
// body contains the marker. Offsets are tracked from the raw token text, so
// each block covers exactly the element from "<script" through "</script>".
type ScriptDetector struct {
	marker string
}

// NewScriptDetector creates a ScriptDetector for the given schema type.
// An empty marker selects faqstrip.DefaultMarker.
func NewScriptDetector(marker string) *ScriptDetector {
	if marker == "" {
		marker = faqstrip.DefaultMarker
	}
	return &ScriptDetector{marker: marker}
}

// Detect tokenizes content and returns matching script elements in order.
func (d *ScriptDetector) Detect(content string) []faqstrip.Block {
	var blocks []faqstrip.Block

	z := html.NewTokenizer(strings.NewReader(content))

	offset := 0
	inScript := false
	start := 0
	var body strings.Builder

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// The reader is a string, so this is io.EOF.
			return blocks
		}

		tokenStart := offset
		offset += len(z.Raw())

		switch tt {
		case html.StartTagToken:
			name, hasAttr := z.TagName()
			if string(name) == "script" && hasAttr && isLDJSON(z) {
				inScript = true
				start = tokenStart
				body.Reset()
			}
		case html.TextToken:
			if inScript {
				body.Write(z.Raw())
			}
		case html.EndTagToken:
			if !inScript {
				continue
			}
			if name, _ := z.TagName(); string(name) != "script" {
				continue
			}
			if strings.Contains(body.String(), d.marker) {
				blocks = append(blocks, faqstrip.NewBlock(content, start, offset, d.Name()))
			}
			inScript = false
		}
	}
}

// Name returns "html".
func (d *ScriptDetector) Name() string {
	return "html"
}

// isLDJSON reads the remaining attributes of the current tag and reports
// whether its type is application/ld+json.
func isLDJSON(z *html.Tokenizer) bool {
	for {
		key, val, more := z.TagAttr()
		if string(key) == "type" && bytes.EqualFold(bytes.TrimSpace(val), []byte(ldJSONType)) {
			return true
		}
		if !more {
			return false
		}
	}
}
