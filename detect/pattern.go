// Package detect provides text-based detectors for structured-data blocks
// embedded in page sources.
package detect

import (
	"regexp"

	"github.com/fwojciec/faqstrip"
)

var _ faqstrip.BlockDetector = (*PatternDetector)(nil)

// PatternDetector matches the inline TSX form of a JSON-LD script tag:
//
//	<script type="application/ld+json" dangerouslySetInnerHTML={{ __html: JSON.stringify({
//	  '@context': 'https://schema.org', '@type': 'FAQPage', ...
//	}) }} />
//
// Attributes must appear in that order. The match is non-greedy up to the
// nearest `}) }} />` and does not consume trailing whitespace.
type PatternDetector struct {
	re *regexp.Regexp
}

// NewPatternDetector creates a PatternDetector for blocks of the given schema type.
// An empty marker selects faqstrip.DefaultMarker.
func NewPatternDetector(marker string) *PatternDetector {
	if marker == "" {
		marker = faqstrip.DefaultMarker
	}
	return &PatternDetector{re: regexp.MustCompile(blockPattern(regexp.QuoteMeta(marker)))}
}

// NewAnyTypePatternDetector creates a PatternDetector that matches blocks of
// every schema type.
func NewAnyTypePatternDetector() *PatternDetector {
	return &PatternDetector{re: regexp.MustCompile(blockPattern(`[^'"]+`))}
}

func blockPattern(typeExpr string) string {
	const q = `['"]`
	return `(?s)<script\s+type="application/ld\+json"\s+dangerouslySetInnerHTML=\{\{\s*__html:\s*JSON\.stringify\(\{\s*` +
		q + `@context` + q + `:\s*` + q + `https?://schema\.org/?` + q + `,\s*` +
		q + `@type` + q + `:\s*` + q + `(?:` + typeExpr + `)` + q +
		`.*?\}\)\s*\}\s*\}\s*/>`
}

// Detect returns every non-overlapping match in order of appearance.
func (d *PatternDetector) Detect(content string) []faqstrip.Block {
	locs := d.re.FindAllStringIndex(content, -1)
	if len(locs) == 0 {
		return nil
	}
	blocks := make([]faqstrip.Block, 0, len(locs))
	for _, loc := range locs {
		blocks = append(blocks, faqstrip.NewBlock(content, loc[0], loc[1], d.Name()))
	}
	return blocks
}

// Name returns "pattern".
func (d *PatternDetector) Name() string {
	return "pattern"
}
