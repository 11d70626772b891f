package detect

import (
	"strings"

	"github.com/fwojciec/faqstrip"
)

var _ faqstrip.BlockDetector = (*Chain)(nil)

// Chain tries detectors in order and returns the first non-empty result.
type Chain struct {
	detectors []faqstrip.BlockDetector
}

// NewChain creates a Chain over the given detectors.
func NewChain(detectors ...faqstrip.BlockDetector) *Chain {
	return &Chain{detectors: detectors}
}

// NewDefaultChain returns the pattern detector backed by the line scanner.
func NewDefaultChain(marker string) *Chain {
	return NewChain(NewPatternDetector(marker), NewLineScanDetector(marker))
}

// Detect returns the blocks of the first detector that finds any.
func (c *Chain) Detect(content string) []faqstrip.Block {
	for _, d := range c.detectors {
		if blocks := d.Detect(content); len(blocks) > 0 {
			return blocks
		}
	}
	return nil
}

// Name joins the member names, e.g. "pattern>linescan".
func (c *Chain) Name() string {
	names := make([]string, 0, len(c.detectors))
	for _, d := range c.detectors {
		names = append(names, d.Name())
	}
	return strings.Join(names, ">")
}
