package mock

import "github.com/fwojciec/faqstrip"

var _ faqstrip.BlockDetector = (*BlockDetector)(nil)

// BlockDetector is a mock implementation of faqstrip.BlockDetector.
type BlockDetector struct {
	DetectFn func(content string) []faqstrip.Block
	NameFn   func() string
}

func (d *BlockDetector) Detect(content string) []faqstrip.Block {
	return d.DetectFn(content)
}

func (d *BlockDetector) Name() string {
	if d.NameFn == nil {
		return "mock"
	}
	return d.NameFn()
}
