package jsonld

import "github.com/fwojciec/faqstrip"

// Ensure BlockInspector implements faqstrip.SchemaInspector at compile time.
var _ faqstrip.SchemaInspector = (*BlockInspector)(nil)

// BlockInspector decodes the blocks a detector finds in a page.
type BlockInspector struct {
	detector faqstrip.BlockDetector
}

// NewBlockInspector creates a BlockInspector backed by detector.
func NewBlockInspector(detector faqstrip.BlockDetector) *BlockInspector {
	return &BlockInspector{detector: detector}
}

// Inspect returns one schema per detected block. Blocks that cannot be
// decoded yield a schema with an empty type rather than failing the page.
func (i *BlockInspector) Inspect(content string) ([]*faqstrip.Schema, error) {
	blocks := i.detector.Detect(content)
	schemas := make([]*faqstrip.Schema, 0, len(blocks))
	for _, b := range blocks {
		s, err := Parse(b.Text)
		if err != nil {
			s = &faqstrip.Schema{}
		}
		schemas = append(schemas, s)
	}
	return schemas, nil
}
