package faqstrip

// Schema is the decoded head of a structured-data object.
type Schema struct {
	Context string `json:"@context"`
	Type    string `json:"@type"`

	// Questions is the length of mainEntity, or 0 when it is not a list.
	Questions int `json:"questions"`
}

// SchemaInspector decodes the structured-data objects present in a page.
type SchemaInspector interface {
	Inspect(content string) ([]*Schema, error)
}
