// Package jsonld decodes structured-data blocks found in page sources.
//
// Blocks written inline in TSX are JavaScript object literals rather than
// JSON (single quotes, unquoted keys, trailing commas), so the object text
// is passed through jsonrepair before decoding.
package jsonld

import (
	"encoding/json"
	"strings"

	"github.com/fwojciec/faqstrip"
	"github.com/kaptinlin/jsonrepair"
)

const stringifyCall = "JSON.stringify("

// Parse decodes the structured-data object carried by a block. The block
// may be an inline JSON.stringify(...) attribute or a script element body.
// Returns EINVALID if no object can be decoded.
func Parse(text string) (*faqstrip.Schema, error) {
	obj := objectText(text)
	if obj == "" {
		return nil, faqstrip.Errorf(faqstrip.EINVALID, "no structured-data object found")
	}

	repaired, err := jsonrepair.JSONRepair(obj)
	if err != nil {
		return nil, faqstrip.Errorf(faqstrip.EINVALID, "cannot repair structured data: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(repaired), &raw); err != nil {
		return nil, faqstrip.Errorf(faqstrip.EINVALID, "cannot decode structured data: %v", err)
	}

	return &faqstrip.Schema{
		Context:   stringValue(raw["@context"]),
		Type:      stringValue(raw["@type"]),
		Questions: listLen(raw["mainEntity"]),
	}, nil
}

// objectText returns the object literal carried by the block, from its
// first "{" to its matching last "}".
func objectText(text string) string {
	inline := false
	if i := strings.Index(text, stringifyCall); i >= 0 {
		text = text[i+len(stringifyCall):]
		inline = true
	} else if i := strings.Index(text, ">"); i >= 0 && strings.HasPrefix(strings.TrimSpace(text), "<") {
		text = text[i+1:]
		if j := strings.LastIndex(text, "</script>"); j >= 0 {
			text = text[:j]
		}
	}

	// The stringify argument ends at the last "})"; what follows closes
	// the dangerouslySetInnerHTML attribute.
	if inline {
		if i := strings.LastIndex(text, "})"); i >= 0 {
			text = text[:i+1]
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return ""
	}
	return text[start : end+1]
}

func stringValue(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case []any:
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				return s
			}
		}
	}
	return ""
}

func listLen(v any) int {
	if l, ok := v.([]any); ok {
		return len(l)
	}
	return 0
}
