// Package goquery inspects structured data in HTML pages using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/faqstrip"
	"github.com/fwojciec/faqstrip/jsonld"
)

// Ensure Inspector implements faqstrip.SchemaInspector at compile time.
var _ faqstrip.SchemaInspector = (*Inspector)(nil)

// Inspector lists every JSON-LD object embedded in an HTML document,
// regardless of type.
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Inspect decodes each script[type="application/ld+json"] element in
// document order. Elements that cannot be decoded yield a schema with an
// empty type.
func (i *Inspector) Inspect(html string) ([]*faqstrip.Schema, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, faqstrip.Errorf(faqstrip.EINVALID, "cannot parse HTML: %v", err)
	}

	var schemas []*faqstrip.Schema
	doc.Find("script").Each(func(_ int, sel *goquery.Selection) {
		typ, _ := sel.Attr("type")
		if !strings.EqualFold(strings.TrimSpace(typ), "application/ld+json") {
			return
		}
		s, err := jsonld.Parse("<script>" + sel.Text() + "</script>")
		if err != nil {
			s = &faqstrip.Schema{}
		}
		schemas = append(schemas, s)
	})

	return schemas, nil
}
