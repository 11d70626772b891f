package html_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/faqstrip"
	"github.com/fwojciec/faqstrip/html"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure ScriptDetector implements faqstrip.BlockDetector at compile time.
var _ faqstrip.BlockDetector = (*html.ScriptDetector)(nil)

const faqScript = `<script type="application/ld+json">
{"@context": "https://schema.org", "@type": "FAQPage", "mainEntity": [{"@type": "Question", "name": "When?"}]}
</script>`

const orgScript = `<script type="application/ld+json">{"@context": "https://schema.org", "@type": "Organization"}</script>`

func TestScriptDetector_Detect(t *testing.T) {
	t.Parallel()

	t.Run("finds exact span of FAQ script", func(t *testing.T) {
		t.Parallel()

		content := "<!DOCTYPE html>\n<html>\n<head>\n<title>Film</title>\n" + faqScript + "\n</head>\n<body><p>Body</p></body>\n</html>\n"

		blocks := html.NewScriptDetector("").Detect(content)

		require.Len(t, blocks, 1)
		assert.Equal(t, faqScript, blocks[0].Text)
		assert.Equal(t, strings.Index(content, "<script"), blocks[0].Start)
		assert.Equal(t, 5, blocks[0].StartLine)
		assert.Equal(t, 7, blocks[0].EndLine)
		assert.Equal(t, "html", blocks[0].Source)
	})

	t.Run("skips other schema types and plain scripts", func(t *testing.T) {
		t.Parallel()

		content := "<head>" + orgScript + `<script>var t = "FAQPage";</script></head>`

		blocks := html.NewScriptDetector("").Detect(content)

		assert.Empty(t, blocks)
	})

	t.Run("matches type attribute case-insensitively among other attributes", func(t *testing.T) {
		t.Parallel()

		script := `<script id="faq" TYPE="Application/LD+JSON" data-x="1">{"@type":"FAQPage"}</script>`
		content := "<head>" + orgScript + script + "</head>"

		blocks := html.NewScriptDetector("").Detect(content)

		require.Len(t, blocks, 1)
		assert.Equal(t, script, blocks[0].Text)
	})

	t.Run("finds several blocks in order", func(t *testing.T) {
		t.Parallel()

		content := faqScript + "\n" + orgScript + "\n" + faqScript + "\n"

		blocks := html.NewScriptDetector("").Detect(content)

		require.Len(t, blocks, 2)
		assert.Equal(t, 0, blocks[0].Start)
		assert.Equal(t, faqScript, blocks[1].Text)
		removed, changed := faqstrip.RemoveBlocks(content, blocks)
		assert.True(t, changed)
		assert.Equal(t, "\n"+orgScript+"\n\n", removed)
	})

	t.Run("uses custom marker", func(t *testing.T) {
		t.Parallel()

		blocks := html.NewScriptDetector("Organization").Detect(faqScript + orgScript)

		require.Len(t, blocks, 1)
		assert.Equal(t, orgScript, blocks[0].Text)
	})

	t.Run("returns nil for empty input", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, html.NewScriptDetector("").Detect(""))
	})
}
