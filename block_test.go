package faqstrip_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/faqstrip"
	"github.com/stretchr/testify/assert"
)

func TestNewBlock(t *testing.T) {
	t.Parallel()

	content := "line1\n<script>\n{}\n</script>\nline5\n"
	start := strings.Index(content, "<script>")
	end := strings.Index(content, "line5")

	b := faqstrip.NewBlock(content, start, end, "linescan")

	assert.Equal(t, "<script>\n{}\n</script>\n", b.Text)
	assert.Equal(t, 2, b.StartLine)
	assert.Equal(t, 4, b.EndLine)
	assert.Equal(t, "linescan", b.Source)
}

func TestRemoveBlocks(t *testing.T) {
	t.Parallel()

	t.Run("removes by span", func(t *testing.T) {
		t.Parallel()

		content := "aXXbYYc"
		blocks := []faqstrip.Block{
			faqstrip.NewBlock(content, 1, 3, "test"),
			faqstrip.NewBlock(content, 4, 6, "test"),
		}

		out, changed := faqstrip.RemoveBlocks(content, blocks)

		assert.True(t, changed)
		assert.Equal(t, "abc", out)
	})

	t.Run("removes only the detected occurrence of repeated text", func(t *testing.T) {
		t.Parallel()

		content := "<s/>keep<s/>"
		blocks := []faqstrip.Block{faqstrip.NewBlock(content, 8, 12, "test")}

		out, changed := faqstrip.RemoveBlocks(content, blocks)

		assert.True(t, changed)
		assert.Equal(t, "<s/>keep", out)
	})

	t.Run("falls back to first occurrence per block without spans", func(t *testing.T) {
		t.Parallel()

		content := "<s/>a<s/>b<s/>"
		blocks := []faqstrip.Block{{Text: "<s/>"}, {Text: "<s/>"}}

		out, changed := faqstrip.RemoveBlocks(content, blocks)

		assert.True(t, changed)
		assert.Equal(t, "ab<s/>", out)
	})

	t.Run("falls back when spans overlap", func(t *testing.T) {
		t.Parallel()

		content := "abcdef"
		blocks := []faqstrip.Block{
			{Start: 0, End: 3, Text: "abc"},
			{Start: 2, End: 4, Text: "cd"},
		}

		out, changed := faqstrip.RemoveBlocks(content, blocks)

		assert.True(t, changed)
		assert.Equal(t, "def", out)
	})

	t.Run("reports unchanged when text is absent", func(t *testing.T) {
		t.Parallel()

		out, changed := faqstrip.RemoveBlocks("content", []faqstrip.Block{{Text: "missing"}})

		assert.False(t, changed)
		assert.Equal(t, "content", out)
	})

	t.Run("reports unchanged for no blocks", func(t *testing.T) {
		t.Parallel()

		out, changed := faqstrip.RemoveBlocks("content", nil)

		assert.False(t, changed)
		assert.Equal(t, "content", out)
	})
}
