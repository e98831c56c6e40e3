package core_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikipub/wikipub/pkg/core"
)

func TestStripFrontmatter(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		got := core.StripFrontmatter("---\nfoo: bar\n---\nBody text")
		assert.Equal(t, "Body text", got)
	})

	t.Run("absent", func(t *testing.T) {
		raw := "# Heading\n\nJust markdown."
		assert.Equal(t, raw, core.StripFrontmatter(raw))
	})

	t.Run("unterminated block left untouched", func(t *testing.T) {
		raw := "---\nfoo: bar\nno closing fence"
		assert.Equal(t, raw, core.StripFrontmatter(raw))
	})

	t.Run("block not at start left untouched", func(t *testing.T) {
		raw := "\n---\nfoo: bar\n---\nBody"
		assert.Equal(t, raw, core.StripFrontmatter(raw))
	})

	t.Run("crlf", func(t *testing.T) {
		got := core.StripFrontmatter("---\r\nfoo: bar\r\n---\r\nBody")
		assert.Equal(t, "Body", got)
	})

	t.Run("empty block", func(t *testing.T) {
		got := core.StripFrontmatter("---\n---\nBody")
		assert.Equal(t, "Body", got)
	})

	t.Run("horizontal rule later in body survives", func(t *testing.T) {
		got := core.StripFrontmatter("---\nfoo: bar\n---\nabove\n\n---\n\nbelow")
		assert.Equal(t, "above\n\n---\n\nbelow", got)
	})
}

func TestParse_FieldOrder(t *testing.T) {
	raw := "---\nzebra: stripes\nalpha: first\nmango: fruit\n---\nBody"
	n, err := core.Parse(strings.NewReader(raw))
	require.NoError(t, err)

	require.Len(t, n.Fields, 3)
	assert.Equal(t, core.Field{Key: "zebra", Value: "stripes"}, n.Fields[0])
	assert.Equal(t, core.Field{Key: "alpha", Value: "first"}, n.Fields[1])
	assert.Equal(t, core.Field{Key: "mango", Value: "fruit"}, n.Fields[2])
	assert.Equal(t, "Body", n.Body)
}

func TestParse_TitleFromFrontmatter(t *testing.T) {
	n, err := core.Parse(strings.NewReader("---\ntitle: Proper Title\n---\nBody"))
	require.NoError(t, err)
	assert.Equal(t, "Proper Title", n.Title)
}

func TestParse_NoFrontmatter(t *testing.T) {
	n, err := core.Parse(strings.NewReader("plain body"))
	require.NoError(t, err)
	assert.Empty(t, n.Fields)
	assert.Empty(t, n.Title)
	assert.Equal(t, "plain body", n.Body)
}

func TestParse_NonScalarValue(t *testing.T) {
	n, err := core.Parse(strings.NewReader("---\ntags:\n  - a\n  - b\n---\nBody"))
	require.NoError(t, err)
	require.Len(t, n.Fields, 1)
	assert.Equal(t, "tags", n.Fields[0].Key)
	assert.Equal(t, "[a b]", n.Fields[0].Value)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("title from filename", func(t *testing.T) {
		path := filepath.Join(dir, "My Page.md")
		require.NoError(t, os.WriteFile(path, []byte("---\nauthor: me\n---\nHello"), 0644))

		n, err := core.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "My Page", n.Title)
		assert.Equal(t, "Hello", n.Body)
	})

	t.Run("frontmatter title wins", func(t *testing.T) {
		path := filepath.Join(dir, "scratch.md")
		require.NoError(t, os.WriteFile(path, []byte("---\ntitle: Real Name\n---\nHello"), 0644))

		n, err := core.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "Real Name", n.Title)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := core.Load(filepath.Join(dir, "nope.md"))
		assert.Error(t, err)
	})
}
