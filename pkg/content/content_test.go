package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFrontMatter(t *testing.T) {
	t.Parallel()

	page, err := Parse("about", []byte("---\ntitle: About me\ndescription: Games and collections\n---\n\n# Hello\n\nI like **chess**.\n"))
	require.NoError(t, err)
	require.Equal(t, "About me", page.Title)
	require.Equal(t, "Games and collections", page.Description)
	require.Contains(t, string(page.Body), "<h1")
	require.Contains(t, string(page.Body), "<strong>chess</strong>")
}

func TestParseWithoutFrontMatter(t *testing.T) {
	t.Parallel()

	page, err := Parse("my-hobbies", []byte("plain text"))
	require.NoError(t, err)
	require.Equal(t, "My Hobbies", page.Title)
	require.Contains(t, string(page.Body), "<p>plain text</p>")
}

func TestRenderSanitizes(t *testing.T) {
	t.Parallel()

	html, err := Render("<script>alert(1)</script>\n\n[site](https://example.com)")
	require.NoError(t, err)
	require.NotContains(t, string(html), "<script")
	require.Contains(t, string(html), `rel="nofollow"`)
}

func TestParseInvalidFrontMatter(t *testing.T) {
	t.Parallel()

	_, err := Parse("about", []byte("---\ntitle: [unclosed\n---\nbody"))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "about.md"), []byte("---\ntitle: About\n---\nHi"), 0o644))

	page, err := Load(dir, "about")
	require.NoError(t, err)
	require.Equal(t, "About", page.Title)
	require.True(t, strings.HasPrefix(string(page.Body), "<p>Hi"))

	_, err = Load(dir, "missing")
	require.True(t, errors.Is(err, ErrNotFound))

	_, err = Load(dir, "../about")
	require.True(t, errors.Is(err, ErrNotFound))
}
