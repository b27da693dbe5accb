package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	flagSlug = ""
	flagWidth = 48
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestList_EmbeddedDeck(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "starfall-tactics")
	assert.Contains(t, out, "Upcoming")
}

func TestRender_Slug(t *testing.T) {
	out, err := run(t, "render", "--slug", "starfall-tactics")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, `class="game-card`))
	assert.Contains(t, out, "Starfall Tactics")
	assert.Contains(t, out, `data-section="additional-actions"`)
}

func TestRender_UnknownSlug(t *testing.T) {
	_, err := run(t, "render", "--slug", "nope")
	require.Error(t, err)
}

func TestPreview_DeckFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mini.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
cards:
  - slug: solo
    title: Solo Run
    status: completed
    platforms: [PC]
`), 0o644))
	out, err := run(t, "preview", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Solo Run")
	assert.Contains(t, out, "Completed")
	assert.Contains(t, out, "Platforms")
}
