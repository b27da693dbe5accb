package pages

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameinfo/internal/viewmodel"
)

func TestIndexPage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, IndexPage(viewmodel.IndexPage{
		Title: "Game cards",
		Decks: []viewmodel.DeckSummary{{Name: "indie", Title: "Indie <picks>", CardCount: 3}},
	}).Render(context.Background(), &buf))

	out := buf.String()
	assert.Contains(t, out, "<title>Game cards</title>")
	assert.Contains(t, out, `href="/decks/indie"`)
	assert.Contains(t, out, "Indie &lt;picks&gt;")
	assert.Contains(t, out, "(3 cards)")
	assert.Contains(t, out, `</a> <span class="text-gray-400 text-sm">(3 cards)</span>`)
}

func TestLayout_WrapsPageBody(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, IndexPage(viewmodel.IndexPage{Title: "Game cards"}).Render(context.Background(), &buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!doctype html><html lang=\"en\">"), out)
	assert.Contains(t, out, `<main class="max-w-6xl mx-auto p-6"><h1 class="text-2xl font-bold mb-6">Game cards</h1>`)
	assert.True(t, strings.HasSuffix(out, "</main></body></html>"), out)
	assert.Contains(t, out, "htmx.org@1.9.12/dist/ext/sse.js")
}

func TestIndexPage_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, IndexPage(viewmodel.IndexPage{Title: "Game cards"}).Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), "No decks loaded.")
}

func TestGalleryPage_LiveReload(t *testing.T) {
	data := viewmodel.GalleryPage{
		Title:      "Indie",
		Deck:       "indie",
		StreamURL:  "/decks/indie/stream",
		LiveReload: true,
		Grid:       viewmodel.GridFragment{Deck: "indie"},
	}
	var buf bytes.Buffer
	require.NoError(t, GalleryPage(data).Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), `sse-connect="/decks/indie/stream" sse-swap="cards"`)
	assert.Contains(t, buf.String(), `id="card-grid"`)

	data.LiveReload = false
	buf.Reset()
	require.NoError(t, GalleryPage(data).Render(context.Background(), &buf))
	assert.NotContains(t, buf.String(), "sse-connect")
}
