package components

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameinfo/internal/card"
	"gameinfo/internal/viewmodel"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func sampleInfo() card.GameInfo {
	return card.GameInfo{
		Image: "https://cdn.example.com/starfall.png",
		Title: "Starfall Tactics",
		Developer: card.Developer{
			Name: "Nebula Forge",
			URL:  "https://nebulaforge.example.com",
			Logo: "https://cdn.example.com/nebula.png",
		},
		Rating:      4.7,
		Status:      card.StatusActive,
		Description: "Turn-based fleet combat across a collapsing galaxy.",
		Players:     card.IntPtr(1500),
		Community:   card.IntPtr(2_500_000),
		Categories:  []string{"Strategy", "Sci-Fi"},
		Platforms:   []string{"PC", "Switch"},
	}
}

func TestGameInfoCard_Layout(t *testing.T) {
	out := renderString(t, GameInfoCard(sampleInfo()))

	assert.Contains(t, out, "Write Your Review")
	assert.Contains(t, out, `src="https://cdn.example.com/starfall.png"`)
	assert.Contains(t, out, `alt="Starfall Tactics"`)
	assert.Contains(t, out, `<h3 class="text-lg font-bold">Starfall Tactics</h3>`)
	assert.Contains(t, out, `href="https://nebulaforge.example.com"`)
	assert.Contains(t, out, ">Nebula Forge</a>")
	assert.Contains(t, out, `data-section="rating">4.7</div>`)
	assert.Contains(t, out, "Turn-based fleet combat across a collapsing galaxy.")
	assert.Contains(t, out, "1.5K+")
	assert.Contains(t, out, "2.5M+")

	order := []string{
		`data-action="review"`,
		`data-section="media"`,
		`data-section="identity"`,
		`data-section="description"`,
		`data-section="stats"`,
		`data-section="categories"`,
		`data-section="platforms"`,
		`data-section="footer"`,
	}
	last := -1
	for _, marker := range order {
		idx := strings.Index(out, marker)
		require.NotEqual(t, -1, idx, "missing %s", marker)
		assert.Greater(t, idx, last, "%s out of order", marker)
		last = idx
	}
}

func TestGameInfoCard_StatusBadge(t *testing.T) {
	cases := map[card.Status]string{
		card.StatusActive:    `bg-green-600" data-section="status">Active</span>`,
		card.StatusUpcoming:  `bg-yellow-500" data-section="status">Upcoming</span>`,
		card.StatusCompleted: `bg-gray-600" data-section="status">Completed</span>`,
	}
	for status, want := range cases {
		info := sampleInfo()
		info.Status = status
		assert.Contains(t, renderString(t, GameInfoCard(info)), want)
	}
}

func TestGameInfoCard_MissingCountsRenderNA(t *testing.T) {
	info := sampleInfo()
	info.Players = nil
	info.Community = card.IntPtr(0)
	out := renderString(t, GameInfoCard(info))
	assert.Equal(t, 2, strings.Count(out, `<p class="text-white font-semibold">N/A</p>`))
}

func TestGameInfoCard_CategoriesPreserveOrder(t *testing.T) {
	info := sampleInfo()
	info.Categories = []string{"RPG", "Action", "RPG"}
	info.Platforms = nil
	out := renderString(t, GameInfoCard(info))
	assert.Contains(t, out, `>RPG</span><span class="tag bg-green-600 text-xs px-3 py-1 rounded-md">Action</span><span class="tag bg-green-600 text-xs px-3 py-1 rounded-md">RPG</span>`)
}

func TestGameInfoCard_EmptyCategoriesKeepContainer(t *testing.T) {
	info := sampleInfo()
	info.Categories = nil
	info.Platforms = nil
	out := renderString(t, GameInfoCard(info))
	assert.Contains(t, out, `<div class="flex flex-wrap gap-2 mt-3" data-section="categories"></div>`)
	assert.NotContains(t, out, `class="tag`)
}

func TestGameInfoCard_EmptyPlatformsOmitSection(t *testing.T) {
	info := sampleInfo()
	info.Platforms = []string{}
	out := renderString(t, GameInfoCard(info))
	assert.NotContains(t, out, `data-section="platforms"`)
	assert.NotContains(t, out, ">Platforms</p>")

	info.Platforms = []string{"PC"}
	out = renderString(t, GameInfoCard(info))
	assert.Contains(t, out, `data-section="platforms"`)
	assert.Contains(t, out, ">Platforms</p>")
	assert.Contains(t, out, `bg-blue-600 text-xs px-3 py-1 rounded-md">PC</span>`)
}

func TestGameInfoCard_SocialLinksAndShare(t *testing.T) {
	out := renderString(t, GameInfoCard(sampleInfo()))
	assert.Equal(t, 4, strings.Count(out, `<a href="#"`))
	for _, icon := range []IconName{IconTwitter, IconDiscord, IconTelegram, IconGlobe, IconShare} {
		assert.Contains(t, out, string(icon))
	}
	assert.Equal(t, 1, strings.Count(out, `data-action="share"`))
}

func TestGameInfoCard_FeedbackToggle(t *testing.T) {
	info := sampleInfo()
	out := renderString(t, GameInfoCard(info))
	assert.NotContains(t, out, `data-action="feedback"`)
	assert.NotContains(t, out, string(IconComment))

	info.ShowFeedback = true
	out = renderString(t, GameInfoCard(info))
	assert.Equal(t, 1, strings.Count(out, `data-action="feedback"`))
	assert.Contains(t, out, string(IconComment))
}

func TestGameInfoCard_AdditionalActionsSlot(t *testing.T) {
	info := sampleInfo()
	out := renderString(t, GameInfoCard(info))
	assert.NotContains(t, out, `data-section="additional-actions"`)

	info.AdditionalActions = templ.Raw(`<button id="wishlist">Wishlist</button>`)
	out = renderString(t, GameInfoCard(info))
	assert.Equal(t, 1, strings.Count(out, `<button id="wishlist">Wishlist</button>`))
	assert.Contains(t, out, `<div class="mt-3" data-section="additional-actions"><button id="wishlist">Wishlist</button></div>`)
	assert.Greater(t, strings.Index(out, `data-section="additional-actions"`), strings.Index(out, `data-section="footer"`))
}

func TestGameInfoCard_EscapesText(t *testing.T) {
	info := sampleInfo()
	info.Title = `<script>alert("x")</script>`
	info.Description = "Tom & Jerry"
	info.Developer.URL = "javascript:alert(1)"
	out := renderString(t, GameInfoCard(info))
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "Tom &amp; Jerry")
	assert.NotContains(t, out, "javascript:")
}

func TestGameInfoCard_Idempotent(t *testing.T) {
	info := sampleInfo()
	info.ShowFeedback = true
	info.AdditionalActions = ActionLinks([]viewmodel.ActionLink{{Label: "Play", URL: "https://play.example.com"}})
	first := renderString(t, GameInfoCard(info))
	second := renderString(t, GameInfoCard(info))
	assert.Equal(t, first, second)
}

func TestGameInfoCard_DoesNotMutateInput(t *testing.T) {
	info := sampleInfo()
	categories := append([]string(nil), info.Categories...)
	_ = renderString(t, GameInfoCard(info))
	assert.Equal(t, categories, info.Categories)
	assert.Equal(t, 1500, *info.Players)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestGameInfoCard_ReturnsWriterError(t *testing.T) {
	err := GameInfoCard(sampleInfo()).Render(context.Background(), failingWriter{})
	require.Error(t, err)
}

func TestGameInfoCard_PropagatesSlotError(t *testing.T) {
	info := sampleInfo()
	info.AdditionalActions = templ.ComponentFunc(func(context.Context, io.Writer) error {
		return errors.New("slot failed")
	})
	err := GameInfoCard(info).Render(context.Background(), &bytes.Buffer{})
	require.EqualError(t, err, "slot failed")
}

func TestGameInfoCard_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	err := GameInfoCard(sampleInfo()).Render(ctx, &buf)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, buf.Len())
}

func TestIcon(t *testing.T) {
	assert.Equal(t, `<i class="fa-solid fa-globe text-lg" aria-hidden="true"></i>`, renderString(t, Icon(IconGlobe)))
}

func TestActionLinks(t *testing.T) {
	out := renderString(t, ActionLinks([]viewmodel.ActionLink{
		{Label: "Play now", URL: "https://play.example.com"},
		{Label: "Trailer", URL: "https://video.example.com/t"},
	}))
	assert.Contains(t, out, `href="https://play.example.com"`)
	assert.Contains(t, out, ">Play now</a>")
	assert.Contains(t, out, ">Trailer</a>")
	assert.Contains(t, out, `<div class="flex gap-2"><a href="https://play.example.com" class="flex-1`)

	unsafe := renderString(t, ActionLinks([]viewmodel.ActionLink{{Label: "x", URL: "javascript:alert(1)"}}))
	assert.NotContains(t, unsafe, "javascript:")

	assert.Empty(t, renderString(t, ActionLinks(nil)))
}

func TestCardGrid(t *testing.T) {
	out := renderString(t, CardGrid(viewmodel.GridFragment{
		Deck: "featured",
		Cards: []viewmodel.CardEntry{
			{Slug: "starfall", Info: sampleInfo()},
		},
	}))
	assert.Contains(t, out, `id="card-grid"`)
	assert.Contains(t, out, `data-deck="featured"`)
	assert.Contains(t, out, `id="card-starfall"`)

	empty := renderString(t, CardGrid(viewmodel.GridFragment{Deck: "empty"}))
	assert.Contains(t, empty, "no cards yet")
}
