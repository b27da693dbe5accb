package fixtures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameinfo/internal/card"
)

const validDeck = `
title: Test deck
cards:
  - slug: alpha
    title: Alpha
    status: active
    rating: 4.5
    players: 1500
    categories: [RPG, Action]
    actions:
      - label: Play
        url: https://example.com/play
  - slug: beta
    title: Beta
    status: upcoming
`

func TestParse(t *testing.T) {
	deck, err := Parse([]byte(validDeck))
	require.NoError(t, err)
	assert.Equal(t, "Test deck", deck.Title)
	require.Len(t, deck.Cards, 2)

	alpha := deck.Cards[0]
	require.NotNil(t, alpha.Players)
	assert.Equal(t, 1500, *alpha.Players)
	assert.Nil(t, alpha.Community)
	assert.Equal(t, []string{"RPG", "Action"}, alpha.Categories)
	require.Len(t, alpha.Actions, 1)
	assert.Equal(t, "Play", alpha.Actions[0].Label)

	beta := deck.Cards[1]
	assert.Empty(t, beta.Platforms)
	assert.False(t, beta.ShowFeedback)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("cards: [unterminated"))
	require.Error(t, err)
}

func TestParse_ValidationCollectsEveryProblem(t *testing.T) {
	_, err := Parse([]byte(`
cards:
  - slug: alpha
    title: Alpha
    status: paused
  - slug: alpha
    title: ""
    status: active
  - title: Gamma
    status: completed
`))
	require.Error(t, err)
	assert.ErrorIs(t, err, card.ErrInvalidStatus)
	assert.ErrorIs(t, err, ErrDuplicateSlug)
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "card 1")
	assert.Contains(t, err.Error(), "card 2")
}

func TestCard_GameInfo(t *testing.T) {
	deck, err := Parse([]byte(validDeck))
	require.NoError(t, err)
	info := deck.Cards[0].GameInfo()
	assert.Equal(t, "Alpha", info.Title)
	assert.Equal(t, card.StatusActive, info.Status)
	assert.Equal(t, 4.5, info.Rating)
	assert.Equal(t, []string{"RPG", "Action"}, info.Categories)
	assert.Nil(t, info.AdditionalActions)
}

func TestDeck_Find(t *testing.T) {
	deck, err := Parse([]byte(validDeck))
	require.NoError(t, err)
	c, ok := deck.Find("beta")
	require.True(t, ok)
	assert.Equal(t, "Beta", c.Title)
	_, ok = deck.Find("missing")
	assert.False(t, ok)
}

func TestDefault(t *testing.T) {
	deck, err := Default()
	require.NoError(t, err)
	assert.NotEmpty(t, deck.Title)
	assert.NotEmpty(t, deck.Cards)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Indie.yaml"), []byte(validDeck), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "retro.yml"), []byte(validDeck), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	decks, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"indie", "retro"}, SortedNames(decks))
}

func TestLoadDir_FailsOnInvalidDeck(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("cards:\n  - title: x\n    status: nope\n"), 0o644))
	_, err := LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml")
}

func TestLoadDir_RejectsCollidingNames(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Featured.yaml"), []byte(validDeck), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "featured.yml"), []byte(validDeck), 0o644))

	decks, err := LoadDir(dir)
	require.ErrorIs(t, err, ErrDuplicateDeck)
	assert.Nil(t, decks)
	assert.Contains(t, err.Error(), "Featured.yaml")
	assert.Contains(t, err.Error(), "featured.yml")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDeckName(t *testing.T) {
	assert.Equal(t, "featured", DeckName("/tmp/decks/Featured.yaml"))
	assert.True(t, IsDeckFile("a.YML"))
	assert.False(t, IsDeckFile("a.json"))
}
