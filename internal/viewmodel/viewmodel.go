package viewmodel

import "gameinfo/internal/card"

// ActionLink is one extra call to action placed in a card's trailing slot.
type ActionLink struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// CardEntry pairs a card with the slug used to address it.
type CardEntry struct {
	Slug string
	Info card.GameInfo
}

// DeckSummary is one row of the deck index.
type DeckSummary struct {
	Name      string
	Title     string
	CardCount int
}

// IndexPage holds data for the deck index.
type IndexPage struct {
	Title string
	Decks []DeckSummary
}

// GridFragment holds data for the card grid fragment.
type GridFragment struct {
	Deck  string
	Cards []CardEntry
}

// GalleryPage holds data for a deck's gallery page.
type GalleryPage struct {
	Title      string
	Deck       string
	StreamURL  string
	LiveReload bool
	Grid       GridFragment
}
