// Package gallery keeps the loaded card decks and tells open preview pages
// when a deck changes.
package gallery

import (
	"github.com/charmbracelet/log"

	"gameinfo/internal/fixtures"
	"gameinfo/internal/viewmodel"
	"gameinfo/pkg/realtime"
)

// EventCards is published whenever a deck's cards change.
const EventCards realtime.Event = "cards"

// Store holds decks by name and delegates broadcast to realtime.Registry.
type Store struct {
	r      *realtime.Registry[*fixtures.Deck]
	logger *log.Logger
}

// NewStore creates an empty store.
func NewStore(logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{
		r:      realtime.NewRegistry[*fixtures.Deck](),
		logger: logger,
	}
}

// Put stores or replaces a deck and notifies its subscribers.
func (s *Store) Put(name string, deck *fixtures.Deck) {
	replaced := s.r.Put(name, deck)
	n := s.r.Publish(name, EventCards)
	s.logger.Info("deck loaded", "deck", name, "cards", len(deck.Cards), "replaced", replaced, "notified", n)
}

// Remove drops a deck; its open streams end.
func (s *Store) Remove(name string) {
	if s.r.Delete(name) {
		s.logger.Info("deck removed", "deck", name)
	}
}

// Deck returns a deck by name if it exists.
func (s *Store) Deck(name string) (*fixtures.Deck, bool) {
	return s.r.Get(name)
}

// Broadcaster returns the broadcaster for a deck.
func (s *Store) Broadcaster(name string) (*realtime.Broadcaster, bool) {
	return s.r.Broadcaster(name)
}

// Summaries lists every deck in name order.
func (s *Store) Summaries() []viewmodel.DeckSummary {
	names := s.r.IDs()
	out := make([]viewmodel.DeckSummary, 0, len(names))
	for _, name := range names {
		deck, ok := s.r.Get(name)
		if !ok {
			continue
		}
		out = append(out, viewmodel.DeckSummary{
			Name:      name,
			Title:     deck.Title,
			CardCount: len(deck.Cards),
		})
	}
	return out
}
