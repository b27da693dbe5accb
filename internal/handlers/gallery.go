package handlers

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"gameinfo/internal/fixtures"
	"gameinfo/internal/gallery"
	"gameinfo/internal/viewmodel"
	"gameinfo/views/components"
	"gameinfo/views/pages"
)

const defaultKeepAlive = 25 * time.Second

// GalleryHandler serves the deck index, the gallery pages and their live-reload streams.
type GalleryHandler struct {
	store      *gallery.Store
	logger     *log.Logger
	liveReload bool
	keepAlive  time.Duration
}

func NewGalleryHandler(store *gallery.Store, logger *log.Logger, liveReload bool) *GalleryHandler {
	return &GalleryHandler{
		store:      store,
		logger:     logger,
		liveReload: liveReload,
		keepAlive:  defaultKeepAlive,
	}
}

func (h *GalleryHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.index)
	r.Route("/decks/{deck}", func(r chi.Router) {
		r.Get("/", h.galleryPage)
		r.Get("/cards", h.gridFragment)
		r.Get("/cards/{slug}", h.cardFragment)
		r.Get("/stream", h.stream)
	})
}

func (h *GalleryHandler) index(w http.ResponseWriter, r *http.Request) {
	render(w, r, h.logger, pages.IndexPage(viewmodel.IndexPage{
		Title: "Game cards",
		Decks: h.store.Summaries(),
	}))
}

func (h *GalleryHandler) galleryPage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "deck")
	deck, ok := h.store.Deck(name)
	if !ok {
		http.NotFound(w, r)
		return
	}
	title := deck.Title
	if title == "" {
		title = name
	}
	render(w, r, h.logger, pages.GalleryPage(viewmodel.GalleryPage{
		Title:      title,
		Deck:       name,
		StreamURL:  "/decks/" + name + "/stream",
		LiveReload: h.liveReload,
		Grid:       buildGrid(name, deck),
	}))
}

func (h *GalleryHandler) gridFragment(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "deck")
	deck, ok := h.store.Deck(name)
	if !ok {
		http.NotFound(w, r)
		return
	}
	render(w, r, h.logger, components.CardGrid(buildGrid(name, deck)))
}

func (h *GalleryHandler) cardFragment(w http.ResponseWriter, r *http.Request) {
	deck, ok := h.store.Deck(chi.URLParam(r, "deck"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	c, ok := deck.Find(chi.URLParam(r, "slug"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	render(w, r, h.logger, components.GameInfoCard(toCardEntry(c).Info))
}

func (h *GalleryHandler) stream(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "deck")
	hub, ok := h.store.Broadcaster(name)
	if !ok {
		http.NotFound(w, r)
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)

	sendGrid := func() bool {
		deck, ok := h.store.Deck(name)
		if !ok {
			return false
		}
		html, err := renderToString(r.Context(), components.CardGrid(buildGrid(name, deck)))
		if err != nil {
			h.logger.Error("render grid for stream", "deck", name, "err", err)
			return true
		}
		writeSSE(w, string(gallery.EventCards), html)
		flusher.Flush()
		return true
	}

	if !sendGrid() {
		return
	}

	keepAlive := time.NewTicker(h.keepAlive)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, open := <-sub:
			if !open {
				return
			}
			if event == gallery.EventCards && !sendGrid() {
				return
			}
		case <-keepAlive.C:
			_, _ = w.Write([]byte(": keepalive\n\n"))
			flusher.Flush()
		}
	}
}

func buildGrid(name string, deck *fixtures.Deck) viewmodel.GridFragment {
	entries := make([]viewmodel.CardEntry, 0, len(deck.Cards))
	for _, c := range deck.Cards {
		entries = append(entries, toCardEntry(c))
	}
	return viewmodel.GridFragment{Deck: name, Cards: entries}
}

// toCardEntry fills the card's trailing slot from the fixture's action links.
func toCardEntry(c fixtures.Card) viewmodel.CardEntry {
	info := c.GameInfo()
	if len(c.Actions) > 0 {
		info.AdditionalActions = components.ActionLinks(c.Actions)
	}
	return viewmodel.CardEntry{Slug: c.Slug, Info: info}
}
