package gallery

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"gameinfo/internal/fixtures"
)

// DefaultDebounce collapses the burst of events editors emit on save.
const DefaultDebounce = 300 * time.Millisecond

// Watcher reloads deck files from a directory into a Store as they change.
type Watcher struct {
	dir      string
	store    *Store
	logger   *log.Logger
	debounce time.Duration

	mu      sync.Mutex
	pending map[string]time.Time
}

// NewWatcher creates a watcher for dir. A non-positive debounce uses DefaultDebounce.
func NewWatcher(dir string, store *Store, logger *log.Logger, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Watcher{
		dir:      dir,
		store:    store,
		logger:   logger,
		debounce: debounce,
		pending:  make(map[string]time.Time),
	}
}

// Run watches until ctx is done. It returns an error only if watching could not start.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()
	if err := fw.Add(w.dir); err != nil {
		return err
	}
	w.logger.Info("watching decks", "dir", w.dir)

	tick := w.debounce / 3
	if tick < 10*time.Millisecond {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.handle(event)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watch error", "err", err)
		case now := <-ticker.C:
			for _, path := range w.settled(now) {
				w.Reload(path)
			}
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if !fixtures.IsDeckFile(event.Name) {
		return
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}
	w.logger.Debug("deck event", "op", event.Op.String(), "path", event.Name)
	w.mu.Lock()
	w.pending[event.Name] = time.Now()
	w.mu.Unlock()
}

// settled returns paths whose last event is older than the debounce window.
func (w *Watcher) settled(now time.Time) []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	var out []string
	for path, at := range w.pending {
		if now.Sub(at) >= w.debounce {
			out = append(out, path)
			delete(w.pending, path)
		}
	}
	return out
}

// Reload syncs one deck file into the store. A deleted file removes the deck;
// a file that no longer parses keeps the previous version.
func (w *Watcher) Reload(path string) {
	name := fixtures.DeckName(path)
	deck, err := fixtures.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			w.store.Remove(name)
			return
		}
		w.logger.Warn("keeping previous deck", "deck", name, "err", err)
		return
	}
	w.store.Put(name, deck)
}
