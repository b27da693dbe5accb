package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"gameinfo/internal/config"
	"gameinfo/internal/fixtures"
	"gameinfo/internal/gallery"
	"gameinfo/internal/handlers"
)

func main() {
	cfg := config.FromEnv()
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gamecard-web",
		Level:           cfg.LogLevel,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := gallery.NewStore(logger)
	if err := loadDecks(store, cfg.FixturesDir); err != nil {
		logger.Fatal("load decks", "err", err)
	}
	if cfg.Watch {
		watcher := gallery.NewWatcher(cfg.FixturesDir, store, logger, gallery.DefaultDebounce)
		go func() {
			if err := watcher.Run(ctx); err != nil {
				logger.Error("deck watcher stopped", "err", err)
			}
		}()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	galleryHandler := handlers.NewGalleryHandler(store, logger, cfg.Watch)
	previewHandler := handlers.NewPreviewHandler(logger)

	// Streams stay open, so only the request/response routes get a timeout.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(15 * time.Second))
		previewHandler.RegisterRoutes(r)
	})
	galleryHandler.RegisterRoutes(r)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      0,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", "url", "http://localhost"+cfg.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server", "err", err)
	}
}

// loadDecks fills the store from dir, or with the embedded deck when dir is empty.
func loadDecks(store *gallery.Store, dir string) error {
	if dir == "" {
		deck, err := fixtures.Default()
		if err != nil {
			return err
		}
		store.Put(fixtures.DefaultDeckName, deck)
		return nil
	}
	decks, err := fixtures.LoadDir(dir)
	if err != nil {
		return err
	}
	for _, name := range fixtures.SortedNames(decks) {
		store.Put(name, decks[name])
	}
	return nil
}
