// gamecard renders game info cards from deck files without starting the server.
//
// Usage:
//
//	gamecard list [deck.yaml]               - List the cards in a deck
//	gamecard render [deck.yaml] [--slug s]  - Write card HTML to stdout
//	gamecard preview [deck.yaml] [--slug s] - Draw cards in the terminal
//
// Without a deck file the embedded featured deck is used.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"gameinfo/internal/fixtures"
)

var (
	flagSlug    string
	flagVerbose bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "gamecard"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gamecard",
	Short: "Render game info cards from YAML decks",
	Long: `gamecard renders the same game info cards the preview server shows,
straight from a deck file.

Examples:
  gamecard list decks/featured.yaml
  gamecard render decks/featured.yaml --slug starfall-tactics > card.html
  gamecard preview --slug lantern-hollow`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSlug, "slug", "", "Only the card with this slug")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(previewCmd)
}

// loadDeck reads the deck named by args, or the embedded deck.
func loadDeck(args []string) (*fixtures.Deck, error) {
	if len(args) == 0 {
		logger.Debug("using embedded deck", "deck", fixtures.DefaultDeckName)
		return fixtures.Default()
	}
	logger.Debug("loading deck", "path", args[0])
	return fixtures.Load(args[0])
}

// selectCards applies --slug.
func selectCards(deck *fixtures.Deck) ([]fixtures.Card, error) {
	if flagSlug == "" {
		return deck.Cards, nil
	}
	c, ok := deck.Find(flagSlug)
	if !ok {
		return nil, fmt.Errorf("no card with slug %q", flagSlug)
	}
	return []fixtures.Card{c}, nil
}
