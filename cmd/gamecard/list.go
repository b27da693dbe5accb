package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gameinfo/internal/card"
)

var listCmd = &cobra.Command{
	Use:   "list [deck.yaml]",
	Short: "List the cards in a deck",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	deck, err := loadDeck(args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(deck.Cards) == 0 {
		fmt.Fprintln(out, "No cards in deck.")
		return nil
	}

	maxSlug := 4 // "Slug" header
	for _, c := range deck.Cards {
		if len(c.Slug) > maxSlug {
			maxSlug = len(c.Slug)
		}
	}

	fmt.Fprintf(out, "  %-*s  %-10s  %s\n", maxSlug, "Slug", "Status", "Title")
	fmt.Fprintf(out, "  %-*s  %-10s  %s\n", maxSlug, "----", "------", "-----")
	for _, c := range deck.Cards {
		status := card.BadgeFor(card.Status(c.Status)).Label
		fmt.Fprintf(out, "  %-*s  %-10s  %s\n", maxSlug, c.Slug, status, c.Title)
	}
	return nil
}
