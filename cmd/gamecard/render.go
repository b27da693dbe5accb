package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gameinfo/internal/terminal"
	"gameinfo/internal/viewmodel"
	"gameinfo/views/components"
)

var flagWidth int

var renderCmd = &cobra.Command{
	Use:   "render [deck.yaml]",
	Short: "Write card HTML fragments to stdout",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRender,
}

var previewCmd = &cobra.Command{
	Use:   "preview [deck.yaml]",
	Short: "Draw cards in the terminal",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().IntVar(&flagWidth, "width", terminal.DefaultWidth, "Card width in columns")
}

func runRender(cmd *cobra.Command, args []string) error {
	deck, err := loadDeck(args)
	if err != nil {
		return err
	}
	cards, err := selectCards(deck)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, c := range cards {
		info := c.GameInfo()
		if len(c.Actions) > 0 {
			info.AdditionalActions = components.ActionLinks(c.Actions)
		}
		if err := components.GameInfoCard(info).Render(cmd.Context(), out); err != nil {
			return fmt.Errorf("render %s: %w", c.Slug, err)
		}
		fmt.Fprintln(out)
	}
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	deck, err := loadDeck(args)
	if err != nil {
		return err
	}
	cards, err := selectCards(deck)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, c := range cards {
		fmt.Fprintln(out, terminal.Render(c.GameInfo(), terminal.Options{
			Width:   flagWidth,
			Actions: actionLabels(c.Actions),
		}))
	}
	return nil
}

func actionLabels(links []viewmodel.ActionLink) []string {
	labels := make([]string, 0, len(links))
	for _, l := range links {
		labels = append(labels, l.Label)
	}
	return labels
}
