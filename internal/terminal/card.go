// Package terminal draws a game info card as a bordered text box.
package terminal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gameinfo/internal/card"
)

// DefaultWidth matches the max-w-sm card in the browser, in columns.
const DefaultWidth = 48

var (
	clrBorder  = lipgloss.Color("#30363d")
	clrSubtle  = lipgloss.Color("#8b949e")
	clrWhite   = lipgloss.Color("#e6edf3")
	clrLink    = lipgloss.Color("#58a6ff")
	clrGreen   = lipgloss.Color("#16a34a")
	clrYellow  = lipgloss.Color("#eab308")
	clrGray    = lipgloss.Color("#4b5563")
	clrBlue    = lipgloss.Color("#2563eb")
	clrPrimary = lipgloss.Color("#ffffff")
	clrInk     = lipgloss.Color("#111827")
)

// Options adjusts terminal output.
type Options struct {
	// Width is the outer width in columns. Zero uses DefaultWidth.
	Width int
	// Actions are labels shown in place of the HTML trailing slot.
	Actions []string
}

// Render draws info. Sections follow the HTML card: categories always keep
// their row, platforms disappear when empty.
func Render(info card.GameInfo, opts Options) string {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	inner := width - 4 // border and padding
	if inner < 10 {
		inner = 10
	}

	subtle := lipgloss.NewStyle().Foreground(clrSubtle)
	value := lipgloss.NewStyle().Foreground(clrWhite).Bold(true)

	var rows []string
	rows = append(rows, lipgloss.NewStyle().
		Width(inner).Align(lipgloss.Center).
		Background(clrPrimary).Foreground(clrInk).Bold(true).
		Render("Write Your Review"))

	badge := card.BadgeFor(info.Status)
	rows = append(rows, "",
		pill(badge.Label, toneColor(badge.Tone))+" "+subtle.Render(truncate(info.Image, inner-lipgloss.Width(badge.Label)-3)))

	title := lipgloss.NewStyle().Bold(true).Foreground(clrWhite).Render(info.Title)
	rating := pill(card.FormatRating(info.Rating), clrGreen)
	gap := inner - lipgloss.Width(title) - lipgloss.Width(rating)
	if gap < 1 {
		gap = 1
	}
	rows = append(rows, "", title+strings.Repeat(" ", gap)+rating)
	rows = append(rows, lipgloss.NewStyle().Foreground(clrLink).Underline(true).Render(info.Developer.Name))

	if info.Description != "" {
		rows = append(rows, "", subtle.Width(inner).Render(info.Description))
	}

	rows = append(rows, "",
		statRow("Players", card.FormatCount(info.Players), inner, subtle, value),
		statRow("Community", card.FormatCount(info.Community), inner, subtle, value))

	rows = append(rows, "", tags(info.Categories, clrGreen, inner))
	if len(info.Platforms) > 0 {
		rows = append(rows, "", subtle.Render("Platforms"), tags(info.Platforms, clrBlue, inner))
	}

	rows = append(rows, subtle.Render(strings.Repeat("─", inner)), footer(info.ShowFeedback, inner, subtle))

	if len(opts.Actions) > 0 {
		rows = append(rows, "", tags(opts.Actions, clrGray, inner))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(clrBorder).
		Padding(0, 1).
		Width(width - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func toneColor(t card.Tone) lipgloss.Color {
	switch t {
	case card.ToneSuccess:
		return clrGreen
	case card.TonePending:
		return clrYellow
	default:
		return clrGray
	}
}

func pill(text string, bg lipgloss.Color) string {
	return lipgloss.NewStyle().Background(bg).Foreground(clrWhite).Bold(true).Padding(0, 1).Render(text)
}

func statRow(label, val string, width int, labelStyle, valueStyle lipgloss.Style) string {
	l := labelStyle.Render(label)
	v := valueStyle.Render(val)
	gap := width - lipgloss.Width(l) - lipgloss.Width(v)
	if gap < 1 {
		gap = 1
	}
	return l + strings.Repeat(" ", gap) + v
}

// tags lays pills out left to right, wrapping at width.
func tags(items []string, bg lipgloss.Color, width int) string {
	var lines []string
	var line string
	for _, item := range items {
		p := pill(item, bg)
		switch {
		case line == "":
			line = p
		case lipgloss.Width(line)+1+lipgloss.Width(p) > width:
			lines = append(lines, line)
			line = p
		default:
			line += " " + p
		}
	}
	if line != "" || len(lines) == 0 {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func footer(showFeedback bool, width int, style lipgloss.Style) string {
	social := style.Render("twitter · discord · telegram · web")
	actions := "[share]"
	if showFeedback {
		actions += " [feedback]"
	}
	a := style.Render(actions)
	gap := width - lipgloss.Width(social) - lipgloss.Width(a)
	if gap < 1 {
		return social + "\n" + a
	}
	return social + strings.Repeat(" ", gap) + a
}

func truncate(s string, n int) string {
	if n <= 1 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
