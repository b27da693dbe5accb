// Package fixtures loads decks of game info cards from YAML files.
package fixtures

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"gameinfo/internal/card"
	"gameinfo/internal/viewmodel"
)

//go:embed decks/*.yaml
var decksFS embed.FS

// DefaultDeckName is the name the embedded deck is served under.
const DefaultDeckName = "featured"

var (
	ErrMissingField  = errors.New("missing required field")
	ErrDuplicateSlug = errors.New("duplicate slug")
	ErrDuplicateDeck = errors.New("duplicate deck name")
)

// Deck is an ordered set of cards loaded from one file.
type Deck struct {
	Title string `yaml:"title"`
	Cards []Card `yaml:"cards"`
}

// Card is the on-disk form of one game info card.
type Card struct {
	Slug         string                 `yaml:"slug"`
	Image        string                 `yaml:"image"`
	Title        string                 `yaml:"title"`
	Developer    card.Developer         `yaml:"developer"`
	Rating       float64                `yaml:"rating"`
	Status       string                 `yaml:"status"`
	Description  string                 `yaml:"description"`
	Players      *int                   `yaml:"players"`
	Community    *int                   `yaml:"community"`
	Categories   []string               `yaml:"categories"`
	Platforms    []string               `yaml:"platforms"`
	ShowFeedback bool                   `yaml:"show_feedback"`
	Actions      []viewmodel.ActionLink `yaml:"actions"`
}

// GameInfo converts the card to the view-model. The trailing slot is left
// empty; the view layer fills it from Actions.
func (c Card) GameInfo() card.GameInfo {
	status, err := card.ParseStatus(c.Status)
	if err != nil {
		status = card.Status(c.Status)
	}
	return card.GameInfo{
		Image:        c.Image,
		Title:        c.Title,
		Developer:    c.Developer,
		Rating:       c.Rating,
		Status:       status,
		Description:  c.Description,
		Players:      c.Players,
		Community:    c.Community,
		Categories:   c.Categories,
		Platforms:    c.Platforms,
		ShowFeedback: c.ShowFeedback,
	}
}

// Find returns the card with the given slug.
func (d *Deck) Find(slug string) (Card, bool) {
	for _, c := range d.Cards {
		if c.Slug == slug {
			return c, true
		}
	}
	return Card{}, false
}

// Validate reports every problem in the deck at once.
func (d *Deck) Validate() error {
	var errs []error
	seen := make(map[string]int, len(d.Cards))
	for i, c := range d.Cards {
		if err := c.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("card %d: %w", i, err))
		}
		if c.Slug == "" {
			continue
		}
		if first, ok := seen[c.Slug]; ok {
			errs = append(errs, fmt.Errorf("card %d: %w %q (first used by card %d)", i, ErrDuplicateSlug, c.Slug, first))
			continue
		}
		seen[c.Slug] = i
	}
	return errors.Join(errs...)
}

// Validate checks a single card.
func (c Card) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Slug) == "" {
		errs = append(errs, fmt.Errorf("%w: slug", ErrMissingField))
	}
	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, fmt.Errorf("%w: title", ErrMissingField))
	}
	if _, err := card.ParseStatus(c.Status); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Parse decodes and validates a deck.
func Parse(data []byte) (*Deck, error) {
	var deck Deck
	if err := yaml.Unmarshal(data, &deck); err != nil {
		return nil, fmt.Errorf("decode deck: %w", err)
	}
	if err := deck.Validate(); err != nil {
		return nil, err
	}
	return &deck, nil
}

// Load reads a deck from path.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck %s: %w", path, err)
	}
	deck, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse deck %s: %w", path, err)
	}
	return deck, nil
}

// LoadDir loads every *.yaml and *.yml file in dir, keyed by DeckName. Two
// files that map to the same name are an error.
func LoadDir(dir string) (map[string]*Deck, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck directory %s: %w", dir, err)
	}
	decks := make(map[string]*Deck)
	sources := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || !IsDeckFile(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		name := DeckName(path)
		if prev, ok := sources[name]; ok {
			return nil, fmt.Errorf("%w %q: %s and %s", ErrDuplicateDeck, name, filepath.Base(prev), entry.Name())
		}
		deck, err := Load(path)
		if err != nil {
			return nil, err
		}
		decks[name] = deck
		sources[name] = path
	}
	return decks, nil
}

// Default returns the embedded deck.
func Default() (*Deck, error) {
	data, err := decksFS.ReadFile("decks/" + DefaultDeckName + ".yaml")
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// IsDeckFile reports whether name has a deck file extension.
func IsDeckFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

// DeckName derives a deck's name from its file path: "decks/Featured.yaml" -> "featured".
func DeckName(path string) string {
	base := filepath.Base(path)
	return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
}

// SortedNames returns the keys of decks in lexical order.
func SortedNames(decks map[string]*Deck) []string {
	names := make([]string, 0, len(decks))
	for name := range decks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
