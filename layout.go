package deckui

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultCardSize is the card size used when a layout does not set one.
var DefaultCardSize = Vec2{X: 60, Y: 90}

// Layout describes a table to mount: decks with their initial members and
// loose cards. Hosts load one from YAML and mount it onto a Controller, which
// stands in for the mount events a component tree would deliver.
type Layout struct {
	CardSize    SizeSpec   `yaml:"card_size"`
	SandboxMode *bool      `yaml:"sandbox_mode"`
	Decks       []DeckSpec `yaml:"decks"`
	Cards       []CardSpec `yaml:"cards"`
}

// SizeSpec is a width/height pair.
type SizeSpec struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// RectSpec is a rectangle in layout files.
type RectSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// DeckSpec declares one deck and the cards it starts with (bottom first).
type DeckSpec struct {
	ID     string     `yaml:"id"`
	Name   string     `yaml:"name"`
	Bounds RectSpec   `yaml:"bounds"`
	Splay  SizeSpec   `yaml:"splay"`
	Cards  []CardSpec `yaml:"cards"`
}

// CardSpec declares one card. ID may be empty; one is generated at mount.
// X and Y are only used for loose cards.
type CardSpec struct {
	ID     string  `yaml:"id"`
	Front  string  `yaml:"front"`
	Back   string  `yaml:"back"`
	FaceUp bool    `yaml:"face_up"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
}

// LoadLayout parses a YAML table layout and checks it for duplicate ids and
// invalid sizes.
func LoadLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	if err := l.validate(); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	return &l, nil
}

func (l *Layout) validate() error {
	if l.CardSize.W < 0 || l.CardSize.H < 0 {
		return fmt.Errorf("card_size must not be negative")
	}
	decks := make(map[string]bool, len(l.Decks))
	cards := make(map[string]bool)
	checkCard := func(cs CardSpec) error {
		if cs.ID == "" {
			return nil
		}
		if cards[cs.ID] {
			return fmt.Errorf("duplicate card id %q", cs.ID)
		}
		cards[cs.ID] = true
		return nil
	}
	for _, ds := range l.Decks {
		if ds.ID == "" {
			return fmt.Errorf("deck without id")
		}
		if decks[ds.ID] {
			return fmt.Errorf("duplicate deck id %q", ds.ID)
		}
		decks[ds.ID] = true
		for _, cs := range ds.Cards {
			if err := checkCard(cs); err != nil {
				return err
			}
		}
	}
	for _, cs := range l.Cards {
		if err := checkCard(cs); err != nil {
			return err
		}
	}
	return nil
}

// Size returns the configured card size, or DefaultCardSize when unset.
func (l *Layout) Size() Vec2 {
	if l.CardSize.W == 0 || l.CardSize.H == 0 {
		return DefaultCardSize
	}
	return Vec2{X: l.CardSize.W, Y: l.CardSize.H}
}

// Mount registers every deck, then every card, on c. Cards without an id get
// a generated one that avoids every explicit id in the layout. All checks run
// before anything is registered, so a failed Mount leaves c unchanged. Loose
// cards are placed at their coordinates as floating cards. A layout-level
// sandbox_mode overrides the controller's setting.
func (l *Layout) Mount(c *Controller) error {
	if err := l.validate(); err != nil {
		return fmt.Errorf("mount layout: %w", err)
	}
	for _, ds := range l.Decks {
		if c.Decks().Get(ds.ID) != nil {
			return fmt.Errorf("mount layout: deck %q already registered", ds.ID)
		}
	}
	// Explicit ids are reserved so generated ones never land on them.
	reserved := make(map[string]bool)
	for _, cs := range l.allCards() {
		if cs.ID == "" {
			continue
		}
		if c.Cards().Get(cs.ID) != nil {
			return fmt.Errorf("mount layout: card %q already registered", cs.ID)
		}
		reserved[cs.ID] = true
	}
	cardID := func(cs CardSpec) string {
		if cs.ID != "" {
			return cs.ID
		}
		for {
			id := strconv.Itoa(c.GenID())
			if !reserved[id] && c.Cards().Get(id) == nil {
				return id
			}
		}
	}

	for _, ds := range l.Decks {
		c.RegisterDeck(&Deck{
			ID: ds.ID,
			Bounds: Rect{
				X: ds.Bounds.X, Y: ds.Bounds.Y,
				Width: ds.Bounds.W, Height: ds.Bounds.H,
			},
			Props: DeckProps{
				Name:  ds.Name,
				Splay: Vec2{X: ds.Splay.W, Y: ds.Splay.H},
			},
		})
		for _, cs := range ds.Cards {
			c.RegisterCard(&Card{ID: cardID(cs), DeckID: ds.ID, Props: cs.props()})
		}
	}
	for _, cs := range l.Cards {
		c.RegisterCard(&Card{
			ID:       cardID(cs),
			Position: &Position{X: cs.X, Y: cs.Y},
			Props:    cs.props(),
		})
	}
	if l.SandboxMode != nil {
		c.SetSandboxMode(*l.SandboxMode)
	}
	return nil
}

func (l *Layout) allCards() []CardSpec {
	var out []CardSpec
	for _, ds := range l.Decks {
		out = append(out, ds.Cards...)
	}
	return append(out, l.Cards...)
}

func (cs CardSpec) props() CardProps {
	return CardProps{Front: cs.Front, Back: cs.Back, FaceUp: cs.FaceUp}
}
