package deckui

import (
	"fmt"
	"io"
	"strconv"
)

// Controller owns the card and deck registries and the session counters of
// one widget tree, and exposes the drag/drop mutations. A Controller is not
// safe for concurrent use; drive it from the host's event loop.
type Controller struct {
	cards *CardRegistry
	decks *DeckRegistry
	ids   *IDAllocator
	z     *ZOrder

	sandbox bool

	handlers handlerRegistry
	sink     EventSink

	debug    bool
	debugOut io.Writer
}

// NewController creates a controller with empty registries.
func NewController(cfg Config) *Controller {
	return &Controller{
		cards:   newCardRegistry(),
		decks:   newDeckRegistry(),
		ids:     NewIDAllocator(cfg.FirstID),
		z:       NewZOrder(cfg.FirstZIndex),
		sandbox: cfg.SandboxMode,
		debug:   cfg.Debug,
	}
}

// Cards returns the card registry for read access.
func (c *Controller) Cards() *CardRegistry {
	return c.cards
}

// Decks returns the deck registry for read access.
func (c *Controller) Decks() *DeckRegistry {
	return c.decks
}

// SandboxMode reports whether drag mutations are suppressed.
func (c *Controller) SandboxMode() bool {
	return c.sandbox
}

// SetSandboxMode turns the mutation gate on or off.
func (c *Controller) SetSandboxMode(enabled bool) {
	c.sandbox = enabled
}

// NextID returns the value the next GenID call will return.
func (c *Controller) NextID() int {
	return c.ids.Peek()
}

// NextZIndex returns the z-index the next MoveCard will stamp.
func (c *Controller) NextZIndex() int {
	return c.z.Peek()
}

// GenID returns a fresh unique identifier. Available in sandbox mode.
func (c *Controller) GenID() int {
	return c.ids.GenerateID()
}

// --- Drag and drop ---

// MoveCard marks a card as the active, topmost floating element: it receives
// a z-index above every previously moved card. Geometry and deck membership
// are left alone. No-op in sandbox mode.
func (c *Controller) MoveCard(cardID string) {
	if c.sandbox {
		return
	}
	card := c.cards.Get(cardID)
	if card == nil {
		c.debugMissing("MoveCard", "card", cardID)
		return
	}
	if card.Position == nil {
		card.Position = &Position{}
	}
	card.Position.ZIndex = c.z.Next()
	c.debugf("move %s z=%d", cardID, card.Position.ZIndex)
	c.debugCheckInvariants("MoveCard")
	c.emit(ChangeEvent{
		Type:   ChangeMoved,
		CardID: cardID,
		ZIndex: card.Position.ZIndex,
		X:      card.Position.X,
		Y:      card.Position.Y,
	})
}

// DropCard finishes a drag. With a non-empty deckID the card is filed on top
// of that deck and loses its floating position; with an empty deckID it is
// released untethered and keeps floating where it is.
//
// Leaving a deck fires that deck's OnRemove once. Dropping a card back into
// the deck it already belongs to changes no membership and fires no hook.
// Hooks run after the transition is fully applied. No-op in sandbox mode.
func (c *Controller) DropCard(cardID, deckID string) {
	if c.sandbox {
		return
	}
	card := c.cards.Get(cardID)
	if card == nil {
		c.debugMissing("DropCard", "card", cardID)
		return
	}
	var target *Deck
	if deckID != "" {
		target = c.decks.Get(deckID)
		if target == nil {
			c.debugMissing("DropCard", "deck", deckID)
			return
		}
	}

	from := card.DeckID
	var source *Deck
	if from != "" && from != deckID {
		source = c.decks.Get(from)
		if source != nil {
			source.remove(cardID)
		}
	}

	added := false
	if target != nil {
		if !target.Contains(cardID) {
			target.push(cardID)
			added = true
		}
		card.DeckID = deckID
		card.Position = nil
	} else {
		card.DeckID = ""
		if card.Position == nil {
			card.Position = &Position{}
		}
	}

	c.debugf("drop %s %s -> %s", cardID, deckLabel(from), deckLabel(deckID))
	c.debugCheckInvariants("DropCard")

	if source != nil && source.Props.OnRemove != nil {
		source.Props.OnRemove(card)
	}
	if added && target.Props.OnDrop != nil {
		target.Props.OnDrop(card)
	}
	c.emit(ChangeEvent{
		Type:     ChangeDropped,
		CardID:   cardID,
		FromDeck: from,
		ToDeck:   deckID,
	})
}

// SetCardGeometry updates the coordinates of a floating card. Cards without a
// position are left alone: a card starts floating through MoveCard or an
// untethered DropCard. No-op in sandbox mode.
func (c *Controller) SetCardGeometry(cardID string, x, y float64) {
	if c.sandbox {
		return
	}
	card := c.cards.Get(cardID)
	if card == nil {
		c.debugMissing("SetCardGeometry", "card", cardID)
		return
	}
	if card.Position == nil {
		return
	}
	if card.Position.X == x && card.Position.Y == y {
		return
	}
	card.Position.X = x
	card.Position.Y = y
	c.emit(ChangeEvent{
		Type:   ChangePlaced,
		CardID: cardID,
		ZIndex: card.Position.ZIndex,
		X:      x,
		Y:      y,
	})
}

// --- Placeholder ---

// AnyFloating reports whether at least one card has a determined position,
// i.e. a drag is in progress somewhere in the tree.
func (c *Controller) AnyFloating() bool {
	for _, card := range c.cards.order {
		if card.Position != nil {
			return true
		}
	}
	return false
}

// ShowPlaceholder reports whether deckID should present its empty-slot cue:
// either it is the pending drop target, or any card is floating.
func (c *Controller) ShowPlaceholder(deckID, dropTarget string) bool {
	if dropTarget != "" && dropTarget == deckID {
		return true
	}
	return c.AnyFloating()
}

// --- Registration ---

// RegisterDeck adds a deck. Members join through RegisterCard, so a deck must
// be registered with an empty member list.
// Panics if deck is nil, has no id, duplicates a registered id, or already
// lists members.
func (c *Controller) RegisterDeck(deck *Deck) *Deck {
	if deck == nil {
		panic("deckui: cannot register nil deck")
	}
	if deck.ID == "" {
		panic("deckui: deck id must not be empty")
	}
	if c.decks.Get(deck.ID) != nil {
		panic(fmt.Sprintf("deckui: duplicate deck id %q", deck.ID))
	}
	if len(deck.Cards) != 0 {
		panic(fmt.Sprintf("deckui: deck %q registered with members; register cards instead", deck.ID))
	}
	c.decks.add(deck)
	c.debugf("register deck %s", deck.ID)
	return deck
}

// UnregisterDeck removes a deck. Its members stay registered but become
// untethered. No hooks fire. Unknown ids are ignored.
func (c *Controller) UnregisterDeck(deckID string) {
	deck := c.decks.remove(deckID)
	if deck == nil {
		return
	}
	for _, id := range deck.Cards {
		if card := c.cards.Get(id); card != nil {
			card.DeckID = ""
		}
	}
	deck.Cards = nil
	c.debugf("unregister deck %s", deckID)
	c.debugCheckInvariants("UnregisterDeck")
}

// RegisterCard adds a card. A card with an empty ID gets the next GenID value
// not already used as a card id. A card with a DeckID is appended on top of
// that deck.
// Panics if card is nil, its id is already registered, or its deck is
// unknown.
func (c *Controller) RegisterCard(card *Card) *Card {
	if card == nil {
		panic("deckui: cannot register nil card")
	}
	if card.ID == "" {
		card.ID = c.freshCardID()
	}
	if c.cards.Get(card.ID) != nil {
		panic(fmt.Sprintf("deckui: duplicate card id %q", card.ID))
	}
	var deck *Deck
	if card.DeckID != "" {
		deck = c.decks.Get(card.DeckID)
		if deck == nil {
			panic(fmt.Sprintf("deckui: card %q references unknown deck %q", card.ID, card.DeckID))
		}
	}
	c.cards.add(card)
	if deck != nil {
		deck.push(card.ID)
	}
	c.debugf("register card %s in %s", card.ID, deckLabel(card.DeckID))
	c.debugCheckInvariants("RegisterCard")
	return card
}

// UnregisterCard removes a card and takes it out of its deck. No hooks fire:
// unmounting is not a drop. Unknown ids are ignored.
func (c *Controller) UnregisterCard(cardID string) {
	card := c.cards.remove(cardID)
	if card == nil {
		return
	}
	if card.DeckID != "" {
		if deck := c.decks.Get(card.DeckID); deck != nil {
			deck.remove(cardID)
		}
	}
	c.debugf("unregister card %s", cardID)
	c.debugCheckInvariants("UnregisterCard")
}

// SpawnCard creates a card with a generated id, e.g. one drawn from a deck
// at runtime, and files it on top of deckID (untethered when empty).
// Spawning is registration rather than drag state, so it is allowed in
// sandbox mode.
func (c *Controller) SpawnCard(deckID string, props CardProps) *Card {
	card := c.RegisterCard(&Card{
		ID:     c.freshCardID(),
		DeckID: deckID,
		Props:  props,
	})
	if deckID == "" {
		card.Position = &Position{}
	}
	c.emit(ChangeEvent{
		Type:   ChangeSpawned,
		CardID: card.ID,
		ToDeck: deckID,
	})
	return card
}

// freshCardID draws ids from GenID until one is not taken by a registered
// card. Explicit ids such as "3" may already occupy generated values.
func (c *Controller) freshCardID() string {
	for {
		id := strconv.Itoa(c.GenID())
		if c.cards.Get(id) == nil {
			return id
		}
	}
}

// --- Invariants ---

// Validate checks the card/deck cross-reference invariants and returns an
// error describing the first violation found.
func (c *Controller) Validate() error {
	for _, card := range c.cards.order {
		if card.DeckID == "" {
			continue
		}
		deck := c.decks.Get(card.DeckID)
		if deck == nil {
			return fmt.Errorf("card %q references unknown deck %q", card.ID, card.DeckID)
		}
		if !deck.Contains(card.ID) {
			return fmt.Errorf("card %q claims deck %q but is not a member", card.ID, card.DeckID)
		}
	}
	for _, deck := range c.decks.order {
		seen := make(map[string]bool, len(deck.Cards))
		for _, id := range deck.Cards {
			if seen[id] {
				return fmt.Errorf("deck %q lists card %q twice", deck.ID, id)
			}
			seen[id] = true
			card := c.cards.Get(id)
			if card == nil {
				return fmt.Errorf("deck %q lists unknown card %q", deck.ID, id)
			}
			if card.DeckID != deck.ID {
				return fmt.Errorf("deck %q lists card %q owned by %q", deck.ID, id, card.DeckID)
			}
		}
	}
	return nil
}

func deckLabel(id string) string {
	if id == "" {
		return "(none)"
	}
	return id
}
