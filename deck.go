package deckui

// DeckProps are caller-supplied deck properties, including lifecycle hooks.
type DeckProps struct {
	Name     string
	Splay    Vec2 // offset between consecutive member slots
	UserData any

	// OnRemove fires when a drop takes a card out of this deck.
	OnRemove func(*Card)
	// OnDrop fires when a drop files a card that was not already a member.
	OnDrop func(*Card)
	// OnClick fires when the deck is clicked on an empty area.
	OnClick func(*Deck)
}

// Deck is an ordered pile of cards. The last member is the top.
type Deck struct {
	ID     string
	Cards  []string
	Bounds Rect
	Props  DeckProps
}

// Len returns the number of member cards.
func (d *Deck) Len() int {
	return len(d.Cards)
}

// Top returns the id of the top card, or "" if the deck is empty.
func (d *Deck) Top() string {
	if len(d.Cards) == 0 {
		return ""
	}
	return d.Cards[len(d.Cards)-1]
}

// IndexOf returns the position of cardID in the member list, or -1.
func (d *Deck) IndexOf(cardID string) int {
	for i, id := range d.Cards {
		if id == cardID {
			return i
		}
	}
	return -1
}

// Contains reports whether cardID is a member.
func (d *Deck) Contains(cardID string) bool {
	return d.IndexOf(cardID) >= 0
}

func (d *Deck) push(cardID string) {
	d.Cards = append(d.Cards, cardID)
}

// remove deletes cardID from the member list, preserving order.
// Reports whether it was present.
func (d *Deck) remove(cardID string) bool {
	i := d.IndexOf(cardID)
	if i < 0 {
		return false
	}
	copy(d.Cards[i:], d.Cards[i+1:])
	d.Cards[len(d.Cards)-1] = ""
	d.Cards = d.Cards[:len(d.Cards)-1]
	return true
}

// DeckRegistry maps deck ids to deck state. Iteration follows registration
// order.
type DeckRegistry struct {
	byID  map[string]*Deck
	order []*Deck
}

func newDeckRegistry() *DeckRegistry {
	return &DeckRegistry{byID: make(map[string]*Deck)}
}

// Get returns the deck with the given id, or nil.
func (r *DeckRegistry) Get(id string) *Deck {
	return r.byID[id]
}

// Len returns the number of registered decks.
func (r *DeckRegistry) Len() int {
	return len(r.order)
}

// All returns every deck in registration order. The returned slice MUST NOT
// be mutated by the caller.
func (r *DeckRegistry) All() []*Deck {
	return r.order
}

func (r *DeckRegistry) add(d *Deck) {
	r.byID[d.ID] = d
	r.order = append(r.order, d)
}

func (r *DeckRegistry) remove(id string) *Deck {
	d, ok := r.byID[id]
	if !ok {
		return nil
	}
	delete(r.byID, id)
	for i, o := range r.order {
		if o == d {
			copy(r.order[i:], r.order[i+1:])
			r.order[len(r.order)-1] = nil
			r.order = r.order[:len(r.order)-1]
			break
		}
	}
	return d
}
