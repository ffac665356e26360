package deckui

// Position is a card's free-floating placement. A card with a nil Position
// flows in its deck's default layout.
type Position struct {
	X, Y   float64
	ZIndex int
}

// CardProps are caller-supplied properties passed through unmodified.
type CardProps struct {
	Front    string
	Back     string
	FaceUp   bool
	UserData any

	// OnClick fires when the card is pressed and released without dragging.
	OnClick func(*Card)
}

// Card is one draggable unit.
type Card struct {
	ID       string
	Position *Position
	DeckID   string // owning deck; empty when untethered
	Props    CardProps
}

// Floating reports whether the card has a determined position.
func (c *Card) Floating() bool {
	return c.Position != nil
}

// Label returns the text a host should show for the card: the front when
// face up, otherwise the back, falling back to the id.
func (c *Card) Label() string {
	label := c.Props.Back
	if c.Props.FaceUp {
		label = c.Props.Front
	}
	if label == "" {
		return c.ID
	}
	return label
}

// CardRegistry maps card ids to card state. Iteration follows registration
// order.
type CardRegistry struct {
	byID  map[string]*Card
	order []*Card
}

func newCardRegistry() *CardRegistry {
	return &CardRegistry{byID: make(map[string]*Card)}
}

// Get returns the card with the given id, or nil.
func (r *CardRegistry) Get(id string) *Card {
	return r.byID[id]
}

// Len returns the number of registered cards.
func (r *CardRegistry) Len() int {
	return len(r.order)
}

// All returns every card in registration order. The returned slice MUST NOT
// be mutated by the caller.
func (r *CardRegistry) All() []*Card {
	return r.order
}

func (r *CardRegistry) add(c *Card) {
	r.byID[c.ID] = c
	r.order = append(r.order, c)
}

func (r *CardRegistry) remove(id string) *Card {
	c, ok := r.byID[id]
	if !ok {
		return nil
	}
	delete(r.byID, id)
	for i, o := range r.order {
		if o == c {
			copy(r.order[i:], r.order[i+1:])
			r.order[len(r.order)-1] = nil
			r.order = r.order[:len(r.order)-1]
			break
		}
	}
	return c
}
