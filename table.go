package deckui

import (
	"math"
	"sort"
)

const (
	maxPointers         = 10  // pointer 0 = mouse, 1-9 = touch
	defaultDragDeadZone = 4.0 // pixels
)

// --- Per-pointer state ---

type pointerState struct {
	down     bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	cardID   string // card under the pointer at press time
	deckID   string // deck under the pointer at press time, when no card was hit
	grabX    float64
	grabY    float64
	dragging bool
	target   string // deck under the dragged card
}

// Table adds geometry to a Controller: where deck-flow cards sit, what is
// under a pointer, and the pointer state machine that turns press/move/release
// samples into MoveCard and DropCard calls. Hosts feed it pointer samples
// every frame and draw from PaintOrder.
type Table struct {
	ctrl     *Controller
	cardSize Vec2

	pointers     [maxPointers]pointerState
	dragDeadZone float64

	injectQueue []syntheticPointerEvent
	runner      *ScriptRunner

	paintBuf []*Card
}

// NewTable wraps ctrl. Cards are hit-tested and laid out at cardSize; a zero
// size falls back to DefaultCardSize.
func NewTable(ctrl *Controller, cardSize Vec2) *Table {
	if cardSize.X <= 0 || cardSize.Y <= 0 {
		cardSize = DefaultCardSize
	}
	return &Table{
		ctrl:         ctrl,
		cardSize:     cardSize,
		dragDeadZone: defaultDragDeadZone,
	}
}

// Controller returns the wrapped controller.
func (t *Table) Controller() *Controller {
	return t.ctrl
}

// CardSize returns the size every card is laid out and hit-tested at.
func (t *Table) CardSize() Vec2 {
	return t.cardSize
}

// SetDragDeadZone sets the minimum movement in pixels before a drag starts.
func (t *Table) SetDragDeadZone(pixels float64) {
	t.dragDeadZone = pixels
}

// DropTarget returns the deck under the card dragged by the lowest-numbered
// dragging pointer, or "".
func (t *Table) DropTarget() string {
	for i := range t.pointers {
		if ps := &t.pointers[i]; ps.dragging && ps.target != "" {
			return ps.target
		}
	}
	return ""
}

// ShowPlaceholder reports whether deckID should present its empty-slot cue:
// it is the drop target of any dragging pointer, or a card is floating.
func (t *Table) ShowPlaceholder(deckID string) bool {
	for i := range t.pointers {
		if ps := &t.pointers[i]; ps.dragging && ps.target == deckID {
			return t.ctrl.ShowPlaceholder(deckID, ps.target)
		}
	}
	return t.ctrl.ShowPlaceholder(deckID, "")
}

// Dragging reports whether any pointer is dragging a card.
func (t *Table) Dragging() bool {
	for i := range t.pointers {
		if t.pointers[i].dragging {
			return true
		}
	}
	return false
}

// --- Geometry ---

// SlotRect returns the rectangle of the index-th member slot of deck.
func (t *Table) SlotRect(deck *Deck, index int) Rect {
	return Rect{
		X:      deck.Bounds.X + float64(index)*deck.Props.Splay.X,
		Y:      deck.Bounds.Y + float64(index)*deck.Props.Splay.Y,
		Width:  t.cardSize.X,
		Height: t.cardSize.Y,
	}
}

// CardRect returns where card is drawn: its floating position if it has one,
// otherwise its slot in its deck. An untethered card without a position sits
// at the origin.
func (t *Table) CardRect(card *Card) Rect {
	if card.Position != nil {
		return Rect{X: card.Position.X, Y: card.Position.Y, Width: t.cardSize.X, Height: t.cardSize.Y}
	}
	if card.DeckID != "" {
		if deck := t.ctrl.decks.Get(card.DeckID); deck != nil {
			if i := deck.IndexOf(card.ID); i >= 0 {
				return t.SlotRect(deck, i)
			}
		}
	}
	return Rect{Width: t.cardSize.X, Height: t.cardSize.Y}
}

// DeckRect returns the deck's hit area: its bounds grown to cover the slot
// the next card would occupy.
func (t *Table) DeckRect(deck *Deck) Rect {
	return deck.Bounds.Union(t.SlotRect(deck, len(deck.Cards)))
}

// PaintOrder returns cards in draw order: deck-flow cards deck by deck in
// member order, then floating cards by ascending ZIndex. The returned slice
// is reused by the next call and MUST NOT be retained.
func (t *Table) PaintOrder() []*Card {
	buf := t.paintBuf[:0]
	for _, deck := range t.ctrl.decks.order {
		for _, id := range deck.Cards {
			if card := t.ctrl.cards.Get(id); card != nil && card.Position == nil {
				buf = append(buf, card)
			}
		}
	}
	flow := len(buf)
	for _, card := range t.ctrl.cards.order {
		if card.Position != nil {
			buf = append(buf, card)
		}
	}
	floating := buf[flow:]
	sort.SliceStable(floating, func(i, j int) bool {
		return floating[i].Position.ZIndex < floating[j].Position.ZIndex
	})
	t.paintBuf = buf
	return buf
}

// CardAt returns the topmost card containing (x, y), or nil.
func (t *Table) CardAt(x, y float64) *Card {
	order := t.PaintOrder()
	// Iterate backward (reverse painter order): topmost card first.
	for i := len(order) - 1; i >= 0; i-- {
		if t.CardRect(order[i]).Contains(x, y) {
			return order[i]
		}
	}
	return nil
}

// DeckAt returns the last registered deck whose hit area contains (x, y), or
// nil. Cards are ignored, so a deck is found underneath a dragged card.
func (t *Table) DeckAt(x, y float64) *Deck {
	decks := t.ctrl.decks.order
	for i := len(decks) - 1; i >= 0; i-- {
		if t.DeckRect(decks[i]).Contains(x, y) {
			return decks[i]
		}
	}
	return nil
}

// --- Input processing ---

// ProcessPointer runs the gesture state machine for one pointer sample.
// Hosts call it once per frame per pointer with the pointer's table
// coordinates and whether its button is held.
func (t *Table) ProcessPointer(pointerID int, x, y float64, pressed bool) {
	if pointerID < 0 || pointerID >= maxPointers {
		return
	}
	ps := &t.pointers[pointerID]

	if pressed && !ps.down {
		// Just pressed: remember what was hit and where it was grabbed.
		ps.down = true
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		ps.dragging = false
		ps.cardID, ps.deckID = "", ""
		if card := t.CardAt(x, y); card != nil {
			r := t.CardRect(card)
			ps.cardID = card.ID
			ps.grabX = x - r.X
			ps.grabY = y - r.Y
		} else if deck := t.DeckAt(x, y); deck != nil {
			ps.deckID = deck.ID
		}
	} else if !pressed && ps.down {
		// Just released.
		if ps.dragging {
			t.endDrag(ps, x, y)
		} else {
			t.fireClick(ps, x, y)
		}
		*ps = pointerState{lastX: x, lastY: y}
	} else if pressed && ps.down {
		// Held down, possibly moved.
		if x != ps.lastX || y != ps.lastY {
			if !ps.dragging && ps.cardID != "" {
				dx := x - ps.startX
				dy := y - ps.startY
				if math.Sqrt(dx*dx+dy*dy) > t.dragDeadZone {
					t.beginDrag(ps)
				}
			}
			if ps.dragging {
				t.ctrl.SetCardGeometry(ps.cardID, x-ps.grabX, y-ps.grabY)
				ps.target = t.deckIDAt(x, y)
			}
		}
		ps.lastX, ps.lastY = x, y
	} else {
		ps.lastX, ps.lastY = x, y
	}
}

// beginDrag lifts the pressed card. Drags never start in sandbox mode, or
// when another pointer already holds the card.
func (t *Table) beginDrag(ps *pointerState) {
	if t.ctrl.SandboxMode() {
		return
	}
	card := t.ctrl.cards.Get(ps.cardID)
	if card == nil {
		ps.cardID = ""
		return
	}
	for i := range t.pointers {
		other := &t.pointers[i]
		if other != ps && other.dragging && other.cardID == ps.cardID {
			return
		}
	}
	origin := t.CardRect(card)
	t.ctrl.MoveCard(card.ID)
	t.ctrl.SetCardGeometry(card.ID, origin.X, origin.Y)
	ps.dragging = true
}

func (t *Table) endDrag(ps *pointerState, x, y float64) {
	if t.ctrl.cards.Get(ps.cardID) == nil {
		return
	}
	t.ctrl.DropCard(ps.cardID, t.deckIDAt(x, y))
}

func (t *Table) deckIDAt(x, y float64) string {
	if deck := t.DeckAt(x, y); deck != nil {
		return deck.ID
	}
	return ""
}

// fireClick delivers a click when the release lands on what was pressed.
func (t *Table) fireClick(ps *pointerState, x, y float64) {
	if ps.cardID != "" {
		card := t.ctrl.cards.Get(ps.cardID)
		if card == nil || !t.CardRect(card).Contains(x, y) {
			return
		}
		if card.Props.OnClick != nil {
			card.Props.OnClick(card)
		}
		return
	}
	if ps.deckID != "" {
		deck := t.ctrl.decks.Get(ps.deckID)
		if deck == nil || !t.DeckRect(deck).Contains(x, y) {
			return
		}
		if deck.Props.OnClick != nil {
			deck.Props.OnClick(deck)
		}
	}
}

// Update advances the attached script runner and consumes at most one
// injected pointer event. It reports whether an injected event was consumed,
// in which case hosts should skip real pointer input this frame.
func (t *Table) Update() bool {
	if t.runner != nil {
		t.runner.step(t)
	}
	return t.processInjectedInput()
}
