package deckui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// newTwoDeckTable builds a table with "left" at (20,20) holding c1 and c2
// stacked without splay, and an empty "right" at (200,20). Cards are 60x90.
func newTwoDeckTable(t *testing.T) *Table {
	t.Helper()
	c := NewController(DefaultConfig())
	c.RegisterDeck(&Deck{ID: "left", Bounds: Rect{X: 20, Y: 20, Width: 60, Height: 90}})
	c.RegisterDeck(&Deck{ID: "right", Bounds: Rect{X: 200, Y: 20, Width: 60, Height: 90}})
	c.RegisterCard(&Card{ID: "c1", DeckID: "left"})
	c.RegisterCard(&Card{ID: "c2", DeckID: "left"})
	return NewTable(c, Vec2{X: 60, Y: 90})
}

func paintIDs(tb *Table) []string {
	var ids []string
	for _, c := range tb.PaintOrder() {
		ids = append(ids, c.ID)
	}
	return ids
}

// --- Geometry ---

func TestNewTableDefaultCardSize(t *testing.T) {
	tb := NewTable(NewController(DefaultConfig()), Vec2{})
	if tb.CardSize() != DefaultCardSize {
		t.Errorf("CardSize = %v, want %v", tb.CardSize(), DefaultCardSize)
	}
}

func TestSlotRectSplay(t *testing.T) {
	tb := NewTable(NewController(DefaultConfig()), Vec2{X: 10, Y: 20})
	deck := &Deck{Bounds: Rect{X: 100, Y: 50}, Props: DeckProps{Splay: Vec2{X: 15, Y: 2}}}

	tests := []struct {
		index int
		want  Rect
	}{
		{0, Rect{X: 100, Y: 50, Width: 10, Height: 20}},
		{1, Rect{X: 115, Y: 52, Width: 10, Height: 20}},
		{3, Rect{X: 145, Y: 56, Width: 10, Height: 20}},
	}
	for _, tt := range tests {
		if got := tb.SlotRect(deck, tt.index); got != tt.want {
			t.Errorf("SlotRect(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}
}

func TestCardRect(t *testing.T) {
	tb := newTwoDeckTable(t)
	c := tb.Controller()

	if got := tb.CardRect(c.Cards().Get("c2")); got != (Rect{X: 20, Y: 20, Width: 60, Height: 90}) {
		t.Errorf("deck card rect = %v", got)
	}
	c.MoveCard("c2")
	c.SetCardGeometry("c2", 300, 310)
	if got := tb.CardRect(c.Cards().Get("c2")); got != (Rect{X: 300, Y: 310, Width: 60, Height: 90}) {
		t.Errorf("floating card rect = %v", got)
	}
}

func TestDeckRectCoversNextSlot(t *testing.T) {
	c := NewController(DefaultConfig())
	deck := c.RegisterDeck(&Deck{ID: "d", Bounds: Rect{X: 0, Y: 0, Width: 60, Height: 90},
		Props: DeckProps{Splay: Vec2{Y: 20}}})
	c.RegisterCard(&Card{ID: "a", DeckID: "d"})
	c.RegisterCard(&Card{ID: "b", DeckID: "d"})
	tb := NewTable(c, Vec2{X: 60, Y: 90})

	got := tb.DeckRect(deck)
	want := Rect{X: 0, Y: 0, Width: 60, Height: 130}
	if got != want {
		t.Errorf("DeckRect = %v, want %v", got, want)
	}
}

func TestPaintOrder(t *testing.T) {
	tb := newTwoDeckTable(t)
	c := tb.Controller()
	c.RegisterCard(&Card{ID: "r1", DeckID: "right"})
	c.RegisterCard(&Card{ID: "loose", Position: &Position{ZIndex: 0}})

	if diff := cmp.Diff([]string{"c1", "c2", "r1", "loose"}, paintIDs(tb)); diff != "" {
		t.Errorf("initial order (-want +got):\n%s", diff)
	}

	c.MoveCard("c1")
	c.MoveCard("r1")
	if diff := cmp.Diff([]string{"c2", "loose", "c1", "r1"}, paintIDs(tb)); diff != "" {
		t.Errorf("after moves (-want +got):\n%s", diff)
	}

	c.MoveCard("c1")
	if diff := cmp.Diff([]string{"c2", "loose", "r1", "c1"}, paintIDs(tb)); diff != "" {
		t.Errorf("after re-lifting c1 (-want +got):\n%s", diff)
	}
}

func TestCardAtTopmost(t *testing.T) {
	tb := newTwoDeckTable(t)
	if got := tb.CardAt(50, 50); got == nil || got.ID != "c2" {
		t.Errorf("CardAt = %v, want c2 (top of left)", got)
	}
	tb.Controller().MoveCard("c1")
	if got := tb.CardAt(50, 50); got == nil || got.ID != "c1" {
		t.Errorf("CardAt = %v, want c1 after lifting", got)
	}
	if got := tb.CardAt(500, 500); got != nil {
		t.Errorf("CardAt(empty) = %v, want nil", got)
	}
}

func TestDeckAt(t *testing.T) {
	tb := newTwoDeckTable(t)
	tests := []struct {
		name string
		x, y float64
		want string
	}{
		{"left", 30, 30, "left"},
		{"right", 250, 100, "right"},
		{"gap", 150, 50, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ""
			if d := tb.DeckAt(tt.x, tt.y); d != nil {
				got = d.ID
			}
			if got != tt.want {
				t.Errorf("DeckAt(%v, %v) = %q, want %q", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

// --- Pointer state machine ---

func TestDragBetweenDecks(t *testing.T) {
	tb := newTwoDeckTable(t)
	c := tb.Controller()
	var removed int
	c.Decks().Get("left").Props.OnRemove = func(*Card) { removed++ }

	tb.ProcessPointer(0, 50, 50, true)
	tb.ProcessPointer(0, 120, 55, true)

	c2 := c.Cards().Get("c2")
	if !tb.Dragging() {
		t.Fatal("drag should have started")
	}
	if c2.Position == nil {
		t.Fatal("dragged card should float")
	}
	// Grabbed 30,30 into the card.
	if c2.Position.X != 90 || c2.Position.Y != 25 {
		t.Errorf("geometry = (%v, %v), want (90, 25)", c2.Position.X, c2.Position.Y)
	}
	if !tb.ShowPlaceholder("right") {
		t.Error("placeholder should show while dragging")
	}

	tb.ProcessPointer(0, 230, 60, true)
	if tb.DropTarget() != "right" {
		t.Errorf("DropTarget = %q, want right", tb.DropTarget())
	}

	tb.ProcessPointer(0, 230, 60, false)
	if tb.Dragging() {
		t.Error("drag should end on release")
	}
	if tb.DropTarget() != "" {
		t.Errorf("DropTarget = %q after release", tb.DropTarget())
	}
	assertMembers(t, c, "left", []string{"c1"})
	assertMembers(t, c, "right", []string{"c2"})
	if c2.Position != nil {
		t.Error("card dropped into a deck should stop floating")
	}
	if removed != 1 {
		t.Errorf("OnRemove fired %d times, want 1", removed)
	}
	assertValid(t, c)
}

func TestDragToEmptySpaceUntethers(t *testing.T) {
	tb := newTwoDeckTable(t)
	c := tb.Controller()

	tb.ProcessPointer(0, 50, 50, true)
	tb.ProcessPointer(0, 140, 300, true)
	tb.ProcessPointer(0, 140, 300, false)

	c2 := c.Cards().Get("c2")
	if c2.DeckID != "" {
		t.Errorf("DeckID = %q, want empty", c2.DeckID)
	}
	if c2.Position == nil || c2.Position.X != 110 || c2.Position.Y != 270 {
		t.Errorf("Position = %+v, want (110, 270)", c2.Position)
	}
	assertMembers(t, c, "left", []string{"c1"})
}

func TestDragBackIntoSourceDeck(t *testing.T) {
	tb := newTwoDeckTable(t)
	c := tb.Controller()
	var removed int
	c.Decks().Get("left").Props.OnRemove = func(*Card) { removed++ }

	tb.ProcessPointer(0, 50, 50, true)
	tb.ProcessPointer(0, 60, 70, true)
	tb.ProcessPointer(0, 60, 70, false)

	assertMembers(t, c, "left", []string{"c1", "c2"})
	if removed != 0 {
		t.Errorf("OnRemove fired %d times, want 0", removed)
	}
	if c.Cards().Get("c2").Position != nil {
		t.Error("position should be cleared")
	}
}

func TestDeadZoneSuppressesDrag(t *testing.T) {
	tb := newTwoDeckTable(t)
	var moved int
	tb.Controller().OnChange(func(ev ChangeEvent) {
		if ev.Type == ChangeMoved {
			moved++
		}
	})

	tb.ProcessPointer(0, 50, 50, true)
	tb.ProcessPointer(0, 52, 52, true)
	if tb.Dragging() || moved != 0 {
		t.Errorf("moved within dead zone: dragging=%v moved=%d", tb.Dragging(), moved)
	}

	tb.SetDragDeadZone(0)
	tb.ProcessPointer(0, 53, 52, true)
	if !tb.Dragging() || moved != 1 {
		t.Errorf("dead zone 0: dragging=%v moved=%d", tb.Dragging(), moved)
	}
}

func TestDragIgnoredInSandbox(t *testing.T) {
	tb := newTwoDeckTable(t)
	c := tb.Controller()
	c.SetSandboxMode(true)
	var changes int
	c.OnChange(func(ChangeEvent) { changes++ })

	tb.ProcessPointer(0, 50, 50, true)
	tb.ProcessPointer(0, 230, 60, true)
	tb.ProcessPointer(0, 230, 60, false)

	if tb.Dragging() || changes != 0 {
		t.Errorf("sandbox drag: dragging=%v changes=%d", tb.Dragging(), changes)
	}
	assertMembers(t, c, "left", []string{"c1", "c2"})
	assertMembers(t, c, "right", nil)
}

func TestClickFiresCardAndDeckCallbacks(t *testing.T) {
	tb := newTwoDeckTable(t)
	c := tb.Controller()

	var cardClicks, deckClicks []string
	c.Cards().Get("c2").Props.OnClick = func(card *Card) { cardClicks = append(cardClicks, card.ID) }
	c.Decks().Get("right").Props.OnClick = func(d *Deck) { deckClicks = append(deckClicks, d.ID) }

	tb.ProcessPointer(0, 50, 50, true)
	tb.ProcessPointer(0, 50, 50, false)
	tb.ProcessPointer(0, 230, 60, true)
	tb.ProcessPointer(0, 231, 61, false)

	// Pressed on a card, released elsewhere: no click.
	tb.ProcessPointer(0, 50, 50, true)
	tb.ProcessPointer(0, 52, 51, true)
	tb.SetDragDeadZone(1000)
	tb.ProcessPointer(0, 500, 500, true)
	tb.ProcessPointer(0, 500, 500, false)

	if diff := cmp.Diff([]string{"c2"}, cardClicks); diff != "" {
		t.Errorf("card clicks (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"right"}, deckClicks); diff != "" {
		t.Errorf("deck clicks (-want +got):\n%s", diff)
	}
}

func TestSecondPointerCannotStealDraggedCard(t *testing.T) {
	tb := newTwoDeckTable(t)
	c := tb.Controller()

	tb.ProcessPointer(1, 50, 50, true)
	tb.ProcessPointer(1, 70, 70, true)
	z := c.Cards().Get("c2").Position.ZIndex

	tb.ProcessPointer(2, 75, 75, true)
	tb.ProcessPointer(2, 150, 150, true)

	if got := c.Cards().Get("c2").Position.ZIndex; got != z {
		t.Errorf("second pointer re-lifted card: z %d -> %d", z, got)
	}
}

func TestConcurrentDragsKeepOwnDropTargets(t *testing.T) {
	tb := newTwoDeckTable(t)
	c := tb.Controller()

	// Pointer 1 carries c2 over "right".
	tb.ProcessPointer(1, 50, 50, true)
	tb.ProcessPointer(1, 230, 60, true)
	if tb.DropTarget() != "right" {
		t.Fatalf("DropTarget = %q, want right", tb.DropTarget())
	}

	// Pointer 2 picks up c1, now exposed in "left", and carries it off
	// every deck.
	tb.ProcessPointer(2, 50, 50, true)
	tb.ProcessPointer(2, 400, 400, true)
	if tb.pointers[2].target != "" {
		t.Errorf("pointer 2 target = %q, want none", tb.pointers[2].target)
	}
	if tb.DropTarget() != "right" {
		t.Errorf("DropTarget = %q after second drag moved, want right", tb.DropTarget())
	}

	tb.ProcessPointer(2, 400, 400, false)
	if tb.DropTarget() != "right" {
		t.Errorf("DropTarget = %q after second drag ended, want right", tb.DropTarget())
	}
	if !tb.ShowPlaceholder("right") {
		t.Error("right should show its placeholder while pointer 1 hovers it")
	}

	tb.ProcessPointer(1, 230, 60, false)
	assertMembers(t, c, "right", []string{"c2"})
	assertMembers(t, c, "left", nil)
	if c.Cards().Get("c1").DeckID != "" {
		t.Error("c1 should be untethered")
	}
	if tb.DropTarget() != "" {
		t.Errorf("DropTarget = %q with no drags, want none", tb.DropTarget())
	}
}

func TestProcessPointerIgnoresBadIDs(t *testing.T) {
	tb := newTwoDeckTable(t)
	tb.ProcessPointer(-1, 50, 50, true)
	tb.ProcessPointer(maxPointers, 50, 50, true)
	if tb.pointers[0].down {
		t.Error("out of range pointer ids should be ignored")
	}
}
