package view

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/phanxgames/deckui"
	"github.com/tanema/gween/ease"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// RunConfig configures the window and look of a table run with Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool

	// SettleDuration is how long, in seconds, a dropped card takes to ease
	// into its slot. Zero disables settling.
	SettleDuration float32
	// SettleEase is the easing function for settling. Defaults to
	// ease.OutCubic.
	SettleEase ease.TweenFunc

	Palette Palette
}

// Palette holds the colors the table is drawn with. Zero fields use the
// package defaults.
type Palette struct {
	Table       Color
	Deck        Color
	Placeholder Color
	CardFront   Color
	CardBack    Color
	CardEdge    Color
}

func (cfg RunConfig) withDefaults() RunConfig {
	if cfg.Title == "" {
		cfg.Title = "deckui"
	}
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.SettleEase == nil {
		cfg.SettleEase = ease.OutCubic
	}
	p := &cfg.Palette
	orDefault(&p.Table, ColorTable)
	orDefault(&p.Deck, ColorDeck)
	orDefault(&p.Placeholder, ColorPlaceholder)
	orDefault(&p.CardFront, ColorCardFront)
	orDefault(&p.CardBack, ColorCardBack)
	orDefault(&p.CardEdge, ColorCardEdge)
	return cfg
}

func orDefault(c *Color, def Color) {
	if *c == (Color{}) {
		*c = def
	}
}

// Game implements ebiten.Game for a deckui.Table. It forwards mouse and touch
// input to the table, settles dropped cards into their slots, and draws decks
// and cards in paint order.
type Game struct {
	table *deckui.Table
	cfg   RunConfig

	settles   map[string]*settle
	lastFloat map[string]deckui.Vec2

	touchIDs  []ebiten.TouchID
	touchMap  [maxPointers]ebiten.TouchID
	touchUsed [maxPointers]bool
	touchLast [maxPointers]deckui.Vec2

	white *ebiten.Image
}

// NewGame creates a Game for table and subscribes to its controller's change
// events.
func NewGame(table *deckui.Table, cfg RunConfig) *Game {
	g := &Game{
		table:     table,
		cfg:       cfg.withDefaults(),
		settles:   make(map[string]*settle),
		lastFloat: make(map[string]deckui.Vec2),
	}
	table.Controller().OnChange(g.onChange)
	return g
}

// Run opens a window and runs table until the window is closed.
func Run(table *deckui.Table, cfg RunConfig) error {
	g := NewGame(table, cfg)
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	return ebiten.RunGame(g)
}

func (g *Game) onChange(ev deckui.ChangeEvent) {
	switch ev.Type {
	case deckui.ChangeMoved, deckui.ChangePlaced:
		g.lastFloat[ev.CardID] = deckui.Vec2{X: ev.X, Y: ev.Y}
		delete(g.settles, ev.CardID)
	case deckui.ChangeDropped:
		from, ok := g.lastFloat[ev.CardID]
		delete(g.lastFloat, ev.CardID)
		if !ok || ev.ToDeck == "" || g.cfg.SettleDuration <= 0 {
			return
		}
		card := g.table.Controller().Cards().Get(ev.CardID)
		if card == nil {
			return
		}
		slot := g.table.CardRect(card)
		to := deckui.Vec2{X: slot.X, Y: slot.Y}
		g.settles[ev.CardID] = newSettle(from, to, g.cfg.SettleDuration, g.cfg.SettleEase)
	}
}

// stepSettles advances every active settle and drops finished ones.
func (g *Game) stepSettles(dt float32) {
	for id, s := range g.settles {
		s.update(dt)
		if s.done {
			delete(g.settles, id)
		}
	}
}

// cardRect returns where card is drawn this frame.
func (g *Game) cardRect(card *deckui.Card) deckui.Rect {
	r := g.table.CardRect(card)
	if s, ok := g.settles[card.ID]; ok && card.Position == nil {
		r.X, r.Y = s.x, s.y
	}
	return r
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.stepSettles(float32(1.0 / float64(ebiten.TPS())))
	if g.table.Update() {
		return nil
	}
	g.processMousePointer()
	g.processTouchPointers()
	return nil
}

// processMousePointer handles mouse input (pointer 0).
func (g *Game) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	g.table.ProcessPointer(0, float64(mx), float64(my), pressed)
}

// processTouchPointers handles touch input (pointers 1-9).
func (g *Game) processTouchPointers() {
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])

	var activeSlots [maxPointers]bool
	for _, tid := range g.touchIDs {
		slot := g.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		g.touchLast[slot] = deckui.Vec2{X: float64(tx), Y: float64(ty)}
		g.table.ProcessPointer(slot, float64(tx), float64(ty), true)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if g.touchUsed[i] && !activeSlots[i] {
			last := g.touchLast[i]
			g.table.ProcessPointer(i, last.X, last.Y, false)
			g.touchUsed[i] = false
			g.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (g *Game) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if g.touchUsed[i] && g.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !g.touchUsed[i] {
			g.touchUsed[i] = true
			g.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.white == nil {
		g.white = ebiten.NewImage(1, 1)
		g.white.Fill(Color{R: 1, G: 1, B: 1, A: 1}.RGBA())
	}
	pal := g.cfg.Palette
	screen.Fill(pal.Table.RGBA())

	for _, deck := range g.table.Controller().Decks().All() {
		if g.table.ShowPlaceholder(deck.ID) {
			g.fillRect(screen, g.table.SlotRect(deck, deck.Len()), pal.Placeholder)
		}
		g.strokeRect(screen, deck.Bounds, 1, pal.Deck)
		name := deck.Props.Name
		if name == "" {
			name = deck.ID
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s (%d)", name, deck.Len()),
			int(deck.Bounds.X), int(deck.Bounds.Y)-16)
	}

	for _, card := range g.table.PaintOrder() {
		r := g.cardRect(card)
		fill := pal.CardBack
		if card.Props.FaceUp {
			fill = pal.CardFront
		}
		g.fillRect(screen, r, fill)
		g.strokeRect(screen, r, 1, pal.CardEdge)
		ebitenutil.DebugPrintAt(screen, card.Label(), int(r.X)+4, int(r.Y)+4)
	}

	if g.table.Controller().SandboxMode() {
		ebitenutil.DebugPrintAt(screen, "sandbox", 4, g.cfg.Height-16)
	}
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// fillRect draws a solid rectangle by scaling the 1x1 white image.
func (g *Game) fillRect(dst *ebiten.Image, r deckui.Rect, c Color) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleWithColor(c.RGBA())
	dst.DrawImage(g.white, &op)
}

func (g *Game) strokeRect(dst *ebiten.Image, r deckui.Rect, w float64, c Color) {
	g.fillRect(dst, deckui.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: w}, c)
	g.fillRect(dst, deckui.Rect{X: r.X, Y: r.Y + r.Height - w, Width: r.Width, Height: w}, c)
	g.fillRect(dst, deckui.Rect{X: r.X, Y: r.Y, Width: w, Height: r.Height}, c)
	g.fillRect(dst, deckui.Rect{X: r.X + r.Width - w, Y: r.Y, Width: w, Height: r.Height}, c)
}
