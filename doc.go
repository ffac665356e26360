// Package deckui is the drag-and-drop state engine behind a card/deck widget
// set.
//
// A [Controller] owns the cards and decks of one widget tree. It tracks each
// card's floating [Position], the deck that owns it, a z-order that keeps the
// most recently moved card on top, and it hands out ids for cards created at
// runtime. Rendering is left to a host (see the view and tui packages), which
// reports mounts, forwards gestures, and redraws when [Controller.OnChange]
// fires.
//
// # Quick start
//
//	ctrl := deckui.NewController(deckui.DefaultConfig())
//	ctrl.RegisterDeck(&deckui.Deck{ID: "draw"})
//	ctrl.RegisterDeck(&deckui.Deck{ID: "discard", Props: deckui.DeckProps{
//		OnRemove: func(c *deckui.Card) { log.Printf("%s left discard", c.ID) },
//	}})
//	ctrl.RegisterCard(&deckui.Card{ID: "ace", DeckID: "draw"})
//
//	ctrl.OnChange(func(ev deckui.ChangeEvent) { redraw() })
//
//	ctrl.MoveCard("ace")             // lift: topmost z-index, floating
//	ctrl.DropCard("ace", "discard")  // file into discard
//	ctrl.DropCard("ace", "")         // release untethered
//
// # Sandbox mode
//
// With [Config.SandboxMode] set, MoveCard, DropCard and SetCardGeometry do
// nothing and emit nothing. Use it to render static previews. GenID and
// registration keep working.
//
// # Pointer input
//
// [Table] adds geometry: deck slots, hit testing, paint order, and a
// per-pointer state machine. Hosts call [Table.ProcessPointer] every frame;
// a press beyond the drag dead zone lifts the card with MoveCard, and the
// release drops it into the deck under the pointer. [Table.InjectDrag] and
// [LoadScript] drive the same machine without a real pointer.
//
// # Layouts
//
// [LoadLayout] reads a YAML table description and [Layout.Mount] registers
// it, standing in for the mount events a component tree would deliver.
package deckui
