// Package view renders a deckui.Table with ebiten.
//
// [Run] opens a window, feeds mouse and touch input into the table's
// pointer state machine, and draws decks and cards in paint order. Cards
// dropped into a deck ease into their slot with a gween tween.
//
//	table := deckui.NewTable(ctrl, layout.Size())
//	err := view.Run(table, view.RunConfig{Title: "Solitaire", SettleDuration: 0.15})
//
// Hosts that manage their own ebiten.Game can embed a [Game] from [NewGame]
// instead.
package view
