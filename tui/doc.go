// Package tui is a terminal host for deckui built on Bubble Tea.
//
// Each deck is a column and a trailing "table" column holds untethered
// cards. Space picks up the top card of the selected column (MoveCard) and
// drops a carried card into the selected column (DropCard). Esc puts it back
// where it came from.
package tui
