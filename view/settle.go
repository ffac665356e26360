package view

import (
	"github.com/phanxgames/deckui"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// settle eases a card from where it was released into its deck slot. While
// active, the card is drawn at (x, y) instead of its slot.
type settle struct {
	tweens [2]*gween.Tween
	x, y   float64
	done   bool
}

func newSettle(from, to deckui.Vec2, duration float32, fn ease.TweenFunc) *settle {
	s := &settle{x: from.X, y: from.Y}
	s.tweens[0] = gween.New(float32(from.X), float32(to.X), duration, fn)
	s.tweens[1] = gween.New(float32(from.Y), float32(to.Y), duration, fn)
	return s
}

// update advances both tweens by dt seconds.
func (s *settle) update(dt float32) {
	if s.done {
		return
	}
	x, doneX := s.tweens[0].Update(dt)
	y, doneY := s.tweens[1].Update(dt)
	s.x, s.y = float64(x), float64(y)
	s.done = doneX && doneY
}
