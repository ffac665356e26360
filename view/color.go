package view

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to ebiten.
type Color struct {
	R, G, B, A float64
}

// Default palette.
var (
	ColorTable       = Color{R: 0.09, G: 0.29, B: 0.18, A: 1} // felt green
	ColorDeck        = Color{R: 0.85, G: 0.85, B: 0.75, A: 1}
	ColorPlaceholder = Color{R: 1, G: 1, B: 1, A: 0.15}
	ColorCardFront   = Color{R: 0.97, G: 0.96, B: 0.92, A: 1}
	ColorCardBack    = Color{R: 0.55, G: 0.12, B: 0.16, A: 1}
	ColorCardEdge    = Color{R: 0.1, G: 0.1, B: 0.1, A: 1}
)

// RGBA returns the premultiplied 8-bit form of c.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
