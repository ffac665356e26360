package deckui

// Vec2 is a 2D vector used for positions, offsets and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	x0 := min(r.X, other.X)
	y0 := min(r.Y, other.Y)
	x1 := max(r.X+r.Width, other.X+other.Width)
	y1 := max(r.Y+r.Height, other.Y+other.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// ChangeType identifies the kind of state change a Controller reports.
type ChangeType uint8

const (
	ChangeMoved   ChangeType = iota // card stamped with a new z-index
	ChangeDropped                   // card filed into a deck or released untethered
	ChangePlaced                    // floating card geometry updated
	ChangeSpawned                   // card created at runtime with a generated id
)

// String returns the lower-case name of the change type.
func (t ChangeType) String() string {
	switch t {
	case ChangeMoved:
		return "moved"
	case ChangeDropped:
		return "dropped"
	case ChangePlaced:
		return "placed"
	case ChangeSpawned:
		return "spawned"
	default:
		return "unknown"
	}
}

// ChangeEvent describes one successful mutation. Hosts subscribe to these
// to know when to re-render.
type ChangeEvent struct {
	Type   ChangeType
	CardID string
	// Deck fields (valid for ChangeDropped and ChangeSpawned). Empty means
	// no deck.
	FromDeck string
	ToDeck   string
	// Position fields (valid for ChangeMoved and ChangePlaced)
	ZIndex int
	X, Y   float64
}
