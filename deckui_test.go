package deckui

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 30}
	tests := []struct {
		x, y float64
		want bool
	}{
		{10, 10, true},
		{30, 40, true},
		{20, 25, true},
		{9, 20, false},
		{20, 41, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	if !a.Intersects(Rect{X: 10, Y: 0, Width: 5, Height: 5}) {
		t.Error("edge-sharing rects should intersect")
	}
	if a.Intersects(Rect{X: 11, Y: 11, Width: 5, Height: 5}) {
		t.Error("disjoint rects should not intersect")
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: 20, Width: 10, Height: 10}
	want := Rect{X: 0, Y: 0, Width: 15, Height: 30}
	if got := a.Union(b); got != want {
		t.Errorf("Union = %v, want %v", got, want)
	}
}

func TestChangeTypeString(t *testing.T) {
	names := map[ChangeType]string{
		ChangeMoved:    "moved",
		ChangeDropped:  "dropped",
		ChangePlaced:   "placed",
		ChangeSpawned:  "spawned",
		ChangeType(99): "unknown",
	}
	for ct, want := range names {
		if got := ct.String(); got != want {
			t.Errorf("ChangeType(%d).String() = %q, want %q", ct, got, want)
		}
	}
}

func TestIDAllocator(t *testing.T) {
	a := NewIDAllocator(7)
	if a.Peek() != 7 {
		t.Fatalf("Peek = %d, want 7", a.Peek())
	}
	for want := 7; want < 10; want++ {
		if got := a.GenerateID(); got != want {
			t.Errorf("GenerateID = %d, want %d", got, want)
		}
	}
}

func TestZOrder(t *testing.T) {
	z := NewZOrder(0)
	prev := -1
	for i := 0; i < 5; i++ {
		v := z.Next()
		if v <= prev {
			t.Fatalf("Next = %d after %d, want strictly increasing", v, prev)
		}
		prev = v
	}
	if z.Peek() != 5 {
		t.Errorf("Peek = %d, want 5", z.Peek())
	}
}

func TestCardLabel(t *testing.T) {
	tests := []struct {
		card Card
		want string
	}{
		{Card{ID: "x"}, "x"},
		{Card{ID: "x", Props: CardProps{Front: "A", Back: "#"}}, "#"},
		{Card{ID: "x", Props: CardProps{Front: "A", Back: "#", FaceUp: true}}, "A"},
		{Card{ID: "x", Props: CardProps{Front: "A"}}, "x"},
	}
	for _, tt := range tests {
		if got := tt.card.Label(); got != tt.want {
			t.Errorf("Label(%+v) = %q, want %q", tt.card.Props, got, tt.want)
		}
	}
}
