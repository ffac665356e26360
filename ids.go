package deckui

// IDAllocator hands out unique integer identifiers for cards created without
// one. A plain counter: a controller is only ever driven from one goroutine.
type IDAllocator struct {
	next int
}

// NewIDAllocator returns an allocator whose first GenerateID returns first.
func NewIDAllocator(first int) *IDAllocator {
	return &IDAllocator{next: first}
}

// GenerateID returns the current value and advances the counter by one.
func (a *IDAllocator) GenerateID() int {
	id := a.next
	a.next++
	return id
}

// Peek returns the value the next GenerateID call will return.
func (a *IDAllocator) Peek() int {
	return a.next
}

// ZOrder stamps cards with strictly increasing z-indices so the most
// recently moved card renders on top.
type ZOrder struct {
	next int
}

// NewZOrder returns a tracker whose first Next returns first.
func NewZOrder(first int) *ZOrder {
	return &ZOrder{next: first}
}

// Next returns the current z-index and advances the counter by one.
func (z *ZOrder) Next() int {
	v := z.next
	z.next++
	return v
}

// Peek returns the value the next Next call will return.
func (z *ZOrder) Peek() int {
	return z.next
}
