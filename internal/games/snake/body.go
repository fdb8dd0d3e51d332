package snake

import "github.com/gammazero/deque"

// Body is the chain of segments trailing the head.
//
// Index 0 is the segment that moves on the next tick; the back holds the
// segment most recently placed behind the head. Growing pushes a new segment
// to the front, so it is the one to move next while the tail stays put.
type Body struct {
	segments deque.Deque[Point]
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return b.segments.Len()
}

// At returns the i-th segment, 0 being the next to move.
func (b *Body) At(i int) Point {
	return b.segments.At(i)
}

// Grow inserts a new segment at the front of the chain.
func (b *Body) Grow(at Point) {
	b.segments.PushFront(at)
}

// Follow moves the front segment into the head's previous position and makes
// it the back of the chain. Every other segment keeps its cell, which is the
// same picture as each segment stepping into the one ahead of it.
func (b *Body) Follow(prevHead Point) {
	if b.segments.Len() == 0 {
		return
	}
	b.segments.PopFront()
	b.segments.PushBack(prevHead)
}

// Occupies reports whether any segment sits on p.
func (b *Body) Occupies(p Point) bool {
	for i := range b.segments.Len() {
		if b.segments.At(i) == p {
			return true
		}
	}
	return false
}

// Segments returns a copy of the chain in order.
func (b *Body) Segments() []Point {
	out := make([]Point, b.segments.Len())
	for i := range out {
		out[i] = b.segments.At(i)
	}
	return out
}

// Clear removes every segment.
func (b *Body) Clear() {
	b.segments.Clear()
}
