package core

import "fmt"

// Grid stores a fixed 2D table of cell values in row-major order. The zero
// value of T represents an empty slot.
type Grid[T any] struct {
	W, H int
	data []T
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid[T any](w, h int) *Grid[T] {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid[T]{W: w, H: h, data: make([]T, w*h)}
}

// Cells exposes the backing slice so callers can scan values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y). Coordinates
// are not validated; callers bounds-check with InBounds first.
func (g *Grid[T]) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a slot of the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value stored at (x, y). Out-of-range coordinates panic.
func (g *Grid[T]) At(x, y int) T {
	g.mustContain(x, y)
	return g.data[g.Index(x, y)]
}

// Set stores v at (x, y). Out-of-range coordinates panic.
func (g *Grid[T]) Set(x, y int, v T) {
	g.mustContain(x, y)
	g.data[g.Index(x, y)] = v
}

// Remove resets the slot at (x, y) to the zero value.
func (g *Grid[T]) Remove(x, y int) {
	var zero T
	g.Set(x, y, zero)
}

// Clear resets every slot to the zero value.
func (g *Grid[T]) Clear() {
	clear(g.data)
}

func (g *Grid[T]) mustContain(x, y int) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("core: grid index (%d,%d) out of range for %dx%d grid", x, y, g.W, g.H))
	}
}
