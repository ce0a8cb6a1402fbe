// Package core provides the value types shared by the simulation core and the
// terminal platform: grid cells, directions, input actions and the screen
// buffer. It has no dependency on Bubble Tea so game logic stays testable.
package core

import "fmt"

// Cell is an integer position on the arena grid.
// Cells are comparable and are used directly as occupancy map keys.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by (dx, dy). The result is not wrapped.
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid describes the bounds of a toroidal arena.
type Grid struct {
	Width  int
	Height int
}

// NewGrid creates a grid of the given size.
func NewGrid(width, height int) Grid {
	return Grid{Width: width, Height: height}
}

// Area returns the number of cells in the grid.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Contains reports whether c lies inside the grid bounds.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Wrap normalizes c onto the torus. Each axis wraps independently and any
// offset, however large or negative, lands inside the grid.
func (g Grid) Wrap(c Cell) Cell {
	return Cell{X: wrap(c.X, g.Width), Y: wrap(c.Y, g.Height)}
}

// Clamp restricts c to the grid bounds without wrapping.
func (g Grid) Clamp(c Cell) Cell {
	return Cell{X: Clamp(c.X, 0, g.Width-1), Y: Clamp(c.Y, 0, g.Height-1)}
}

// Step moves c one cell in direction d and wraps the result.
func (g Grid) Step(c Cell, d Direction) Cell {
	dx, dy := d.Delta()
	return g.Wrap(c.Add(dx, dy))
}

// Cells enumerates every cell in row-major order.
func (g Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.Area())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			cells = append(cells, Cell{X: x, Y: y})
		}
	}
	return cells
}

// FreeCells returns the cells not present in occupied, in row-major order.
// The order is stable so a seeded RNG picks reproducibly.
func (g Grid) FreeCells(occupied map[Cell]struct{}) []Cell {
	free := make([]Cell, 0, g.Area()-len(occupied))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := Cell{X: x, Y: y}
			if _, taken := occupied[c]; !taken {
				free = append(free, c)
			}
		}
	}
	return free
}

// Distance returns the shortest Manhattan distance between a and b on the torus.
func (g Grid) Distance(a, b Cell) int {
	dx := Abs(a.X - b.X)
	dy := Abs(a.Y - b.Y)
	return min(dx, g.Width-dx) + min(dy, g.Height-dy)
}

func wrap(v, n int) int {
	if n <= 0 {
		return 0
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Rect is an axis-aligned rectangle in screen coordinates.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}
