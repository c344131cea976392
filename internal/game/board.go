// Package game implements the snake game rules: a toroidal grid, a
// snake steered one turn per tick, and an apple that respawns on a free
// cell. The package depends only on internal/core so the rules stay
// pure and testable.
package game

// Point is a cell coordinate on the board.
type Point struct {
	X, Y int
}

// Direction represents the snake's movement heading.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Vector returns the unit cell offset for the direction.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// IsOpposite reports whether o is the exact reverse of d.
func (d Direction) IsOpposite(o Direction) bool {
	dx, dy := d.Vector()
	ox, oy := o.Vector()
	return dx+ox == 0 && dy+oy == 0
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// MinBoardSize is the smallest playable board dimension in cells.
const MinBoardSize = 8

// Board is the fixed-size toroidal play field. Movement wraps at the
// edges; there are no walls.
type Board struct {
	Width  int
	Height int
}

// NewBoard creates a board, clamping dimensions up to MinBoardSize.
func NewBoard(width, height int) Board {
	if width < MinBoardSize {
		width = MinBoardSize
	}
	if height < MinBoardSize {
		height = MinBoardSize
	}
	return Board{Width: width, Height: height}
}

// Wrap normalizes p onto the torus. Negative coordinates wrap to the
// opposite edge.
func (b Board) Wrap(p Point) Point {
	return Point{
		X: ((p.X % b.Width) + b.Width) % b.Width,
		Y: ((p.Y % b.Height) + b.Height) % b.Height,
	}
}

// Step returns the cell one move from p in direction d, wrapping at the
// board edges.
func (b Board) Step(p Point, d Direction) Point {
	dx, dy := d.Vector()
	return b.Wrap(Point{X: p.X + dx, Y: p.Y + dy})
}

// Center returns the board's center cell.
func (b Board) Center() Point {
	return Point{X: b.Width / 2, Y: b.Height / 2}
}

// Cells returns the total number of cells on the board.
func (b Board) Cells() int {
	return b.Width * b.Height
}
