package game

import "math/rand"

// offBoard marks an apple with nowhere to spawn. It never equals a
// wrapped board cell.
var offBoard = Point{X: -1, Y: -1}

// Apple is the single food item. It always sits on a free cell, or off
// the board entirely when the snake fills every cell.
type Apple struct {
	pos Point
}

// NewApple creates an apple parked off the board; call Relocate to
// place it.
func NewApple() *Apple {
	return &Apple{pos: offBoard}
}

// Pos returns the apple's cell. Only meaningful while OnBoard is true.
func (a *Apple) Pos() Point {
	return a.pos
}

// OnBoard reports whether the apple currently occupies a board cell.
func (a *Apple) OnBoard() bool {
	return a.pos != offBoard
}

// Relocate moves the apple to a uniformly random free cell of b, one
// not occupied by snake. If no free cell exists the apple parks off the
// board until space opens up.
func (a *Apple) Relocate(b Board, snake *Snake, rng *rand.Rand) {
	free := make([]Point, 0, b.Cells()-snake.Len())
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			p := Point{X: x, Y: y}
			if !snake.Contains(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		a.pos = offBoard
		return
	}
	a.pos = free[rng.Intn(len(free))]
}
