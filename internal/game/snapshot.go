package game

// Snapshot captures the complete observable game state for determinism
// testing and replay.
type Snapshot struct {
	Tick     uint64
	Score    int
	Best     int
	SnakeLen int
	Target   int
	HeadX    int
	HeadY    int
	Dir      Direction
	AppleX   int
	AppleY   int
	Paused   bool
	Runs     int
}

// Snapshot returns the current game snapshot for determinism
// verification. A parked apple reports the off-board sentinel (-1,-1).
func (g *Game) Snapshot() Snapshot {
	head := g.snake.Head()
	apple := g.apple.Pos()
	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		Best:     g.best,
		SnakeLen: g.snake.Len(),
		Target:   g.snake.Target(),
		HeadX:    head.X,
		HeadY:    head.Y,
		Dir:      g.snake.Heading(),
		AppleX:   apple.X,
		AppleY:   apple.Y,
		Paused:   g.paused,
		Runs:     len(g.runs),
	}
}
