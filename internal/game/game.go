package game

import (
	"fmt"
	"math/rand"

	"github.com/Zorro5300/snake-game/internal/core"
)

// hudHeight is the number of screen rows above the playfield frame.
const hudHeight = 2

// EndReason tells why a run ended.
type EndReason string

const (
	EndCollision EndReason = "collision"
	EndRestart   EndReason = "restart"
)

// Run is one life of the snake, from spawn until collision or manual
// restart. Records are kept in memory for the current session only.
type Run struct {
	Ticks  uint64
	Apples int
	Peak   int
	Reason EndReason
}

// Options configure a Game at construction. Board dimensions are in
// cells; the render flags toggle cosmetic layers only and never change
// the rules.
type Options struct {
	BoardWidth  int
	BoardHeight int

	Gradient     bool
	HeadMarker   bool
	Trail        bool
	Checkerboard bool
}

// Game owns the per-tick simulation: it resolves steering, advances the
// snake, handles apple consumption and collision recovery, and keeps
// the session score and run log.
type Game struct {
	opts Options

	rng   *rand.Rand
	board Board
	snake *Snake
	apple *Apple

	tick  uint64
	score int
	best  int

	paused bool

	// Current run bookkeeping
	runs      []Run
	runStart  uint64
	runApples int
	runPeak   int

	// Screen layout
	screenW  int
	screenH  int
	frameX   int
	frameY   int
	tooSmall bool
}

// New creates a Snake game with the given options. Call Reset before
// the first Step.
func New(opts Options) *Game {
	return &Game{opts: opts}
}

// Reset initializes/restarts the whole session: fresh RNG from the
// seed, snake at center heading right, apple on a random free cell,
// score and run log cleared.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.board = NewBoard(g.opts.BoardWidth, g.opts.BoardHeight)
	g.tick = 0
	g.score = 0
	g.best = 1
	g.paused = false
	g.runs = g.runs[:0]
	g.runStart = 0
	g.runApples = 0
	g.runPeak = 1
	g.snake = NewSnake(g.board.Center())
	g.apple = NewApple()
	g.apple.Relocate(g.board, g.snake, g.rng)
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize recomputes the playfield placement for a new screen size. The
// board itself never changes size; a screen that cannot fit it switches
// the game into the too-small overlay until it grows back.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h

	requiredW := g.board.Width + 2
	requiredH := g.board.Height + 2 + hudHeight
	if w < requiredW || h < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.frameX = (w - requiredW) / 2
	g.frameY = hudHeight
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Manual restart ends the current run; the apple stays put, same as
	// a collision.
	if input.Has(core.ActionRestart) {
		g.finishRun(EndRestart)
		g.respawn()
		g.paused = false
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if d, ok := steerDirection(input); ok {
		g.snake.QueueTurn(d)
	}
	g.snake.UpdateDirection()

	_, collided := g.snake.Move(g.board)
	if collided {
		g.finishRun(EndCollision)
		g.respawn()
	}

	// Consumption is checked even on a collision tick: a respawned head
	// eats an apple sitting on the center cell immediately.
	ate := false
	switch {
	case g.apple.OnBoard() && g.snake.Head() == g.apple.Pos():
		g.snake.Grow()
		g.score++
		g.runApples++
		g.apple.Relocate(g.board, g.snake, g.rng)
		ate = true
	case !g.apple.OnBoard() && g.snake.Len() < g.board.Cells():
		// Space opened up for a parked apple.
		g.apple.Relocate(g.board, g.snake, g.rng)
	}

	if g.snake.Len() > g.runPeak {
		g.runPeak = g.snake.Len()
	}
	if g.runPeak > g.best {
		g.best = g.runPeak
	}

	return core.StepResult{State: g.State(), Ate: ate, Collided: collided}
}

// respawn starts a new run: snake back to a single segment at center,
// heading right. The apple is not moved.
func (g *Game) respawn() {
	g.snake.Reset(g.board.Center())
	g.runStart = g.tick
	g.runApples = 0
	g.runPeak = 1
}

func (g *Game) finishRun(reason EndReason) {
	if g.runPeak > g.best {
		g.best = g.runPeak
	}
	g.runs = append(g.runs, Run{
		Ticks:  g.tick - g.runStart,
		Apples: g.runApples,
		Peak:   g.runPeak,
		Reason: reason,
	})
}

// steerDirection extracts the frame's steering direction, if any.
func steerDirection(input core.InputFrame) (Direction, bool) {
	switch input.Steer() {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return DirRight, false
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.score,
		Length: g.snake.Len(),
		Best:   g.best,
		Paused: g.paused,
	}
}

// Runs returns the completed runs of this session, oldest first. The
// slice is owned by the game; callers must not mutate it.
func (g *Game) Runs() []Run {
	return g.runs
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need at least %dx%d", g.board.Width+2, g.board.Height+2+hudHeight))
		return
	}

	g.renderField(dst)
	g.renderApple(dst)
	g.renderSnake(dst)

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake — Score: %d  Length: %d  Best: %d", g.score, g.snake.Len(), g.best)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderField draws the playfield frame and, when enabled, the faint
// background lattice.
func (g *Game) renderField(dst *core.Screen) {
	frame := core.NewRect(g.frameX, g.frameY, g.board.Width+2, g.board.Height+2)
	dst.DrawBox(frame)

	if !g.opts.Checkerboard {
		return
	}
	for y := 0; y < g.board.Height; y++ {
		for x := 0; x < g.board.Width; x++ {
			if (x+y)%2 == 0 {
				dst.SetCell(g.frameX+1+x, g.frameY+1+y, '·', core.ColorDarkGray)
			}
		}
	}
}

// renderApple draws the apple.
func (g *Game) renderApple(dst *core.Screen) {
	if !g.apple.OnBoard() {
		return
	}
	p := g.apple.Pos()
	dst.SetCell(g.frameX+1+p.X, g.frameY+1+p.Y, '*', core.ColorBrightRed)
}

// renderSnake draws the body tail-first so the head always wins a cell,
// plus the optional trail marker on the just-vacated cell.
func (g *Game) renderSnake(dst *core.Screen) {
	if g.opts.Trail {
		if p, ok := g.snake.LastVacated(); ok {
			dst.SetCell(g.frameX+1+p.X, g.frameY+1+p.Y, '·', core.ColorGray)
		}
	}

	body := g.snake.Body()
	for i := len(body) - 1; i >= 1; i-- {
		p := body[i]
		dst.SetCell(g.frameX+1+p.X, g.frameY+1+p.Y, 'o', g.bodyColor(i))
	}
	head := body[0]
	dst.SetCell(g.frameX+1+head.X, g.frameY+1+head.Y, g.headRune(), core.ColorBrightGreen)
}

// bodyColor picks the shade for body segment i (head is 0). With the
// gradient enabled segments darken toward the tail.
func (g *Game) bodyColor(i int) core.Color {
	if !g.opts.Gradient {
		return core.ColorGreen
	}
	fade := (i - 1) / 2
	if fade > 4 {
		fade = 4
	}
	return core.ColorGreenFade1 + core.Color(fade)
}

// headRune returns the head glyph: a direction marker when enabled.
func (g *Game) headRune() rune {
	if !g.opts.HeadMarker {
		return 'O'
	}
	switch g.snake.Heading() {
	case DirUp:
		return '^'
	case DirDown:
		return 'v'
	case DirLeft:
		return '<'
	default:
		return '>'
	}
}

// renderOverlay draws a centered two-line message in a box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
