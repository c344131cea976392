package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/Zorro5300/snake-game/internal/core"
	"github.com/Zorro5300/snake-game/internal/game"
)

// helpStyle dims the key binding bar under the playfield.
var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model that drives the game loop: it buffers
// key presses into an input frame and drains the frame into the game on
// every tick.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a model for the given game. A nil logger disables
// event logging; a zero seed is replaced with the current time.
func NewModel(g *game.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
}

// gameHeight is the part of the terminal the game may draw on. The
// bottom row is reserved for the help bar.
func gameHeight(screenH int) int {
	if screenH < 1 {
		return 0
	}
	return screenH - 1
}

// Init seeds the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	cfg := m.config
	cfg.ScreenH = gameHeight(cfg.ScreenH)
	m.game.Reset(cfg)

	m.logger.Debug("session reset", "seed", cfg.Seed, "tick_rate", cfg.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey buffers a key press into the input frame for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.ActionFor(msg)

	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.logger.Debug("key", "action", action)
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize adjusts the drawing surface. The game keeps running; it
// re-centers the playfield or shows its too-small overlay.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	h := gameHeight(msg.Height)
	m.screen.Resize(msg.Width, h)
	m.game.Resize(msg.Width, h)

	m.logger.Debug("resize", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick runs one simulation step and schedules the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)

	if result.Ate {
		m.logger.Debug("apple eaten", "score", result.State.Score, "length", result.State.Length)
	}
	if result.Collided {
		m.logger.Debug("collision reset", "score", result.State.Score, "best", result.State.Best)
	}
	if result.State.Paused != m.gameState.Paused {
		m.logger.Debug("pause toggled", "paused", result.State.Paused)
	}

	m.gameState = result.State
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the playfield with the help bar underneath.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the session ends.
func Run(g *game.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(g, cfg, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
