// snake is the classic Snake game for the terminal.
//
// Usage:
//
//	snake            - Play
//	snake config     - Print the default configuration YAML
//
// Flags:
//
//	--config <path>    - Custom config YAML
//	--speed <preset>   - Speed preset: classic, fast
//	--fps <rate>       - Explicit tick rate, overrides the preset
//	--seed <value>     - RNG seed for reproducible apple placement
//	--debug-log <path> - Append debug events to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Zorro5300/snake-game/internal/config"
	"github.com/Zorro5300/snake-game/internal/core"
	"github.com/Zorro5300/snake-game/internal/game"
	"github.com/Zorro5300/snake-game/internal/platform/tui"
)

var (
	flagConfig   string
	flagSpeed    string
	flagFPS      int
	flagSeed     int64
	flagDebugLog string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Classic Snake in your terminal",
	Long: `Steer the snake, eat apples, grow. Running into yourself silently
resets the snake to the center; the session score keeps counting.

Controls:
  Arrows/WASD/HJKL - Steer
  P/Esc            - Pause
  R                - Restart the run
  Q/Ctrl+C         - Quit

Examples:
  snake
  snake --speed fast
  snake --seed 42 --debug-log /tmp/snake.log
  snake --config ./my-snake.yaml`,
	Run: runGame,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.Flags().StringVar(&flagSpeed, "speed", "", "Speed preset: classic, fast")
	rootCmd.Flags().IntVar(&flagFPS, "fps", 0, "Tick rate in moves per second (overrides the preset)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagDebugLog, "debug-log", "", "Append debug events to this file")

	rootCmd.AddCommand(configCmd)
}

func runGame(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagSpeed != "" {
		preset, presetErr := config.ParseSpeedPreset(flagSpeed)
		if presetErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", presetErr)
			os.Exit(1)
		}
		config.ApplySpeedPreset(&cfg, preset)
	}
	if cmd.Flags().Changed("fps") {
		cfg.Speed.TickRate = flagFPS
		cfg.Normalize()
	}

	logger, closeLog, err := newLogger(flagDebugLog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early
	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rt.TickRate = cfg.Speed.TickRate
	rt.Seed = seed

	g := game.New(game.Options{
		BoardWidth:   cfg.Grid.Width,
		BoardHeight:  cfg.Grid.Height,
		Gradient:     cfg.Render.Gradient,
		HeadMarker:   cfg.Render.HeadMarker,
		Trail:        cfg.Render.Trail,
		Checkerboard: cfg.Render.Checkerboard,
	})

	logger.Info("game starting",
		"grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height),
		"tick_rate", rt.TickRate,
		"seed", rt.Seed)

	runErr := tui.Run(g, rt, logger)

	state := g.State()
	logger.Info("session ended", "score", state.Score, "best", state.Best, "runs", len(g.Runs()))
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

// newLogger opens the debug log. With no path everything is discarded;
// log output never goes to the terminal, which the TUI owns.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open debug log %s: %w", path, err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
