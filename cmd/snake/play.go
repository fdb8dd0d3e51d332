package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// errTerminalTooSmall is returned when the board cannot fit the terminal.
var errTerminalTooSmall = errors.New("terminal too small")

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: snake).

Controls:
  Arrows/WASD  - Steer
  G            - Toggle grid
  Space/R      - Restart (after game over)
  Ctrl+S       - Save screenshot
  Q/Ctrl+C     - Quit

Examples:
  snake play
  snake play --seed 7
  snake play --config ./my-snake.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "snake"
	if len(args) > 0 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if errors.Is(err, registry.ErrUnknownGame) {
		return fmt.Errorf("%w, run 'snake list' to see available games", err)
	}
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close of the log file

	if c, ok := game.(registry.Configurable); ok {
		source, err := c.LoadConfig(flagConfig)
		if err != nil {
			return fmt.Errorf("load %s config: %w", gameID, err)
		}
		logger.Info("config loaded", "game", gameID, "source", source)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if sg, ok := game.(*snake.Game); ok {
		bw, bh := snake.BoardSize(sg.Settings().Grid)
		// One extra row for the key help line.
		if width < bw || height < bh+1 {
			return fmt.Errorf("%w: need %dx%d, have %dx%d", errTerminalTooSmall, bw, bh+1, width, height)
		}
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := tui.Run(game, cfg, logger); err != nil {
		logger.Error("session failed", "error", err)
		return fmt.Errorf("run %s: %w", gameID, err)
	}
	logger.Info("session ended", "game", gameID)
	return nil
}
