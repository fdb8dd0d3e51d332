package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// maxFrameDelta caps the elapsed time fed to a game after a stall.
const maxFrameDelta = 1.0

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	pressed   core.KeyState
	lastFrame time.Time
	gameState core.GameState
	logger    *log.Logger
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards all output.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		pressed: core.NewKeyState(),
		logger:  logger,
	}
}

// Init resets the game and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)
	return frameCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey records key presses until the next frame consumes them.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	k := m.keys.MapKey(msg)
	if k == core.KeyQuit {
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit
	}
	m.pressed.Press(k)
	return m, nil
}

// handleResize adapts the screen buffer. Game state is kept: the board has
// a fixed size and only its placement changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-1)
	m.help.Width = msg.Width
	return m, nil
}

// handleFrame advances the game by the time since the previous frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := 0.0
	if !m.lastFrame.IsZero() {
		elapsed = core.ClampF(now.Sub(m.lastFrame).Seconds(), 0, maxFrameDelta)
	}
	m.lastFrame = now

	result := m.game.Update(elapsed, m.pressed.Clone())
	m.gameState = result.State
	m.logEvents(result)

	m.pressed.Clear()
	return m, frameCmd(m.config.TickRate)
}

func (m Model) logEvents(result core.FrameResult) {
	for _, ev := range result.Events {
		switch ev {
		case core.EventAppleEaten:
			m.logger.Debug("apple eaten", "score", result.State.Score)
		case core.EventGameOver:
			m.logger.Info("game over", "score", result.State.Score)
		case core.EventRestart:
			m.logger.Info("restart")
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(game, cfg, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
