package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Game is the simulation the model drives.
type Game interface {
	ID() string
	Step(in core.InputFrame) core.StepResult
	State() core.GameState
	Render(dst *core.Screen)
	WorldSize() (w, h float64)
}

// causer is implemented by games that can say what ended a session.
type causer interface {
	Cause() string
}

// Options configures a Model.
type Options struct {
	Runtime core.RuntimeConfig

	// Runs records finished sessions. Nil disables history.
	Runs *storage.Store

	// Player is stored with each run.
	Player string

	Logger *log.Logger

	// Bell receives the terminal bell on hit and die. Nil keeps quiet.
	Bell io.Writer

	// ScreenshotDir defaults to ~/.flappy/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game   Game
	screen *core.Screen
	opts   Options
	logger *log.Logger
	cues   *CueSink
	keys   KeyMap
	help   help.Model

	width, height int

	inputFrame   core.InputFrame
	gameState    core.GameState
	sessionTicks int
	quitting     bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, opts Options) Model {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		opts:       opts,
		logger:     logger,
		cues:       NewCueSink(logger, opts.Bell),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		width:      opts.Runtime.ScreenW,
		height:     opts.Runtime.ScreenH,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
	m.screen = core.NewScreen(m.width, m.gameRows())
	m.help.Width = m.width
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues game actions for the next tick. Quit, help and
// screenshots take effect at once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.width, m.gameRows())
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleMouse turns left-button presses on the game area into world-space
// clicks.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y >= m.screen.Height() || msg.X >= m.screen.Width() {
		return m, nil
	}

	x, y := m.viewport().ToWorld(msg.X, msg.Y)
	m.inputFrame.AddClick(x, y)
	return m, nil
}

// handleResize keeps the screen buffer in step with the terminal. The game
// world has a fixed size, so it keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(m.width, m.gameRows())
	return m, nil
}

// handleTick applies the collected input and advances the game.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	m.cues.Tick()
	m.cues.Play(result.Cues)

	if sessionStarted(prev, m.gameState) {
		m.sessionTicks = 0
	}
	if m.gameState.Started && !m.gameState.Paused && !m.gameState.GameOver {
		m.sessionTicks++
	}
	if m.gameState.GameOver && !prev.GameOver {
		m.recordRun()
	}

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// sessionStarted reports whether a tick moved from no session or a
// finished one into a fresh session.
func sessionStarted(prev, cur core.GameState) bool {
	if !cur.Started || cur.GameOver {
		return false
	}
	return !prev.Started || prev.GameOver
}

// recordRun stores the finished session. Storage errors are logged only.
func (m Model) recordRun() {
	if m.opts.Runs == nil {
		return
	}

	run := storage.Run{
		GameID: m.game.ID(),
		Player: m.opts.Player,
		Score:  m.gameState.Score,
		Ticks:  m.sessionTicks,
	}
	if c, ok := m.game.(causer); ok {
		run.Cause = c.Cause()
	}

	if _, err := m.opts.Runs.SaveRun(run); err != nil {
		m.logger.Warn("run not recorded", "score", run.Score, "err", err)
		return
	}
	m.logger.Debug("run recorded", "score", run.Score, "ticks", run.Ticks, "cause", run.Cause)
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() (string, error) {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, ".flappy", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: failed to create screenshot directory: %w", err)
	}

	m.draw()
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: failed to write screenshot: %w", err)
	}
	return path, nil
}

// gameRows is the number of rows left for the game after the help bar.
func (m Model) gameRows() int {
	return max(m.height-lipgloss.Height(m.help.View(m.keys)), 1)
}

func (m Model) viewport() core.Viewport {
	w, h := m.game.WorldSize()
	return core.NewViewport(w, h, m.screen.Width(), m.screen.Height())
}

// draw renders the game and the HUD into the screen buffer.
func (m Model) draw() {
	m.game.Render(m.screen)
	m.cues.Draw(m.screen)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Screen returns the screen buffer the game is drawn into.
func (m Model) Screen() *core.Screen {
	return m.screen
}

// Run starts the Bubble Tea program for game and blocks until it quits.
func Run(game Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
