package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/highscore"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestModel(t *testing.T, opts Options) (Model, *flappy.Game) {
	t.Helper()
	game := flappy.New(config.DefaultFlappyConfig(), highscore.NewMemoryStore(0), flappy.WithSeed(1))
	opts.Runtime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
	return NewModel(game, opts), game
}

// send feeds one message through Update and returns the next model.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	return send(t, m, TickMsg{})
}

// clickOn returns a left press on the middle cell covering a world region.
func clickOn(m Model, b config.Button) tea.MouseMsg {
	cells := m.viewport().RectToCells(core.NewRectF(b.X, b.Y, b.W, b.H))
	return tea.MouseMsg{
		X:      cells.X + cells.W/2,
		Y:      cells.Y + cells.H/2,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}
}

func TestModelLayout(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	if m.Screen().Width() != 80 || m.Screen().Height() != 23 {
		t.Errorf("screen = %dx%d, expected 80x23 (one row for help)", m.Screen().Width(), m.Screen().Height())
	}

	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.Screen().Width() != 100 || m.Screen().Height() != 39 {
		t.Errorf("after resize screen = %dx%d, expected 100x39", m.Screen().Width(), m.Screen().Height())
	}

	m = send(t, m, runeKey('?'))
	if m.Screen().Height() >= 39 {
		t.Errorf("full help should take more rows, screen height = %d", m.Screen().Height())
	}

	view := m.View()
	if !strings.Contains(view, "flap") || !strings.Contains(view, "screenshot") {
		t.Errorf("full help should list the bindings, got:\n%s", view)
	}
}

func TestModelInputAppliedOnTick(t *testing.T) {
	m, game := newTestModel(t, Options{})

	m = send(t, m, runeKey('w'))
	if game.Phase() != flappy.NotStarted {
		t.Fatal("input must wait for the next tick")
	}

	m = tick(t, m)
	if game.Phase() != flappy.Playing {
		t.Errorf("phase = %v, expected Playing after flap tick", game.Phase())
	}
	if !m.State().Started {
		t.Error("model should mirror the started state")
	}

	// Input does not carry over to later ticks
	tick(t, m)
	if v := game.Snapshot().Bird.Vel; v != -4.0 {
		t.Errorf("velocity = %v, expected -4 (flap must not repeat)", v)
	}
}

func TestModelKeyboardPause(t *testing.T) {
	m, game := newTestModel(t, Options{})

	m = tick(t, send(t, m, runeKey('w')))
	m = tick(t, send(t, m, runeKey('p')))
	if game.Phase() != flappy.Paused {
		t.Fatalf("phase = %v, expected Paused", game.Phase())
	}

	m = tick(t, send(t, m, runeKey('p')))
	if game.Phase() != flappy.Playing {
		t.Errorf("phase = %v, expected Playing after second pause", game.Phase())
	}
}

func TestModelMousePause(t *testing.T) {
	m, game := newTestModel(t, Options{})
	ui := game.Config().UI

	m = tick(t, send(t, m, runeKey('w')))
	m = tick(t, send(t, m, clickOn(m, ui.PauseButton)))
	if game.Phase() != flappy.Paused {
		t.Fatalf("phase = %v, expected Paused after clicking the pause button", game.Phase())
	}

	// Releases and other buttons are ignored
	release := clickOn(m, ui.PauseButton)
	release.Action = tea.MouseActionRelease
	right := clickOn(m, ui.PauseButton)
	right.Button = tea.MouseButtonRight
	m = tick(t, send(t, send(t, m, release), right))
	if game.Phase() != flappy.Paused {
		t.Errorf("phase = %v, only left presses should toggle pause", game.Phase())
	}

	// A click outside the button does nothing
	m = tick(t, send(t, m, tea.MouseMsg{X: 1, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}))
	if game.Phase() != flappy.Paused {
		t.Errorf("phase = %v, click outside the button should be ignored", game.Phase())
	}
}

// playUntilOver ticks until the game ends.
func playUntilOver(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; i < 1000; i++ {
		m = tick(t, m)
		if m.State().GameOver {
			return m
		}
	}
	t.Fatal("game never ended")
	return m
}

func TestModelMouseRestart(t *testing.T) {
	m, game := newTestModel(t, Options{})

	m = tick(t, send(t, m, runeKey('w')))
	m = playUntilOver(t, m)

	m = tick(t, send(t, m, clickOn(m, game.Config().UI.RestartButton)))
	if game.Phase() != flappy.Playing {
		t.Errorf("phase = %v, expected Playing after clicking restart", game.Phase())
	}
}

func TestModelRecordsRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	m, _ := newTestModel(t, Options{Runs: store, Player: "ann"})

	m = tick(t, send(t, m, runeKey('w')))
	m = playUntilOver(t, m)

	// Ticks at game over must not record again
	for i := 0; i < 5; i++ {
		m = tick(t, m)
	}

	runs, err := store.RecentRuns(flappy.ID, 0)
	if err != nil {
		t.Fatalf("RecentRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	r := runs[0]
	if r.Player != "ann" || r.Score != 0 || r.Cause != "ground" {
		t.Errorf("run = %+v, expected ann/0/ground", r)
	}
	if r.Ticks <= 0 {
		t.Errorf("run ticks = %d, expected the session length", r.Ticks)
	}

	// A second session is recorded separately
	m = tick(t, send(t, m, runeKey('r')))
	playUntilOver(t, m)
	runs, _ = store.RecentRuns(flappy.ID, 0)
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}
}

func TestModelBellOnDie(t *testing.T) {
	var bell bytes.Buffer
	m, _ := newTestModel(t, Options{Bell: &bell})

	m = tick(t, send(t, m, runeKey('w')))
	if bell.Len() != 0 {
		t.Error("flap should not ring the bell")
	}
	playUntilOver(t, m)

	if bell.String() != "\a" {
		t.Errorf("bell output = %q, expected one bell", bell.String())
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if next.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m, _ := newTestModel(t, Options{ScreenshotDir: dir})

	send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 screenshot, got %d", len(entries))
	}
	name := entries[0].Name()
	if !strings.HasPrefix(name, flappy.ID+"_") || !strings.HasSuffix(name, ".txt") {
		t.Errorf("unexpected screenshot name %q", name)
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "FLAPPY BIRD") {
		t.Errorf("screenshot should hold the title screen, got:\n%s", data)
	}
}

func TestModelViewShowsCueFlash(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = tick(t, send(t, m, runeKey('w')))
	m.View()

	if row := m.Screen().Row(0); !strings.Contains(row, "♪ flap") {
		t.Errorf("HUD should flash the flap cue, row 0 = %q", row)
	}
}
