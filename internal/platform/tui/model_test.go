package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/taekwondino/internal/config"
	"github.com/vovakirdan/taekwondino/internal/core"
	"github.com/vovakirdan/taekwondino/internal/game"
	"github.com/vovakirdan/taekwondino/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	cfg := config.DefaultGameConfig()
	cfg.Levels = cfg.Levels[:1]
	g, err := game.New(cfg, game.WithScreenDelay(0))
	if err != nil {
		t.Fatalf("game.New() error = %v", err)
	}
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, nil)
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm
}

func tick(t *testing.T, m Model) Model {
	return update(t, m, TickMsg(time.Time{}))
}

func TestModelStartsRunOnKey(t *testing.T) {
	m := newTestModel(t, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)

	if m.gameState.Screen != core.ScreenRunning {
		t.Errorf("Screen = %v, expected running", m.gameState.Screen)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit key should return a command")
	}
	if !next.(Model).quitting {
		t.Error("quit key should mark the model quitting")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)
	for i := 0; i < 5; i++ {
		m = tick(t, m)
	}
	frame := m.game.Simulation().Frame()

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.game.Simulation().Frame() != frame {
		t.Error("resize should not restart the run")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40-helpRows {
		t.Errorf("screen = %dx%d, expected 120x%d", m.screen.Width(), m.screen.Height(), 40-helpRows)
	}
}

func TestModelViewShowsGameAndHelp(t *testing.T) {
	m := newTestModel(t, nil)
	view := m.View()

	for _, want := range []string{"TAE KWON DINO", "Score", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestModelSavesFinishedRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() error = %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)

	m.game.Simulation().Player().State.Health = 0
	m = tick(t, m)
	m = tick(t, m)

	if !m.gameState.GameOver {
		t.Fatal("expected the run to be over")
	}
	n, err := store.CountRuns()
	if err != nil {
		t.Fatalf("CountRuns() error = %v", err)
	}
	if n != 1 {
		t.Errorf("CountRuns() = %d, expected 1", n)
	}

	runs, _ := store.TopRuns(1)
	if len(runs) != 1 || runs[0].Outcome != "game_over" || runs[0].Player != "Dino" {
		t.Errorf("TopRuns() = %+v, expected one game_over run by Dino", runs)
	}
}

func TestModelRestartKey(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)
	m = tick(t, m)

	m = update(t, m, runeKey('r'))
	m = tick(t, m)

	if m.gameState.Screen != core.ScreenTitle {
		t.Errorf("Screen after restart = %v, expected title", m.gameState.Screen)
	}
}
