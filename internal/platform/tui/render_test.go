package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/taekwondino/internal/core"
	"github.com/vovakirdan/taekwondino/internal/storage"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "Dino")
	s.DrawTextColored(5, 0, "HP", core.ColorBrightRed)
	s.SetWithColor(11, 1, '@', core.ColorBrightGreen)

	got := strings.Split(ansi.Strip(RenderScreen(s)), "\n")
	want := []string{"Dino HP     ", "           @"}
	if len(got) != len(want) {
		t.Fatalf("RenderScreen() rows = %d, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, expected %q", i, got[i], want[i])
		}
	}
}

func TestRenderScreenUnknownColor(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.SetWithColor(1, 0, 'x', core.Color(99))

	if got := ansi.Strip(RenderScreen(s)); got != " x " {
		t.Errorf("RenderScreen() = %q, expected %q", got, " x ")
	}
}

func TestRenderScoreboard(t *testing.T) {
	runs := []storage.RunRecord{
		{Player: "Dino", Outcome: "ending", Score: 4300, Kills: 13, Level: 3, CreatedAt: time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)},
		{Player: "Dino", Outcome: "game_over", Score: 1200, Kills: 2, Level: 1},
	}

	out := ansi.Strip(RenderScoreboard(runs, 80))
	for _, want := range []string{"BEST RUNS", "#1", "4300", "CLEARED", "#2", "1200", "KO", "Mar 01 12:30"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScoreboard() missing %q:\n%s", want, out)
		}
	}
}

func TestRenderScoreboardEmpty(t *testing.T) {
	out := ansi.Strip(RenderScoreboard(nil, 80))
	if !strings.Contains(out, "No runs recorded yet.") {
		t.Errorf("RenderScoreboard(nil) = %q, expected the empty message", out)
	}
}

func TestScoreboardModelQuit(t *testing.T) {
	m, err := NewScoreboardModel(nil, 80, 24)
	if err != nil {
		t.Fatalf("NewScoreboardModel() error = %v", err)
	}
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Error("quit key should return a command")
	}
	if next.(ScoreboardModel).View() != "" {
		t.Error("quitting scoreboard should render nothing")
	}
}
