package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/taekwondino/internal/storage"
)

// Scoreboard layout constants
const (
	maxRuns          = 100 // Max runs to load
	scoreboardMargin = 8   // Rows kept for title, help and borders
	headerRows       = 3   // Table header with its bottom border, plus slack
)

var (
	scoreTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	scoreTableStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	scoreEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Top  key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Top, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Top, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// scoreColumns sizes the table columns. The date column takes what is left
// of the width, up to 16 cells.
func scoreColumns(width int) []table.Column {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 10},
		{Title: "Score", Width: 8},
		{Title: "Kills", Width: 6},
		{Title: "Level", Width: 6},
		{Title: "Result", Width: 9},
		{Title: "Date", Width: 12},
	}
	fixed := 0
	for _, c := range columns[:len(columns)-1] {
		fixed += c.Width + 2 // Cell padding
	}
	if rest := width - fixed - 6; rest > 12 {
		columns[len(columns)-1].Width = min(rest, 16)
	}
	return columns
}

// scoreRows converts runs into table rows, ranked in the given order.
func scoreRows(runs []storage.RunRecord) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		result := "KO"
		if r.Outcome == "ending" {
			result = "CLEARED"
		}
		date := ""
		if !r.CreatedAt.IsZero() {
			date = r.CreatedAt.Format("Jan 02 15:04")
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			r.Player,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Kills),
			fmt.Sprintf("%d", r.Level),
			result,
			date,
		}
	}
	return rows
}

func newScoreTable(runs []storage.RunRecord, width, height int, focused bool) table.Model {
	t := table.New(
		table.WithColumns(scoreColumns(width)),
		table.WithRows(scoreRows(runs)),
		table.WithFocused(focused),
		table.WithHeight(max(height, 1)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	if focused {
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)
	} else {
		s.Selected = lipgloss.NewStyle()
	}
	t.SetStyles(s)
	return t
}

// RenderScoreboard renders runs as a static table for printing.
func RenderScoreboard(runs []storage.RunRecord, width int) string {
	var b strings.Builder
	b.WriteString(scoreTitleStyle.Render("TAE KWON DINO - BEST RUNS"))
	b.WriteString("\n\n")

	if len(runs) == 0 {
		b.WriteString(scoreEmptyStyle.Render("No runs recorded yet.\nFinish a run to set a high score!"))
		return b.String()
	}

	t := newScoreTable(runs, width, len(runs)+headerRows, false)
	b.WriteString(scoreTableStyle.Render(t.View()))
	return b.String()
}

// ScoreboardModel is the Bubble Tea model for the interactive scoreboard.
type ScoreboardModel struct {
	runs     []storage.RunRecord
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a scoreboard over the best stored runs.
func NewScoreboardModel(store *storage.Store, width, height int) (ScoreboardModel, error) {
	var runs []storage.RunRecord
	if store != nil {
		var err error
		if runs, err = store.TopRuns(maxRuns); err != nil {
			return ScoreboardModel{}, err
		}
	}

	h := help.New()
	h.Width = width
	return ScoreboardModel{
		runs:   runs,
		table:  newScoreTable(runs, width, height-scoreboardMargin, true),
		help:   h,
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}, nil
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Top):
			m.table.GotoTop()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = newScoreTable(m.runs, m.width, m.height-scoreboardMargin, true)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(scoreTitleStyle.Render("TAE KWON DINO - BEST RUNS"))
	b.WriteString("\n\n")

	if len(m.runs) == 0 {
		b.WriteString(scoreEmptyStyle.Render("No runs recorded yet.\nFinish a run to set a high score!"))
	} else {
		b.WriteString(scoreTableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// RunScoreboard runs the interactive scoreboard.
func RunScoreboard(store *storage.Store, width, height int) error {
	model, err := NewScoreboardModel(store, width, height)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
