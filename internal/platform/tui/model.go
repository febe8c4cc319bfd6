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

	"github.com/vovakirdan/taekwondino/internal/core"
	"github.com/vovakirdan/taekwondino/internal/game"
	"github.com/vovakirdan/taekwondino/internal/storage"
)

// helpRows is the number of terminal rows kept below the game screen.
const helpRows = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model running one game session.
type Model struct {
	game      *game.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	input     *KeyboardSource
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	gameState core.GameState
	quitting  bool
	runSaved  bool // Whether the finished run has been stored
}

// NewModel creates a new Bubble Tea model for the given game. store and
// logger may be nil.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	keys := DefaultKeyMap()
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:   g,
		screen: core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-helpRows, 1)),
		store:  store,
		config: cfg,
		input:  NewKeyboardSource(keys, DefaultHoldTicks),
		keys:   keys,
		help:   h,
		logger: logger,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.input.HandleKey(msg) == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize keeps the run going; the game adapts its viewport to the
// screen on the next render.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-m.helpHeight(), 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.input.Frame()
	m.input.Tick()

	if frame.Has(core.ActionRestart) && !m.gameState.Paused {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.input.Release()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(frame)
	m.gameState = result.State

	for _, ev := range result.Events {
		m.logger.Debug("event", "kind", ev.Kind, "detail", ev.Detail)
		if ev.Kind == core.EventRestarted {
			m.runSaved = false
		}
	}

	// Save the run once it has ended
	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the finished run. Best effort: the game continues regardless.
func (m Model) saveRun() {
	if m.store == nil {
		return
	}
	summary := m.game.Summary()
	if _, err := m.store.SaveRun(storage.RecordFromSummary(summary)); err != nil {
		m.logger.Warn("could not save run", "err", err)
		return
	}
	m.logger.Info("run saved", "outcome", summary.Outcome, "score", summary.Score)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".taekwondino", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

func (m Model) helpHeight() int {
	if m.help.ShowAll {
		return lipgloss.Height(m.help.View(m.keys))
	}
	return helpRows
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if h := core.Max(m.config.ScreenH-m.helpHeight(), 1); h != m.screen.Height() {
		m.screen.Resize(m.config.ScreenW, h)
	}
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given game.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(g, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
