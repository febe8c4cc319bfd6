// Package game implements Tae Kwon Dino as a playable terminal game: it wraps
// a sim.Simulation and draws the level, the characters, a HUD and a minimap
// into a core.Screen.
package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/taekwondino/internal/character"
	"github.com/vovakirdan/taekwondino/internal/config"
	"github.com/vovakirdan/taekwondino/internal/core"
	"github.com/vovakirdan/taekwondino/internal/sim"
)

// Game is a Tae Kwon Dino session.
type Game struct {
	cfg         config.GameConfig
	setups      []sim.LevelSetup
	player      character.Metadata
	sim         *sim.Simulation
	runtime     core.RuntimeConfig
	logger      *log.Logger
	screenDelay int // Negative keeps sim.DefaultScreenDelay
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger passed to the simulation.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithScreenDelay sets how many frames non-running screens ignore keys.
func WithScreenDelay(frames int) Option {
	return func(g *Game) {
		g.screenDelay = frames
	}
}

// Load reads the configuration from the usual search path, applies the
// difficulty preset (empty keeps the configured difficulty) and creates a game.
func Load(configPath, preset string, opts ...Option) (*Game, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if preset != "" {
		p, ok := config.ParsePreset(preset)
		if !ok {
			return nil, fmt.Errorf("game: unknown difficulty %q", preset)
		}
		config.ApplyPreset(&cfg, p)
	}
	return New(cfg, opts...)
}

// New validates cfg and creates a game on the title screen.
func New(cfg config.GameConfig, opts ...Option) (*Game, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	setups, err := sim.BuildLevels(cfg)
	if err != nil {
		return nil, err
	}
	player, err := cfg.PlayerMetadata()
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:         cfg,
		setups:      setups,
		player:      player,
		runtime:     core.DefaultConfig(),
		logger:      log.New(io.Discard),
		screenDelay: -1,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.sim, err = g.newSimulation(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) newSimulation() (*sim.Simulation, error) {
	opts := []sim.Option{
		sim.WithLogger(g.logger),
		sim.WithDifficulty(config.NewDifficultyManager(g.cfg.Difficulty)),
	}
	if g.screenDelay >= 0 {
		opts = append(opts, sim.WithScreenDelay(g.screenDelay))
	}
	return sim.New(g.setups, g.player, opts...)
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "taekwondino"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tae Kwon Dino"
}

// Reset starts a fresh run on the title screen and adopts the screen size.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	s, err := g.newSimulation()
	if err != nil {
		// Levels were validated in New, so this only happens on misuse.
		g.logger.Error("reset failed", "err", err)
		return
	}
	g.sim = s
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.sim.Step(in)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.sim.State()
}

// Summary returns the result of the current run.
func (g *Game) Summary() sim.RunSummary {
	return g.sim.Summary()
}

// Simulation exposes the running simulation for headless inspection.
func (g *Game) Simulation() *sim.Simulation {
	return g.sim
}

// Config returns the configuration the game was built from.
func (g *Game) Config() config.GameConfig {
	return g.cfg
}
