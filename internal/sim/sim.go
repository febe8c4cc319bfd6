// Package sim drives a run of the game one frame at a time: the screen flow
// (title, running, game over, ending), the per-frame ordering of player and
// monster updates, the single collision pass, scoring and level progression.
//
// Step is deterministic: the same sequence of input frames always produces
// the same run, with no clock or randomness involved.
package sim

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/taekwondino/internal/character"
	"github.com/vovakirdan/taekwondino/internal/config"
	"github.com/vovakirdan/taekwondino/internal/core"
	"github.com/vovakirdan/taekwondino/internal/level"
)

// Scoring and progression constants.
const (
	KillPoints  = 100
	LevelPoints = 1000

	// ExitMargin is how far from the right end of a level the player's
	// sprite must reach to clear it.
	ExitMargin = 16.0

	// DefaultScreenDelay is how many frames a non-running screen ignores
	// keys, so keys held at the moment of a transition do not skip it.
	DefaultScreenDelay = 30
)

// ErrNoLevels is returned by New when there is nothing to play.
var ErrNoLevels = errors.New("sim: no levels")

// Simulation is one run of the game.
type Simulation struct {
	setups     []LevelSetup
	player     *character.Character
	monsters   [][]*character.Character // Per level
	screen     core.ScreenID
	levelIndex int
	frame      int // Running frames since the last restart
	screenAge  int // Frames spent on the current screen
	score      int
	kills      int
	paused     bool
	outcome    Outcome

	screenDelay int
	difficulty  *config.DifficultyManager
	logger      *log.Logger
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithLogger sets the logger for screen transitions and combat events.
func WithLogger(l *log.Logger) Option {
	return func(s *Simulation) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDifficulty scales monster speed per level.
func WithDifficulty(d *config.DifficultyManager) Option {
	return func(s *Simulation) {
		s.difficulty = d
	}
}

// WithScreenDelay overrides DefaultScreenDelay. Zero makes screens react
// to keys immediately.
func WithScreenDelay(frames int) Option {
	return func(s *Simulation) {
		if frames >= 0 {
			s.screenDelay = frames
		}
	}
}

// New creates a simulation on the title screen.
func New(levels []LevelSetup, player character.Metadata, opts ...Option) (*Simulation, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	for _, setup := range levels {
		if setup.Level == nil {
			return nil, errors.New("sim: level setup without a level")
		}
	}

	s := &Simulation{
		setups:      levels,
		screenDelay: DefaultScreenDelay,
		logger:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	start := levels[0].Level.PlayerStart()
	s.player = character.New(start.X, start.Y, player)
	s.restart()
	return s, nil
}

// Step advances the simulation by one frame.
func (s *Simulation) Step(in core.InputFrame) core.StepResult {
	var events []core.Event
	s.screenAge++

	switch s.screen {
	case core.ScreenTitle:
		if s.screenReady() && in.AnyKey() {
			s.setScreen(core.ScreenRunning)
		}

	case core.ScreenRunning:
		if in.Has(core.ActionPause) {
			s.paused = !s.paused
			s.logger.Debug("pause toggled", "paused", s.paused)
		}
		if !s.paused {
			events = s.runFrame(in.Held)
		}

	case core.ScreenGameOver, core.ScreenEnding:
		if s.screenReady() && in.AnyKey() {
			s.restart()
			s.setScreen(core.ScreenTitle)
			events = append(events, core.Event{Kind: core.EventRestarted})
		}
	}

	return core.StepResult{State: s.State(), Events: events}
}

// runFrame is one frame of play: player, then each monster's AI and update,
// then the collision pass, then the end-of-frame checks.
func (s *Simulation) runFrame(held core.Input) []core.Event {
	var events []core.Event
	lvl := s.Level()
	monsters := s.monsters[s.levelIndex]

	s.player.Update(held, lvl, nil)
	for _, m := range monsters {
		m.Update(m.GenerateInput(lvl, s.player), lvl, nil)
	}

	for _, o := range s.player.ResolveCollisions(monsters) {
		switch o.Kind {
		case character.OutcomeKill:
			s.score += KillPoints
			s.kills++
			s.logger.Debug("monster killed", "monster", o.Monster.Metadata.Name, "score", s.score)
			events = append(events, core.Event{Kind: core.EventMonsterKilled, Detail: o.Monster.Metadata.Name})
		case character.OutcomeDamage:
			events = append(events, core.Event{Kind: core.EventPlayerHurt, Detail: o.Monster.Metadata.Name})
		}
	}

	s.frame++

	if !s.player.IsAlive() {
		s.finish(OutcomeGameOver)
		return append(events, core.Event{Kind: core.EventGameOver, Detail: lvl.Name()})
	}

	if s.player.State.X >= s.exitX() {
		events = append(events, s.advance()...)
	}
	return events
}

// exitX is the player x at which the current level is cleared.
func (s *Simulation) exitX() float64 {
	return ExitX(s.Level(), s.player.Metadata.SpriteWidth)
}

// ExitX returns the x a sprite of the given width must reach to clear lvl.
func ExitX(lvl *level.Level, spriteWidth float64) float64 {
	margin := ExitMargin
	if lvl.BorderBarrier() > margin {
		margin = lvl.BorderBarrier()
	}
	return lvl.Length() - spriteWidth - margin
}

// advance moves to the next level or ends the run after the last one.
func (s *Simulation) advance() []core.Event {
	cleared := s.Level().Name()
	s.score += LevelPoints
	events := []core.Event{{Kind: core.EventLevelCleared, Detail: cleared}}

	if s.levelIndex+1 >= len(s.setups) {
		s.logger.Info("game completed", "score", s.score, "kills", s.kills)
		s.finish(OutcomeEnding)
		return append(events, core.Event{Kind: core.EventGameCompleted})
	}

	s.levelIndex++
	s.placePlayer()
	s.monsters[s.levelIndex] = s.spawnMonsters(s.levelIndex)
	s.logger.Info("level cleared", "level", cleared, "next", s.Level().Name(), "score", s.score)
	return events
}

func (s *Simulation) finish(o Outcome) {
	s.outcome = o
	if o == OutcomeEnding {
		s.setScreen(core.ScreenEnding)
	} else {
		s.logger.Info("game over", "level", s.Level().Name(), "score", s.score)
		s.setScreen(core.ScreenGameOver)
	}
}

// restart puts every level back to its starting state.
func (s *Simulation) restart() {
	s.levelIndex = 0
	s.frame = 0
	s.score = 0
	s.kills = 0
	s.paused = false
	s.outcome = OutcomeNone

	start := s.Level().PlayerStart()
	s.player.Reset(start.X, start.Y)

	s.monsters = make([][]*character.Character, len(s.setups))
	for i := range s.setups {
		s.monsters[i] = s.spawnMonsters(i)
	}
}

// placePlayer moves the player to the current level's start, keeping health.
func (s *Simulation) placePlayer() {
	health := s.player.State.Health
	start := s.Level().PlayerStart()
	s.player.Reset(start.X, start.Y)
	s.player.State.Health = health
}

func (s *Simulation) spawnMonsters(levelIndex int) []*character.Character {
	spawns := s.setups[levelIndex].Monsters
	monsters := make([]*character.Character, 0, len(spawns))
	for _, sp := range spawns {
		meta := sp.Meta
		if s.difficulty != nil {
			meta.MovementSpeed = s.difficulty.Speed(meta.MovementSpeed, levelIndex)
		}
		monsters = append(monsters, character.New(sp.X, sp.Y, meta))
	}
	return monsters
}

func (s *Simulation) setScreen(id core.ScreenID) {
	s.logger.Debug("screen", "from", s.screen, "to", id)
	s.screen = id
	s.screenAge = 0
}

func (s *Simulation) screenReady() bool {
	return s.screenAge > s.screenDelay
}

// State returns the current game state.
func (s *Simulation) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		Health:   s.player.State.Health,
		Level:    s.levelIndex,
		Screen:   s.screen,
		GameOver: s.screen == core.ScreenGameOver || s.screen == core.ScreenEnding,
		Paused:   s.paused,
	}
}

// Player returns the player character.
func (s *Simulation) Player() *character.Character { return s.player }

// Monsters returns the monsters of the current level, dead ones included.
func (s *Simulation) Monsters() []*character.Character { return s.monsters[s.levelIndex] }

// Level returns the current level.
func (s *Simulation) Level() *level.Level { return s.setups[s.levelIndex].Level }

// LevelIndex returns the zero-based index of the current level.
func (s *Simulation) LevelIndex() int { return s.levelIndex }

// LevelCount returns the number of levels in the run.
func (s *Simulation) LevelCount() int { return len(s.setups) }

// Screen returns the screen currently shown.
func (s *Simulation) Screen() core.ScreenID { return s.screen }

// Score returns the current score.
func (s *Simulation) Score() int { return s.score }

// Kills returns the number of monsters stomped this run.
func (s *Simulation) Kills() int { return s.kills }

// Frame returns the number of running frames since the last restart.
func (s *Simulation) Frame() int { return s.frame }

// Paused reports whether the running screen is paused.
func (s *Simulation) Paused() bool { return s.paused }
