package sim

// Outcome is how a run ended.
type Outcome string

const (
	OutcomeNone     Outcome = ""          // Still in progress
	OutcomeGameOver Outcome = "game_over" // Player died
	OutcomeEnding   Outcome = "ending"    // Last level cleared
)

// RunSummary describes a run for the scoreboard.
type RunSummary struct {
	Player  string
	Outcome Outcome
	Score   int
	Kills   int
	Level   int // One-based level reached
	Frames  int
}

// Summary returns the summary of the current run. Outcome is OutcomeNone
// until the run reaches the game-over or ending screen; a restart clears it.
func (s *Simulation) Summary() RunSummary {
	return RunSummary{
		Player:  s.player.Metadata.Name,
		Outcome: s.outcome,
		Score:   s.score,
		Kills:   s.kills,
		Level:   s.levelIndex + 1,
		Frames:  s.frame,
	}
}

// Finished reports whether the run has ended.
func (s *Simulation) Finished() bool {
	return s.outcome != OutcomeNone
}
