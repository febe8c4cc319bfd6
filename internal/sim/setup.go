package sim

import (
	"fmt"

	"github.com/vovakirdan/taekwondino/internal/character"
	"github.com/vovakirdan/taekwondino/internal/config"
	"github.com/vovakirdan/taekwondino/internal/level"
)

// LevelSetup is one level of the run with the monsters that start in it.
type LevelSetup struct {
	Level    *level.Level
	Monsters []MonsterSpawn
}

// MonsterSpawn is a monster's metadata and starting position.
type MonsterSpawn struct {
	Kind string
	Meta character.Metadata
	X, Y float64
}

// BuildLevels converts a configuration into level setups.
// The configuration should have passed config.Validate.
func BuildLevels(cfg config.GameConfig) ([]LevelSetup, error) {
	setups := make([]LevelSetup, 0, len(cfg.Levels))
	for i := range cfg.Levels {
		spec, err := cfg.LevelSpec(i)
		if err != nil {
			return nil, err
		}
		lvl, err := level.New(spec)
		if err != nil {
			return nil, fmt.Errorf("sim: build level %d: %w", i+1, err)
		}

		setup := LevelSetup{Level: lvl}
		for _, sp := range lvl.Spawns() {
			meta, err := cfg.MonsterMetadata(sp.Kind)
			if err != nil {
				return nil, fmt.Errorf("sim: level %q: %w", lvl.Name(), err)
			}
			setup.Monsters = append(setup.Monsters, MonsterSpawn{
				Kind: sp.Kind,
				Meta: meta,
				X:    sp.X,
				Y:    sp.Y,
			})
		}
		setups = append(setups, setup)
	}
	return setups, nil
}
