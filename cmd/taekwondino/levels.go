package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/taekwondino/internal/config"
	"github.com/vovakirdan/taekwondino/internal/sim"
)

var levelHeadingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the configured levels",
	Long: `Print the geometry of every configured level: its tile columns,
length, start and exit positions, and the monsters that spawn in it.

Examples:
  taekwondino levels
  taekwondino levels --config ./my-levels.yaml`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	setups, err := sim.BuildLevels(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, setup := range setups {
		lvl := setup.Level
		fmt.Fprintln(out, levelHeadingStyle.Render(fmt.Sprintf("Level %d: %s", i+1, lvl.Name())))
		fmt.Fprintf(out, "  columns %d, tile %g, length %g, height %g\n",
			lvl.ColumnCount(), lvl.TileSize(), lvl.Length(), lvl.LevelHeight())
		start := lvl.PlayerStart()
		fmt.Fprintf(out, "  start (%g, %g), exit at x >= %g\n",
			start.X, start.Y, sim.ExitX(lvl, cfg.Player.SpriteWidth))

		var profile strings.Builder
		for c := 0; c < lvl.ColumnCount(); c++ {
			profile.WriteString(lvl.Column(c).Type)
		}
		fmt.Fprintf(out, "  |%s|\n", profile.String())

		if len(setup.Monsters) == 0 {
			fmt.Fprintln(out, "  no monsters")
		}
		for _, m := range setup.Monsters {
			fmt.Fprintf(out, "  %-8s at (%g, %g)  %s, %s, speed %g, health %d\n",
				m.Kind, m.X, m.Y, m.Meta.Name, m.Meta.Behavior, m.Meta.MovementSpeed, m.Meta.StartingHealth)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "Tiles:")
	for _, key := range setups[0].Level.TileKeys() {
		tc := cfg.Tiles[key]
		kind := fmt.Sprintf("ground %g", tc.Ground)
		if tc.Pit {
			kind = "pit"
		}
		if tc.Wall {
			kind += ", wall"
		}
		fmt.Fprintf(out, "  %q  %-10s %s\n", key, tc.Name, kind)
	}
	return nil
}
