package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/taekwondino/internal/character"
	"github.com/vovakirdan/taekwondino/internal/core"
	"github.com/vovakirdan/taekwondino/internal/game"
	"github.com/vovakirdan/taekwondino/internal/sim"
)

var (
	flagFrames int
	flagScript string
	flagEvery  int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a scripted game without a terminal UI",
	Long: `Run the simulation headless from an input script and print the
player and monster state as it goes. The same script always produces
the same output.

The script is a comma-separated list of inputs, one per frame. Each
input is a "+"-joined set of L, R, U, D, S (run) or "none", optionally
followed by "*count" to repeat it. After the script ends the remaining
frames have no input. The title screen is skipped.

Examples:
  taekwondino simulate --frames 600 --script "R*100,R+S*200,R+U,R*200"
  taekwondino simulate --frames 300 --every 10 --script "R+S*300"`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 600, "Number of frames to run")
	simulateCmd.Flags().StringVar(&flagScript, "script", "", "Input script, e.g. R+S*120,R+U,R*60")
	simulateCmd.Flags().IntVar(&flagEvery, "every", 60, "Print the state every N frames")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	if flagFrames <= 0 {
		return fmt.Errorf("--frames must be positive, got %d", flagFrames)
	}
	if flagEvery <= 0 {
		return fmt.Errorf("--every must be positive, got %d", flagEvery)
	}
	script, err := core.ParseScript(flagScript)
	if err != nil {
		return err
	}

	g, err := game.Load(flagConfig, flagDifficulty,
		game.WithScreenDelay(0),
		game.WithLogger(newLogger("sim")),
	)
	if err != nil {
		return err
	}

	start := core.NewInputFrame()
	start.Set(core.ActionConfirm)
	g.Step(start)

	out := cmd.OutOrStdout()
	s := g.Simulation()
	for frame := 0; frame < flagFrames; frame++ {
		held := core.Input{}
		if frame < len(script) {
			held = script[frame]
		}

		res := g.Step(core.FrameOf(held))
		for _, ev := range res.Events {
			fmt.Fprintf(out, "%6d  event %-15s %s\n", frame+1, ev.Kind, ev.Detail)
		}

		if (frame+1)%flagEvery == 0 || res.State.GameOver {
			printFrame(out, frame+1, held, s)
		}
		if res.State.GameOver {
			break
		}
	}

	sum := g.Summary()
	outcome := string(sum.Outcome)
	if outcome == "" {
		outcome = "running"
	}
	fmt.Fprintf(out, "\nresult: %s  score %d  kills %d  level %d  frames %d\n",
		outcome, sum.Score, sum.Kills, sum.Level, sum.Frames)
	return nil
}

func printFrame(out io.Writer, frame int, held core.Input, s *sim.Simulation) {
	p := s.Player()
	fmt.Fprintf(out, "%6d  %-10s L%d  score %-5d input %-12s player %s\n",
		frame, s.Screen(), s.LevelIndex()+1, s.Score(), held, describe(p))
	for _, m := range s.Monsters() {
		fmt.Fprintf(out, "%6s  %-10s %s\n", "", m.Metadata.Name, describe(m))
	}
}

func describe(c *character.Character) string {
	st := c.State
	return fmt.Sprintf("x=%7.1f y=%6.1f vx=%6.2f vy=%6.2f hp=%-3d %s/%s",
		st.X, st.Y, st.VelocityX, st.VelocityY, st.Health, st.ActionSprite, c.Facing())
}
