package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/taekwondino/internal/core"
	"github.com/vovakirdan/taekwondino/internal/game"
	"github.com/vovakirdan/taekwondino/internal/platform/tui"
	"github.com/vovakirdan/taekwondino/internal/storage"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a run of Tae Kwon Dino in this terminal.

Controls:
  Left/Right, A/D      - Walk
  Shift+Left/Right     - Run
  Up/Space/W           - Jump
  Enter/any key        - Start, continue after game over
  P/Esc                - Pause
  R                    - New run
  ?                    - More keys
  Q/Ctrl+C             - Quit

Difficulty options:
  easy   - Double health, monsters speed up from the first level
  normal - Monsters start at 30% difficulty and speed up level by level
  hard   - Half health, monsters start at 70% difficulty
  fixed  - No progression, stays at config's initial level

Examples:
  taekwondino play
  taekwondino play --difficulty easy
  taekwondino play --config ./my-levels.yaml --log-file /tmp/tkd.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the game screen hides stderr)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := playLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	g, err := game.Load(flagConfig, flagDifficulty, game.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("cannot load game: %w", err)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(g, store, cfg, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}

// playLogger logs to --log-file, or nowhere: the alternate screen would
// swallow anything written to the terminal.
func playLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := newLogger("taekwondino")
	logger.SetOutput(f)
	return logger, func() { f.Close() }, nil
}
