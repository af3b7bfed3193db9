package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagNoSave bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Flappy Bird",
	Long: `Start a game in this terminal.

Controls:
  Space/Up/W   - Flap (also starts a run)
  P/Esc        - Pause, or click the pause button
  R/Enter      - Restart after game over, or click the restart button
  Ctrl+S       - Save a text screenshot
  ?            - Toggle full help
  Q/Ctrl+C     - Quit

Examples:
  flappy play
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml
  flappy play --no-save`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Keep the high score in memory only")
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, logFile, err := fileLogger(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	defer logFile.Close()

	scores, err := highScoreStore(flagHighScore, flagNoSave, logger)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Continue without history if the database is unavailable
	runs, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		runs = nil
	} else {
		defer runs.Close()
	}

	seed := resolveSeed(flagSeed)
	logger.Info("starting game", "seed", seed, "fps", flagFPS)

	game := flappy.New(gameCfg, scores,
		flappy.WithLogger(logger),
		flappy.WithSeed(seed),
	)

	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     seed,
		},
		Runs:   runs,
		Player: playerName(),
		Logger: logger,
	}
	if flagBell {
		opts.Bell = os.Stdout
	}

	if err := tui.Run(game, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
