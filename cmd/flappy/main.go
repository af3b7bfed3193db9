// flappy is a Flappy Bird game for the terminal.
//
// Usage:
//
//	flappy play              - Play in this terminal (default command)
//	flappy scores            - Show run history and the high score
//	flappy serve             - Start SSH server for remote play
//	flappy config            - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set run history database (default: ~/.flappy/scores.db)
//	--highscore <path>    - Set high score file (default: ~/.flappy/highscore.json)
//	--config <path>       - Use a custom game config YAML
//	--log-level <level>   - debug, info, warn or error
//	--bell                - Ring the terminal bell on crashes
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagHighScore string
	flagConfig    string
	flagLogLevel  string
	flagBell      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Guide the bird through the gaps between the pipes. Every pipe you
pass scores a point; touching a pipe or the ground ends the run.

Available commands:
  play     - Play in this terminal
  scores   - View run history and the high score
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  flappy
  flappy play --seed 42
  flappy scores -i
  flappy serve --ssh :2222`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagHighScore, "highscore", "", "Path to high score file (default ~/.flappy/highscore.json)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagBell, "bell", false, "Ring the terminal bell on hit and die")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
