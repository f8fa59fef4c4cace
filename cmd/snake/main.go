// snake is a terminal snake game.
//
// Usage:
//
//	snake                - Play in this terminal
//	snake play           - Same as above
//	snake serve          - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Override the screen refresh rate
//	--seed <value>      - Set RNG seed for reproducible treat placement
//	--config <path>     - Use a custom config YAML
//	--log-file <path>   - Write logs to a file
//	--debug             - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the arcade classic in your terminal",
	Long: `Snake is the arcade classic played on a square grid in your terminal.

Steer the snake to the treats. Every treat makes it one square longer.
The game ends when the snake runs into itself or the border.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play

Examples:
  snake
  snake play --seed 42
  snake play --config ./my-snake.yaml
  snake serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Screen refresh rate (overrides config when set)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
