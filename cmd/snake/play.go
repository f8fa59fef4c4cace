package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game of snake in this terminal.

Controls:
  Arrows/WASD  - Steer
  Q/Esc        - Quit

Examples:
  snake play
  snake play --seed 42
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

// loadGameConfig reads the config and applies command-line overrides.
func loadGameConfig(cmd *cobra.Command) (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}
	if f := cmd.Flag("fps"); f != nil && f.Changed {
		cfg.Timing.FrameRate = flagFPS
	}
	return cfg, cfg.Validate()
}

func runPlay(cmd *cobra.Command, _ []string) {
	out := stderrLogger()

	gameCfg, err := loadGameConfig(cmd)
	if err != nil {
		out.Error("cannot load config", "error", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		out.Error("cannot set up logging", "error", err)
		os.Exit(1)
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rtCfg := gameCfg.Runtime(seed)

	// Warn early; the game waits for a resize otherwise
	needW, needH := tui.RequiredSize(rtCfg.GridSize)
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < needW || h < needH) {
		out.Warn("terminal is smaller than the board", "need", sizeString(needW, needH), "have", sizeString(w, h))
	}

	session, err := snake.NewSession(rtCfg, snake.SystemClock{})
	if err != nil {
		out.Error("cannot start game", "error", err)
		os.Exit(1)
	}
	logger.Info("session started", "seed", seed, "grid", rtCfg.GridSize, "interval", rtCfg.MoveInterval)

	palette := tui.NewPalette(lipgloss.DefaultRenderer(), gameCfg.Colors)
	final, runErr := tui.Run(session, rtCfg, palette, logger)
	if runErr != nil {
		out.Error("error running game", "error", runErr)
		closeLog()
		os.Exit(1)
	}

	switch final.Status {
	case snake.StatusDead:
		out.Info("game over", "reason", final.Reason, "length", final.Length, "treats", final.Eaten, "ticks", final.Tick)
	case snake.StatusBoardFull:
		out.Info("board full", "length", final.Length, "treats", final.Eaten, "ticks", final.Tick)
	default:
		out.Info("bye", "length", final.Length, "treats", final.Eaten, "ticks", final.Tick)
	}
}

func sizeString(w, h int) string {
	return fmt.Sprintf("%dx%d", w, h)
}
