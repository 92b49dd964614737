// flappy is a terminal flappy-bird game with deterministic replays.
//
// Usage:
//
//	flappy play                - Play in this terminal
//	flappy serve               - Start SSH server for remote play
//	flappy replays             - Browse recorded replays
//	flappy replay verify <id>  - Re-simulate a replay and check its results
//	flappy replay show <id>    - Print a replay summary
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: from config, 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set replay database path (default: ~/.flappy/replays.db)
//	--config <path>     - Load game config from a YAML file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - a flappy-bird game for your terminal",
	Long: `Flappy is a terminal flappy-bird game. Every session is recorded as a
deterministic replay that can be re-simulated and verified later.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  replays  - Browse recorded replays
  replay   - Verify or inspect a single replay

Examples:
  flappy play
  flappy play --seed 42 --mute
  flappy serve --ssh :2222
  flappy replay verify 3`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config, default 60)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to replay database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML (or $"+config.EnvConfigPath+")")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
}

// loadConfig loads the game config and applies the global flag overrides.
func loadConfig() (config.FlappyConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagDBPath != "" {
		cfg.Replay.DBPath = flagDBPath
	}
	return cfg, nil
}

// fatal prints an error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
