package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/logging"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagMute     bool
	flagLogFile  string
	flagNoReplay bool
	flagNoMusic  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space/Up/W - Flap (restarts after game over)
  R          - Restart after game over
  P/Esc      - Pause
  ?          - Toggle full help
  Q/Ctrl+C   - Quit

The session is recorded and saved to the replay database every time a run
ends. Logs go to --log-file because the game owns the screen.

Examples:
  flappy play
  flappy play --seed 1234 --no-music
  flappy play --mute --log-file ~/.flappy/flappy.log
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects and music")
	playCmd.Flags().BoolVar(&flagNoMusic, "no-music", false, "Keep sound effects but drop the background music")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	playCmd.Flags().BoolVar(&flagNoReplay, "no-replay", false, "Do not record a replay")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	if flagNoMusic {
		cfg.Audio.MusicVolume = 0
	}

	logger, logCloser, err := logging.OpenFile(flagLogFile, flagLogLevel, "flappy")
	if err != nil {
		fatal("open log file: %v", err)
	}
	defer logCloser.Close()

	rc := terminalRuntime()
	rc.TickRate = cfg.TickRate
	rc.Seed = flagSeed

	opts := tui.Options{
		Runtime: rc,
		Game:    cfg,
		Logger:  logger,
	}

	sink := audio.Open(cfg.Audio, logger)
	defer sink.Close()
	opts.Sink = sink

	var store *storage.Store
	if cfg.Replay.Enabled && !flagNoReplay {
		store, err = storage.Open(cfg.Replay.DBPath)
		if err != nil {
			logger.Warn("could not open replay database", "error", err)
			fmt.Fprintf(os.Stderr, "Warning: could not open replay database: %v\n", err)
			// Continue without recording - game still works
			store = nil
		} else {
			defer store.Close()
			opts.Store = store
		}
	}

	final, err := tui.Run(opts)
	if err != nil {
		fatal("running game: %v", err)
	}

	if id := final.ReplayID(); id != 0 {
		fmt.Printf("Replay #%d saved (seed %d). Verify with: flappy replay verify %d\n", id, final.Seed(), id)
	}
}

// terminalRuntime sizes the session to stdout, falling back to 80x24.
func terminalRuntime() core.RuntimeConfig {
	rc := core.DefaultRuntime()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc = rc.WithSize(w, h)
	}
	return rc
}
