package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "Browse recorded replays",
	Long: `Open an interactive table of recent replays.

Keys:
  Up/Down   - Move
  Enter     - Re-simulate and verify the selected replay
  D         - Delete the selected replay
  Q/Esc     - Quit`,
	Args: cobra.NoArgs,
	Run:  runReplays,
}

func runReplays(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	store, err := storage.Open(cfg.Replay.DBPath)
	if err != nil {
		fatal("opening replay database: %v", err)
	}
	defer store.Close()

	rc := terminalRuntime()
	if err := tui.RunBrowser(store, cfg, rc.ScreenW, rc.ScreenH); err != nil {
		fatal("running browser: %v", err)
	}
}
