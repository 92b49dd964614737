package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/replay"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Verify or inspect a recorded replay",
}

var replayVerifyCmd = &cobra.Command{
	Use:   "verify <id>",
	Short: "Re-simulate a replay and compare it with the recorded runs",
	Long: `Re-run the recorded session headlessly from its seed and inputs and check
that every run ends with the recorded score after the recorded number of
ticks. Exits 1 on any mismatch.

Examples:
  flappy replay verify 3`,
	Args: cobra.ExactArgs(1),
	Run:  runReplayVerify,
}

var replayShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a replay summary",
	Args:  cobra.ExactArgs(1),
	Run:   runReplayShow,
}

func init() {
	replayCmd.AddCommand(replayVerifyCmd)
	replayCmd.AddCommand(replayShowCmd)
}

// openReplay loads and decodes replay id from the configured database.
func openReplay(arg string) (storage.ReplayEntry, replay.Replay, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return storage.ReplayEntry{}, replay.Replay{}, fmt.Errorf("invalid replay id %q", arg)
	}

	cfg, err := loadConfig()
	if err != nil {
		return storage.ReplayEntry{}, replay.Replay{}, err
	}
	store, err := storage.Open(cfg.Replay.DBPath)
	if err != nil {
		return storage.ReplayEntry{}, replay.Replay{}, fmt.Errorf("opening replay database: %w", err)
	}
	defer store.Close()

	entry, err := store.Replay(id)
	if errors.Is(err, storage.ErrReplayNotFound) {
		return entry, replay.Replay{}, fmt.Errorf("replay #%d does not exist", id)
	}
	if err != nil {
		return entry, replay.Replay{}, err
	}

	r, err := replay.FromEntry(entry)
	return entry, r, err
}

func runReplayVerify(_ *cobra.Command, args []string) {
	entry, r, err := openReplay(args[0])
	if err != nil {
		fatal("%v", err)
	}
	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	res, err := replay.Verify(cfg, r)
	if err != nil {
		fatal("replay #%d: %v", entry.ID, err)
	}

	fmt.Printf("Replay #%d OK: %d runs reproduced", entry.ID, len(res.Runs))
	if len(res.Runs) > 0 {
		fmt.Printf(", best %d", int(r.BestScore()))
	}
	fmt.Println()
}

func runReplayShow(_ *cobra.Command, args []string) {
	entry, r, err := openReplay(args[0])
	if err != nil {
		fatal("%v", err)
	}

	fmt.Printf("Replay #%d\n", entry.ID)
	fmt.Println()
	fmt.Printf("  %-10s %s\n", "Recorded", entry.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("  %-10s %d\n", "Seed", r.Seed)
	fmt.Printf("  %-10s %d Hz\n", "Tick rate", r.TickRate)
	fmt.Printf("  %-10s %d\n", "Frames", len(r.Frames))
	fmt.Printf("  %-10s %.1fs\n", "Duration", float64(r.DurationMS())/1000)
	if r.Config != nil {
		fmt.Printf("  %-10s recorded (gravity %.2f, flap %.2f, scroll %.2f)\n", "Config",
			r.Config.Physics.Gravity, r.Config.Physics.FlapImpulse, r.Config.Physics.ScrollSpeed)
	} else {
		fmt.Printf("  %-10s not recorded, verify uses the loaded config\n", "Config")
	}
	fmt.Println()

	if len(r.Runs) == 0 {
		fmt.Println("No finished runs.")
		return
	}

	fmt.Printf("  %-4s  %-6s  %s\n", "Run", "Score", "Ticks")
	fmt.Printf("  %-4s  %-6s  %s\n", "---", "-----", "-----")
	for i, run := range r.Runs {
		fmt.Printf("  %-4d  %-6d  %d\n", i+1, int(run.Score), run.Ticks)
	}
	fmt.Println()
	fmt.Printf("Best: %d\n", int(r.BestScore()))
}
