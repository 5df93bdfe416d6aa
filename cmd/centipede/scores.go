package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-centipede/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [map]",
	Short: "Show recorded runs",
	Long: `Display the best runs on a map, or across all maps.

Examples:
  centipede scores
  centipede scores Meadow --limit 20
  centipede scores Garden --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded runs instead of showing them")
}

func runScores(_ *cobra.Command, args []string) {
	mapName := ""
	if len(args) == 1 {
		mapName = args[0]
	}
	title := mapName
	if title == "" {
		title = "all maps"
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(mapName); err != nil {
			fatalf("clearing runs: %v", err)
		}
		fmt.Printf("Cleared runs for %s.\n", title)
		return
	}

	runs, err := store.TopRuns(mapName, flagLimit)
	if err != nil {
		fatalf("retrieving runs: %v", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'centipede play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-12s  %-5s  %-6s  %-6s  %-10s  %s\n", "Rank", "Score", "Map", "Waves", "Deaths", "Time", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-12s  %-5s  %-6s  %-6s  %-10s  %s\n", "----", "-----", "---", "-----", "------", "----", "------", "----")
	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "local"
		}
		fmt.Printf("  %-4d  %-8d  %-12s  %-5d  %-6d  %-6s  %-10s  %s\n",
			i+1, r.Score, r.Map, r.Waves, r.Deaths, formatDuration(r.Duration), player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if st, err := store.Stats(mapName); err == nil {
		fmt.Printf("Best: %d  Runs: %d  Average: %.0f  Waves cleared: %d\n", st.Best, st.Runs, st.Average, st.TotalWaves)
	}
}

// formatDuration renders a run length as m:ss.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
