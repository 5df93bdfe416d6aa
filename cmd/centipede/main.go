// centipede is a tile-based Centipede shooter for the terminal.
//
// Usage:
//
//	centipede play           - Play locally
//	centipede serve          - Start SSH server for remote play
//	centipede scores [map]   - Show recorded runs
//	centipede maps           - List the map sequence
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.centipede/scores.db)
//	--maps <dir>          - Read map1.txt, map2.yaml, ... from a directory
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal or hard
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-centipede/internal/config"
	"github.com/vovakirdan/tui-centipede/internal/games/centipede/maps"
	"github.com/vovakirdan/tui-centipede/internal/games/centipede/sim"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagMapsDir    string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "centipede",
	Short: "Centipede - shoot the centipede before it reaches you",
	Long: `Centipede is a tile-based shooter played in the terminal.

A centipede winds down through a field of mushrooms while a spider
bounces around the bottom. Shoot them before they reach you.

Available commands:
  play     - Play locally
  serve    - Start SSH server for remote play
  scores   - View recorded runs
  maps     - List the map sequence

Examples:
  centipede play
  centipede play --difficulty hard --sound
  centipede play --maps ./my-maps
  centipede serve --ssh :2222
  centipede scores Meadow`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.centipede/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagMapsDir, "maps", "", "Directory with map1.txt, map2.yaml, ... (default: built-in maps)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(mapsCmd)
}

// loadGameConfig reads the config file and applies the difficulty preset.
func loadGameConfig() (config.CentipedeConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.CentipedeConfig{}, err
	}
	cfg, err := config.LoadCentipede(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyCentipedePreset(&cfg, preset)
	return cfg, cfg.Validate()
}

// openMaps opens the map sequence selected by --maps.
func openMaps() (*maps.Loader, error) {
	return maps.Open(expandHome(flagMapsDir), sim.TileSize)
}

func logLevel() log.Level {
	lvl, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
