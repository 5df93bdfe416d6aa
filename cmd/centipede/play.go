package main

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-centipede/internal/audio"
	"github.com/vovakirdan/tui-centipede/internal/core"
	"github.com/vovakirdan/tui-centipede/internal/games/centipede"
	"github.com/vovakirdan/tui-centipede/internal/platform/tui"
	"github.com/vovakirdan/tui-centipede/internal/storage"
)

var (
	flagLogFile string
	flagSound   bool
	flagVolume  float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play locally",
	Long: `Start a local game on the first map of the sequence.

Controls:
  Arrows/WASD  - Move
  Space        - Fire
  P/Esc        - Pause
  R            - Restart the map
  Tab          - Scoreboard
  Ctrl+S       - Screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More lives, fewer mushrooms, slower dying
  normal - Config values as written
  hard   - Two lives, dense mushrooms, longer centipedes

Examples:
  centipede play
  centipede play --difficulty easy
  centipede play --sound --volume 0.3
  centipede play --config ./my-centipede.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "~/.centipede/centipede.log", "Log file (the terminal is taken by the game)")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume from 0 to 1")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fatalf("%v", err)
	}

	loader, err := openMaps()
	if err != nil {
		fatalf("%v", err)
	}

	logger, closeLog, err := fileLogger(expandHome(flagLogFile))
	if err != nil {
		fatalf("cannot open log file: %v", err)
	}
	defer closeLog()

	var sink audio.Sink = audio.Nop{}
	if flagSound {
		sm := audio.NewSoundManager(flagVolume)
		if err := sm.Initialize(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			defer sm.Cleanup()
			sink = sm
		}
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	game := centipede.New(cfg, loader, sink, logger)
	logger.Info("starting", "maps", mapsSource(), "difficulty", flagDifficulty, "fps", flagFPS)
	runErr := tui.Run(game, store, logger, rc)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		logger.Error("game stopped", "error", runErr)
		fatalf("running game: %v", runErr)
	}
}

// fileLogger opens an append-only log file so log output does not
// corrupt the alternate screen.
func fileLogger(path string) (*log.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "centipede",
		Level:           logLevel(),
	})
	return logger, func() { f.Close() }, nil
}

func mapsSource() string {
	if flagMapsDir == "" {
		return "built-in"
	}
	return flagMapsDir
}

var _ tui.Game = (*centipede.Game)(nil)
