package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-centipede/internal/audio"
	"github.com/vovakirdan/tui-centipede/internal/games/centipede"
	"github.com/vovakirdan/tui-centipede/internal/games/centipede/maps"
	"github.com/vovakirdan/tui-centipede/internal/games/centipede/sim"
	"github.com/vovakirdan/tui-centipede/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Centipede SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game, starting on the first map.
Runs are stored per-server (all users share the same leaderboard).
Sound is never played for remote sessions.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.centipede/host_key

Examples:
  centipede serve                           # Listen on :23234 with auto-generated key
  centipede serve --ssh :2222               # Listen on port 2222
  centipede serve --host-key ./my_host_key  # Use specific host key
  centipede serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fatalf("%v", err)
	}

	// Fail early on a bad map directory; each session opens its own loader.
	if _, err := openMaps(); err != nil {
		fatalf("%v", err)
	}

	newGame := func(logger *log.Logger) tui.Game {
		loader, err := openMaps()
		if err != nil {
			logger.Error("cannot open maps, using built-in set", "error", err)
			loader = maps.NewLoader(maps.Default(), sim.TileSize)
		}
		logger.SetLevel(logLevel())
		return centipede.New(cfg, loader, audio.Nop{}, logger)
	}

	srvCfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
	}

	server, err := tui.NewSSHServer(srvCfg, newGame)
	if err != nil {
		fatalf("creating server: %v", err)
	}

	fmt.Printf("Starting Centipede SSH server on %s\n", srvCfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fatalf("server: %v", err)
	}
}
