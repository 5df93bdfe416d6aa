package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-centipede/internal/core"
	"github.com/vovakirdan/tui-centipede/internal/storage"
)

const shutdownGrace = 10 * time.Second

// SSHServerConfig configures `centipede serve`.
type SSHServerConfig struct {
	Address string

	// HostKeyPath defaults to ~/.centipede/host_key; the key is generated
	// on first start.
	HostKeyPath string

	// DBPath is the shared run history. All players share one leaderboard.
	DBPath string

	IdleTimeout time.Duration
	TickRate    int
}

// DefaultSSHServerConfig returns the settings used when no flags are given.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.centipede/scores.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    30,
	}
}

// SSHServer gives every SSH session its own game and world.
type SSHServer struct {
	config  SSHServerConfig
	server  *ssh.Server
	store   *storage.Store
	logger  *log.Logger
	newGame GameFactory
}

// NewSSHServer prepares the server. A run history that cannot be opened
// is logged and play goes on without it.
func NewSSHServer(cfg SSHServerConfig, newGame GameFactory) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "centipede-ssh",
	})

	keyPath, err := resolveHostKey(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	srv := &SSHServer{config: cfg, logger: logger, newGame: newGame}
	if srv.store, err = storage.Open(cfg.DBPath); err != nil {
		logger.Warn("run history disabled", "db", cfg.DBPath, "error", err)
		srv.store = nil
	}

	// Middleware runs last to first: log, require a terminal, then play.
	srv.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		if srv.store != nil {
			srv.store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}
	return srv, nil
}

// resolveHostKey returns the host key location and makes sure its
// directory exists.
func resolveHostKey(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".centipede", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

// sessionConfig sizes a game to the client's terminal.
func sessionConfig(win ssh.Window, rate int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if win.Width > 0 && win.Height > 0 {
		cfg.ScreenW, cfg.ScreenH = win.Width, win.Height
	}
	if rate > 0 {
		cfg.TickRate = rate
	}
	cfg.Seed = time.Now().UnixNano()
	return cfg
}

func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	user := sess.User()
	logger := s.logger.With("user", user)

	model := NewModel(s.newGame(logger), s.store, logger, sessionConfig(pty.Window, s.config.TickRate), user)
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		remote := sess.RemoteAddr().String()
		s.logger.Info("session started", "user", sess.User(), "remote", remote)
		next(sess)
		s.logger.Info("session ended", "user", sess.User(), "remote", remote,
			"duration", time.Since(start).Round(time.Second))
	}
}

// ListenAndServe serves until SIGINT or SIGTERM, then shuts down.
// It returns early if the listener fails.
func (s *SSHServer) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.logger.Info("listening", "address", s.config.Address)
	failed := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			failed <- err
		}
	}()

	select {
	case err := <-failed:
		s.closeStore()
		return fmt.Errorf("ssh server: %w", err)
	case <-ctx.Done():
	}
	s.logger.Info("shutting down")
	return s.Shutdown()
}

// Shutdown waits up to shutdownGrace for open sessions to finish.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}
