package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-centipede/internal/core"
	"github.com/vovakirdan/tui-centipede/internal/storage"
)

// helpRows is the space reserved below the playfield for the key help.
const helpRows = 1

// Model is the Bubble Tea model for one game session.
type Model struct {
	game      Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	player    string // SSH user, empty for local play
	config    core.RuntimeConfig
	keys      KeyMap
	controls  *Controls
	help      help.Model
	scores    *ScoreboardModel
	gameState core.GameState
	lastTick  time.Time
	started   time.Time
	saved     int // runs recorded this session
	quitting  bool
}

// NewModel creates a model driving game. Store and logger may be nil.
func NewModel(game Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, player string) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	h := help.New()
	h.Width = cfg.ScreenW

	game.Reset(cfg)

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		store:     store,
		logger:    logger,
		player:    player,
		config:    cfg,
		keys:      keys,
		controls:  NewControls(keys),
		help:      h,
		gameState: game.State(),
		started:   time.Now(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.scores != nil {
			return m.updateScores(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch m.controls.Press(msg, time.Now()) {
	case core.ActionQuit:
		return m.quit()
	case core.ActionScores:
		sb := NewScoreboardModel(m.store, m.gameState.Level, m.config.ScreenW, m.config.ScreenH)
		m.scores = &sb
		m.controls.Release()
	}
	return m, nil
}

func (m Model) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	sb, cmd := m.scores.Update(msg)
	switch {
	case sb.IsQuitting():
		m.scores = nil
		return m.quit()
	case sb.Closed():
		m.scores = nil
		return m, cmd
	}
	m.scores = &sb
	return m, cmd
}

// handleResize processes window resize events. The world keeps running;
// only the view changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	if m.scores != nil {
		sb, _ := m.scores.Update(msg)
		m.scores = &sb
	}
	return m, nil
}

// handleTick advances the game by the wall time since the previous tick.
// The game is frozen while the scoreboard is open.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := frameInterval(m.config.TickRate)
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	if m.scores == nil {
		result := m.game.Step(m.controls.Frame(now), elapsed)
		m.gameState = result.State
		if result.Ended != nil {
			m.saveRun(result.Ended, storage.EndReset)
		}
	}

	return m, tickCmd(m.config.TickRate)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.saveRun(m.game.Finish(), storage.EndQuit)
	m.quitting = true
	m.logger.Info("session finished", "score", m.gameState.Score, "runs", m.saved, "duration", time.Since(m.started).Round(time.Second))
	return m, tea.Quit
}

// saveRun records a finished run. Runs without points are not kept.
func (m *Model) saveRun(sum *core.RunSummary, reason storage.EndReason) {
	if sum == nil || sum.Score <= 0 {
		return
	}
	if m.store == nil {
		return
	}
	run := storage.Run{
		Map:      sum.Level,
		Player:   m.player,
		Score:    sum.Score,
		Waves:    sum.Waves,
		Deaths:   sum.Deaths,
		Duration: time.Duration(sum.DurationMS * float64(time.Millisecond)),
		Reason:   reason,
	}
	id, err := m.store.SaveRun(run)
	if err != nil {
		m.logger.Error("could not save run", "map", run.Map, "score", run.Score, "error", err)
		return
	}
	m.saved++
	m.logger.Info("run saved", "id", id, "map", run.Map, "score", run.Score, "reason", reason)
}

// saveScreenshot writes the current playfield as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".centipede", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scores != nil {
		return m.scores.View()
	}

	m.game.Render(m.screen)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// GameState returns the state seen at the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

func playfieldHeight(h int) int {
	return core.Max(1, h-helpRows)
}

// Run starts the Bubble Tea program for a local session.
func Run(game Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg, "")

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
