package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-centipede/internal/core"
	"github.com/vovakirdan/tui-centipede/internal/storage"
)

// fakeGame records what the platform feeds it.
type fakeGame struct {
	resets   int
	steps    []time.Duration
	inputs   []core.InputFrame
	score    int
	level    string
	endNext  *core.RunSummary
	finished *core.RunSummary
}

func (g *fakeGame) ID() string                 { return "fake" }
func (g *fakeGame) Title() string              { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig)   { g.resets++ }
func (g *fakeGame) Render(dst *core.Screen)    { dst.Clear(); dst.DrawText(0, 0, "FAKE") }
func (g *fakeGame) Finish() *core.RunSummary   { return g.finished }
func (g *fakeGame) State() core.GameState      { return core.GameState{Score: g.score, Level: g.level} }
func (g *fakeGame) Step(in core.InputFrame, elapsed time.Duration) core.StepResult {
	g.steps = append(g.steps, elapsed)
	g.inputs = append(g.inputs, in)
	res := core.StepResult{State: g.State(), Ended: g.endNext}
	g.endNext = nil
	return res
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(t *testing.T, g *fakeGame, store *storage.Store) Model {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1}
	return NewModel(g, store, nil, cfg, "tester")
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelResetsGame(t *testing.T) {
	g := &fakeGame{}
	newTestModel(t, g, nil)
	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
}

func TestTickPassesElapsedTime(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)

	t0 := time.Now()
	m = update(t, m, TickMsg(t0))
	m = update(t, m, TickMsg(t0.Add(40*time.Millisecond)))

	if len(g.steps) != 2 {
		t.Fatalf("steps = %d, expected 2", len(g.steps))
	}
	if g.steps[0] != time.Second/30 {
		t.Errorf("first step = %v, expected one nominal frame", g.steps[0])
	}
	if g.steps[1] != 40*time.Millisecond {
		t.Errorf("second step = %v, expected 40ms", g.steps[1])
	}
}

func TestKeysReachGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)

	m = update(t, m, keyMsg(" "))
	m = update(t, m, keyMsg("left"))
	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, TickMsg(time.Now()))

	if !g.inputs[0].Has(core.ActionFire) || !g.inputs[0].Has(core.ActionLeft) {
		t.Errorf("first frame = %v, expected fire and left", g.inputs[0].Actions)
	}
	if g.inputs[1].Has(core.ActionFire) {
		t.Error("fire should trigger once per press")
	}
}

func TestEndedRunIsSaved(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{endNext: &core.RunSummary{Level: "Meadow", Score: 120, Waves: 1, Deaths: 3, DurationMS: 65000}}
	m := newTestModel(t, g, store)

	update(t, m, TickMsg(time.Now()))

	runs, err := store.TopRuns("Meadow", 10)
	if err != nil {
		t.Fatalf("TopRuns() error = %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs = %d, expected 1", len(runs))
	}
	r := runs[0]
	if r.Score != 120 || r.Player != "tester" || r.Reason != storage.EndReset {
		t.Errorf("run = %+v", r)
	}
	if r.Duration != 65*time.Second {
		t.Errorf("Duration = %v, expected 65s", r.Duration)
	}
}

func TestQuitSavesRunInProgress(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{finished: &core.RunSummary{Level: "Garden", Score: 30}}
	m := newTestModel(t, g, store)

	next, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if v := next.View(); v != "" {
		t.Errorf("View after quit = %q, expected empty", v)
	}

	runs, err := store.TopRuns("", 10)
	if err != nil {
		t.Fatalf("TopRuns() error = %v", err)
	}
	if len(runs) != 1 || runs[0].Reason != storage.EndQuit {
		t.Errorf("runs = %+v, expected one quit run", runs)
	}
}

func TestZeroScoreRunsAreNotSaved(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{endNext: &core.RunSummary{Level: "Meadow"}}
	m := newTestModel(t, g, store)

	update(t, m, TickMsg(time.Now()))

	runs, _ := store.TopRuns("", 10)
	if len(runs) != 0 {
		t.Errorf("runs = %d, expected none", len(runs))
	}
}

func TestScoreboardFreezesGame(t *testing.T) {
	g := &fakeGame{level: "Meadow"}
	m := newTestModel(t, g, openStore(t))

	m = update(t, m, keyMsg("tab"))
	if m.scores == nil {
		t.Fatal("tab should open the scoreboard")
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("scoreboard view should be shown")
	}

	m = update(t, m, TickMsg(time.Now()))
	if len(g.steps) != 0 {
		t.Errorf("steps = %d while scoreboard open, expected 0", len(g.steps))
	}

	m = update(t, m, keyMsg("esc"))
	if m.scores != nil {
		t.Fatal("esc should close the scoreboard")
	}
	update(t, m, TickMsg(time.Now()))
	if len(g.steps) != 1 {
		t.Errorf("steps = %d after closing, expected 1", len(g.steps))
	}
}

func TestViewIncludesPlayfieldAndHelp(t *testing.T) {
	m := newTestModel(t, &fakeGame{}, nil)
	v := m.View()
	if !strings.HasPrefix(v, "FAKE") {
		t.Errorf("view should start with the playfield, got %q", v[:20])
	}
	if !strings.Contains(v, "fire") {
		t.Error("view should include key help")
	}
}

func TestResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if g.resets != 1 {
		t.Errorf("resets = %d, resize should not reset the game", g.resets)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40-helpRows {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}
