package centipede

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-centipede/internal/audio"
	"github.com/vovakirdan/tui-centipede/internal/config"
	"github.com/vovakirdan/tui-centipede/internal/core"
	"github.com/vovakirdan/tui-centipede/internal/games/centipede/maps"
	"github.com/vovakirdan/tui-centipede/internal/games/centipede/sim"
)

type recordSink struct {
	cues []audio.Cue
}

func (r *recordSink) Play(c audio.Cue) { r.cues = append(r.cues, c) }

func (r *recordSink) has(c audio.Cue) bool {
	for _, it := range r.cues {
		if it == c {
			return true
		}
	}
	return false
}

type noMaps struct{}

func (noMaps) LoadNext() (*sim.Level, error) { return nil, sim.ErrNoMap }
func (noMaps) Reload() (*sim.Level, error)   { return nil, sim.ErrNoMap }

func newTestGame(t *testing.T) (*Game, *recordSink) {
	t.Helper()
	cfg := config.DefaultCentipedeConfig()
	cfg.Spawn.MushroomRate = 0
	sink := &recordSink{}
	g := New(cfg, maps.NewLoader(maps.Default(), sim.TileSize), sink, nil)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 30, Seed: 7})
	return g, sink
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestResetLoadsFirstMap(t *testing.T) {
	g, _ := newTestGame(t)

	st := g.State()
	if st.GameOver {
		t.Fatal("world should be running after Reset")
	}
	if st.Level != "Meadow" {
		t.Errorf("Level = %q, expected %q", st.Level, "Meadow")
	}
	if g.ID() != "centipede" || g.Title() != "Centipede" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}
}

func TestInputMapping(t *testing.T) {
	in := Input(frame(core.ActionLeft, core.ActionUp, core.ActionFire))
	want := sim.Input{Left: true, Up: true, Fire: true}
	if in != want {
		t.Errorf("Input() = %+v, expected %+v", in, want)
	}
	if Input(core.NewInputFrame()) != (sim.Input{}) {
		t.Error("empty frame should map to an idle input")
	}
}

func TestFrameClamp(t *testing.T) {
	g, _ := newTestGame(t)

	tests := []struct {
		elapsed time.Duration
		want    float64
	}{
		{16 * time.Millisecond, 16},
		{-time.Millisecond, 0},
		{2 * time.Second, g.cfg.World.MaxFrameMS},
	}
	for _, tt := range tests {
		if got := g.frameMS(tt.elapsed); got != tt.want {
			t.Errorf("frameMS(%v) = %v, expected %v", tt.elapsed, got, tt.want)
		}
	}
}

func TestFireTriggersShootCue(t *testing.T) {
	g, sink := newTestGame(t)

	g.Step(frame(core.ActionFire), 16*time.Millisecond)

	if !sink.has(audio.CueShoot) {
		t.Errorf("cues = %v, expected a shoot cue", sink.cues)
	}
	if g.World().Sprites().Count(sim.SpeciesLaser) == 0 {
		t.Error("expected a laser in flight")
	}
}

func TestPauseFreezesWorld(t *testing.T) {
	g, _ := newTestGame(t)

	g.Step(frame(core.ActionPause), 16*time.Millisecond)
	if !g.State().Paused {
		t.Fatal("expected paused state")
	}
	frames := g.World().Stats().Frames
	g.Step(frame(core.ActionLeft), 16*time.Millisecond)
	if got := g.World().Stats().Frames; got != frames {
		t.Errorf("frames advanced while paused: %d -> %d", frames, got)
	}

	g.Step(frame(core.ActionPause), 16*time.Millisecond)
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestRunEndsOnFinalDeath(t *testing.T) {
	g, sink := newTestGame(t)
	g.Step(core.NewInputFrame(), 16*time.Millisecond)

	g.World().Player().SetHealth(0)
	var ended *core.RunSummary
	for i := 0; i < 20 && ended == nil; i++ {
		ended = g.Step(core.NewInputFrame(), 100*time.Millisecond).Ended
	}
	if ended == nil {
		t.Fatal("expected a finished run after the dying hold")
	}
	if ended.Level != "Meadow" {
		t.Errorf("ended.Level = %q, expected Meadow", ended.Level)
	}
	if ended.DurationMS <= 0 {
		t.Errorf("ended.DurationMS = %v, expected > 0", ended.DurationMS)
	}
	if !sink.has(audio.CueReset) {
		t.Error("expected a reset cue")
	}
}

func TestRestartEndsRun(t *testing.T) {
	g, _ := newTestGame(t)
	g.Step(core.NewInputFrame(), 16*time.Millisecond)

	res := g.Step(frame(core.ActionRestart), 16*time.Millisecond)
	if res.Ended == nil {
		t.Fatal("restart should report the abandoned run")
	}
	if res.State.GameOver {
		t.Error("world should keep running after restart")
	}
}

func TestGoalMovesToNextMap(t *testing.T) {
	g, sink := newTestGame(t)
	w := g.World()
	goal := w.Level().Goals[0]
	p := w.Player()
	p.X = float64(goal.X*sim.TileSize + 8)
	p.Y = float64(goal.Y*sim.TileSize + 8)

	res := g.Step(frame(), 16*time.Millisecond)

	if res.Ended != nil {
		t.Errorf("Ended = %+v, reaching a goal should not end the run", res.Ended)
	}
	if res.State.Level != "Garden" {
		t.Errorf("Level = %q, expected Garden", res.State.Level)
	}
	if !sink.has(audio.CueGoal) {
		t.Error("expected the goal cue")
	}
	if w.Stats().Levels != 1 {
		t.Errorf("levels = %d, expected 1", w.Stats().Levels)
	}
}

func TestFinish(t *testing.T) {
	g, _ := newTestGame(t)
	if g.Finish() != nil {
		t.Error("Finish before any frame should be nil")
	}

	g.Step(core.NewInputFrame(), 16*time.Millisecond)
	sum := g.Finish()
	if sum == nil {
		t.Fatal("expected a run summary")
	}
	if sum.DurationMS != 16 {
		t.Errorf("DurationMS = %v, expected 16", sum.DurationMS)
	}
}

func TestNoMapRendersNotice(t *testing.T) {
	g := New(config.DefaultCentipedeConfig(), noMaps{}, nil, nil)
	g.Reset(core.DefaultConfig())

	if !g.State().GameOver {
		t.Fatal("world without maps should be halted")
	}
	if !errors.Is(g.err, sim.ErrNoMap) {
		t.Errorf("err = %v, expected ErrNoMap", g.err)
	}
	g.Step(frame(core.ActionLeft), 16*time.Millisecond)

	s := core.NewScreen(80, 24)
	g.Render(s)
	if !strings.Contains(s.String(), "no map available") {
		t.Errorf("screen should show the no-map notice:\n%s", s.String())
	}
}

func TestRenderDrawsPlayerAndHUD(t *testing.T) {
	g, _ := newTestGame(t)
	s := core.NewScreen(80, 30)
	g.Render(s)

	out := s.String()
	if !strings.HasPrefix(s.Row(0), " Centipede  Meadow  Score: 0") {
		t.Errorf("HUD row = %q", s.Row(0))
	}

	found := false
	for y := hudRows; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			c := s.GetCell(x, y)
			if c.Rune == '▲' && c.Color == core.ColorBrightCyan {
				found = true
			}
		}
	}
	if !found {
		t.Errorf("player glyph not drawn:\n%s", out)
	}
}

func TestCameraClampsToGrid(t *testing.T) {
	g, _ := newTestGame(t)
	grid := g.World().Grid()

	tests := []struct {
		name       string
		px, py     float64
		wantX      int
		wantY      int
		screenW, h int
	}{
		{"top left", 0, 0, 0, 0, 40, 12},
		{"bottom right", float64(grid.PixelW() - 64), float64(grid.PixelH() - 64), grid.W - 20, grid.H - 11, 40, 12},
		{"screen larger than grid", 400, 400, 0, 0, 200, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := g.World().Player()
			p.X, p.Y = tt.px, tt.py
			v := g.camera(core.NewScreen(tt.screenW, tt.h))
			if v.X != tt.wantX || v.Y != tt.wantY {
				t.Errorf("camera = (%d,%d), expected (%d,%d)", v.X, v.Y, tt.wantX, tt.wantY)
			}
		})
	}
}
