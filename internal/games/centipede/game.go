// Package centipede plugs the simulation into the terminal platform.
// It turns platform actions into sim.Input, drives the world with wall-clock
// frame times, forwards world events to audio and the log, and draws the
// world into a core.Screen.
package centipede

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-centipede/internal/audio"
	"github.com/vovakirdan/tui-centipede/internal/config"
	"github.com/vovakirdan/tui-centipede/internal/core"
	"github.com/vovakirdan/tui-centipede/internal/games/centipede/sim"
)

// Game identifiers.
const (
	ID    = "centipede"
	Title = "Centipede"
)

// Game owns one World and everything attached to it for a single player.
type Game struct {
	cfg    config.CentipedeConfig
	maps   sim.MapProvider
	sink   audio.Sink
	logger *log.Logger

	world  *sim.World
	paused bool
	err    error // last map error, shown while halted
}

// New creates a game reading levels from maps. A nil sink or logger
// disables sound or logging.
func New(cfg config.CentipedeConfig, maps sim.MapProvider, sink audio.Sink, logger *log.Logger) *Game {
	if sink == nil {
		sink = audio.Nop{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		cfg:    cfg,
		maps:   maps,
		sink:   sink,
		logger: logger,
	}
}

// ID returns the storage and CLI identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return Title }

// Reset builds a fresh world and loads the next map of the sequence.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.world = sim.NewWorld(g.cfg.Sim(rc.Seed), g.maps)
	g.paused = false
	g.err = g.world.Start()
	if g.err != nil {
		g.logger.Warn("no map available", "error", g.err)
	}
	g.drain(nil)
}

// Step advances the world by elapsed wall time. Frame times above the
// configured maximum are clamped so a stalled terminal does not teleport
// creatures through walls.
func (g *Game) Step(in core.InputFrame, elapsed time.Duration) core.StepResult {
	if g.world == nil {
		return core.StepResult{State: g.State()}
	}

	before := g.world.Stats()
	level := g.levelName()

	if in.Has(core.ActionPause) && !g.world.Halted() {
		g.paused = !g.paused
	}
	if in.Has(core.ActionRestart) {
		g.paused = false
		if err := g.world.Restart(); err != nil {
			g.err = err
			g.logger.Warn("restart failed", "map", level, "error", err)
		}
	}

	if !g.paused {
		g.world.Step(Input(in), g.frameMS(elapsed))
	}

	res := core.StepResult{}
	g.drain(func(ev sim.Event) {
		if ev.Kind == sim.EventLevelReset {
			res.Ended = &core.RunSummary{
				Level:      level,
				Score:      ev.Score,
				Waves:      before.Waves,
				Deaths:     before.Deaths,
				DurationMS: before.ElapsedMS,
			}
		}
	})
	if g.world.Halted() && g.err == nil {
		g.err = sim.ErrNoMap
		g.logger.Warn("world halted", "map", level)
	}

	res.State = g.State()
	return res
}

// Finish summarizes the run in progress, for recording on quit.
// It returns nil when nothing was played.
func (g *Game) Finish() *core.RunSummary {
	if g.world == nil || g.world.Halted() {
		return nil
	}
	st := g.world.Stats()
	if st.Frames == 0 {
		return nil
	}
	return &core.RunSummary{
		Level:      g.levelName(),
		Score:      g.world.Score(),
		Waves:      st.Waves,
		Deaths:     st.Deaths,
		DurationMS: st.ElapsedMS,
	}
}

// State reports score and status to the platform.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{GameOver: true}
	}
	return core.GameState{
		Score:    g.world.Score(),
		GameOver: g.world.Halted(),
		Paused:   g.paused,
		Level:    g.levelName(),
	}
}

// World exposes the simulation, mainly for tests.
func (g *Game) World() *sim.World { return g.world }

// Input converts platform actions into a simulation command.
func Input(in core.InputFrame) sim.Input {
	return sim.Input{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Up:    in.Has(core.ActionUp),
		Down:  in.Has(core.ActionDown),
		Fire:  in.Has(core.ActionFire),
	}
}

func (g *Game) frameMS(elapsed time.Duration) float64 {
	ms := float64(elapsed) / float64(time.Millisecond)
	if limit := g.cfg.World.MaxFrameMS; limit > 0 {
		return core.ClampF(ms, 0, limit)
	}
	return math.Max(ms, 0)
}

func (g *Game) levelName() string {
	if g.world == nil || g.world.Level() == nil {
		return ""
	}
	return g.world.Level().Name
}

// drain forwards pending world events to the sound sink and the log.
func (g *Game) drain(fn func(sim.Event)) {
	for _, ev := range g.world.Events() {
		if cue, ok := cueFor(ev.Kind); ok {
			g.sink.Play(cue)
		}
		switch ev.Kind {
		case sim.EventLevelLoaded:
			g.err = nil
			g.logger.Info("map loaded", "map", g.levelName(), "index", g.world.Level().Index)
		case sim.EventGoalReached:
			g.logger.Info("goal reached", "next", g.levelName(), "score", ev.Score)
		case sim.EventLevelReset:
			g.err = nil
			g.logger.Info("level reset", "map", g.levelName(), "score", ev.Score)
		case sim.EventWaveCleared:
			g.logger.Debug("wave cleared", "score", ev.Score, "waves", g.world.Stats().Waves)
		case sim.EventPlayerDown:
			g.logger.Debug("player down", "score", ev.Score)
		case sim.EventSpiderSpawned:
			g.logger.Debug("spider spawned", "x", ev.X, "y", ev.Y)
		}
		if fn != nil {
			fn(ev)
		}
	}
}

func cueFor(k sim.EventKind) (audio.Cue, bool) {
	switch k {
	case sim.EventShoot:
		return audio.CueShoot, true
	case sim.EventHit:
		return audio.CueHit, true
	case sim.EventKill:
		return audio.CueKill, true
	case sim.EventPlayerHit:
		return audio.CuePlayerHit, true
	case sim.EventWaveCleared:
		return audio.CueWave, true
	case sim.EventLevelReset:
		return audio.CueReset, true
	case sim.EventGoalReached:
		return audio.CueGoal, true
	}
	return 0, false
}
