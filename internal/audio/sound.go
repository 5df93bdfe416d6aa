// Package audio plays short synthesized cues for game events through the
// local speaker. Sound is optional: every call is safe when the speaker
// could not be initialized.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Cue names a sound effect.
type Cue uint8

const (
	CueShoot Cue = iota
	CueHit
	CueKill
	CuePlayerHit
	CueWave
	CueReset
	CueGoal
	cueCount
)

// Sink receives cues. Implementations must not block.
type Sink interface {
	Play(c Cue)
}

// Nop is a Sink that discards every cue.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Cue) {}

// cueSpec describes the sound of one cue.
type cueSpec struct {
	from, to float64 // Hz, swept linearly over the duration
	duration time.Duration
	decay    float64 // envelope falloff per second
	noise    float64 // 0..1 share of white noise
}

var cues = [cueCount]cueSpec{
	CueShoot:     {from: 1320, to: 880, duration: 60 * time.Millisecond, decay: 30},
	CueHit:       {from: 300, to: 180, duration: 80 * time.Millisecond, decay: 20, noise: 0.3},
	CueKill:      {from: 160, to: 60, duration: 250 * time.Millisecond, decay: 10, noise: 0.6},
	CuePlayerHit: {from: 440, to: 70, duration: 450 * time.Millisecond, decay: 4},
	CueWave:      {from: 440, to: 1760, duration: 300 * time.Millisecond, decay: 3},
	CueReset:     {from: 220, to: 40, duration: 800 * time.Millisecond, decay: 2, noise: 0.2},
	CueGoal:      {from: 523, to: 2093, duration: 600 * time.Millisecond, decay: 1.5},
}

// SoundManager mixes cues into a single speaker stream.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64 // 0..1
	initialized bool
}

// NewSoundManager creates a sound manager at the given volume (0..1).
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: math.Max(0, math.Min(1, volume)),
	}
}

// Initialize opens the speaker. Calling it twice is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything still playing.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play queues a cue. It returns immediately.
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || c >= cueCount {
		return
	}

	speaker.Lock()
	sm.mixer.Add(sm.stream(c))
	speaker.Unlock()
}

func (sm *SoundManager) stream(c Cue) beep.Streamer {
	spec := cues[c]
	s := beep.Take(sampleRate.N(spec.duration), NewToneGenerator(sampleRate, spec))
	return withVolume(s, sm.volume)
}

// withVolume scales s; a zero volume mutes it.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// ToneGenerator renders one cue: a frequency sweep under an exponential
// envelope, optionally mixed with noise.
type ToneGenerator struct {
	sr    beep.SampleRate
	spec  cueSpec
	pos   int
	total int
	seed  uint32
}

// NewToneGenerator creates a generator for spec.
func NewToneGenerator(sr beep.SampleRate, spec cueSpec) *ToneGenerator {
	total := sr.N(spec.duration)
	if total < 1 {
		total = 1
	}
	return &ToneGenerator{sr: sr, spec: spec, total: total, seed: 0x9e3779b9}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := math.Min(float64(g.pos)/float64(g.total), 1)

		// Integrate the linear sweep so the phase stays continuous
		phase := 2 * math.Pi * (g.spec.from*t + (g.spec.to-g.spec.from)*progress*t/2)
		tone := math.Sin(phase)

		// xorshift noise
		g.seed ^= g.seed << 13
		g.seed ^= g.seed >> 17
		g.seed ^= g.seed << 5
		noise := float64(g.seed)/float64(math.MaxUint32)*2 - 1

		envelope := math.Exp(-t * g.spec.decay)
		// Short attack avoids a click at the start
		envelope *= math.Min(t/0.005, 1)

		sample := 0.25 * envelope * ((1-g.spec.noise)*tone + g.spec.noise*noise)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}
