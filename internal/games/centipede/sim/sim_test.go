package sim

import "testing"

type stubMaps struct {
	build   func() *Level
	err     error
	loads   int
	reloads int
}

func (s *stubMaps) LoadNext() (*Level, error) {
	s.loads++
	if s.err != nil {
		return nil, s.err
	}
	return s.build(), nil
}

func (s *stubMaps) Reload() (*Level, error) {
	s.reloads++
	if s.err != nil {
		return nil, s.err
	}
	return s.build(), nil
}

func openLevel(w, h int) func() *Level {
	return func() *Level {
		return &Level{Name: "test", Index: 1, Grid: NewTileGrid(w, h, 64)}
	}
}

// testConfig disables random mushrooms so scenarios control the population.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Spawn.Rate = 0
	cfg.Seed = 42
	return cfg
}

func startWorld(t *testing.T, cfg Config, build func() *Level) (*World, *stubMaps) {
	t.Helper()
	maps := &stubMaps{build: build}
	w := NewWorld(cfg, maps)
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	w.Events()
	return w, maps
}

func contains(cs []*Creature, c *Creature) bool {
	for _, it := range cs {
		if it == c {
			return true
		}
	}
	return false
}
