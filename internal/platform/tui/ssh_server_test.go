package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/ssh"
)

func TestResolveHostKey(t *testing.T) {
	dir := t.TempDir()
	want := filepath.Join(dir, "keys", "nested", "host_key")

	got, err := resolveHostKey(want)
	if err != nil {
		t.Fatalf("resolveHostKey() error = %v", err)
	}
	if got != want {
		t.Errorf("path = %q, expected %q", got, want)
	}
	info, err := os.Stat(filepath.Dir(want))
	if err != nil || !info.IsDir() {
		t.Errorf("key directory should exist: %v", err)
	}
}

func TestSessionConfig(t *testing.T) {
	tests := []struct {
		name       string
		win        ssh.Window
		rate       int
		wantW      int
		wantH      int
		wantTicker int
	}{
		{"client size", ssh.Window{Width: 120, Height: 40}, 60, 120, 40, 60},
		{"unknown size", ssh.Window{}, 0, 80, 30, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := sessionConfig(tt.win, tt.rate)
			if cfg.ScreenW != tt.wantW || cfg.ScreenH != tt.wantH {
				t.Errorf("size = %dx%d, expected %dx%d", cfg.ScreenW, cfg.ScreenH, tt.wantW, tt.wantH)
			}
			if cfg.TickRate != tt.wantTicker {
				t.Errorf("TickRate = %d, expected %d", cfg.TickRate, tt.wantTicker)
			}
			if cfg.Seed == 0 {
				t.Error("each session should get its own seed")
			}
		})
	}
}
