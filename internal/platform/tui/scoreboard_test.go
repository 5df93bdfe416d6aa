package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-centipede/internal/storage"
)

func TestScoreboardTabs(t *testing.T) {
	store := openStore(t)
	for _, r := range []storage.Run{
		{Map: "Meadow", Score: 50, Reason: storage.EndReset},
		{Map: "Garden", Score: 90, Reason: storage.EndQuit},
		{Map: "Meadow", Score: 70, Reason: storage.EndReset},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() error = %v", err)
		}
	}

	m := NewScoreboardModel(store, "Meadow", 80, 30)
	if m.Selected() != "Meadow" {
		t.Fatalf("Selected() = %q, expected Meadow", m.Selected())
	}
	if len(m.runs) != 2 || m.runs[0].Score != 70 {
		t.Errorf("runs = %+v, expected Meadow runs best first", m.runs)
	}

	// Cycle back to the all-maps tab.
	for m.Selected() != "" {
		m, _ = m.Update(keyMsg("l"))
	}
	if len(m.runs) != 3 {
		t.Errorf("all maps runs = %d, expected 3", len(m.runs))
	}
	if !strings.Contains(m.View(), "All maps") {
		t.Error("view should name the all-maps tab")
	}

	m, _ = m.Update(keyMsg("esc"))
	if !m.Closed() {
		t.Error("esc should close the scoreboard")
	}
}

func TestScoreboardCurrentMapWithoutRuns(t *testing.T) {
	m := NewScoreboardModel(openStore(t), "Crossroads", 80, 30)
	if m.Selected() != "Crossroads" {
		t.Errorf("Selected() = %q, expected Crossroads", m.Selected())
	}
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("expected the empty message")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "", 80, 30)
	if !strings.Contains(m.View(), "unavailable") {
		t.Error("expected the unavailable message")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{65 * time.Second, "1:05"},
		{10*time.Minute + 500*time.Millisecond, "10:01"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, expected %q", tt.d, got, tt.want)
		}
	}
}
