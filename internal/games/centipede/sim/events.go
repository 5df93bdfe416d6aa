package sim

// EventKind identifies a notification emitted by the world.
type EventKind uint8

const (
	EventShoot EventKind = iota + 1
	EventHit             // a laser or centipede contact cost something health
	EventKill            // a dead creature was reaped and scored
	EventPlayerHit
	EventPlayerDown // the player entered Dying
	EventWaveCleared
	EventSpiderSpawned
	EventLevelReset
	EventLevelLoaded
	EventGoalReached
)

func (k EventKind) String() string {
	switch k {
	case EventShoot:
		return "shoot"
	case EventHit:
		return "hit"
	case EventKill:
		return "kill"
	case EventPlayerHit:
		return "player_hit"
	case EventPlayerDown:
		return "player_down"
	case EventWaveCleared:
		return "wave_cleared"
	case EventSpiderSpawned:
		return "spider_spawned"
	case EventLevelReset:
		return "level_reset"
	case EventLevelLoaded:
		return "level_loaded"
	case EventGoalReached:
		return "goal_reached"
	default:
		return "unknown"
	}
}

// Event is a fire-and-forget notification for audio and UI.
// Nothing read from an Event flows back into the simulation.
type Event struct {
	Kind    EventKind
	Species Species
	X, Y    float64
	Score   int // score at the time of the event; for EventLevelReset, the score before the reset
}

func (w *World) emit(kind EventKind, s Species, x, y float64) {
	w.events = append(w.events, Event{Kind: kind, Species: s, X: x, Y: y, Score: w.score})
}
