// internal/player/state.go
package player

// State represents the playback state machine.
//
//	┌──────────┐      play       ┌──────────┐
//	│  Stopped │ ───────────────▶│  Playing │
//	└──────────┘                 └──────────┘
//	     ▲                            │
//	     └────────────────────────────┘
//	        stop, end of file, ctx done
//
// Stop on a stopped player is a no-op. Play on a playing player stops the
// current file first.
type State int

const (
	Stopped State = iota
	Playing
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a file is being played.
func (s State) IsActive() bool {
	return s == Playing
}
