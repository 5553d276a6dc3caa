// internal/player/interface.go
package player

import (
	"context"
	"time"
)

// Interface defines the player contract for dependency injection and testing.
type Interface interface {
	// Play blocks until the file has been played to its end, Stop is
	// called, or ctx is done, and returns the elapsed playback time.
	Play(ctx context.Context, path string) (time.Duration, error)
	Stop()
	State() State
}

// Verify Player implements Interface at compile time.
var _ Interface = (*Player)(nil)
