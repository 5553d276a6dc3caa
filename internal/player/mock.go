// internal/player/mock.go
package player

import (
	"context"
	"sync"
	"time"
)

// Mock is a test double for Player.
type Mock struct {
	mu        sync.Mutex
	state     State
	elapsed   time.Duration
	playErrs  map[string]error
	playCalls []string
	onPlay    func(path string)
	stops     int
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{
		state:    Stopped,
		playErrs: make(map[string]error),
	}
}

func (m *Mock) Play(ctx context.Context, path string) (time.Duration, error) {
	m.mu.Lock()
	m.playCalls = append(m.playCalls, path)
	err := m.playErrs[path]
	elapsed := m.elapsed
	onPlay := m.onPlay
	m.mu.Unlock()

	if onPlay != nil {
		onPlay(path)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return 0, ctxErr
	}
	if err != nil {
		return 0, err
	}
	return elapsed, nil
}

func (m *Mock) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stops++
	m.state = Stopped
}

func (m *Mock) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Test helpers

// SetPlayError makes Play fail with err for path.
func (m *Mock) SetPlayError(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playErrs[path] = err
}

// SetElapsed sets the duration every successful Play reports.
func (m *Mock) SetElapsed(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.elapsed = d
}

// OnPlay registers a hook called at the start of every Play.
func (m *Mock) OnPlay(fn func(path string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onPlay = fn
}

func (m *Mock) PlayCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]string, len(m.playCalls))
	copy(calls, m.playCalls)
	return calls
}

func (m *Mock) Stops() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stops
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
