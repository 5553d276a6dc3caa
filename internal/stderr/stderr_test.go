//go:build !windows

package stderr

import (
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartStop_ForwardsLines(t *testing.T) {
	var (
		mu    sync.Mutex
		lines []string
	)
	handle := func(line string) {
		mu.Lock()
		defer mu.Unlock()
		lines = append(lines, line)
	}

	require.NoError(t, Start(handle))
	_, err := os.Stderr.WriteString("ALSA lib pcm.c: underrun\n\n   \nsecond line\n")
	require.NoError(t, err)
	Stop()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"ALSA lib pcm.c: underrun", "second line"}, lines)
}

func TestStart_Twice(t *testing.T) {
	calls := 0
	require.NoError(t, Start(func(string) {}))
	require.NoError(t, Start(func(string) { calls++ }))
	Stop()

	assert.Zero(t, calls)
}

func TestStop_WithoutStart(t *testing.T) {
	assert.NotPanics(t, Stop)
}

func TestOriginal_WithoutCapture(t *testing.T) {
	n, err := Original().Write([]byte(""))

	require.NoError(t, err)
	assert.Zero(t, n)
}
