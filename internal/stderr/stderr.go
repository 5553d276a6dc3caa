//go:build !windows

// Package stderr captures output that C audio backends (ALSA via oto)
// write straight to file descriptor 2, bypassing Go's os.Stderr, and
// forwards it line by line to a handler so it lands in the log instead of
// the middle of the console output.
package stderr

import (
	"bufio"
	"io"
	"os"
	"strings"
	"sync"
	"syscall"
)

var (
	mu         sync.Mutex
	origStderr = -1
	pipeRead   *os.File
	pipeWrite  *os.File
	forwarded  chan struct{}
)

// Start redirects fd 2 into a pipe and calls handle for every non-empty
// line written to it. Must be called before the speaker is initialized.
// If capture cannot be set up the error is returned and stderr is left
// untouched.
func Start(handle func(line string)) error {
	mu.Lock()
	defer mu.Unlock()

	if pipeRead != nil {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	orig, err := syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	if err := dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(orig)
		r.Close()
		w.Close()
		return err
	}

	origStderr = orig
	pipeRead = r
	pipeWrite = w
	forwarded = make(chan struct{})

	go forward(r, handle, forwarded)

	return nil
}

func forward(r *os.File, handle func(string), done chan<- struct{}) {
	defer close(done)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			handle(line)
		}
	}
}

type originalWriter struct{}

func (originalWriter) Write(p []byte) (int, error) {
	mu.Lock()
	defer mu.Unlock()
	if origStderr < 0 {
		return os.Stderr.Write(p)
	}
	return syscall.Write(origStderr, p)
}

// Original returns a writer to the stderr that was in place before Start.
// It falls back to os.Stderr when capture is not active.
func Original() io.Writer {
	return originalWriter{}
}

// Stop restores the original stderr and waits for pending lines to be
// handled.
func Stop() {
	mu.Lock()
	if pipeRead == nil {
		mu.Unlock()
		return
	}

	_ = dup2(origStderr, int(os.Stderr.Fd()))
	_ = syscall.Close(origStderr)
	origStderr = -1

	// fd 2 no longer refers to the pipe; closing our end delivers EOF.
	pipeWrite.Close()
	done := forwarded
	r := pipeRead
	pipeRead, pipeWrite, forwarded = nil, nil, nil
	mu.Unlock()

	<-done
	r.Close()
}
