//go:build windows

// Package stderr is a no-op on Windows, whose audio backends don't write
// to fd 2.
package stderr

import (
	"io"
	"os"
)

// Start is a no-op on Windows.
func Start(func(line string)) error {
	return nil
}

// Original returns os.Stderr.
func Original() io.Writer {
	return os.Stderr
}

// Stop is a no-op on Windows.
func Stop() {}
