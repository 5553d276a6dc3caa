package playlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// FromText creates an Order from line-delimited text.
// Empty lines are ignored. Returns nil if no lines remain.
func FromText(text string) *Order {
	return New(parseLines(text))
}

func parseLines(text string) []string {
	var items []string
	for line := range strings.Lines(text) {
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			continue
		}
		items = append(items, line)
	}
	return items
}

// Load reads a line-delimited playlist file.
// Returns nil and no error if the file holds no items.
func Load(path string) (*Order, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read playlist: %w", err)
	}
	return FromText(string(data)), nil
}

// WriteTo writes the items in their original sequence, one per line.
func (o *Order) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, item := range o.items {
		written, err := bw.WriteString(item + "\n")
		n += int64(written)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

// Save writes the items to path as line-delimited text.
func (o *Order) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create playlist: %w", err)
	}
	if _, err := o.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write playlist: %w", err)
	}
	return f.Close()
}
