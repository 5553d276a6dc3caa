package main

import (
	"bytes"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/shuffler/internal/playlist"
)

func TestPreview_Original(t *testing.T) {
	order := playlist.New([]string{"a", "b", "c"})
	var buf bytes.Buffer

	preview(&buf, order, nil, options{passes: 2, original: true})

	assert.Equal(t, "# pass 1\n  1  a\n  2  b\n  3  c\n# pass 2\n  1  a\n  2  b\n  3  c\n", buf.String())
}

func TestPreview_Limit(t *testing.T) {
	order := playlist.New([]string{"a", "b", "c"})
	var buf bytes.Buffer

	preview(&buf, order, nil, options{passes: 1, limit: 2, original: true})

	assert.Equal(t, "# pass 1\n  1  a\n  2  b\n", buf.String())
}

func TestPreview_ShuffleMatchesOrder(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	var buf bytes.Buffer

	preview(&buf, playlist.New(items), rand.New(rand.NewPCG(9, 9)), options{passes: 1}) //nolint:gosec // deterministic test source

	ref := playlist.New(items)
	ref.Shuffle(rand.New(rand.NewPCG(9, 9))) //nolint:gosec // deterministic test source
	var want bytes.Buffer
	want.WriteString("# pass 1\n")
	for i, song := range ref.PlayOrder() {
		want.WriteString("  " + string(rune('1'+i)) + "  " + items[song] + "\n")
	}
	require.Equal(t, want.String(), buf.String())
}
