// Preview prints the order a shuffled pass would play, without audio.
//
//	preview -dir ~/Music -seed 42 -n 20
//	preview -playlist party.txt -passes 2
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/rs/zerolog"

	"github.com/llehouerou/shuffler/internal/library"
	"github.com/llehouerou/shuffler/internal/playlist"
)

type options struct {
	dir      string
	list     string
	seed     uint64
	limit    int
	passes   int
	original bool
}

func main() {
	var opts options
	flag.StringVar(&opts.dir, "dir", ".", "music directory to scan")
	flag.StringVar(&opts.list, "playlist", "", "line-delimited playlist file (overrides -dir)")
	flag.Uint64Var(&opts.seed, "seed", 0, "shuffle seed (0 picks a random one)")
	flag.IntVar(&opts.limit, "n", 0, "print at most n items per pass (0 for all)")
	flag.IntVar(&opts.passes, "passes", 1, "number of passes to preview")
	flag.BoolVar(&opts.original, "original", false, "do not shuffle")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	order, err := open(opts)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load playlist")
	}
	if order == nil {
		logger.Fatal().Msg("no music found")
	}

	if opts.seed == 0 {
		opts.seed = rand.Uint64()
	}
	logger.Info().Int("items", order.Len()).Uint64("seed", opts.seed).Msg("previewing")

	rng := rand.New(rand.NewPCG(opts.seed, opts.seed)) //nolint:gosec // reproducible preview
	preview(os.Stdout, order, rng, opts)
}

func open(opts options) (*playlist.Order, error) {
	if opts.list != "" {
		return playlist.Load(opts.list)
	}
	return playlist.FromDirectory(opts.dir, library.ScanOptions{})
}

// preview writes each pass as numbered lines, reshuffling between passes
// the same way the player does.
func preview(w io.Writer, order *playlist.Order, rng playlist.Rand, opts options) {
	for pass := 1; pass <= opts.passes; pass++ {
		if !opts.original {
			order.Shuffle(rng)
		}
		fmt.Fprintf(w, "# pass %d\n", pass)
		n := 0
		for item, ok := order.First(), true; ok; item, ok = order.Next() {
			n++
			if opts.limit > 0 && n > opts.limit {
				break
			}
			fmt.Fprintf(w, "%3d  %s\n", n, item)
		}
		// Leave the cursor unset so the next shuffle starts a fresh pass.
		order.Last()
		order.Next()
	}
}
