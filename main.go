package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/llehouerou/shuffler/internal/config"
	"github.com/llehouerou/shuffler/internal/errmsg"
	"github.com/llehouerou/shuffler/internal/library"
	"github.com/llehouerou/shuffler/internal/logging"
	"github.com/llehouerou/shuffler/internal/player"
	"github.com/llehouerou/shuffler/internal/playlist"
	"github.com/llehouerou/shuffler/internal/session"
	"github.com/llehouerou/shuffler/internal/stderr"
)

const version = "0.3.0"

var errNoMusic = errors.New("no music found")

type flags struct {
	config    string
	dir       string
	playlist  string
	export    string
	noShuffle bool
	once      bool
	debug     bool
	version   bool
}

func parseFlags(fs *flag.FlagSet, args []string) (flags, error) {
	var f flags
	fs.StringVar(&f.config, "config", "", "read configuration from this file only")
	fs.StringVar(&f.dir, "dir", "", "music directory to scan")
	fs.StringVar(&f.playlist, "playlist", "", "line-delimited playlist file to play instead of scanning")
	fs.StringVar(&f.export, "export", "", "write the playlist to this file and exit")
	fs.BoolVar(&f.noShuffle, "no-shuffle", false, "play in original order")
	fs.BoolVar(&f.once, "once", false, "stop at the end of the playlist")
	fs.BoolVar(&f.debug, "debug", false, "enable debug logging")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	err := fs.Parse(args)
	return f, err
}

// apply overrides config values with the flags that were set.
func (f flags) apply(cfg *config.Config) {
	if f.dir != "" {
		cfg.MusicDir = f.dir
		// An explicit directory wins over a configured playlist file.
		cfg.PlaylistFile = ""
	}
	if f.playlist != "" {
		cfg.PlaylistFile = f.playlist
	}
	if f.noShuffle {
		off := false
		cfg.Shuffle = &off
	}
	if f.once {
		off := false
		cfg.Repeat = &off
	}
	if f.debug {
		cfg.Log.Level = "debug"
	}
}

// loadOrder builds the playlist from the configured file or directory.
func loadOrder(cfg *config.Config) (*playlist.Order, errmsg.Op, error) {
	if cfg.PlaylistFile != "" {
		order, err := playlist.Load(cfg.PlaylistFile)
		if err != nil {
			return nil, errmsg.OpPlaylistLoad, err
		}
		if order == nil {
			return nil, errmsg.OpPlaylistLoad, errNoMusic
		}
		return order, "", nil
	}

	order, err := playlist.FromDirectory(cfg.GetMusicDir(), library.ScanOptions{
		Extensions: cfg.GetExtensions(),
		Exclude:    cfg.Exclude,
	})
	if err != nil {
		return nil, errmsg.OpLibraryScan, err
	}
	if order == nil {
		return nil, errmsg.OpLibraryScan, fmt.Errorf("%w in %s", errNoMusic, cfg.GetMusicDir())
	}
	return order, "", nil
}

func run(args []string, console io.Writer) int {
	f, err := parseFlags(flag.NewFlagSet("shuffler", flag.ContinueOnError), args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if f.version {
		fmt.Fprintln(console, "shuffler v"+version)
		return 0
	}

	cfg, err := config.Load(f.config)
	if err != nil {
		fmt.Fprintln(console, errmsg.Format(errmsg.OpConfigLoad, err))
		return 1
	}
	f.apply(cfg)

	logPath, err := cfg.LogPath()
	if err != nil {
		fmt.Fprintln(console, errmsg.Format(errmsg.OpLogInit, err))
		return 1
	}
	logCloser, err := logging.Init(logging.Options{
		File:    logPath,
		Level:   cfg.GetLogLevel(),
		Console: console,
	})
	if err != nil {
		fmt.Fprintln(console, errmsg.Format(errmsg.OpLogInit, err))
		return 1
	}
	defer logCloser.Close()

	order, op, err := loadOrder(cfg)
	if err != nil {
		log.Error().Err(err).Msg(errmsg.Format(op, err))
		return 1
	}
	log.Info().Int("items", order.Len()).Msg("playlist loaded")

	if f.export != "" {
		if err := order.Save(f.export); err != nil {
			log.Error().Err(err).Msg(errmsg.FormatWith(errmsg.OpPlaylistExport, f.export, err))
			return 1
		}
		log.Info().Str("file", f.export).Msg("playlist exported")
		return 0
	}

	if err := stderr.Start(func(line string) {
		log.Warn().Str("source", "stderr").Msg(line)
	}); err != nil {
		log.Debug().Err(err).Msg("stderr capture unavailable")
	}
	defer stderr.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := player.New()
	p.SetVolume(cfg.GetVolume())

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // crypto not needed for music order
	sess := session.New(order, p, rng, session.Options{
		Shuffle: cfg.ShuffleEnabled(),
		Repeat:  cfg.RepeatEnabled(),
		MinRun:  cfg.GetMinRun(),
	}, log.Logger)

	if err := sess.Run(ctx); err != nil {
		log.Error().Err(err).Msg(errmsg.Format(errmsg.OpPlaybackRun, err))
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], stderr.Original()))
}
