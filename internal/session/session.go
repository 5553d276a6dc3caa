// Package session runs the play loop: it walks a playlist order, hands each
// item to the player and decides what happens at the end of a pass.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/llehouerou/shuffler/internal/player"
	"github.com/llehouerou/shuffler/internal/playlist"
)

// ErrNothingPlayable is returned when every item failed to play since the
// last successful one.
var ErrNothingPlayable = errors.New("no playable item in playlist")

// Options controls pass behavior.
type Options struct {
	Shuffle bool          // reshuffle at the start of each pass
	Repeat  bool          // start a new pass after the last item
	MinRun  time.Duration // plays shorter than this are logged as warnings
}

// Session owns an Order for the duration of Run.
type Session struct {
	order  *playlist.Order
	player player.Interface
	rng    playlist.Rand
	opts   Options
	log    zerolog.Logger
	passes int
}

// New creates a session. rng is only used when opts.Shuffle is set.
func New(order *playlist.Order, p player.Interface, rng playlist.Rand, opts Options, logger zerolog.Logger) *Session {
	return &Session{
		order:  order,
		player: p,
		rng:    rng,
		opts:   opts,
		log:    logger,
	}
}

// Passes returns the number of passes started so far.
func (s *Session) Passes() int {
	return s.passes
}

// Run plays until the playlist ends (without Repeat), ctx is done, or no
// item can be played. Cancellation is not an error.
func (s *Session) Run(ctx context.Context) error {
	if ctx.Err() != nil {
		return nil
	}
	s.startPass()

	failed := make(map[int]struct{})
	for {
		if ctx.Err() != nil {
			return nil
		}

		item, ok := s.order.Current()
		if !ok {
			s.log.Info().Int("pass", s.passes).Msg("end of playlist")
			if !s.opts.Repeat {
				return nil
			}
			s.startPass()
			continue
		}

		pos, _ := s.order.Position()
		song, _ := s.order.SongIndex()
		s.log.Info().
			Str("item", item).
			Int("position", pos+1).
			Int("total", s.order.Len()).
			Msg("playing")

		elapsed, err := s.player.Play(ctx, item)
		switch {
		case ctx.Err() != nil:
			s.log.Info().Str("item", item).Dur("elapsed", elapsed).Msg("playback interrupted")
			return nil
		case err != nil:
			failed[song] = struct{}{}
			s.log.Warn().Err(err).Str("item", item).Msg("skipping unplayable item")
			if len(failed) == s.order.Len() {
				return ErrNothingPlayable
			}
		default:
			clear(failed)
			s.logFinished(item, elapsed)
		}

		s.order.Next()
	}
}

func (s *Session) startPass() {
	s.passes++
	if s.opts.Shuffle {
		s.order.Shuffle(s.rng)
	}
	first := s.order.First()
	s.log.Info().
		Int("pass", s.passes).
		Bool("shuffled", s.opts.Shuffle).
		Str("first", first).
		Msg("starting pass")
	s.log.Debug().Strs("upcoming", s.order.Upcoming(5)).Msg("queued")
}

func (s *Session) logFinished(item string, elapsed time.Duration) {
	if elapsed < s.opts.MinRun {
		s.log.Warn().
			Str("item", item).
			Dur("elapsed", elapsed).
			Dur("min_run", s.opts.MinRun).
			Msg("playback ended early")
		return
	}
	s.log.Debug().Str("item", item).Dur("elapsed", elapsed).Msg("finished")
}
