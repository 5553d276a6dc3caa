package player

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// output is the audio sink. Production code uses the beep speaker.
type output interface {
	Init(sampleRate beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Clear()
	Lock()
	Unlock()
}

type speakerOutput struct{}

func (speakerOutput) Init(sr beep.SampleRate, bufferSize int) error { return speaker.Init(sr, bufferSize) }
func (speakerOutput) Play(s ...beep.Streamer)                        { speaker.Play(s...) }
func (speakerOutput) Clear()                                         { speaker.Clear() }
func (speakerOutput) Lock()                                          { speaker.Lock() }
func (speakerOutput) Unlock()                                        { speaker.Unlock() }

// Player plays one audio file at a time on the system speaker.
type Player struct {
	mu       sync.Mutex
	out      output
	state    State
	streamer beep.StreamSeekCloser
	format   beep.Format
	file     *os.File
	volume   *effects.Volume
	finish   func() // closes the current track's done channel once

	volumeLevel float64

	speakerReady bool
	speakerRate  beep.SampleRate
}

// New creates a player bound to the system speaker.
func New() *Player {
	return newWithOutput(speakerOutput{})
}

func newWithOutput(out output) *Player {
	return &Player{out: out, state: Stopped, volumeLevel: 1}
}

// Play plays path until it ends, Stop is called, or ctx is done.
// The returned duration is the wall-clock time spent playing.
func (p *Player) Play(ctx context.Context, path string) (time.Duration, error) {
	done, err := p.start(path)
	if err != nil {
		return 0, err
	}
	started := time.Now()

	select {
	case <-done:
		p.Stop()
		return time.Since(started), nil
	case <-ctx.Done():
		p.Stop()
		return time.Since(started), ctx.Err()
	}
}

func (p *Player) start(path string) (<-chan struct{}, error) {
	p.Stop()

	decode, err := decoderFor(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	streamer, format, err := decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.speakerReady {
		p.speakerRate = format.SampleRate
		if err := p.out.Init(p.speakerRate, p.speakerRate.N(time.Second/10)); err != nil {
			streamer.Close()
			f.Close()
			return nil, err
		}
		p.speakerReady = true
	}

	// Resample if the track's sample rate differs from the speaker's
	var playStreamer beep.Streamer = streamer
	if format.SampleRate != p.speakerRate {
		playStreamer = beep.Resample(4, format.SampleRate, p.speakerRate, streamer)
	}

	p.volume = &effects.Volume{Streamer: playStreamer, Base: 2}
	p.applyVolume()

	done := make(chan struct{})
	p.finish = sync.OnceFunc(func() { close(done) })
	p.file = f
	p.streamer = streamer
	p.format = format
	p.state = Playing

	p.out.Play(beep.Seq(p.volume, beep.Callback(p.finish)))

	return done, nil
}

// Stop stops playback and releases the file.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == Stopped {
		return
	}

	p.out.Clear()

	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		p.file.Close()
		p.file = nil
	}
	p.volume = nil
	if p.finish != nil {
		p.finish()
		p.finish = nil
	}
	p.state = Stopped
}

// State returns the current playback state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Position returns the playback position within the current file.
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return 0
	}
	p.out.Lock()
	pos := p.format.SampleRate.D(p.streamer.Position())
	p.out.Unlock()
	return pos
}
