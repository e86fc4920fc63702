package client

import (
	"context"
	"errors"
	"io"
	"sync"

	"book-reader-server/internal/domain"
)

// PlayerState models the audio element lifecycle explicitly instead of ad hoc
// flags.
type PlayerState int

const (
	PlayerIdle PlayerState = iota
	PlayerLoading
	PlayerPlaying
	PlayerStopped
	PlayerErrored
)

// String returns a readable state name
func (s PlayerState) String() string {
	switch s {
	case PlayerIdle:
		return "idle"
	case PlayerLoading:
		return "loading"
	case PlayerPlaying:
		return "playing"
	case PlayerStopped:
		return "stopped"
	case PlayerErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// ErrPlayerClosed is returned by Play after Close.
var ErrPlayerClosed = errors.New("player is closed")

// AudioSink consumes audio bytes as they arrive, e.g. an audio element or a
// file. Writes happen in stream order.
type AudioSink interface {
	io.Writer
}

// synthesizer is the slice of the API client the player needs.
type synthesizer interface {
	TextToSpeech(ctx context.Context, text string) (io.ReadCloser, string, error)
}

// Player streams synthesized audio for page text into an AudioSink. Only one
// stream is active at a time: a play request while synthesis is in flight is
// ignored, a request during playback supersedes the playing stream.
type Player struct {
	api    synthesizer
	sink   AudioSink
	logger domain.Logger

	mu       sync.Mutex
	state    PlayerState
	position int64
	cancel   context.CancelFunc
	// generation ties async transitions to the request that caused them, so a
	// superseded or stopped stream cannot clobber newer state.
	generation uint64
	closed     bool
}

// NewPlayer creates a new idle player
func NewPlayer(api synthesizer, sink AudioSink, logger domain.Logger) *Player {
	return &Player{
		api:    api,
		sink:   sink,
		logger: logger,
		state:  PlayerIdle,
	}
}

// Play synthesizes the text and streams the audio into the sink, blocking
// until playback finishes, is stopped, or fails. A call while a request is
// already in flight returns immediately without starting another one.
func (p *Player) Play(ctx context.Context, text string) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrPlayerClosed
	}
	if p.state == PlayerLoading {
		p.mu.Unlock()
		p.logger.Debug("Play ignored; synthesis already in flight")
		return nil
	}
	// Supersede whatever is currently playing.
	if p.cancel != nil {
		p.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.generation++
	gen := p.generation
	p.state = PlayerLoading
	p.position = 0
	p.mu.Unlock()

	defer cancel()

	body, _, err := p.api.TextToSpeech(ctx, text)
	if err != nil {
		if ctx.Err() != nil {
			// Stopped or superseded while waiting; not an error state.
			return nil
		}
		p.logger.Error("Synthesis request failed", err)
		p.transition(gen, PlayerErrored)
		return err
	}
	defer body.Close()

	p.transition(gen, PlayerPlaying)

	buf := make([]byte, 4096)
	for {
		n, readErr := body.Read(buf)
		if n > 0 {
			if _, writeErr := p.sink.Write(buf[:n]); writeErr != nil {
				p.logger.Error("Audio sink rejected data", writeErr)
				p.transition(gen, PlayerErrored)
				return writeErr
			}
			p.advance(gen, int64(n))
		}
		if readErr == io.EOF {
			p.transition(gen, PlayerIdle)
			return nil
		}
		if readErr != nil {
			if ctx.Err() != nil {
				return nil
			}
			p.logger.Error("Audio stream terminated", readErr)
			p.transition(gen, PlayerErrored)
			return readErr
		}
	}
}

// Stop halts playback and resets position to the start.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.generation++
	p.position = 0
	if !p.closed {
		p.state = PlayerStopped
	}
}

// Close cancels any in-flight synthesis and suppresses all further state
// updates; called on navigation-away or component teardown.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.generation++
	p.closed = true
	p.state = PlayerIdle
	p.position = 0
}

// State returns the current player state
func (p *Player) State() PlayerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Position returns the number of audio bytes delivered for the active stream.
func (p *Player) Position() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.position
}

func (p *Player) transition(gen uint64, state PlayerState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || p.generation != gen {
		return
	}
	p.state = state
}

func (p *Player) advance(gen uint64, n int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || p.generation != gen {
		return
	}
	p.position += n
}
