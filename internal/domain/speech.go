package domain

import (
	"context"
	"io"
)

// SpeechStream is an unread synthesized-audio response. The caller owns Body
// and must close it; bytes should be relayed as they arrive, never buffered
// whole.
type SpeechStream struct {
	Body        io.ReadCloser
	ContentType string
}

// SpeechGateway streams synthesized audio for a text string from the external
// voice-synthesis API.
type SpeechGateway interface {
	Synthesize(ctx context.Context, text string) (*SpeechStream, error)
}

// SpeechService defines the use-case operations for speech synthesis.
type SpeechService interface {
	Synthesize(ctx context.Context, text string) (*SpeechStream, error)
}
