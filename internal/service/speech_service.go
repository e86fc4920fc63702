package service

import (
	"context"
	"strings"

	"book-reader-server/internal/domain"
	apperrors "book-reader-server/pkg/errors"
)

// SpeechService implements the domain.SpeechService interface
type SpeechService struct {
	gateway domain.SpeechGateway
	logger  domain.Logger
}

// NewSpeechService creates a new speech service
func NewSpeechService(gateway domain.SpeechGateway, logger domain.Logger) domain.SpeechService {
	return &SpeechService{
		gateway: gateway,
		logger:  logger,
	}
}

// Synthesize rejects empty text before the upstream gateway is contacted,
// otherwise returns the gateway's unread audio stream.
func (s *SpeechService) Synthesize(ctx context.Context, text string) (*domain.SpeechStream, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.NewValidationError("Text is required.")
	}

	stream, err := s.gateway.Synthesize(ctx, text)
	if err != nil {
		return nil, apperrors.NewDownstreamError("Failed to convert text to speech.", err)
	}
	return stream, nil
}
