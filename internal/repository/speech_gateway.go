package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"book-reader-server/internal/domain"
)

// HTTPSpeechGateway implements domain.SpeechGateway against the external
// voice-synthesis API. The response body is handed back unread so the caller
// can relay bytes as they arrive.
type HTTPSpeechGateway struct {
	endpoint     string
	apiKey       string
	userID       string
	voice        string
	outputFormat string
	httpClient   *http.Client
	logger       domain.Logger
}

type synthesizeRequest struct {
	Text         string `json:"text"`
	Voice        string `json:"voice"`
	OutputFormat string `json:"outputFormat"`
}

// NewSpeechGateway creates a new speech gateway
func NewSpeechGateway(cfg domain.Config, logger domain.Logger) domain.SpeechGateway {
	return &HTTPSpeechGateway{
		endpoint:     cfg.GetSpeechURL(),
		apiKey:       cfg.GetSpeechKey(),
		userID:       cfg.GetSpeechUserID(),
		voice:        cfg.GetSpeechVoice(),
		outputFormat: cfg.GetSpeechOutputFormat(),
		// The timeout bounds the wait for response headers only; reading the
		// audio body is bounded by the request context instead, so long
		// streams are not cut off mid-play.
		httpClient: &http.Client{
			Transport: &http.Transport{
				ResponseHeaderTimeout: cfg.GetSpeechTimeout(),
			},
		},
		logger: logger,
	}
}

// Synthesize requests audio for the given text and returns the unread
// response stream. Cancelling ctx aborts the upstream transfer.
func (g *HTTPSpeechGateway) Synthesize(ctx context.Context, text string) (*domain.SpeechStream, error) {
	payload, err := json.Marshal(synthesizeRequest{
		Text:         text,
		Voice:        g.voice,
		OutputFormat: g.outputFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode synthesis request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build synthesis request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	if g.userID != "" {
		req.Header.Set("X-User-Id", g.userID)
	}

	start := time.Now()
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("synthesis request failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		g.logger.Error("Synthesis upstream returned non-2xx", fmt.Errorf("status %d", resp.StatusCode),
			"status", resp.StatusCode,
			"body", string(body),
		)
		return nil, fmt.Errorf("synthesis upstream returned status %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "audio/mpeg"
	}

	g.logger.Debug("Synthesis stream opened",
		"chars", len(text),
		"first_headers_ms", time.Since(start).Milliseconds(),
	)

	return &domain.SpeechStream{
		Body:        resp.Body,
		ContentType: contentType,
	}, nil
}
