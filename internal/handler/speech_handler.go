package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"book-reader-server/internal/domain"
)

// SpeechHandler relays synthesized audio from the voice API to the client.
type SpeechHandler struct {
	speechService domain.SpeechService
	logger        domain.Logger
}

// NewSpeechHandler creates a new speech handler
func NewSpeechHandler(speechService domain.SpeechService, logger domain.Logger) *SpeechHandler {
	return &SpeechHandler{
		speechService: speechService,
		logger:        logger,
	}
}

type speechRequest struct {
	Text string `json:"text"`
}

// TextToSpeech handles POST /text-to-speech. Upstream bytes are forwarded as
// they arrive; the whole payload is never buffered. The upstream request
// carries the client's request context, so a disconnect cancels the transfer.
func (h *SpeechHandler) TextToSpeech(w http.ResponseWriter, r *http.Request) {
	var req speechRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	stream, err := h.speechService.Synthesize(r.Context(), req.Text)
	if err != nil {
		h.logger.Error("Failed to synthesize speech", err, "chars", len(req.Text))
		writeAppError(w, err)
		return
	}
	defer stream.Body.Close()

	w.Header().Set("Content-Type", stream.ContentType)
	w.Header().Set("Transfer-Encoding", "chunked")
	w.WriteHeader(http.StatusOK)

	flusher, _ := w.(http.Flusher)
	buf := make([]byte, 32*1024)
	for {
		n, readErr := stream.Body.Read(buf)
		if n > 0 {
			if _, writeErr := w.Write(buf[:n]); writeErr != nil {
				// Client went away; the context cancellation tears down the
				// upstream transfer via the deferred close.
				h.logger.Debug("Client disconnected during audio relay")
				return
			}
			if flusher != nil {
				flusher.Flush()
			}
		}
		if readErr == io.EOF {
			return
		}
		if readErr != nil {
			// Headers are already sent; nothing left to do but close the
			// connection without attempting an error body.
			h.logger.Error("Upstream audio stream terminated", readErr)
			return
		}
	}
}
