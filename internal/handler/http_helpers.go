package handler

import (
	"encoding/json"
	"net/http"

	apperrors "book-reader-server/pkg/errors"
)

// contentResponse is the success envelope every endpoint returns.
type contentResponse struct {
	Content interface{} `json:"content"`
}

// errorResponse is the failure envelope every endpoint returns.
type errorResponse struct {
	Error string `json:"error"`
}

// writeContent writes a success response wrapping v in the content envelope.
func writeContent(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(contentResponse{Content: v})
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message})
}

// writeAppError maps a service error onto its status code and client-safe
// message. Underlying causes stay server-side.
func writeAppError(w http.ResponseWriter, err error) {
	writeError(w, apperrors.GetStatusCode(err), apperrors.GetMessage(err))
}
