package handler

import (
	"crypto/subtle"
	"net/http"

	"book-reader-server/internal/domain"
)

// APIKeyMiddleware authorizes every request against the configured shared
// secret. Absence or mismatch means no work is performed at all.
func APIKeyMiddleware(apiKey string, logger domain.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get("X-API-KEY")
			if apiKey == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				logger.Warn("Rejected request with missing or invalid API key",
					"path", r.URL.Path,
					"remote", r.RemoteAddr,
				)
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
