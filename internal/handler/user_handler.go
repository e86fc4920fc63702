// Package handler provides HTTP handlers for the API.
package handler

import (
	"net/http"

	"book-reader-server/internal/domain"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService domain.UserService
	logger      domain.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService domain.UserService, logger domain.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// CreateUser handles POST /users. Identity comes from query parameters
// because the browser's auth provider already resolved it.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	email := r.URL.Query().Get("email")

	confirmation, err := h.userService.Register(r.Context(), id, email)
	if err != nil {
		h.logger.Error("Failed to create user", err, "id", id)
		writeAppError(w, err)
		return
	}

	writeContent(w, http.StatusOK, confirmation)
}

// UserExists handles POST /user-exists. Returns presence only, never the row.
func (h *UserHandler) UserExists(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")

	exists, err := h.userService.Exists(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to look up user", err, "id", id)
		writeAppError(w, err)
		return
	}

	writeContent(w, http.StatusOK, exists)
}
