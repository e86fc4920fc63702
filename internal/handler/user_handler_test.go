package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "book-reader-server/pkg/errors"
)

func TestCreateUser_Success(t *testing.T) {
	service := &MockUserService{Confirmation: "Succesfully added a@b.com to db."}
	h := NewUserHandler(service, NewMockHandlerLogger())

	req := httptest.NewRequest(http.MethodPost, "/users?id=u1&email=a@b.com", nil)
	rr := httptest.NewRecorder()

	h.CreateUser(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if service.LastID != "u1" || service.LastEmail != "a@b.com" {
		t.Fatalf("service called with id=%s email=%s", service.LastID, service.LastEmail)
	}

	var body struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Content != "Succesfully added a@b.com to db." {
		t.Fatalf("unexpected content: %q", body.Content)
	}
}

func TestCreateUser_DownstreamError(t *testing.T) {
	service := &MockUserService{Err: apperrors.NewDownstreamError("Failed to add user a@b.com to db.", nil)}
	h := NewUserHandler(service, NewMockHandlerLogger())

	req := httptest.NewRequest(http.MethodPost, "/users?id=u1&email=a@b.com", nil)
	rr := httptest.NewRecorder()

	h.CreateUser(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Failed to add user a@b.com to db.") {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestCreateUser_MissingParams(t *testing.T) {
	service := &MockUserService{Err: apperrors.NewValidationError("id and email are required")}
	h := NewUserHandler(service, NewMockHandlerLogger())

	req := httptest.NewRequest(http.MethodPost, "/users", nil)
	rr := httptest.NewRecorder()

	h.CreateUser(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestUserExists_True(t *testing.T) {
	service := &MockUserService{ExistsResult: true}
	h := NewUserHandler(service, NewMockHandlerLogger())

	req := httptest.NewRequest(http.MethodPost, "/user-exists?id=u1", nil)
	rr := httptest.NewRecorder()

	h.UserExists(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var body struct {
		Content bool `json:"content"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !body.Content {
		t.Fatalf("expected content true")
	}
}

func TestUserExists_False(t *testing.T) {
	service := &MockUserService{ExistsResult: false}
	h := NewUserHandler(service, NewMockHandlerLogger())

	req := httptest.NewRequest(http.MethodPost, "/user-exists?id=never-seen", nil)
	rr := httptest.NewRecorder()

	h.UserExists(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"content":false`) {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}
