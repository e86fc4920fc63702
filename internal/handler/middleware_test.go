package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAPIKeyMiddleware_MissingHeader(t *testing.T) {
	middleware := APIKeyMiddleware("secret", NewMockHandlerLogger())
	h := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("expected handler not to be called")
	}))

	req := httptest.NewRequest(http.MethodPost, "/users", nil)
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"error":"Unauthorized"`) {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestAPIKeyMiddleware_WrongKey(t *testing.T) {
	middleware := APIKeyMiddleware("secret", NewMockHandlerLogger())
	h := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("expected handler not to be called")
	}))

	req := httptest.NewRequest(http.MethodPost, "/users", nil)
	req.Header.Set("X-API-KEY", "wrong")
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestAPIKeyMiddleware_EmptyConfiguredKeyRejectsEverything(t *testing.T) {
	middleware := APIKeyMiddleware("", NewMockHandlerLogger())
	h := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("expected handler not to be called")
	}))

	req := httptest.NewRequest(http.MethodPost, "/users", nil)
	req.Header.Set("X-API-KEY", "")
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestAPIKeyMiddleware_Success(t *testing.T) {
	called := false
	middleware := APIKeyMiddleware("secret", NewMockHandlerLogger())
	h := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/users", nil)
	req.Header.Set("X-API-KEY", "secret")
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !called {
		t.Fatalf("expected next handler to be called")
	}
}
