package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClientCreateUser(t *testing.T) {
	var gotKey, gotID, gotEmail string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		gotKey = r.Header.Get("X-API-KEY")
		gotID = r.URL.Query().Get("id")
		gotEmail = r.URL.Query().Get("email")
		json.NewEncoder(w).Encode(map[string]string{"content": "Succesfully added a@b.com to db."})
	}))
	defer server.Close()

	c := NewClient(server.URL, "secret", NewMockClientLogger())

	confirmation, err := c.CreateUser(context.Background(), "u1", "a@b.com")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if confirmation != "Succesfully added a@b.com to db." {
		t.Fatalf("unexpected confirmation: %q", confirmation)
	}
	if gotKey != "secret" {
		t.Fatalf("expected shared secret header, got %q", gotKey)
	}
	if gotID != "u1" || gotEmail != "a@b.com" {
		t.Fatalf("unexpected query params: id=%q email=%q", gotID, gotEmail)
	}
}

func TestClientUserExists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]bool{"content": true})
	}))
	defer server.Close()

	c := NewClient(server.URL, "secret", NewMockClientLogger())

	exists, err := c.UserExists(context.Background(), "u1")
	if err != nil {
		t.Fatalf("UserExists: %v", err)
	}
	if !exists {
		t.Fatalf("expected user to exist")
	}
}

func TestClientUploadPDFSendsMultipartField(t *testing.T) {
	var gotField, gotFilename, gotBody string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm: %v", err)
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		file, header, err := r.FormFile("pdf")
		if err != nil {
			t.Errorf("FormFile: %v", err)
			http.Error(w, "missing field", http.StatusBadRequest)
			return
		}
		defer file.Close()
		gotField = "pdf"
		gotFilename = header.Filename
		data, _ := io.ReadAll(file)
		gotBody = string(data)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"content": map[string]string{"url": "https://cdn/abc-book.pdf", "key": "abc-book.pdf"},
		})
	}))
	defer server.Close()

	c := NewClient(server.URL, "secret", NewMockClientLogger())

	object, err := c.UploadPDF(context.Background(), "book.pdf", strings.NewReader("%PDF-1.4"))
	if err != nil {
		t.Fatalf("UploadPDF: %v", err)
	}
	if gotField != "pdf" || gotFilename != "book.pdf" || gotBody != "%PDF-1.4" {
		t.Fatalf("unexpected form part: field=%q filename=%q body=%q", gotField, gotFilename, gotBody)
	}
	if object.Key != "abc-book.pdf" || object.URL != "https://cdn/abc-book.pdf" {
		t.Fatalf("unexpected object: %+v", object)
	}
}

func TestClientListPDFs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		json.NewDecoder(r.Body).Decode(&payload)
		if payload["userId"] != "u1" {
			t.Errorf("unexpected payload: %+v", payload)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"content": []map[string]interface{}{
				{"key": "k1", "name": "a.pdf", "url": "https://cdn/k1", "text": []string{"one", "two"}},
			},
		})
	}))
	defer server.Close()

	c := NewClient(server.URL, "secret", NewMockClientLogger())

	documents, err := c.ListPDFs(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListPDFs: %v", err)
	}
	if len(documents) != 1 || documents[0].Key != "k1" || len(documents[0].Pages) != 2 {
		t.Fatalf("unexpected documents: %+v", documents)
	}
}

func TestClientDecodesErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Failed to delete pdf from storage."})
	}))
	defer server.Close()

	c := NewClient(server.URL, "secret", NewMockClientLogger())

	err := c.DeletePDF(context.Background(), "k1")
	if err == nil {
		t.Fatalf("expected delete to fail")
	}
	if !strings.Contains(err.Error(), "Failed to delete pdf from storage.") {
		t.Fatalf("expected backend message in error, got %v", err)
	}
}

func TestClientTextToSpeech(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		json.NewDecoder(r.Body).Decode(&payload)
		if payload["text"] != "page one" {
			t.Errorf("unexpected payload: %+v", payload)
		}
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("audio"))
	}))
	defer server.Close()

	c := NewClient(server.URL, "secret", NewMockClientLogger())

	body, contentType, err := c.TextToSpeech(context.Background(), "page one")
	if err != nil {
		t.Fatalf("TextToSpeech: %v", err)
	}
	defer body.Close()

	if contentType != "audio/mpeg" {
		t.Fatalf("unexpected content type: %s", contentType)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("failed to read stream: %v", err)
	}
	if string(data) != "audio" {
		t.Fatalf("unexpected audio: %q", data)
	}
}

func TestClientFetchBinary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("%PDF-1.4"))
	}))
	defer server.Close()

	c := NewClient(server.URL, "secret", NewMockClientLogger())

	data, err := c.FetchBinary(context.Background(), server.URL+"/pdfs/k1")
	if err != nil {
		t.Fatalf("FetchBinary: %v", err)
	}
	if string(data) != "%PDF-1.4" {
		t.Fatalf("unexpected bytes: %q", data)
	}
}
