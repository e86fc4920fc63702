package client

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"book-reader-server/internal/domain"
)

// LibraryState tracks the identity/document-list relationship.
type LibraryState int

const (
	StateSignedOut LibraryState = iota
	StateLoading
	StateSignedInEmpty
	StateSignedInPopulated
)

// String returns a readable state name
func (s LibraryState) String() string {
	switch s {
	case StateSignedOut:
		return "signed-out"
	case StateLoading:
		return "loading"
	case StateSignedInEmpty:
		return "signed-in-empty"
	case StateSignedInPopulated:
		return "signed-in-populated"
	default:
		return "unknown"
	}
}

// backendAPI is the slice of the API client the library needs. Narrowed to an
// interface so tests can fake the backend.
type backendAPI interface {
	CreateUser(ctx context.Context, id, email string) (string, error)
	UserExists(ctx context.Context, id string) (bool, error)
	UploadPDF(ctx context.Context, filename string, file io.Reader) (*domain.StoredObject, error)
	UploadPDFMetadata(ctx context.Context, userID, key, name, pdfURL string, text []string) error
	ListPDFs(ctx context.Context, userID string) ([]*domain.Document, error)
	DeletePDF(ctx context.Context, key string) error
	FetchBinary(ctx context.Context, fileURL string) ([]byte, error)
}

// Library holds the signed-in user's in-memory document list and sequences
// the upload, list and delete flows against the backend.
type Library struct {
	api       backendAPI
	extractor PageExtractor
	logger    domain.Logger

	mu        sync.Mutex
	state     LibraryState
	userID    string
	documents []*domain.Document
	// generation invalidates in-flight loads when identity changes, so a
	// sign-out can never be overwritten by a late response.
	generation uint64
}

// NewLibrary creates a new library in the signed-out state
func NewLibrary(api backendAPI, extractor PageExtractor, logger domain.Logger) *Library {
	return &Library{
		api:       api,
		extractor: extractor,
		logger:    logger,
		state:     StateSignedOut,
	}
}

// SignIn records the new identity, runs the ensure-user sequence and loads
// the user's document list. The previous list is cleared before any network
// call is made.
func (l *Library) SignIn(ctx context.Context, userID, email string) error {
	if userID == "" {
		return fmt.Errorf("user id is required")
	}

	l.mu.Lock()
	l.generation++
	gen := l.generation
	l.state = StateLoading
	l.userID = userID
	l.documents = nil
	l.mu.Unlock()

	// First sign-in creates the user row; a failure here is logged and does
	// not block loading the (empty) library.
	exists, err := l.api.UserExists(ctx, userID)
	if err != nil {
		l.logger.Error("Failed to check user registration", err, "user_id", userID)
	} else if !exists {
		if _, err := l.api.CreateUser(ctx, userID, email); err != nil {
			l.logger.Error("Failed to register user", err, "user_id", userID)
		}
	}

	documents, err := l.api.ListPDFs(ctx, userID)
	if err != nil {
		l.logger.Error("Failed to load document list", err, "user_id", userID)
		l.applyDocuments(gen, nil)
		return err
	}

	l.applyDocuments(gen, documents)
	return nil
}

// SignOut clears the list immediately. No network call is made; a load still
// in flight is invalidated and its result discarded.
func (l *Library) SignOut() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.generation++
	l.state = StateSignedOut
	l.userID = ""
	l.documents = nil
}

// State returns the current library state
func (l *Library) State() LibraryState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Documents returns a snapshot of the in-memory document list.
func (l *Library) Documents() []*domain.Document {
	l.mu.Lock()
	defer l.mu.Unlock()

	snapshot := make([]*domain.Document, len(l.documents))
	copy(snapshot, l.documents)
	return snapshot
}

// Upload runs the full upload flow: media-type guard, store the binary,
// fetch it back from the returned URL, extract one text string per page,
// persist the metadata row, then add the document to the list. A failing
// step stops the flow; a stored binary without metadata is not rolled back.
func (l *Library) Upload(ctx context.Context, filename, mediaType string, file io.Reader) (*domain.Document, error) {
	l.mu.Lock()
	gen := l.generation
	userID := l.userID
	signedIn := l.state != StateSignedOut
	l.mu.Unlock()

	if !signedIn {
		return nil, fmt.Errorf("not signed in")
	}
	if !strings.EqualFold(strings.TrimSpace(mediaType), "application/pdf") {
		return nil, fmt.Errorf("only pdf files can be uploaded")
	}

	object, err := l.api.UploadPDF(ctx, filename, file)
	if err != nil {
		l.logger.Error("Upload flow failed at store step", err, "filename", filename)
		return nil, err
	}

	data, err := l.api.FetchBinary(ctx, object.URL)
	if err != nil {
		l.logger.Error("Upload flow failed fetching stored pdf", err, "key", object.Key)
		return nil, err
	}

	pages, err := l.extractor.ExtractPages(data)
	if err != nil {
		l.logger.Error("Upload flow failed extracting text", err, "key", object.Key)
		return nil, err
	}

	if err := l.api.UploadPDFMetadata(ctx, userID, object.Key, filename, object.URL, pages); err != nil {
		l.logger.Error("Upload flow failed persisting metadata", err, "key", object.Key)
		return nil, err
	}

	document := &domain.Document{
		Key:    object.Key,
		UserID: userID,
		Name:   filename,
		URL:    object.URL,
		Pages:  pages,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.generation == gen && l.state != StateSignedOut {
		l.documents = append(l.documents, document)
		l.state = StateSignedInPopulated
	}
	return document, nil
}

// Delete removes the document on the backend; only on success is the entry
// dropped from the in-memory list.
func (l *Library) Delete(ctx context.Context, key string) error {
	l.mu.Lock()
	gen := l.generation
	l.mu.Unlock()

	if err := l.api.DeletePDF(ctx, key); err != nil {
		l.logger.Error("Delete flow failed; list unchanged", err, "key", key)
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.generation != gen || l.state == StateSignedOut {
		return nil
	}

	kept := l.documents[:0]
	for _, doc := range l.documents {
		if doc.Key != key {
			kept = append(kept, doc)
		}
	}
	l.documents = kept
	if len(l.documents) == 0 {
		l.state = StateSignedInEmpty
	}
	return nil
}

// applyDocuments installs a loaded list unless the identity changed while the
// load was in flight.
func (l *Library) applyDocuments(gen uint64, documents []*domain.Document) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.generation != gen || l.state == StateSignedOut {
		return
	}

	l.documents = documents
	if len(documents) == 0 {
		l.state = StateSignedInEmpty
	} else {
		l.state = StateSignedInPopulated
	}
}
