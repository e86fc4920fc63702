package handler

import (
	"context"
	"io"

	"book-reader-server/internal/domain"
)

// Mock logger used by handler package tests.
type MockHandlerLogger struct{}

func NewMockHandlerLogger() domain.Logger {
	return &MockHandlerLogger{}
}

func (l *MockHandlerLogger) Info(msg string, fields ...interface{})             {}
func (l *MockHandlerLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *MockHandlerLogger) Debug(msg string, fields ...interface{})            {}
func (l *MockHandlerLogger) Warn(msg string, fields ...interface{})             {}

// Mock user service used by handler package tests.
type MockUserService struct {
	Confirmation string
	ExistsResult bool
	Err          error
	LastID       string
	LastEmail    string
}

func (m *MockUserService) Register(ctx context.Context, id, email string) (string, error) {
	m.LastID = id
	m.LastEmail = email
	if m.Err != nil {
		return "", m.Err
	}
	return m.Confirmation, nil
}

func (m *MockUserService) Exists(ctx context.Context, id string) (bool, error) {
	m.LastID = id
	if m.Err != nil {
		return false, m.Err
	}
	return m.ExistsResult, nil
}

// Mock document service used by handler package tests.
type MockDocumentService struct {
	Object    *domain.StoredObject
	Documents []*domain.Document
	Err       error

	LastFilename    string
	LastContentType string
	LastDocument    *domain.Document
	LastUserID      string
	LastKey         string
}

func (m *MockDocumentService) Upload(ctx context.Context, filename, contentType string, file io.Reader) (*domain.StoredObject, error) {
	m.LastFilename = filename
	m.LastContentType = contentType
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Object, nil
}

func (m *MockDocumentService) SaveMetadata(ctx context.Context, document *domain.Document) error {
	m.LastDocument = document
	return m.Err
}

func (m *MockDocumentService) GetDocumentsByUserID(ctx context.Context, userID string) ([]*domain.Document, error) {
	m.LastUserID = userID
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Documents, nil
}

func (m *MockDocumentService) DeleteDocument(ctx context.Context, key string) error {
	m.LastKey = key
	return m.Err
}

// Mock speech service used by handler package tests.
type MockSpeechService struct {
	Stream   *domain.SpeechStream
	Err      error
	Called   bool
	LastText string
}

func (m *MockSpeechService) Synthesize(ctx context.Context, text string) (*domain.SpeechStream, error) {
	m.Called = true
	m.LastText = text
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Stream, nil
}
