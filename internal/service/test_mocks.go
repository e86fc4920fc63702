package service

import (
	"context"
	"io"

	"book-reader-server/internal/domain"
)

// Mock logger used by service package tests.
type MockServiceLogger struct{}

func NewMockServiceLogger() domain.Logger {
	return &MockServiceLogger{}
}

func (l *MockServiceLogger) Info(msg string, fields ...interface{})             {}
func (l *MockServiceLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *MockServiceLogger) Debug(msg string, fields ...interface{})            {}
func (l *MockServiceLogger) Warn(msg string, fields ...interface{})             {}

// Mock user repository used by service package tests.
type MockUserRepository struct {
	SchemaErr    error
	CreateErr    error
	ExistsResult bool
	ExistsErr    error

	Created      []*domain.User
	SchemaCalls  int
	ExistsCalled bool
}

func (m *MockUserRepository) EnsureSchema(ctx context.Context) error {
	m.SchemaCalls++
	return m.SchemaErr
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Created = append(m.Created, user)
	return nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id string) (bool, error) {
	m.ExistsCalled = true
	if m.ExistsErr != nil {
		return false, m.ExistsErr
	}
	return m.ExistsResult, nil
}

// Mock document repository used by service package tests.
type MockDocumentRepository struct {
	SchemaErr error
	CreateErr error
	ListErr   error
	DeleteErr error

	Documents   []*domain.Document
	Created     []*domain.Document
	DeletedKeys []string
}

func (m *MockDocumentRepository) EnsureSchema(ctx context.Context) error {
	return m.SchemaErr
}

func (m *MockDocumentRepository) Create(ctx context.Context, document *domain.Document) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Created = append(m.Created, document)
	return nil
}

func (m *MockDocumentRepository) GetByUserID(ctx context.Context, userID string) ([]*domain.Document, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Documents, nil
}

func (m *MockDocumentRepository) Delete(ctx context.Context, key string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.DeletedKeys = append(m.DeletedKeys, key)
	return nil
}

// Mock storage gateway used by service package tests.
type MockStorageGateway struct {
	Object    *domain.StoredObject
	UploadErr error
	DeleteErr error

	UploadCalled bool
	DeletedKeys  []string
}

func (m *MockStorageGateway) Upload(ctx context.Context, filename, contentType string, file io.Reader) (*domain.StoredObject, error) {
	m.UploadCalled = true
	if m.UploadErr != nil {
		return nil, m.UploadErr
	}
	return m.Object, nil
}

func (m *MockStorageGateway) Delete(ctx context.Context, key string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.DeletedKeys = append(m.DeletedKeys, key)
	return nil
}

// Mock speech gateway used by service package tests.
type MockSpeechGateway struct {
	Stream *domain.SpeechStream
	Err    error

	Called   bool
	LastText string
}

func (m *MockSpeechGateway) Synthesize(ctx context.Context, text string) (*domain.SpeechStream, error) {
	m.Called = true
	m.LastText = text
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Stream, nil
}
