package domain

import (
	"context"
	"io"
	"time"
)

// Document represents an uploaded PDF owned by a user. Pages holds the
// extracted text, one entry per page, index 0 = page 1. The whole row is
// written in one call; there is no partial or incremental persistence.
type Document struct {
	Key    string   `json:"key"`
	UserID string   `json:"uploader"`
	Name   string   `json:"name"`
	URL    string   `json:"url"`
	Pages  []string `json:"text"`

	CreatedAt time.Time `json:"-"`
}

// StoredObject is the handle the object-storage service returns for an
// uploaded binary.
type StoredObject struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// DocumentRepository defines persistence operations for document metadata.
type DocumentRepository interface {
	EnsureSchema(ctx context.Context) error
	Create(ctx context.Context, document *Document) error
	GetByUserID(ctx context.Context, userID string) ([]*Document, error)
	Delete(ctx context.Context, key string) error
}

// StorageGateway mediates create/delete of PDF binaries against the external
// file-hosting service.
type StorageGateway interface {
	Upload(ctx context.Context, filename, contentType string, file io.Reader) (*StoredObject, error)
	Delete(ctx context.Context, key string) error
}

// DocumentService defines the use-case operations for documents.
type DocumentService interface {
	Upload(ctx context.Context, filename, contentType string, file io.Reader) (*StoredObject, error)
	SaveMetadata(ctx context.Context, document *Document) error
	GetDocumentsByUserID(ctx context.Context, userID string) ([]*Document, error)
	DeleteDocument(ctx context.Context, key string) error
}
