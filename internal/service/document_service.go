package service

import (
	"context"
	"io"
	"strings"

	"book-reader-server/internal/domain"
	apperrors "book-reader-server/pkg/errors"
)

// DocumentService implements the domain.DocumentService interface
type DocumentService struct {
	repo    domain.DocumentRepository
	storage domain.StorageGateway
	logger  domain.Logger
}

// NewDocumentService creates a new document service
func NewDocumentService(
	repo domain.DocumentRepository,
	storage domain.StorageGateway,
	logger domain.Logger,
) domain.DocumentService {
	return &DocumentService{
		repo:    repo,
		storage: storage,
		logger:  logger,
	}
}

// Upload forwards the PDF bytes to the object store and returns the
// resulting URL/key pair. Non-PDF payloads are rejected before the gateway
// is contacted.
func (s *DocumentService) Upload(ctx context.Context, filename, contentType string, file io.Reader) (*domain.StoredObject, error) {
	if !isPDF(filename, contentType) {
		return nil, apperrors.NewValidationError("Only PDF files are supported.")
	}

	object, err := s.storage.Upload(ctx, filename, contentType, file)
	if err != nil {
		return nil, apperrors.NewDownstreamError("Failed to upload pdf to storage.", err)
	}
	return object, nil
}

// SaveMetadata writes the whole document row in one call. Create-only; a
// duplicate key fails rather than updating.
func (s *DocumentService) SaveMetadata(ctx context.Context, document *domain.Document) error {
	if document.UserID == "" || document.Key == "" || document.URL == "" {
		return apperrors.NewValidationError("userId, pdf_key and pdf_url are required")
	}
	if document.Name == "" {
		document.Name = document.Key
	}

	if err := s.repo.EnsureSchema(ctx); err != nil {
		return apperrors.NewDownstreamError("Failed to save pdf metadata to db.", err)
	}
	if err := s.repo.Create(ctx, document); err != nil {
		return apperrors.NewDownstreamError("Failed to save pdf metadata to db.", err)
	}
	return nil
}

// GetDocumentsByUserID returns the user's documents; the list may be empty.
func (s *DocumentService) GetDocumentsByUserID(ctx context.Context, userID string) ([]*domain.Document, error) {
	if userID == "" {
		return nil, apperrors.NewValidationError("userId is required")
	}

	if err := s.repo.EnsureSchema(ctx); err != nil {
		return nil, apperrors.NewDownstreamError("Failed to list pdfs from db.", err)
	}
	documents, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.NewDownstreamError("Failed to list pdfs from db.", err)
	}
	return documents, nil
}

// DeleteDocument removes the stored binary first and the metadata row only
// after the object store confirms. A surviving row therefore always points
// at an existing object; a failed second step leaves an orphaned row that a
// retry can clear, never a row whose binary is gone.
func (s *DocumentService) DeleteDocument(ctx context.Context, key string) error {
	if key == "" {
		return apperrors.NewValidationError("key is required")
	}

	if err := s.storage.Delete(ctx, key); err != nil {
		return apperrors.NewDownstreamError("Failed to delete pdf from storage.", err)
	}
	if err := s.repo.Delete(ctx, key); err != nil {
		return apperrors.NewDownstreamError("Failed to delete pdf metadata from db.", err)
	}
	return nil
}

// isPDF checks the declared media type, falling back to the file extension
// when the part carries no content type.
func isPDF(filename, contentType string) bool {
	if contentType != "" {
		mediaType := contentType
		if i := strings.Index(mediaType, ";"); i >= 0 {
			mediaType = mediaType[:i]
		}
		return strings.EqualFold(strings.TrimSpace(mediaType), "application/pdf")
	}
	return strings.EqualFold(strings.TrimSpace(filenameExt(filename)), ".pdf")
}

func filenameExt(filename string) string {
	if i := strings.LastIndex(filename, "."); i >= 0 {
		return filename[i:]
	}
	return ""
}
