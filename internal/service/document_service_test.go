package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"book-reader-server/internal/domain"
	apperrors "book-reader-server/pkg/errors"
)

func TestDocumentServiceUpload(t *testing.T) {
	storage := &MockStorageGateway{Object: &domain.StoredObject{URL: "https://cdn/abc-book.pdf", Key: "abc-book.pdf"}}
	svc := NewDocumentService(&MockDocumentRepository{}, storage, NewMockServiceLogger())

	object, err := svc.Upload(context.Background(), "book.pdf", "application/pdf", strings.NewReader("%PDF-1.4"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if object.Key != "abc-book.pdf" || object.URL != "https://cdn/abc-book.pdf" {
		t.Fatalf("unexpected object: %+v", object)
	}
}

func TestDocumentServiceUploadRejectsNonPDF(t *testing.T) {
	storage := &MockStorageGateway{}
	svc := NewDocumentService(&MockDocumentRepository{}, storage, NewMockServiceLogger())

	_, err := svc.Upload(context.Background(), "notes.txt", "text/plain", strings.NewReader("hello"))
	if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if storage.UploadCalled {
		t.Fatalf("storage should not be contacted for a non-pdf payload")
	}
}

func TestDocumentServiceUploadAcceptsPDFExtensionWithoutContentType(t *testing.T) {
	storage := &MockStorageGateway{Object: &domain.StoredObject{URL: "https://cdn/k", Key: "k"}}
	svc := NewDocumentService(&MockDocumentRepository{}, storage, NewMockServiceLogger())

	if _, err := svc.Upload(context.Background(), "Book.PDF", "", strings.NewReader("%PDF-1.4")); err != nil {
		t.Fatalf("Upload: %v", err)
	}
}

func TestDocumentServiceUploadStorageError(t *testing.T) {
	storage := &MockStorageGateway{UploadErr: errors.New("bucket unavailable")}
	svc := NewDocumentService(&MockDocumentRepository{}, storage, NewMockServiceLogger())

	_, err := svc.Upload(context.Background(), "book.pdf", "application/pdf", strings.NewReader("%PDF-1.4"))
	if !apperrors.IsType(err, apperrors.ErrorTypeDownstream) {
		t.Fatalf("expected downstream error, got %v", err)
	}
	if apperrors.GetMessage(err) != "Failed to upload pdf to storage." {
		t.Fatalf("unexpected message: %q", apperrors.GetMessage(err))
	}
}

func TestDocumentServiceSaveMetadata(t *testing.T) {
	repo := &MockDocumentRepository{}
	svc := NewDocumentService(repo, &MockStorageGateway{}, NewMockServiceLogger())

	doc := &domain.Document{Key: "k1", UserID: "u1", URL: "https://cdn/k1", Pages: []string{"one"}}
	if err := svc.SaveMetadata(context.Background(), doc); err != nil {
		t.Fatalf("SaveMetadata: %v", err)
	}
	if len(repo.Created) != 1 {
		t.Fatalf("expected one row, got %d", len(repo.Created))
	}
	if repo.Created[0].Name != "k1" {
		t.Fatalf("expected name to default to key, got %q", repo.Created[0].Name)
	}
}

func TestDocumentServiceSaveMetadataMissingFields(t *testing.T) {
	repo := &MockDocumentRepository{}
	svc := NewDocumentService(repo, &MockStorageGateway{}, NewMockServiceLogger())

	err := svc.SaveMetadata(context.Background(), &domain.Document{Key: "k1", URL: "https://cdn/k1"})
	if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(repo.Created) != 0 {
		t.Fatalf("repository should not be touched on invalid input")
	}
}

func TestDocumentServiceGetDocumentsByUserID(t *testing.T) {
	repo := &MockDocumentRepository{Documents: []*domain.Document{
		{Key: "k1", UserID: "u1", Name: "a.pdf", URL: "https://cdn/k1", Pages: []string{"one"}},
	}}
	svc := NewDocumentService(repo, &MockStorageGateway{}, NewMockServiceLogger())

	documents, err := svc.GetDocumentsByUserID(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetDocumentsByUserID: %v", err)
	}
	if len(documents) != 1 || documents[0].Key != "k1" {
		t.Fatalf("unexpected documents: %+v", documents)
	}
}

func TestDocumentServiceDeleteDocument(t *testing.T) {
	repo := &MockDocumentRepository{}
	storage := &MockStorageGateway{}
	svc := NewDocumentService(repo, storage, NewMockServiceLogger())

	if err := svc.DeleteDocument(context.Background(), "k1"); err != nil {
		t.Fatalf("DeleteDocument: %v", err)
	}
	if len(storage.DeletedKeys) != 1 || storage.DeletedKeys[0] != "k1" {
		t.Fatalf("expected object store delete for k1, got %v", storage.DeletedKeys)
	}
	if len(repo.DeletedKeys) != 1 || repo.DeletedKeys[0] != "k1" {
		t.Fatalf("expected metadata delete for k1, got %v", repo.DeletedKeys)
	}
}

func TestDocumentServiceDeleteDocumentStorageFailureKeepsRow(t *testing.T) {
	repo := &MockDocumentRepository{}
	storage := &MockStorageGateway{DeleteErr: errors.New("object locked")}
	svc := NewDocumentService(repo, storage, NewMockServiceLogger())

	err := svc.DeleteDocument(context.Background(), "k1")
	if !apperrors.IsType(err, apperrors.ErrorTypeDownstream) {
		t.Fatalf("expected downstream error, got %v", err)
	}
	if len(repo.DeletedKeys) != 0 {
		t.Fatalf("metadata row must survive when the object store delete fails")
	}
}
