package repository

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"book-reader-server/internal/domain"

	"github.com/google/uuid"
	storage_go "github.com/supabase-community/storage-go"
)

// SupabaseStorageGateway implements domain.StorageGateway against Supabase
// Storage. Upload returns the object key plus a public URL; delete removes
// the object by key.
type SupabaseStorageGateway struct {
	client *storage_go.Client
	bucket string
	logger domain.Logger
}

// NewStorageGateway creates a new Supabase storage gateway
func NewStorageGateway(cfg domain.Config, logger domain.Logger) domain.StorageGateway {
	client := storage_go.NewClient(cfg.GetStorageURL(), cfg.GetStorageKey(), nil)
	return &SupabaseStorageGateway{
		client: client,
		bucket: cfg.GetStorageBucket(),
		logger: logger,
	}
}

// Upload stores the PDF bytes under a fresh object key and returns the
// key/URL pair.
func (g *SupabaseStorageGateway) Upload(ctx context.Context, filename, contentType string, file io.Reader) (*domain.StoredObject, error) {
	key := uuid.NewString() + "-" + sanitizeObjectName(filename)

	if contentType == "" {
		contentType = "application/pdf"
	}
	_, err := g.client.UploadFile(g.bucket, key, file, storage_go.FileOptions{
		ContentType: &contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload object: %w", err)
	}

	url := g.client.GetPublicUrl(g.bucket, key).SignedURL

	g.logger.Info("Object stored", "key", key, "bucket", g.bucket)
	return &domain.StoredObject{URL: url, Key: key}, nil
}

// Delete removes the stored object for the given key.
func (g *SupabaseStorageGateway) Delete(ctx context.Context, key string) error {
	if _, err := g.client.RemoveFile(g.bucket, []string{key}); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	g.logger.Info("Object deleted", "key", key, "bucket", g.bucket)
	return nil
}

// sanitizeObjectName strips path components and characters the storage API
// rejects in object keys.
func sanitizeObjectName(filename string) string {
	name := filepath.Base(strings.TrimSpace(filename))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "document.pdf"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
