// Package storage persists archived CSV exports on the local filesystem or
// in an S3 bucket.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/agencydesk-backend/internal/config"
	"github.com/heartmarshall/agencydesk-backend/internal/domain"
)

// Storage stores opaque objects addressed by slash-separated keys.
type Storage interface {
	// Upload stores data under key.
	Upload(ctx context.Context, key, contentType string, data io.Reader) error

	// Download opens the object stored under key. A missing key yields
	// domain.ErrNotFound.
	Download(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Type is the storage backend kind.
type Type string

const (
	TypeLocal Type = "local"
	TypeS3    Type = "s3"
)

// New creates a storage backend from configuration.
func New(ctx context.Context, cfg config.StorageConfig) (Storage, error) {
	switch Type(cfg.Type) {
	case TypeLocal:
		return NewLocal(cfg.LocalPath)
	case TypeS3:
		return NewS3(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}

// ExportKey builds a unique key for an agency's export archive.
func ExportKey(agencyID, exportID uuid.UUID, filename string) string {
	filename = strings.NewReplacer(" ", "_", "/", "_", "\\", "_").Replace(filename)
	return path.Join("exports", agencyID.String(), exportID.String()+"_"+filename)
}

// OwnsKey reports whether key lives under the agency's export prefix.
func OwnsKey(agencyID uuid.UUID, key string) bool {
	return strings.HasPrefix(cleanKey(key), path.Join("exports", agencyID.String())+"/")
}

// cleanKey normalizes key and strips leading slashes.
func cleanKey(key string) string {
	return strings.TrimLeft(path.Clean("/"+key), "/")
}

func validateKey(key string) error {
	if key == "" || strings.Contains(key, "..") {
		return domain.NewValidationError("key", "invalid storage key")
	}
	return nil
}
