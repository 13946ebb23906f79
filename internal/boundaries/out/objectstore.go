// Package out defines output ports (interfaces) for infrastructure.
// These interfaces define the contract between use cases and driven adapters
// (object storage, dump binaries, terminals, history database).
package out

import (
	"context"

	"github.com/bnema/dbs3/internal/domain"
)

// ObjectStore is the bucket holding backup artifacts.
// Implementations report failures as *domain.TransferError.
type ObjectStore interface {
	// List returns every object under keyPrefix. Order is unspecified.
	List(ctx context.Context, bucket, keyPrefix string) ([]domain.BackupObject, error)

	// Upload writes the file at localPath to bucket/key, replacing any existing object.
	Upload(ctx context.Context, localPath, bucket, key string) error

	// Download writes bucket/key to localPath, truncating an existing file.
	Download(ctx context.Context, bucket, key, localPath string) error

	Delete(ctx context.Context, bucket, key string) error

	HeadMetadata(ctx context.Context, bucket, key string) (domain.ObjectMetadata, error)
}
