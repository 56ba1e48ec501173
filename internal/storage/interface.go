package storage

import (
	"context"
)

// Client defines the interface for output file storage backends
type Client interface {
	// Close closes the storage client
	Close() error

	// StoreFile stores a file at the specified path, creating any missing
	// parent directories and overwriting an existing file
	StoreFile(ctx context.Context, filePath string, fileData []byte) error

	// GetFile retrieves a file from the specified path
	GetFile(ctx context.Context, filePath string) ([]byte, error)

	// FileExists checks if a file exists at the specified path
	FileExists(ctx context.Context, filePath string) (bool, error)
}
