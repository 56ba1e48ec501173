package storage

import (
	"context"
	"fmt"

	"silomet/internal/config"
)

// Mode represents the storage backend selection
type Mode string

const (
	ModeLocal Mode = "local"
	ModeGCS   Mode = "gcs"
)

// NewClient creates a storage client based on the configured mode
func NewClient(ctx context.Context, mode Mode, cfg *config.Config) (Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("storage config is nil")
	}

	switch mode {
	case ModeLocal:
		outputDir := cfg.OutputDir
		if outputDir == "" {
			outputDir = "output"
		}

		localClient, err := NewLocalClient(outputDir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local storage client: %w", err)
		}
		return localClient, nil

	case ModeGCS:
		gcsClient, err := NewGCSClient(ctx, cfg.GCSBucket)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize GCS client: %w", err)
		}
		return gcsClient, nil

	default:
		return nil, fmt.Errorf("unsupported storage mode: %s", mode)
	}
}
