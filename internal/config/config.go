package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the SILO met file export service
type Config struct {
	// SILO API credentials (register at longpaddock.qld.gov.au)
	SILOUsername string `env:"SILO_USERNAME,required"`
	SILOPassword string `env:"SILO_PASSWORD,required"`
	SILOBaseURL  string `env:"SILO_BASE_URL,default=https://www.longpaddock.qld.gov.au/cgi-bin/silo"`

	// Request parameters
	Latitude   float64 `env:"LATITUDE,required"`
	Longitude  float64 `env:"LONGITUDE,required"`
	StartYear  int     `env:"START_YEAR,required"`
	EndYear    int     `env:"END_YEAR,required"`
	DataFormat string  `env:"DATA_FORMAT,default=fao56"`

	// Output configuration
	OutputDir   string `env:"OUTPUT_DIR,default=./output"`
	StorageMode string `env:"STORAGE_MODE,default=local"`
	GCSBucket   string `env:"GCS_BUCKET"`

	// Service configuration
	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=text"`
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}
