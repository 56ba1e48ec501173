package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"silomet/internal/config"
	"silomet/internal/export"
	"silomet/internal/fetchers"
	"silomet/internal/logger"
	"silomet/internal/silo"
	"silomet/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.New(logger.INFO, logger.TextFormat).Error("failed to load configuration", err)
		os.Exit(1)
	}

	log := logger.New(logger.ParseLevel(cfg.LogLevel), logger.ParseFormat(cfg.LogFormat))
	log.Info("starting SILO met file export", map[string]any{
		"lat": cfg.Latitude, "lon": cfg.Longitude,
		"start_year": cfg.StartYear, "end_year": cfg.EndYear,
		"format": cfg.DataFormat, "storage": cfg.StorageMode,
	})

	store, err := storage.NewClient(ctx, storage.Mode(cfg.StorageMode), cfg)
	if err != nil {
		log.Error("failed to initialize storage", err)
		os.Exit(1)
	}
	defer store.Close()

	fetcher := fetchers.NewSILOClient(cfg.SILOBaseURL, cfg.SILOUsername, cfg.SILOPassword)
	exporter := export.New(fetcher, store, log)

	result, err := exporter.Run(ctx, export.Request{
		Lat:       cfg.Latitude,
		Lon:       cfg.Longitude,
		StartYear: cfg.StartYear,
		EndYear:   cfg.EndYear,
		Format:    silo.Format(cfg.DataFormat),
	})
	if err != nil {
		log.Error("export failed", err)
		os.Exit(1)
	}

	log.Info("export completed", map[string]any{
		"met_file": result.MetFile,
		"csv_file": result.CSVFile,
		"days":     result.Days,
	})
}
