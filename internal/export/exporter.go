package export

import (
	"context"
	"fmt"
	"time"

	"silomet/internal/logger"
	"silomet/internal/metfile"
	"silomet/internal/silo"
	"silomet/internal/storage"
)

// Fetcher retrieves a raw SILO response payload
type Fetcher interface {
	Fetch(ctx context.Context, lat, lon float64, startYear, endYear int, format silo.Format) (string, error)
}

// Request describes one export: a point, a year range and a response format
type Request struct {
	Lat       float64
	Lon       float64
	StartYear int
	EndYear   int
	Format    silo.Format
}

// Result summarizes a completed export
type Result struct {
	MetFile string
	CSVFile string
	Days    int
	Tav     float64
	Amp     float64
}

// Exporter runs the fetch -> parse -> normalize -> emit pipeline and writes
// the resulting files through the configured storage backend
type Exporter struct {
	fetcher Fetcher
	store   storage.Client
	log     *logger.Logger
}

// New creates an Exporter
func New(fetcher Fetcher, store storage.Client, log *logger.Logger) *Exporter {
	return &Exporter{
		fetcher: fetcher,
		store:   store,
		log:     log.WithComponent("export"),
	}
}

// Run executes a single export end to end. Validation happens before any
// network or parse work; every later stage produces a new value, so a failed
// run leaves no partial series behind (partially written files on I/O
// failure are a documented limitation).
func (e *Exporter) Run(ctx context.Context, req Request) (*Result, error) {
	if err := silo.ValidateRequest(req.Lat, req.Lon, req.StartYear, req.EndYear); err != nil {
		return nil, err
	}

	e.log.Info("fetching SILO data", map[string]any{
		"lat": req.Lat, "lon": req.Lon,
		"start_year": req.StartYear, "end_year": req.EndYear,
		"format": string(req.Format),
	})
	rawText, err := e.fetcher.Fetch(ctx, req.Lat, req.Lon, req.StartYear, req.EndYear, req.Format)
	if err != nil {
		return nil, fmt.Errorf("fetch failed: %w", err)
	}

	table, err := silo.ParseResponse(rawText, req.Format)
	if err != nil {
		return nil, err
	}
	e.log.Debug("parsed SILO response", map[string]any{
		"rows": table.Len(), "columns": len(table.Columns),
	})

	series, err := silo.Normalize(table, req.Format)
	if err != nil {
		return nil, err
	}

	tav, err := silo.Tav(series)
	if err != nil {
		return nil, err
	}
	amp, err := silo.Amp(series)
	if err != nil {
		return nil, err
	}

	e.log.Info("normalized climate series", map[string]any{
		"days": series.Len(), "tav": fmt.Sprintf("%.2f", tav), "amp": fmt.Sprintf("%.2f", amp),
	})
	e.logVariableMeans(series)

	meta := metfile.Metadata{
		Lat:         req.Lat,
		Lon:         req.Lon,
		StartYear:   req.StartYear,
		EndYear:     req.EndYear,
		ExtractedAt: time.Now(),
	}

	metData, err := metfile.RenderMet(series, meta)
	if err != nil {
		return nil, fmt.Errorf("met rendering failed: %w", err)
	}
	csvData, err := metfile.RenderCSV(series)
	if err != nil {
		return nil, fmt.Errorf("csv rendering failed: %w", err)
	}

	metName := metfile.Filename(req.Lat, req.Lon, req.StartYear, req.EndYear, metfile.MetExtension)
	csvName := metfile.Filename(req.Lat, req.Lon, req.StartYear, req.EndYear, metfile.CSVExtension)

	if err := e.store.StoreFile(ctx, metName, metData); err != nil {
		return nil, fmt.Errorf("failed to store %s: %w", metName, err)
	}
	e.log.Info("stored met file", map[string]any{"file": metName, "bytes": len(metData)})

	if err := e.store.StoreFile(ctx, csvName, csvData); err != nil {
		return nil, fmt.Errorf("failed to store %s: %w", csvName, err)
	}
	e.log.Info("stored csv file", map[string]any{"file": csvName, "bytes": len(csvData)})

	return &Result{
		MetFile: metName,
		CSVFile: csvName,
		Days:    series.Len(),
		Tav:     tav,
		Amp:     amp,
	}, nil
}

// logVariableMeans logs the per-variable means of the fetched series
func (e *Exporter) logVariableMeans(series *silo.ClimateSeries) {
	means := make(map[string]any, len(silo.CanonicalVariables))
	for _, name := range silo.CanonicalVariables {
		values, _ := series.Column(name)
		var sum float64
		var n int
		for _, v := range values {
			if silo.IsMissing(v) {
				continue
			}
			sum += v
			n++
		}
		if n == 0 {
			means[name] = "n/a"
			continue
		}
		means[name] = fmt.Sprintf("%.2f", sum/float64(n))
	}
	e.log.Info("series variable means", means)
}
