package service

import (
	"time"

	"github.com/jengwei/trip-report/internal/ingest"
	"github.com/jengwei/trip-report/internal/metrics"
	"github.com/jengwei/trip-report/internal/models"
	"github.com/jengwei/trip-report/internal/pipeline"
	"github.com/jengwei/trip-report/internal/repository"
)

// ReportService runs the pipeline over stored datasets
type ReportService struct {
	repo      *repository.DatasetRepository
	pipeline  *pipeline.Pipeline
	collector *metrics.Collector
}

// NewReportService creates a new report service
func NewReportService(repo *repository.DatasetRepository, p *pipeline.Pipeline, collector *metrics.Collector) *ReportService {
	return &ReportService{repo: repo, pipeline: p, collector: collector}
}

// Generate runs the full pipeline over a dataset's raw rows. The reject log
// is buffered per run and travels inside the report, so concurrent requests
// never share a log target. Returns nil when the dataset does not exist.
func (s *ReportService) Generate(datasetID string) (*models.Report, error) {
	ds, err := s.repo.GetByID(datasetID)
	if err != nil {
		return nil, err
	}
	if ds == nil {
		return nil, nil
	}

	rows, err := s.repo.Rows(datasetID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := s.pipeline.Run(rows, ingest.DiscardSink{})
	if err != nil {
		return nil, err
	}

	if s.collector != nil {
		s.collector.ObserveRun(result.Summary, len(result.Features.Features), time.Since(start))
	}

	return &result, nil
}
