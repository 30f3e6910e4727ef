package service

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/jengwei/trip-report/internal/ingest"
	"github.com/jengwei/trip-report/internal/models"
	"github.com/jengwei/trip-report/internal/repository"
)

// DatasetService handles business logic for datasets
type DatasetService struct {
	repo *repository.DatasetRepository
}

// NewDatasetService creates a new dataset service
func NewDatasetService(repo *repository.DatasetRepository) *DatasetService {
	return &DatasetService{repo: repo}
}

// CreateFromReader reads a delimited upload (header row included) and stores
// its data rows verbatim. No validation happens here: report runs classify
// rows so that the reject log always reflects the current run.
func (s *DatasetService) CreateFromReader(name string, r io.Reader) (models.Dataset, error) {
	rows, err := ingest.ReadRows(r)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("failed to read upload: %w", err)
	}

	ds := models.Dataset{
		ID:       uuid.NewString(),
		Name:     name,
		RowCount: len(rows),
	}

	if err := s.repo.Create(ds, rows); err != nil {
		return models.Dataset{}, err
	}
	return ds, nil
}

// List retrieves datasets with filtering and pagination
func (s *DatasetService) List(filter models.DatasetFilter) ([]models.Dataset, int64, error) {
	return s.repo.List(filter)
}

// GetByID retrieves a single dataset by ID, nil when absent
func (s *DatasetService) GetByID(id string) (*models.Dataset, error) {
	return s.repo.GetByID(id)
}

// Delete removes a dataset and its rows
func (s *DatasetService) Delete(id string) error {
	return s.repo.Delete(id)
}
