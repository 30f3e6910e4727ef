package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/jengwei/trip-report/internal/models"
)

// DatasetRepository handles database operations for datasets and their raw rows
type DatasetRepository struct {
	db *sql.DB
}

// NewDatasetRepository creates a new dataset repository
func NewDatasetRepository(db *sql.DB) *DatasetRepository {
	return &DatasetRepository{db: db}
}

// Create stores a dataset and its raw rows in one transaction. Rows are
// stored comma-joined, exactly as the validator will see them later.
func (r *DatasetRepository) Create(ds models.Dataset, rows [][]string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO datasets (id, name, row_count) VALUES (?, ?, ?)",
		ds.ID, ds.Name, len(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to insert dataset: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO dataset_rows (dataset_id, seq, raw) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare row insert: %w", err)
	}
	defer stmt.Close()

	for i, row := range rows {
		if _, err := stmt.Exec(ds.ID, i, strings.Join(row, ",")); err != nil {
			return fmt.Errorf("failed to insert row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// List retrieves datasets with filtering and pagination
func (r *DatasetRepository) List(filter models.DatasetFilter) ([]models.Dataset, int64, error) {
	query := "SELECT id, name, row_count, created_at FROM datasets"
	countQuery := "SELECT COUNT(*) FROM datasets"

	var conditions []string
	var args []interface{}

	if filter.Name != "" {
		conditions = append(conditions, "name LIKE ?")
		args = append(args, "%"+filter.Name+"%")
	}

	if len(conditions) > 0 {
		where := " WHERE " + strings.Join(conditions, " AND ")
		query += where
		countQuery += where
	}

	var total int64
	if err := r.db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count datasets: %w", err)
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 100
	}
	if filter.PageSize > 1000 {
		filter.PageSize = 1000
	}

	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query datasets: %w", err)
	}
	defer rows.Close()

	var datasets []models.Dataset
	for rows.Next() {
		var ds models.Dataset
		if err := rows.Scan(&ds.ID, &ds.Name, &ds.RowCount, &ds.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan dataset: %w", err)
		}
		datasets = append(datasets, ds)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return datasets, total, nil
}

// GetByID retrieves a single dataset, nil when absent
func (r *DatasetRepository) GetByID(id string) (*models.Dataset, error) {
	var ds models.Dataset
	err := r.db.QueryRow(
		"SELECT id, name, row_count, created_at FROM datasets WHERE id = ?", id,
	).Scan(&ds.ID, &ds.Name, &ds.RowCount, &ds.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get dataset: %w", err)
	}
	return &ds, nil
}

// Rows returns the raw rows of a dataset in upload order
func (r *DatasetRepository) Rows(id string) ([][]string, error) {
	rows, err := r.db.Query(
		"SELECT raw FROM dataset_rows WHERE dataset_id = ? ORDER BY seq", id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query dataset rows: %w", err)
	}
	defer rows.Close()

	var out [][]string
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		out = append(out, strings.Split(raw, ","))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return out, nil
}

// Delete removes a dataset and its rows
func (r *DatasetRepository) Delete(id string) error {
	if _, err := r.db.Exec("DELETE FROM dataset_rows WHERE dataset_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete dataset rows: %w", err)
	}
	if _, err := r.db.Exec("DELETE FROM datasets WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete dataset: %w", err)
	}
	return nil
}
