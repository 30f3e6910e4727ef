package models

import "time"

// Dataset represents one uploaded batch of raw GPS rows. Rows are stored
// verbatim; validation happens on every report run, never at upload time.
type Dataset struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	RowCount  int       `json:"row_count" db:"row_count"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// DatasetsResponse represents a paginated response of datasets
type DatasetsResponse struct {
	Data       []Dataset `json:"data"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalPages int       `json:"totalPages"`
}

// DatasetFilter represents query parameters for listing datasets
type DatasetFilter struct {
	Name     string `form:"name"`
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
}
