package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
)

// ReadRows reads all data rows from r, skipping the header row. Rows may
// have varying field counts; the validator classifies short rows later.
func ReadRows(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}
	// First row is the header
	return records[1:], nil
}

// ReadFile reads all data rows from the file at path. A missing file is not
// an error: the run proceeds with zero rows so callers always get a
// renderable (possibly empty) result.
func ReadFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("[Ingest] Input file %s not found, proceeding with zero rows", path)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open input %s: %w", path, err)
	}
	defer f.Close()

	return ReadRows(f)
}
