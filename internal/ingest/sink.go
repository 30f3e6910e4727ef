package ingest

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jengwei/trip-report/internal/models"
)

// Sink receives reject records as they are produced. The pipeline writes
// rejects in row order; sinks are run-scoped and never read back.
type Sink interface {
	Write(rec models.RejectRecord) error
}

// FormatRejectLine renders one reject-log line:
// <processing timestamp> | REJECTED: <raw row> | REASON: <reason>
func FormatRejectLine(rec models.RejectRecord) string {
	ts := time.Unix(rec.LoggedAt, 0).UTC().Format("2006-01-02 15:04:05")
	return fmt.Sprintf("%s | REJECTED: %s | REASON: %s", ts, rec.RawRow, rec.Reason.Description())
}

// FileSink appends reject lines to a file. The file is truncated when the
// sink is opened, so each run starts with an empty log.
type FileSink struct {
	f *os.File
}

// NewFileSink creates (or truncates) the reject log at path
func NewFileSink(path string) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open reject log %s: %w", path, err)
	}
	return &FileSink{f: f}, nil
}

// Write appends one reject line
func (s *FileSink) Write(rec models.RejectRecord) error {
	if _, err := fmt.Fprintln(s.f, FormatRejectLine(rec)); err != nil {
		return fmt.Errorf("failed to write reject log: %w", err)
	}
	return nil
}

// Close closes the underlying file
func (s *FileSink) Close() error {
	return s.f.Close()
}

// BufferSink collects reject lines in memory. Used by the HTTP surface,
// where the log text travels inside the report payload.
type BufferSink struct {
	sb strings.Builder
}

// NewBufferSink creates an empty in-memory sink
func NewBufferSink() *BufferSink {
	return &BufferSink{}
}

// Write appends one reject line
func (s *BufferSink) Write(rec models.RejectRecord) error {
	s.sb.WriteString(FormatRejectLine(rec))
	s.sb.WriteByte('\n')
	return nil
}

// String returns the accumulated log text
func (s *BufferSink) String() string {
	return s.sb.String()
}

// DiscardSink drops every record. Useful in tests.
type DiscardSink struct{}

// Write drops the record
func (DiscardSink) Write(models.RejectRecord) error { return nil }
