package ingest

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jengwei/trip-report/internal/models"
)

// minFieldCount is the number of leading fields a row must carry:
// device_id, lat, lon, timestamp. Extra trailing fields are ignored.
const minFieldCount = 4

// timestampLayouts are tried in order when the timestamp field is not a
// plain epoch-seconds integer
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006/01/02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseRow validates one raw row and returns either a GpsPoint or a
// RejectRecord, never both. loggedAt stamps the reject with the run's
// processing time.
func ParseRow(fields []string, loggedAt int64) (models.GpsPoint, *models.RejectRecord) {
	raw := strings.Join(fields, ",")

	if len(fields) < minFieldCount {
		return models.GpsPoint{}, &models.RejectRecord{
			RawRow:   raw,
			Reason:   models.ReasonInvalidColumnCount,
			LoggedAt: loggedAt,
		}
	}

	deviceID := strings.TrimSpace(fields[0])

	lat, err := parseCoordinate(fields[1], 90)
	if err != nil {
		return models.GpsPoint{}, rejectCoordinate(raw, loggedAt)
	}

	lon, err := parseCoordinate(fields[2], 180)
	if err != nil {
		return models.GpsPoint{}, rejectCoordinate(raw, loggedAt)
	}

	ts, err := ParseTimestamp(fields[3])
	if err != nil {
		return models.GpsPoint{}, rejectCoordinate(raw, loggedAt)
	}

	return models.GpsPoint{
		DeviceID:  deviceID,
		Latitude:  lat,
		Longitude: lon,
		Timestamp: ts,
	}, nil
}

func rejectCoordinate(raw string, loggedAt int64) *models.RejectRecord {
	return &models.RejectRecord{
		RawRow:   raw,
		Reason:   models.ReasonInvalidCoordinateOrTimestamp,
		LoggedAt: loggedAt,
	}
}

// parseCoordinate parses a finite float within [-limit, limit]
func parseCoordinate(s string, limit float64) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("coordinate is not finite: %q", s)
	}
	if v < -limit || v > limit {
		return 0, fmt.Errorf("coordinate %v out of range [-%v,%v]", v, limit, limit)
	}
	return v, nil
}

// ParseTimestamp converts a date-time string to epoch seconds. Plain digit
// strings are taken as epoch seconds directly; otherwise the common
// calendar layouts are tried in UTC.
func ParseTimestamp(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty timestamp")
	}

	if isDigits(s) {
		return strconv.ParseInt(s, 10, 64)
	}

	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.Unix(), nil
		}
	}
	return 0, fmt.Errorf("unrecognized timestamp format: %q", s)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Validator turns raw rows into validated points, writing one reject per
// invalid row to the sink in row order.
type Validator struct {
	sink Sink
	now  func() time.Time
}

// NewValidator creates a validator bound to a reject sink
func NewValidator(sink Sink) *Validator {
	return &Validator{sink: sink, now: time.Now}
}

// ValidateAll processes every row and returns the valid points plus the run
// counters. A sink write failure aborts the run: the reject log is a
// required diagnostic artifact, not best-effort.
func (v *Validator) ValidateAll(rows [][]string) ([]models.GpsPoint, models.ProcessingSummary, error) {
	loggedAt := v.now().Unix()

	var points []models.GpsPoint
	summary := models.ProcessingSummary{}

	for _, row := range rows {
		summary.TotalRows++
		point, reject := ParseRow(row, loggedAt)
		if reject != nil {
			summary.RejectedRows++
			if err := v.sink.Write(*reject); err != nil {
				return nil, models.ProcessingSummary{}, err
			}
			continue
		}
		summary.ValidPoints++
		points = append(points, point)
	}

	return points, summary, nil
}
