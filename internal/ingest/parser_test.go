package ingest

import (
	"strings"
	"testing"

	"github.com/jengwei/trip-report/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRowValid(t *testing.T) {
	point, reject := ParseRow([]string{"dev-1", "46.5", "7.25", "2025-01-22 21:42:18"}, 100)
	require.Nil(t, reject)
	assert.Equal(t, "dev-1", point.DeviceID)
	assert.Equal(t, 46.5, point.Latitude)
	assert.Equal(t, 7.25, point.Longitude)
	assert.Equal(t, int64(1737582138), point.Timestamp)
}

func TestParseRowEpochTimestamp(t *testing.T) {
	point, reject := ParseRow([]string{"dev-1", "0", "0", "1700000000"}, 100)
	require.Nil(t, reject)
	assert.Equal(t, int64(1700000000), point.Timestamp)
}

func TestParseRowColumnCount(t *testing.T) {
	_, reject := ParseRow([]string{"dev-1", "46.5", "7.25"}, 100)
	require.NotNil(t, reject)
	assert.Equal(t, models.ReasonInvalidColumnCount, reject.Reason)
	assert.Equal(t, "dev-1,46.5,7.25", reject.RawRow)
	assert.Equal(t, int64(100), reject.LoggedAt)
}

func TestParseRowInvalidCoordinates(t *testing.T) {
	cases := []struct {
		name string
		row  []string
	}{
		{"lat out of range", []string{"d", "91", "0", "1700000000"}},
		{"lat below range", []string{"d", "-90.1", "0", "1700000000"}},
		{"lon out of range", []string{"d", "0", "180.5", "1700000000"}},
		{"lat not a number", []string{"d", "abc", "0", "1700000000"}},
		{"lat NaN", []string{"d", "NaN", "0", "1700000000"}},
		{"lon infinite", []string{"d", "0", "+Inf", "1700000000"}},
		{"bad timestamp", []string{"d", "0", "0", "not-a-date"}},
		{"empty timestamp", []string{"d", "0", "0", ""}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, reject := ParseRow(tc.row, 100)
			require.NotNil(t, reject)
			assert.Equal(t, models.ReasonInvalidCoordinateOrTimestamp, reject.Reason)
		})
	}
}

func TestParseRowBoundaryCoordinates(t *testing.T) {
	for _, row := range [][]string{
		{"d", "90", "180", "1700000000"},
		{"d", "-90", "-180", "1700000000"},
	} {
		_, reject := ParseRow(row, 100)
		assert.Nil(t, reject)
	}
}

func TestParseTimestampLayouts(t *testing.T) {
	want := int64(1737582138)
	for _, s := range []string{
		"2025-01-22 21:42:18",
		"2025-01-22T21:42:18",
		"2025/01/22 21:42:18",
		"2025-01-22T21:42:18Z",
		"1737582138",
	} {
		got, err := ParseTimestamp(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}
}

func TestValidateAllCounts(t *testing.T) {
	rows := [][]string{
		{"d", "46.0", "7.0", "2025-01-01 10:00:00"},
		{"d", "200", "7.0", "2025-01-01 10:00:10"},
		{"d", "46.0"},
		{"d", "46.1", "7.1", "2025-01-01 10:00:20"},
	}

	sink := NewBufferSink()
	points, summary, err := NewValidator(sink).ValidateAll(rows)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.TotalRows)
	assert.Equal(t, 2, summary.ValidPoints)
	assert.Equal(t, 2, summary.RejectedRows)
	assert.Equal(t, summary.TotalRows, summary.ValidPoints+summary.RejectedRows)
	assert.Len(t, points, 2)

	lines := strings.Split(strings.TrimRight(sink.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "REJECTED: d,200,7.0,2025-01-01 10:00:10")
	assert.Contains(t, lines[0], "REASON: invalid coordinate or timestamp")
	assert.Contains(t, lines[1], "REJECTED: d,46.0")
	assert.Contains(t, lines[1], "REASON: invalid column count")
}

func TestReadRowsSkipsHeader(t *testing.T) {
	input := "device_id,lat,lon,timestamp\nd1,46.0,7.0,2025-01-01 10:00:00\nd1,46.1,7.1,2025-01-01 10:00:30\n"
	rows, err := ReadRows(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"d1", "46.0", "7.0", "2025-01-01 10:00:00"}, rows[0])
}

func TestReadRowsEmptyInput(t *testing.T) {
	rows, err := ReadRows(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadFileMissing(t *testing.T) {
	rows, err := ReadFile("/nonexistent/gps.csv")
	require.NoError(t, err)
	assert.Empty(t, rows)
}
