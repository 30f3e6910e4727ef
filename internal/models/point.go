package models

// GpsPoint represents a single validated GPS fix
type GpsPoint struct {
	DeviceID  string  `json:"device_id"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	Timestamp int64   `json:"timestamp"` // Unix timestamp in seconds
}

// RejectReason classifies why a raw row was rejected
type RejectReason string

const (
	// ReasonInvalidColumnCount marks rows with fewer than the expected fields
	ReasonInvalidColumnCount RejectReason = "INVALID_COLUMN_COUNT"
	// ReasonInvalidCoordinateOrTimestamp marks rows whose lat/lon/timestamp
	// failed parsing or range validation
	ReasonInvalidCoordinateOrTimestamp RejectReason = "INVALID_COORDINATE_OR_TIMESTAMP"
)

// Description returns a human-readable form of the reason, used in the reject log
func (r RejectReason) Description() string {
	switch r {
	case ReasonInvalidColumnCount:
		return "invalid column count"
	case ReasonInvalidCoordinateOrTimestamp:
		return "invalid coordinate or timestamp"
	default:
		return string(r)
	}
}

// RejectRecord captures one raw row that failed validation
type RejectRecord struct {
	RawRow   string       `json:"raw_row"` // original field values joined by comma
	Reason   RejectReason `json:"reason"`
	LoggedAt int64        `json:"logged_at"` // Unix timestamp of the processing run
}
