package models

import "time"

// LogRecord is a single validated API access log entry. Records arrive as
// untyped JSON objects and are only promoted to LogRecord after passing the
// schema checks (all eight fields present, correct types, non-negative
// numerics, parseable timestamp).
type LogRecord struct {
	Timestamp         string  `json:"timestamp"`
	Endpoint          string  `json:"endpoint"`
	Method            string  `json:"method"`
	ResponseTimeMs    float64 `json:"response_time_ms"`
	StatusCode        int     `json:"status_code"`
	UserID            string  `json:"user_id"`
	RequestSizeBytes  float64 `json:"request_size_bytes"`
	ResponseSizeBytes float64 `json:"response_size_bytes"`
}

// ParsedRecord is a LogRecord plus its parsed timestamp, used for time
// ordering and windowing. It only lives for the duration of one analysis.
type ParsedRecord struct {
	LogRecord
	ParsedAt time.Time
}
