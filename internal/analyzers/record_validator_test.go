package analyzers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecordMap() map[string]any {
	return map[string]any{
		"timestamp":           "2025-01-15T10:00:00Z",
		"endpoint":            "/api/users",
		"method":              "GET",
		"response_time_ms":    145.5,
		"status_code":         float64(200),
		"user_id":             "user-1",
		"request_size_bytes":  float64(256),
		"response_size_bytes": float64(1024),
	}
}

func TestParseRecord_Valid(t *testing.T) {
	t.Parallel()

	rec, ok := parseRecord(validRecordMap())
	require.True(t, ok)
	assert.Equal(t, "/api/users", rec.Endpoint)
	assert.Equal(t, "GET", rec.Method)
	assert.Equal(t, 145.5, rec.ResponseTimeMs)
	assert.Equal(t, 200, rec.StatusCode)
	assert.Equal(t, "user-1", rec.UserID)
	assert.Equal(t, 256.0, rec.RequestSizeBytes)
	assert.Equal(t, 1024.0, rec.ResponseSizeBytes)
}

func TestParseRecord_RejectsNonObject(t *testing.T) {
	t.Parallel()

	for _, raw := range []any{nil, "a string", 42.0, []any{}, true} {
		assert.False(t, IsValidRecord(raw), "input %v should be rejected", raw)
	}
}

func TestParseRecord_RejectsMissingField(t *testing.T) {
	t.Parallel()

	for field := range validRecordMap() {
		obj := validRecordMap()
		delete(obj, field)
		assert.False(t, IsValidRecord(obj), "missing %q should be rejected", field)
	}
}

func TestParseRecord_RejectsWrongTypes(t *testing.T) {
	t.Parallel()

	cases := map[string]any{
		"timestamp":           123.0,
		"endpoint":            nil,
		"method":              7.0,
		"response_time_ms":    "145",
		"status_code":         "200",
		"user_id":             99.0,
		"request_size_bytes":  "256",
		"response_size_bytes": true,
	}
	for field, badValue := range cases {
		obj := validRecordMap()
		obj[field] = badValue
		assert.False(t, IsValidRecord(obj), "field %q with %v should be rejected", field, badValue)
	}
}

func TestParseRecord_RejectsNegativeNumerics(t *testing.T) {
	t.Parallel()

	for _, field := range []string{"response_time_ms", "status_code", "request_size_bytes", "response_size_bytes"} {
		obj := validRecordMap()
		obj[field] = float64(-1)
		assert.False(t, IsValidRecord(obj), "negative %q should be rejected", field)
	}
}

func TestParseRecord_RejectsFractionalStatusCode(t *testing.T) {
	t.Parallel()

	obj := validRecordMap()
	obj["status_code"] = 200.5
	assert.False(t, IsValidRecord(obj))

	// An integral float is what any JSON decoder produces for 200
	obj["status_code"] = 200.0
	assert.True(t, IsValidRecord(obj))
}

func TestParseRecord_RejectsUnparseableTimestamp(t *testing.T) {
	t.Parallel()

	obj := validRecordMap()
	obj["timestamp"] = "yesterday at noon"
	assert.False(t, IsValidRecord(obj))
}

func TestParseRecord_AcceptsIntegerNumerics(t *testing.T) {
	t.Parallel()

	obj := validRecordMap()
	obj["response_time_ms"] = 145
	obj["status_code"] = 200
	obj["request_size_bytes"] = 256
	obj["response_size_bytes"] = 1024

	rec, ok := parseRecord(obj)
	require.True(t, ok)
	assert.Equal(t, 145.0, rec.ResponseTimeMs)
	assert.Equal(t, 200, rec.StatusCode)
}

func TestParseRecord_ExtraFieldsIgnored(t *testing.T) {
	t.Parallel()

	obj := validRecordMap()
	obj["region"] = "eu-west-1"
	assert.True(t, IsValidRecord(obj))
}
