package analyzers

import (
	"math"

	"api-insights/internal/models"
)

// parseRecord converts one decoded JSON value into a LogRecord, reporting
// whether it satisfies the required schema: a JSON object with all eight
// fields present and correctly typed, non-negative numerics, and a
// parseable timestamp. Rejection never errors; the record is just dropped.
func parseRecord(raw any) (models.LogRecord, bool) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return models.LogRecord{}, false
	}

	var rec models.LogRecord

	if rec.Timestamp, ok = stringField(obj, "timestamp"); !ok {
		return models.LogRecord{}, false
	}
	if rec.Endpoint, ok = stringField(obj, "endpoint"); !ok {
		return models.LogRecord{}, false
	}
	if rec.Method, ok = stringField(obj, "method"); !ok {
		return models.LogRecord{}, false
	}
	if rec.ResponseTimeMs, ok = numberField(obj, "response_time_ms"); !ok {
		return models.LogRecord{}, false
	}
	if rec.StatusCode, ok = intField(obj, "status_code"); !ok {
		return models.LogRecord{}, false
	}
	if rec.UserID, ok = stringField(obj, "user_id"); !ok {
		return models.LogRecord{}, false
	}
	if rec.RequestSizeBytes, ok = numberField(obj, "request_size_bytes"); !ok {
		return models.LogRecord{}, false
	}
	if rec.ResponseSizeBytes, ok = numberField(obj, "response_size_bytes"); !ok {
		return models.LogRecord{}, false
	}

	if _, err := parseTimestamp(rec.Timestamp); err != nil {
		return models.LogRecord{}, false
	}

	return rec, true
}

// IsValidRecord reports whether raw satisfies the log record schema.
// Pure predicate, no side effects.
func IsValidRecord(raw any) bool {
	_, ok := parseRecord(raw)
	return ok
}

func stringField(obj map[string]any, field string) (string, bool) {
	v, present := obj[field]
	if !present {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// numberField accepts integer or floating-point values, rejecting negatives.
// Decoded JSON yields float64, but int is accepted too for callers that
// build record maps directly.
func numberField(obj map[string]any, field string) (float64, bool) {
	v, present := obj[field]
	if !present {
		return 0, false
	}
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	default:
		return 0, false
	}
	if f < 0 {
		return 0, false
	}
	return f, true
}

// intField requires a non-negative integral value. JSON numbers decode as
// float64, so a float is accepted only when it carries no fractional part.
func intField(obj map[string]any, field string) (int, bool) {
	v, present := obj[field]
	if !present {
		return 0, false
	}
	var i int
	switch n := v.(type) {
	case int:
		i = n
	case int64:
		i = int(n)
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		i = int(n)
	default:
		return 0, false
	}
	if i < 0 {
		return 0, false
	}
	return i, true
}
