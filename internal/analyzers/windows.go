package analyzers

import (
	"sort"
	"time"

	"api-insights/internal/models"
)

// windowBucket is one fixed-size time bucket of records. Key is the bucket's
// window start formatted as RFC3339.
type windowBucket struct {
	key     string
	records []models.ParsedRecord
}

// bucketByMinutes groups records into fixed windows of windowMinutes,
// returning buckets ordered by window key. Record order within a bucket
// follows the (time-sorted) input.
func bucketByMinutes(records []models.ParsedRecord, windowMinutes int) []windowBucket {
	grouped := make(map[string][]models.ParsedRecord)
	keys := make([]string, 0)

	for _, rec := range records {
		key := windowStart(rec.ParsedAt, windowMinutes).Format(time.RFC3339)
		if _, exists := grouped[key]; !exists {
			keys = append(keys, key)
		}
		grouped[key] = append(grouped[key], rec)
	}

	sort.Strings(keys)

	buckets := make([]windowBucket, 0, len(keys))
	for _, key := range keys {
		buckets = append(buckets, windowBucket{key: key, records: grouped[key]})
	}
	return buckets
}

// windowStart floors t's minutes to the nearest multiple of windowMinutes
// and truncates seconds and sub-second precision. The record's own offset
// is kept, so Truncate on the absolute timeline would not be equivalent.
func windowStart(t time.Time, windowMinutes int) time.Time {
	return time.Date(
		t.Year(), t.Month(), t.Day(),
		t.Hour(), (t.Minute()/windowMinutes)*windowMinutes, 0, 0,
		t.Location(),
	)
}
