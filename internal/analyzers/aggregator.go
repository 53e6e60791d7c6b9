package analyzers

import (
	"sort"

	"api-insights/internal/models"
)

// endpointAccum accumulates one endpoint's raw values during a single pass
// over the time-sorted records. statusOrder remembers first-seen order so
// the most-common-status tie-break stays deterministic.
type endpointAccum struct {
	responseTimes []float64
	statusCounts  map[int]int
	statusOrder   []int
	requestCount  int
	errorCount    int
}

// buildSummary computes the batch-wide statistics. Records must already be
// sorted ascending by parsed timestamp.
func buildSummary(records []models.ParsedRecord) models.Summary {
	responseTimes := make([]float64, 0, len(records))
	errorCount := 0
	for _, rec := range records {
		responseTimes = append(responseTimes, rec.ResponseTimeMs)
		if isErrorStatus(rec.StatusCode) {
			errorCount++
		}
	}

	start := records[0].Timestamp
	end := records[len(records)-1].Timestamp

	return models.Summary{
		TotalRequests:       len(records),
		TimeRange:           models.TimeRange{Start: &start, End: &end},
		AvgResponseTimeMs:   roundTwo(safeMean(responseTimes)),
		ErrorRatePercentage: roundTwo(safeDivide(float64(errorCount), float64(len(records))) * 100),
	}
}

// buildEndpointStats computes per-endpoint aggregates, one entry per
// distinct endpoint, sorted by endpoint name.
func buildEndpointStats(records []models.ParsedRecord) []models.EndpointStat {
	accums := make(map[string]*endpointAccum)
	for _, rec := range records {
		accum, exists := accums[rec.Endpoint]
		if !exists {
			accum = &endpointAccum{statusCounts: make(map[int]int)}
			accums[rec.Endpoint] = accum
		}

		accum.responseTimes = append(accum.responseTimes, rec.ResponseTimeMs)
		if _, seen := accum.statusCounts[rec.StatusCode]; !seen {
			accum.statusOrder = append(accum.statusOrder, rec.StatusCode)
		}
		accum.statusCounts[rec.StatusCode]++
		accum.requestCount++
		if isErrorStatus(rec.StatusCode) {
			accum.errorCount++
		}
	}

	endpoints := make([]string, 0, len(accums))
	for endpoint := range accums {
		endpoints = append(endpoints, endpoint)
	}
	sort.Strings(endpoints)

	stats := make([]models.EndpointStat, 0, len(endpoints))
	for _, endpoint := range endpoints {
		accum := accums[endpoint]
		stats = append(stats, models.EndpointStat{
			Endpoint:          endpoint,
			RequestCount:      accum.requestCount,
			AvgResponseTimeMs: roundTwo(safeMean(accum.responseTimes)),
			SlowestRequestMs:  roundTwo(safeMax(accum.responseTimes)),
			FastestRequestMs:  roundTwo(safeMin(accum.responseTimes)),
			ErrorCount:        accum.errorCount,
			MostCommonStatus:  accum.mostCommonStatus(),
		})
	}

	return stats
}

// mostCommonStatus returns the first status code reaching the maximum count
// in first-seen order.
func (a *endpointAccum) mostCommonStatus() int {
	best := 0
	bestCount := -1
	for _, code := range a.statusOrder {
		if a.statusCounts[code] > bestCount {
			best = code
			bestCount = a.statusCounts[code]
		}
	}
	return best
}

// buildHourlyDistribution counts records per "HH:00" bucket.
func buildHourlyDistribution(records []models.ParsedRecord) map[string]int {
	distribution := make(map[string]int)
	for _, rec := range records {
		distribution[hourlyKey(rec.ParsedAt)]++
	}
	return distribution
}

// buildTopUsers returns the heaviest requesters, count descending, capped at
// limit. Ties keep first-seen input order.
func buildTopUsers(records []models.ParsedRecord, limit int) []models.UserRequestCount {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, rec := range records {
		if _, seen := counts[rec.UserID]; !seen {
			order = append(order, rec.UserID)
		}
		counts[rec.UserID]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > limit {
		order = order[:limit]
	}

	topUsers := make([]models.UserRequestCount, 0, len(order))
	for _, userID := range order {
		topUsers = append(topUsers, models.UserRequestCount{UserID: userID, RequestCount: counts[userID]})
	}
	return topUsers
}
