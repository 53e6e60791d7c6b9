package analyzers

import (
	"api-insights/internal/models"
	"api-insights/internal/shared/configs"
)

// rateSample is one spike-detection observation for an endpoint: the total
// record count of a window the endpoint appeared in. The sample deliberately
// counts the whole window across all endpoints, not just the endpoint's own
// share; that conflation reproduces the observed detector behavior.
// TODO: revisit whether spike samples should count only the endpoint's own
// records per window instead of the window total.
type rateSample struct {
	windowKey string
	rate      int
}

// detectAnomalies runs the three independent checks in order (spikes, error
// clusters, user dominance) and truncates the concatenated results to the
// configured cap.
func detectAnomalies(records []models.ParsedRecord, cfg configs.AnomalyConfig) []models.Anomaly {
	anomalies := make([]models.Anomaly, 0)

	buckets := bucketByMinutes(records, cfg.ErrorClusterWindowMinutes)

	anomalies = append(anomalies, detectRequestSpikes(buckets, cfg)...)
	anomalies = append(anomalies, detectErrorClusters(buckets, cfg)...)
	anomalies = append(anomalies, detectUserDominance(records, cfg)...)

	if len(anomalies) > cfg.MaxAnomalies {
		anomalies = anomalies[:cfg.MaxAnomalies]
	}
	return anomalies
}

// detectRequestSpikes flags windows whose total traffic exceeds an
// endpoint's mean observed rate by the spike multiplier. Endpoints with a
// single sample have no baseline and are skipped.
func detectRequestSpikes(buckets []windowBucket, cfg configs.AnomalyConfig) []models.Anomaly {
	samples := make(map[string][]rateSample)
	endpointOrder := make([]string, 0)

	for _, bucket := range buckets {
		seen := make(map[string]bool)
		for _, rec := range bucket.records {
			if seen[rec.Endpoint] {
				continue
			}
			seen[rec.Endpoint] = true
			if _, known := samples[rec.Endpoint]; !known {
				endpointOrder = append(endpointOrder, rec.Endpoint)
			}
			samples[rec.Endpoint] = append(samples[rec.Endpoint], rateSample{
				windowKey: bucket.key,
				rate:      len(bucket.records),
			})
		}
	}

	spikes := make([]models.Anomaly, 0)
	for _, endpoint := range endpointOrder {
		endpointSamples := samples[endpoint]
		if len(endpointSamples) <= 1 {
			continue
		}

		var sum float64
		for _, sample := range endpointSamples {
			sum += float64(sample.rate)
		}
		meanRate := sum / float64(len(endpointSamples))

		for _, sample := range endpointSamples {
			if float64(sample.rate) <= meanRate*cfg.RequestSpikeMultiplier {
				continue
			}
			severity := models.SeverityMedium
			if float64(sample.rate) > meanRate*cfg.SevereSpikeMultiplier {
				severity = models.SeverityHigh
			}
			spikes = append(spikes, models.Anomaly{
				Type:       models.AnomalyRequestSpike,
				Endpoint:   endpoint,
				Timestamp:  sample.windowKey,
				NormalRate: int(meanRate),
				ActualRate: sample.rate,
				Severity:   severity,
			})
		}
	}
	return spikes
}

// detectErrorClusters flags windows with more error responses than the
// cluster threshold, tagged with the window's first record's endpoint.
func detectErrorClusters(buckets []windowBucket, cfg configs.AnomalyConfig) []models.Anomaly {
	clusters := make([]models.Anomaly, 0)
	for _, bucket := range buckets {
		errorCount := 0
		for _, rec := range bucket.records {
			if isErrorStatus(rec.StatusCode) {
				errorCount++
			}
		}
		if errorCount <= cfg.ErrorClusterThreshold {
			continue
		}

		severity := models.SeverityHigh
		if errorCount > cfg.ErrorClusterCriticalCount {
			severity = models.SeverityCritical
		}
		clusters = append(clusters, models.Anomaly{
			Type:       models.AnomalyErrorCluster,
			Endpoint:   bucket.records[0].Endpoint,
			TimeWindow: bucket.key,
			ErrorCount: errorCount,
			Severity:   severity,
		})
	}
	return clusters
}

// detectUserDominance flags users owning more than the configured share of
// the whole batch.
func detectUserDominance(records []models.ParsedRecord, cfg configs.AnomalyConfig) []models.Anomaly {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, rec := range records {
		if _, seen := counts[rec.UserID]; !seen {
			order = append(order, rec.UserID)
		}
		counts[rec.UserID]++
	}

	total := len(records)
	dominance := make([]models.Anomaly, 0)
	for _, userID := range order {
		count := counts[userID]
		if float64(count) <= float64(total)*cfg.UserDominanceShare {
			continue
		}
		dominance = append(dominance, models.Anomaly{
			Type:              models.AnomalyUserDominance,
			UserID:            userID,
			RequestPercentage: roundTwo(safeDivide(float64(count), float64(total)) * 100),
			Severity:          models.SeverityHigh,
		})
	}
	return dominance
}
