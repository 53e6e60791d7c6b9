package analyzers

import (
	"math"

	"api-insights/internal/models"
	"api-insights/internal/shared/configs"
)

// statusClass buckets an HTTP status code for error-rate computation.
type statusClass int

const (
	statusSuccess statusClass = iota
	statusError
	statusOther
)

func classifyStatus(code int) statusClass {
	switch {
	case code >= 400 && code <= 599:
		return statusError
	case code >= 200 && code <= 299:
		return statusSuccess
	default:
		return statusOther
	}
}

func isErrorStatus(code int) bool {
	return classifyStatus(code) == statusError
}

// calculateSeverity classifies value against a threshold triple, highest
// matching tier first.
func calculateSeverity(thresholds configs.ThresholdTriple, value float64) models.Severity {
	switch {
	case value >= thresholds.Critical:
		return models.SeverityCritical
	case value >= thresholds.High:
		return models.SeverityHigh
	case value >= thresholds.Medium:
		return models.SeverityMedium
	default:
		return models.SeverityLow
	}
}

// The safe* helpers return 0 for empty input or zero denominators. The
// analysis must never fail just because a bucket is empty.

func safeMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func safeMax(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

func safeMin(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

func safeDivide(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

func roundTwo(value float64) float64 {
	return math.Round(value*100) / 100
}
