package analyzers

import (
	"api-insights/internal/models"
	"api-insights/internal/shared/configs"
)

// detectPerformanceIssues scans endpoint stats for slow endpoints and high
// error rates. An endpoint may yield zero, one or two issues.
func detectPerformanceIssues(stats []models.EndpointStat, cfg configs.AnalysisConfig) []models.PerformanceIssue {
	issues := make([]models.PerformanceIssue, 0)

	for _, stat := range stats {
		if stat.AvgResponseTimeMs >= cfg.ResponseTimeThresholds.Medium {
			issues = append(issues, models.PerformanceIssue{
				Type:              models.IssueSlowEndpoint,
				Endpoint:          stat.Endpoint,
				AvgResponseTimeMs: stat.AvgResponseTimeMs,
				ThresholdMs:       cfg.ResponseTimeThresholds.Medium,
				Severity:          calculateSeverity(cfg.ResponseTimeThresholds, stat.AvgResponseTimeMs),
			})
		}

		if stat.RequestCount > 0 {
			errorRate := safeDivide(float64(stat.ErrorCount), float64(stat.RequestCount)) * 100
			if errorRate >= cfg.ErrorRateThresholds.Medium {
				issues = append(issues, models.PerformanceIssue{
					Type:                models.IssueHighErrorRate,
					Endpoint:            stat.Endpoint,
					ErrorRatePercentage: roundTwo(errorRate),
					Severity:            calculateSeverity(cfg.ErrorRateThresholds, errorRate),
				})
			}
		}
	}

	return issues
}
