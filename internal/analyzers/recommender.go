package analyzers

import (
	"fmt"
	"strconv"
	"strings"

	"api-insights/internal/models"
)

const (
	maxRecommendations = 10

	// A deliberately rougher cache-potential estimate than the caching
	// analyzer's; the two heuristics are independent and not reconciled.
	recommendCacheableShare = 0.2
	recommendMinRequests    = 100
	recommendMinPotential   = 50
	recommendMaxPotential   = 89
)

// generateRecommendations renders a flat ordered list of human-readable
// suggestions: caching candidates first, then performance issues in
// detection order. Capped at maxRecommendations.
func generateRecommendations(stats []models.EndpointStat, issues []models.PerformanceIssue) []string {
	recommendations := make([]string, 0)

	for _, stat := range stats {
		if stat.RequestCount <= recommendMinRequests {
			continue
		}
		cachePotential := float64(stat.RequestCount) * recommendCacheableShare
		if cachePotential > recommendMaxPotential {
			cachePotential = recommendMaxPotential
		}
		if cachePotential > recommendMinPotential {
			recommendations = append(recommendations, fmt.Sprintf(
				"Consider caching for %s (%d requests, %d%% cache-hit potential)",
				stat.Endpoint, stat.RequestCount, int(cachePotential)))
		}
	}

	for _, issue := range issues {
		switch issue.Type {
		case models.IssueSlowEndpoint:
			recommendations = append(recommendations, fmt.Sprintf(
				"Investigate %s performance (avg %sms exceeds %sms threshold)",
				issue.Endpoint, decimalString(issue.AvgResponseTimeMs),
				strconv.FormatFloat(issue.ThresholdMs, 'f', -1, 64)))
		case models.IssueHighErrorRate:
			msg := fmt.Sprintf("Alert: %s has %s%% error rate",
				issue.Endpoint, decimalString(issue.ErrorRatePercentage))
			if issue.Severity == models.SeverityCritical {
				msg = "CRITICAL: " + msg
			}
			recommendations = append(recommendations, msg)
		}
	}

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations
}

// decimalString renders a measured value with minimal digits but always at
// least one decimal place, so whole-number averages read "570.0", not "570".
func decimalString(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
