package analyzers

import (
	"sort"

	"api-insights/internal/models"
	"api-insights/internal/shared/configs"
)

// Cache-hit heuristics. These assume the bulk of traffic to a hot endpoint
// is cacheable and saturate at a 89% hit rate.
const (
	cacheableShare           = 0.8
	cacheSavedShare          = 0.7
	maxCacheHitRate          = 89
	minReportedCacheHitRate  = 50
	latencySavedPerRequestMs = 100
)

// analyzeCachingOpportunities estimates, for each endpoint above the minimum
// traffic threshold, how much of its load a cache could absorb and what that
// would save. Opportunities are sorted by estimated savings descending.
func analyzeCachingOpportunities(stats []models.EndpointStat, cfg configs.AnalysisConfig) models.CachingReport {
	opportunities := make([]models.CachingOpportunity, 0)

	for _, stat := range stats {
		if stat.RequestCount < cfg.Caching.MinRequestFrequency {
			continue
		}

		hitRate := int(float64(stat.RequestCount) * cacheableShare)
		if hitRate > maxCacheHitRate {
			hitRate = maxCacheHitRate
		}
		if hitRate <= minReportedCacheHitRate {
			continue
		}

		requestsSaved := int(float64(stat.RequestCount) * cacheSavedShare)
		costSavings := roundTwo(float64(requestsSaved) * cfg.Cost.PerRequestUSD)

		confidence := "medium"
		if stat.ErrorCount == 0 {
			confidence = "high"
		}

		opportunities = append(opportunities, models.CachingOpportunity{
			Endpoint:                 stat.Endpoint,
			PotentialCacheHitRate:    hitRate,
			CurrentRequests:          stat.RequestCount,
			PotentialRequestsSaved:   requestsSaved,
			EstimatedCostSavingsUSD:  costSavings,
			RecommendedTTLMinutes:    cfg.Caching.DefaultTTLMinutes,
			RecommendationConfidence: confidence,
		})
	}

	sort.SliceStable(opportunities, func(i, j int) bool {
		return opportunities[i].EstimatedCostSavingsUSD > opportunities[j].EstimatedCostSavingsUSD
	})

	var requestsEliminated, improvementMs int
	var savingsSum float64
	for _, opp := range opportunities {
		requestsEliminated += opp.PotentialRequestsSaved
		savingsSum += opp.EstimatedCostSavingsUSD
		improvementMs += opp.PotentialRequestsSaved * latencySavedPerRequestMs
	}

	return models.CachingReport{
		CachingOpportunities: opportunities,
		TotalPotentialSavings: models.PotentialSavings{
			RequestsEliminated:       requestsEliminated,
			CostSavingsUSD:           roundTwo(savingsSum),
			PerformanceImprovementMs: improvementMs,
		},
	}
}
