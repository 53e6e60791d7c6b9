package analyzers

import (
	"sort"

	"api-insights/internal/models"
	"api-insights/internal/shared/configs"
)

const (
	// Savings heuristics: endpoints averaging above the cutoff are assumed
	// to have a fifth of their cost recoverable through optimization.
	slowEndpointCostCutoffMs = 500
	optimizationSavingsRate  = 0.2
)

// analyzeCosts estimates spend over the full batch and per endpoint from
// request counts, execution time and tiered response sizes.
func analyzeCosts(records []models.ParsedRecord, stats []models.EndpointStat, cfg configs.CostConfig) models.CostAnalysis {
	requestCosts := float64(len(records)) * cfg.PerRequestUSD

	var totalExecutionMs float64
	var memoryCosts float64
	byEndpoint := make(map[string][]models.ParsedRecord)
	for _, rec := range records {
		totalExecutionMs += rec.ResponseTimeMs
		memoryCosts += memoryTierCost(rec.ResponseSizeBytes, cfg.MemoryTiers)
		byEndpoint[rec.Endpoint] = append(byEndpoint[rec.Endpoint], rec)
	}
	executionCosts := totalExecutionMs * cfg.PerMillisecondUSD

	totalCost := requestCosts + executionCosts + memoryCosts

	// Per-endpoint costs, initially in endpoint-name order from stats.
	avgByEndpoint := make(map[string]float64, len(stats))
	costByEndpoint := make([]models.EndpointCost, 0, len(stats))
	for _, stat := range stats {
		avgByEndpoint[stat.Endpoint] = stat.AvgResponseTimeMs

		epRequestCost := float64(len(byEndpoint[stat.Endpoint])) * cfg.PerRequestUSD
		var epExecutionCost, epMemoryCost float64
		for _, rec := range byEndpoint[stat.Endpoint] {
			epExecutionCost += rec.ResponseTimeMs * cfg.PerMillisecondUSD
			epMemoryCost += memoryTierCost(rec.ResponseSizeBytes, cfg.MemoryTiers)
		}
		epTotal := epRequestCost + epExecutionCost + epMemoryCost

		costByEndpoint = append(costByEndpoint, models.EndpointCost{
			Endpoint:       stat.Endpoint,
			TotalCost:      roundTwo(epTotal),
			CostPerRequest: roundTwo(safeDivide(epTotal, float64(stat.RequestCount))),
		})
	}

	var optimizationPotential float64
	for _, cost := range costByEndpoint {
		if avgByEndpoint[cost.Endpoint] > slowEndpointCostCutoffMs {
			optimizationPotential += cost.TotalCost * optimizationSavingsRate
		}
	}

	// Highest spenders first; name order breaks ties.
	sort.SliceStable(costByEndpoint, func(i, j int) bool {
		return costByEndpoint[i].TotalCost > costByEndpoint[j].TotalCost
	})

	return models.CostAnalysis{
		TotalCostUSD: roundTwo(totalCost),
		CostBreakdown: models.CostBreakdown{
			RequestCosts:   roundTwo(requestCosts),
			ExecutionCosts: roundTwo(executionCosts),
			MemoryCosts:    roundTwo(memoryCosts),
		},
		CostByEndpoint:           costByEndpoint,
		OptimizationPotentialUSD: roundTwo(optimizationPotential),
	}
}

// memoryTierCost prices a response size into its tier, smallest first,
// inclusive upper bounds.
func memoryTierCost(sizeBytes float64, tiers configs.MemoryTierConfig) float64 {
	switch {
	case sizeBytes <= tiers.SmallMaxBytes:
		return tiers.SmallCostUSD
	case sizeBytes <= tiers.MediumMaxBytes:
		return tiers.MediumCostUSD
	default:
		return tiers.LargeCostUSD
	}
}
