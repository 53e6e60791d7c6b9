package analyzers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"api-insights/internal/models"
	"api-insights/internal/shared/configs"
)

// sizedRec builds a record where response size matters.
func sizedRec(t *testing.T, timestamp, endpoint string, responseTimeMs, responseSizeBytes float64) models.ParsedRecord {
	t.Helper()

	rec := parsedRec(t, timestamp, endpoint, responseTimeMs, 200, "u1")
	rec.ResponseSizeBytes = responseSizeBytes
	return rec
}

func TestMemoryTierCost_InclusiveBounds(t *testing.T) {
	t.Parallel()

	tiers := configs.DefaultAnalysisConfig().Cost.MemoryTiers

	assert.Equal(t, 0.00001, memoryTierCost(0, tiers))
	assert.Equal(t, 0.00001, memoryTierCost(1024, tiers))
	assert.Equal(t, 0.00005, memoryTierCost(1025, tiers))
	assert.Equal(t, 0.00005, memoryTierCost(10240, tiers))
	assert.Equal(t, 0.0001, memoryTierCost(10241, tiers))
}

func TestAnalyzeCosts(t *testing.T) {
	t.Parallel()

	// Inflated unit prices so component totals survive two-decimal rounding.
	cfg := configs.CostConfig{
		PerRequestUSD:     1,
		PerMillisecondUSD: 0.01,
		MemoryTiers: configs.MemoryTierConfig{
			SmallMaxBytes:  1024,
			SmallCostUSD:   0.5,
			MediumMaxBytes: 10240,
			MediumCostUSD:  2,
			LargeCostUSD:   5,
		},
	}

	records := []models.ParsedRecord{
		sizedRec(t, "2025-01-15T10:00:00Z", "/api/a", 100, 500),
		sizedRec(t, "2025-01-15T10:01:00Z", "/api/a", 300, 2000),
		sizedRec(t, "2025-01-15T10:02:00Z", "/api/b", 800, 20000),
	}
	stats := buildEndpointStats(records)

	analysis := analyzeCosts(records, stats, cfg)

	assert.Equal(t, 22.5, analysis.TotalCostUSD)
	assert.Equal(t, 3.0, analysis.CostBreakdown.RequestCosts)
	assert.Equal(t, 12.0, analysis.CostBreakdown.ExecutionCosts)
	assert.Equal(t, 7.5, analysis.CostBreakdown.MemoryCosts)

	// Highest spender first.
	require.Len(t, analysis.CostByEndpoint, 2)
	assert.Equal(t, models.EndpointCost{Endpoint: "/api/b", TotalCost: 14, CostPerRequest: 14}, analysis.CostByEndpoint[0])
	assert.Equal(t, models.EndpointCost{Endpoint: "/api/a", TotalCost: 8.5, CostPerRequest: 4.25}, analysis.CostByEndpoint[1])

	// Only /api/b averages above the slow cutoff: 20% of its 14.00 total.
	assert.Equal(t, 2.8, analysis.OptimizationPotentialUSD)
}

func TestAnalyzeCosts_DefaultPricesRoundToCents(t *testing.T) {
	t.Parallel()

	cfg := configs.DefaultAnalysisConfig().Cost

	records := []models.ParsedRecord{
		sizedRec(t, "2025-01-15T10:00:00Z", "/api/a", 0, 500),
	}
	analysis := analyzeCosts(records, buildEndpointStats(records), cfg)

	// 0.0001 + 0 + 0.00001 rounds away at two decimals.
	assert.Equal(t, 0.0, analysis.TotalCostUSD)
	require.Len(t, analysis.CostByEndpoint, 1)
	assert.Equal(t, 0.0, analysis.CostByEndpoint[0].TotalCost)
	assert.Equal(t, 0.0, analysis.OptimizationPotentialUSD)
}

func TestAnalyzeCosts_Empty(t *testing.T) {
	t.Parallel()

	analysis := analyzeCosts(nil, nil, configs.DefaultAnalysisConfig().Cost)

	assert.Equal(t, 0.0, analysis.TotalCostUSD)
	assert.NotNil(t, analysis.CostByEndpoint)
	assert.Empty(t, analysis.CostByEndpoint)
}
