package models

// Performance issue types.
const (
	IssueSlowEndpoint  = "slow_endpoint"
	IssueHighErrorRate = "high_error_rate"
)

// Anomaly types.
const (
	AnomalyRequestSpike  = "request_spike"
	AnomalyErrorCluster  = "error_cluster"
	AnomalyUserDominance = "user_dominance"
)

// AnalysisResult is the root aggregate produced by one analysis run. It is
// constructed once and never mutated afterwards. Field names follow the
// external report contract; `_error` and `_metadata` are only present for
// degenerate and partially-valid inputs respectively.
//
// Example JSON (abridged):
//
//	{
//	  "summary": {
//	    "total_requests": 1200,
//	    "time_range": {"start": "2025-01-15T10:00:00Z", "end": "2025-01-15T11:30:00Z"},
//	    "avg_response_time_ms": 182.41,
//	    "error_rate_percentage": 3.25
//	  },
//	  "endpoint_stats": [ ... ],
//	  "performance_issues": [ ... ],
//	  "recommendations": [ "Consider caching for /api/users (800 requests, 89% cache-hit potential)" ],
//	  "hourly_distribution": {"10:00": 700, "11:00": 500},
//	  "top_users_by_requests": [ {"user_id": "user-1", "request_count": 301} ],
//	  "cost_analysis": { ... },
//	  "anomalies": [ ... ],
//	  "caching_opportunities": { ... },
//	  "_metadata": {"total_log_entries": 1250, "valid_entries": 1200, "invalid_entries": 50}
//	}
type AnalysisResult struct {
	Summary              Summary            `json:"summary"`
	EndpointStats        []EndpointStat     `json:"endpoint_stats"`
	PerformanceIssues    []PerformanceIssue `json:"performance_issues"`
	Recommendations      []string           `json:"recommendations"`
	HourlyDistribution   map[string]int     `json:"hourly_distribution"`
	TopUsersByRequests   []UserRequestCount `json:"top_users_by_requests"`
	CostAnalysis         CostAnalysis       `json:"cost_analysis"`
	Anomalies            []Anomaly          `json:"anomalies"`
	CachingOpportunities CachingReport      `json:"caching_opportunities"`
	Error                string             `json:"_error,omitempty"`
	Metadata             *BatchMetadata     `json:"_metadata,omitempty"`
}

// Summary holds batch-wide statistics over the valid records.
type Summary struct {
	TotalRequests       int       `json:"total_requests"`
	TimeRange           TimeRange `json:"time_range"`
	AvgResponseTimeMs   float64   `json:"avg_response_time_ms"`
	ErrorRatePercentage float64   `json:"error_rate_percentage"`
}

// TimeRange is the first and last record timestamp of the sorted batch.
// Both are null for empty results.
type TimeRange struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

// EndpointStat is the per-endpoint aggregate, one entry per distinct
// endpoint, sorted by endpoint name.
type EndpointStat struct {
	Endpoint          string  `json:"endpoint"`
	RequestCount      int     `json:"request_count"`
	AvgResponseTimeMs float64 `json:"avg_response_time_ms"`
	SlowestRequestMs  float64 `json:"slowest_request_ms"`
	FastestRequestMs  float64 `json:"fastest_request_ms"`
	ErrorCount        int     `json:"error_count"`
	MostCommonStatus  int     `json:"most_common_status"`
}

// PerformanceIssue is a detected slow endpoint or high error rate. The
// populated measurement fields depend on Type.
type PerformanceIssue struct {
	Type                string   `json:"type"`
	Endpoint            string   `json:"endpoint"`
	AvgResponseTimeMs   float64  `json:"avg_response_time_ms,omitempty"`
	ThresholdMs         float64  `json:"threshold_ms,omitempty"`
	ErrorRatePercentage float64  `json:"error_rate_percentage,omitempty"`
	Severity            Severity `json:"severity"`
}

// UserRequestCount is one entry of the top-users view.
type UserRequestCount struct {
	UserID       string `json:"user_id"`
	RequestCount int    `json:"request_count"`
}

// CostAnalysis is the estimated spend derived from request counts,
// execution time and response sizes at fixed unit prices.
type CostAnalysis struct {
	TotalCostUSD             float64        `json:"total_cost_usd"`
	CostBreakdown            CostBreakdown  `json:"cost_breakdown"`
	CostByEndpoint           []EndpointCost `json:"cost_by_endpoint"`
	OptimizationPotentialUSD float64        `json:"optimization_potential_usd"`
}

// CostBreakdown splits the total cost into its three components.
type CostBreakdown struct {
	RequestCosts   float64 `json:"request_costs"`
	ExecutionCosts float64 `json:"execution_costs"`
	MemoryCosts    float64 `json:"memory_costs"`
}

// EndpointCost is the per-endpoint cost entry, sorted by total cost
// descending.
type EndpointCost struct {
	Endpoint       string  `json:"endpoint"`
	TotalCost      float64 `json:"total_cost"`
	CostPerRequest float64 `json:"cost_per_request"`
}

// Anomaly is a detected request spike, error cluster or user dominance.
// The populated payload fields depend on Type.
type Anomaly struct {
	Type              string   `json:"type"`
	Endpoint          string   `json:"endpoint,omitempty"`
	Timestamp         string   `json:"timestamp,omitempty"`
	NormalRate        int      `json:"normal_rate,omitempty"`
	ActualRate        int      `json:"actual_rate,omitempty"`
	TimeWindow        string   `json:"time_window,omitempty"`
	ErrorCount        int      `json:"error_count,omitempty"`
	UserID            string   `json:"user_id,omitempty"`
	RequestPercentage float64  `json:"request_percentage,omitempty"`
	Severity          Severity `json:"severity"`
}

// CachingReport groups the per-endpoint caching opportunities with the
// aggregate savings estimate.
type CachingReport struct {
	CachingOpportunities  []CachingOpportunity `json:"caching_opportunities"`
	TotalPotentialSavings PotentialSavings     `json:"total_potential_savings"`
}

// CachingOpportunity is one endpoint's estimated benefit from caching.
type CachingOpportunity struct {
	Endpoint                 string  `json:"endpoint"`
	PotentialCacheHitRate    int     `json:"potential_cache_hit_rate"`
	CurrentRequests          int     `json:"current_requests"`
	PotentialRequestsSaved   int     `json:"potential_requests_saved"`
	EstimatedCostSavingsUSD  float64 `json:"estimated_cost_savings_usd"`
	RecommendedTTLMinutes    int     `json:"recommended_ttl_minutes"`
	RecommendationConfidence string  `json:"recommendation_confidence"`
}

// PotentialSavings is the aggregate over all caching opportunities.
type PotentialSavings struct {
	RequestsEliminated       int     `json:"requests_eliminated"`
	CostSavingsUSD           float64 `json:"cost_savings_usd"`
	PerformanceImprovementMs int     `json:"performance_improvement_ms"`
}

// BatchMetadata reports how many submitted records survived validation.
type BatchMetadata struct {
	TotalLogEntries int `json:"total_log_entries"`
	ValidEntries    int `json:"valid_entries"`
	InvalidEntries  int `json:"invalid_entries"`
}

// NewEmptyAnalysisResult returns a structurally complete, zero-valued result
// carrying errMsg. All collection fields are non-nil so the serialized form
// keeps empty arrays and objects instead of nulls.
func NewEmptyAnalysisResult(errMsg string) *AnalysisResult {
	return &AnalysisResult{
		Summary: Summary{
			TotalRequests:       0,
			TimeRange:           TimeRange{},
			AvgResponseTimeMs:   0,
			ErrorRatePercentage: 0,
		},
		EndpointStats:      []EndpointStat{},
		PerformanceIssues:  []PerformanceIssue{},
		Recommendations:    []string{},
		HourlyDistribution: map[string]int{},
		TopUsersByRequests: []UserRequestCount{},
		CostAnalysis: CostAnalysis{
			CostByEndpoint: []EndpointCost{},
		},
		Anomalies: []Anomaly{},
		CachingOpportunities: CachingReport{
			CachingOpportunities: []CachingOpportunity{},
		},
		Error: errMsg,
	}
}
