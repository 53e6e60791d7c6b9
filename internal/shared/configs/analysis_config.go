package configs

// AnalysisConfig carries the named thresholds and unit prices the analysis
// pipeline classifies against. It is an explicit value injected into the
// analysis service so tests can run with alternate thresholds.
type AnalysisConfig struct {
	ResponseTimeThresholds ThresholdTriple `mapstructure:"response_time_thresholds" validate:"required"` // milliseconds
	ErrorRateThresholds    ThresholdTriple `mapstructure:"error_rate_thresholds" validate:"required"`    // percentage
	Cost                   CostConfig      `mapstructure:"cost" validate:"required"`
	Anomaly                AnomalyConfig   `mapstructure:"anomaly" validate:"required"`
	Caching                CachingConfig   `mapstructure:"caching" validate:"required"`
}

// ThresholdTriple holds the medium/high/critical boundaries for one metric.
// Anything below Medium classifies as low.
type ThresholdTriple struct {
	Medium   float64 `mapstructure:"medium" validate:"required,gt=0"`
	High     float64 `mapstructure:"high" validate:"required,gt=0"`
	Critical float64 `mapstructure:"critical" validate:"required,gt=0"`
}

// CostConfig holds the unit prices (USD) for the cost estimator.
type CostConfig struct {
	PerRequestUSD     float64          `mapstructure:"per_request_usd" validate:"required,gt=0"`
	PerMillisecondUSD float64          `mapstructure:"per_millisecond_usd" validate:"required,gt=0"`
	MemoryTiers       MemoryTierConfig `mapstructure:"memory_tiers" validate:"required"`
}

// MemoryTierConfig prices a record's response size into three tiers. Tier
// bounds are inclusive and evaluated small-to-large, first match wins;
// anything above MediumMaxBytes is large.
type MemoryTierConfig struct {
	SmallMaxBytes  float64 `mapstructure:"small_max_bytes" validate:"required,gt=0"`
	SmallCostUSD   float64 `mapstructure:"small_cost_usd" validate:"required,gt=0"`
	MediumMaxBytes float64 `mapstructure:"medium_max_bytes" validate:"required,gt=0"`
	MediumCostUSD  float64 `mapstructure:"medium_cost_usd" validate:"required,gt=0"`
	LargeCostUSD   float64 `mapstructure:"large_cost_usd" validate:"required,gt=0"`
}

// AnomalyConfig holds the anomaly detector thresholds.
type AnomalyConfig struct {
	RequestSpikeMultiplier    float64 `mapstructure:"request_spike_multiplier" validate:"required,gt=0"`
	SevereSpikeMultiplier     float64 `mapstructure:"severe_spike_multiplier" validate:"required,gt=0"`
	ErrorClusterThreshold     int     `mapstructure:"error_cluster_threshold" validate:"required,min=1"`
	ErrorClusterCriticalCount int     `mapstructure:"error_cluster_critical_count" validate:"required,min=1"`
	ErrorClusterWindowMinutes int     `mapstructure:"error_cluster_window_minutes" validate:"required,min=1"`
	UserDominanceShare        float64 `mapstructure:"user_dominance_share" validate:"required,gt=0,lte=1"`
	MaxAnomalies              int     `mapstructure:"max_anomalies" validate:"required,min=1"`
}

// CachingConfig holds the caching-opportunity thresholds.
type CachingConfig struct {
	MinRequestFrequency int `mapstructure:"min_request_frequency" validate:"required,min=1"`
	DefaultTTLMinutes   int `mapstructure:"default_ttl_minutes" validate:"required,min=1"`
}

// DefaultAnalysisConfig returns the fixed default thresholds and unit prices.
// The CLI runs with these; the server config file may override any of them.
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		ResponseTimeThresholds: ThresholdTriple{Medium: 500, High: 1000, Critical: 2000},
		ErrorRateThresholds:    ThresholdTriple{Medium: 5, High: 10, Critical: 15},
		Cost: CostConfig{
			PerRequestUSD:     0.0001,
			PerMillisecondUSD: 0.000002,
			MemoryTiers: MemoryTierConfig{
				SmallMaxBytes:  1024,
				SmallCostUSD:   0.00001,
				MediumMaxBytes: 10240,
				MediumCostUSD:  0.00005,
				LargeCostUSD:   0.0001,
			},
		},
		Anomaly: AnomalyConfig{
			RequestSpikeMultiplier:    3,
			SevereSpikeMultiplier:     5,
			ErrorClusterThreshold:     10,
			ErrorClusterCriticalCount: 20,
			ErrorClusterWindowMinutes: 5,
			UserDominanceShare:        0.5,
			MaxAnomalies:              20,
		},
		Caching: CachingConfig{
			MinRequestFrequency: 100,
			DefaultTTLMinutes:   15,
		},
	}
}
