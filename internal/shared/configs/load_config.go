package configs

import (
	"fmt"
	"strings"

	"api-insights/internal/shared/validators"

	"github.com/spf13/viper"
)

// LoadConfig reads configuration from file and validates it. The analysis
// thresholds fall back to DefaultAnalysisConfig values when the file omits
// them; server, log and storage sections are required.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setAnalysisDefaults(v)

	// Read from file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

// setAnalysisDefaults registers the default analysis thresholds so a config
// file only has to name the ones it changes.
func setAnalysisDefaults(v *viper.Viper) {
	def := DefaultAnalysisConfig()

	v.SetDefault("analysis.response_time_thresholds.medium", def.ResponseTimeThresholds.Medium)
	v.SetDefault("analysis.response_time_thresholds.high", def.ResponseTimeThresholds.High)
	v.SetDefault("analysis.response_time_thresholds.critical", def.ResponseTimeThresholds.Critical)

	v.SetDefault("analysis.error_rate_thresholds.medium", def.ErrorRateThresholds.Medium)
	v.SetDefault("analysis.error_rate_thresholds.high", def.ErrorRateThresholds.High)
	v.SetDefault("analysis.error_rate_thresholds.critical", def.ErrorRateThresholds.Critical)

	v.SetDefault("analysis.cost.per_request_usd", def.Cost.PerRequestUSD)
	v.SetDefault("analysis.cost.per_millisecond_usd", def.Cost.PerMillisecondUSD)
	v.SetDefault("analysis.cost.memory_tiers.small_max_bytes", def.Cost.MemoryTiers.SmallMaxBytes)
	v.SetDefault("analysis.cost.memory_tiers.small_cost_usd", def.Cost.MemoryTiers.SmallCostUSD)
	v.SetDefault("analysis.cost.memory_tiers.medium_max_bytes", def.Cost.MemoryTiers.MediumMaxBytes)
	v.SetDefault("analysis.cost.memory_tiers.medium_cost_usd", def.Cost.MemoryTiers.MediumCostUSD)
	v.SetDefault("analysis.cost.memory_tiers.large_cost_usd", def.Cost.MemoryTiers.LargeCostUSD)

	v.SetDefault("analysis.anomaly.request_spike_multiplier", def.Anomaly.RequestSpikeMultiplier)
	v.SetDefault("analysis.anomaly.severe_spike_multiplier", def.Anomaly.SevereSpikeMultiplier)
	v.SetDefault("analysis.anomaly.error_cluster_threshold", def.Anomaly.ErrorClusterThreshold)
	v.SetDefault("analysis.anomaly.error_cluster_critical_count", def.Anomaly.ErrorClusterCriticalCount)
	v.SetDefault("analysis.anomaly.error_cluster_window_minutes", def.Anomaly.ErrorClusterWindowMinutes)
	v.SetDefault("analysis.anomaly.user_dominance_share", def.Anomaly.UserDominanceShare)
	v.SetDefault("analysis.anomaly.max_anomalies", def.Anomaly.MaxAnomalies)

	v.SetDefault("analysis.caching.min_request_frequency", def.Caching.MinRequestFrequency)
	v.SetDefault("analysis.caching.default_ttl_minutes", def.Caching.DefaultTTLMinutes)
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path (e.g., "server.port")
	if e.StructNamespace() != "" {
		// Extract nested field path (e.g., "Config.Server.Port" -> "server.port")
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			// Skip "Config" prefix, convert to lowercase with dots
			fieldPath := strings.ToLower(strings.Join(parts[1:], "."))
			field = fieldPath
		}
	}

	var msg string
	switch tag {
	case "required":
		msg = fmt.Sprintf("%s (required)", field)
	case "min":
		msg = fmt.Sprintf("%s (min=%s)", field, e.Param())
	case "max":
		msg = fmt.Sprintf("%s (max=%s)", field, e.Param())
	case "gt":
		msg = fmt.Sprintf("%s (gt=%s)", field, e.Param())
	case "lte":
		msg = fmt.Sprintf("%s (lte=%s)", field, e.Param())
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}
