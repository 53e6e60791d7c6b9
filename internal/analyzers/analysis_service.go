package analyzers

import (
	"context"
	"fmt"
	"sort"

	"api-insights/internal/models"
	"api-insights/internal/shared/configs"
	"api-insights/internal/shared/loggers"
	"api-insights/internal/shared/metrics"
)

const topUserLimit = 5

// Stable reason codes for degenerate results, used as metric labels only;
// the analysis itself never returns an error.
const (
	reasonInvalidInput    = "ANL_1000"
	reasonEmptyInput      = "ANL_1001"
	reasonNoValidRecords  = "ANL_1002"
	reasonTimestampsBroke = "ANL_1003"
)

//go:generate mockgen -source=analysis_service.go -destination=./mocks/analysis_service_mock.go -package=mocks
type AnalysisService interface {
	// Analyze runs the full pipeline over a decoded record sequence and
	// always returns a structurally complete result. Degenerate inputs
	// (not a list, empty, nothing valid) yield a zero-valued result with
	// the `_error` field set instead of an error.
	Analyze(ctx context.Context, input any) *models.AnalysisResult
}

type analysisService struct {
	cfg configs.AnalysisConfig
}

func NewAnalysisService(cfg configs.AnalysisConfig) AnalysisService {
	return &analysisService{cfg: cfg}
}

func (s *analysisService) Analyze(ctx context.Context, input any) *models.AnalysisResult {
	logger := loggers.Ctx(ctx)

	rawRecords, ok := input.([]any)
	if !ok {
		metricAnalysisCompletedTotal.WithLabelValues(reasonInvalidInput).Inc()
		return models.NewEmptyAnalysisResult("Invalid input: logs must be a list")
	}
	if len(rawRecords) == 0 {
		metricAnalysisCompletedTotal.WithLabelValues(reasonEmptyInput).Inc()
		return models.NewEmptyAnalysisResult("No logs provided")
	}

	validRecords := make([]models.LogRecord, 0, len(rawRecords))
	for _, raw := range rawRecords {
		if rec, valid := parseRecord(raw); valid {
			validRecords = append(validRecords, rec)
		}
	}
	invalidCount := len(rawRecords) - len(validRecords)
	if invalidCount > 0 {
		metricRecordsRejectedTotal.Add(float64(invalidCount))
	}

	if len(validRecords) == 0 {
		result := models.NewEmptyAnalysisResult("No valid log entries found")
		result.Metadata = &models.BatchMetadata{
			TotalLogEntries: len(rawRecords),
			ValidEntries:    0,
			InvalidEntries:  invalidCount,
		}
		metricAnalysisCompletedTotal.WithLabelValues(reasonNoValidRecords).Inc()
		return result
	}

	parsed := make([]models.ParsedRecord, 0, len(validRecords))
	for _, rec := range validRecords {
		ts, err := parseTimestamp(rec.Timestamp)
		if err != nil {
			// Validation already parsed every timestamp, so this only
			// fires if the two parsers ever diverge.
			metricAnalysisCompletedTotal.WithLabelValues(reasonTimestampsBroke).Inc()
			return models.NewEmptyAnalysisResult(fmt.Sprintf("Error parsing timestamps: %v", err))
		}
		parsed = append(parsed, models.ParsedRecord{LogRecord: rec, ParsedAt: ts})
	}

	sort.SliceStable(parsed, func(i, j int) bool {
		return parsed[i].ParsedAt.Before(parsed[j].ParsedAt)
	})

	summary := buildSummary(parsed)
	endpointStats := buildEndpointStats(parsed)
	performanceIssues := detectPerformanceIssues(endpointStats, s.cfg)

	result := &models.AnalysisResult{
		Summary:              summary,
		EndpointStats:        endpointStats,
		PerformanceIssues:    performanceIssues,
		Recommendations:      generateRecommendations(endpointStats, performanceIssues),
		HourlyDistribution:   buildHourlyDistribution(parsed),
		TopUsersByRequests:   buildTopUsers(parsed, topUserLimit),
		CostAnalysis:         analyzeCosts(parsed, endpointStats, s.cfg.Cost),
		Anomalies:            detectAnomalies(parsed, s.cfg.Anomaly),
		CachingOpportunities: analyzeCachingOpportunities(endpointStats, s.cfg),
	}

	if invalidCount > 0 {
		result.Metadata = &models.BatchMetadata{
			TotalLogEntries: len(rawRecords),
			ValidEntries:    len(validRecords),
			InvalidEntries:  invalidCount,
		}
	}

	logger.Debug().Msgf("analysis completed: %d valid records, %d rejected, %d endpoints, %d anomalies",
		len(validRecords), invalidCount, len(endpointStats), len(result.Anomalies))
	metricAnalysisCompletedTotal.WithLabelValues(metrics.ValueNoError).Inc()

	return result
}
