package analyzers

import (
	"api-insights/internal/shared/metrics"
)

var (
	metricAnalysisCompletedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalysis,
			Name:      "analysis_completed_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricRecordsRejectedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalysis,
			Name:      "records_rejected_total",
		},
	)
)
