package streams

import (
	"api-insights/internal/shared/metrics"
)

var (
	streamAnalysisJobs             = "analysis_jobs"
	metricAnalysisJobProducedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "analysis_job_published_total",
		},
		[]string{"stream_id"},
	)

	metricAnalysisJobConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "analysis_job_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)
)
