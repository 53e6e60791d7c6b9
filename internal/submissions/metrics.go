package submissions

import (
	"api-insights/internal/shared/metrics"
)

var (
	metricBatchSubmittedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSubmission,
			Name:      "batch_submitted_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
