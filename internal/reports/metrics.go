package reports

import (
	"api-insights/internal/shared/metrics"
)

var (
	metricReportBuiltTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReporting,
			Name:      "report_built_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
