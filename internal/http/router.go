package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"api-insights/internal/reports"
	"api-insights/internal/shared/loggers"
	"api-insights/internal/shared/metrics"
	"api-insights/internal/submissions"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(submissionService submissions.SubmissionService, reportingService reports.ReportingService, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	submitAnalysisHandler := NewSubmitAnalysisHandler(submissionService)
	getReportHandler := NewGetReportHandler(reportingService)

	// Routes
	router.Post("/analyses", errorHandlingAdapter(submitAnalysisHandler))
	router.Get("/analyses/{reportID}", errorHandlingAdapter(getReportHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
