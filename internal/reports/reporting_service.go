package reports

import (
	"context"
	"errors"

	"api-insights/internal/analyzers"
	"api-insights/internal/events"
	"api-insights/internal/models"
	"api-insights/internal/shared/loggers"
	"api-insights/internal/shared/metrics"
	"api-insights/internal/shared/svcerrors"
	"api-insights/internal/stores"
)

//go:generate mockgen -source=reporting_service.go -destination=./mocks/reporting_service_mock.go -package=mocks
type ReportingService interface {
	// BuildReport analyzes the event's record batch and persists the result
	// under the event's report ID. Analysis itself cannot fail: degenerate
	// batches produce a report carrying `_error`, which is stored the same
	// way. Only the store can produce an error.
	BuildReport(ctx context.Context, event *events.AnalysisRequestedEvent) *svcerrors.ServiceError

	// GetReport returns the stored report, or a not-found error when the
	// report does not exist yet.
	GetReport(ctx context.Context, reportID string) (*models.AnalysisResult, error)
}

type reportingService struct {
	analysisService analyzers.AnalysisService
	reportStore     stores.AnalysisReportStore
}

func NewReportingService(analysisService analyzers.AnalysisService, reportStore stores.AnalysisReportStore) ReportingService {
	return &reportingService{analysisService: analysisService, reportStore: reportStore}
}

func (s *reportingService) BuildReport(ctx context.Context, event *events.AnalysisRequestedEvent) *svcerrors.ServiceError {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started building report %s: %d records", event.ReportID, len(event.Records))

	result := s.analysisService.Analyze(ctx, any(event.Records))

	if err := s.reportStore.Put(ctx, event.ReportID, result); err != nil {
		svcError := errInternalReportStoreFailed(err)
		metricReportBuiltTotal.WithLabelValues(svcError.Code).Inc()
		return svcError
	}

	metricReportBuiltTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return nil
}

func (s *reportingService) GetReport(ctx context.Context, reportID string) (*models.AnalysisResult, error) {
	result, err := s.reportStore.Get(ctx, reportID)
	if err != nil {
		if errors.Is(err, stores.ErrReportNotFound) {
			return nil, errReportNotFound(reportID, err)
		}
		return nil, errInternalReportStoreFailed(err)
	}
	return result, nil
}
