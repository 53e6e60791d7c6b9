package reports

import (
	"fmt"

	"api-insights/internal/shared/svcerrors"
)

// ReportingService errors
const (
	codeReportNotFound = "RPT_1000"

	codeInternalReportStoreFailed = "RPT_9000"
)

// errReportNotFound returns an error when no report exists for the requested ID.
func errReportNotFound(reportID string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeReportNotFound, fmt.Sprintf("report not found: %s", reportID), cause)
}

// errInternalReportStoreFailed returns an error when a report store operation fails.
func errInternalReportStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportStoreFailed, fmt.Errorf("reportStoreFailed: %w", cause))
}
