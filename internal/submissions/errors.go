package submissions

import (
	"fmt"

	"api-insights/internal/shared/svcerrors"
)

// SubmissionService errors
const (
	codeValidationFailed      = "SUB_1000"
	codeBatchAlreadySubmitted = "SUB_1001"

	codeInternalRawBatchStoreFailed       = "SUB_9000"
	codeInternalAnalysisJobProducerFailed = "SUB_9001"
)

// errValidationFailed returns an error for validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errBatchAlreadySubmitted returns an error when a batch has already been submitted under the same idempotency key.
func errBatchAlreadySubmitted(cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeBatchAlreadySubmitted, "batch already submitted", cause)
}

// errInternalRawBatchStoreFailed returns an error when a raw batch store operation fails.
func errInternalRawBatchStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRawBatchStoreFailed, fmt.Errorf("rawBatchStoreFailed: %w", cause))
}

// errInternalAnalysisJobProducerFailed returns an error when an analysis job publish fails.
func errInternalAnalysisJobProducerFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalAnalysisJobProducerFailed, fmt.Errorf("analysisJobProducerFailed: %w", cause))
}
