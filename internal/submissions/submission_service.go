package submissions

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"api-insights/internal/events"
	"api-insights/internal/loaders"
	"api-insights/internal/shared/loggers"
	"api-insights/internal/shared/metrics"
	"api-insights/internal/shared/ulid"
	"api-insights/internal/stores"
	"api-insights/internal/streams"
)

const (
	maxBatchBytes = 10 * 1024 * 1024
)

// SubmitResult represents the result of a batch submission.
type SubmitResult struct {
	ReportID string
}

//go:generate mockgen -source=submission_service.go -destination=./mocks/submission_service_mock.go -package=mocks
type SubmissionService interface {
	// Submit accepts a JSON record batch, archives it and queues it for
	// analysis under a new or caller-supplied report ID.
	Submit(ctx context.Context, idempotencyKey string, r io.Reader) (*SubmitResult, error)
}

type submissionService struct {
	logLoader           loaders.LogLoader
	rawBatchStore       stores.RawBatchStore
	analysisJobProducer streams.AnalysisJobProducer
}

func NewSubmissionService(logLoader loaders.LogLoader, rawBatchStore stores.RawBatchStore, analysisJobProducer streams.AnalysisJobProducer) SubmissionService {
	return &submissionService{
		logLoader:           logLoader,
		rawBatchStore:       rawBatchStore,
		analysisJobProducer: analysisJobProducer,
	}
}

func (s *submissionService) Submit(ctx context.Context, idempotencyKey string, r io.Reader) (*SubmitResult, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started submitting batch with idempotency key: %s", idempotencyKey)

	records, err := s.validateBatch(ctx, r)
	if err != nil {
		return nil, err
	}

	reportID := strings.TrimSpace(idempotencyKey)
	if reportID == "" {
		reportID = ulid.NewULID()
	}

	// Archive the raw batch
	err = s.rawBatchStore.Put(ctx, reportID, records)
	if err != nil {
		if errors.Is(err, stores.ErrRawBatchAlreadyExist) {
			svcError := errBatchAlreadySubmitted(err)
			metricBatchSubmittedTotal.WithLabelValues(svcError.Code).Inc()
			return nil, svcError
		}
		return nil, errInternalRawBatchStoreFailed(err)
	}

	// Queue the analysis job
	event := &events.AnalysisRequestedEvent{
		ReportID:   reportID,
		ReceivedAt: time.Now().UTC(),
		Records:    records,
	}
	err = s.analysisJobProducer.Produce(ctx, event)
	if err != nil {
		return nil, errInternalAnalysisJobProducerFailed(err)
	}

	metricBatchSubmittedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return &SubmitResult{ReportID: reportID}, nil
}

func (s *submissionService) validateBatch(ctx context.Context, r io.Reader) ([]any, error) {
	if r == nil {
		return nil, errValidationFailed("empty request body", nil)
	}

	buf, err := s.readWithLimit(r, maxBatchBytes)
	if err != nil {
		return nil, err
	}

	decoded, err := s.logLoader.Load(ctx, bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}

	// The analysis layer tolerates non-list input, but the API contract is
	// a JSON array: anything else is rejected before a report ID is minted.
	records, ok := decoded.([]any)
	if !ok {
		return nil, errValidationFailed("logs must be a JSON array", nil)
	}
	return records, nil
}

// readWithLimit reads up to max+1 bytes from r and checks if it exceeds max.
func (s *submissionService) readWithLimit(r io.Reader, max int) ([]byte, error) {
	buf, err := io.ReadAll(io.LimitReader(r, int64(max+1)))
	if err != nil {
		return nil, errValidationFailed("failed to read request body", err)
	}
	if len(buf) > max {
		return nil, errValidationFailed("batch too large: must be <= 10MB", nil)
	}
	return buf, nil
}
