package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"api-insights/internal/events"
	"api-insights/internal/reports"
	"api-insights/internal/shared/loggers"
	"api-insights/internal/shared/metrics"
	"api-insights/internal/shared/svcerrors"
	"api-insights/internal/shared/ulid"
)

//go:generate mockgen -source=analysis_job_consumer.go -destination=./mocks/analysis_job_consumer_mock.go -package=mocks
type AnalysisJobConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type analysisJobConsumer struct {
	queue            *PartitionedQueue[events.AnalysisRequestedEvent]
	reportingService reports.ReportingService

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewAnalysisJobConsumer(queue *PartitionedQueue[events.AnalysisRequestedEvent], reportingService reports.ReportingService, logger loggers.Logger) AnalysisJobConsumer {
	return &analysisJobConsumer{
		queue:            queue,
		reportingService: reportingService,
		stopCh:           make(chan struct{}),
		logger:           logger,
	}
}

// Start spawns 1 worker goroutine per partition.
// Each partition is a single-writer lane for report IDs routed by the producer.
func (consumer *analysisJobConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		partitionIndex := partitionIndex
		ch := consumer.queue.partitions[partitionIndex]
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()

			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

// Stop waits for workers to stop (best called during app shutdown).
func (consumer *analysisJobConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *analysisJobConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan events.AnalysisRequestedEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-consumer.stopCh:
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			consumer.handleEvent(ctx, partitionIndex, event)
		}
	}
}

// handleEvent runs one report build with panic recovery so a single bad
// batch cannot take the partition worker down.
func (consumer *analysisJobConsumer) handleEvent(ctx context.Context, partitionIndex int, event events.AnalysisRequestedEvent) {
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("consumer panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}

			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricAnalysisJobConsumedTotal.WithLabelValues(streamAnalysisJobs, svcErr.Code).Inc()
		}
	}()

	ctx = consumer.logger.With().
		Str(loggers.FieldPartitionId, fmt.Sprintf("%d", partitionIndex)).
		Str(loggers.FieldRequestID, ulid.NewULID()).
		Str(loggers.FieldReportID, event.ReportID).
		Logger().WithContext(ctx)

	svcError := consumer.reportingService.BuildReport(ctx, &event)
	if svcError != nil {
		metricAnalysisJobConsumedTotal.WithLabelValues(streamAnalysisJobs, svcError.Code).Inc()
	} else {
		metricAnalysisJobConsumedTotal.WithLabelValues(streamAnalysisJobs, metrics.ValueNoError).Inc()
	}
}
