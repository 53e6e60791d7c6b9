package streams

import (
	"context"

	"api-insights/internal/events"
)

// AnalysisJobProducer publishes AnalysisRequestedEvents to a partitioned
// queue, keyed by report ID.
//
// Events with the same report ID are routed to the same partition, and the
// consumer runs one worker goroutine per partition, so all work for a given
// report executes sequentially. A report document is therefore never written
// by two workers at once, while unrelated reports still process in parallel
// across partitions.
//
//go:generate mockgen -source=analysis_job_producer.go -destination=./mocks/analysis_job_producer_mock.go -package=mocks
type AnalysisJobProducer interface {
	Produce(ctx context.Context, event *events.AnalysisRequestedEvent) error
}

type analysisJobProducer struct {
	queue *PartitionedQueue[events.AnalysisRequestedEvent]
}

func NewAnalysisJobProducer(queue *PartitionedQueue[events.AnalysisRequestedEvent]) AnalysisJobProducer {
	return &analysisJobProducer{
		queue: queue,
	}
}

func (producer *analysisJobProducer) Produce(ctx context.Context, event *events.AnalysisRequestedEvent) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	// Partition by report ID (single-writer guarantee).
	producer.queue.Publish(event.ReportID, *event)
	metricAnalysisJobProducedTotal.WithLabelValues(streamAnalysisJobs).Inc()
	return nil
}
