package submissions

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"api-insights/internal/events"
	"api-insights/internal/loaders"
	"api-insights/internal/shared/svcerrors"
	"api-insights/internal/stores"
	storemocks "api-insights/internal/stores/mocks"
	streammocks "api-insights/internal/streams/mocks"
)

const sampleBatch = `[{"endpoint": "/api/users", "status_code": 200}]`

type submissionFixture struct {
	service       SubmissionService
	rawBatchStore *storemocks.MockRawBatchStore
	producer      *streammocks.MockAnalysisJobProducer
}

func newSubmissionFixture(t *testing.T) *submissionFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	rawBatchStore := storemocks.NewMockRawBatchStore(ctrl)
	producer := streammocks.NewMockAnalysisJobProducer(ctrl)
	return &submissionFixture{
		service:       NewSubmissionService(loaders.NewLogLoader(), rawBatchStore, producer),
		rawBatchStore: rawBatchStore,
		producer:      producer,
	}
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()

	svcErr, ok := svcerrors.As(err)
	require.True(t, ok, "expected a ServiceError, got %v", err)
	assert.Equal(t, code, svcErr.Code)
}

func TestSubmit_WithIdempotencyKey(t *testing.T) {
	t.Parallel()

	fixture := newSubmissionFixture(t)
	ctx := context.Background()

	fixture.rawBatchStore.EXPECT().
		Put(ctx, "report-123", gomock.Any()).
		Return(nil)
	fixture.producer.EXPECT().
		Produce(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, event *events.AnalysisRequestedEvent) error {
			assert.Equal(t, "report-123", event.ReportID)
			assert.Len(t, event.Records, 1)
			assert.False(t, event.ReceivedAt.IsZero())
			return nil
		})

	result, err := fixture.service.Submit(ctx, "report-123", strings.NewReader(sampleBatch))
	require.NoError(t, err)
	assert.Equal(t, "report-123", result.ReportID)
}

func TestSubmit_GeneratesReportIDWhenKeyMissing(t *testing.T) {
	t.Parallel()

	fixture := newSubmissionFixture(t)
	ctx := context.Background()

	fixture.rawBatchStore.EXPECT().Put(ctx, gomock.Any(), gomock.Any()).Return(nil)
	fixture.producer.EXPECT().Produce(ctx, gomock.Any()).Return(nil)

	result, err := fixture.service.Submit(ctx, "  ", strings.NewReader(sampleBatch))
	require.NoError(t, err)
	assert.Len(t, result.ReportID, 26) // ULID
}

func TestSubmit_RejectsNonArrayJSON(t *testing.T) {
	t.Parallel()

	fixture := newSubmissionFixture(t)

	_, err := fixture.service.Submit(context.Background(), "", strings.NewReader(`{"logs": []}`))
	requireCode(t, err, "SUB_1000")
}

func TestSubmit_RejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	fixture := newSubmissionFixture(t)

	_, err := fixture.service.Submit(context.Background(), "", strings.NewReader(`[{"broken`))
	requireCode(t, err, "LDR_1002")
}

func TestSubmit_RejectsNilBody(t *testing.T) {
	t.Parallel()

	fixture := newSubmissionFixture(t)

	_, err := fixture.service.Submit(context.Background(), "", nil)
	requireCode(t, err, "SUB_1000")
}

func TestSubmit_RejectsOversizedBatch(t *testing.T) {
	t.Parallel()

	fixture := newSubmissionFixture(t)

	oversized := bytes.Repeat([]byte("x"), maxBatchBytes+1)
	_, err := fixture.service.Submit(context.Background(), "", bytes.NewReader(oversized))
	requireCode(t, err, "SUB_1000")
	assert.Contains(t, err.Error(), "batch too large")
}

func TestSubmit_DuplicateKeyConflicts(t *testing.T) {
	t.Parallel()

	fixture := newSubmissionFixture(t)

	fixture.rawBatchStore.EXPECT().
		Put(gomock.Any(), "report-123", gomock.Any()).
		Return(stores.ErrRawBatchAlreadyExist)

	_, err := fixture.service.Submit(context.Background(), "report-123", strings.NewReader(sampleBatch))
	requireCode(t, err, "SUB_1001")

	svcErr, _ := svcerrors.As(err)
	assert.Equal(t, 409, svcErr.HttpStatusCode)
}

func TestSubmit_RawBatchStoreFailure(t *testing.T) {
	t.Parallel()

	fixture := newSubmissionFixture(t)

	fixture.rawBatchStore.EXPECT().
		Put(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("disk full"))

	_, err := fixture.service.Submit(context.Background(), "", strings.NewReader(sampleBatch))
	requireCode(t, err, "SUB_9000")
}

func TestSubmit_ProducerFailure(t *testing.T) {
	t.Parallel()

	fixture := newSubmissionFixture(t)

	fixture.rawBatchStore.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	fixture.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("queue closed"))

	_, err := fixture.service.Submit(context.Background(), "", strings.NewReader(sampleBatch))
	requireCode(t, err, "SUB_9001")
}

func TestSubmit_EmptyArrayIsAccepted(t *testing.T) {
	t.Parallel()

	// An empty array still mints a report: the analysis will record the
	// "No logs provided" result for it.
	fixture := newSubmissionFixture(t)

	fixture.rawBatchStore.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	fixture.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

	result, err := fixture.service.Submit(context.Background(), "", strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.NotEmpty(t, result.ReportID)
}
