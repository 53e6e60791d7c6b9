package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"api-insights/internal/shared/svcerrors"
	"api-insights/internal/submissions"
	submissionmocks "api-insights/internal/submissions/mocks"
)

func TestSubmitAnalysisHandler_Handle_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSubmissionService := submissionmocks.NewMockSubmissionService(ctrl)
	handler := NewSubmitAnalysisHandler(mockSubmissionService)

	req := httptest.NewRequest(http.MethodPost, "/analyses", bytes.NewReader([]byte(`[]`)))
	req.Header.Set(headerIdempotencyKey, "key123")
	rr := httptest.NewRecorder()

	mockSubmissionService.EXPECT().
		Submit(gomock.Any(), "key123", gomock.Any()).
		Return(&submissions.SubmitResult{ReportID: "key123"}, nil)

	err := handler.Handle(rr, req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response SubmitAnalysisResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "key123", response.ReportID)
}

func TestSubmitAnalysisHandler_Handle_Error(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSubmissionService := submissionmocks.NewMockSubmissionService(ctrl)
	handler := NewSubmitAnalysisHandler(mockSubmissionService)

	req := httptest.NewRequest(http.MethodPost, "/analyses", bytes.NewReader([]byte(`[]`)))
	rr := httptest.NewRecorder()

	expectedErr := svcerrors.NewResourceConflictError("SUB_1001", "batch already submitted", nil)
	mockSubmissionService.EXPECT().
		Submit(gomock.Any(), "", gomock.Any()).
		Return(nil, expectedErr)

	err := handler.Handle(rr, req)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "SUB_1001", svcErr.Code)
	// Status should not be set when error occurs
	assert.Equal(t, http.StatusOK, rr.Code)
}
