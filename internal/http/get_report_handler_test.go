package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"api-insights/internal/models"
	reportmocks "api-insights/internal/reports/mocks"
	"api-insights/internal/shared/svcerrors"
)

// getReportRequest builds a request routed through chi so URL params resolve.
func getReportRequest(reportID string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/analyses/"+reportID, nil)

	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("reportID", reportID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func TestGetReportHandler_Handle_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReportingService := reportmocks.NewMockReportingService(ctrl)
	handler := NewGetReportHandler(mockReportingService)

	result := models.NewEmptyAnalysisResult("No logs provided")
	mockReportingService.EXPECT().
		GetReport(gomock.Any(), "report-1").
		Return(result, nil)

	rr := httptest.NewRecorder()
	err := handler.Handle(rr, getReportRequest("report-1"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body models.AnalysisResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "No logs provided", body.Error)
	assert.NotNil(t, body.EndpointStats)
}

func TestGetReportHandler_Handle_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReportingService := reportmocks.NewMockReportingService(ctrl)
	handler := NewGetReportHandler(mockReportingService)

	expectedErr := svcerrors.NewNotFoundError("RPT_1000", "report not found", nil)
	mockReportingService.EXPECT().
		GetReport(gomock.Any(), "missing").
		Return(nil, expectedErr)

	rr := httptest.NewRecorder()
	err := handler.Handle(rr, getReportRequest("missing"))

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "RPT_1000", svcErr.Code)
	// Status should not be set when error occurs
	assert.Equal(t, http.StatusOK, rr.Code)
}
