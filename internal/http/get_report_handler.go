package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"api-insights/internal/reports"
)

type getReportHandler struct {
	reportingService reports.ReportingService
}

func NewGetReportHandler(reportingService reports.ReportingService) AppHttpHandler {
	return &getReportHandler{
		reportingService: reportingService,
	}
}

// Handle processes GET /analyses/{reportID} requests.
func (h *getReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	reportID := chi.URLParam(r, "reportID")

	result, err := h.reportingService.GetReport(r.Context(), reportID)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(result)
}
