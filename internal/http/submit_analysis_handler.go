package http

import (
	"net/http"

	"github.com/goccy/go-json"

	"api-insights/internal/submissions"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// SubmitAnalysisResponse is the 202 body of POST /analyses.
type SubmitAnalysisResponse struct {
	ReportID string `json:"reportId"`
}

type submitAnalysisHandler struct {
	submissionService submissions.SubmissionService
}

func NewSubmitAnalysisHandler(submissionService submissions.SubmissionService) AppHttpHandler {
	return &submitAnalysisHandler{
		submissionService: submissionService,
	}
}

// Handle processes POST /analyses requests.
func (h *submitAnalysisHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	result, err := h.submissionService.Submit(r.Context(), idempotencyKey(r), r.Body)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	return json.NewEncoder(w).Encode(SubmitAnalysisResponse{ReportID: result.ReportID})
}
