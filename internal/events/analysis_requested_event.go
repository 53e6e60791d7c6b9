package events

import (
	"time"
)

// AnalysisRequestedEvent carries one submitted record batch from the HTTP
// layer to the reporting worker that analyzes it. ReportID doubles as the
// partition key, so all work for one report runs on a single worker.
//
// Example JSON:
//
//	{
//	  "reportId": "01ARZ3NDEKTSV4RRFFQ69G5FAV",
//	  "receivedAt": "2025-01-15T10:00:00Z",
//	  "records": [
//	    {"timestamp": "2025-01-15T09:59:58Z", "endpoint": "/api/users", ...}
//	  ]
//	}
//
// Records holds the decoded JSON values exactly as submitted, invalid
// entries included; the analysis layer decides what survives validation.
type AnalysisRequestedEvent struct {
	ReportID   string    `json:"reportId"`
	ReceivedAt time.Time `json:"receivedAt"`
	Records    []any     `json:"records"`
}
