package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	entriesPerBatch = 500 // Log records per submitted batch
	batchCount      = 8   // Original batches; each yields one report
)

var (
	endpoints = []string{"/api/users", "/api/orders", "/api/products", "/api/search"}
	userIDs   = []string{"user_001", "user_002", "user_003", "user_004", "user_005"}
)

// ### End - fixed configs

type logRecord struct {
	Timestamp         string  `json:"timestamp"`
	Endpoint          string  `json:"endpoint"`
	Method            string  `json:"method"`
	ResponseTimeMs    float64 `json:"response_time_ms"`
	StatusCode        int     `json:"status_code"`
	UserID            string  `json:"user_id"`
	RequestSizeBytes  float64 `json:"request_size_bytes"`
	ResponseSizeBytes float64 `json:"response_size_bytes"`
}

type submitResponse struct {
	ReportID string `json:"reportId"`
}

type reportSummary struct {
	Summary struct {
		TotalRequests       int     `json:"total_requests"`
		AvgResponseTimeMs   float64 `json:"avg_response_time_ms"`
		ErrorRatePercentage float64 `json:"error_rate_percentage"`
	} `json:"summary"`
	EndpointStats []any  `json:"endpoint_stats"`
	Error         string `json:"_error"`
}

// main runs the e2e scenario: 001_submit_and_fetch_report
//
// This scenario tests the end-to-end flow of batch submission, asynchronous
// analysis, and report retrieval. It submits 8 deterministic batches of 500
// records each, resubmits every batch once with the same idempotency key, and
// then polls each report until it is available.
//
// What it tests:
//   - Batch submission via POST /analyses with an idempotency key
//   - 409 Conflict on duplicate submission (idempotency working)
//   - Analysis job production, partitioned consumption, and report storage
//   - Report retrieval via GET /analyses/{reportID}
//   - Report content: total request count, endpoint stats, error rate
//
// Expected results:
//   - 8 submissions accepted (202), 8 duplicates rejected (409)
//   - Every report becomes fetchable within the polling window
//   - Each report counts exactly 500 requests over 4 endpoints with an
//     error rate of 20% (every fifth record is a 500)
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080"    // Base URL of the api-insights server
	dateUTC := "2025-06-01"               // Date used for generated record timestamps (UTC)
	parallel := 4                         // Number of concurrent submissions
	pollTimeout := 30 * time.Second       // How long to wait for each report
	pollInterval := 250 * time.Millisecond
	fileStorageDir := ".tmp/file-storage" // File storage directory path relative to project root
	wantCleanFileStorage := true          // If true, clean up file storage directory before running scenario

	// Clean up file storage so rerunning the scenario does not hit the
	// previous run's idempotency records.
	if wantCleanFileStorage {
		storagePath, err := resolveStoragePath(fileStorageDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleaning file storage directory: %s\n", storagePath)
		if err := os.RemoveAll(storagePath); err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: Failed to clean file storage directory: %v\n", err)
		}
		fmt.Println()
	}

	fmt.Println("Starting e2e scenario: 001_submit_and_fetch_report")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("DATE_UTC: %s\n", dateUTC)
	fmt.Printf("BATCH_COUNT: %d\n", batchCount)
	fmt.Printf("ENTRIES_PER_BATCH: %d\n", entriesPerBatch)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Println()

	client := &http.Client{Timeout: 30 * time.Second}

	// Generate all batches up front
	batches := make([][]byte, batchCount)
	for i := 0; i < batchCount; i++ {
		jsonData, err := generateBatchJSON(i, dateUTC)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to generate batch %d: %v\n", i, err)
			os.Exit(1)
		}
		batches[i] = jsonData
	}

	// Submit originals and duplicates concurrently
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errors []error
	var accepted, conflicted int64
	reportIDs := make([]string, batchCount)
	workerChan := make(chan struct{}, parallel)

	submit := func(batchIndex int, isOriginal bool) {
		defer wg.Done()
		defer func() { <-workerChan }()

		key := fmt.Sprintf("report-%03d", batchIndex)
		status, reportID, err := submitBatch(client, baseURL, key, batches[batchIndex])
		if err != nil {
			mu.Lock()
			errors = append(errors, fmt.Errorf("batch %d (original=%v): %w", batchIndex, isOriginal, err))
			mu.Unlock()
			return
		}

		switch status {
		case http.StatusAccepted:
			atomic.AddInt64(&accepted, 1)
			mu.Lock()
			reportIDs[batchIndex] = reportID
			mu.Unlock()
		case http.StatusConflict:
			atomic.AddInt64(&conflicted, 1)
		default:
			mu.Lock()
			errors = append(errors, fmt.Errorf("batch %d: unexpected status %d", batchIndex, status))
			mu.Unlock()
		}
	}

	for i := 0; i < batchCount; i++ {
		wg.Add(1)
		workerChan <- struct{}{}
		go submit(i, true)
	}
	wg.Wait()

	// Resubmit everything once with the same keys; all should conflict
	for i := 0; i < batchCount; i++ {
		wg.Add(1)
		workerChan <- struct{}{}
		go submit(i, false)
	}
	wg.Wait()

	if len(errors) > 0 {
		for _, err := range errors {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("Accepted: %d (want %d)\n", accepted, batchCount)
	fmt.Printf("Conflicted: %d (want %d)\n", conflicted, batchCount)
	if accepted != batchCount || conflicted != batchCount {
		fmt.Fprintln(os.Stderr, "ERROR: unexpected accept/conflict counts")
		os.Exit(1)
	}
	fmt.Println()

	// Poll each report and verify its summary
	for i, reportID := range reportIDs {
		report, err := pollReport(client, baseURL, reportID, pollTimeout, pollInterval)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: report %s: %v\n", reportID, err)
			os.Exit(1)
		}

		if report.Error != "" {
			fmt.Fprintf(os.Stderr, "ERROR: report %s carries _error: %s\n", reportID, report.Error)
			os.Exit(1)
		}
		if report.Summary.TotalRequests != entriesPerBatch {
			fmt.Fprintf(os.Stderr, "ERROR: report %s: total_requests=%d, want %d\n",
				reportID, report.Summary.TotalRequests, entriesPerBatch)
			os.Exit(1)
		}
		if len(report.EndpointStats) != len(endpoints) {
			fmt.Fprintf(os.Stderr, "ERROR: report %s: %d endpoint stats, want %d\n",
				reportID, len(report.EndpointStats), len(endpoints))
			os.Exit(1)
		}
		if report.Summary.ErrorRatePercentage != 20.0 {
			fmt.Fprintf(os.Stderr, "ERROR: report %s: error_rate=%.2f, want 20.00\n",
				reportID, report.Summary.ErrorRatePercentage)
			os.Exit(1)
		}

		fmt.Printf("Report %d (%s) verified: %d requests, %.2f%% errors, %.2fms avg\n",
			i, reportID, report.Summary.TotalRequests,
			report.Summary.ErrorRatePercentage, report.Summary.AvgResponseTimeMs)
	}

	fmt.Println()
	fmt.Println("Scenario completed successfully")
}

// resolveStoragePath resolves dir relative to the project root, found by
// walking up from the working directory until a go.mod appears.
func resolveStoragePath(dir string) (string, error) {
	projectRoot, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for i := 0; i < 10; i++ {
		if _, err := os.Stat(filepath.Join(projectRoot, "go.mod")); err == nil {
			return filepath.Abs(filepath.Join(projectRoot, dir))
		}
		parent := filepath.Dir(projectRoot)
		if parent == projectRoot {
			return "", fmt.Errorf("could not find go.mod; run from inside the project")
		}
		projectRoot = parent
	}
	return "", fmt.Errorf("could not find go.mod; run from inside the project")
}

// generateBatchJSON produces a deterministic batch: records cycle through
// endpoints and users, every fifth record is a server error, and response
// times ramp within a fixed range so the averages are reproducible.
func generateBatchJSON(batchIndex int, dateUTC string) ([]byte, error) {
	records := make([]logRecord, 0, entriesPerBatch)
	for i := 0; i < entriesPerBatch; i++ {
		status := 200
		if i%5 == 4 {
			status = 500
		}

		minute := i / 60
		second := i % 60
		timestamp := fmt.Sprintf("%sT10:%02d:%02dZ", dateUTC, minute, second)

		records = append(records, logRecord{
			Timestamp:         timestamp,
			Endpoint:          endpoints[i%len(endpoints)],
			Method:            "GET",
			ResponseTimeMs:    float64(50 + (i%20)*10),
			StatusCode:        status,
			UserID:            userIDs[(batchIndex+i)%len(userIDs)],
			RequestSizeBytes:  256,
			ResponseSizeBytes: float64(512 + (i%3)*4096),
		})
	}
	return json.Marshal(records)
}

func submitBatch(client *http.Client, baseURL, idempotencyKey string, jsonData []byte) (int, string, error) {
	req, err := http.NewRequest(http.MethodPost, baseURL+"/analyses", bytes.NewReader(jsonData))
	if err != nil {
		return 0, "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("idempotency-key", idempotencyKey)

	resp, err := client.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusAccepted {
		var body submitResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return resp.StatusCode, "", fmt.Errorf("failed to decode response: %w", err)
		}
		return resp.StatusCode, body.ReportID, nil
	}

	return resp.StatusCode, "", nil
}

func pollReport(client *http.Client, baseURL, reportID string, timeout, interval time.Duration) (*reportSummary, error) {
	deadline := time.Now().Add(timeout)
	for {
		resp, err := client.Get(baseURL + "/analyses/" + reportID)
		if err != nil {
			return nil, fmt.Errorf("HTTP request failed: %w", err)
		}

		if resp.StatusCode == http.StatusOK {
			var report reportSummary
			err := json.NewDecoder(resp.Body).Decode(&report)
			resp.Body.Close()
			if err != nil {
				return nil, fmt.Errorf("failed to decode report: %w", err)
			}
			return &report, nil
		}

		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusNotFound {
			return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("report not available after %s", timeout)
		}
		time.Sleep(interval)
	}
}
