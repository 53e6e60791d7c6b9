package stores

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"api-insights/internal/models"
	"api-insights/internal/shared/filestorages"
)

var (
	ErrReportNotFound = errors.New("analysis report not found")
)

// AnalysisReportStore persists finished analysis reports keyed by report ID.
// Put overwrites: reprocessing a report ID atomically replaces the previous
// document, readers never observe a partial file.
//
//go:generate mockgen -source=analysis_report_store.go -destination=./mocks/analysis_report_store_mock.go -package=mocks
type AnalysisReportStore interface {
	Put(ctx context.Context, reportID string, result *models.AnalysisResult) error
	Get(ctx context.Context, reportID string) (*models.AnalysisResult, error)
}

type analysisReportStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewAnalysisReportStore(fileStorage filestorages.FileStorage) AnalysisReportStore {
	return &analysisReportStore{fileStorage: fileStorage, dir: "reports"}
}

func (s *analysisReportStore) Put(ctx context.Context, reportID string, result *models.AnalysisResult) error {
	jsonData, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis report: %w", err)
	}

	_, err = s.fileStorage.Put(ctx, s.getKey(reportID), bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return fmt.Errorf("failed to put analysis report: %w", err)
	}
	return nil
}

func (s *analysisReportStore) Get(ctx context.Context, reportID string) (*models.AnalysisResult, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.getKey(reportID))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get analysis report: %w", err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read analysis report: %w", err)
	}

	var result models.AnalysisResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis report: %w", err)
	}
	return &result, nil
}

func (s *analysisReportStore) getKey(reportID string) string {
	return fmt.Sprintf("%s/%s.json", s.dir, reportID)
}
