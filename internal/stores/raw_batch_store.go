package stores

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"api-insights/internal/shared/filestorages"
)

var (
	ErrRawBatchAlreadyExist = errors.New("raw batch already exists")
)

// RawBatchStore archives submitted record batches before analysis, one
// write-once document per report ID. Put performs an atomic
// create-if-not-exists, like S3's conditional PUT:
//
//   - Request A and Request B both submit with idempotency key "report-123"
//   - A's Put succeeds → batch archived, analysis proceeds
//   - B's Put fails → ErrRawBatchAlreadyExist returned (duplicate detected)
//
// This makes duplicate submissions under one idempotency key observable at
// the HTTP layer as a conflict.
//
//go:generate mockgen -source=raw_batch_store.go -destination=./mocks/raw_batch_store_mock.go -package=mocks
type RawBatchStore interface {
	Put(ctx context.Context, reportID string, records any) error
}

type rawBatchStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewRawBatchStore(fileStorage filestorages.FileStorage) RawBatchStore {
	return &rawBatchStore{fileStorage: fileStorage, dir: "raw-inputs"}
}

func (s *rawBatchStore) Put(ctx context.Context, reportID string, records any) error {
	jsonData, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal raw batch: %w", err)
	}

	key := fmt.Sprintf("%s/%s.json", s.dir, reportID)
	_, err = s.fileStorage.Put(ctx, key, bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return ErrRawBatchAlreadyExist
		}
		return fmt.Errorf("failed to put raw batch: %w", err)
	}
	return nil
}
