package stores

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"api-insights/internal/shared/filestorages"
	"api-insights/internal/shared/filestorages/mocks"
)

func TestRawBatchStore_Put_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewRawBatchStore(mockFileStorage)

	ctx := context.Background()
	records := []any{map[string]any{"endpoint": "/api/users"}}

	mockFileStorage.EXPECT().
		Put(ctx, "raw-inputs/report-123.json", gomock.Any(), filestorages.PutOptions{AllowOverwrite: false}).
		DoAndReturn(func(ctx context.Context, key string, r io.Reader, opts filestorages.PutOptions) (*filestorages.PutResult, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.JSONEq(t, `[{"endpoint": "/api/users"}]`, string(data))
			assert.False(t, opts.AllowOverwrite, "AllowOverwrite should be false")
			return &filestorages.PutResult{FileKey: key}, nil
		})

	err := store.Put(ctx, "report-123", records)
	assert.NoError(t, err)
}

func TestRawBatchStore_Put_AlreadyExists(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewRawBatchStore(mockFileStorage)

	mockFileStorage.EXPECT().
		Put(gomock.Any(), "raw-inputs/report-123.json", gomock.Any(), filestorages.PutOptions{AllowOverwrite: false}).
		Return(nil, filestorages.ErrFileAlreadyExists)

	err := store.Put(context.Background(), "report-123", []any{})
	assert.ErrorIs(t, err, ErrRawBatchAlreadyExist)
}

func TestRawBatchStore_Put_StorageError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewRawBatchStore(mockFileStorage)

	mockFileStorage.EXPECT().
		Put(gomock.Any(), "raw-inputs/report-123.json", gomock.Any(), gomock.Any()).
		Return(nil, errors.New("storage error"))

	err := store.Put(context.Background(), "report-123", []any{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to put raw batch")
	assert.NotErrorIs(t, err, ErrRawBatchAlreadyExist)
}
