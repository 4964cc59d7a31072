package checks

import (
	"context"
	"errors"
	"testing"

	"equipment-tracker/core/storage"
	"equipment-tracker/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCheckStorage(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "exports").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "exports", minio.ListObjectsOptions{Prefix: ExportsPrefix, Recursive: true}).
		Return([]minio.ObjectInfo{{Key: "exports/history-a.json"}, {Key: "exports/history-b.json"}})

	report, err := CheckStorage(context.Background(), mockClient, "exports")
	require.NoError(t, err)
	assert.True(t, report.Exists)
	assert.Equal(t, 2, report.Exports)
	assert.Equal(t, "ok", report.Status)
}

func TestCheckStorage_Missing(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "exports").Return(false, nil)

	report, err := CheckStorage(context.Background(), mockClient, "exports")
	require.NoError(t, err)
	assert.False(t, report.Exists)
	assert.Equal(t, "missing", report.Status)
	mockClient.AssertNotCalled(t, "ListObjects", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckStorage_Errors(t *testing.T) {
	t.Run("bucket", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "exports").Return(false, errors.New("dial tcp: refused"))

		_, err := CheckStorage(context.Background(), mockClient, "exports")
		assert.ErrorContains(t, err, "refused")
	})

	t.Run("listing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "exports").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "exports", mock.Anything).
			Return([]minio.ObjectInfo{{Err: errors.New("access denied")}})

		_, err := CheckStorage(context.Background(), mockClient, "exports")
		assert.ErrorContains(t, err, "access denied")
	})
}

func TestFixStorage(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "exports").Return(false, nil)
	mockClient.On("MakeBucket", mock.Anything, "exports", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)

	err := FixStorage(context.Background(), mockClient, storage.Config{Bucket: "exports", Region: "eu-west-1"}, zap.NewNop())
	require.NoError(t, err)
	mockClient.AssertExpectations(t)
}
