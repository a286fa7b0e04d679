package feed_test

import (
	"context"
	"testing"
	"time"

	"github.com/MichalMitros/catalog-feed-sync/internal/feed/mocks"
	"github.com/MichalMitros/catalog-feed-sync/internal/platform/models"
	"github.com/MichalMitros/catalog-feed-sync/internal/platform/models/modelstesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnitRetire(t *testing.T) {
	wantCutoff := now.Add(-7 * 24 * time.Hour)
	retired := []models.FeedSnapshot{
		modelstesting.FakeSnapshot(func(s *models.FeedSnapshot) {
			s.ShopID = shopID
			s.StorageKey = "41/feed-100.jsonl.gz"
			s.GeneratedAt = now.Add(-8 * 24 * time.Hour)
		}),
		modelstesting.FakeSnapshot(func(s *models.FeedSnapshot) {
			s.ShopID = shopID
			s.StorageKey = "41/feed-200.jsonl.gz"
			s.GeneratedAt = now.Add(-10 * 24 * time.Hour)
		}),
	}

	storage := mocks.NewStorage(t)
	blobs := mocks.NewBlobStore(t)

	storage.On("DeleteSnapshotsBefore", mock.Anything, shopID, wantCutoff).Return(retired, nil)
	blobs.On("Delete", mock.Anything, "41/feed-100.jsonl.gz").Return(true, nil)
	blobs.On("Delete", mock.Anything, "41/feed-200.jsonl.gz").Return(true, nil)

	count, err := newGenerator(storage, blobs).Retire(context.TODO(), shopID)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, 2, count)
}

func TestUnitRetireNothingExpired(t *testing.T) {
	storage := mocks.NewStorage(t)
	blobs := mocks.NewBlobStore(t)

	storage.On("DeleteSnapshotsBefore", mock.Anything, shopID, mock.Anything).Return([]models.FeedSnapshot{}, nil)

	count, err := newGenerator(storage, blobs).Retire(context.TODO(), shopID)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, 0, count)
	blobs.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUnitRetireBlobDeleteFailure(t *testing.T) {
	retired := []models.FeedSnapshot{
		modelstesting.FakeSnapshot(func(s *models.FeedSnapshot) { s.StorageKey = "41/feed-100.jsonl.gz" }),
		modelstesting.FakeSnapshot(func(s *models.FeedSnapshot) { s.StorageKey = "41/feed-200.jsonl.gz" }),
	}

	storage := mocks.NewStorage(t)
	blobs := mocks.NewBlobStore(t)

	storage.On("DeleteSnapshotsBefore", mock.Anything, shopID, mock.Anything).Return(retired, nil)
	blobs.On("Delete", mock.Anything, "41/feed-100.jsonl.gz").Return(false, assert.AnError)
	blobs.On("Delete", mock.Anything, "41/feed-200.jsonl.gz").Return(false, nil)

	count, err := newGenerator(storage, blobs).Retire(context.TODO(), shopID)

	require.NoError(t, err, "blob delete failures shouldn't fail retirement")
	assert.Equal(t, 2, count)
}

func TestUnitRetireStorageError(t *testing.T) {
	storage := mocks.NewStorage(t)
	blobs := mocks.NewBlobStore(t)

	storage.On("DeleteSnapshotsBefore", mock.Anything, shopID, mock.Anything).Return(nil, assert.AnError)

	_, err := newGenerator(storage, blobs).Retire(context.TODO(), shopID)

	require.ErrorIs(t, err, assert.AnError, "should return storage error")
	blobs.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
