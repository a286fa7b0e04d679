package scheduler_test

import (
	"context"
	"testing"
	"time"

	"github.com/MichalMitros/catalog-feed-sync/internal/platform/models"
	"github.com/MichalMitros/catalog-feed-sync/internal/platform/models/modelstesting"
	"github.com/MichalMitros/catalog-feed-sync/internal/scheduler"
	"github.com/MichalMitros/catalog-feed-sync/internal/scheduler/mocks"
	"github.com/MichalMitros/catalog-feed-sync/pkg/v1/jobs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newScheduler(storage *mocks.Storage, commander *mocks.Commander) *scheduler.Scheduler {
	return scheduler.NewScheduler(storage, commander, time.Hour, 0, scheduler.WithFeedDelay(0))
}

func TestUnitSchedule(t *testing.T) {
	shops := []models.Shop{
		modelstesting.FakeShop(func(s *models.Shop) { s.ID = 1 }),
		modelstesting.FakeShop(func(s *models.Shop) { s.ID = 2 }),
		modelstesting.FakeShop(func(s *models.Shop) { s.ID = 3 }),
	}

	storage := mocks.NewStorage(t)
	commander := mocks.NewCommander(t)

	storage.On("ListActiveShops", mock.Anything).Return(shops, nil)
	for _, shop := range shops {
		commander.On("SendSyncCommand", mock.Anything, shop.ID, jobs.ModeIncremental, "").Return(nil)
		commander.On("SendFeedCommand", mock.Anything, shop.ID).Return(nil)
	}

	err := newScheduler(storage, commander).Schedule(context.TODO())

	require.NoError(t, err, "shouldn't return any error")
	commander.AssertNumberOfCalls(t, "SendSyncCommand", 3)
	commander.AssertNumberOfCalls(t, "SendFeedCommand", 3)
}

func TestUnitScheduleListError(t *testing.T) {
	storage := mocks.NewStorage(t)
	commander := mocks.NewCommander(t)

	storage.On("ListActiveShops", mock.Anything).Return(nil, assert.AnError)

	err := newScheduler(storage, commander).Schedule(context.TODO())

	require.ErrorIs(t, err, assert.AnError, "should return storage error")
}

func TestUnitSchedulePublishErrorContinues(t *testing.T) {
	shops := []models.Shop{
		modelstesting.FakeShop(func(s *models.Shop) { s.ID = 1 }),
		modelstesting.FakeShop(func(s *models.Shop) { s.ID = 2 }),
	}

	storage := mocks.NewStorage(t)
	commander := mocks.NewCommander(t)

	storage.On("ListActiveShops", mock.Anything).Return(shops, nil)
	commander.On("SendSyncCommand", mock.Anything, 1, jobs.ModeIncremental, "").Return(assert.AnError)
	commander.On("SendSyncCommand", mock.Anything, 2, jobs.ModeIncremental, "").Return(nil)
	commander.On("SendFeedCommand", mock.Anything, 2).Return(nil)

	err := newScheduler(storage, commander).Schedule(context.TODO())

	require.NoError(t, err, "one shop's publish failure shouldn't fail the pass")
	commander.AssertNotCalled(t, "SendFeedCommand", mock.Anything, 1)
}

func TestUnitRunStopsWhenContextClosed(t *testing.T) {
	storage := mocks.NewStorage(t)
	commander := mocks.NewCommander(t)

	storage.On("ListActiveShops", mock.Anything).Return([]models.Shop{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newScheduler(storage, commander).Run(ctx)

	require.ErrorIs(t, err, context.Canceled, "should stop with context error")
}
