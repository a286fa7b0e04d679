package reprocess_test

import (
	"context"
	"testing"
	"time"

	"github.com/MichalMitros/catalog-feed-sync/internal/platform/models"
	"github.com/MichalMitros/catalog-feed-sync/internal/platform/models/modelstesting"
	"github.com/MichalMitros/catalog-feed-sync/internal/reprocess"
	"github.com/MichalMitros/catalog-feed-sync/internal/reprocess/mocks"
	"github.com/MichalMitros/catalog-feed-sync/internal/resolver"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	batchSize = uint(2) // will affect tests results when changed
	loc       = func() *time.Location {
		loc, err := time.LoadLocation("Etc/UTC")
		if err != nil {
			panic(err)
		}
		return loc
	}()
	now      = time.Date(2024, time.April, 1, 1, 1, 1, 0, loc)
	shopID   = 53
	testShop = modelstesting.FakeShop(func(s *models.Shop) {
		s.ID = shopID
		s.Currency = "EUR"
	})
)

type fakeClock struct {
	timestamp int64
	now       *time.Time
}

func (c fakeClock) Timestamp() int64 {
	return c.timestamp
}

func (c fakeClock) Now() *time.Time {
	return c.now
}

func newReprocessor(storage *mocks.Storage) *reprocess.Reprocessor {
	return reprocess.NewReprocessor(storage, batchSize, reprocess.WithClock(fakeClock{timestamp: now.UnixMilli(), now: &now}))
}

// captureUpdates records every item passed to UpdateItemDerived.
func captureUpdates(storage *mocks.Storage, updated *[]models.Item) {
	storage.On("UpdateItemDerived", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			*updated = append(*updated, args.Get(1).([]models.Item)...)
		}).
		Return(nil)
}

func TestUnitReprocessFull(t *testing.T) {
	item := modelstesting.FakeItem(func(i *models.Item) {
		i.ShopID = shopID
		i.ExternalID = "10"
		i.RawPayload = `{"id":"10","title":"New title","url":"https://shop.example/p/10",` +
			`"price":12.5,"in_stock":true,"image_url":"https://img.example/10.jpg"}`
		i.Attributes = map[string]*string{
			resolver.AttrID:       lo.ToPtr("10"),
			resolver.AttrTitle:    lo.ToPtr("Old title"),
			resolver.AttrCategory: lo.ToPtr("Apparel"),
		}
	})

	storage := mocks.NewStorage(t)
	shop := testShop
	storage.On("GetShop", mock.Anything, shopID).Return(&shop, nil)
	storage.On("ListItems", mock.Anything, shopID).Return([]models.Item{item}, nil)

	updated := []models.Item{}
	captureUpdates(storage, &updated)

	result, err := newReprocessor(storage).Reprocess(context.TODO(), shopID, nil, nil)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, int32(1), result.Updated)
	assert.Equal(t, int32(0), result.Failed)

	require.Len(t, updated, 1)
	attrs := updated[0].Attributes
	assert.Equal(t, lo.ToPtr("New title"), attrs[resolver.AttrTitle])
	assert.Equal(t, lo.ToPtr("https://shop.example/p/10"), attrs[resolver.AttrLink])
	assert.Equal(t, lo.ToPtr("12.50 EUR"), attrs[resolver.AttrPrice])
	assert.Equal(t, lo.ToPtr("in stock"), attrs[resolver.AttrAvailability])
	assert.Equal(t, lo.ToPtr("Apparel"), attrs[resolver.AttrCategory], "stored category should survive reprocessing")
	assert.True(t, updated[0].Valid)
	assert.Equal(t, &now, updated[0].UpdatedAt)
}

func TestUnitReprocessSelective(t *testing.T) {
	items := make([]models.Item, 0, 5)
	for ix := 0; ix < 5; ix++ {
		items = append(items, modelstesting.FakeItem(func(i *models.Item) {
			i.ShopID = shopID
			i.RawPayload = `{"id":"` + i.ExternalID + `","title":"New title","price":12.5}`
			i.Attributes = map[string]*string{
				resolver.AttrID:    lo.ToPtr(i.ExternalID),
				resolver.AttrTitle: lo.ToPtr("Old title"),
				resolver.AttrPrice: lo.ToPtr("999.99 EUR"),
			}
		}))
	}

	storage := mocks.NewStorage(t)
	shop := testShop
	storage.On("GetShop", mock.Anything, shopID).Return(&shop, nil)
	storage.On("ListItems", mock.Anything, shopID).Return(items, nil)

	updated := []models.Item{}
	captureUpdates(storage, &updated)

	result, err := newReprocessor(storage).Reprocess(context.TODO(), shopID, []string{resolver.AttrTitle}, nil)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, int32(5), result.Updated)

	require.Len(t, updated, 5)
	for ix := range updated {
		attrs := updated[ix].Attributes
		assert.Equal(t, lo.ToPtr("New title"), attrs[resolver.AttrTitle])
		assert.Equal(t, lo.ToPtr("999.99 EUR"), attrs[resolver.AttrPrice], "untouched attributes should stay as stored")
		assert.Equal(t, items[ix].Attributes[resolver.AttrID], attrs[resolver.AttrID])
	}
}

func TestUnitReprocessClearsOverrides(t *testing.T) {
	item := modelstesting.FakeItem(func(i *models.Item) {
		i.ShopID = shopID
		i.ExternalID = "10"
		i.RawPayload = `{"id":"10","title":"Payload title"}`
		i.Overrides = map[string]string{resolver.AttrTitle: "Override title"}
		i.Attributes = map[string]*string{
			resolver.AttrID:    lo.ToPtr("10"),
			resolver.AttrTitle: lo.ToPtr("Override title"),
		}
	})

	storage := mocks.NewStorage(t)
	shop := testShop
	storage.On("GetShop", mock.Anything, shopID).Return(&shop, nil)
	storage.On("ListItems", mock.Anything, shopID).Return([]models.Item{item}, nil)

	updated := []models.Item{}
	captureUpdates(storage, &updated)

	_, err := newReprocessor(storage).Reprocess(context.TODO(), shopID, nil, []string{resolver.AttrTitle})

	require.NoError(t, err, "shouldn't return any error")
	require.Len(t, updated, 1)
	assert.Equal(t, lo.ToPtr("Payload title"), updated[0].Attributes[resolver.AttrTitle], "underlying value should resurface")
	assert.NotContains(t, updated[0].Overrides, resolver.AttrTitle)
}

func TestUnitReprocessParseFailure(t *testing.T) {
	item := modelstesting.FakeItem(func(i *models.Item) {
		i.ShopID = shopID
		i.RawPayload = `{broken`
	})

	storage := mocks.NewStorage(t)
	shop := testShop
	storage.On("GetShop", mock.Anything, shopID).Return(&shop, nil)
	storage.On("ListItems", mock.Anything, shopID).Return([]models.Item{item}, nil)

	updated := []models.Item{}
	captureUpdates(storage, &updated)

	result, err := newReprocessor(storage).Reprocess(context.TODO(), shopID, nil, nil)

	require.NoError(t, err, "one broken payload shouldn't fail reprocessing")
	assert.Equal(t, int32(1), result.Updated)
	assert.Equal(t, int32(1), result.Failed)

	require.Len(t, updated, 1)
	assert.False(t, updated[0].Valid)
	assert.Equal(t, []string{"can't parse stored payload"}, updated[0].ValidationErrors)
}

func TestUnitReprocessBatches(t *testing.T) {
	items := []models.Item{
		modelstesting.FakeItem(func(i *models.Item) { i.ShopID = shopID }),
		modelstesting.FakeItem(func(i *models.Item) { i.ShopID = shopID }),
		modelstesting.FakeItem(func(i *models.Item) { i.ShopID = shopID }),
	}

	storage := mocks.NewStorage(t)
	shop := testShop
	storage.On("GetShop", mock.Anything, shopID).Return(&shop, nil)
	storage.On("ListItems", mock.Anything, shopID).Return(items, nil)

	updated := []models.Item{}
	captureUpdates(storage, &updated)

	result, err := newReprocessor(storage).Reprocess(context.TODO(), shopID, nil, nil)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, int32(3), result.Updated)
	assert.Len(t, updated, 3)
	storage.AssertNumberOfCalls(t, "UpdateItemDerived", 2)
}

func TestUnitReprocessErrors(t *testing.T) {
	tests := map[string]struct {
		mockStorage func(storage *mocks.Storage)
	}{
		"get shop error": {
			mockStorage: func(storage *mocks.Storage) {
				storage.On("GetShop", mock.Anything, shopID).Return(nil, assert.AnError)
			},
		},
		"list items error": {
			mockStorage: func(storage *mocks.Storage) {
				shop := testShop
				storage.On("GetShop", mock.Anything, shopID).Return(&shop, nil)
				storage.On("ListItems", mock.Anything, shopID).Return(nil, assert.AnError)
			},
		},
		"update error": {
			mockStorage: func(storage *mocks.Storage) {
				shop := testShop
				storage.On("GetShop", mock.Anything, shopID).Return(&shop, nil)
				storage.On("ListItems", mock.Anything, shopID).
					Return([]models.Item{modelstesting.FakeItem()}, nil)
				storage.On("UpdateItemDerived", mock.Anything, mock.Anything).Return(assert.AnError)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			storage := mocks.NewStorage(t)
			tt.mockStorage(storage)

			_, err := newReprocessor(storage).Reprocess(context.TODO(), shopID, nil, nil)

			require.ErrorIs(t, err, assert.AnError, "should return storage error")
		})
	}
}
