package storage_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/MichalMitros/catalog-feed-sync/internal/platform"
	"github.com/MichalMitros/catalog-feed-sync/internal/platform/models"
	"github.com/MichalMitros/catalog-feed-sync/internal/platform/models/modelstesting"
	"github.com/MichalMitros/catalog-feed-sync/internal/platform/storage"
	pgmodels "github.com/MichalMitros/catalog-feed-sync/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/catalog-feed-sync/internal/platform/storage/storagetesting"
	_ "github.com/lib/pq"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

var loc = func() *time.Location {
	loc, err := time.LoadLocation("Etc/UTC")
	if err != nil {
		panic(err)
	}
	return loc
}()

var now = time.Date(2024, time.April, 10, 1, 1, 1, 0, loc)

func TestPostgresIntegration(t *testing.T) {
	suite.Run(t, new(PostgresTestSuite))
}

type PostgresTestSuite struct {
	suite.Suite
	DB *sql.DB
}

func (s *PostgresTestSuite) SetupSuite() {
	s.DB = storagetesting.Open(s.T())
	storagetesting.CleanupData(s.T(), s.DB)
}

func (s *PostgresTestSuite) TearDownSuite() {
	storagetesting.CleanupData(s.T(), s.DB)
	if err := s.DB.Close(); err != nil {
		s.FailNow("close DB", err)
	}
}

func (s *PostgresTestSuite) storedShop(shopID int) pgmodels.Shop {
	return pgmodels.Shop{
		ID:                     int32(shopID),
		Name:                   "acme",
		APIURL:                 "https://acme.example",
		APIToken:               "token",
		Currency:               "EUR",
		Locale:                 "en_US",
		SearchEnabledDefault:   true,
		CheckoutEnabledDefault: true,
		SyncStatus:             models.StatusPending,
		FeedStatus:             models.StatusPending,
		CreatedAt:              now,
	}
}

func (s *PostgresTestSuite) TestIntegrationGetShop() {
	defer storagetesting.CleanupData(s.T(), s.DB)
	storagetesting.InsertShops(s.T(), s.DB, s.storedShop(123))

	post := storage.NewPostgres(s.DB)

	shop, err := post.GetShop(context.TODO(), 123)

	s.Require().NoError(err, "shouldn't return any error")
	s.Equal(123, shop.ID)
	s.Equal("acme", shop.Name)
	s.Equal("EUR", shop.Currency)

	_, err = post.GetShop(context.TODO(), 999)
	s.Require().ErrorIs(err, platform.ErrShopNotFound, "should return not found error")
}

func (s *PostgresTestSuite) TestIntegrationListActiveShops() {
	defer storagetesting.CleanupData(s.T(), s.DB)

	deletedShop := s.storedShop(2)
	deletedShop.DeletedAt = lo.ToPtr(now)
	storagetesting.InsertShops(s.T(), s.DB, s.storedShop(1), deletedShop, s.storedShop(3))

	post := storage.NewPostgres(s.DB)

	shops, err := post.ListActiveShops(context.TODO())

	s.Require().NoError(err, "shouldn't return any error")
	s.Require().Len(shops, 2, "deleted shops should be excluded")
	s.Equal(1, shops[0].ID)
	s.Equal(3, shops[1].ID)
}

func (s *PostgresTestSuite) TestIntegrationSetSyncCompleted() {
	defer storagetesting.CleanupData(s.T(), s.DB)

	shop := s.storedShop(123)
	shop.SyncStatus = models.StatusSyncing
	storagetesting.InsertShops(s.T(), s.DB, shop)

	post := storage.NewPostgres(s.DB)

	err := post.SetSyncCompleted(context.TODO(), 123, now)

	s.Require().NoError(err, "shouldn't return any error")
	stored := storagetesting.GetShop(s.T(), s.DB, 123)
	s.Equal(models.StatusCompleted, stored.SyncStatus)
	s.Require().NotNil(stored.LastSyncedAt)
	s.True(stored.LastSyncedAt.Equal(now), "last synced timestamp should be stored")

	err = post.SetSyncCompleted(context.TODO(), 999, now)
	s.Require().ErrorIs(err, platform.ErrShopNotFound, "should return not found error")
}

func (s *PostgresTestSuite) TestIntegrationStartRun() {
	storagetesting.CleanupData(s.T(), s.DB)

	tests := map[string]struct {
		storedRuns []pgmodels.SyncRun
		wantErr    error
	}{
		"first run": {},
		"after successful run": {
			storedRuns: []pgmodels.SyncRun{
				{
					ShopID:     123,
					Mode:       "FULL",
					CreatedAt:  now.Add(-time.Hour),
					Success:    lo.ToPtr(true),
					FinishedAt: lo.ToPtr(now.Add(-time.Hour)),
				},
			},
		},
		"after failed run": {
			storedRuns: []pgmodels.SyncRun{
				{
					ShopID:     123,
					Mode:       "FULL",
					CreatedAt:  now.Add(-time.Hour),
					Success:    lo.ToPtr(false),
					FinishedAt: lo.ToPtr(now.Add(-time.Hour)),
				},
			},
		},
		"already running error": {
			storedRuns: []pgmodels.SyncRun{
				{
					ShopID:    123,
					Mode:      "FULL",
					CreatedAt: now.Add(-time.Hour),
				},
			},
			wantErr: platform.ErrAlreadyRunning,
		},
	}

	for name, tt := range tests {
		s.Run(name, func() {
			defer storagetesting.CleanupData(s.T(), s.DB)
			storagetesting.InsertShops(s.T(), s.DB, s.storedShop(123))
			storagetesting.InsertRuns(s.T(), s.DB, tt.storedRuns...)

			post := storage.NewPostgres(s.DB)

			run, err := post.StartRun(context.TODO(), 123, "INCREMENTAL")

			if tt.wantErr != nil {
				s.Require().ErrorIs(err, tt.wantErr, "should return correct error")
				return
			}

			s.Require().NoError(err, "shouldn't return any error")
			s.Require().NotNil(run)
			s.NotZero(run.ID, "run should have id")
			s.Equal(123, run.ShopID)
			s.Equal("INCREMENTAL", run.Mode)
		})
	}
}

func (s *PostgresTestSuite) TestIntegrationFinishRun() {
	defer storagetesting.CleanupData(s.T(), s.DB)
	storagetesting.InsertShops(s.T(), s.DB, s.storedShop(123))

	post := storage.NewPostgres(s.DB)

	run, err := post.StartRun(context.TODO(), 123, "FULL")
	s.Require().NoError(err, "shouldn't return any error")

	run.FinishedAt = lo.ToPtr(now)
	run.IsSuccess = lo.ToPtr(true)
	run.CreatedItems = lo.ToPtr(int32(5))
	run.UpdatedItems = lo.ToPtr(int32(3))
	run.SkippedItems = lo.ToPtr(int32(10))
	run.FailedItems = lo.ToPtr(int32(1))

	err = post.FinishRun(context.TODO(), run)

	s.Require().NoError(err, "shouldn't return any error")
	runs := storagetesting.GetRuns(s.T(), s.DB)
	s.Require().Len(runs, 1)
	s.Equal(lo.ToPtr(true), runs[0].Success)
	s.Equal(lo.ToPtr(int32(5)), runs[0].CreatedItems)
	s.Equal(lo.ToPtr(int32(3)), runs[0].UpdatedItems)
	s.Equal(lo.ToPtr(int32(10)), runs[0].SkippedItems)
	s.Equal(lo.ToPtr(int32(1)), runs[0].FailedItems)
	s.Require().NotNil(runs[0].FinishedAt)
}

func (s *PostgresTestSuite) TestIntegrationUpsertItemsPreservesUserFields() {
	defer storagetesting.CleanupData(s.T(), s.DB)
	storagetesting.InsertShops(s.T(), s.DB, s.storedShop(123))
	storagetesting.InsertProducts(s.T(), s.DB, pgmodels.Product{
		ShopID:        123,
		ExternalID:    "1",
		RawPayload:    `{"id":"1"}`,
		Checksum:      "old-checksum",
		Attributes:    `{"id":"1"}`,
		Overrides:     `{"title":"Manual title"}`,
		Selected:      false,
		SyncState:     models.StateSynced,
		Valid:         true,
		SearchEnabled: false,
		CreatedAt:     now.Add(-time.Hour),
	})

	items := []models.Item{
		modelstesting.FakeItem(func(i *models.Item) {
			i.ShopID = 123
			i.ExternalID = "1"
			i.Checksum = "new-checksum"
		}),
		modelstesting.FakeItem(func(i *models.Item) {
			i.ShopID = 123
			i.ExternalID = "2"
		}),
	}

	post := storage.NewPostgres(s.DB)

	created, updated, err := post.UpsertItems(context.TODO(), 123, items)

	s.Require().NoError(err, "shouldn't return any error")
	s.Equal(int32(1), created, "should create one item")
	s.Equal(int32(1), updated, "should update one item")

	products := storagetesting.GetProductsByShopID(s.T(), s.DB, 123)
	s.Require().Len(products, 2)

	stored, found := lo.Find(products, func(p pgmodels.Product) bool { return p.ExternalID == "1" })
	s.Require().True(found)
	s.Equal("new-checksum", stored.Checksum, "content columns should be updated")
	s.False(stored.Selected, "stored selection should be preserved")
	s.False(stored.SearchEnabled, "stored search toggle should be preserved")
	s.Equal(`{"title":"Manual title"}`, stored.Overrides, "stored overrides should be preserved")
}

func (s *PostgresTestSuite) TestIntegrationItemStates() {
	defer storagetesting.CleanupData(s.T(), s.DB)
	storagetesting.InsertShops(s.T(), s.DB, s.storedShop(123))
	storagetesting.InsertProducts(s.T(), s.DB,
		pgmodels.Product{
			ShopID: 123, ExternalID: "1", Checksum: "aaa",
			Overrides: `{"title":"Manual title"}`,
			SyncState: models.StateSynced, CreatedAt: now,
		},
		pgmodels.Product{ShopID: 123, ExternalID: "2", Checksum: "bbb", SyncState: models.StateSynced, CreatedAt: now},
	)

	post := storage.NewPostgres(s.DB)

	states, err := post.ItemStates(context.TODO(), 123)

	s.Require().NoError(err, "shouldn't return any error")
	s.Equal(map[string]models.ItemState{
		"1": {Checksum: "aaa", Overrides: map[string]string{"title": "Manual title"}},
		"2": {Checksum: "bbb", Overrides: map[string]string{}},
	}, states)
}

func (s *PostgresTestSuite) TestIntegrationMarkItemSynced() {
	defer storagetesting.CleanupData(s.T(), s.DB)
	storagetesting.InsertShops(s.T(), s.DB, s.storedShop(123))
	storagetesting.InsertProducts(s.T(), s.DB, pgmodels.Product{
		ShopID:     123,
		ExternalID: "1",
		SyncState:  models.StateDiscovered,
		CreatedAt:  now,
	})

	post := storage.NewPostgres(s.DB)

	err := post.MarkItemSynced(context.TODO(), 123, "1", now)

	s.Require().NoError(err, "shouldn't return any error")
	products := storagetesting.GetProductsByShopID(s.T(), s.DB, 123)
	s.Require().Len(products, 1)
	s.Equal(models.StateSynced, products[0].SyncState)
	s.Require().NotNil(products[0].UpdatedAt)

	err = post.MarkItemSynced(context.TODO(), 123, "missing", now)
	s.Require().Error(err, "should return error for missing item")
}

func (s *PostgresTestSuite) TestIntegrationListItemsRoundTrip() {
	defer storagetesting.CleanupData(s.T(), s.DB)
	storagetesting.InsertShops(s.T(), s.DB, s.storedShop(123))

	item := modelstesting.FakeItem(func(i *models.Item) {
		i.ShopID = 123
		i.ExternalID = "1"
		i.Attributes = map[string]*string{"id": lo.ToPtr("1"), "title": lo.ToPtr("Mug"), "brand": nil}
		i.Overrides = map[string]string{"title": "Manual"}
		i.ValidationErrors = []string{"missing required attribute link", "missing required attribute price"}
		i.Valid = false
	})

	post := storage.NewPostgres(s.DB)

	_, _, err := post.UpsertItems(context.TODO(), 123, []models.Item{item})
	s.Require().NoError(err, "shouldn't return any error")

	listed, err := post.ListItems(context.TODO(), 123)

	s.Require().NoError(err, "shouldn't return any error")
	s.Require().Len(listed, 1)
	s.Equal(item.Attributes, listed[0].Attributes, "attributes should round trip")
	s.Equal(item.Overrides, listed[0].Overrides, "overrides should round trip")
	s.Equal(item.ValidationErrors, listed[0].ValidationErrors, "validation errors should round trip")
	s.False(listed[0].Valid)
}

func (s *PostgresTestSuite) TestIntegrationDeleteSnapshotsBefore() {
	defer storagetesting.CleanupData(s.T(), s.DB)
	storagetesting.InsertShops(s.T(), s.DB, s.storedShop(123))

	ages := []int{2, 6, 8, 10}
	snapshots := make([]pgmodels.FeedSnapshot, 0, len(ages))
	for _, age := range ages {
		snapshots = append(snapshots, pgmodels.FeedSnapshot{
			ShopID:      123,
			GeneratedAt: now.AddDate(0, 0, -age),
			ItemCount:   int32(age),
			StorageKey:  fmt.Sprintf("123/feed-%d.jsonl.gz", age),
			StorageURL:  "https://blobs.example/123",
			Payload:     []byte("{}"),
		})
	}
	storagetesting.InsertSnapshots(s.T(), s.DB, snapshots...)

	post := storage.NewPostgres(s.DB)

	deleted, err := post.DeleteSnapshotsBefore(context.TODO(), 123, now.AddDate(0, 0, -7))

	s.Require().NoError(err, "shouldn't return any error")
	s.Require().Len(deleted, 2, "only snapshots older than cutoff should be deleted")
	counts := lo.Map(deleted, func(snap models.FeedSnapshot, _ int) int32 { return snap.ItemCount })
	s.ElementsMatch([]int32{8, 10}, counts)

	remaining := storagetesting.GetSnapshots(s.T(), s.DB)
	s.Require().Len(remaining, 2, "recent snapshots should be kept")
}

func (s *PostgresTestSuite) TestIntegrationInsertSnapshot() {
	defer storagetesting.CleanupData(s.T(), s.DB)
	storagetesting.InsertShops(s.T(), s.DB, s.storedShop(123))

	snap := modelstesting.FakeSnapshot(func(sn *models.FeedSnapshot) {
		sn.ShopID = 123
		sn.GeneratedAt = now
	})

	post := storage.NewPostgres(s.DB)

	err := post.InsertSnapshot(context.TODO(), &snap)

	s.Require().NoError(err, "shouldn't return any error")
	s.NotZero(snap.ID, "snapshot should have id")

	stored := storagetesting.GetSnapshots(s.T(), s.DB)
	s.Require().Len(stored, 1)
	s.Equal(snap.StorageKey, stored[0].StorageKey)
	s.Equal(snap.Payload, stored[0].Payload)
}
