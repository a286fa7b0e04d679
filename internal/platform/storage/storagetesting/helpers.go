package storagetesting

import (
	"database/sql"
	"os"
	"testing"

	pgmodels "github.com/MichalMitros/catalog-feed-sync/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/catalog-feed-sync/internal/platform/storage/gen/postgres/public/table"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"

	_ "github.com/lib/pq"
)

// Open opens connection to DB.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatal("please provide database URL via DATABASE_URL environment variable")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	return db
}

// InsertShops is a helper test function to insert shops.
func InsertShops(t *testing.T, exc qrm.Executable, shops ...pgmodels.Shop) {
	t.Helper()

	if len(shops) == 0 {
		return
	}

	toInsert := make([]pgmodels.Shop, 0, len(shops))
	toInsert = append(toInsert, shops...)

	_, err := table.Shop.INSERT(table.Shop.AllColumns).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert shops", err)
	}
}

// InsertRuns is a helper test function to insert sync runs.
func InsertRuns(t *testing.T, exc qrm.Executable, runs ...pgmodels.SyncRun) {
	t.Helper()

	if len(runs) == 0 {
		return
	}

	toInsert := make([]pgmodels.SyncRun, 0, len(runs))
	toInsert = append(toInsert, runs...)

	_, err := table.SyncRun.INSERT(table.SyncRun.AllColumns).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert runs", err)
	}
}

// InsertProducts is a helper test function to insert products.
func InsertProducts(t *testing.T, exc qrm.Executable, products ...pgmodels.Product) {
	t.Helper()

	if len(products) == 0 {
		return
	}

	toInsert := make([]pgmodels.Product, 0, len(products))
	toInsert = append(toInsert, products...)

	_, err := table.Product.INSERT(table.Product.AllColumns.Except(table.Product.ID)).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert products", err)
	}
}

// InsertSnapshots is a helper test function to insert feed snapshots.
func InsertSnapshots(t *testing.T, exc qrm.Executable, snapshots ...pgmodels.FeedSnapshot) {
	t.Helper()

	if len(snapshots) == 0 {
		return
	}

	toInsert := make([]pgmodels.FeedSnapshot, 0, len(snapshots))
	toInsert = append(toInsert, snapshots...)

	_, err := table.FeedSnapshot.INSERT(table.FeedSnapshot.AllColumns.Except(table.FeedSnapshot.ID)).
		MODELS(toInsert).
		Exec(exc)
	if err != nil {
		t.Fatal("can't insert snapshots", err)
	}
}

// GetRuns is a helper test function to get all sync runs.
func GetRuns(t *testing.T, queryable qrm.Queryable) []pgmodels.SyncRun {
	t.Helper()

	runs := []pgmodels.SyncRun{}
	err := table.SyncRun.SELECT(table.SyncRun.AllColumns).
		WHERE(table.SyncRun.ID.IS_NOT_NULL()).
		Query(queryable, &runs)
	if err != nil {
		t.Fatal("can't get runs", err)
	}

	return runs
}

// GetProducts is a helper test function to get all products.
func GetProducts(t *testing.T, queryable qrm.Queryable) []pgmodels.Product {
	t.Helper()

	products := []pgmodels.Product{}
	err := table.Product.SELECT(table.Product.AllColumns).
		WHERE(table.Product.ID.IS_NOT_NULL()).
		Query(queryable, &products)
	if err != nil {
		t.Fatal("can't get products", err)
	}

	return products
}

// GetProductsByShopID is a helper test function to get products by shop ID.
func GetProductsByShopID(t *testing.T, queryable qrm.Queryable, shopID int) []pgmodels.Product {
	t.Helper()

	products := []pgmodels.Product{}
	err := table.Product.SELECT(table.Product.AllColumns).
		WHERE(pg.AND(
			table.Product.ID.IS_NOT_NULL(),
			table.Product.ShopID.EQ(pg.Int32(int32(shopID))),
		)).
		Query(queryable, &products)
	if err != nil {
		t.Fatal("can't get products", err)
	}

	return products
}

// GetSnapshots is a helper test function to get all feed snapshots.
func GetSnapshots(t *testing.T, queryable qrm.Queryable) []pgmodels.FeedSnapshot {
	t.Helper()

	snapshots := []pgmodels.FeedSnapshot{}
	err := table.FeedSnapshot.SELECT(table.FeedSnapshot.AllColumns).
		WHERE(table.FeedSnapshot.ID.IS_NOT_NULL()).
		Query(queryable, &snapshots)
	if err != nil {
		t.Fatal("can't get snapshots", err)
	}

	return snapshots
}

// GetShop is a helper test function to get shop by ID.
func GetShop(t *testing.T, queryable qrm.Queryable, shopID int) *pgmodels.Shop {
	t.Helper()

	var shop pgmodels.Shop
	err := table.Shop.SELECT(table.Shop.AllColumns).
		WHERE(table.Shop.ID.EQ(pg.Int32(int32(shopID)))).
		Query(queryable, &shop)
	if err != nil {
		t.Fatal("can't get shop", err)
	}

	return &shop
}

// CleanupData is a helper test function to delete all data.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	_, err := table.FeedSnapshot.DELETE().WHERE(table.FeedSnapshot.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete snapshots data", err)
	}

	_, err = table.Product.DELETE().WHERE(table.Product.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete products data", err)
	}

	_, err = table.SyncRun.DELETE().WHERE(table.SyncRun.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete runs data", err)
	}

	_, err = table.Shop.DELETE().WHERE(table.Shop.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete shops data", err)
	}
}
