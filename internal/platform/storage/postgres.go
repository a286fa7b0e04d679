package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MichalMitros/catalog-feed-sync/internal/platform"
	"github.com/MichalMitros/catalog-feed-sync/internal/platform/models"
	"github.com/MichalMitros/catalog-feed-sync/internal/platform/storage/gen/postgres/public/table"
	"github.com/samber/lo"

	pgmodels "github.com/MichalMitros/catalog-feed-sync/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// Postgres is storage for shops, runs, items and feed snapshots.
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns new Postgres.
func NewPostgres(db *sql.DB) Postgres {
	return Postgres{
		db: db,
	}
}

// GetShop returns shop by ID or platform.ErrShopNotFound.
func (p Postgres) GetShop(ctx context.Context, shopID int) (*models.Shop, error) {
	var shop pgmodels.Shop
	err := table.Shop.SELECT(table.Shop.AllColumns).
		WHERE(table.Shop.ID.EQ(pg.Int32(int32(shopID)))).
		QueryContext(ctx, p.db, &shop)

	if errors.Is(err, qrm.ErrNoRows) {
		return nil, platform.ErrShopNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("can't get shop from database: %w", err)
	}

	return fromDBShop(&shop), nil
}

// ListActiveShops returns all not-deleted shops ordered by ID.
func (p Postgres) ListActiveShops(ctx context.Context) ([]models.Shop, error) {
	var dbShops []pgmodels.Shop
	err := table.Shop.SELECT(table.Shop.AllColumns).
		WHERE(table.Shop.DeletedAt.IS_NULL()).
		ORDER_BY(table.Shop.ID.ASC()).
		QueryContext(ctx, p.db, &dbShops)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get shops from database: %w", err)
	}

	shops := make([]models.Shop, 0, len(dbShops))
	for ix := range dbShops {
		shops = append(shops, *fromDBShop(&dbShops[ix]))
	}

	return shops, nil
}

// SetSyncStatus updates shop's sync status.
func (p Postgres) SetSyncStatus(ctx context.Context, shopID int, status string) error {
	return p.updateShop(ctx, shopID, table.Shop.UPDATE(table.Shop.SyncStatus).
		SET(pg.String(status)).
		WHERE(table.Shop.ID.EQ(pg.Int32(int32(shopID)))))
}

// SetSyncCompleted marks shop sync as completed and updates last successful sync timestamp.
func (p Postgres) SetSyncCompleted(ctx context.Context, shopID int, at time.Time) error {
	return p.updateShop(ctx, shopID, table.Shop.UPDATE(table.Shop.SyncStatus, table.Shop.LastSyncedAt).
		SET(pg.String(models.StatusCompleted), pg.TimestampzT(at)).
		WHERE(table.Shop.ID.EQ(pg.Int32(int32(shopID)))))
}

// SetFeedStatus updates shop's feed status.
func (p Postgres) SetFeedStatus(ctx context.Context, shopID int, status string) error {
	return p.updateShop(ctx, shopID, table.Shop.UPDATE(table.Shop.FeedStatus).
		SET(pg.String(status)).
		WHERE(table.Shop.ID.EQ(pg.Int32(int32(shopID)))))
}

func (p Postgres) updateShop(ctx context.Context, shopID int, stmt pg.UpdateStatement) error {
	result, err := stmt.ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update shop: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); rowsAffected == 0 || err != nil {
		return platform.ErrShopNotFound
	}

	return nil
}

// StartRun creates new unfinished sync run in database and returns it.
// It returns ErrAlreadyRunning if previous run is not finished yet.
func (p Postgres) StartRun(ctx context.Context, shopID int, mode string) (*models.Run, error) {
	run := &models.Run{
		ShopID: shopID,
		Mode:   mode,
	}

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		lastRun, err := getLastRun(ctx, tx, int64(shopID))

		if err != nil && !errors.Is(err, qrm.ErrNoRows) {
			return fmt.Errorf("can't get last run from database: %w", err)
		}

		if lastRun != nil && lastRun.FinishedAt == nil && lastRun.Success == nil {
			return platform.ErrAlreadyRunning
		}

		newRun := toDBRun(run)
		err = table.SyncRun.INSERT(
			table.SyncRun.ShopID,
			table.SyncRun.Mode,
		).
			MODEL(newRun).
			RETURNING(table.SyncRun.ID).
			QueryContext(ctx, tx, newRun)
		if err != nil {
			return fmt.Errorf("can't insert run into database: %w", err)
		}

		run.ID = int(newRun.ID)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("can't add run: %w", err)
	}

	return run, nil
}

// FinishRun sets run as finished and updates run's statistics.
func (p Postgres) FinishRun(ctx context.Context, run *models.Run) error {
	columnList := table.SyncRun.AllColumns.Except(table.SyncRun.ID, table.SyncRun.CreatedAt, table.SyncRun.Mode)

	result, err := table.SyncRun.UPDATE(columnList).
		MODEL(toDBRun(run)).
		WHERE(table.SyncRun.ID.EQ(pg.Int32(int32(run.ID)))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update run: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); rowsAffected == 0 || err != nil {
		return fmt.Errorf("can't update run: %w", err)
	}

	return nil
}

// ItemStates returns map of shop items' external IDs to their stored content
// checksums and manual overrides.
func (p Postgres) ItemStates(ctx context.Context, shopID int) (map[string]models.ItemState, error) {
	var items []pgmodels.Product
	err := table.Product.SELECT(table.Product.ExternalID, table.Product.Checksum, table.Product.Overrides).
		WHERE(table.Product.ShopID.EQ(pg.Int32(int32(shopID)))).
		QueryContext(ctx, p.db, &items)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get item states: %w", err)
	}

	states := make(map[string]models.ItemState, len(items))
	for ix := range items {
		states[items[ix].ExternalID] = models.ItemState{
			Checksum:  items[ix].Checksum,
			Overrides: unmarshalOverrides(items[ix].Overrides),
		}
	}

	return states, nil
}

// UpsertItems creates new items and updates existing ones in place.
// Updates preserve the stored selected flag, manual overrides and feed toggles.
// Returns number of created and updated items.
func (p Postgres) UpsertItems(ctx context.Context, shopID int, items []models.Item) (int32, int32, error) {
	createdNumber := lo.ToPtr(int32(0))
	updatedNumber := lo.ToPtr(int32(0))

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		externalIDs := lo.Map(items, func(_ models.Item, ix int) string {
			return items[ix].ExternalID
		})
		existing, err := getExistingExternalIDs(ctx, tx, int64(shopID), externalIDs)
		if err != nil {
			return fmt.Errorf("can't get existing items: %w", err)
		}

		newItems, updatedItems := splitItems(items, existing)

		if err = insertItems(ctx, tx, newItems, int32(shopID)); err != nil {
			return fmt.Errorf("can't insert new items: %w", err)
		}

		if err = updateItems(ctx, tx, updatedItems, int32(shopID)); err != nil {
			return fmt.Errorf("can't update existing items: %w", err)
		}

		*createdNumber = int32(len(newItems))
		*updatedNumber = int32(len(updatedItems))

		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return *createdNumber, *updatedNumber, nil
}

// MarkItemSynced sets single item's sync state to synced.
func (p Postgres) MarkItemSynced(ctx context.Context, shopID int, externalID string, at time.Time) error {
	result, err := table.Product.UPDATE(table.Product.SyncState, table.Product.UpdatedAt).
		SET(pg.String(models.StateSynced), pg.TimestampzT(at)).
		WHERE(pg.AND(
			table.Product.ShopID.EQ(pg.Int32(int32(shopID))),
			table.Product.ExternalID.EQ(pg.String(externalID)),
		)).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't mark item synced: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); rowsAffected == 0 || err != nil {
		return fmt.Errorf("can't mark item synced: no such item")
	}

	return nil
}

// ListItems returns all shop items ordered by external ID.
func (p Postgres) ListItems(ctx context.Context, shopID int) ([]models.Item, error) {
	var dbItems []pgmodels.Product
	err := table.Product.SELECT(table.Product.AllColumns).
		WHERE(table.Product.ShopID.EQ(pg.Int32(int32(shopID)))).
		ORDER_BY(table.Product.ExternalID.ASC()).
		QueryContext(ctx, p.db, &dbItems)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get items: %w", err)
	}

	items := make([]models.Item, 0, len(dbItems))
	for ix := range dbItems {
		items = append(items, *FromDBProduct(&dbItems[ix]))
	}

	return items, nil
}

// UpdateItemDerived updates items' derived attributes, overrides and validation results.
// Raw payload, checksum, selection and feed toggles are left untouched.
func (p Postgres) UpdateItemDerived(ctx context.Context, items []models.Item) error {
	return runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		for ix := range items {
			dbItem := ToDBProduct(&items[ix], int64(items[ix].ShopID))
			result, err := table.Product.UPDATE(
				table.Product.Attributes,
				table.Product.Overrides,
				table.Product.Valid,
				table.Product.ValidationErrors,
				table.Product.UpdatedAt,
			).
				MODEL(dbItem).
				WHERE(table.Product.ID.EQ(pg.Int32(dbItem.ID))).
				ExecContext(ctx, tx)
			if err != nil {
				return fmt.Errorf("can't update item %q: %w", items[ix].ExternalID, err)
			}

			if rowsAffected, err := result.RowsAffected(); rowsAffected == 0 || err != nil {
				return fmt.Errorf("can't update item %q: no such item", items[ix].ExternalID)
			}
		}

		return nil
	})
}

// InsertSnapshot persists new immutable feed snapshot and sets its ID.
func (p Postgres) InsertSnapshot(ctx context.Context, snap *models.FeedSnapshot) error {
	dbSnap := toDBSnapshot(snap)
	err := table.FeedSnapshot.INSERT(table.FeedSnapshot.AllColumns.Except(table.FeedSnapshot.ID)).
		MODEL(dbSnap).
		RETURNING(table.FeedSnapshot.ID).
		QueryContext(ctx, p.db, dbSnap)
	if err != nil {
		return fmt.Errorf("can't insert feed snapshot: %w", err)
	}

	snap.ID = int(dbSnap.ID)

	return nil
}

// DeleteSnapshotsBefore deletes all shop snapshots generated before cutoff in one transaction
// and returns the deleted snapshots' metadata for follow-up blob cleanup.
func (p Postgres) DeleteSnapshotsBefore(ctx context.Context, shopID int, cutoff time.Time) ([]models.FeedSnapshot, error) {
	var deleted []pgmodels.FeedSnapshot

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		err := table.FeedSnapshot.DELETE().
			WHERE(pg.AND(
				table.FeedSnapshot.ShopID.EQ(pg.Int32(int32(shopID))),
				table.FeedSnapshot.GeneratedAt.LT(pg.TimestampzT(cutoff)),
			)).
			RETURNING(
				table.FeedSnapshot.ID,
				table.FeedSnapshot.ShopID,
				table.FeedSnapshot.GeneratedAt,
				table.FeedSnapshot.ItemCount,
				table.FeedSnapshot.StorageKey,
				table.FeedSnapshot.StorageURL,
			).
			QueryContext(ctx, tx, &deleted)
		if err != nil && !errors.Is(err, qrm.ErrNoRows) {
			return fmt.Errorf("can't delete old snapshots: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	snapshots := make([]models.FeedSnapshot, 0, len(deleted))
	for ix := range deleted {
		snapshots = append(snapshots, *fromDBSnapshot(&deleted[ix]))
	}

	return snapshots, nil
}

func splitItems(items []models.Item, existing map[string]struct{}) ([]models.Item, []models.Item) {
	newItems := make([]models.Item, 0, len(items))
	updatedItems := lo.Filter(items, func(_ models.Item, ix int) bool {
		if _, ok := existing[items[ix].ExternalID]; ok {
			return true
		}
		newItems = append(newItems, items[ix])
		return false
	})

	return newItems, updatedItems
}

func insertItems(ctx context.Context, db qrm.DB, items []models.Item, shopID int32) error {
	if len(items) == 0 {
		return nil
	}

	columnList := table.Product.AllColumns.Except(table.Product.ID, table.Product.CreatedAt)

	dbItems := make([]pgmodels.Product, 0, len(items))
	for ix := range items {
		dbItems = append(dbItems, *ToDBProduct(&items[ix], int64(shopID)))
	}

	_, err := table.Product.INSERT(columnList).
		MODELS(dbItems).
		ExecContext(ctx, db)
	if err != nil {
		return fmt.Errorf("can't insert items into database: %w", err)
	}

	return nil
}

// updateItems upserts existing items keeping user-owned columns (selected, overrides, toggles) intact.
func updateItems(ctx context.Context, db qrm.DB, items []models.Item, shopID int32) error {
	if len(items) == 0 {
		return nil
	}

	columnList := table.Product.AllColumns.Except(table.Product.ID, table.Product.CreatedAt)
	updateColumnList := table.Product.AllColumns.Except(
		table.Product.ID,
		table.Product.CreatedAt,
		table.Product.Selected,
		table.Product.Overrides,
		table.Product.SearchEnabled,
		table.Product.CheckoutEnabled,
	)

	dbItems := make([]pgmodels.Product, 0, len(items))
	for ix := range items {
		dbItems = append(dbItems, *ToDBProduct(&items[ix], int64(shopID)))
	}

	excludedExpressions := make([]pg.Expression, 0, len(updateColumnList)) // converting to expression
	for _, col := range table.Product.EXCLUDED.AllColumns.Except(
		table.Product.EXCLUDED.ID,
		table.Product.EXCLUDED.CreatedAt,
		table.Product.EXCLUDED.Selected,
		table.Product.EXCLUDED.Overrides,
		table.Product.EXCLUDED.SearchEnabled,
		table.Product.EXCLUDED.CheckoutEnabled,
	) {
		excludedExpressions = append(excludedExpressions, col)
	}

	_, err := table.Product.INSERT(columnList).
		MODELS(dbItems).
		ON_CONFLICT(table.Product.ShopID, table.Product.ExternalID).
		DO_UPDATE(
			pg.SET(
				updateColumnList.SET(pg.ROW(excludedExpressions...)),
			),
		).
		ExecContext(ctx, db)
	if err != nil {
		return fmt.Errorf("can't upsert items into database: %w", err)
	}

	return nil
}

func getExistingExternalIDs(ctx context.Context, db qrm.DB, shopID int64, externalIDs []string) (map[string]struct{}, error) {
	ids := make([]pg.Expression, 0, len(externalIDs))
	for ix := range externalIDs {
		ids = append(ids, pg.String(externalIDs[ix]))
	}

	items := make([]pgmodels.Product, 0, len(externalIDs))
	err := table.Product.SELECT(table.Product.ExternalID).
		WHERE(pg.AND(
			table.Product.ShopID.EQ(pg.Int32(int32(shopID))),
			table.Product.ExternalID.IN(ids...),
		)).
		QueryContext(ctx, db, &items)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, err
	}

	result := make(map[string]struct{}, len(items))
	for ix := range items {
		result[items[ix].ExternalID] = struct{}{}
	}

	return result, nil
}

func getLastRun(ctx context.Context, db qrm.DB, shopID int64) (*pgmodels.SyncRun, error) {
	var run pgmodels.SyncRun
	err := table.SyncRun.SELECT(
		table.SyncRun.CreatedAt,
		table.SyncRun.FinishedAt,
		table.SyncRun.Success,
		table.SyncRun.StatusMessage,
		table.SyncRun.FailedItems,
	).
		WHERE(table.SyncRun.ShopID.EQ(pg.Int(shopID))).
		ORDER_BY(table.SyncRun.CreatedAt.DESC()).
		LIMIT(1).
		QueryContext(ctx, db, &run)
	if err != nil {
		return nil, err
	}

	return &run, nil
}

func runInTransaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	var (
		tx  *sql.Tx
		err error
	)

	if tx, err = db.BeginTx(ctx, nil); err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("can't rollback transaction: %w (rollback reason: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}

	return nil
}
