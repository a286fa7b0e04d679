// Package syncer orchestrates one shop catalog sync:
// fetch, checksum diff, attribute resolution, validation and upsert.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/MichalMitros/catalog-feed-sync/internal/platform"
	"github.com/MichalMitros/catalog-feed-sync/internal/platform/models"
	"github.com/MichalMitros/catalog-feed-sync/internal/resolver"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

//go:generate mockery --name Fetcher --filename fetcher.go
//go:generate mockery --name Storage --filename storage.go

// Mode is requested sync mode.
type Mode string

// Sync modes.
const (
	ModeFull        Mode = "FULL"
	ModeIncremental Mode = "INCREMENTAL"
	ModeSingleItem  Mode = "SINGLE_ITEM"
)

// Fetcher fetches catalog data from the external API.
type Fetcher interface {
	// FetchCatalog fetches all (or, with since set, recently modified) catalog records with variations.
	FetchCatalog(ctx context.Context, shop *models.Shop, since *time.Time) ([]models.RawRecord, error)
	// ListCategories fetches category ID to name map.
	ListCategories(ctx context.Context, shop *models.Shop) (map[int64]string, error)
	// StoreSettings fetches tenant-level store defaults.
	StoreSettings(ctx context.Context, shop *models.Shop) (models.StoreSettings, error)
}

// Clock provides times.
type Clock interface {
	// Timestamp returns UTC unix timestamp.
	Timestamp() int64
	// Now returns current UTC time.
	Now() *time.Time
}

// Storage is shops, runs and items storage.
type Storage interface {
	// GetShop returns shop by ID.
	GetShop(ctx context.Context, shopID int) (*models.Shop, error)
	// SetSyncStatus updates shop's sync status.
	SetSyncStatus(ctx context.Context, shopID int, status string) error
	// SetSyncCompleted marks shop sync completed and stores the last successful sync timestamp.
	SetSyncCompleted(ctx context.Context, shopID int, at time.Time) error
	// StartRun creates new run if there is no run for provided shop running.
	StartRun(ctx context.Context, shopID int, mode string) (run *models.Run, err error)
	// FinishRun finishes provided run and updates its statistics.
	FinishRun(ctx context.Context, run *models.Run) error
	// ItemStates returns stored items' external IDs mapped to their
	// content checksums and manual overrides.
	ItemStates(ctx context.Context, shopID int) (map[string]models.ItemState, error)
	// UpsertItems creates new items and updates existing items preserving user-owned fields.
	// Returns number of created and updated items.
	UpsertItems(ctx context.Context, shopID int, items []models.Item) (created int32, updated int32, err error)
	// MarkItemSynced sets single item's sync state to synced.
	MarkItemSynced(ctx context.Context, shopID int, externalID string, at time.Time) error
}

// Result holds per-run item statistics.
type Result struct {
	Created int32
	Updated int32
	Skipped int32
	Failed  int32
}

// Option is custom configuration of Syncer.
type Option func(s *Syncer)

// Syncer fetches, diffs and upserts shop catalogs.
type Syncer struct {
	fetcher   Fetcher
	storage   Storage
	batchSize uint
	clock     Clock
}

// NewSyncer returns new Syncer.
func NewSyncer(fetcher Fetcher, storage Storage, batchSize uint, ops ...Option) *Syncer {
	syn := &Syncer{
		fetcher:   fetcher,
		storage:   storage,
		batchSize: batchSize,
		clock:     systemClock{},
	}

	for _, op := range ops {
		op(syn)
	}

	return syn
}

// Sync synchronizes one shop catalog. For ModeSingleItem only the item with
// itemID is marked synced without any fetch. A shop without credentials
// completes as a no-op. First-ever sync is always full.
func (s *Syncer) Sync(ctx context.Context, shopID int, mode Mode, itemID string) (Result, error) {
	shop, err := s.storage.GetShop(ctx, shopID)
	if err != nil {
		return Result{}, fmt.Errorf("can't get shop: %w", err)
	}

	if !shop.HasCredentials() {
		if err := s.storage.SetSyncCompleted(ctx, shop.ID, *s.clock.Now()); err != nil {
			return Result{}, fmt.Errorf("can't complete sync without credentials: %w", err)
		}
		return Result{}, nil
	}

	if mode == ModeSingleItem {
		if err := s.storage.MarkItemSynced(ctx, shop.ID, itemID, *s.clock.Now()); err != nil {
			return Result{}, fmt.Errorf("can't mark item synced: %w", err)
		}
		return Result{Updated: 1}, nil
	}

	if shop.LastSyncedAt == nil {
		mode = ModeFull
	}

	run, err := s.storage.StartRun(ctx, shop.ID, string(mode))
	if err != nil {
		return Result{}, fmt.Errorf("can't start sync: %w", err)
	}

	if err := s.storage.SetSyncStatus(ctx, shop.ID, models.StatusSyncing); err != nil {
		return Result{}, s.finishSync(ctx, run, fmt.Errorf("can't set sync status: %w", err))
	}

	result, err := s.syncCatalog(ctx, shop, mode)

	run.CreatedItems = &result.Created
	run.UpdatedItems = &result.Updated
	run.SkippedItems = &result.Skipped
	run.FailedItems = &result.Failed

	if errors.Is(err, platform.ErrInvalidCredentials) {
		// Rejected credentials are a terminal shop state, not a job failure.
		run.StatusMessage = lo.ToPtr(err.Error())
		if err := s.finishSync(ctx, run, nil); err != nil {
			return result, err
		}
		if err := s.storage.SetSyncCompleted(ctx, shop.ID, *s.clock.Now()); err != nil {
			return result, fmt.Errorf("can't complete sync: %w", err)
		}
		return result, nil
	}

	if err != nil {
		return result, s.finishSync(ctx, run, err)
	}

	if err := s.storage.SetSyncCompleted(ctx, shop.ID, *s.clock.Now()); err != nil {
		return result, s.finishSync(ctx, run, fmt.Errorf("can't complete sync: %w", err))
	}

	return result, s.finishSync(ctx, run, nil)
}

func (s *Syncer) syncCatalog(ctx context.Context, shop *models.Shop, mode Mode) (Result, error) {
	settings, err := s.fetcher.StoreSettings(ctx, shop)
	if err != nil {
		return Result{}, fmt.Errorf("can't fetch store settings: %w", err)
	}
	applySettings(shop, settings)

	categories, err := s.fetcher.ListCategories(ctx, shop)
	if err != nil {
		return Result{}, fmt.Errorf("can't fetch categories: %w", err)
	}

	var since *time.Time
	if mode == ModeIncremental {
		since = shop.LastSyncedAt
	}

	records, err := s.fetcher.FetchCatalog(ctx, shop, since)
	if err != nil {
		return Result{}, fmt.Errorf("can't fetch catalog: %w", err)
	}

	states, err := s.storage.ItemStates(ctx, shop.ID)
	if err != nil {
		return Result{}, fmt.Errorf("can't get stored item states: %w", err)
	}

	return s.processRecords(ctx, shop, resolver.NewResolver(categories), states, records)
}

// processRecords diffs fetched records against stored checksums and upserts
// changed ones in batches. Unchanged records are skipped entirely, which is
// the main cost optimization: attribute resolution is the expensive step.
func (s *Syncer) processRecords(
	ctx context.Context,
	shop *models.Shop,
	res *resolver.Resolver,
	states map[string]models.ItemState,
	records []models.RawRecord,
) (Result, error) {
	batches := make(chan []models.Item)
	result := Result{}

	errGroup, egCtx := errgroup.WithContext(ctx)

	// resolve changed records into batches.
	errGroup.Go(func() error {
		defer close(batches)

		skipped, failed, err := s.resolveRecords(egCtx, shop, res, states, records, batches)
		_ = atomic.AddInt32(&result.Skipped, skipped)
		_ = atomic.AddInt32(&result.Failed, failed)

		return err
	})

	// upsert batches.
	errGroup.Go(func() error {
		for batch := range batches {
			created, updated, err := s.storage.UpsertItems(egCtx, shop.ID, batch)
			_ = atomic.AddInt32(&result.Created, created)
			_ = atomic.AddInt32(&result.Updated, updated)

			if err != nil {
				return fmt.Errorf("can't upsert items: %w", err)
			}
		}

		return nil
	})

	err := errGroup.Wait()

	return result, err
}

func (s *Syncer) resolveRecords(
	ctx context.Context,
	shop *models.Shop,
	res *resolver.Resolver,
	states map[string]models.ItemState,
	records []models.RawRecord,
	output chan<- []models.Item,
) (int32, int32, error) {
	skipped := int32(0)
	failed := int32(0)
	batch := make([]models.Item, 0, s.batchSize)

	for ix := range records {
		normalized, checksum, err := Checksum(records[ix].Payload)
		if err != nil {
			failed++
			continue
		}

		stored, exists := states[records[ix].ExternalID]
		if exists && stored.Checksum == checksum {
			skipped++
			continue
		}

		item := s.buildItem(shop, res, &records[ix], normalized, checksum, stored.Overrides)
		if !item.Valid {
			failed++
		}

		batch = append(batch, item)
		if len(batch) == int(s.batchSize) {
			select {
			case <-ctx.Done():
				return skipped, failed, ctx.Err()
			case output <- batch:
			}
			batch = make([]models.Item, 0, s.batchSize)
		}
	}

	if len(batch) > 0 {
		select {
		case <-ctx.Done():
			return skipped, failed, ctx.Err()
		case output <- batch:
		}
	}

	return skipped, failed, nil
}

// buildItem derives and validates one item. Stored manual overrides win over
// fetched payload values during resolution. A record which fails resolution
// is stored anyway with its diagnostics, so one bad record never blocks the batch.
func (s *Syncer) buildItem(
	shop *models.Shop,
	res *resolver.Resolver,
	record *models.RawRecord,
	normalized string,
	checksum string,
	overrides map[string]string,
) models.Item {
	if overrides == nil {
		overrides = map[string]string{}
	}

	item := models.Item{
		ShopID:           shop.ID,
		ExternalID:       record.ExternalID,
		ParentExternalID: record.ParentExternalID,
		RawPayload:       normalized,
		Checksum:         checksum,
		Overrides:        overrides,
		SyncState:        models.StateSynced,
		SearchEnabled:    shop.SearchEnabledDefault,
		CheckoutEnabled:  shop.CheckoutEnabledDefault,
		UpdatedAt:        s.clock.Now(),
	}

	if record.ExternalID == "" {
		item.SyncState = models.StateError
		item.Valid = false
		item.ValidationErrors = []string{"record has no external id"}
		return item
	}

	item.Attributes = res.Resolve(record.Payload, record.ExternalID, shop, overrides)
	item.Valid, item.ValidationErrors = resolver.Validate(item.Attributes)

	return item
}

func (s *Syncer) finishSync(ctx context.Context, run *models.Run, status error) error {
	if status != nil {
		run.StatusMessage = lo.ToPtr(status.Error())
	}
	run.IsSuccess = lo.ToPtr(status == nil)
	run.FinishedAt = s.clock.Now()

	err := s.storage.FinishRun(ctx, run)
	if err != nil && status == nil {
		return fmt.Errorf("can't finish sync: %w", err)
	}

	if err != nil && status != nil {
		return fmt.Errorf("can't finish failed sync: %w (fail reason: %w)", err, status)
	}

	return status
}

// applySettings fills missing shop defaults from fetched store settings.
func applySettings(shop *models.Shop, settings models.StoreSettings) {
	if shop.Currency == "" {
		shop.Currency = settings.Currency
	}
	if shop.Locale == "" {
		shop.Locale = settings.Locale
	}
}

// WithClock sets Syncer's custom Clock.
func WithClock(c Clock) Option {
	return func(s *Syncer) {
		s.clock = c
	}
}
