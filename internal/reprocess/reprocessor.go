// Package reprocess re-derives stored item attributes after attribute mapping
// or override changes, entirely from stored raw payloads, without calling the
// external API.
package reprocess

import (
	"context"
	"fmt"
	"time"

	"github.com/MichalMitros/catalog-feed-sync/internal/platform/models"
	"github.com/MichalMitros/catalog-feed-sync/internal/resolver"
)

//go:generate mockery --name Storage --filename storage.go

// Storage is shops and items storage.
type Storage interface {
	// GetShop returns shop by ID.
	GetShop(ctx context.Context, shopID int) (*models.Shop, error)
	// ListItems returns all shop's items ordered by external ID.
	ListItems(ctx context.Context, shopID int) ([]models.Item, error)
	// UpdateItemDerived updates derived fields of provided items in one transaction.
	UpdateItemDerived(ctx context.Context, items []models.Item) error
}

// Clock provides times.
type Clock interface {
	// Timestamp returns UTC unix timestamp.
	Timestamp() int64
	// Now returns current UTC time.
	Now() *time.Time
}

// Result holds per-reprocess item statistics.
type Result struct {
	Updated int32
	Failed  int32
}

// Option is custom configuration of Reprocessor.
type Option func(r *Reprocessor)

// Reprocessor re-derives item attributes from stored payloads.
type Reprocessor struct {
	storage   Storage
	batchSize uint
	clock     Clock
}

// NewReprocessor returns new Reprocessor.
func NewReprocessor(storage Storage, batchSize uint, ops ...Option) *Reprocessor {
	rep := &Reprocessor{
		storage:   storage,
		batchSize: batchSize,
		clock:     systemClock{},
	}

	for _, op := range ops {
		op(rep)
	}

	return rep
}

// Reprocess re-derives attributes of all shop's items from their stored raw
// payloads. With changedFields set only the named attributes are recomputed
// and every other stored attribute stays exactly as it was. Overrides named
// in overridesToClear are removed before resolution, so underlying values
// resurface.
func (r *Reprocessor) Reprocess(
	ctx context.Context,
	shopID int,
	changedFields []string,
	overridesToClear []string,
) (Result, error) {
	shop, err := r.storage.GetShop(ctx, shopID)
	if err != nil {
		return Result{}, fmt.Errorf("can't get shop: %w", err)
	}

	items, err := r.storage.ListItems(ctx, shop.ID)
	if err != nil {
		return Result{}, fmt.Errorf("can't list items: %w", err)
	}

	res := resolver.NewResolver(nil)
	fields := reprocessFields(changedFields)
	result := Result{}
	batch := make([]models.Item, 0, r.batchSize)

	for ix := range items {
		item := items[ix]
		clearOverrides(&item, overridesToClear)
		r.rederive(res, shop, &item, fields)
		item.UpdatedAt = r.clock.Now()

		if !item.Valid {
			result.Failed++
		}

		batch = append(batch, item)
		if len(batch) == int(r.batchSize) {
			if err := r.storage.UpdateItemDerived(ctx, batch); err != nil {
				return result, fmt.Errorf("can't update items: %w", err)
			}
			result.Updated += int32(len(batch))
			batch = make([]models.Item, 0, r.batchSize)
		}
	}

	if len(batch) > 0 {
		if err := r.storage.UpdateItemDerived(ctx, batch); err != nil {
			return result, fmt.Errorf("can't update items: %w", err)
		}
		result.Updated += int32(len(batch))
	}

	return result, nil
}

// rederive recomputes the named attributes and revalidates one item. An item
// whose stored payload can't be parsed is kept with its diagnostics instead
// of blocking the batch.
func (r *Reprocessor) rederive(res *resolver.Resolver, shop *models.Shop, item *models.Item, fields []string) {
	payload, err := resolver.ParsePayload(item.RawPayload)
	if err != nil {
		item.Valid = false
		item.ValidationErrors = []string{"can't parse stored payload"}
		return
	}

	item.Attributes = res.ResolveFields(payload, item.ExternalID, shop, item.Overrides, item.Attributes, fields)
	item.Valid, item.ValidationErrors = resolver.Validate(item.Attributes)
}

// reprocessFields returns attribute names to recompute. Category names come
// from the external API during sync, so the stored category attribute is
// never recomputed here.
func reprocessFields(changed []string) []string {
	source := changed
	if len(source) == 0 {
		source = resolver.Attributes
	}

	fields := make([]string, 0, len(source))
	for _, name := range source {
		if name == resolver.AttrCategory {
			continue
		}
		fields = append(fields, name)
	}

	return fields
}

func clearOverrides(item *models.Item, names []string) {
	if item.Overrides == nil {
		return
	}
	for _, name := range names {
		delete(item.Overrides, name)
	}
}

// WithClock sets Reprocessor's custom Clock.
func WithClock(c Clock) Option {
	return func(r *Reprocessor) {
		r.clock = c
	}
}
