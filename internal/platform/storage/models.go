package storage

import (
	"encoding/json"
	"strings"

	"github.com/MichalMitros/catalog-feed-sync/internal/platform/models"

	pgmodels "github.com/MichalMitros/catalog-feed-sync/internal/platform/storage/gen/postgres/public/model"
)

//go:generate make -C ../../../ generate-db

func toDBRun(run *models.Run) *pgmodels.SyncRun {
	return &pgmodels.SyncRun{
		ShopID:        int32(run.ShopID),
		Mode:          run.Mode,
		FinishedAt:    run.FinishedAt,
		Success:       run.IsSuccess,
		StatusMessage: run.StatusMessage,
		CreatedItems:  run.CreatedItems,
		UpdatedItems:  run.UpdatedItems,
		SkippedItems:  run.SkippedItems,
		FailedItems:   run.FailedItems,
	}
}

// ToDBProduct converts models.Item into postgres product model.
func ToDBProduct(item *models.Item, shopID int64) *pgmodels.Product {
	return &pgmodels.Product{
		ID:               int32(item.ID),
		ShopID:           int32(shopID),
		ExternalID:       item.ExternalID,
		ParentExternalID: item.ParentExternalID,
		RawPayload:       item.RawPayload,
		Checksum:         item.Checksum,
		Attributes:       marshalAttributes(item.Attributes),
		Overrides:        marshalOverrides(item.Overrides),
		Selected:         item.Selected,
		SyncState:        item.SyncState,
		Valid:            item.Valid,
		ValidationErrors: strings.Join(item.ValidationErrors, "\n"),
		SearchEnabled:    item.SearchEnabled,
		CheckoutEnabled:  item.CheckoutEnabled,
		UpdatedAt:        item.UpdatedAt,
	}
}

// FromDBProduct converts postgres product model into models.Item.
func FromDBProduct(product *pgmodels.Product) *models.Item {
	item := models.Item{
		ID:               int(product.ID),
		ShopID:           int(product.ShopID),
		ExternalID:       product.ExternalID,
		ParentExternalID: product.ParentExternalID,
		RawPayload:       product.RawPayload,
		Checksum:         product.Checksum,
		Attributes:       unmarshalAttributes(product.Attributes),
		Overrides:        unmarshalOverrides(product.Overrides),
		Selected:         product.Selected,
		SyncState:        product.SyncState,
		Valid:            product.Valid,
		SearchEnabled:    product.SearchEnabled,
		CheckoutEnabled:  product.CheckoutEnabled,
		CreatedAt:        product.CreatedAt,
		UpdatedAt:        product.UpdatedAt,
	}

	if product.ValidationErrors != "" {
		item.ValidationErrors = strings.Split(product.ValidationErrors, "\n")
	}

	return &item
}

func toDBShop(shop *models.Shop) *pgmodels.Shop {
	return &pgmodels.Shop{
		ID:                     int32(shop.ID),
		Name:                   shop.Name,
		APIURL:                 shop.APIURL,
		APIToken:               shop.APIToken,
		Currency:               shop.Currency,
		Locale:                 shop.Locale,
		SearchEnabledDefault:   shop.SearchEnabledDefault,
		CheckoutEnabledDefault: shop.CheckoutEnabledDefault,
		SyncStatus:             shop.SyncStatus,
		FeedStatus:             shop.FeedStatus,
		NeedsReselection:       shop.NeedsReselection,
		LastSyncedAt:           shop.LastSyncedAt,
		DeletedAt:              shop.DeletedAt,
	}
}

func fromDBShop(shop *pgmodels.Shop) *models.Shop {
	return &models.Shop{
		ID:                     int(shop.ID),
		Name:                   shop.Name,
		APIURL:                 shop.APIURL,
		APIToken:               shop.APIToken,
		Currency:               shop.Currency,
		Locale:                 shop.Locale,
		SearchEnabledDefault:   shop.SearchEnabledDefault,
		CheckoutEnabledDefault: shop.CheckoutEnabledDefault,
		SyncStatus:             shop.SyncStatus,
		FeedStatus:             shop.FeedStatus,
		NeedsReselection:       shop.NeedsReselection,
		LastSyncedAt:           shop.LastSyncedAt,
		CreatedAt:              shop.CreatedAt,
		DeletedAt:              shop.DeletedAt,
	}
}

func toDBSnapshot(snap *models.FeedSnapshot) *pgmodels.FeedSnapshot {
	return &pgmodels.FeedSnapshot{
		ShopID:      int32(snap.ShopID),
		GeneratedAt: snap.GeneratedAt,
		ItemCount:   snap.ItemCount,
		StorageKey:  snap.StorageKey,
		StorageURL:  snap.StorageURL,
		Payload:     snap.Payload,
	}
}

func fromDBSnapshot(snap *pgmodels.FeedSnapshot) *models.FeedSnapshot {
	return &models.FeedSnapshot{
		ID:          int(snap.ID),
		ShopID:      int(snap.ShopID),
		GeneratedAt: snap.GeneratedAt,
		ItemCount:   snap.ItemCount,
		StorageKey:  snap.StorageKey,
		StorageURL:  snap.StorageURL,
		Payload:     snap.Payload,
	}
}

func marshalAttributes(attrs map[string]*string) string {
	if len(attrs) == 0 {
		return "{}"
	}
	raw, err := json.Marshal(attrs)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func unmarshalAttributes(raw string) map[string]*string {
	attrs := map[string]*string{}
	if raw == "" {
		return attrs
	}
	_ = json.Unmarshal([]byte(raw), &attrs)
	return attrs
}

func marshalOverrides(overrides map[string]string) string {
	if len(overrides) == 0 {
		return "{}"
	}
	raw, err := json.Marshal(overrides)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func unmarshalOverrides(raw string) map[string]string {
	overrides := map[string]string{}
	if raw == "" {
		return overrides
	}
	_ = json.Unmarshal([]byte(raw), &overrides)
	return overrides
}
