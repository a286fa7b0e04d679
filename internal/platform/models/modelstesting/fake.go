package modelstesting

import (
	"fmt"
	"math/rand"

	"github.com/MichalMitros/catalog-feed-sync/internal/platform/models"
	"github.com/go-faker/faker/v4"
	"github.com/samber/lo"
)

// FakeItem returns models.Item with fake data. By default the item is
// selected, synced, valid and search-enabled, so it is feed-eligible.
func FakeItem(ops ...func(i *models.Item)) models.Item {
	externalID := faker.UUIDDigit()
	item := models.Item{
		ID:              rand.Intn(1_000_000) + 1,
		ShopID:          rand.Intn(1000) + 1,
		ExternalID:      externalID,
		RawPayload:      fmt.Sprintf(`{"id":%q,"title":%q}`, externalID, faker.Word()),
		Checksum:        faker.UUIDDigit(),
		Attributes:      fakeAttributes(),
		Overrides:       map[string]string{},
		Selected:        true,
		SyncState:       models.StateSynced,
		Valid:           true,
		SearchEnabled:   true,
		CheckoutEnabled: true,
	}

	for _, op := range ops {
		op(&item)
	}

	return item
}

// FakeShop returns models.Shop with fake data and credentials configured.
func FakeShop(ops ...func(s *models.Shop)) models.Shop {
	shop := models.Shop{
		ID:                     rand.Intn(1000) + 1,
		Name:                   faker.Word(),
		APIURL:                 fmt.Sprintf("https://%s.example", faker.Word()),
		APIToken:               faker.UUIDDigit(),
		Currency:               "EUR",
		Locale:                 "en_US",
		SearchEnabledDefault:   true,
		CheckoutEnabledDefault: true,
		SyncStatus:             models.StatusPending,
		FeedStatus:             models.StatusPending,
	}

	for _, op := range ops {
		op(&shop)
	}

	return shop
}

// FakeRawRecord returns models.RawRecord with fake data.
func FakeRawRecord(ops ...func(r *models.RawRecord)) models.RawRecord {
	record := models.RawRecord{
		ExternalID: faker.UUIDDigit(),
		Payload: map[string]any{
			"title":    faker.Word(),
			"url":      fmt.Sprintf("https://%s.example", faker.Word()),
			"price":    float64(rand.Intn(10000)) / 100,
			"in_stock": true,
		},
	}
	record.Payload["id"] = record.ExternalID
	record.Payload["image_url"] = fmt.Sprintf("https://img.example/%s.jpg", faker.Word())

	for _, op := range ops {
		op(&record)
	}

	return record
}

// FakeSnapshot returns models.FeedSnapshot with fake data.
func FakeSnapshot(ops ...func(s *models.FeedSnapshot)) models.FeedSnapshot {
	snapshot := models.FeedSnapshot{
		ID:         rand.Intn(1_000_000) + 1,
		ShopID:     rand.Intn(1000) + 1,
		ItemCount:  int32(rand.Intn(100)),
		StorageKey: fmt.Sprintf("%d/feed-%d.jsonl.gz", rand.Intn(1000), rand.Int63()),
		StorageURL: fmt.Sprintf("https://blobs.example/%s", faker.UUIDDigit()),
		Payload:    []byte(faker.Word()),
	}

	for _, op := range ops {
		op(&snapshot)
	}

	return snapshot
}

func fakeAttributes() map[string]*string {
	return map[string]*string{
		"id":    lo.ToPtr(faker.UUIDDigit()),
		"title": lo.ToPtr(faker.Word()),
	}
}
