// Package feed builds, uploads and retires immutable feed artifacts.
package feed

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MichalMitros/catalog-feed-sync/internal/eligibility"
	"github.com/MichalMitros/catalog-feed-sync/internal/platform/models"
	"github.com/MichalMitros/catalog-feed-sync/internal/resolver"
	"github.com/rs/zerolog"
)

//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name BlobStore --filename blob_store.go

// Storage is shops, items and snapshots storage.
type Storage interface {
	// GetShop returns shop by ID.
	GetShop(ctx context.Context, shopID int) (*models.Shop, error)
	// ListItems returns all shop's items ordered by external ID.
	ListItems(ctx context.Context, shopID int) ([]models.Item, error)
	// InsertSnapshot stores metadata and payload of one generated feed artifact.
	InsertSnapshot(ctx context.Context, snap *models.FeedSnapshot) error
	// DeleteSnapshotsBefore deletes snapshots generated before cutoff and returns their metadata.
	DeleteSnapshotsBefore(ctx context.Context, shopID int, cutoff time.Time) ([]models.FeedSnapshot, error)
}

// BlobStore stores generated feed artifacts.
type BlobStore interface {
	// Upload stores artifact under key and returns its public URL.
	Upload(ctx context.Context, key string, data []byte) (string, error)
	// Delete removes artifact under key. Returns false if the artifact is already gone.
	Delete(ctx context.Context, key string) (bool, error)
}

// Clock provides times.
type Clock interface {
	// Timestamp returns UTC unix timestamp.
	Timestamp() int64
	// Now returns current UTC time.
	Now() *time.Time
}

// Result holds one feed generation outcome.
type Result struct {
	Snapshot       *models.FeedSnapshot
	Eligible       int
	NeedsAttention int
	Skipped        bool
}

// Option is custom configuration of Generator.
type Option func(g *Generator)

// Generator builds feed artifacts from stored catalog items.
type Generator struct {
	storage Storage
	blobs   BlobStore
	clock   Clock
	logger  zerolog.Logger
}

// NewGenerator returns new Generator.
func NewGenerator(storage Storage, blobs BlobStore, ops ...Option) *Generator {
	gen := &Generator{
		storage: storage,
		blobs:   blobs,
		clock:   systemClock{},
		logger:  zerolog.Nop(),
	}

	for _, op := range ops {
		op(gen)
	}

	return gen
}

// Generate builds one feed artifact for the shop, uploads it and records the
// snapshot. A shop awaiting catalog reselection is skipped without touching
// its previous artifact, so the last published feed stays serveable.
func (g *Generator) Generate(ctx context.Context, shopID int) (Result, error) {
	shop, err := g.storage.GetShop(ctx, shopID)
	if err != nil {
		return Result{}, fmt.Errorf("can't get shop: %w", err)
	}

	if shop.NeedsReselection {
		return Result{Skipped: true}, nil
	}

	items, err := g.storage.ListItems(ctx, shop.ID)
	if err != nil {
		return Result{}, fmt.Errorf("can't list items: %w", err)
	}

	eligible := eligibility.Filter(items)
	generatedAt := g.clock.Now()

	data, err := renderArtifact(shop, eligible, *generatedAt)
	if err != nil {
		return Result{}, fmt.Errorf("can't render feed: %w", err)
	}

	key := fmt.Sprintf("%d/feed-%d.jsonl.gz", shop.ID, g.clock.Timestamp())

	// The snapshot row is written only after the artifact exists, so stored
	// metadata never points at a missing blob.
	url, err := g.blobs.Upload(ctx, key, data)
	if err != nil {
		return Result{}, fmt.Errorf("can't upload feed: %w", err)
	}

	snapshot := &models.FeedSnapshot{
		ShopID:      shop.ID,
		GeneratedAt: *generatedAt,
		ItemCount:   int32(len(eligible)),
		StorageKey:  key,
		StorageURL:  url,
		Payload:     data,
	}

	if err := g.storage.InsertSnapshot(ctx, snapshot); err != nil {
		return Result{}, fmt.Errorf("can't store snapshot: %w", err)
	}

	return Result{
		Snapshot:       snapshot,
		Eligible:       len(eligible),
		NeedsAttention: eligibility.NeedsAttention(items),
	}, nil
}

type feedHeader struct {
	ShopID      int       `json:"shop_id"`
	ShopName    string    `json:"shop_name"`
	Currency    string    `json:"currency"`
	Locale      string    `json:"locale"`
	GeneratedAt time.Time `json:"generated_at"`
}

// renderArtifact serializes the feed as gzipped NDJSON: one header line with
// seller identity, then one record per eligible item.
func renderArtifact(shop *models.Shop, items []models.Item, generatedAt time.Time) ([]byte, error) {
	buf := bytes.Buffer{}
	gzw := gzip.NewWriter(&buf)

	header, err := json.Marshal(feedHeader{
		ShopID:      shop.ID,
		ShopName:    shop.Name,
		Currency:    shop.Currency,
		Locale:      shop.Locale,
		GeneratedAt: generatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("can't encode feed header: %w", err)
	}

	if _, err := gzw.Write(append(header, '\n')); err != nil {
		return nil, fmt.Errorf("can't write feed header: %w", err)
	}

	for ix := range items {
		line, err := renderRecord(&items[ix])
		if err != nil {
			return nil, fmt.Errorf("can't encode item %s: %w", items[ix].ExternalID, err)
		}

		if _, err := gzw.Write(line); err != nil {
			return nil, fmt.Errorf("can't write item %s: %w", items[ix].ExternalID, err)
		}
	}

	if err := gzw.Close(); err != nil {
		return nil, fmt.Errorf("can't finish feed artifact: %w", err)
	}

	return buf.Bytes(), nil
}

// renderRecord writes every schema attribute in serialization order, with
// explicit nulls for unresolved values. Unset boolean attributes serialize
// as "false".
func renderRecord(item *models.Item) ([]byte, error) {
	buf := bytes.Buffer{}
	buf.WriteByte('{')

	for ix, name := range resolver.Attributes {
		if ix > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(name)
		buf.WriteString(`":`)

		value := item.Attributes[name]
		if value == nil {
			if name == resolver.AttrAdult || name == resolver.AttrIsBundle {
				buf.WriteString(`"false"`)
			} else {
				buf.WriteString("null")
			}
			continue
		}

		encoded, err := json.Marshal(*value)
		if err != nil {
			return nil, fmt.Errorf("can't encode attribute %s: %w", name, err)
		}
		buf.Write(encoded)
	}

	buf.WriteString("}\n")

	return buf.Bytes(), nil
}

// WithClock sets Generator's custom Clock.
func WithClock(c Clock) Option {
	return func(g *Generator) {
		g.clock = c
	}
}

// WithLogger sets Generator's logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}
