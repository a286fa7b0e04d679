package models

import "time"

// Sync and feed statuses of a shop.
const (
	StatusPending   = "PENDING"
	StatusSyncing   = "SYNCING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

// Sync states of a single item.
const (
	StateDiscovered = "discovered"
	StateSynced     = "synced"
	StateError      = "error"
)

// Shop is merchant account model.
type Shop struct {
	ID                     int
	Name                   string
	APIURL                 string
	APIToken               string
	Currency               string
	Locale                 string
	SearchEnabledDefault   bool
	CheckoutEnabledDefault bool
	SyncStatus             string
	FeedStatus             string
	NeedsReselection       bool
	LastSyncedAt           *time.Time
	CreatedAt              time.Time
	DeletedAt              *time.Time
}

// HasCredentials reports whether the shop has external API credentials configured.
// A shop without credentials is a valid terminal state, not an error.
func (s Shop) HasCredentials() bool {
	return s.APIToken != "" && s.APIURL != ""
}

// Item is catalog item model. Items are identified by (ShopID, ExternalID).
type Item struct {
	ID               int
	ShopID           int
	ExternalID       string
	ParentExternalID *string
	RawPayload       string
	Checksum         string
	Attributes       map[string]*string
	Overrides        map[string]string
	Selected         bool
	SyncState        string
	Valid            bool
	ValidationErrors []string
	SearchEnabled    bool
	CheckoutEnabled  bool
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

// ItemState is the stored per-item state the sync diff needs: content
// checksum plus merchant-owned manual overrides.
type ItemState struct {
	Checksum  string
	Overrides map[string]string
}

// FeedSnapshot is one immutable generated feed artifact.
type FeedSnapshot struct {
	ID          int
	ShopID      int
	GeneratedAt time.Time
	ItemCount   int32
	StorageKey  string
	StorageURL  string
	Payload     []byte
}

// Run is sync process run model.
type Run struct {
	ID            int
	ShopID        int
	Mode          string
	CreatedAt     time.Time
	FinishedAt    *time.Time
	IsSuccess     *bool
	StatusMessage *string
	CreatedItems  *int32
	UpdatedItems  *int32
	SkippedItems  *int32
	FailedItems   *int32
}

// RawRecord is one raw catalog record fetched from the external API.
type RawRecord struct {
	ExternalID       string
	ParentExternalID *string
	Payload          map[string]any
}

// StoreSettings are tenant-level defaults fetched from the external store.
type StoreSettings struct {
	Currency   string
	Locale     string
	SellerName string
	StoreURL   string
}
