package jobs

// Job types.
const (
	TypeSync           = "sync"
	TypeFeedGeneration = "feed-generation"
	TypeReprocess      = "reprocess"
)

// Sync modes.
const (
	ModeFull        = "FULL"
	ModeIncremental = "INCREMENTAL"
	ModeSingleItem  = "SINGLE_ITEM"
)

// Command is one queued job. Attempt starts at 1 and is incremented on every
// republish after a failure.
type Command struct {
	ShopID           int      `json:"shopId"`
	Type             string   `json:"type"`
	Attempt          int      `json:"attempt"`
	Mode             string   `json:"mode,omitempty"`
	ItemID           string   `json:"itemId,omitempty"`
	ChangedFields    []string `json:"changedFields,omitempty"`
	OverridesToClear []string `json:"overridesToClear,omitempty"`
}
