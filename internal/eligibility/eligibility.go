// Package eligibility holds the single predicate deciding whether an item may
// appear in a feed. Catalog listing, feed preview and feed generation must all
// go through this package so their counts never diverge.
package eligibility

import (
	"github.com/MichalMitros/catalog-feed-sync/internal/platform/models"
	"github.com/samber/lo"
)

// ContainerIDs returns the set of external IDs referenced as some item's
// parent. A container only groups variations and is never itself feed-eligible.
func ContainerIDs(items []models.Item) map[string]struct{} {
	containers := map[string]struct{}{}
	for ix := range items {
		if items[ix].ParentExternalID != nil && *items[ix].ParentExternalID != "" {
			containers[*items[ix].ParentExternalID] = struct{}{}
		}
	}
	return containers
}

// Eligible reports whether item may appear in a generated feed.
func Eligible(item *models.Item, containers map[string]struct{}) bool {
	if _, isContainer := containers[item.ExternalID]; isContainer {
		return false
	}

	return item.Valid &&
		item.SearchEnabled &&
		item.Selected &&
		item.SyncState == models.StateSynced
}

// Filter returns all eligible items.
func Filter(items []models.Item) []models.Item {
	containers := ContainerIDs(items)

	return lo.Filter(items, func(item models.Item, _ int) bool {
		return Eligible(&item, containers)
	})
}

// NeedsAttention counts items the user opted in and which synced, but which
// fail validation and therefore can't be exported.
func NeedsAttention(items []models.Item) int {
	count := 0
	for ix := range items {
		if items[ix].Selected && items[ix].SyncState == models.StateSynced && !items[ix].Valid {
			count++
		}
	}
	return count
}
