package feed

import (
	"context"
	"fmt"
	"time"
)

// retentionWindow is how long generated snapshots are kept.
const retentionWindow = 7 * 24 * time.Hour

// Retire deletes snapshots generated before the retention window. Metadata
// rows are removed first, then the stored artifacts, so a blob delete failure
// leaves at worst an orphaned artifact, never metadata pointing at a missing
// blob. Artifact deletion is best effort. Returns number of retired snapshots.
func (g *Generator) Retire(ctx context.Context, shopID int) (int, error) {
	cutoff := g.clock.Now().Add(-retentionWindow)

	retired, err := g.storage.DeleteSnapshotsBefore(ctx, shopID, cutoff)
	if err != nil {
		return 0, fmt.Errorf("can't delete expired snapshots: %w", err)
	}

	for ix := range retired {
		if _, err := g.blobs.Delete(ctx, retired[ix].StorageKey); err != nil {
			g.logger.Warn().
				Err(err).
				Int("shopID", shopID).
				Str("storageKey", retired[ix].StorageKey).
				Msg("can't delete expired feed artifact")
		}
	}

	return len(retired), nil
}
