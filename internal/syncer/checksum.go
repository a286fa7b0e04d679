package syncer

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Checksum normalizes a raw catalog payload and returns its canonical JSON
// together with a deterministic sha256 hex digest of it. Map keys are sorted
// during marshalling, so two payloads with equal content always produce the
// same digest regardless of field order in the API response.
func Checksum(payload map[string]any) (string, string, error) {
	normalized, err := json.Marshal(payload)
	if err != nil {
		return "", "", fmt.Errorf("can't normalize raw payload: %w", err)
	}

	digest := sha256.Sum256(normalized)

	return string(normalized), hex.EncodeToString(digest[:]), nil
}
