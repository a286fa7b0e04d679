package syncer_test

import (
	"testing"

	"github.com/MichalMitros/catalog-feed-sync/internal/syncer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitChecksumDeterministic(t *testing.T) {
	first := map[string]any{"id": "1", "title": "x", "price": 9.99}
	second := map[string]any{"price": 9.99, "title": "x", "id": "1"}

	normalizedFirst, checksumFirst, err := syncer.Checksum(first)
	require.NoError(t, err)

	normalizedSecond, checksumSecond, err := syncer.Checksum(second)
	require.NoError(t, err)

	assert.Equal(t, normalizedFirst, normalizedSecond, "field order shouldn't affect normalization")
	assert.Equal(t, checksumFirst, checksumSecond, "field order shouldn't affect checksum")
}

func TestUnitChecksumChangesWithContent(t *testing.T) {
	_, before, err := syncer.Checksum(map[string]any{"id": "1", "title": "x"})
	require.NoError(t, err)

	_, after, err := syncer.Checksum(map[string]any{"id": "1", "title": "y"})
	require.NoError(t, err)

	assert.NotEqual(t, before, after, "content change should change checksum")
}
