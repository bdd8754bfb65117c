package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kisan/internal/sentinel"
	"kisan/internal/verification/models"
)

func testEntry() models.FarmerEntry {
	return models.FarmerEntry{
		Mobile:    "9876543210",
		FarmerDID: "0x123abc",
		Name:      "Test Farmer",
		Location:  "Puri, Odisha",
		LandAcres: 5,
		Crop:      "paddy",
		Verified:  true,
	}
}

func TestInMemoryStoreOperations(t *testing.T) {
	ctx := context.Background()
	store := New()
	assert.Zero(t, store.Count(ctx))

	require.NoError(t, store.Add(ctx, testEntry()))
	assert.Equal(t, 1, store.Count(ctx))

	// Lookup by both keys; mobile formatting is ignored
	byMobile, err := store.FindByMobile(ctx, "+91 98765 43210")
	require.NoError(t, err)
	assert.Equal(t, "Test Farmer", byMobile.Name)

	byDID, err := store.FindByDID(ctx, "0x123abc")
	require.NoError(t, err)
	assert.Equal(t, "9876543210", byDID.Mobile)

	// Copies do not alias store state
	byDID.Name = "changed"
	again, err := store.FindByDID(ctx, "0x123abc")
	require.NoError(t, err)
	assert.Equal(t, "Test Farmer", again.Name)

	// IPFS CID update
	require.NoError(t, store.UpdateIPFSCID(ctx, "0x123abc", "bafy-test"))
	again, err = store.FindByDID(ctx, "0x123abc")
	require.NoError(t, err)
	assert.Equal(t, "bafy-test", again.IPFSCID)
	require.ErrorIs(t, store.UpdateIPFSCID(ctx, "0xmissing", "cid"), sentinel.ErrNotFound)

	// Missing keys
	_, err = store.FindByMobile(ctx, "0000000000")
	require.ErrorIs(t, err, sentinel.ErrNotFound)
	_, err = store.FindByDID(ctx, "0xmissing")
	require.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestAddDerivesDIDAndRejectsRebinding(t *testing.T) {
	ctx := context.Background()
	store := New()

	entry := testEntry()
	entry.FarmerDID = ""
	require.NoError(t, store.Add(ctx, entry))

	found, err := store.FindByMobile(ctx, entry.Mobile)
	require.NoError(t, err)
	assert.Equal(t, models.DeriveDID(entry.Mobile), found.FarmerDID)

	other := testEntry()
	other.FarmerDID = "0xdifferent"
	require.ErrorIs(t, store.Add(ctx, other), sentinel.ErrConflict)
}

func TestDefaultSeed(t *testing.T) {
	ctx := context.Background()
	store, err := NewDefault()
	require.NoError(t, err)
	require.Positive(t, store.Count(ctx))

	for _, e := range store.List(ctx) {
		assert.Equal(t, models.DeriveDID(e.Mobile), e.FarmerDID, "seed DID for %s must be derived from the mobile", e.Name)
	}
}

func TestNewFromFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid seed", func(t *testing.T) {
		path := filepath.Join(dir, "farmers.json")
		seed := `{"farmers":[{"mobile":"9437000001","farmer_did":"0xaa","name":"A","verified":true}],"metadata":{"version":"1.0"}}`
		require.NoError(t, os.WriteFile(path, []byte(seed), 0o600))

		store, err := NewFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, 1, store.Count(context.Background()))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewFromFile(filepath.Join(dir, "absent.json"))
		require.Error(t, err)
	})

	t.Run("malformed seed", func(t *testing.T) {
		_, err := New().Load(strings.NewReader("{"))
		require.Error(t, err)
	})
}

func TestConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := New()
	require.NoError(t, store.Add(ctx, testEntry()))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = store.FindByMobile(ctx, "9876543210")
		}()
		go func() {
			defer wg.Done()
			_ = store.UpdateIPFSCID(ctx, "0x123abc", "cid")
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, store.Count(ctx))
}
