package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"KISAN_ADDR", "KISAN_REF_LAT", "KISAN_REF_LON", "KISAN_MAX_RADIUS_KM", "KISAN_COMBINATION_SAMPLE", "KISAN_REQUEST_TIMEOUT", "KISAN_DEFAULT_LANG"} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()

	require.NoError(t, err)
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, "en", cfg.DefaultLang)
	assert.InDelta(t, DefaultReferenceLat, cfg.ReferenceLat, 1e-9)
	assert.InDelta(t, 300, cfg.MaxRadiusKm, 1e-9)
	assert.Equal(t, 10, cfg.CombinationSample)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("KISAN_ADDR", ":9090")
	t.Setenv("KISAN_DEFAULT_LANG", "or")
	t.Setenv("KISAN_REF_LAT", "19.8135")
	t.Setenv("KISAN_REF_LON", "85.8312")
	t.Setenv("KISAN_COMBINATION_SAMPLE", "25")
	t.Setenv("KISAN_REQUEST_TIMEOUT", "5s")

	cfg, err := FromEnv()

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "or", cfg.DefaultLang)
	assert.InDelta(t, 19.8135, cfg.ReferenceLat, 1e-9)
	assert.Equal(t, 25, cfg.CombinationSample)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestFromEnvRejectsMalformedValues(t *testing.T) {
	t.Run("unparsable latitude", func(t *testing.T) {
		t.Setenv("KISAN_REF_LAT", "north")
		_, err := FromEnv()
		assert.ErrorContains(t, err, "KISAN_REF_LAT")
	})

	t.Run("latitude out of range", func(t *testing.T) {
		t.Setenv("KISAN_REF_LAT", "95")
		_, err := FromEnv()
		assert.ErrorContains(t, err, "out of range")
	})

	t.Run("non-positive sample", func(t *testing.T) {
		t.Setenv("KISAN_COMBINATION_SAMPLE", "0")
		_, err := FromEnv()
		assert.Error(t, err)
	})
}

func TestFromEnvCatalogPaths(t *testing.T) {
	t.Setenv("KISAN_FARMER_REGISTRY", "/data/farmers.json")
	t.Setenv("KISAN_PROCESSOR_CATALOG", "/data/processors.yaml")

	cfg, err := FromEnv()

	require.NoError(t, err)
	assert.Equal(t, "/data/farmers.json", cfg.FarmerRegistryPath)
	assert.Equal(t, "/data/processors.yaml", cfg.ProcessorCatalogPath)
}
