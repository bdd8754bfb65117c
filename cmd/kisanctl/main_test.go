package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kisan/internal/logistics/models"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeProfile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "farmer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestSchemesEligibility(t *testing.T) {
	path := writeProfile(t, `
farmer_type: small
land_size: 2
is_registered: true
is_in_cluster: true
is_fpo_member: true
`)

	out, err := execute(t, "schemes", "eligibility", "--profile", path)
	require.NoError(t, err)
	assert.Contains(t, out, "must have rice-fallow land after Kharif harvest")
	assert.Contains(t, out, "50 combinations; showing 10")
	assert.Contains(t, out, "PM-KISAN + KALIA")
}

func TestSchemesEligibilityWarnsOnClamp(t *testing.T) {
	path := writeProfile(t, "farmer_type: small\nland_size: 4\n")

	out, err := execute(t, "schemes", "eligibility", "--profile", path, "--json")
	require.NoError(t, err)

	var got struct {
		Profile struct {
			LandSize float64 `json:"land_size"`
		} `json:"profile"`
		WarningMessage string `json:"warning_message"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, 2.5, got.Profile.LandSize, 0)
	assert.Equal(t, "Small farmers can hold at most 2.5 acres. Land size has been set to 2.5 acres.", got.WarningMessage)
}

func TestSchemesEligibilityErrors(t *testing.T) {
	_, err := execute(t, "schemes", "eligibility")
	require.Error(t, err, "profile flag is required")

	_, err = execute(t, "schemes", "eligibility", "--profile", writeProfile(t, "farmer_type: tenant\n"))
	require.Error(t, err)

	_, err = execute(t, "schemes", "eligibility", "--profile", writeProfile(t, "farmer_type: small\n"), "--lang", "fr")
	require.Error(t, err)
}

func TestSchemesList(t *testing.T) {
	out, err := execute(t, "schemes", "list", "--lang", "or")
	require.NoError(t, err)
	assert.Contains(t, out, "pm_kisan")
	assert.Contains(t, out, "cash,insurance,loan")
}

func TestLogisticsRank(t *testing.T) {
	out, err := execute(t, "logistics", "rank", "--crop", "groundnut", "--quantity", "100", "--json")
	require.NoError(t, err)

	var ranked []models.Projection
	require.NoError(t, json.Unmarshal([]byte(out), &ranked))
	require.NotEmpty(t, ranked)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Profit, ranked[i].Profit)
	}

	out, err = execute(t, "logistics", "rank", "--crop", "saffron", "--quantity", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "no processors handle saffron")

	_, err = execute(t, "logistics", "rank", "--crop", "groundnut", "--quantity", "1", "--vehicle", "boat")
	require.Error(t, err)
}

func TestLogisticsProject(t *testing.T) {
	out, err := execute(t, "logistics", "project",
		"--processor", "cuttack-oilseed", "--crop", "groundnut", "--quantity", "100",
		"--lat", "20.4625", "--lon", "85.8830", "--json")
	require.NoError(t, err)

	var proj models.Projection
	require.NoError(t, json.Unmarshal([]byte(out), &proj))
	assert.Equal(t, 6850, proj.PurchasePrice)
	assert.Equal(t, 7878, proj.SellingPrice)
	assert.Zero(t, proj.Costs.Transport)

	_, err = execute(t, "logistics", "project", "--processor", "nowhere", "--crop", "groundnut", "--quantity", "1")
	require.Error(t, err)
}
