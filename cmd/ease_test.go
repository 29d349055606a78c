package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEaseTuning_ConfigOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"position_mask: [0.8, 0.2]\nnum_rows: 4\ntemp_penalty: 2.0\ncooling_factor: 0.5\n"), 0o600))

	mask, numRows, tempPenalty, coolingFactor, err := resolveEaseTuning(path, "", 0, 0, false, 0, false)
	require.NoError(t, err)
	assert.Equal(t, 4, numRows)
	assert.Equal(t, []float64{0.8, 0.2}, []float64(mask))
	assert.Equal(t, 2.0, tempPenalty)
	assert.Equal(t, 0.5, coolingFactor)
}

func TestResolveEaseTuning_MaskFlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"position_mask: [0.8, 0.2]\nnum_rows: 4\ntemp_penalty: 2.0\ncooling_factor: 0.5\n"), 0o600))

	mask, _, _, _, err := resolveEaseTuning(path, "1.0,0.5", 0, 0, false, 0, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.0, 0.5}, []float64(mask))
}

func TestResolveEaseTuning_RowsTempPenaltyCoolingFlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"position_mask: [0.8, 0.2]\nnum_rows: 4\ntemp_penalty: 2.0\ncooling_factor: 0.5\n"), 0o600))

	mask, numRows, tempPenalty, coolingFactor, err := resolveEaseTuning(path, "", 9, 1.5, true, 0.9, true)
	require.NoError(t, err)
	assert.Equal(t, 9, numRows, "--rows overrides the config file's num_rows")
	assert.Equal(t, []float64{0.8, 0.2}, []float64(mask))
	assert.Equal(t, 1.5, tempPenalty, "--temp-penalty overrides the config file's temp_penalty")
	assert.Equal(t, 0.9, coolingFactor, "--cooling overrides the config file's cooling_factor")
}
