package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/epeers/gardenfeed/internal/nutrients"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCalc_Flags(t *testing.T) {
	out, err := run(t, "calc", "--stage", "vegetative", "--volume", "5", "--symptom", "mg_deficiency")
	require.NoError(t, err)

	var got nutrients.Output
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	want := nutrients.Compute(nutrients.Input{
		Stage:    nutrients.StageVegetative,
		Volume:   5,
		Symptoms: []nutrients.Symptom{nutrients.MagnesiumDeficiency},
	})
	assert.Equal(t, want.TargetPPM, got.TargetPPM)
	assert.InDelta(t, want.Dosing.Grams(nutrients.NutrientEpsom), got.Dosing.Grams(nutrients.NutrientEpsom), 1e-9)
}

func TestCalc_InputFileWithOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
stage: flower
scale: 700
volume: 20
volume_unit: l
source_ppm: 140
symptoms:
  - k_deficiency
luxury_uptake:
  enabled: true
  multiplier: 1.1
`), 0o600))

	out, err := run(t, "calc", "--input", path, "--target", "1500")
	require.NoError(t, err)

	var got nutrients.Output
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 1500, got.TargetPPM)
	assert.NotEqual(t, 1500, got.ResolvedTargetPPM)
	assert.InDelta(t, 0.10, got.Modifiers[nutrients.NutrientPartA], 1e-9)
}

func TestCalc_Errors(t *testing.T) {
	_, err := run(t, "calc", "--volume", "5")
	assert.ErrorContains(t, err, "grow stage is required")

	_, err = run(t, "calc", "--stage", "flower", "--symptom", "b_deficiency")
	assert.ErrorContains(t, err, "unknown symptom")

	_, err = run(t, "calc", "--input", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read input")
}

func TestStages(t *testing.T) {
	out, err := run(t, "stages")
	require.NoError(t, err)
	assert.Contains(t, out, "STAGE")
	assert.Contains(t, out, nutrients.StageLateFlower.Label())

	out, err = run(t, "stages", "--format", "json")
	require.NoError(t, err)
	var profiles []nutrients.StageProfile
	require.NoError(t, json.Unmarshal([]byte(out), &profiles))
	assert.Len(t, profiles, len(nutrients.Stages()))

	_, err = run(t, "stages", "--format", "xml")
	assert.Error(t, err)
}
