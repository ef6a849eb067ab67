package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/epeers/gardenfeed/internal/nutrients"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFeedLog_RoundsAndDefaults(t *testing.T) {
	req := &CalculateRequest{
		Input:  nutrients.Input{Stage: nutrients.StageVegetative, Volume: 5, SourcePPM: 150},
		ZoneID: 42,
	}
	out := nutrients.Compute(req.Input)
	grower := int64(7)
	fedOn := time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC)

	entry := NewFeedLog(req, &out, &grower, fedOn)

	assert.Equal(t, int64(42), entry.ZoneID)
	assert.Equal(t, nutrients.Gallons, entry.VolumeUnit)
	assert.Equal(t, nutrients.Scale500, entry.Scale)
	assert.Equal(t, "5", entry.Volume.String())
	assert.Equal(t, "1200", entry.FinalPPM.String())
	require.Len(t, entry.Nutrients, 3)
	assert.Equal(t, nutrients.NutrientPartA, entry.Nutrients[0].Nutrient)
	assert.Equal(t, "16.58", entry.Nutrients[0].Grams.String())
	require.NotNil(t, entry.Notes)
	assert.Contains(t, *entry.Notes, "Vegetative feed at 1200 PPM")
	assert.InDelta(t, 1200, entry.FinalPPMFloat(), 1e-9)
}

func TestNewFeedLog_KeepsNotes(t *testing.T) {
	req := &CalculateRequest{Input: nutrients.Input{Stage: nutrients.StageFlush, Volume: 3, SourcePPM: 90}, Notes: "runoff 1100"}
	out := nutrients.Compute(req.Input)
	entry := NewFeedLog(req, &out, nil, time.Now())

	assert.Empty(t, entry.Nutrients)
	assert.Equal(t, "90", entry.FinalPPM.String())
	assert.Equal(t, "runoff 1100", *entry.Notes)
}

func TestFlexibleDate_JSON(t *testing.T) {
	var req CalculateRequest
	body := `{"stage":"flower","volume":2,"fed_on":"2026-04-01","symptoms":["k_toxicity"]}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	require.NotNil(t, req.FedOn)
	assert.Equal(t, time.April, req.FedOn.Month())
	assert.Equal(t, nutrients.StageFlower, req.Stage)
	assert.Equal(t, []nutrients.Symptom{nutrients.PotassiumToxicity}, req.Symptoms)

	var f FlexibleDate
	require.NoError(t, json.Unmarshal([]byte(`"2026-04-01T10:30:00Z"`), &f))
	b, err := json.Marshal(f)
	require.NoError(t, err)
	assert.Equal(t, `"2026-04-01"`, string(b))

	require.NoError(t, json.Unmarshal([]byte(`null`), &f))
	assert.True(t, f.IsZero())
	assert.Error(t, json.Unmarshal([]byte(`"April first"`), &f))
}
