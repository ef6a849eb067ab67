package nutrients

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdviseTransition_CapsAtMaximum(t *testing.T) {
	got := AdviseTransition(TransitionParams{Stage: StageFlower, Scale: Scale500, LastFeedPPM: 3000})

	assert.True(t, got.Recommended)
	assert.Equal(t, 1200, got.ReferencePPM)
	assert.InDelta(t, 2.5, got.Ratio, 1e-12)
	assert.Equal(t, MaxLuxuryMultiplier, got.Multiplier)
	assert.Contains(t, got.Advisory, "2.50x")
	require.Len(t, got.Warnings, 2)
	assert.Equal(t, PriorityHigh, got.Warnings[0].Priority)
	assert.Equal(t, CategoryNotice, got.Warnings[0].Category)
	assert.Equal(t, PriorityInfo, got.Warnings[1].Priority)
}

func TestAdviseTransition_BelowMargin(t *testing.T) {
	got := AdviseTransition(TransitionParams{Stage: StageVegetative, Scale: Scale500, LastFeedPPM: 1350})
	assert.False(t, got.Recommended)
	assert.Equal(t, 1.0, got.Multiplier)
	assert.Empty(t, got.Advisory)
	assert.Empty(t, got.Warnings)
}

func TestAdviseTransition_ModerateRatio(t *testing.T) {
	got := AdviseTransition(TransitionParams{Stage: StageVegetative, Scale: Scale500, LastFeedPPM: 1500})
	assert.True(t, got.Recommended)
	assert.InDelta(t, 1.25, got.Multiplier, 1e-12)
	require.Len(t, got.Warnings, 1)
	assert.Equal(t, PriorityInfo, got.Warnings[0].Priority)
}

func TestAdviseTransition_FirstWaterUsesPreviousStage(t *testing.T) {
	got := AdviseTransition(TransitionParams{Stage: StageFlower, Scale: Scale500, LastFeedPPM: 1000, FirstWaterOfStage: true})
	assert.Equal(t, StageBudSet, got.ReferenceStage)
	assert.Equal(t, Profile(StageBudSet).BasePPM(Scale500), got.ReferencePPM)

	got = AdviseTransition(TransitionParams{Stage: StagePropagation, Scale: Scale700, LastFeedPPM: 100, FirstWaterOfStage: true})
	assert.Equal(t, StagePropagation, got.ReferenceStage)
	assert.Equal(t, 560, got.ReferencePPM)
}

func TestAdviseTransition_ZeroReferenceIsGuarded(t *testing.T) {
	got := AdviseTransition(TransitionParams{Stage: StageFlush, Scale: Scale500, LastFeedPPM: 900})
	assert.False(t, got.Recommended)
	assert.Equal(t, 1.0, got.Multiplier)
	assert.Zero(t, got.Ratio)
}

func TestLuxuryUptake_Apply(t *testing.T) {
	rec := AdviseTransition(TransitionParams{Stage: StageFlower, Scale: Scale500, LastFeedPPM: 1500})
	applied := LuxuryUptake{}.Apply(rec)
	assert.True(t, applied.Enabled)
	assert.InDelta(t, 1.25, applied.Multiplier, 1e-12)

	cleared := applied.Apply(AdviseTransition(TransitionParams{Stage: StageFlower, Scale: Scale500, LastFeedPPM: 1200}))
	assert.Equal(t, 1.0, cleared.Multiplier)
}
