package nutrients

import "math"

// EnrichmentFactor scales the target when enrichment (CO2) is enabled.
const EnrichmentFactor = 1.20

// LuxuryUptake scales the target up for plants used to a stronger feed.
type LuxuryUptake struct {
	Enabled    bool    `json:"enabled"`
	Multiplier float64 `json:"multiplier"`
}

// Apply takes the advisor's recommendation. Without one the multiplier is
// reset to 1.
func (l LuxuryUptake) Apply(a TransitionAdvice) LuxuryUptake {
	if !a.Recommended {
		return LuxuryUptake{Enabled: l.Enabled, Multiplier: 1}
	}
	return LuxuryUptake{Enabled: true, Multiplier: a.Multiplier}
}

// TargetParams are the inputs of ResolveTarget.
type TargetParams struct {
	Stage        GrowStage
	Scale        Scale
	Enrichment   bool
	Luxury       LuxuryUptake
	Underfeeding bool
}

// PPMAdjustmentTrace records each intermediate target value for display.
type PPMAdjustmentTrace struct {
	Base               int  `json:"base"`
	LuxuryScaled       int  `json:"luxury_scaled"`
	EnrichmentScaled   int  `json:"enrichment_scaled"`
	UnderfeedCorrected int  `json:"underfeed_corrected"`
	LuxuryApplied      bool `json:"luxury_applied"`
	EnrichmentApplied  bool `json:"enrichment_applied"`
	UnderfeedApplied   bool `json:"underfeed_applied"`
}

// ResolveTarget computes the target concentration of a stage. The steps run
// in a fixed order: luxury uptake, then enrichment, then the underfeed boost.
func ResolveTarget(p TargetParams) (int, PPMAdjustmentTrace) {
	profile := Profile(p.Stage)
	var tr PPMAdjustmentTrace

	v := profile.BasePPM(p.Scale)
	tr.Base = v

	if p.Luxury.Enabled && p.Luxury.Multiplier > 1 && !p.Stage.exemptFromLuxury() {
		v = int(math.Floor(float64(v) * p.Luxury.Multiplier))
		tr.LuxuryApplied = true
	}
	tr.LuxuryScaled = v

	if ceiling, ok := profile.EnrichmentCeiling(p.Scale); p.Enrichment && ok && v < ceiling {
		v = min(ceiling, int(math.Floor(float64(v)*EnrichmentFactor)))
		tr.EnrichmentApplied = true
	}
	tr.EnrichmentScaled = v

	if p.Underfeeding {
		v += UnderfeedBoostPPM
		tr.UnderfeedApplied = true
	}
	tr.UnderfeedCorrected = v

	return v, tr
}
