package nutrients

import "fmt"

const (
	// TransitionMarginPPM is how far the last feed may sit above the
	// reference before a luxury-uptake transition is suggested.
	TransitionMarginPPM = 150
	// MaxLuxuryMultiplier caps the recommended multiplier.
	MaxLuxuryMultiplier = 1.8
)

// TransitionParams are the inputs of AdviseTransition.
type TransitionParams struct {
	Stage             GrowStage
	Scale             Scale
	LastFeedPPM       float64
	FirstWaterOfStage bool
}

// TransitionAdvice is the advisor's recommendation. It is never applied
// automatically; see LuxuryUptake.Apply.
type TransitionAdvice struct {
	ReferenceStage GrowStage `json:"reference_stage"`
	ReferencePPM   int       `json:"reference_ppm"`
	Ratio          float64   `json:"ratio"`
	Multiplier     float64   `json:"multiplier"`
	Recommended    bool      `json:"recommended"`
	Advisory       string    `json:"advisory,omitempty"`
	Warnings       []Warning `json:"warnings"`
}

// AdviseTransition compares the last feed against the stage baseline, or
// against the previous stage's baseline on the first water of a new stage.
func AdviseTransition(p TransitionParams) TransitionAdvice {
	ref := p.Stage
	if p.FirstWaterOfStage {
		ref = p.Stage.Previous()
	}
	refPPM := Profile(ref).BasePPM(p.Scale)

	advice := TransitionAdvice{
		ReferenceStage: ref,
		ReferencePPM:   refPPM,
		Multiplier:     1,
		Warnings:       []Warning{},
	}
	if refPPM <= 0 {
		return advice
	}

	advice.Ratio = p.LastFeedPPM / float64(refPPM)
	if p.LastFeedPPM <= float64(refPPM+TransitionMarginPPM) {
		return advice
	}

	advice.Recommended = true
	advice.Multiplier = min(advice.Ratio, MaxLuxuryMultiplier)
	advice.Advisory = fmt.Sprintf(
		"Last feed was %.0f PPM, %.2fx the %s baseline of %d PPM. Enable luxury uptake at %.2fx to avoid an abrupt drop in concentration.",
		p.LastFeedPPM, advice.Ratio, ref.Label(), refPPM, advice.Multiplier)
	advice.Warnings = append(advice.Warnings, Warning{
		Message:  advice.Advisory,
		Priority: PriorityInfo,
		Category: CategoryNotice,
	})
	if advice.Multiplier >= MaxLuxuryMultiplier {
		advice.Warnings = append(advice.Warnings, Warning{
			Message: fmt.Sprintf("Last feed ran at %.2fx the reference. The multiplier is capped at %.1fx; "+
				"check runoff PPM and consider a partial flush before feeding this strong.", advice.Ratio, MaxLuxuryMultiplier),
			Priority: PriorityHigh,
			Category: CategoryNotice,
		})
	}
	advice.Warnings = sortWarnings(advice.Warnings)
	return advice
}
