package nutrients

import (
	"errors"
	"fmt"
	"math"
)

// Input is everything a single feed calculation depends on.
type Input struct {
	Stage             GrowStage    `json:"stage" yaml:"stage"`
	Scale             Scale        `json:"scale" yaml:"scale"`
	EnrichmentEnabled bool         `json:"enrichment_enabled" yaml:"enrichment_enabled"`
	Volume            float64      `json:"volume" yaml:"volume"`
	VolumeUnit        VolumeUnit   `json:"volume_unit,omitempty" yaml:"volume_unit"`
	SourcePPM         float64      `json:"source_ppm" yaml:"source_ppm"`
	Symptoms          []Symptom    `json:"symptoms,omitempty" yaml:"symptoms"`
	RootBall          RootBallSize `json:"root_ball,omitempty" yaml:"root_ball"`
	Luxury            LuxuryUptake `json:"luxury_uptake" yaml:"luxury_uptake"`
	// TargetOverride is the grower-edited target; nil means use the resolved one.
	TargetOverride    *int     `json:"target_override,omitempty" yaml:"target_override"`
	LastFeedPPM       *float64 `json:"last_feed_ppm,omitempty" yaml:"last_feed_ppm"`
	FirstWaterOfStage bool     `json:"first_water_of_stage" yaml:"first_water_of_stage"`
}

// Output is the result of Compute.
type Output struct {
	Warnings          []Warning          `json:"warnings"`
	Verdict           Verdict            `json:"verdict"`
	Modifiers         Modifiers          `json:"modifiers"`
	Dosing            DosingResult       `json:"dosing"`
	ResolvedTargetPPM int                `json:"resolved_target_ppm"`
	TargetPPM         int                `json:"target_ppm"`
	Trace             PPMAdjustmentTrace `json:"trace"`
	Transition        *TransitionAdvice  `json:"transition,omitempty"`
	PH                PHRange            `json:"ph"`
}

// Validate reports enum values Compute would reject. Zero values that have a
// default (scale, unit, root ball) are accepted.
func (in Input) Validate() error {
	var errs []error
	if !in.Stage.Valid() {
		errs = append(errs, fmt.Errorf("unknown grow stage %q", in.Stage))
	}
	if in.Scale != 0 && !in.Scale.Valid() {
		errs = append(errs, fmt.Errorf("unknown reporting scale %d", in.Scale))
	}
	if in.VolumeUnit != "" && !in.VolumeUnit.Valid() {
		errs = append(errs, fmt.Errorf("unknown volume unit %q", in.VolumeUnit))
	}
	if in.RootBall != "" && !in.RootBall.Valid() {
		errs = append(errs, fmt.Errorf("unknown root ball size %q", in.RootBall))
	}
	for _, s := range in.Symptoms {
		if !s.Valid() {
			errs = append(errs, fmt.Errorf("unknown symptom %q", s))
		}
	}
	return errors.Join(errs...)
}

// Normalized fills defaults and replaces NaN or infinite numbers with zero.
// Compute applies it itself; callers that also use the input elsewhere
// should work from the same cleaned copy.
func (in Input) Normalized() Input {
	if in.Scale == 0 {
		in.Scale = Scale500
	}
	if in.VolumeUnit == "" {
		in.VolumeUnit = Gallons
	}
	if in.RootBall == "" {
		in.RootBall = RootBallNormal
	}
	in.Volume = finite(in.Volume)
	in.SourcePPM = finite(in.SourcePPM)
	in.Luxury.Multiplier = finite(in.Luxury.Multiplier)
	if in.LastFeedPPM != nil {
		v := finite(*in.LastFeedPPM)
		in.LastFeedPPM = &v
	}
	return in
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Compute runs the whole feed pipeline. It is deterministic and keeps no
// state between calls. Invalid enum values panic; call Validate first when
// the input comes from outside the program.
func Compute(in Input) Output {
	in = in.Normalized()
	if err := in.Validate(); err != nil {
		panic(fmt.Sprintf("nutrients: invalid input: %v", err))
	}

	set := NewSymptomSet(in.Symptoms...)
	analysis := AnalyzeSymptoms(set, in.Stage)

	resolved, trace := ResolveTarget(TargetParams{
		Stage:        in.Stage,
		Scale:        in.Scale,
		Enrichment:   in.EnrichmentEnabled,
		Luxury:       in.Luxury,
		Underfeeding: analysis.Verdict.IsUnderfeeding,
	})
	target := resolved
	if in.TargetOverride != nil {
		target = *in.TargetOverride
	}

	mods := CalculateModifiers(ModifierParams{
		Stage:    in.Stage,
		Symptoms: set,
		RootBall: in.RootBall,
		Verdict:  analysis.Verdict,
	})

	dosing := ResolveDosing(DosingParams{
		Stage:     in.Stage,
		Scale:     in.Scale,
		TargetPPM: target,
		SourcePPM: in.SourcePPM,
		Volume:    in.Volume,
		Unit:      in.VolumeUnit,
		Modifiers: mods,
	})

	out := Output{
		Verdict:           analysis.Verdict,
		Modifiers:         mods,
		Dosing:            dosing,
		ResolvedTargetPPM: resolved,
		TargetPPM:         target,
		Trace:             trace,
		PH:                Profile(in.Stage).PH,
	}

	warnings := analysis.Warnings
	if in.LastFeedPPM != nil {
		advice := AdviseTransition(TransitionParams{
			Stage:             in.Stage,
			Scale:             in.Scale,
			LastFeedPPM:       *in.LastFeedPPM,
			FirstWaterOfStage: in.FirstWaterOfStage,
		})
		out.Transition = &advice
		// A flush verdict stands alone in the warning list.
		if !analysis.Verdict.NeedsFlush() {
			warnings = append(warnings, advice.Warnings...)
		}
	}
	out.Warnings = sortWarnings(warnings)
	return out
}
