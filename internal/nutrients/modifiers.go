package nutrients

// MaxModifier bounds every per-nutrient modifier in both directions.
const MaxModifier = 0.30

// Modifiers maps each nutrient of a stage to a signed fractional adjustment.
type Modifiers map[Nutrient]float64

// ModifierParams are the inputs of CalculateModifiers.
type ModifierParams struct {
	Stage    GrowStage
	Symptoms SymptomSet
	RootBall RootBallSize
	Verdict  Verdict
}

// CalculateModifiers returns a modifier for every nutrient of the stage.
// Symptom adjustments are skipped while a flush or underfeed verdict is
// active; the root-size modifier always applies.
func CalculateModifiers(p ModifierParams) Modifiers {
	profile := Profile(p.Stage)
	mods := make(Modifiers, len(profile.Nutrients))
	for _, spec := range profile.Nutrients {
		mods[spec.Nutrient] = 0
		if p.RootBall == RootBallSmall {
			mods[spec.Nutrient] = SmallRootBallModifier
		}
	}

	if !p.Verdict.SuppressesModifiers() {
		for _, sym := range p.Symptoms.Sorted() {
			adj := AdjustmentFor(p.Stage, sym)
			if adj.Percent == 0 {
				continue
			}
			mods[adj.Nutrient] += adj.Percent
		}
	}

	for n, v := range mods {
		mods[n] = clampModifier(v)
	}
	return mods
}

func clampModifier(v float64) float64 {
	return max(-MaxModifier, min(MaxModifier, v))
}
