package nutrients

// DosingParams are the inputs of ResolveDosing.
type DosingParams struct {
	Stage     GrowStage
	Scale     Scale
	TargetPPM int
	SourcePPM float64
	Volume    float64
	Unit      VolumeUnit
	Modifiers Modifiers
}

// NutrientDose is the mass of one product and the reading it adds.
type NutrientDose struct {
	Nutrient Nutrient `json:"nutrient"`
	Grams    float64  `json:"grams"`
	PPM      float64  `json:"ppm"`
}

// DosingResult is the dry-mass recipe for one reservoir.
//
// TotalPPM is what the nutrients have to add (target minus source water) and
// is negative when the source water already exceeds the target; FinalPPM is
// the expected reading of the finished solution.
type DosingResult struct {
	Nutrients   []NutrientDose `json:"nutrients"`
	ScaleFactor float64        `json:"scale_factor"`
	TotalPPM    float64        `json:"total_ppm"`
	FinalPPM    float64        `json:"final_ppm"`
}

// Grams returns the mass of n, zero if the stage does not use it.
func (d DosingResult) Grams(n Nutrient) float64 {
	for _, dose := range d.Nutrients {
		if dose.Nutrient == n {
			return dose.Grams
		}
	}
	return 0
}

// ResolveDosing converts a target concentration into grams per nutrient.
func ResolveDosing(p DosingParams) DosingResult {
	profile := Profile(p.Stage)
	if p.Stage == StageFlush {
		return DosingResult{Nutrients: []NutrientDose{}, FinalPPM: p.SourcePPM}
	}

	fullStrength := profile.FullStrengthPPM(p.Scale)
	if fullStrength <= 0 {
		return zeroDosing(profile, p.SourcePPM)
	}

	nutrientPPM := float64(p.TargetPPM) - p.SourcePPM
	scaleFactor := nutrientPPM / float64(fullStrength)
	gallons := p.Unit.toGallons(p.Volume)

	doses := make([]NutrientDose, 0, len(profile.Nutrients))
	for _, spec := range profile.Nutrients {
		grams := spec.GramsPerGallon * scaleFactor * (1 + p.Modifiers[spec.Nutrient]) * gallons
		var ppm float64
		if gallons != 0 {
			ppm = grams / gallons * spec.PPMPerGram * p.Scale.factor()
		}
		doses = append(doses, NutrientDose{Nutrient: spec.Nutrient, Grams: grams, PPM: ppm})
	}

	return DosingResult{
		Nutrients:   doses,
		ScaleFactor: scaleFactor,
		TotalPPM:    nutrientPPM,
		FinalPPM:    nutrientPPM + p.SourcePPM,
	}
}

func zeroDosing(profile StageProfile, sourcePPM float64) DosingResult {
	doses := make([]NutrientDose, 0, len(profile.Nutrients))
	for _, spec := range profile.Nutrients {
		doses = append(doses, NutrientDose{Nutrient: spec.Nutrient})
	}
	return DosingResult{Nutrients: doses, FinalPPM: sourcePPM}
}
