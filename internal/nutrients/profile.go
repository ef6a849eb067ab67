package nutrients

import "fmt"

// NutrientSpec holds the reference constants of one nutrient within a stage.
// GramsPerGallon is the dose at the stage's full-strength concentration;
// PPMPerGram is the 500-scale reading one gram per gallon contributes.
type NutrientSpec struct {
	Nutrient       Nutrient `json:"nutrient"`
	GramsPerGallon float64  `json:"grams_per_gallon"`
	PPMPerGram     float64  `json:"ppm_per_gram"`
}

// PHRange is the optimum root-zone pH window of a stage.
type PHRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// StageProfile is the immutable reference record of one grow stage.
type StageProfile struct {
	Stage           GrowStage `json:"stage"`
	Label           string    `json:"label"`
	Base500         int       `json:"base_500"`
	Base700         int       `json:"base_700"`
	FullStrength500 int       `json:"full_strength_500"`
	FullStrength700 int       `json:"full_strength_700"`
	// Enrichment ceilings are zero when the stage has none.
	Ceiling500 int            `json:"enrichment_ceiling_500,omitempty"`
	Ceiling700 int            `json:"enrichment_ceiling_700,omitempty"`
	Nutrients  []NutrientSpec `json:"nutrients"`
	MixRatio   string         `json:"mix_ratio"`
	PH         PHRange        `json:"ph"`
}

// BasePPM returns the stage baseline at the given scale.
func (p StageProfile) BasePPM(sc Scale) int {
	if sc == Scale700 {
		return p.Base700
	}
	return p.Base500
}

// FullStrengthPPM returns the vendor 100%-strength concentration at the given scale.
func (p StageProfile) FullStrengthPPM(sc Scale) int {
	if sc == Scale700 {
		return p.FullStrength700
	}
	return p.FullStrength500
}

// EnrichmentCeiling returns the enrichment ceiling at the given scale, if any.
func (p StageProfile) EnrichmentCeiling(sc Scale) (int, bool) {
	c := p.Ceiling500
	if sc == Scale700 {
		c = p.Ceiling700
	}
	return c, c > 0
}

// Has reports whether n belongs to the stage's nutrient set.
func (p StageProfile) Has(n Nutrient) bool {
	for _, spec := range p.Nutrients {
		if spec.Nutrient == n {
			return true
		}
	}
	return false
}

// NutrientSet returns the stage's nutrients in mixing order.
func (p StageProfile) NutrientSet() []Nutrient {
	out := make([]Nutrient, 0, len(p.Nutrients))
	for _, spec := range p.Nutrients {
		out = append(out, spec.Nutrient)
	}
	return out
}

// 500-scale PPM contributed by one gram per gallon of each product.
const (
	ppmPerGramPartA  = 165.0
	ppmPerGramPartB  = 180.0
	ppmPerGramEpsom  = 96.0
	ppmPerGramBloom  = 320.0
	ppmPerGramFinish = 300.0
)

func threeTwoOne(epsom float64) []NutrientSpec {
	return []NutrientSpec{
		{Nutrient: NutrientPartA, GramsPerGallon: 3.79, PPMPerGram: ppmPerGramPartA},
		{Nutrient: NutrientPartB, GramsPerGallon: 2.52, PPMPerGram: ppmPerGramPartB},
		{Nutrient: NutrientEpsom, GramsPerGallon: epsom, PPMPerGram: ppmPerGramEpsom},
	}
}

var profiles = map[GrowStage]StageProfile{
	StagePropagation: {
		Stage:           StagePropagation,
		Base500:         400,
		Base700:         560,
		FullStrength500: 1200,
		FullStrength700: 1680,
		// Seedlings get A and B only.
		Nutrients: threeTwoOne(0),
		MixRatio:  "3.79 : 2.52 : 0 g/gal",
		PH:        PHRange{Min: 5.8, Max: 6.2},
	},
	StageVegetative: {
		Stage:           StageVegetative,
		Base500:         1200,
		Base700:         1680,
		FullStrength500: 1200,
		FullStrength700: 1680,
		Ceiling500:      1500,
		Ceiling700:      2100,
		Nutrients:       threeTwoOne(1.26),
		MixRatio:        "3.79 : 2.52 : 1.26 g/gal",
		PH:              PHRange{Min: 5.8, Max: 6.2},
	},
	StageBudSet: {
		Stage:           StageBudSet,
		Base500:         1000,
		Base700:         1400,
		FullStrength500: 1000,
		FullStrength700: 1400,
		Ceiling500:      1200,
		Ceiling700:      1680,
		Nutrients: []NutrientSpec{
			{Nutrient: NutrientBloom, GramsPerGallon: 2.75, PPMPerGram: ppmPerGramBloom},
			{Nutrient: NutrientEpsom, GramsPerGallon: 1.26, PPMPerGram: ppmPerGramEpsom},
		},
		MixRatio: "2.75 : 1.26 g/gal",
		PH:       PHRange{Min: 6.0, Max: 6.4},
	},
	StageFlower: {
		Stage:           StageFlower,
		Base500:         1200,
		Base700:         1680,
		FullStrength500: 1200,
		FullStrength700: 1680,
		Ceiling500:      1500,
		Ceiling700:      2100,
		Nutrients:       threeTwoOne(1.26),
		MixRatio:        "3.79 : 2.52 : 1.26 g/gal",
		PH:              PHRange{Min: 6.0, Max: 6.5},
	},
	StageLateFlower: {
		Stage:           StageLateFlower,
		Base500:         800,
		Base700:         1120,
		FullStrength500: 800,
		FullStrength700: 1120,
		Nutrients: []NutrientSpec{
			{Nutrient: NutrientFinish, GramsPerGallon: 2.4, PPMPerGram: ppmPerGramFinish},
			{Nutrient: NutrientEpsom, GramsPerGallon: 0.84, PPMPerGram: ppmPerGramEpsom},
		},
		MixRatio: "2.4 : 0.84 g/gal",
		PH:       PHRange{Min: 6.0, Max: 6.5},
	},
	StageFlush: {
		Stage:    StageFlush,
		MixRatio: "plain water",
		PH:       PHRange{Min: 6.0, Max: 6.5},
	},
}

func init() {
	for _, st := range stageOrder {
		p, ok := profiles[st]
		if !ok {
			panic(fmt.Sprintf("nutrients: no profile for stage %q", st))
		}
		p.Label = st.Label()
		profiles[st] = p
	}
}

// Profile returns the reference profile of a stage. An unknown stage is a
// programming error and panics.
func Profile(s GrowStage) StageProfile {
	p, ok := profiles[s]
	if !ok {
		panic(fmt.Sprintf("nutrients: unknown grow stage %q", s))
	}
	p.Nutrients = append([]NutrientSpec(nil), p.Nutrients...)
	return p
}

// Profiles returns every stage profile in schedule order.
func Profiles() []StageProfile {
	out := make([]StageProfile, 0, len(stageOrder))
	for _, st := range stageOrder {
		out = append(out, Profile(st))
	}
	return out
}
