package nutrients

import "fmt"

// Adjustment is the stage-specific response to a single symptom.
type Adjustment struct {
	// Percent is a signed fraction, +0.15 means 15% more of Nutrient.
	Percent  float64  `json:"percent"`
	Nutrient Nutrient `json:"nutrient,omitempty"`
	// Message is an advisory shown as a stage-conflict warning.
	Message string `json:"message,omitempty"`
	// RequiresSupplement marks symptoms the stage's products cannot correct.
	RequiresSupplement bool `json:"requires_supplement,omitempty"`
}

// baseAdjustments apply to the three-part A/B/Epsom stages. Part A carries
// phosphorus, potassium and the micros, Part B carries nitrogen and calcium,
// Epsom carries magnesium and sulfur.
var baseAdjustments = map[Symptom]Adjustment{
	NitrogenDeficiency:   {Percent: 0.15, Nutrient: NutrientPartB},
	NitrogenToxicity:     {Percent: -0.20, Nutrient: NutrientPartB},
	PhosphorusDeficiency: {Percent: 0.15, Nutrient: NutrientPartA},
	PhosphorusToxicity:   {Percent: -0.20, Nutrient: NutrientPartA},
	PotassiumDeficiency:  {Percent: 0.10, Nutrient: NutrientPartA},
	PotassiumToxicity:    {Percent: -0.15, Nutrient: NutrientPartA},
	CalciumDeficiency:    {Percent: 0.15, Nutrient: NutrientPartB},
	CalciumToxicity:      {Percent: -0.15, Nutrient: NutrientPartB},
	MagnesiumDeficiency:  {Percent: 0.20, Nutrient: NutrientEpsom},
	MagnesiumToxicity:    {Percent: -0.25, Nutrient: NutrientEpsom},
	SulfurDeficiency:     {Percent: 0.10, Nutrient: NutrientEpsom},
	IronDeficiency:       {Percent: 0.05, Nutrient: NutrientPartA},
}

// singlePartOverrides covers the stages where one product replaces A and B.
func singlePartOverrides(part Nutrient, stage string) map[Symptom]Adjustment {
	return map[Symptom]Adjustment{
		NitrogenToxicity:     {Percent: -0.15, Nutrient: part},
		PhosphorusDeficiency: {Percent: 0.10, Nutrient: part},
		PhosphorusToxicity:   {Percent: -0.20, Nutrient: part},
		PotassiumDeficiency:  {Percent: 0.10, Nutrient: part},
		PotassiumToxicity:    {Percent: -0.15, Nutrient: part},
		IronDeficiency:       {Percent: 0.05, Nutrient: part},
		CalciumDeficiency: {
			Message:            fmt.Sprintf("The %s formula carries no calcium. Correct calcium deficiency with a Cal-Mag supplement.", stage),
			RequiresSupplement: true,
		},
		CalciumToxicity: {
			Message: fmt.Sprintf("The %s formula carries no calcium. Check source water hardness before changing the feed.", stage),
		},
	}
}

var stageOverrides = map[GrowStage]map[Symptom]Adjustment{
	StagePropagation: {
		MagnesiumDeficiency: {Message: "Seedlings are fed without Epsom. Check pH before adding magnesium."},
		MagnesiumToxicity:   {Message: "Seedlings are fed without Epsom. Excess magnesium points at the source water."},
		SulfurDeficiency:    {Message: "Seedlings are fed without Epsom. Sulfur deficiency is rare this early; check pH first."},
	},
	StageBudSet: mergeAdjustments(singlePartOverrides(NutrientBloom, "bloom"), map[Symptom]Adjustment{
		NitrogenDeficiency: {
			Message:            "Bloom is low in nitrogen. Correct real nitrogen deficiency during bud set with a separate nitrogen source.",
			RequiresSupplement: true,
		},
	}),
	StageFlower: {
		NitrogenDeficiency: {
			Percent:  0.10,
			Nutrient: NutrientPartB,
			Message:  "Some lower-leaf yellowing is normal in flower. Raise nitrogen only if it climbs past the lower canopy.",
		},
		NitrogenToxicity: {Percent: -0.25, Nutrient: NutrientPartB},
	},
	StageLateFlower: mergeAdjustments(singlePartOverrides(NutrientFinish, "finish"), map[Symptom]Adjustment{
		NitrogenDeficiency: {Message: "Nitrogen fade is expected in late flower. Do not raise nitrogen now."},
	}),
}

func mergeAdjustments(a, b map[Symptom]Adjustment) map[Symptom]Adjustment {
	out := make(map[Symptom]Adjustment, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

var adjustmentTable = buildAdjustmentTable()

// buildAdjustmentTable expands the base table and the stage overrides into a
// total stage x symptom table. Stages without products (flush) get zero
// placeholders. It panics if any pairing is left undefined or if an entry
// adjusts a nutrient the stage does not use.
func buildAdjustmentTable() map[GrowStage]map[Symptom]Adjustment {
	table := make(map[GrowStage]map[Symptom]Adjustment, len(stageOrder))
	for _, st := range stageOrder {
		p, ok := profiles[st]
		if !ok {
			panic(fmt.Sprintf("nutrients: no profile for stage %q", st))
		}
		entries := make(map[Symptom]Adjustment, len(symptomOrder))
		for _, sym := range symptomOrder {
			adj, ok := stageOverrides[st][sym]
			if !ok && len(p.Nutrients) > 0 {
				adj, ok = baseAdjustments[sym]
			}
			if !ok && len(p.Nutrients) == 0 {
				adj, ok = Adjustment{}, true
			}
			if !ok {
				panic(fmt.Sprintf("nutrients: no adjustment for %q in stage %q", sym, st))
			}
			if adj.Percent != 0 && !p.Has(adj.Nutrient) {
				panic(fmt.Sprintf("nutrients: %q in stage %q adjusts %q which the stage does not use", sym, st, adj.Nutrient))
			}
			entries[sym] = adj
		}
		for sym := range stageOverrides[st] {
			if _, ok := symptoms[sym]; !ok {
				panic(fmt.Sprintf("nutrients: override for unknown symptom %q in stage %q", sym, st))
			}
		}
		table[st] = entries
	}
	return table
}

// AdjustmentFor returns the adjustment for a symptom in a stage. Every pairing
// is defined; unknown values panic.
func AdjustmentFor(stage GrowStage, s Symptom) Adjustment {
	entries, ok := adjustmentTable[stage]
	if !ok {
		panic(fmt.Sprintf("nutrients: unknown grow stage %q", stage))
	}
	adj, ok := entries[s]
	if !ok {
		panic(fmt.Sprintf("nutrients: unknown symptom %q", s))
	}
	return adj
}
