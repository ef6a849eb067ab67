package nutrients

import "fmt"

const (
	// severeToxicityCount toxicity symptoms at once means salt buildup.
	severeToxicityCount = 3
	// underfeedingCount deficiency symptoms at once means the feed is too weak.
	underfeedingCount = 3
	// UnderfeedBoostPPM is added to the target when underfeeding is detected.
	UnderfeedBoostPPM = 200
)

// Verdict holds the systemic conclusions drawn from the selected symptoms.
type Verdict struct {
	HasConflict      bool `json:"has_conflict"`
	IsSevereToxicity bool `json:"is_severe_toxicity"`
	IsUnderfeeding   bool `json:"is_underfeeding"`
}

// NeedsFlush reports whether the verdict calls for a flush instead of tuning.
func (v Verdict) NeedsFlush() bool {
	return v.HasConflict || v.IsSevereToxicity
}

// SuppressesModifiers reports whether per-symptom modifiers must be skipped.
func (v Verdict) SuppressesModifiers() bool {
	return v.NeedsFlush() || v.IsUnderfeeding
}

// SymptomAnalysis is the result of AnalyzeSymptoms.
type SymptomAnalysis struct {
	Warnings []Warning `json:"warnings"`
	Verdict  Verdict   `json:"verdict"`
}

// AnalyzeSymptoms turns the selected symptoms into prioritized warnings and a
// verdict. A deficiency/toxicity conflict on one ion and severe toxicity both
// short-circuit: the result then holds that single warning only.
func AnalyzeSymptoms(set SymptomSet, stage GrowStage) SymptomAnalysis {
	if !stage.Valid() {
		panic(fmt.Sprintf("nutrients: unknown grow stage %q", stage))
	}
	if len(set) == 0 {
		return SymptomAnalysis{Warnings: []Warning{}}
	}

	for _, ion := range macroIons {
		def, _ := symptomOf(ion, Deficiency)
		tox, _ := symptomOf(ion, Toxicity)
		if set.Has(def) && set.Has(tox) {
			return SymptomAnalysis{
				Warnings: []Warning{{
					Message: fmt.Sprintf("Conflicting %s symptoms: deficiency and toxicity are both selected. "+
						"Flush the medium with pH-adjusted water, then refeed at standard strength and reassess.", ion.Name()),
					Priority: PriorityCritical,
					Category: CategoryConflict,
				}},
				Verdict: Verdict{HasConflict: true},
			}
		}
	}

	var list warningList
	selected := set.Sorted()

	for _, sym := range selected {
		adj := AdjustmentFor(stage, sym)
		if adj.Message != "" {
			list.add(CategoryStageConflict, PriorityMedium, adj.Message)
		}
		if adj.RequiresSupplement {
			list.add(CategoryStageConflict, PriorityHigh, fmt.Sprintf(
				"%s during %s cannot be fixed by changing the base nutrients. Use an external supplement instead.",
				sym.Label(), stage.Label()))
		}
	}

	if n := set.Count(Toxicity); n >= severeToxicityCount {
		return SymptomAnalysis{
			Warnings: []Warning{{
				Message: fmt.Sprintf("%d toxicity symptoms point to salt buildup in the root zone. "+
					"Flush with plain pH-adjusted water before feeding again.", n),
				Priority: PriorityCritical,
				Category: CategoryFlush,
			}},
			Verdict: Verdict{IsSevereToxicity: true},
		}
	}

	var verdict Verdict
	if n := set.Count(Deficiency); n >= underfeedingCount {
		verdict.IsUnderfeeding = true
		list.add(CategorySevere, PriorityMedium, fmt.Sprintf(
			"%d deficiency symptoms suggest general underfeeding. Raise the target by %d PPM and keep the standard ratios.",
			n, UnderfeedBoostPPM))
	}

	for _, sym := range selected {
		if notice, ok := antagonismNotices[sym]; ok {
			list.add(CategoryAntagonism, PriorityLow, notice)
		}
	}

	return SymptomAnalysis{Warnings: list.sorted(), Verdict: verdict}
}
