package nutrients

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeSymptoms_Empty(t *testing.T) {
	got := AnalyzeSymptoms(NewSymptomSet(), StageVegetative)
	assert.Empty(t, got.Warnings)
	assert.Equal(t, Verdict{}, got.Verdict)
}

func TestAnalyzeSymptoms_ConflictShortCircuitsEveryStage(t *testing.T) {
	for _, stage := range Stages() {
		for _, ion := range macroIons {
			def, _ := symptomOf(ion, Deficiency)
			tox, _ := symptomOf(ion, Toxicity)
			// Pile on extra symptoms that would otherwise produce warnings.
			set := NewSymptomSet(def, tox, PotassiumToxicity, MagnesiumToxicity, IronDeficiency, SulfurDeficiency)

			got := AnalyzeSymptoms(set, stage)
			require.Len(t, got.Warnings, 1, "stage %s ion %s", stage, ion)
			assert.Equal(t, CategoryConflict, got.Warnings[0].Category)
			assert.Equal(t, PriorityCritical, got.Warnings[0].Priority)
			assert.True(t, got.Verdict.HasConflict)
			assert.False(t, got.Verdict.IsUnderfeeding)
		}
	}
}

func TestAnalyzeSymptoms_SevereToxicity(t *testing.T) {
	set := NewSymptomSet(NitrogenToxicity, PotassiumToxicity, MagnesiumToxicity, PhosphorusDeficiency)
	got := AnalyzeSymptoms(set, StageFlower)

	require.Len(t, got.Warnings, 1)
	assert.Equal(t, CategoryFlush, got.Warnings[0].Category)
	assert.Equal(t, PriorityCritical, got.Warnings[0].Priority)
	assert.True(t, got.Verdict.IsSevereToxicity)
	assert.True(t, got.Verdict.NeedsFlush())
}

func TestAnalyzeSymptoms_Underfeeding(t *testing.T) {
	set := NewSymptomSet(NitrogenDeficiency, PhosphorusDeficiency, MagnesiumDeficiency)
	got := AnalyzeSymptoms(set, StageVegetative)

	assert.True(t, got.Verdict.IsUnderfeeding)
	assert.False(t, got.Verdict.NeedsFlush())
	require.NotEmpty(t, got.Warnings)
	var severe int
	for _, w := range got.Warnings {
		if w.Category == CategorySevere {
			severe++
			assert.Equal(t, PriorityMedium, w.Priority)
			assert.Contains(t, w.Message, "200 PPM")
		}
	}
	assert.Equal(t, 1, severe)
}

func TestAnalyzeSymptoms_StageConflictsAndSupplement(t *testing.T) {
	// Calcium deficiency has no fix in the bloom formula.
	got := AnalyzeSymptoms(NewSymptomSet(CalciumDeficiency), StageBudSet)

	require.Len(t, got.Warnings, 2)
	assert.Equal(t, PriorityHigh, got.Warnings[0].Priority)
	assert.Equal(t, CategoryStageConflict, got.Warnings[0].Category)
	assert.Contains(t, got.Warnings[0].Message, "external supplement")
	assert.Equal(t, PriorityMedium, got.Warnings[1].Priority)
	assert.Equal(t, CategoryStageConflict, got.Warnings[1].Category)
}

func TestAnalyzeSymptoms_AntagonismNotices(t *testing.T) {
	got := AnalyzeSymptoms(NewSymptomSet(PotassiumToxicity, IronDeficiency), StageVegetative)

	require.Len(t, got.Warnings, 2)
	for _, w := range got.Warnings {
		assert.Equal(t, CategoryAntagonism, w.Category)
		assert.Equal(t, PriorityLow, w.Priority)
	}
	// Canonical symptom order: potassium before iron.
	assert.Equal(t, antagonismNotices[PotassiumToxicity], got.Warnings[0].Message)
	assert.Equal(t, antagonismNotices[IronDeficiency], got.Warnings[1].Message)
}

func TestAnalyzeSymptoms_SortedByPriority(t *testing.T) {
	set := NewSymptomSet(NitrogenDeficiency, CalciumDeficiency, IronDeficiency, PotassiumToxicity)
	got := AnalyzeSymptoms(set, StageBudSet)

	require.NotEmpty(t, got.Warnings)
	for i := 1; i < len(got.Warnings); i++ {
		assert.LessOrEqual(t, got.Warnings[i-1].Priority, got.Warnings[i].Priority)
	}
}

func TestAnalyzeSymptoms_Deduplicates(t *testing.T) {
	var l warningList
	l.add(CategoryNotice, PriorityInfo, "same")
	l.add(CategoryNotice, PriorityInfo, "same")
	l.add(CategoryNotice, PriorityLow, "same")
	assert.Len(t, l.sorted(), 2)
}

func TestAnalyzeSymptoms_NotApplicableSymptomDoesNotPanic(t *testing.T) {
	for _, stage := range Stages() {
		for _, sym := range AllSymptoms() {
			assert.NotPanics(t, func() { AnalyzeSymptoms(NewSymptomSet(sym), stage) })
		}
	}
}

func TestAnalyzeSymptoms_UnknownStagePanics(t *testing.T) {
	assert.Panics(t, func() { AnalyzeSymptoms(NewSymptomSet(), GrowStage("dormant")) })
}
