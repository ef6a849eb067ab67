package nutrients

import (
	"fmt"
	"strings"
)

// Ion is a plant nutrient element a symptom is attributed to.
type Ion string

const (
	IonN  Ion = "N"
	IonP  Ion = "P"
	IonK  Ion = "K"
	IonCa Ion = "Ca"
	IonMg Ion = "Mg"
	IonS  Ion = "S"
	IonFe Ion = "Fe"
)

var ionNames = map[Ion]string{
	IonN:  "Nitrogen",
	IonP:  "Phosphorus",
	IonK:  "Potassium",
	IonCa: "Calcium",
	IonMg: "Magnesium",
	IonS:  "Sulfur",
	IonFe: "Iron",
}

// Name returns the element name.
func (i Ion) Name() string {
	return ionNames[i]
}

// macroIons can be selected as both deficient and toxic.
var macroIons = []Ion{IonN, IonP, IonK, IonCa, IonMg}

// SymptomKind separates shortage symptoms from excess symptoms.
type SymptomKind string

const (
	Deficiency SymptomKind = "deficiency"
	Toxicity   SymptomKind = "toxicity"
)

// Symptom is a visual deficiency or toxicity flag chosen by the grower.
type Symptom string

const (
	NitrogenDeficiency   Symptom = "n_deficiency"
	NitrogenToxicity     Symptom = "n_toxicity"
	PhosphorusDeficiency Symptom = "p_deficiency"
	PhosphorusToxicity   Symptom = "p_toxicity"
	PotassiumDeficiency  Symptom = "k_deficiency"
	PotassiumToxicity    Symptom = "k_toxicity"
	CalciumDeficiency    Symptom = "ca_deficiency"
	CalciumToxicity      Symptom = "ca_toxicity"
	MagnesiumDeficiency  Symptom = "mg_deficiency"
	MagnesiumToxicity    Symptom = "mg_toxicity"
	SulfurDeficiency     Symptom = "s_deficiency"
	IronDeficiency       Symptom = "fe_deficiency"
)

type symptomInfo struct {
	ion  Ion
	kind SymptomKind
}

var symptomOrder = []Symptom{
	NitrogenDeficiency, NitrogenToxicity,
	PhosphorusDeficiency, PhosphorusToxicity,
	PotassiumDeficiency, PotassiumToxicity,
	CalciumDeficiency, CalciumToxicity,
	MagnesiumDeficiency, MagnesiumToxicity,
	SulfurDeficiency,
	IronDeficiency,
}

var symptoms = map[Symptom]symptomInfo{
	NitrogenDeficiency:   {IonN, Deficiency},
	NitrogenToxicity:     {IonN, Toxicity},
	PhosphorusDeficiency: {IonP, Deficiency},
	PhosphorusToxicity:   {IonP, Toxicity},
	PotassiumDeficiency:  {IonK, Deficiency},
	PotassiumToxicity:    {IonK, Toxicity},
	CalciumDeficiency:    {IonCa, Deficiency},
	CalciumToxicity:      {IonCa, Toxicity},
	MagnesiumDeficiency:  {IonMg, Deficiency},
	MagnesiumToxicity:    {IonMg, Toxicity},
	SulfurDeficiency:     {IonS, Deficiency},
	IronDeficiency:       {IonFe, Deficiency},
}

// Lockout notices shown whenever the symptom is selected, whatever the stage.
var antagonismNotices = map[Symptom]string{
	NitrogenToxicity:   "Excess nitrogen, especially ammonium, suppresses calcium and potassium uptake.",
	PhosphorusToxicity: "Excess phosphorus can lock out iron and zinc.",
	PotassiumToxicity:  "Excess potassium competes with calcium and magnesium and can lock both out.",
	CalciumToxicity:    "Excess calcium antagonizes magnesium and potassium uptake.",
	MagnesiumToxicity:  "Excess magnesium interferes with calcium uptake.",
	IronDeficiency:     "Iron deficiency usually comes from high root-zone pH or excess phosphorus rather than a true shortage.",
}

// AllSymptoms returns every symptom in canonical order.
func AllSymptoms() []Symptom {
	out := make([]Symptom, len(symptomOrder))
	copy(out, symptomOrder)
	return out
}

// ParseSymptom converts user input into a Symptom.
func ParseSymptom(s string) (Symptom, error) {
	sym := Symptom(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := symptoms[sym]; !ok {
		return "", fmt.Errorf("unknown symptom %q", s)
	}
	return sym, nil
}

// Valid reports whether s is a known symptom.
func (s Symptom) Valid() bool {
	_, ok := symptoms[s]
	return ok
}

func (s Symptom) info() symptomInfo {
	info, ok := symptoms[s]
	if !ok {
		panic(fmt.Sprintf("nutrients: unknown symptom %q", s))
	}
	return info
}

// Ion returns the element the symptom belongs to.
func (s Symptom) Ion() Ion { return s.info().ion }

// Kind returns whether s is a deficiency or a toxicity.
func (s Symptom) Kind() SymptomKind { return s.info().kind }

// Label returns a display name such as "Calcium deficiency".
func (s Symptom) Label() string {
	info := s.info()
	return fmt.Sprintf("%s %s", info.ion.Name(), info.kind)
}

// symptomOf returns the symptom for an ion and kind, if that pairing exists.
func symptomOf(ion Ion, kind SymptomKind) (Symptom, bool) {
	for _, s := range symptomOrder {
		if info := symptoms[s]; info.ion == ion && info.kind == kind {
			return s, true
		}
	}
	return "", false
}

// SymptomSet is an unordered set of selected symptoms.
type SymptomSet map[Symptom]struct{}

// NewSymptomSet builds a set, dropping duplicates.
func NewSymptomSet(list ...Symptom) SymptomSet {
	set := make(SymptomSet, len(list))
	for _, s := range list {
		set[s] = struct{}{}
	}
	return set
}

// Has reports whether s is selected.
func (set SymptomSet) Has(s Symptom) bool {
	_, ok := set[s]
	return ok
}

// Sorted returns the selected symptoms in canonical order, so every walk over
// the set is deterministic.
func (set SymptomSet) Sorted() []Symptom {
	out := make([]Symptom, 0, len(set))
	for _, s := range symptomOrder {
		if set.Has(s) {
			out = append(out, s)
		}
	}
	return out
}

// Count returns how many selected symptoms are of the given kind.
func (set SymptomSet) Count(kind SymptomKind) int {
	n := 0
	for _, s := range set.Sorted() {
		if s.Kind() == kind {
			n++
		}
	}
	return n
}
