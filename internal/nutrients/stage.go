// Package nutrients implements the Jack's 3-2-1 feed calculation: symptom
// analysis, target concentration resolution, per-nutrient modifiers and the
// dry-mass dosing that follows from them.
//
// Everything in this package is a pure function of its inputs and of the
// reference tables below. Nothing here logs, blocks or keeps state.
package nutrients

import (
	"fmt"
	"strings"
)

// GrowStage is a step of the fixed feeding schedule.
type GrowStage string

const (
	StagePropagation GrowStage = "propagation"
	StageVegetative  GrowStage = "vegetative"
	StageBudSet      GrowStage = "bud_set"
	StageFlower      GrowStage = "flower"
	StageLateFlower  GrowStage = "late_flower"
	StageFlush       GrowStage = "flush"
)

var stageOrder = []GrowStage{
	StagePropagation,
	StageVegetative,
	StageBudSet,
	StageFlower,
	StageLateFlower,
	StageFlush,
}

var stageLabels = map[GrowStage]string{
	StagePropagation: "Propagation",
	StageVegetative:  "Vegetative",
	StageBudSet:      "Bud set",
	StageFlower:      "Flower",
	StageLateFlower:  "Late flower",
	StageFlush:       "Flush",
}

// Stages returns every grow stage in schedule order.
func Stages() []GrowStage {
	out := make([]GrowStage, len(stageOrder))
	copy(out, stageOrder)
	return out
}

// ParseGrowStage converts user input into a GrowStage.
func ParseGrowStage(s string) (GrowStage, error) {
	st := GrowStage(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := stageLabels[st]; !ok {
		return "", fmt.Errorf("unknown grow stage %q", s)
	}
	return st, nil
}

// Valid reports whether s is one of the known stages.
func (s GrowStage) Valid() bool {
	_, ok := stageLabels[s]
	return ok
}

// Label returns the display name of the stage.
func (s GrowStage) Label() string {
	if l, ok := stageLabels[s]; ok {
		return l
	}
	return string(s)
}

// Previous returns the stage that precedes s in the schedule.
// Propagation has no predecessor and returns itself.
func (s GrowStage) Previous() GrowStage {
	for i, st := range stageOrder {
		if st == s {
			if i == 0 {
				return s
			}
			return stageOrder[i-1]
		}
	}
	panic(fmt.Sprintf("nutrients: unknown grow stage %q", s))
}

// exemptFromLuxury reports whether luxury-uptake scaling is ignored for s.
func (s GrowStage) exemptFromLuxury() bool {
	return s == StagePropagation || s == StageFlush
}

// Scale is the meter conversion convention a PPM reading is reported in.
type Scale int

const (
	Scale500 Scale = 500
	Scale700 Scale = 700
)

// ParseScale converts a numeric reporting scale.
func ParseScale(v int) (Scale, error) {
	switch Scale(v) {
	case Scale500, Scale700:
		return Scale(v), nil
	}
	return 0, fmt.Errorf("unknown reporting scale %d (want 500 or 700)", v)
}

// Valid reports whether sc is a supported reporting scale.
func (sc Scale) Valid() bool {
	return sc == Scale500 || sc == Scale700
}

// factor converts a 500-scale reading to sc.
func (sc Scale) factor() float64 {
	return float64(sc) / float64(Scale500)
}

// Nutrient is one of the dry products that make up a feed.
type Nutrient string

const (
	NutrientPartA  Nutrient = "part_a"
	NutrientPartB  Nutrient = "part_b"
	NutrientBloom  Nutrient = "bloom"
	NutrientFinish Nutrient = "finish"
	NutrientEpsom  Nutrient = "epsom"
)

// RootBallSize adjusts the whole feed for plants with an undersized root mass.
type RootBallSize string

const (
	RootBallNormal RootBallSize = "normal"
	RootBallSmall  RootBallSize = "small"
)

// SmallRootBallModifier is applied to every nutrient when RootBallSmall is set.
const SmallRootBallModifier = -0.15

// Valid reports whether r is a known root ball size.
func (r RootBallSize) Valid() bool {
	return r == RootBallNormal || r == RootBallSmall
}

// VolumeUnit is the unit the reservoir volume is given in.
type VolumeUnit string

const (
	Gallons VolumeUnit = "gal"
	Liters  VolumeUnit = "l"
)

// LitersPerGallon converts US gallons to liters.
const LitersPerGallon = 3.78541

// Valid reports whether u is a known unit.
func (u VolumeUnit) Valid() bool {
	return u == Gallons || u == Liters
}

// toGallons converts v from u into US gallons.
func (u VolumeUnit) toGallons(v float64) float64 {
	if u == Liters {
		return v / LitersPerGallon
	}
	return v
}
