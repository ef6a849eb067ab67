package models

import (
	"fmt"
	"time"

	"github.com/epeers/gardenfeed/internal/nutrients"
	"github.com/shopspring/decimal"
)

// FeedLogNutrient is the mass of one product in a logged feed
type FeedLogNutrient struct {
	Nutrient nutrients.Nutrient `json:"nutrient"`
	Grams    decimal.Decimal    `json:"grams"`
}

// FeedLog is the activity record written after a feed is mixed.
// Maps to feed_log + feed_log_nutrient.
type FeedLog struct {
	ID         int64                `json:"id"`
	ZoneID     int64                `json:"zone_id"`
	GrowerID   *int64               `json:"grower_id,omitempty"`
	FedOn      FlexibleDate         `json:"fed_on"`
	Volume     decimal.Decimal      `json:"volume"`
	VolumeUnit nutrients.VolumeUnit `json:"volume_unit"`
	Stage      nutrients.GrowStage  `json:"stage"`
	Scale      nutrients.Scale      `json:"scale"`
	Nutrients  []FeedLogNutrient    `json:"nutrients"`
	FinalPPM   decimal.Decimal      `json:"final_ppm"`
	Notes      *string              `json:"notes,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
}

// FinalPPMFloat returns the logged final concentration as a float for the
// transition advisor.
func (l *FeedLog) FinalPPMFloat() float64 {
	return l.FinalPPM.InexactFloat64()
}

// NewFeedLog flattens a calculation into a log record. Masses are rounded to
// 0.01 g and the final reading to 0.01 PPM.
func NewFeedLog(req *CalculateRequest, out *nutrients.Output, growerID *int64, fedOn time.Time) *FeedLog {
	unit := req.VolumeUnit
	if unit == "" {
		unit = nutrients.Gallons
	}
	scale := req.Scale
	if scale == 0 {
		scale = nutrients.Scale500
	}

	entry := &FeedLog{
		ZoneID:     req.ZoneID,
		GrowerID:   growerID,
		FedOn:      FlexibleDate{Time: fedOn},
		Volume:     decimal.NewFromFloat(req.Volume).Round(3),
		VolumeUnit: unit,
		Stage:      req.Stage,
		Scale:      scale,
		Nutrients:  make([]FeedLogNutrient, 0, len(out.Dosing.Nutrients)),
		FinalPPM:   decimal.NewFromFloat(out.Dosing.FinalPPM).Round(2),
	}
	for _, dose := range out.Dosing.Nutrients {
		entry.Nutrients = append(entry.Nutrients, FeedLogNutrient{
			Nutrient: dose.Nutrient,
			Grams:    decimal.NewFromFloat(dose.Grams).Round(2),
		})
	}

	notes := req.Notes
	if notes == "" {
		notes = fmt.Sprintf("%s feed at %d PPM (%d scale), %d warning(s)",
			req.Stage.Label(), out.TargetPPM, scale, len(out.Warnings))
	}
	entry.Notes = &notes
	return entry
}

// FeedLogListItem is a zone's feed history entry
type FeedLogListItem struct {
	ID       int64               `json:"id"`
	FedOn    FlexibleDate        `json:"fed_on"`
	Stage    nutrients.GrowStage `json:"stage"`
	FinalPPM decimal.Decimal     `json:"final_ppm"`
	Notes    *string             `json:"notes,omitempty"`
}
