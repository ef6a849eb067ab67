package handlers

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/epeers/gardenfeed/internal/models"
	"github.com/epeers/gardenfeed/internal/nutrients"
)

// ParseFeedPlanCSV parses a feed plan spreadsheet into calculation requests, one per row.
// Required columns: zone_id, stage, volume
// Optional columns: scale, volume_unit, source_ppm, symptoms, enrichment, root_ball, record, notes
// symptoms holds several symptom names separated by ';'. Blank rows are skipped.
func ParseFeedPlanCSV(r io.Reader) ([]models.CalculateRequest, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	colIdx := make(map[string]int)
	for i, col := range header {
		colIdx[strings.ToLower(strings.TrimSpace(col))] = i
	}

	for _, col := range []string{"zone_id", "stage", "volume"} {
		if _, ok := colIdx[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	field := func(record []string, col string) string {
		idx, ok := colIdx[col]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var plan []models.CalculateRequest
	rowNum := 1 // header is row 1, data starts at row 2
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: failed to read CSV record: %w", rowNum+1, err)
		}
		rowNum++

		if strings.TrimSpace(strings.Join(record, "")) == "" {
			continue
		}

		req, err := parseFeedPlanRow(func(col string) string { return field(record, col) })
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		plan = append(plan, req)
	}

	return plan, nil
}

func parseFeedPlanRow(field func(string) string) (models.CalculateRequest, error) {
	var req models.CalculateRequest

	zoneID, err := strconv.ParseInt(field("zone_id"), 10, 64)
	if err != nil || zoneID <= 0 {
		return req, fmt.Errorf("invalid zone_id %q", field("zone_id"))
	}
	req.ZoneID = zoneID

	stage, err := nutrients.ParseGrowStage(field("stage"))
	if err != nil {
		return req, err
	}
	req.Stage = stage

	if req.Volume, err = parseFiniteFloat(field("volume")); err != nil {
		return req, fmt.Errorf("invalid volume %q", field("volume"))
	}

	if s := field("scale"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return req, fmt.Errorf("invalid scale %q", s)
		}
		if req.Scale, err = nutrients.ParseScale(v); err != nil {
			return req, err
		}
	}
	if s := field("source_ppm"); s != "" {
		if req.SourcePPM, err = parseFiniteFloat(s); err != nil {
			return req, fmt.Errorf("invalid source_ppm %q", s)
		}
	}
	for _, name := range strings.Split(field("symptoms"), ";") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		sym, err := nutrients.ParseSymptom(name)
		if err != nil {
			return req, err
		}
		req.Symptoms = append(req.Symptoms, sym)
	}
	if req.EnrichmentEnabled, err = parseOptionalBool(field("enrichment")); err != nil {
		return req, fmt.Errorf("invalid enrichment: %w", err)
	}
	if req.Record, err = parseOptionalBool(field("record")); err != nil {
		return req, fmt.Errorf("invalid record: %w", err)
	}

	req.VolumeUnit = nutrients.VolumeUnit(strings.ToLower(field("volume_unit")))
	req.RootBall = nutrients.RootBallSize(strings.ToLower(field("root_ball")))
	req.Notes = field("notes")
	return req, nil
}

// parseFiniteFloat rejects NaN and infinities, which ParseFloat accepts.
func parseFiniteFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return v, nil
}

func parseOptionalBool(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}
