package models

import (
	"github.com/epeers/gardenfeed/internal/nutrients"
)

// CalculateRequest represents the request body for a feed calculation.
// The calculator inputs are inlined; the remaining fields only matter to the service.
type CalculateRequest struct {
	nutrients.Input
	ZoneID int64  `json:"zone_id,omitempty"`
	Record bool   `json:"record"`
	Notes  string `json:"notes,omitempty"`
	// FedOn defaults to today in TimeZone.
	FedOn    *FlexibleDate `json:"fed_on,omitempty"`
	TimeZone string        `json:"time_zone,omitempty"`
}

// LastFeedSource tells where the last-feed reading of a calculation came from
type LastFeedSource string

const (
	LastFeedFromRequest LastFeedSource = "request"
	LastFeedFromCache   LastFeedSource = "cache"
	LastFeedFromHistory LastFeedSource = "history"
)

// CalculateResponse represents the result of a feed calculation
type CalculateResponse struct {
	nutrients.Output
	ZoneID         int64          `json:"zone_id,omitempty"`
	LastFeedSource LastFeedSource `json:"last_feed_source,omitempty"`
	FeedLogQueued  bool           `json:"feed_log_queued"`
	HostWarnings   []Warning      `json:"host_warnings,omitempty"`
}

// MaxBatchItems caps the feeds calculated in one batch request
const MaxBatchItems = 50

// BatchCalculateRequest represents several zones mixed in one session
type BatchCalculateRequest struct {
	Items []CalculateRequest `json:"items" binding:"required,min=1,max=50"`
}

// BatchCalculateResponse holds the results in request order
type BatchCalculateResponse struct {
	Results []CalculateResponse `json:"results"`
}

// TransitionRequest represents the request body for the transition advisor
type TransitionRequest struct {
	Stage             nutrients.GrowStage `json:"stage" binding:"required"`
	Scale             nutrients.Scale     `json:"scale"`
	LastFeedPPM       float64             `json:"last_feed_ppm"`
	FirstWaterOfStage bool                `json:"first_water_of_stage"`
}

// StagesResponse lists the reference stage profiles
type StagesResponse struct {
	Stages []nutrients.StageProfile `json:"stages"`
}

// FeedLogListResponse lists a zone's recent feeds
type FeedLogListResponse struct {
	ZoneID int64             `json:"zone_id"`
	Logs   []FeedLogListItem `json:"logs"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
