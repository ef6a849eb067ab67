package models

// WarningCode categorizes host-level warnings.
// Grower-facing feed warnings come from the nutrients package; these cover
// what the service itself noticed. W5xxx = feed service.
type WarningCode string

const (
	WarnFeedLogDisabled      WarningCode = "W5001" // record requested but no database is configured
	WarnLastFeedLookupFailed WarningCode = "W5002" // zone history could not be read; no transition advice
	WarnSourceAboveTarget    WarningCode = "W5003" // source water already exceeds the target, dilute instead of dosing
	WarnNonPositiveVolume    WarningCode = "W5004" // masses computed for a zero or negative volume
	WarnFeedLogWithoutZone   WarningCode = "W5005" // record requested without a zone id
)

// Warning represents a non-fatal issue encountered during processing.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}
