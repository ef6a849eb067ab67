package util

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// FeedDate returns the calendar date of t in the grower's time zone, as
// midnight UTC. An empty or unknown zone falls back to UTC.
func FeedDate(t time.Time, tz string) time.Time {
	loc := time.UTC
	if tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			log.Warnf("Failed to load location %q: %v. Falling back to UTC.", tz, err)
		} else {
			loc = l
		}
	}
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}
