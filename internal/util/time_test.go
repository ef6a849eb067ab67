package util

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
)

func TestFeedDate(t *testing.T) {
	// 02:30 UTC on June 2 is still June 1 in Los Angeles.
	instant := time.Date(2026, 6, 2, 2, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		tz   string
		want time.Time
	}{
		{"utc default", "", time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)},
		{"behind utc", "America/Los_Angeles", time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"ahead of utc", "Asia/Tokyo", time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)},
		{"unknown zone", "Mars/Olympus_Mons", time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FeedDate(instant, tt.tz))
		})
	}
}
