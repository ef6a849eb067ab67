package cache

import (
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// LastFeed is the most recent feed of a zone, enough for the transition advisor
type LastFeed struct {
	FinalPPM float64
	FedOn    time.Time
}

// MemoryCache provides an in-memory L1 cache of each zone's last feed
type MemoryCache struct {
	lastFeeds *gocache.Cache
}

// NewMemoryCache creates a new in-memory cache. Entries expire after ttl.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		lastFeeds: gocache.New(ttl, 2*ttl),
	}
}

func zoneKey(zoneID int64) string {
	return strconv.FormatInt(zoneID, 10)
}

// GetLastFeed retrieves a zone's cached last feed if it has not expired
func (c *MemoryCache) GetLastFeed(zoneID int64) (LastFeed, bool) {
	v, ok := c.lastFeeds.Get(zoneKey(zoneID))
	if !ok {
		return LastFeed{}, false
	}
	return v.(LastFeed), true
}

// SetLastFeed caches a zone's last feed, replacing any older entry
func (c *MemoryCache) SetLastFeed(zoneID int64, feed LastFeed) {
	key := zoneKey(zoneID)
	if prev, ok := c.lastFeeds.Get(key); ok && prev.(LastFeed).FedOn.After(feed.FedOn) {
		return
	}
	c.lastFeeds.SetDefault(key, feed)
}

// InvalidateZone removes a zone from the cache
func (c *MemoryCache) InvalidateZone(zoneID int64) {
	c.lastFeeds.Delete(zoneKey(zoneID))
}

// Clear removes all cached data
func (c *MemoryCache) Clear() {
	c.lastFeeds.Flush()
}
