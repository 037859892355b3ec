package dashboard

import (
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"github.com/shreyajaiswal17/athletehub/internal/telemetry/metrics"
	"github.com/shreyajaiswal17/athletehub/internal/workload"
)

const megabyte = 1024 * 1024

// Cache keeps computed snapshots as JSON, keyed by athlete ID.
// Every invalidation bumps the athlete's generation; a snapshot computed
// under an older generation is never stored.
type Cache struct {
	cache     *freecache.Cache
	expireSec int
	metrics   *metrics.Manager

	mu          sync.Mutex
	generations map[int]uint64
	clears      uint64
}

func NewCache(sizeMB int, ttl time.Duration, metrics *metrics.Manager) *Cache {
	if sizeMB < 1 {
		sizeMB = 1
	}
	expireSec := int(ttl.Seconds())
	if expireSec < 1 {
		expireSec = 1
	}
	return &Cache{
		cache:     freecache.NewCache(sizeMB * megabyte),
		expireSec:   expireSec,
		metrics:     metrics,
		generations: map[int]uint64{},
	}
}

func (c *Cache) Get(athleteID int) (*workload.Snapshot, bool) {
	snapBytes, err := c.cache.Get(cacheKey(athleteID))
	if err != nil {
		c.metrics.CounterMetricsCache.WithLabelValues("miss").Inc()
		return nil, false
	}

	snap := &workload.Snapshot{}
	if err := json.Unmarshal(snapBytes, snap); err != nil {
		log.Errorf("failed to unmarshal cached snapshot of athlete %d: %s", athleteID, err)
		c.cache.Del(cacheKey(athleteID))
		c.metrics.CounterMetricsCache.WithLabelValues("miss").Inc()
		return nil, false
	}

	c.metrics.CounterMetricsCache.WithLabelValues("hit").Inc()
	return snap, true
}

// Generation must be read before fetching the data a snapshot is computed from.
func (c *Cache) Generation(athleteID int) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[athleteID] + c.clears
}

// Set stores the snapshot unless the athlete was invalidated since generation was read.
func (c *Cache) Set(snap *workload.Snapshot, generation uint64) bool {
	snapBytes, err := json.Marshal(snap)
	if err != nil {
		log.Errorf("failed to marshal snapshot of athlete %d: %s", snap.AthleteID, err)
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[snap.AthleteID]+c.clears != generation {
		log.Tracef("snapshot of athlete %d is stale, not caching", snap.AthleteID)
		return false
	}
	if err := c.cache.Set(cacheKey(snap.AthleteID), snapBytes, c.expireSec); err != nil {
		log.Errorf("failed to cache snapshot of athlete %d: %s", snap.AthleteID, err)
		return false
	}
	return true
}

// Invalidate drops the cached snapshot, called whenever athlete data changes.
func (c *Cache) Invalidate(athleteID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generations[athleteID]++
	if c.cache.Del(cacheKey(athleteID)) {
		log.Tracef("metrics cache invalidated for athlete %d", athleteID)
	}
}

func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clears++
	c.cache.Clear()
}

func cacheKey(athleteID int) []byte {
	return []byte("snapshot::" + strconv.Itoa(athleteID))
}
