package panchang

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/aryabhata-go/panchangam/observability"
	"github.com/aryabhata-go/panchangam/timebase"
	"go.opentelemetry.io/otel/attribute"
)

// Cache memoizes DayPanchang results by (Julian Day, location), adapted
// from the teacher's ephemeris memory cache — but with no TTL or
// background eviction goroutine, since a panchang computation for a
// fixed (date, location) pair never changes: this is a pure in-process
// memoization, not a time-sensitive cache. No network I/O is involved.
type Cache struct {
	lru      *lru.Cache
	observer observability.ObserverInterface
}

// NewCache builds a Cache holding up to size entries. size must be > 0.
func NewCache(size int) (*Cache, error) {
	l, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("panchang.NewCache: %w", err)
	}
	return &Cache{lru: l, observer: observability.Observer()}, nil
}

func cacheKey(jdMidnight timebase.JD, loc Location) string {
	return fmt.Sprintf("%.6f|%.6f|%.6f|%.2f", float64(jdMidnight), loc.LatitudeDeg, loc.LongitudeDeg, loc.AltitudeM)
}

// DayPanchang returns the cached Day for (jdMidnight, loc), computing
// and storing it on a miss.
func (c *Cache) DayPanchang(ctx context.Context, jdMidnight timebase.JD, loc Location) (Day, error) {
	ctx, span := c.observer.CreateSpan(ctx, "panchang.Cache.DayPanchang")
	defer span.End()

	key := cacheKey(jdMidnight, loc)
	if v, ok := c.lru.Get(key); ok {
		span.SetAttributes(attribute.Bool("cache_hit", true))
		return v.(Day), nil
	}
	span.SetAttributes(attribute.Bool("cache_hit", false))

	_ = ctx
	day, err := DayPanchang(jdMidnight, loc)
	if err != nil {
		return Day{}, err
	}
	c.lru.Add(key, day)
	return day, nil
}

// Len returns the number of entries currently cached.
func (c *Cache) Len() int { return c.lru.Len() }

// Purge drops every cached entry.
func (c *Cache) Purge() { c.lru.Purge() }
