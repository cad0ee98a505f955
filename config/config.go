// Package config holds the few defaults this engine needs when a caller
// doesn't supply its own: an observer location and an in-process cache
// size.
package config

import "github.com/aryabhata-go/panchangam/panchang"

// Config holds engine-wide defaults.
type Config struct {
	DefaultLocation panchang.Location
	CacheSize       int
}

// DefaultConfig returns New Delhi (28.6139N, 77.2090E, sea level,
// UTC+5:30) as the default observer location, and a cache sized for a few
// years of daily lookups.
func DefaultConfig() Config {
	return Config{
		DefaultLocation: panchang.Location{
			LatitudeDeg:    28.6139,
			LongitudeDeg:   77.2090,
			AltitudeM:      0,
			UtcOffsetHours: 5.5,
		},
		CacheSize: 1000,
	}
}
