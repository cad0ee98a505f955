package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigIsNewDelhi(t *testing.T) {
	c := DefaultConfig()
	assert.InDelta(t, 28.6139, c.DefaultLocation.LatitudeDeg, 1e-4)
	assert.InDelta(t, 77.2090, c.DefaultLocation.LongitudeDeg, 1e-4)
	assert.Equal(t, 0.0, c.DefaultLocation.AltitudeM)
	assert.InDelta(t, 5.5, c.DefaultLocation.UtcOffsetHours, 1e-9)
	assert.Greater(t, c.CacheSize, 0)
}
