package riseset

import (
	"testing"

	"github.com/aryabhata-go/panchangam/perrors"
	"github.com/aryabhata-go/panchangam/timebase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func delhi() Location {
	return Location{LatitudeDeg: 28.6139, LongitudeDeg: 77.2090, AltitudeM: 216, UtcOffsetHours: 5.5}
}

func TestComputeOrdersRiseTransitSet(t *testing.T) {
	jd := timebase.GregorianToJD(2025, 4, 14)
	res, err := Compute(jd, delhi())
	require.NoError(t, err)

	assert.Less(t, float64(res.SunriseJD), float64(res.TransitJD))
	assert.Less(t, float64(res.TransitJD), float64(res.SunsetJD))
}

func TestComputeSunriseWithinCivilDay(t *testing.T) {
	jd := timebase.GregorianToJD(2025, 4, 14)
	res, err := Compute(jd, delhi())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, float64(res.SunriseJD), float64(jd))
	assert.Less(t, float64(res.SunriseJD), float64(jd)+1)
	assert.GreaterOrEqual(t, float64(res.SunsetJD), float64(jd))
	assert.Less(t, float64(res.SunsetJD), float64(jd)+1)
}

func TestComputePolarNightFails(t *testing.T) {
	// Deep into the Arctic in mid-winter: the Sun never rises.
	jd := timebase.GregorianToJD(2025, 12, 21)
	loc := Location{LatitudeDeg: 78.0, LongitudeDeg: 15.0, AltitudeM: 0, UtcOffsetHours: 1}

	_, err := Compute(jd, loc)
	require.Error(t, err)
	assert.True(t, perrors.Is(err, perrors.AstronomicalFailure))
}

func TestAltitudeCorrectionIncreasesDipForHigherObserver(t *testing.T) {
	assert.Equal(t, 0.0, altitudeCorrectionDeg(0))
	assert.Less(t, altitudeCorrectionDeg(2000), altitudeCorrectionDeg(100))
}
