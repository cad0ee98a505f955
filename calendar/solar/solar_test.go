package solar

import (
	"testing"

	"github.com/aryabhata-go/panchangam/riseset"
	"github.com/aryabhata-go/panchangam/timebase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chennai() riseset.Location {
	return riseset.Location{LatitudeDeg: 13.0827, LongitudeDeg: 80.2707, AltitudeM: 6, UtcOffsetHours: 5.5}
}

func TestForDateTamilMonthWithinRange(t *testing.T) {
	jd := timebase.GregorianToJD(2025, 5, 1)
	d, err := ForDate(jd, chennai(), Tamil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, d.MonthIdx, 0)
	assert.LessOrEqual(t, d.MonthIdx, 11)
	assert.GreaterOrEqual(t, d.Day, 1)
	assert.LessOrEqual(t, d.Day, 32)
	assert.Equal(t, MonthNames[Tamil][d.MonthIdx], d.MonthName)
}

func TestForDateAllRegionsSucceed(t *testing.T) {
	jd := timebase.GregorianToJD(2025, 8, 20)
	loc := chennai()
	for _, r := range []Region{Tamil, Bengali, Odia, Malayalam} {
		d, err := ForDate(jd, loc, r)
		require.NoError(t, err)
		assert.Equal(t, r, d.Region)
	}
}

func TestRegionStringNames(t *testing.T) {
	assert.Equal(t, "Tamil", Tamil.String())
	assert.Equal(t, "Bengali", Bengali.String())
	assert.Equal(t, "Odia", Odia.String())
	assert.Equal(t, "Malayalam", Malayalam.String())
}

func TestSolarToGregorianRoundTripsApproximately(t *testing.T) {
	jd := timebase.GregorianToJD(2025, 5, 1)
	loc := chennai()
	d, err := ForDate(jd, loc, Tamil)
	require.NoError(t, err)

	back, err := SolarToGregorian(jd, loc, Tamil, d.MonthIdx, d.Day)
	require.NoError(t, err)
	assert.InDelta(t, float64(jd), float64(back), 1.0)
}

func TestEraYearOffsetsDiffer(t *testing.T) {
	jd := timebase.GregorianToJD(2025, 8, 20)
	loc := chennai()
	bengali := EraYear(jd, loc, Bengali)
	malayalam := EraYear(jd, loc, Malayalam)
	assert.NotEqual(t, bengali, malayalam)
}
