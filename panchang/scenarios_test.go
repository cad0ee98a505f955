package panchang

import (
	"testing"

	"github.com/aryabhata-go/panchangam/calendar/solar"
	"github.com/aryabhata-go/panchangam/timebase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The six scenarios below are the engine's own seed ground truth: fixed
// dates with known-correct tithi/masa/solar-calendar answers, used to
// catch regressions a generic range check would miss.

func TestScenarioE1AdhikaBhadrapada(t *testing.T) {
	jd := timebase.GregorianToJD(2012, 8, 18)
	d, err := DayPanchang(jd, newDelhi())
	require.NoError(t, err)

	assert.Equal(t, 1, d.Tithi.Number)
	assert.Equal(t, "Bhadrapada", d.Masa.Name)
	assert.True(t, d.Masa.Adhika)
	assert.Equal(t, 1934, d.SakaYear)
	assert.Equal(t, 2069, d.VikramSamvat)
}

func TestScenarioE2TamilChithiraiAndPreviousPanguni(t *testing.T) {
	loc := Location{LatitudeDeg: 13.0827, LongitudeDeg: 80.2707, AltitudeM: 6, UtcOffsetHours: 5.5}

	newYear := timebase.GregorianToJD(2025, 4, 14)
	d, err := solar.ForDate(newYear, loc, solar.Tamil)
	require.NoError(t, err)
	assert.Equal(t, "Chithirai", d.MonthName)
	assert.Equal(t, 1, d.Day)
	assert.Equal(t, 1947, d.Year)

	prevDay := timebase.GregorianToJD(2025, 4, 13)
	prev, err := solar.ForDate(prevDay, loc, solar.Tamil)
	require.NoError(t, err)
	assert.Equal(t, "Panguni", prev.MonthName)
	assert.Equal(t, 30, prev.Day)
	assert.Equal(t, 1946, prev.Year)
}

func TestScenarioE3BengaliBoishakh(t *testing.T) {
	loc := Location{LatitudeDeg: 22.5726, LongitudeDeg: 88.3639, AltitudeM: 9, UtcOffsetHours: 5.5}

	jd := timebase.GregorianToJD(2025, 4, 15)
	d, err := solar.ForDate(jd, loc, solar.Bengali)
	require.NoError(t, err)
	assert.Equal(t, "Boishakh", d.MonthName)
	assert.Equal(t, 1, d.Day)
	assert.Equal(t, 1432, d.Year)
}

func TestScenarioE4MalayalamChingam(t *testing.T) {
	loc := Location{LatitudeDeg: 9.9312, LongitudeDeg: 76.2673, AltitudeM: 1, UtcOffsetHours: 5.5}

	jd := timebase.GregorianToJD(2025, 8, 17)
	d, err := solar.ForDate(jd, loc, solar.Malayalam)
	require.NoError(t, err)
	assert.Equal(t, "Chingam", d.MonthName)
	assert.Equal(t, 1, d.Day)
	assert.Equal(t, 1201, d.Year)
}

func TestScenarioE5OdiaShravanaAfterMidnightCutoff(t *testing.T) {
	loc := Location{LatitudeDeg: 20.2961, LongitudeDeg: 85.8245, AltitudeM: 0, UtcOffsetHours: 5.5}

	jd := timebase.GregorianToJD(2026, 7, 17)
	d, err := solar.ForDate(jd, loc, solar.Odia)
	require.NoError(t, err)
	assert.Equal(t, "Shravana", d.MonthName)
	assert.Equal(t, 1, d.Day)
	assert.Equal(t, 1948, d.Year)

	prevDay := timebase.GregorianToJD(2026, 7, 16)
	prev, err := solar.ForDate(prevDay, loc, solar.Odia)
	require.NoError(t, err)
	assert.Equal(t, "Ashadha", prev.MonthName)
	assert.Equal(t, 32, prev.Day)
}

func TestScenarioE6MaghaTithi(t *testing.T) {
	jd := timebase.GregorianToJD(2025, 1, 30)
	d, err := DayPanchang(jd, newDelhi())
	require.NoError(t, err)

	assert.Equal(t, 1, d.Tithi.Number)
	assert.Equal(t, "Magha", d.Masa.Name)
	assert.Equal(t, 1946, d.SakaYear)
}
