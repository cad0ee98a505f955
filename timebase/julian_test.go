package timebase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGregorianJDRoundTrip(t *testing.T) {
	cases := []struct{ y, m, d int }{
		{2000, 1, 1}, {1900, 1, 1}, {2050, 12, 31}, {2012, 8, 18},
		{2025, 4, 14}, {1, 1, 1}, {9999, 12, 31}, {1582, 10, 15},
	}
	for _, c := range cases {
		jd := GregorianToJD(c.y, c.m, c.d)
		y, m, d := JDToGregorian(jd)
		assert.Equal(t, c.y, y)
		assert.Equal(t, c.m, m)
		assert.Equal(t, c.d, d)
	}
}

func TestKnownJD(t *testing.T) {
	// J2000.0 epoch: 2000-01-01 12:00 UT == JD 2451545.0
	jd := GregorianToJD(2000, 1, 1)
	assert.InDelta(t, 2451544.5, float64(jd), 1e-9)
}

func TestDayOfWeekKnownDate(t *testing.T) {
	// 2000-01-01 was a Saturday.
	jd := GregorianToJD(2000, 1, 1)
	wd := DayOfWeek(jd)
	assert.Equal(t, 5, wd.Index) // 0=Mon .. 5=Sat
	assert.Equal(t, "Shanivara", wd.Name)
}

func TestDeltaTContinuousAtBoundaries(t *testing.T) {
	before := DeltaT(GregorianToJD(1899, 12, 31)) * 86400
	after := DeltaT(GregorianToJD(1900, 1, 2)) * 86400
	assert.InDelta(t, before, after, 0.5)

	before2050 := DeltaT(GregorianToJD(2050, 12, 30)) * 86400
	after2050 := DeltaT(GregorianToJD(2051, 1, 2)) * 86400
	assert.InDelta(t, before2050, after2050, 0.5)
}

func TestDeltaTIsPositiveModernEra(t *testing.T) {
	dt := DeltaT(GregorianToJD(2020, 6, 1))
	assert.Greater(t, dt, 0.0)
	assert.Less(t, dt, 1.0) // a few tens of seconds, expressed as a day fraction
}
