package tithi

import (
	"testing"

	"github.com/aryabhata-go/panchangam/riseset"
	"github.com/aryabhata-go/panchangam/timebase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func delhi() riseset.Location {
	return riseset.Location{LatitudeDeg: 28.6139, LongitudeDeg: 77.2090, AltitudeM: 216, UtcOffsetHours: 5.5}
}

func TestAtReturnsNumberWithinRange(t *testing.T) {
	jd := timebase.GregorianToJD(2025, 4, 14)
	ti := At(jd)
	assert.GreaterOrEqual(t, ti.Number, 1)
	assert.LessOrEqual(t, ti.Number, 30)
	assert.Equal(t, Names[ti.Number-1], ti.Name)
}

func TestAtBoundariesBracketTheMoment(t *testing.T) {
	jd := timebase.GregorianToJD(2025, 4, 14)
	ti := At(jd)
	assert.Less(t, float64(ti.StartJD), float64(jd))
	assert.Greater(t, float64(ti.EndJD), float64(jd))
}

func TestPakshaSplitsAtFifteen(t *testing.T) {
	assert.Equal(t, Shukla, paksha(1))
	assert.Equal(t, Shukla, paksha(15))
	assert.Equal(t, Krishna, paksha(16))
	assert.Equal(t, Krishna, paksha(30))
}

func TestAtSunriseSucceedsForOrdinaryLocation(t *testing.T) {
	jd := timebase.GregorianToJD(2025, 4, 14)
	ti, err := AtSunrise(jd, delhi())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ti.Number, 1)
}

func TestConsecutiveTithiNumbersAreSequential(t *testing.T) {
	jd := timebase.GregorianToJD(2025, 4, 14)
	t1 := At(jd)
	t2 := At(t1.EndJD + 0.01)
	want := t1.Number + 1
	if want > 30 {
		want = 1
	}
	assert.Equal(t, want, t2.Number)
}
