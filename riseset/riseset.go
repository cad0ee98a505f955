// Package riseset computes sunrise and sunset for a location and civil
// date by Meeus' iterative method (Ch.15): a rough hour-angle estimate
// refined twice against the Sun's actual position at that instant.
package riseset

import (
	"fmt"
	"math"

	"github.com/aryabhata-go/panchangam/ephemeris"
	"github.com/aryabhata-go/panchangam/perrors"
	"github.com/aryabhata-go/panchangam/timebase"
)

// Location is a geographic point used for topocentric-adjacent
// computations (rise/set depends on latitude and longitude; altitude is
// carried for the observer's horizon-depression correction).
type Location struct {
	LatitudeDeg  float64
	LongitudeDeg float64
	AltitudeM    float64

	// UtcOffsetHours is the observer's civil-time zone offset east of
	// UTC, a pure constant (no DST rules) used to resolve which local
	// civil day an astronomical instant falls on.
	UtcOffsetHours float64
}

// standardAltitudeDeg is the Sun's apparent altitude at actual sunrise or
// sunset: the geometric horizon depressed only by average atmospheric
// refraction (-34'), measured to the disc centre rather than the upper
// limb.
const standardAltitudeDeg = -0.5667

// altitudeCorrectionDeg approximates the extra horizon dip an elevated
// observer sees, in degrees (-0.0353*sqrt(h metres)).
func altitudeCorrectionDeg(altitudeM float64) float64 {
	if altitudeM <= 0 {
		return 0
	}
	return -0.0353 * math.Sqrt(altitudeM)
}

// Result holds the Julian Day (UT) of sunrise and sunset for one civil
// date, plus the day's solar transit (local noon).
type Result struct {
	SunriseJD timebase.JD
	SunsetJD  timebase.JD
	TransitJD timebase.JD
}

// Compute returns sunrise, sunset and solar transit, in UT Julian Days,
// for the civil date whose midnight (UT-referenced) is jdMidnight, at
// loc. It returns a perrors.AstronomicalFailure-kind error for polar-day
// or polar-night dates where the Sun never crosses the horizon.
func Compute(jdMidnight timebase.JD, loc Location) (Result, error) {
	h0 := standardAltitudeDeg + altitudeCorrectionDeg(loc.AltitudeM)

	m0, ok0 := approxTransit(jdMidnight, loc)
	if !ok0 {
		return Result{}, perrors.Astronomical("riseset.Compute", fmt.Errorf("could not establish solar transit near JD %v", float64(jdMidnight)))
	}

	mRise, riseOK := refine(jdMidnight, loc, h0, m0, -1)
	mSet, setOK := refine(jdMidnight, loc, h0, m0, 1)

	if !riseOK || !setOK {
		return Result{}, perrors.Astronomical("riseset.Compute", fmt.Errorf("no sunrise/sunset at latitude %.4f on JD %v (polar day or night)", loc.LatitudeDeg, float64(jdMidnight)))
	}

	return Result{
		SunriseJD: timebase.JD(float64(jdMidnight) + mRise),
		SunsetJD:  timebase.JD(float64(jdMidnight) + mSet),
		TransitJD: timebase.JD(float64(jdMidnight) + m0),
	}, nil
}

// approxTransit returns the fractional day (from jdMidnight, 0h UT) of
// the Sun's approximate local transit: the hour angle is zero when
// GMST + longitude - RA == 0 (mod 360), and GMST advances ~360.9856
// deg/day, so a first estimate is (RA - longitude - GMST0)/360.9856.
func approxTransit(jdMidnight timebase.JD, loc Location) (float64, bool) {
	t := julianCenturies(jdMidnight)
	l0 := ephemeris.SolarLongitude(t)
	ra := solarRightAscensionFromLongitude(l0, t)

	gmst0 := greenwichMeanSiderealDeg(jdMidnight)
	m := (ra - loc.LongitudeDeg - gmst0) / 360.9856
	m = m - math.Floor(m)
	if math.IsNaN(m) {
		return 0, false
	}
	return m, true
}

// refine iterates Meeus' correction twice to sharpen an initial
// transit-relative fractional-day estimate m0 into a rise (dir=-1) or
// set (dir=+1) time.
func refine(jdMidnight timebase.JD, loc Location, h0, m0 float64, dir float64) (float64, bool) {
	cosH0, ok := hourAngleCosine(jdMidnight, loc, h0, m0)
	if !ok {
		return 0, false
	}
	if cosH0 < -1 || cosH0 > 1 {
		return 0, false
	}
	h0Deg := math.Acos(cosH0) * radToDeg
	m := m0 + dir*h0Deg/360.0

	for i := 0; i < 2; i++ {
		dec, ra, gmst := solarDecRAGmstAt(jdMidnight, m)
		localHourAngle := normalizeHalfTurn(gmst + loc.LongitudeDeg - ra)
		altitude := altitudeFromHourAngle(localHourAngle, dec, loc.LatitudeDeg)
		dm := (altitude - h0) / (360.0 * math.Cos(degToRad*dec) * math.Cos(degToRad*loc.LatitudeDeg) * math.Sin(degToRad*localHourAngle))
		if math.IsNaN(dm) || math.IsInf(dm, 0) {
			return 0, false
		}
		m += dm
	}
	return m, true
}

func hourAngleCosine(jdMidnight timebase.JD, loc Location, h0, m0 float64) (float64, bool) {
	dec, _, _ := solarDecRAGmstAt(jdMidnight, m0)
	num := math.Sin(degToRad*h0) - math.Sin(degToRad*loc.LatitudeDeg)*math.Sin(degToRad*dec)
	den := math.Cos(degToRad * loc.LatitudeDeg) * math.Cos(degToRad*dec)
	if den == 0 {
		return 0, false
	}
	return num / den, true
}

func altitudeFromHourAngle(hourAngleDeg, decDeg, latDeg float64) float64 {
	sinAlt := math.Sin(degToRad*latDeg)*math.Sin(degToRad*decDeg) +
		math.Cos(degToRad*latDeg)*math.Cos(degToRad*decDeg)*math.Cos(degToRad*hourAngleDeg)
	return math.Asin(sinAlt) * radToDeg
}

func solarDecRAGmstAt(jdMidnight timebase.JD, mFraction float64) (decDeg, raDeg, gmstDeg float64) {
	jd := timebase.JD(float64(jdMidnight) + mFraction)
	t := julianCenturies(jd)
	lon := ephemeris.SolarLongitude(t)
	raDeg = solarRightAscensionFromLongitude(lon, t)
	decDeg = solarDeclinationFromLongitude(lon, t)
	gmstDeg = greenwichMeanSiderealDeg(jd)
	return
}

func solarRightAscensionFromLongitude(lonDeg, t float64) float64 {
	eps := degToRad * ephemeris.TrueObliquity(t)
	lon := degToRad * lonDeg
	ra := math.Atan2(math.Cos(eps)*math.Sin(lon), math.Cos(lon))
	return normalizeDeg(ra * radToDeg)
}

func solarDeclinationFromLongitude(lonDeg, t float64) float64 {
	eps := degToRad * ephemeris.TrueObliquity(t)
	lon := degToRad * lonDeg
	return math.Asin(math.Sin(eps)*math.Sin(lon)) * radToDeg
}

func greenwichMeanSiderealDeg(jd timebase.JD) float64 {
	d := float64(jd) - 2451545.0
	t := d / 36525.0
	gmst := 280.46061837 + 360.98564736629*d + 0.000387933*t*t - t*t*t/38710000.0
	return normalizeDeg(gmst)
}

func julianCenturies(jd timebase.JD) float64 {
	return (float64(jd) - 2451545.0) / 36525.0
}

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

func normalizeDeg(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

func normalizeHalfTurn(deg float64) float64 {
	d := normalizeDeg(deg)
	if d > 180 {
		d -= 360
	}
	return d
}
