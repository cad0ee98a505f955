// Package sidereal layers the Lahiri sidereal zodiac and the event
// finders (sankranti, new moon) that the calendar packages drive, on top
// of the tropical ephemeris kernel.
package sidereal

import (
	"math"

	"github.com/aryabhata-go/panchangam/ephemeris"
	"github.com/aryabhata-go/panchangam/timebase"
)

// julianCenturiesTT converts a UT Julian Day to Julian centuries TT from
// J2000.0, applying the delta-T correction once at the boundary.
func julianCenturiesTT(jdUT timebase.JD) float64 {
	jdTT := float64(jdUT) + timebase.DeltaT(jdUT)
	return (jdTT - 2451545.0) / 36525.0
}

func jdTT(jdUT timebase.JD) float64 {
	return float64(jdUT) + timebase.DeltaT(jdUT)
}

// SolarLongitudeSidereal returns the Sun's Lahiri sidereal longitude
// (degrees, [0,360)) at a UT Julian Day.
func SolarLongitudeSidereal(jdUT timebase.JD) float64 {
	t := julianCenturiesTT(jdUT)
	tropical := ephemeris.SolarLongitude(t)
	return ephemeris.TropicalToSidereal(tropical, jdTT(jdUT))
}

// LunarLongitudeSidereal returns the Moon's Lahiri sidereal longitude
// (degrees, [0,360)) at a UT Julian Day.
func LunarLongitudeSidereal(jdUT timebase.JD) float64 {
	t := julianCenturiesTT(jdUT)
	tropical := ephemeris.LunarLongitude(t)
	return ephemeris.TropicalToSidereal(tropical, jdTT(jdUT))
}

// LunarElongation returns the Moon-minus-Sun sidereal longitude
// difference, normalized to [0,360) (this cancels the ayanamsa, so it is
// identical to the tropical elongation — computed in sidereal terms
// purely so callers never have to reason about the cancellation
// themselves).
func LunarElongation(jdUT timebase.JD) float64 {
	t := julianCenturiesTT(jdUT)
	return normalizeDeg(ephemeris.LunarLongitude(t) - ephemeris.SolarLongitude(t))
}

// bisect360 finds a root of f, a function whose value is understood
// modulo 360 degrees and which is expected to cross target exactly once
// between lo and hi, by reparameterizing g(x) = ((f(x)-target+540) mod
// 360) - 180, which turns the wraparound discontinuity at 0/360 into an
// ordinary sign change at +-180, then running ordinary bisection on g.
func bisect360(f func(float64) float64, target, lo, hi float64, iterations int) float64 {
	g := func(x float64) float64 {
		d := math.Mod(f(x)-target+540, 360)
		if d < 0 {
			d += 360
		}
		return d - 180
	}
	gLo, gHi := g(lo), g(hi)
	if gLo == 0 {
		return lo
	}
	if gHi == 0 {
		return hi
	}
	for i := 0; i < iterations; i++ {
		mid := (lo + hi) / 2
		gMid := g(mid)
		if gMid == 0 {
			return mid
		}
		if sameSign(gLo, gMid) {
			lo, gLo = mid, gMid
		} else {
			hi, gHi = mid, gMid
		}
	}
	return (lo + hi) / 2
}

func sameSign(a, b float64) bool {
	return (a < 0) == (b < 0)
}

const bisectionIterations = 60

func normalizeDeg(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// SankrantiJD finds the UT Julian Day, within [lo, hi], at which the
// Sun's sidereal longitude crosses targetDeg (a multiple of 30,
// conventionally, but any target is accepted).
func SankrantiJD(targetDeg float64, lo, hi timebase.JD) timebase.JD {
	f := func(x float64) float64 { return SolarLongitudeSidereal(timebase.JD(x)) }
	root := bisect360(f, targetDeg, float64(lo), float64(hi), bisectionIterations)
	return timebase.JD(root)
}

// NewMoonJD finds the UT Julian Day, within [lo, hi], at which the
// Moon-Sun elongation crosses zero (conjunction / amavasya instant).
func NewMoonJD(lo, hi timebase.JD) timebase.JD {
	f := func(x float64) float64 { return LunarElongation(timebase.JD(x)) }
	root := bisect360(f, 0, float64(lo), float64(hi), bisectionIterations)
	return timebase.JD(root)
}

// FullMoonJD finds the UT Julian Day, within [lo, hi], at which the
// Moon-Sun elongation crosses 180 degrees (opposition / purnima instant).
func FullMoonJD(lo, hi timebase.JD) timebase.JD {
	f := func(x float64) float64 { return LunarElongation(timebase.JD(x)) }
	root := bisect360(f, 180, float64(lo), float64(hi), bisectionIterations)
	return timebase.JD(root)
}
