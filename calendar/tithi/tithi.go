// Package tithi computes the lunar tithi (the 12-degree interval of
// Moon-minus-Sun elongation active at a given moment) and the
// sunrise-anchored adhika/kshaya tithi rules traditional panchang
// construction uses.
package tithi

import (
	"fmt"
	"math"

	"github.com/aryabhata-go/panchangam/perrors"
	"github.com/aryabhata-go/panchangam/riseset"
	"github.com/aryabhata-go/panchangam/sidereal"
	"github.com/aryabhata-go/panchangam/timebase"
)

// Names are the 30 tithi names split across the two paksha (fortnights):
// Shukla (waxing, 1-15) ends in Purnima, Krishna (waning, 16-30) ends in
// Amavasya.
var Names = [30]string{
	"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi", "Purnima",
	"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi", "Amavasya",
}

// Paksha is the lunar fortnight a tithi number belongs to.
type Paksha int

const (
	Shukla  Paksha = iota // waxing
	Krishna               // waning
)

func (p Paksha) String() string {
	if p == Shukla {
		return "Shukla"
	}
	return "Krishna"
}

// Tithi describes one tithi instance: its number (1-30), the paksha it
// belongs to, and the UT Julian Day span over which it is in effect.
type Tithi struct {
	Number  int
	Paksha  Paksha
	Name    string
	StartJD timebase.JD
	EndJD   timebase.JD
}

const degreesPerTithi = 12.0
const bisectionIterations = 60
const searchStepDays = 0.4 // comfortably under the fastest tithi (~0.9 day)

// indexFromElongation returns the 1-based tithi number active at the
// given Moon-Sun elongation (degrees, [0,360)).
func indexFromElongation(elongationDeg float64) int {
	n := int(math.Floor(elongationDeg/degreesPerTithi)) + 1
	if n < 1 {
		n = 1
	}
	if n > 30 {
		n = 30
	}
	return n
}

func paksha(number int) Paksha {
	if number <= 15 {
		return Shukla
	}
	return Krishna
}

// At returns the tithi in effect at the given UT Julian Day, with its
// exact start and end boundaries located by bisection against the
// elongation series.
func At(jdUT timebase.JD) Tithi {
	elong := sidereal.LunarElongation(jdUT)
	number := indexFromElongation(elong)

	startTarget := float64(number-1) * degreesPerTithi
	endTarget := math.Mod(float64(number)*degreesPerTithi, 360)

	start := findBoundary(jdUT, startTarget, -1)
	end := findBoundary(jdUT, endTarget, 1)

	return Tithi{
		Number:  number,
		Paksha:  paksha(number),
		Name:    Names[number-1],
		StartJD: start,
		EndJD:   end,
	}
}

// findBoundary searches outward from jd (in direction dir, -1=backward,
// +1=forward) for the moment the lunar elongation crosses targetDeg.
func findBoundary(jd timebase.JD, targetDeg float64, dir float64) timebase.JD {
	lo, hi := jd, jd
	for i := 0; i < 10; i++ {
		a := jd + timebase.JD(dir*float64(i)*searchStepDays)
		b := jd + timebase.JD(dir*float64(i+1)*searchStepDays)
		if dir < 0 {
			lo, hi = b, a
		} else {
			lo, hi = a, b
		}
		if boundaryBetween(lo, hi, targetDeg) {
			break
		}
	}
	return bisectBoundary(lo, hi, targetDeg)
}

func boundaryBetween(lo, hi timebase.JD, targetDeg float64) bool {
	gLo := wrappedDelta(sidereal.LunarElongation(lo), targetDeg)
	gHi := wrappedDelta(sidereal.LunarElongation(hi), targetDeg)
	return (gLo < 0) != (gHi < 0)
}

func wrappedDelta(value, target float64) float64 {
	d := math.Mod(value-target+540, 360)
	if d < 0 {
		d += 360
	}
	return d - 180
}

func bisectBoundary(lo, hi timebase.JD, targetDeg float64) timebase.JD {
	gLo := wrappedDelta(sidereal.LunarElongation(lo), targetDeg)
	for i := 0; i < bisectionIterations; i++ {
		mid := timebase.JD((float64(lo) + float64(hi)) / 2)
		gMid := wrappedDelta(sidereal.LunarElongation(mid), targetDeg)
		if (gMid < 0) == (gLo < 0) {
			lo, gLo = mid, gMid
		} else {
			hi = mid
		}
	}
	return timebase.JD((float64(lo) + float64(hi)) / 2)
}

// AtSunrise returns the tithi prevailing at sunrise of the civil day
// whose midnight is jdMidnight, at loc — the tithi traditionally
// assigned to that panchang day.
func AtSunrise(jdMidnight timebase.JD, loc riseset.Location) (Tithi, error) {
	rs, err := riseset.Compute(jdMidnight, loc)
	if err != nil {
		return Tithi{}, perrors.Astronomical("tithi.AtSunrise", fmt.Errorf("sunrise unavailable: %w", err))
	}
	return At(rs.SunriseJD), nil
}

// IsKshaya reports whether the tithi beginning and ending entirely
// between two consecutive sunrises (i.e. never itself present at any
// sunrise) is skipped for panchang purposes — callers detect this by
// comparing the AtSunrise tithi numbers of consecutive civil days: a
// kshaya tithi is one whose number never appears as an AtSunrise result.
func IsKshaya(t Tithi, sunriseBefore, sunriseAfter timebase.JD) bool {
	return t.StartJD > sunriseBefore && t.EndJD < sunriseAfter
}

// IsAdhika reports whether t spans two consecutive sunrises, so the same
// tithi number is assigned to two consecutive civil days.
func IsAdhika(t Tithi, sunrise1, sunrise2 timebase.JD) bool {
	return t.StartJD <= sunrise1 && t.EndJD >= sunrise2
}
