// Package masa computes the Amanta lunar month (new-moon to new-moon),
// its adhika (intercalary) / kshaya (omitted) status, and the Saka and
// Vikram Samvat era years that track it.
package masa

import (
	"log/slog"

	"github.com/aryabhata-go/panchangam/log"
	"github.com/aryabhata-go/panchangam/sidereal"
	"github.com/aryabhata-go/panchangam/timebase"
)

// Names are the 12 Amanta masa names, index 0 = Chaitra, matching the
// sidereal rashi (zodiac sign) the Sun occupies for most of that month.
var Names = [12]string{
	"Chaitra", "Vaishakha", "Jyeshtha", "Ashadha",
	"Shravana", "Bhadrapada", "Ashwin", "Kartika",
	"Margashirsha", "Pausha", "Magha", "Phalguna",
}

// meanSynodicMonthDays is the mean new-moon-to-new-moon interval, used to
// estimate where the new moons bracketing a date lie.
const meanSynodicMonthDays = 29.530588

// newMoonSearchHalfWidthDays is the half-width of the bisection window
// around each estimated new moon: wide enough for the Moon's uneven speed,
// narrow enough to keep out the full moons, where the elongation's wrap
// would also read as a sign change.
const newMoonSearchHalfWidthDays = 3

// Masa is one Amanta lunar month instance.
type Masa struct {
	Index   int // 0=Chaitra .. 11=Phalguna
	Name    string
	Adhika  bool
	Kshaya  bool
	StartJD timebase.JD // amavasya that begins the month
	EndJD   timebase.JD // amavasya that ends the month
}

func rashiIndex(siderealLongitudeDeg float64) int {
	idx := int(siderealLongitudeDeg / 30)
	if idx < 0 {
		idx = 0
	}
	if idx > 11 {
		idx = 11
	}
	return idx
}

// ForDate returns the Amanta lunar month containing jdUT.
//
// The masa is named one sign past the rashi the Sun occupies at its
// start. If the Sun does not cross into a new rashi anywhere during the
// month (no sankranti falls within it), the month is adhika — intercalary,
// sharing the following month's name. If the Sun crosses two rashi
// boundaries within a single lunar month (possible only when perigee
// shortens the synodic month against fast solar motion — historically
// rare), the month is marked kshaya and named for the earlier rashi; the
// later rashi's month is treated as swallowed into this one rather than
// split out as its own instance, a simplification over the traditional
// double-kshaya resolution rules.
func ForDate(jdUT timebase.JD) Masa {
	// Days since the last new moon, at the elongation's mean rate.
	age := timebase.JD(sidereal.LunarElongation(jdUT) / 360 * meanSynodicMonthDays)
	start := sidereal.NewMoonJD(jdUT-age-newMoonSearchHalfWidthDays, jdUT-age+newMoonSearchHalfWidthDays)
	end := sidereal.NewMoonJD(start+meanSynodicMonthDays-newMoonSearchHalfWidthDays, start+meanSynodicMonthDays+newMoonSearchHalfWidthDays)

	rashiStart := rashiIndex(sidereal.SolarLongitudeSidereal(start))
	rashiEnd := rashiIndex(sidereal.SolarLongitudeSidereal(end))
	transitions := (rashiEnd - rashiStart + 12) % 12

	// Chaitra (index 0) is named for the new moon with the Sun still in
	// Meena (rashi 11), not Mesha (rashi 0) — the masa index trails the
	// rashi the month starts in by one sign.
	monthIdx := (rashiStart + 1) % 12
	m := Masa{Index: monthIdx, Name: Names[monthIdx], StartJD: start, EndJD: end}
	switch {
	case transitions == 0:
		m.Adhika = true
		log.Logger().Info("adhika masa detected", slog.String("name", m.Name), slog.Float64("start_jd", float64(start)))
	case transitions >= 2:
		m.Kshaya = true
		log.Logger().Info("kshaya masa detected", slog.String("name", m.Name), slog.Float64("start_jd", float64(start)))
	}
	return m
}

// chaitraStart walks backward from jdUT, masa by masa, until it finds an
// ordinary (non-adhika) Chaitra instance, and returns that instance's
// Gregorian start year — the year the current Saka/Vikram cycle began.
func chaitraStart(jdUT timebase.JD) int {
	m := ForDate(jdUT)
	for i := 0; i < 14 && (m.Index != 0 || m.Adhika); i++ {
		m = ForDate(m.StartJD - 1)
	}
	year, _, _ := timebase.JDToGregorian(m.StartJD)
	return year
}

// SakaYear returns the Saka era year current at jdUT.
func SakaYear(jdUT timebase.JD) int {
	return chaitraStart(jdUT) - 78
}

// VikramSamvat returns the Vikram Samvat era year current at jdUT — 135
// years ahead of the Saka year, the two eras having run in lockstep
// since the Saka epoch.
func VikramSamvat(jdUT timebase.JD) int {
	return SakaYear(jdUT) + 135
}
