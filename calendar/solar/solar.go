// Package solar computes the regional solar calendars (Tamil, Bengali,
// Odia, Malayalam) that run alongside the lunisolar panchang: each names
// its months after the same twelve sidereal rashi the Sun transits, but
// differs in which civil day is assigned day 1 of a solar month when a
// sankranti (rashi ingress) falls near a day boundary.
package solar

import (
	"fmt"
	"log/slog"

	"github.com/aryabhata-go/panchangam/calendar/tithi"
	"github.com/aryabhata-go/panchangam/log"
	"github.com/aryabhata-go/panchangam/perrors"
	"github.com/aryabhata-go/panchangam/riseset"
	"github.com/aryabhata-go/panchangam/sidereal"
	"github.com/aryabhata-go/panchangam/timebase"
)

// Region is one of the four regional solar calendars this package
// supports. It is a closed set — callers select a Region constant and
// get the matching rule from ruleFor; there is no exported interface for
// third parties to register new regions.
type Region int

const (
	Tamil Region = iota
	Bengali
	Odia
	Malayalam
)

func (r Region) String() string {
	switch r {
	case Tamil:
		return "Tamil"
	case Bengali:
		return "Bengali"
	case Odia:
		return "Odia"
	case Malayalam:
		return "Malayalam"
	default:
		return "Unknown"
	}
}

// MonthNames gives each region's twelve solar month names, index 0
// aligned with the sidereal rashi Mesha.
var MonthNames = map[Region][12]string{
	Tamil:      {"Chithirai", "Vaigasi", "Aani", "Aadi", "Aavani", "Purattasi", "Aippasi", "Karthigai", "Margazhi", "Thai", "Maasi", "Panguni"},
	Bengali:    {"Boishakh", "Jyoishtho", "Asharh", "Shrabon", "Bhadro", "Ashshin", "Kartik", "Ogrohayon", "Poush", "Magh", "Falgun", "Choitro"},
	Odia:       {"Baisakha", "Jyaistha", "Ashadha", "Shravana", "Bhadraba", "Aswina", "Kartika", "Margashira", "Pousha", "Magha", "Phalguna", "Chaitra"},
	Malayalam:  {"Medam", "Edavam", "Mithunam", "Karkidakam", "Chingam", "Kanni", "Thulam", "Vrischikam", "Dhanu", "Makaram", "Kumbham", "Meenam"},
}

// criticalTimeRule decides which civil day (UT midnight JD) becomes day
// 1 of a solar month, given the UT instant of the sankranti and the
// observing location.
type criticalTimeRule interface {
	firstDayJD(sankrantiJD timebase.JD, loc riseset.Location) (timebase.JD, error)
}

func ruleFor(r Region) criticalTimeRule {
	switch r {
	case Tamil:
		return sunsetRule{}
	case Malayalam:
		return apparentNoonRule{}
	case Odia:
		return fixedClockRule{}
	case Bengali:
		return bengaliRule{}
	default:
		return sunsetRule{}
	}
}

// istOffsetHours is the fixed UTC+5:30 reference the Odia calendar's
// clock-time rule is quoted against, independent of the observer's own
// configured time zone.
const istOffsetHours = 5.5

// localCivilDay returns the UT JD of the 0h start of the local civil day
// (per utcOffsetHours) containing jd — spec's "observer's local time
// zone" anchor for every critical-time rule below.
func localCivilDay(jd timebase.JD, utcOffsetHours float64) timebase.JD {
	y, m, d := timebase.JDToGregorian(timebase.JD(float64(jd) + utcOffsetHours/24.0))
	return timebase.GregorianToJD(y, m, d)
}

// localMidnightUT returns the UT instant of local midnight (00:00 at
// utcOffsetHours) on the calendar date day identifies, where day is
// itself a UT-midnight-referenced JD as returned by localCivilDay.
func localMidnightUT(day timebase.JD, utcOffsetHours float64) timebase.JD {
	return timebase.JD(float64(day) - utcOffsetHours/24.0)
}

// tamilSunsetBufferDays is the Tamil calendar's calibration buffer:
// sunset minus 8.0 minutes.
const tamilSunsetBufferDays = 8.0 / 1440.0

// sunsetRule: if the sankranti occurs before (sunset - 8 min) of its
// local civil day, that civil day is day 1; otherwise day 1 is the next
// civil day. Used by the Tamil calendar.
type sunsetRule struct{}

func (sunsetRule) firstDayJD(sankrantiJD timebase.JD, loc riseset.Location) (timebase.JD, error) {
	day := localCivilDay(sankrantiJD, loc.UtcOffsetHours)
	rs, err := riseset.Compute(day, loc)
	if err != nil {
		return 0, perrors.Astronomical("solar.sunsetRule", fmt.Errorf("sunset unavailable: %w", err))
	}
	if sankrantiJD <= rs.SunsetJD-tamilSunsetBufferDays {
		return day, nil
	}
	return day + 1, nil
}

// malayalamApparentNoonBufferDays is the Malayalam calendar's calibration
// buffer: apparent noon minus 9.5 minutes.
const malayalamApparentNoonBufferDays = 9.5 / 1440.0

// apparentNoonRule: if the sankranti occurs before (apparent noon - 9.5
// min) of its local civil day — apparent noon being the midpoint of
// sunrise and sunset — that civil day is day 1; otherwise the next civil
// day is. Used by the Malayalam (Kollam era) calendar.
type apparentNoonRule struct{}

func (apparentNoonRule) firstDayJD(sankrantiJD timebase.JD, loc riseset.Location) (timebase.JD, error) {
	day := localCivilDay(sankrantiJD, loc.UtcOffsetHours)
	rs, err := riseset.Compute(day, loc)
	if err != nil {
		return 0, perrors.Astronomical("solar.apparentNoonRule", fmt.Errorf("sunrise/sunset unavailable: %w", err))
	}
	apparentNoon := timebase.JD((float64(rs.SunriseJD) + float64(rs.SunsetJD)) / 2)
	if sankrantiJD <= apparentNoon-malayalamApparentNoonBufferDays {
		return day, nil
	}
	return day + 1, nil
}

// odiaCriticalISTMinutes is the fixed wall-clock cutoff the Odia
// calendar is quoted against: 22:12 IST.
const odiaCriticalISTMinutes = 22*60 + 12

// fixedClockRule: day 1 is the local civil day if the sankranti falls at
// or before 22:12 IST on it, otherwise the next civil day. Used by the
// Odia calendar — a literal clock-time convention, not an astronomical
// event.
type fixedClockRule struct{}

func (fixedClockRule) firstDayJD(sankrantiJD timebase.JD, loc riseset.Location) (timebase.JD, error) {
	day := localCivilDay(sankrantiJD, loc.UtcOffsetHours)
	critical := localMidnightUT(day, istOffsetHours) + timebase.JD(odiaCriticalISTMinutes/1440.0)
	if sankrantiJD <= critical {
		return day, nil
	}
	return day + 1, nil
}

// bengaliRule assigns day 1 at midnight IST + 24 minutes: D is day 1 if
// the sankranti falls before that cutoff, D+1 otherwise. Inside the
// 24-minute zone itself the cutoff is ambiguous under simple rounding,
// and is resolved by rashi or, failing that, the Sewell & Dikshit
// tithi-based tie-break: Karka ingresses always keep day 1 on D, Makara
// ingresses always push it to D+1; any other rashi falls back to
// comparing the sankranti against the end of the tithi prevailing at D's
// sunrise. This does not resolve every historical case — 1976-10-17 is a
// documented instance where different Bengali panjikas disagree and this
// tie-break does not recover a single answer.
type bengaliRule struct{}

// bengaliGraceMinutes is the width of the midnight-IST ambiguity zone
// the rashi/tithi tie-break applies within.
const bengaliGraceMinutes = 24.0

const (
	karkaRashiIndex  = 3 // Cancer, 0-based (Mesha=0)
	makaraRashiIndex = 9 // Capricorn, 0-based
)

func (bengaliRule) firstDayJD(sankrantiJD timebase.JD, loc riseset.Location) (timebase.JD, error) {
	day := localCivilDay(sankrantiJD, loc.UtcOffsetHours)
	cutoff := localMidnightUT(day+1, istOffsetHours) + timebase.JD(bengaliGraceMinutes/1440.0)

	// The grace zone is the first 24 minutes after the midnight that ends
	// the previous civil day D = day-1, so D+1 is day itself.
	zoneStart := localMidnightUT(day, istOffsetHours)
	zoneEnd := zoneStart + timebase.JD(bengaliGraceMinutes/1440.0)

	if sankrantiJD >= zoneStart && sankrantiJD < zoneEnd {
		log.Logger().Info("sankranti within Bengali midnight grace window", slog.Float64("sankranti_jd", float64(sankrantiJD)))
		rashi := int(sidereal.SolarLongitudeSidereal(sankrantiJD+0.001) / 30)
		switch rashi {
		case karkaRashiIndex:
			return day - 1, nil
		case makaraRashiIndex:
			return day, nil
		default:
			atSunrise, err := tithi.AtSunrise(day-1, loc)
			if err != nil {
				return 0, perrors.Astronomical("solar.bengaliRule", fmt.Errorf("sunrise tithi unavailable: %w", err))
			}
			if atSunrise.EndJD > sankrantiJD {
				return day - 1, nil
			}
			return day, nil
		}
	}

	if sankrantiJD <= cutoff {
		return day, nil
	}
	return day + 1, nil
}

// Date is one day's position in a regional solar calendar.
type Date struct {
	Region    Region
	Year      int // era year, see EraYear
	MonthIdx  int // rashi index, 0=Mesha-aligned month (see MonthNames)
	MonthName string
	Day       int // 1-based day within the solar month
}

// searchWindowDays bounds how far ForDate looks for the bracketing
// sankranti; a solar month is never shorter than ~29.3 days nor longer
// than ~31.5.
const searchWindowDays = 33

// ForDate returns the regional solar-calendar date containing jdUT at
// loc.
func ForDate(jdUT timebase.JD, loc riseset.Location, region Region) (Date, error) {
	lon := sidereal.SolarLongitudeSidereal(jdUT)
	monthIdx := int(lon / 30)
	target := float64(monthIdx) * 30

	sankranti := sidereal.SankrantiJD(target, jdUT-searchWindowDays, jdUT+1)

	rule := ruleFor(region)
	firstDay, err := rule.firstDayJD(sankranti, loc)
	if err != nil {
		return Date{}, err
	}

	// If the rule pushed day 1 after jdUT's civil day, jdUT actually
	// belongs to the previous solar month (it's the tail end of a long
	// month before this one's assignment takes effect).
	today := localCivilDay(jdUT, loc.UtcOffsetHours)
	if firstDay > today {
		prevTarget := float64((monthIdx+11)%12) * 30
		sankranti = sidereal.SankrantiJD(prevTarget, jdUT-searchWindowDays*2, jdUT-searchWindowDays/2)
		firstDay, err = rule.firstDayJD(sankranti, loc)
		if err != nil {
			return Date{}, err
		}
		monthIdx = (monthIdx + 11) % 12
	}

	dayNum := int(float64(today)-float64(firstDay)) + 1
	names := MonthNames[region]

	return Date{
		Region:    region,
		Year:      EraYear(jdUT, loc, region),
		MonthIdx:  monthIdx,
		MonthName: names[monthIdx],
		Day:       dayNum,
	}, nil
}

// eraEpochOffset is each region's era-year offset from the Gregorian
// year at the region's new year (which falls near mid-April for Tamil,
// Bengali and Odia — all close to the sidereal Mesha sankranti — and
// near mid-August, the Chingam ingress, for Malayalam's Kollam era).
// Tamil and Odia are both conventionally quoted against the Saka year
// itself; Bengali against the Bangabda (San) era; Malayalam against the
// Kollam Era.
var eraEpochOffset = map[Region]int{
	Tamil:     -78,
	Bengali:   -593,
	Odia:      -78,
	Malayalam: -824,
}

// EraYear returns the regional era year current at jdUT: the Saka year
// for Tamil and Odia (neither runs a distinct era of its own), Bengali
// San, or Malayalam's Kollam Era.
func EraYear(jdUT timebase.JD, loc riseset.Location, region Region) int {
	lon := sidereal.SolarLongitudeSidereal(jdUT)
	monthIdx := int(lon / 30)
	target := float64(monthIdx) * 30
	sankranti := sidereal.SankrantiJD(target, jdUT-searchWindowDays, jdUT+1)

	// Step back from this month's sankranti to the region's new-year
	// sankranti (Mesha, or Simha for Malayalam), ~30.44 days per month.
	newYearIdx := 0
	if region == Malayalam {
		newYearIdx = 4
	}
	monthsSinceNewYear := (monthIdx - newYearIdx + 12) % 12
	newYear := sankranti - timebase.JD(float64(monthsSinceNewYear)*30.44)
	y, _, _ := timebase.JDToGregorian(localCivilDay(newYear, loc.UtcOffsetHours))
	return y + eraEpochOffset[region]
}

// SolarToGregorian returns the UT midnight Julian Day of the given
// regional solar calendar date, by locating the sankranti that begins
// monthIdx within searchWindowDays of approxJD and counting forward
// day-1 days.
func SolarToGregorian(approxJD timebase.JD, loc riseset.Location, region Region, monthIdx, day int) (timebase.JD, error) {
	target := float64(monthIdx) * 30
	sankranti := sidereal.SankrantiJD(target, approxJD-searchWindowDays, approxJD+searchWindowDays)

	rule := ruleFor(region)
	firstDay, err := rule.firstDayJD(sankranti, loc)
	if err != nil {
		return 0, err
	}
	return firstDay + timebase.JD(day-1), nil
}
