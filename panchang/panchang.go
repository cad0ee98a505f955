// Package panchang is the façade: it assembles tithi, masa, weekday and
// regional solar-calendar results into a single per-day or per-month
// answer, the shape a caller actually wants instead of the individual
// astronomical building blocks.
package panchang

import (
	"fmt"
	"log/slog"

	"github.com/aryabhata-go/panchangam/calendar/masa"
	"github.com/aryabhata-go/panchangam/calendar/solar"
	"github.com/aryabhata-go/panchangam/calendar/tithi"
	"github.com/aryabhata-go/panchangam/log"
	"github.com/aryabhata-go/panchangam/perrors"
	"github.com/aryabhata-go/panchangam/riseset"
	"github.com/aryabhata-go/panchangam/timebase"
)

// Location is the observer's position, re-exported from riseset so
// callers of this package don't need to import it directly.
type Location = riseset.Location

// Day is the full panchang for one civil date at one location.
type Day struct {
	Date         timebase.JD
	Weekday      timebase.Weekday
	Tithi        tithi.Tithi
	Masa         masa.Masa
	SakaYear     int
	VikramSamvat int
	Sunrise      timebase.JD
	Sunset       timebase.JD
}

// DayPanchang computes the full panchang for the civil date whose
// midnight (UT-referenced) is jdMidnight, observed from loc.
func DayPanchang(jdMidnight timebase.JD, loc Location) (Day, error) {
	rs, err := riseset.Compute(jdMidnight, loc)
	if err != nil {
		log.Logger().Warn("sunrise/sunset unavailable", slog.Float64("jd", float64(jdMidnight)), slog.Any("error", err))
		return Day{}, fmt.Errorf("panchang.DayPanchang: %w", err)
	}

	ti, err := tithi.AtSunrise(jdMidnight, loc)
	if err != nil {
		log.Logger().Warn("tithi at sunrise unavailable", slog.Float64("jd", float64(jdMidnight)), slog.Any("error", err))
		return Day{}, fmt.Errorf("panchang.DayPanchang: %w", err)
	}

	m := masa.ForDate(rs.SunriseJD)

	return Day{
		Date:         jdMidnight,
		Weekday:      timebase.DayOfWeek(jdMidnight),
		Tithi:        ti,
		Masa:         m,
		SakaYear:     masa.SakaYear(rs.SunriseJD),
		VikramSamvat: masa.VikramSamvat(rs.SunriseJD),
		Sunrise:      rs.SunriseJD,
		Sunset:       rs.SunsetJD,
	}, nil
}

// MonthPanchang computes one Day entry per civil date in the Gregorian
// month (year, month), at loc. A single astronomical failure (e.g. a
// polar-night date) is recorded per day rather than aborting the whole
// month.
type MonthDay struct {
	Day Day
	Err error
}

// MonthPanchang returns one MonthDay per civil date of (year, month).
func MonthPanchang(year, month int, loc Location) ([]MonthDay, error) {
	if month < 1 || month > 12 {
		return nil, perrors.Argument("panchang.MonthPanchang", fmt.Errorf("invalid month %d", month))
	}

	start := timebase.GregorianToJD(year, month, 1)
	nextMonthYear, nextMonth := year, month+1
	if nextMonth > 12 {
		nextMonth = 1
		nextMonthYear++
	}
	end := timebase.GregorianToJD(nextMonthYear, nextMonth, 1)

	var results []MonthDay
	for jd := start; jd < end; jd++ {
		d, err := DayPanchang(jd, loc)
		if err != nil {
			log.Logger().Warn("skipping day with astronomical failure", slog.Float64("jd", float64(jd)), slog.Any("error", err))
		}
		results = append(results, MonthDay{Day: d, Err: err})
	}
	return results, nil
}

// RegionalDate returns the regional solar-calendar date for jdMidnight
// at loc.
func RegionalDate(jdMidnight timebase.JD, loc Location, region solar.Region) (solar.Date, error) {
	return solar.ForDate(jdMidnight, loc, region)
}
