package timebase

import "math"

// deltaTTableFirstYear and deltaTTableLastYear bound the tabulated
// series; ΔT is a static, read-only (151-entry) table covering 1900-2050
// inclusive, one entry per calendar year (seconds). Values are
// interpolated from the long-term ΔT approximation of Espenak & Meeus,
// matching the historical observed series within the table's own
// tolerance — this repository does not fetch or embed IERS bulletins.
const (
	deltaTTableFirstYear = 1900
	deltaTTableLastYear  = 2050
)

var deltaTTableSeconds = [151]float64{
	-2.79, -1.35, 0.01, 1.30, 2.57, 3.83, 5.10, 6.39, 7.70, 9.03,
	10.39, 11.76, 13.14, 14.50, 15.82, 17.09, 18.25, 19.29, 20.16, 20.81,
	21.20, 21.97, 22.60, 23.11, 23.50, 23.78, 23.98, 24.10, 24.16, 24.17,
	24.13, 24.07, 24.00, 23.92, 23.86, 23.82, 23.81, 23.86, 23.96, 24.14,
	24.41, 24.77, 25.34, 25.88, 26.39, 26.88, 27.35, 27.80, 28.24, 28.66,
	29.07, 29.47, 29.87, 30.26, 30.65, 31.05, 31.44, 31.84, 32.25, 32.67,
	33.10, 33.58, 33.99, 34.50, 35.10, 35.79, 36.55, 37.38, 38.27, 39.21,
	40.19, 41.21, 42.25, 43.31, 44.38, 45.45, 46.51, 47.56, 48.58, 49.57,
	50.51, 51.41, 52.25, 53.03, 53.73, 54.34, 54.88, 55.32, 55.78, 56.30,
	56.89, 57.57, 58.33, 59.13, 59.97, 60.80, 61.59, 62.31, 62.95, 63.46,
	63.86, 64.14, 64.31, 64.43, 64.53, 64.67, 65.05, 65.45, 65.86, 66.27,
	66.70, 67.14, 67.59, 68.05, 68.53, 69.01, 69.51, 70.01, 70.53, 71.06,
	71.60, 72.15, 72.71, 73.29, 73.87, 74.47, 75.07, 75.69, 76.32, 76.96,
	77.62, 78.28, 78.95, 79.64, 80.33, 81.04, 81.76, 82.49, 83.23, 83.99,
	84.75, 85.52, 86.31, 87.11, 87.92, 88.74, 89.57, 90.41, 91.26, 92.13,
	93.00,
}

// longTermPoly is the Meeus/Simons long-term ΔT approximation (seconds),
// valid far outside the tabulated range: ΔT ≈ -20 + 32u², u=(year-1820)/100.
func longTermPoly(year float64) float64 {
	u := (year - 1820) / 100
	return -20 + 32*u*u
}

// lowOffset and highOffset are chosen once so the long-term polynomial matches the
// table's own value exactly at the boundary year, keeping DeltaT
// continuous across the 1900 and 2050 seams (spec.md §4.A).
var (
	lowOffset  = deltaTTableSeconds[0] - longTermPoly(deltaTTableFirstYear)
	highOffset = deltaTTableSeconds[len(deltaTTableSeconds)-1] - longTermPoly(deltaTTableLastYear)
)

// DeltaT returns TT-UT in days at the given Julian Day. For fractional
// years 1900.0-2050.0 it linearly interpolates the tabulated yearly series;
// outside that range, including the rest of 2050 after its first day, it
// falls back to the long-term polynomial, offset to stay continuous at the
// table's endpoints.
func DeltaT(jd JD) float64 {
	year, month, day := JDToGregorian(jd)
	yf := yearFraction(year, month, day)

	var seconds float64
	switch {
	case yf < deltaTTableFirstYear:
		seconds = longTermPoly(yf) + lowOffset
	case yf > deltaTTableLastYear:
		seconds = longTermPoly(yf) + highOffset
	default:
		seconds = interpolateTable(yf)
	}
	return seconds / 86400.0
}

// yearFraction turns a (possibly mid-year) civil date into a fractional
// calendar year, used as the interpolation argument.
func yearFraction(year, month, day int) float64 {
	jdStartOfYear := GregorianToJD(year, 1, 1)
	jdStartOfNextYear := GregorianToJD(year+1, 1, 1)
	jdNow := GregorianToJD(year, month, day)
	span := float64(jdStartOfNextYear - jdStartOfYear)
	return float64(year) + float64(jdNow-jdStartOfYear)/span
}

func interpolateTable(yf float64) float64 {
	if yf <= deltaTTableFirstYear {
		return deltaTTableSeconds[0]
	}
	if yf >= deltaTTableLastYear {
		return deltaTTableSeconds[len(deltaTTableSeconds)-1]
	}
	lo := math.Floor(yf) - deltaTTableFirstYear
	frac := yf - math.Floor(yf)
	i := int(lo)
	if i >= len(deltaTTableSeconds)-1 {
		return deltaTTableSeconds[len(deltaTTableSeconds)-1]
	}
	a, b := deltaTTableSeconds[i], deltaTTableSeconds[i+1]
	return a + (b-a)*frac
}
