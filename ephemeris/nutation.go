package ephemeris

import "math"

// nutationTerm is one row of the IAU-1980 nutation series: integer
// multipliers of the five fundamental arguments (D, M, M', F, Ω), and
// the longitude/obliquity coefficients (units of 0.0001 arcsec, plus a
// per-Julian-century rate in the same units).
type nutationTerm struct {
	d, m, mp, f, omega int
	psiK, psiT         float64
	epsK, epsT         float64
}

// nutationTerms holds the first 13 rows (by descending amplitude) of the
// 106-term IAU-1980 series (spec.md §4.B), a read-only table shared
// across calls — it is never mutated, so concurrent use needs no lock.
var nutationTerms = [13]nutationTerm{
	{0, 0, 0, 0, 1, -171996, -174.2, 92025, 8.9},
	{-2, 0, 0, 2, 2, -13187, -1.6, 5736, -3.1},
	{0, 0, 0, 2, 2, -2274, -0.2, 977, -0.5},
	{0, 0, 0, 0, 2, 2062, 0.2, -895, 0.5},
	{0, 1, 0, 0, 0, 1426, -3.4, 54, -0.1},
	{0, 0, 1, 0, 0, 712, 0.1, -7, 0},
	{-2, 1, 0, 2, 2, -517, 1.2, 224, -0.6},
	{0, 0, 0, 2, 1, -386, -0.4, 200, 0},
	{0, 0, 1, 2, 2, -301, 0, 129, -0.1},
	{-2, -1, 0, 2, 2, 217, -0.5, -95, 0.3},
	{-2, 0, 1, 0, 0, -158, 0, 0, 0},
	{-2, 0, 0, 2, 1, 129, 0.1, -70, 0},
	{0, 0, -1, 2, 2, 123, 0, -53, 0},
}

// fundamentalArguments returns D, M, M', F, Ω (degrees) for the IAU-1980
// nutation series at Julian centuries T from J2000.0 TT (Meeus Ch.22).
func fundamentalArguments(t float64) (d, m, mp, f, omega float64) {
	d = horner(t, 297.85036, 445267.111480, -0.0019142, 1.0/189474)
	m = horner(t, 357.52772, 35999.050340, -0.0001603, -1.0/300000)
	mp = horner(t, 134.96298, 477198.867398, 0.0086972, 1.0/56250)
	f = horner(t, 93.27191, 483202.017538, -0.0036825, 1.0/327270)
	omega = horner(t, 125.04452, -1934.136261, 0.0020708, 1.0/450000)
	return
}

// Nutation returns the nutation in longitude (Δψ) and in obliquity (Δε),
// in degrees, at Julian centuries T from J2000.0 TT.
func Nutation(t float64) (deltaPsi, deltaEpsilon float64) {
	d, m, mp, f, omega := fundamentalArguments(t)

	var psiSum, epsSum float64
	for _, term := range nutationTerms {
		arg := degToRad * (float64(term.d)*d + float64(term.m)*m +
			float64(term.mp)*mp + float64(term.f)*f + float64(term.omega)*omega)
		psiSum += (term.psiK + term.psiT*t) * math.Sin(arg)
		epsSum += (term.epsK + term.epsT*t) * math.Cos(arg)
	}
	// Coefficients are in units of 0.0001 arcsec.
	deltaPsi = psiSum * 0.0001 / 3600.0
	deltaEpsilon = epsSum * 0.0001 / 3600.0
	return
}
