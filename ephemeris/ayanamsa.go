package ephemeris

// lahiriReferenceJD is the Lahiri ayanamsa reference epoch, 1956-03-21
// (the vernal equinox of that year), the moment the Indian Calendar Reform
// Committee pinned the sidereal zero point to.
const lahiriReferenceJD = 2435553.5

// lahiriReferenceAyanamsaDeg is the ayanamsa value (degrees) at the
// reference epoch itself (spec.md §4.D).
const lahiriReferenceAyanamsaDeg = 23.245524743

// generalPrecessionArcsecPerCentury is the IAU-1976 general precession
// in longitude, in arcsec per Julian century, as a function of Julian
// centuries T from J2000.0 TT.
func generalPrecessionArcsecPerCentury(t float64) float64 {
	return horner(t, 5029.0966, 1.11113, -0.000006)
}

// LahiriAyanamsa returns the Lahiri sidereal ayanamsa (degrees) for a
// Terrestrial Time Julian Day, via reference-epoch rotation: the
// precession accumulated between the Lahiri reference epoch and the
// target date is added to the ayanamsa pinned at that epoch, rather than
// rotating through J2000 and back on every call.
func LahiriAyanamsa(jdTT float64) float64 {
	t0 := julianCenturiesTT(lahiriReferenceJD)
	t := julianCenturiesTT(jdTT)

	// Average the (slowly varying) precession rate over the interval
	// rather than evaluating it once at an endpoint.
	midT := (t + t0) / 2
	rate := generalPrecessionArcsecPerCentury(midT)
	accumulatedArcsec := rate * (t - t0)

	return lahiriReferenceAyanamsaDeg + accumulatedArcsec/3600.0
}

// TropicalToSidereal converts a tropical geocentric longitude (degrees)
// to its Lahiri sidereal equivalent at the given TT Julian Day.
func TropicalToSidereal(tropicalDeg, jdTT float64) float64 {
	return normalizeDeg(tropicalDeg - LahiriAyanamsa(jdTT))
}
