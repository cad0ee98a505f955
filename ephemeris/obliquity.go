package ephemeris

// MeanObliquity returns the mean obliquity of the ecliptic, in degrees,
// for Julian centuries T from J2000.0 TT, using Laskar's 10-term
// polynomial in u = T/100 (spec.md §4.B).
func MeanObliquity(t float64) float64 {
	u := t / 100
	arcsec := horner(u,
		84381.448,
		-4680.93,
		-1.55,
		1999.25,
		-51.38,
		-249.67,
		-39.05,
		7.12,
		27.87,
		5.79,
		2.45,
	)
	return arcsec / 3600.0
}

// TrueObliquity returns the true obliquity (mean + nutation in
// obliquity), in degrees, at the given TT Julian centuries.
func TrueObliquity(t float64) float64 {
	_, deltaEpsilon := Nutation(t)
	return MeanObliquity(t) + deltaEpsilon
}
