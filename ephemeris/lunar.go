package ephemeris

import "math"

// lunarTerm is one row of the Meeus Table 47.A abridged ELP2000-82 lunar
// theory: integer multipliers of D, M, M', F and the sine (longitude,
// units 1e-6 degree) / cosine (distance, units 1e-3 km) coefficients.
type lunarTerm struct {
	d, m, mp, f int
	sinCoeff    float64
	cosCoeff    float64
}

// lunarTerms is the 60-term budget series (spec.md §4.C explicitly
// permits this reduced variant of the full ELP2000-82 theory). A
// read-only table; never mutated after package init.
var lunarTerms = [60]lunarTerm{
	{0, 0, 1, 0, 6288774, -20905355},
	{2, 0, -1, 0, 1274027, -3699111},
	{2, 0, 0, 0, 658314, -2955968},
	{0, 0, 2, 0, 213618, -569925},
	{0, 1, 0, 0, -185116, 48888},
	{0, 0, 0, 2, -114332, -3149},
	{2, 0, -2, 0, 58793, 246158},
	{2, -1, -1, 0, 57066, -152138},
	{2, 0, 1, 0, 53322, -170733},
	{2, -1, 0, 0, 45758, -204586},
	{0, 1, -1, 0, -40923, -129620},
	{1, 0, 0, 0, -34720, 108743},
	{0, 1, 1, 0, -30383, 104755},
	{2, 0, 0, -2, 15327, 10321},
	{0, 0, 1, 2, -12528, 0},
	{0, 0, 1, -2, 10980, 79661},
	{4, 0, -1, 0, 10675, -34782},
	{0, 0, 3, 0, 10034, -23210},
	{4, 0, -2, 0, 8548, -21636},
	{2, 1, -1, 0, -7888, 24208},
	{2, 1, 0, 0, -6766, 30824},
	{1, 0, -1, 0, -5163, -8379},
	{1, 1, 0, 0, 4987, -16675},
	{2, -1, 1, 0, 4036, -12831},
	{2, 0, 2, 0, 3994, -10445},
	{4, 0, 0, 0, 3861, -11650},
	{2, 0, -3, 0, 3665, 14403},
	{0, 1, -2, 0, -2689, -7003},
	{2, 0, -1, 2, -2602, 0},
	{2, -1, -2, 0, 2390, 10056},
	{1, 0, 1, 0, -2348, 6322},
	{2, -2, 0, 0, 2236, -9884},
	{0, 1, 2, 0, -2120, 5751},
	{0, 2, 0, 0, -2069, 0},
	{2, -2, -1, 0, 2048, -4950},
	{2, 0, 1, -2, -1773, 4130},
	{2, 0, 0, 2, -1595, 0},
	{4, -1, -1, 0, 1215, -3958},
	{0, 0, 2, 2, -1110, 0},
	{3, 0, -1, 0, -892, 3258},
	{2, 1, 1, 0, -810, 2616},
	{4, -1, -2, 0, 759, -1897},
	{0, 2, -1, 0, -713, -2117},
	{2, 2, -1, 0, -700, 2354},
	{2, 1, -2, 0, 691, 0},
	{2, -1, 0, -2, 596, 0},
	{4, 0, 1, 0, 549, -1423},
	{0, 0, 4, 0, 537, -1117},
	{4, -1, 0, 0, 520, -1571},
	{1, 0, -2, 0, -487, -1739},
	{2, 1, 0, -2, -399, 0},
	{0, 0, 2, -2, -381, -4421},
	{1, 1, 1, 0, 351, 0},
	{3, 0, -2, 0, -340, 0},
	{4, 0, -3, 0, 330, 0},
	{2, -1, 2, 0, 327, 0},
	{0, 2, 1, 0, -323, 1165},
	{1, 1, -1, 0, 299, 0},
	{2, 0, 3, 0, 294, 0},
	{2, 0, -1, -2, 0, 8752},
}

// Mean lunar elements (Meeus Ch.47, degrees).
func meanLunarLongitude(t float64) float64 {
	return horner(t, 218.3164477, 481267.88123421, -0.0015786, 1.0/538841, -1.0/65194000)
}
func meanElongation(t float64) float64 {
	return horner(t, 297.8501921, 445267.1114034, -0.0018819, 1.0/545868, -1.0/113065000)
}
func sunMeanAnomaly(t float64) float64 {
	return horner(t, 357.5291092, 35999.0502909, -0.0001536, 1.0/24490000)
}
func moonMeanAnomaly(t float64) float64 {
	return horner(t, 134.9633964, 477198.8675055, 0.0087414, 1.0/69699, -1.0/14712000)
}
func moonArgumentOfLatitude(t float64) float64 {
	return horner(t, 93.2720950, 483202.0175233, -0.0036539, -1.0/3526000, 1.0/863310000)
}

// LunarLongitude returns the Moon's apparent geocentric ecliptic
// longitude (tropical, degrees) at Julian centuries T from J2000.0 TT.
func LunarLongitude(t float64) float64 {
	lPrime := meanLunarLongitude(t)
	d := meanElongation(t)
	m := sunMeanAnomaly(t)
	mp := moonMeanAnomaly(t)
	f := moonArgumentOfLatitude(t)

	a1 := normalizeDeg(119.75 + 131.849*t)
	a2 := normalizeDeg(53.09 + 479264.29*t)

	// Eccentricity correction for M-dependent terms (Earth orbit
	// eccentricity drifts from its J2000 value over long baselines).
	e := 1 - 0.002516*t - 0.0000074*t*t

	var sigmaL float64
	for _, term := range lunarTerms {
		arg := degToRad * (float64(term.d)*d + float64(term.m)*m +
			float64(term.mp)*mp + float64(term.f)*f)
		coeff := term.sinCoeff
		switch term.m {
		case 1, -1:
			coeff *= e
		case 2, -2:
			coeff *= e * e
		}
		sigmaL += coeff * math.Sin(arg)
	}
	sigmaL += 3958 * math.Sin(degToRad*a1)
	sigmaL += 1962 * math.Sin(degToRad*(lPrime-f))
	sigmaL += 318 * math.Sin(degToRad*a2)

	deltaPsi, _ := Nutation(t)
	return normalizeDeg(lPrime + sigmaL/1e6 + deltaPsi)
}

// LunarDistance returns the Earth-Moon distance in kilometers at Julian
// centuries T from J2000.0 TT.
func LunarDistance(t float64) float64 {
	d := meanElongation(t)
	m := sunMeanAnomaly(t)
	mp := moonMeanAnomaly(t)
	f := moonArgumentOfLatitude(t)
	e := 1 - 0.002516*t - 0.0000074*t*t

	var sigmaR float64
	for _, term := range lunarTerms {
		arg := degToRad * (float64(term.d)*d + float64(term.m)*m +
			float64(term.mp)*mp + float64(term.f)*f)
		coeff := term.cosCoeff
		switch term.m {
		case 1, -1:
			coeff *= e
		case 2, -2:
			coeff *= e * e
		}
		sigmaR += coeff * math.Cos(arg)
	}
	return 385000.56 + sigmaR/1e3
}
