package domain

import "math"

// Quake impact radii in kilometers, tiered by magnitude. A stronger quake
// both hits harder and reaches further.
const (
	radiusMajorKM    = 100 // M >= 5.0
	radiusModerateKM = 50  // M >= 4.0
	radiusMinorKM    = 25  // below
	radiusWeatherKM  = 50
)

// quakeBasePerMagnitude converts magnitude to the at-epicenter risk
// contribution: M 4.0 → 72, M 5.0 → 90, capped at 100 from M ~5.6 up.
const quakeBasePerMagnitude = 18.0

// Weather base contributions by warning level.
var weatherBases = map[WarningLevel]float64{
	LevelAlert:    90,
	LevelWarning:  60,
	LevelAdvisory: 30,
}

// reachFactor bounds how far a bulletin correlates: beyond three radii the
// exponential decay has fallen under 5% of base, which is noise.
const reachFactor = 3

// CorrelateDisasters reduces a batch of bulletins to one disaster score per
// district. Each bulletin contributes base·exp(−d/r) risk to every district
// within reach; the district score is 100 minus its largest single
// contribution — the dominant hazard decides, independent hazards do not sum.
// Malformed bulletins (no usable coordinates, non-positive magnitude,
// unknown warning level) are skipped. Districts out of reach of every
// bulletin are absent from the result; callers default them to NeutralScore.
func CorrelateDisasters(bulletins []DisasterBulletin, districts []District) map[string]float64 {
	worst := make(map[string]float64)

	for _, b := range bulletins {
		base, radius, ok := bulletinImpact(b)
		if !ok {
			continue
		}
		for _, d := range districts {
			dist := Haversine(b.Lat, b.Lon, d.Lat, d.Lon)
			if dist > reachFactor*radius {
				continue
			}
			contribution := base * math.Exp(-dist/radius)
			if contribution > worst[d.Name] {
				worst[d.Name] = contribution
			}
		}
	}

	scores := make(map[string]float64, len(worst))
	for district, contribution := range worst {
		scores[district] = clampScore(NeutralScore - contribution)
	}
	return scores
}

// bulletinImpact derives the at-epicenter contribution and impact radius for
// one bulletin, reporting false for malformed input.
func bulletinImpact(b DisasterBulletin) (base, radius float64, ok bool) {
	if b.Lat == 0 && b.Lon == 0 {
		return 0, 0, false
	}

	switch b.Type {
	case BulletinQuake:
		if b.Magnitude <= 0 {
			return 0, 0, false
		}
		base = math.Min(100, quakeBasePerMagnitude*b.Magnitude)
		switch {
		case b.Magnitude >= 5.0:
			radius = radiusMajorKM
		case b.Magnitude >= 4.0:
			radius = radiusModerateKM
		default:
			radius = radiusMinorKM
		}
		return base, radius, true

	case BulletinWeather:
		base, ok = weatherBases[b.Level]
		if !ok {
			return 0, 0, false
		}
		return base, radiusWeatherKM, true

	default:
		return 0, 0, false
	}
}

func clampScore(v float64) float64 {
	return math.Max(0, math.Min(100, math.Round(v*10)/10))
}
