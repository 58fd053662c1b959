package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// earthRadiusKM is the mean Earth radius used for great-circle distances.
const earthRadiusKM = 6371

// Gazetteer resolves free text to a district by case-insensitive substring
// matching over canonical names and aliases. Immutable after construction.
type Gazetteer struct {
	districts []District
	entries   []gazetteerEntry
}

// gazetteerEntry is one matchable string, kept in district-then-alias order
// so tie-breaking is deterministic.
type gazetteerEntry struct {
	needle   string // lowercased name or alias
	district int    // index into districts
}

// NewGazetteer builds a gazetteer from an ordered district list. The list
// order is the tie-break order for equal-length matches and the iteration
// order of Districts. An empty list or a district without a name is a fatal
// configuration error.
func NewGazetteer(districts []District) (*Gazetteer, error) {
	if len(districts) == 0 {
		return nil, errors.New("gazetteer requires at least one district")
	}

	g := &Gazetteer{districts: make([]District, len(districts))}
	copy(g.districts, districts)

	for i, d := range g.districts {
		if strings.TrimSpace(d.Name) == "" {
			return nil, fmt.Errorf("district %d has an empty name", i)
		}
		g.entries = append(g.entries, gazetteerEntry{needle: strings.ToLower(d.Name), district: i})
		for _, alias := range d.Aliases {
			alias = strings.TrimSpace(alias)
			if alias == "" {
				continue
			}
			g.entries = append(g.entries, gazetteerEntry{needle: strings.ToLower(alias), district: i})
		}
	}
	return g, nil
}

// Resolve returns the district whose name or alias appears in the text.
// The longest matched string wins; ties keep the earliest-listed district.
// No fuzzy matching: a text without an exact substring hit resolves to nothing.
func (g *Gazetteer) Resolve(text string) (District, bool) {
	haystack := strings.ToLower(text)

	best := -1
	bestLen := 0
	for _, e := range g.entries {
		if len(e.needle) <= bestLen {
			continue
		}
		if strings.Contains(haystack, e.needle) {
			best = e.district
			bestLen = len(e.needle)
		}
	}
	if best < 0 {
		return District{}, false
	}
	return g.districts[best], true
}

// Districts returns the district list in its fixed configuration order.
// Callers must not mutate the returned slice.
func (g *Gazetteer) Districts() []District {
	return g.districts
}

// Lookup finds a district by canonical name.
func (g *Gazetteer) Lookup(name string) (District, bool) {
	for _, d := range g.districts {
		if d.Name == name {
			return d, true
		}
	}
	return District{}, false
}

// Haversine returns the great-circle distance in kilometers between two
// WGS-84 coordinates.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKM * c
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
