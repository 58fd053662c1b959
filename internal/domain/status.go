package domain

import "math"

// Combined-score weights. Social and infrastructure signals carry equal
// weight; disaster risk is a modifier, not a driver.
const (
	socialWeight   = 0.4
	infraWeight    = 0.4
	disasterWeight = 0.2
)

// statusInputs is everything a status rule may inspect.
type statusInputs struct {
	Social   Score
	Infra    Score
	Disaster Score
	Combined Score
}

// below is a threshold check that treats "no data" as not-below: absence of
// a signal is never evidence of adversity.
func below(s Score, threshold float64) bool {
	return s.Valid && s.Value < threshold
}

// statusRule pairs a status with its predicate. Rules are evaluated in
// order, first match wins.
type statusRule struct {
	status  Status
	matches func(statusInputs) bool
}

var statusRules = []statusRule{
	{StatusCritical, func(in statusInputs) bool {
		return below(in.Combined, 30) ||
			(below(in.Social, 40) && (below(in.Disaster, 50) || below(in.Infra, 50)))
	}},
	{StatusWarning, func(in statusInputs) bool {
		return below(in.Combined, 60) || below(in.Social, 60) || below(in.Infra, 60)
	}},
	{StatusNormal, func(statusInputs) bool { return true }},
}

// CombineScores fuses the three per-source scores into one, dropping absent
// components and redistributing their weight proportionally across the
// present ones. All-absent yields "no data".
func CombineScores(social, infra, disaster Score) Score {
	var weighted, totalWeight float64
	add := func(s Score, w float64) {
		if s.Valid {
			weighted += s.Value * w
			totalWeight += w
		}
	}
	add(social, socialWeight)
	add(infra, infraWeight)
	add(disaster, disasterWeight)

	if totalWeight == 0 {
		return NoData()
	}
	return SomeScore(math.Round(weighted/totalWeight*10) / 10)
}

// ComputeStatus classifies one district from the current tick's three
// scores. Pure and stateless: no transition history, no hysteresis. When all
// three inputs are absent the district is UNKNOWN rather than a fabricated
// number.
func ComputeStatus(d District, social, infra, disaster Score) DistrictStatus {
	status := DistrictStatus{
		District:   d.Name,
		Regency:    d.Regency,
		Social:     social,
		Infra:      infra,
		Disaster:   disaster,
		Combined:   CombineScores(social, infra, disaster),
		ComputedAt: clock.Now(),
	}

	if !status.Combined.Valid {
		status.Status = StatusUnknown
		return status
	}

	in := statusInputs{Social: social, Infra: infra, Disaster: disaster, Combined: status.Combined}
	for _, rule := range statusRules {
		if rule.matches(in) {
			status.Status = rule.status
			break
		}
	}
	return status
}
