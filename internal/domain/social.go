package domain

import "math"

// NeutralScore is the default for a district with no adverse signal in the
// batch: "nothing bad observed" rather than "no data".
const NeutralScore = 100.0

// complaintPenalty is the score cost per adverse complaint; ten complaints
// exhaust the count component on their own.
const complaintPenalty = 15.0

// sentimentWeight scales the average sentiment (-1.0 .. 0.0) into score
// points: a uniformly furious batch costs 30 points.
const sentimentWeight = 30.0

// severityFactors shrink the score when the worst complaint in the batch is
// severe. Keyed by Severity.rank().
var severityFactors = [3]float64{1.0, 0.75, 0.5}

// socialAccumulator collects per-district complaint statistics for one batch.
type socialAccumulator struct {
	count        int
	sentimentSum float64
	worst        Severity
}

// AggregateSocial reduces a batch of classified events to one social score
// per district. Only adverse events (digital, power_outage) with a resolved
// district count. The curve is monotone: one more adverse complaint for a
// district, all else equal, can only lower its score.
//
//	score = max(0, (max(0, 100 − 15·count) − |avgSentiment|·30) · severityFactor)
//
// Districts absent from the result had no adverse signal; callers default
// them to NeutralScore.
func AggregateSocial(events []ClassifiedEvent) map[string]float64 {
	acc := make(map[string]socialAccumulator)

	for _, e := range events {
		if !e.Issue.Adverse() || e.District == "" {
			continue
		}
		a := acc[e.District]
		a.count++
		a.sentimentSum += e.Sentiment
		if e.Severity.rank() > a.worst.rank() {
			a.worst = e.Severity
		}
		acc[e.District] = a
	}

	scores := make(map[string]float64, len(acc))
	for district, a := range acc {
		countScore := math.Max(0, NeutralScore-complaintPenalty*float64(a.count))
		avgSentiment := a.sentimentSum / float64(a.count)
		penalized := countScore - math.Abs(avgSentiment)*sentimentWeight
		score := math.Max(0, penalized*severityFactors[a.worst.rank()])
		scores[district] = math.Round(score*10) / 10
	}
	return scores
}
