package domain

// Degradation thresholds, matching operator expectations for consumer links:
// anything over 200 ms average latency or 20% packet loss is usable but not
// healthy.
const (
	DegradedLatencyMS = 200.0
	DegradedLossPct   = 20.0
)

// Degraded reports whether a reachable anchor shows elevated latency or
// packet loss. Unreachable anchors are not degraded, they are down.
func (r ProbeResult) Degraded() bool {
	if !r.Reachable {
		return false
	}
	return (r.LatencyMS >= 0 && r.LatencyMS > DegradedLatencyMS) || r.PacketLoss > DegradedLossPct
}

// anchorCredit is the score contribution of one probed anchor: full for
// healthy, half for degraded, none for unreachable.
func anchorCredit(r ProbeResult) float64 {
	switch {
	case !r.Reachable:
		return 0
	case r.Degraded():
		return 0.5
	default:
		return 1
	}
}

// AggregateInfra reduces a tick's probe results to one infrastructure score
// per district: 100 times the credited fraction of its mapped anchors. With
// k of N anchors unreachable and none degraded this is exactly 100·(N−k)/N.
// A district with no mapped anchors is absent from the result — that is the
// "no data" state, excluded from combined-score weighting, not a zero.
func AggregateInfra(results []ProbeResult) map[string]float64 {
	credits := make(map[string]float64)
	counts := make(map[string]int)

	for _, r := range results {
		if r.District == "" {
			continue
		}
		credits[r.District] += anchorCredit(r)
		counts[r.District]++
	}

	scores := make(map[string]float64, len(counts))
	for district, n := range counts {
		// Not rounded: the reachable-fraction contract is exact.
		scores[district] = 100 * credits[district] / float64(n)
	}
	return scores
}
