// Package domain implements the signal-processing core of the district
// digital-resilience monitor: text classification, per-district aggregation
// of social, disaster, and infrastructure signals, and the final status
// fusion. Everything in this package is a pure function of its inputs — no
// I/O, no locking, no state carried between refresh ticks.
//
// # Signal categories
//
// Social: free text (news headlines, social-media complaints, mostly informal
// Indonesian) is classified by substring lexicon matching into one of four
// issue types:
//
//	digital       connectivity complaints (ISP outages, dead signal, RTO)
//	non_digital   physical-infrastructure noise (damaged roads, floods)
//	power_outage  electricity failures, which drag connectivity down too
//	unknown       no lexicon hit at all
//
// Matching is case-insensitive after normalization (mentions, hashtags, and
// URLs stripped). Digital and power keywords score 1 per hit; non-digital
// phrases score 2 per hit — multi-word phrases like "jalan rusak" are more
// specific than single keywords, so they are deliberately weighted up.
// Classification rules are an ordered list, first match wins:
//
//	1. non_digital  when non_digital > digital (strict) and power == 0
//	2. power_outage when power > 0 and digital == 0
//	3. digital      when digital > 0 or power > 0
//	4. unknown      otherwise
//
// The strict ">" in rule 1 means a tie falls through: equal digital and
// non-digital evidence classifies as digital. A text mentioning both a power
// outage and an internet failure is digital, not power_outage, by rule order.
//
// # District resolution
//
// The gazetteer maps canonical district names and their news aliases
// (e.g. "Lamsel" → "Lampung Selatan") to centroids. Resolution is
// case-insensitive substring matching; the longest matched string wins so
// "Tanjung Karang Pusat" beats the embedded "Tanjung Karang". Ties keep the
// first-listed district, making resolution deterministic across runs. The
// bare province name is deliberately absent from the alias set — nearly
// every regional headline mentions it, so it carries no signal.
//
// # Scores
//
// Each category produces a per-district score in [0,100] where 100 means "no
// adverse signal observed". A district can also be marked "no data" (see
// [Score]), which is not a zero: absent categories are dropped from the
// combined score and their weight is redistributed proportionally across the
// present ones. The combined score weights social and infrastructure at 0.4
// each and disaster risk at 0.2, then an ordered rule list classifies:
//
//	CRITICAL  combined < 30, or social < 40 with disaster < 50 or infra < 50
//	WARNING   combined < 60, or social < 60, or infra < 60
//	NORMAL    otherwise
//	UNKNOWN   all three inputs absent
//
// The classifier is stateless: no hysteresis, no dependence on the previous
// tick.
//
// # Disaster decay
//
// A bulletin's risk contribution to a district is base·exp(−d/r) where d is
// the haversine distance from epicenter to centroid, base grows with
// magnitude (capped at 100), and r is the magnitude-tiered impact radius
// (M≥5.0: 100 km, M≥4.0: 50 km, below: 25 km). The dominant hazard wins:
// the district score is 100 minus the largest single contribution, never a
// sum across unrelated bulletins.
package domain
