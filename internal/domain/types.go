package domain

import (
	"encoding/json"
	"time"
)

// District is one tracked administrative sub-region. Reference data, loaded
// once per process lifetime and never mutated.
type District struct {
	Name    string   `json:"name"`    // canonical name, unique key
	Regency string   `json:"regency"` // parent kabupaten/kota
	Aliases []string `json:"aliases,omitempty"`
	Lat     float64  `json:"lat"`
	Lon     float64  `json:"lon"`
}

// TextItem is one raw social/news text signal as delivered by the collector.
type TextItem struct {
	Text      string    `json:"text"`
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
}

// IssueType labels what a text complaint is about.
type IssueType string

const (
	IssueDigital     IssueType = "digital"
	IssueNonDigital  IssueType = "non_digital"
	IssuePowerOutage IssueType = "power_outage"
	IssueUnknown     IssueType = "unknown"
)

// Adverse reports whether the issue counts against a district's social score.
// Power outages count: they take digital infrastructure down with them.
func (t IssueType) Adverse() bool {
	return t == IssueDigital || t == IssuePowerOutage
}

// Severity grades how bad a complaint sounds.
type Severity string

const (
	SeverityNormal   Severity = "normal"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

func (s Severity) rank() int {
	switch s {
	case SeverityCritical:
		return 2
	case SeverityWarning:
		return 1
	default:
		return 0
	}
}

// ClassifiedEvent is a TextItem after classification. Consumed once by the
// social aggregator; never persisted.
type ClassifiedEvent struct {
	TextItem

	Issue     IssueType `json:"issue"`
	District  string    `json:"district,omitempty"` // canonical name, empty when unresolved
	Sentiment float64   `json:"sentiment"`          // -1.0 (worst) .. 0.0
	Severity  Severity  `json:"severity"`
}

// BulletinType distinguishes seismic from weather bulletins.
type BulletinType string

const (
	BulletinQuake   BulletinType = "quake"
	BulletinWeather BulletinType = "weather"
)

// WarningLevel grades a weather bulletin.
type WarningLevel string

const (
	LevelAlert    WarningLevel = "ALERT"
	LevelWarning  WarningLevel = "WARNING"
	LevelAdvisory WarningLevel = "ADVISORY"
)

// DisasterBulletin is one seismic or weather event as delivered by the
// upstream feed client.
type DisasterBulletin struct {
	Type        BulletinType `json:"type"`
	Lat         float64      `json:"lat"`
	Lon         float64      `json:"lon"`
	Magnitude   float64      `json:"magnitude,omitempty"` // quake magnitude (Richter)
	Level       WarningLevel `json:"level,omitempty"`     // weather severity
	Description string       `json:"description,omitempty"`
	Source      string       `json:"source,omitempty"`
	Timestamp   time.Time    `json:"timestamp"`
}

// Anchor is one monitored institutional endpoint, pinned to the district
// hosting it. Several anchors may map to the same district.
type Anchor struct {
	Host     string `json:"host"`
	Name     string `json:"name,omitempty"`
	District string `json:"district"`
}

// ProbeResult is the outcome of one reachability check against an anchor
// domain. Failure modes (timeout, DNS error, refused) are all recorded as
// Reachable=false, never as an error.
type ProbeResult struct {
	Anchor     string    `json:"anchor"`
	District   string    `json:"district"`
	Reachable  bool      `json:"reachable"`
	LatencyMS  float64   `json:"latency_ms"`  // -1 when unknown
	PacketLoss float64   `json:"packet_loss"` // percent, 0-100
	Timestamp  time.Time `json:"timestamp"`
}

// Score is a 0-100 value with an explicit "no data" state. Absence is
// distinct from zero: it triggers weight redistribution instead of a penalty.
type Score struct {
	Value float64
	Valid bool
}

// SomeScore wraps a numeric score.
func SomeScore(v float64) Score { return Score{Value: v, Valid: true} }

// NoData is the absence marker.
func NoData() Score { return Score{} }

// MarshalJSON encodes a missing score as null so consumers can tell
// "no data" apart from 0.
func (s Score) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.Value)
}

// UnmarshalJSON accepts null as the absence marker.
func (s *Score) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = Score{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = SomeScore(v)
	return nil
}

// Status is the classified resilience state of a district.
type Status string

const (
	StatusCritical Status = "CRITICAL"
	StatusWarning  Status = "WARNING"
	StatusNormal   Status = "NORMAL"
	StatusUnknown  Status = "UNKNOWN" // all three inputs absent
)

// DistrictStatus is the per-district pipeline output. One record per known
// district per tick, fully replaced each tick.
type DistrictStatus struct {
	District   string    `json:"district"`
	Regency    string    `json:"regency"`
	Social     Score     `json:"social_score"`
	Infra      Score     `json:"infra_score"`
	Disaster   Score     `json:"disaster_score"`
	Combined   Score     `json:"combined_score"`
	Status     Status    `json:"status"`
	ComputedAt time.Time `json:"computed_at"`
}

// Snapshot is the full output of one refresh tick: exactly one status per
// gazetteer district, in gazetteer order.
type Snapshot struct {
	Statuses   []DistrictStatus `json:"statuses"`
	ComputedAt time.Time        `json:"computed_at"`
}
