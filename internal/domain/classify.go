package domain

import (
	"errors"
	"math"
	"regexp"
	"strings"
)

var (
	mentionRe    = regexp.MustCompile(`@\w+`)
	hashtagRe    = regexp.MustCompile(`#\w+`)
	urlRe        = regexp.MustCompile(`http\S+`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// NormalizeText lowercases a raw signal and strips mentions, hashtags, and
// URLs so lexicon matching sees only the prose.
func NormalizeText(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = mentionRe.ReplaceAllString(text, "")
	text = hashtagRe.ReplaceAllString(text, "")
	text = urlRe.ReplaceAllString(text, "")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// Lexicon holds the keyword lists driving text classification. The three
// classification lists are mandatory; the sentiment and severity lists are
// optional refinements.
type Lexicon struct {
	Digital     []string // connectivity complaints, weight 1
	NonDigital  []string // physical-infrastructure phrases, weight 2
	PowerOutage []string // electricity failures, weight 1

	// Sentiment word lists (see scoreSentiment).
	SevereWords      []string
	ModerateWords    []string
	MildWords        []string
	IntensifierWords []string

	// Severity keyword lists, checked in critical-then-warning order.
	CriticalWords []string
	WarningWords  []string
}

// lexiconScores are the weighted match counts for one text.
type lexiconScores struct {
	digital    int
	nonDigital int
	power      int
}

// classificationRule pairs an issue label with its predicate. Rules are
// evaluated in order, first match wins, so precedence is data, not control
// flow.
type classificationRule struct {
	label   IssueType
	matches func(lexiconScores) bool
}

// classificationRules is the fixed precedence order. The strict ">" in the
// non_digital rule means ties fall through to the digital rule, and a text
// with both power and digital evidence is digital, not power_outage.
var classificationRules = []classificationRule{
	{IssueNonDigital, func(s lexiconScores) bool { return s.nonDigital > s.digital && s.power == 0 }},
	{IssuePowerOutage, func(s lexiconScores) bool { return s.power > 0 && s.digital == 0 }},
	{IssueDigital, func(s lexiconScores) bool { return s.digital > 0 || s.power > 0 }},
	{IssueUnknown, func(lexiconScores) bool { return true }},
}

// Classifier labels raw text signals and resolves district references.
// Stateless: classification is a pure function of the text.
type Classifier struct {
	lexicon   Lexicon
	gazetteer *Gazetteer
}

// NewClassifier validates the lexicon and builds a classifier. Empty
// classification lists make the pipeline meaningless, so they are rejected
// here rather than silently producing "unknown" forever.
func NewClassifier(lexicon Lexicon, gazetteer *Gazetteer) (*Classifier, error) {
	if len(lexicon.Digital) == 0 {
		return nil, errors.New("digital lexicon is empty")
	}
	if len(lexicon.NonDigital) == 0 {
		return nil, errors.New("non-digital lexicon is empty")
	}
	if len(lexicon.PowerOutage) == 0 {
		return nil, errors.New("power-outage lexicon is empty")
	}
	if gazetteer == nil {
		return nil, errors.New("gazetteer is required")
	}
	return &Classifier{lexicon: lowered(lexicon), gazetteer: gazetteer}, nil
}

// lowered returns a copy of the lexicon with every keyword lowercased, so
// matching against normalized text is a plain substring check.
func lowered(lex Lexicon) Lexicon {
	lower := func(words []string) []string {
		out := make([]string, len(words))
		for i, w := range words {
			out[i] = strings.ToLower(w)
		}
		return out
	}
	return Lexicon{
		Digital:          lower(lex.Digital),
		NonDigital:       lower(lex.NonDigital),
		PowerOutage:      lower(lex.PowerOutage),
		SevereWords:      lower(lex.SevereWords),
		ModerateWords:    lower(lex.ModerateWords),
		MildWords:        lower(lex.MildWords),
		IntensifierWords: lower(lex.IntensifierWords),
		CriticalWords:    lower(lex.CriticalWords),
		WarningWords:     lower(lex.WarningWords),
	}
}

// Classify labels one text item and independently resolves a district
// reference. An unresolvable district leaves District empty without
// affecting the label.
func (c *Classifier) Classify(item TextItem) ClassifiedEvent {
	text := NormalizeText(item.Text)
	scores := c.score(text)

	event := ClassifiedEvent{
		TextItem:  item,
		Issue:     IssueUnknown,
		Sentiment: c.scoreSentiment(text),
		Severity:  c.scoreSeverity(text),
	}
	for _, rule := range classificationRules {
		if rule.matches(scores) {
			event.Issue = rule.label
			break
		}
	}
	if d, ok := c.gazetteer.Resolve(text); ok {
		event.District = d.Name
	}
	return event
}

// ClassifyBatch classifies a whole tick's text batch, skipping items whose
// text is empty after normalization (malformed input is dropped, not fatal).
func (c *Classifier) ClassifyBatch(items []TextItem) []ClassifiedEvent {
	events := make([]ClassifiedEvent, 0, len(items))
	for _, item := range items {
		if NormalizeText(item.Text) == "" {
			continue
		}
		events = append(events, c.Classify(item))
	}
	return events
}

func (c *Classifier) score(text string) lexiconScores {
	var s lexiconScores
	for _, kw := range c.lexicon.Digital {
		if strings.Contains(text, kw) {
			s.digital++
		}
	}
	for _, kw := range c.lexicon.NonDigital {
		if strings.Contains(text, kw) {
			s.nonDigital += 2
		}
	}
	for _, kw := range c.lexicon.PowerOutage {
		if strings.Contains(text, kw) {
			s.power++
		}
	}
	return s
}

// scoreSentiment estimates how bad a complaint sounds on a -1.0 .. 0.0 scale.
// Complaints start at a -0.3 baseline; severe words subtract 0.25 each,
// moderate words 0.15, intensifiers 0.1, and softeners add 0.1 back.
func (c *Classifier) scoreSentiment(text string) float64 {
	score := -0.3
	for _, w := range c.lexicon.SevereWords {
		if strings.Contains(text, w) {
			score -= 0.25
		}
	}
	for _, w := range c.lexicon.ModerateWords {
		if strings.Contains(text, w) {
			score -= 0.15
		}
	}
	for _, w := range c.lexicon.MildWords {
		if strings.Contains(text, w) {
			score += 0.1
		}
	}
	for _, w := range c.lexicon.IntensifierWords {
		if strings.Contains(text, w) {
			score -= 0.1
		}
	}
	score = math.Round(score*100) / 100
	return math.Max(-1.0, math.Min(0.0, score))
}

func (c *Classifier) scoreSeverity(text string) Severity {
	for _, w := range c.lexicon.CriticalWords {
		if strings.Contains(text, w) {
			return SeverityCritical
		}
	}
	for _, w := range c.lexicon.WarningWords {
		if strings.Contains(text, w) {
			return SeverityWarning
		}
	}
	return SeverityNormal
}
