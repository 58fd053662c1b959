package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLexicon() Lexicon {
	return Lexicon{
		Digital: []string{
			"internet", "indihome", "wifi", "sinyal", "jaringan", "gangguan",
			"koneksi", "lemot", "buffering", "rto", "telkomsel", "biznet",
		},
		NonDigital: []string{
			"jalan rusak", "banjir", "pohon tumbang", "air pdam", "sampah menumpuk",
		},
		PowerOutage: []string{
			"mati lampu", "listrik padam", "listrik mati", "pemadaman", "pln padam",
		},
		SevereWords:      []string{"mati total", "rto", "down", "padam", "tidak bisa", "error"},
		ModerateWords:    []string{"lemot", "lambat", "gangguan", "putus", "buffering"},
		MildWords:        []string{"agak", "sedikit", "kadang"},
		IntensifierWords: []string{"banget", "parah", "sangat", "terus", "tiap hari", "seharian"},
		CriticalWords:    []string{"mati total", "rto", "down semua", "lumpuh"},
		WarningWords:     []string{"gangguan", "lemot", "lambat", "putus nyambung"},
	}
}

func testClassifier(t *testing.T) *Classifier {
	t.Helper()
	c, err := NewClassifier(testLexicon(), testGazetteer(t))
	require.NoError(t, err)
	return c
}

func TestNewClassifier_Validation(t *testing.T) {
	gaz := testGazetteer(t)

	t.Run("empty digital lexicon", func(t *testing.T) {
		lex := testLexicon()
		lex.Digital = nil
		_, err := NewClassifier(lex, gaz)
		require.Error(t, err)
	})

	t.Run("empty non-digital lexicon", func(t *testing.T) {
		lex := testLexicon()
		lex.NonDigital = nil
		_, err := NewClassifier(lex, gaz)
		require.Error(t, err)
	})

	t.Run("empty power lexicon", func(t *testing.T) {
		lex := testLexicon()
		lex.PowerOutage = nil
		_, err := NewClassifier(lex, gaz)
		require.Error(t, err)
	})

	t.Run("nil gazetteer", func(t *testing.T) {
		_, err := NewClassifier(testLexicon(), nil)
		require.Error(t, err)
	})
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"lowercases", "Indihome GANGGUAN", "indihome gangguan"},
		{"strips mentions", "tolong dong @IndiHomeCare sinyal hilang", "tolong dong sinyal hilang"},
		{"strips hashtags", "internet mati #lampung #gangguan", "internet mati"},
		{"strips urls", "cek http://example.com/x internet down", "cek internet down"},
		{"collapses whitespace", "  wifi \t lemot  ", "wifi lemot"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeText(tc.in))
		})
	}
}

func TestClassifier_Classify_Labels(t *testing.T) {
	c := testClassifier(t)

	tests := []struct {
		name     string
		text     string
		expected IssueType
		district string
	}{
		{
			// "jalan rusak" scores 2 (weight 2), no digital hit.
			name:     "physical infrastructure noise",
			text:     "Jalan rusak parah di Kedaton",
			expected: IssueNonDigital,
			district: "Kedaton",
		},
		{
			name:     "digital complaint with district",
			text:     "Indihome gangguan di Way Halim",
			expected: IssueDigital,
			district: "Way Halim",
		},
		{
			// power_score>=1 and digital_score>=1: rule 2 requires
			// digital_score==0, so this falls to rule 3 and is digital,
			// NOT power_outage.
			name:     "power outage dragging internet down is digital",
			text:     "Mati lampu di Rajabasa, internet ikut mati",
			expected: IssueDigital,
			district: "Rajabasa",
		},
		{
			name:     "pure power outage",
			text:     "Listrik padam di Kedaton sejak semalam",
			expected: IssuePowerOutage,
			district: "Kedaton",
		},
		{
			// digital=2 (internet, lemot), non_digital=2 (jalan rusak):
			// the strict ">" in rule 1 fails on a tie, rule 3 fires.
			name:     "tie falls through to digital",
			text:     "internet lemot gara-gara jalan rusak",
			expected: IssueDigital,
			district: "",
		},
		{
			name:     "no lexicon hit at all",
			text:     "cuaca cerah hari ini di pantai",
			expected: IssueUnknown,
			district: "",
		},
		{
			name:     "label independent of district resolution",
			text:     "sinyal hilang total entah dimana",
			expected: IssueDigital,
			district: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			event := c.Classify(TextItem{Text: tc.text, Source: "test"})
			assert.Equal(t, tc.expected, event.Issue)
			assert.Equal(t, tc.district, event.District)
		})
	}
}

func TestClassifier_Classify_Deterministic(t *testing.T) {
	c := testClassifier(t)
	item := TextItem{Text: "Mati lampu di Rajabasa, internet ikut mati"}

	first := c.Classify(item)
	for range 20 {
		assert.Equal(t, first, c.Classify(item))
	}
}

func TestClassifier_Classify_Total(t *testing.T) {
	c := testClassifier(t)
	known := map[IssueType]bool{
		IssueDigital: true, IssueNonDigital: true, IssuePowerOutage: true, IssueUnknown: true,
	}

	for _, text := range []string{
		"", "?!?", "Jalan rusak parah", "mati lampu", "internet gangguan",
		"banjir dan mati lampu", "JARINGAN DOWN #rto @isp http://x.co",
	} {
		event := c.Classify(TextItem{Text: text})
		assert.True(t, known[event.Issue], "text %q produced label %q", text, event.Issue)
	}
}

func TestClassifier_Sentiment(t *testing.T) {
	c := testClassifier(t)

	t.Run("baseline", func(t *testing.T) {
		e := c.Classify(TextItem{Text: "internet gangguan"})
		// -0.3 baseline, -0.15 for the moderate word "gangguan".
		assert.InDelta(t, -0.45, e.Sentiment, 1e-9)
	})

	t.Run("clamped at -1", func(t *testing.T) {
		e := c.Classify(TextItem{Text: "mati total rto down error lemot lambat putus parah banget"})
		assert.Equal(t, -1.0, e.Sentiment)
	})

	t.Run("softener raises score", func(t *testing.T) {
		harsh := c.Classify(TextItem{Text: "wifi lemot"})
		soft := c.Classify(TextItem{Text: "wifi agak lemot"})
		assert.Greater(t, soft.Sentiment, harsh.Sentiment)
	})

	t.Run("never positive", func(t *testing.T) {
		e := c.Classify(TextItem{Text: "agak sedikit kadang"})
		assert.LessOrEqual(t, e.Sentiment, 0.0)
	})
}

func TestClassifier_Severity(t *testing.T) {
	c := testClassifier(t)

	tests := []struct {
		text     string
		expected Severity
	}{
		{"indihome mati total di Kedaton", SeverityCritical},
		{"wifi lemot dari tadi", SeverityWarning},
		{"internet di rumah biasa saja", SeverityNormal},
		{"rto terus padahal gangguan kemarin sudah selesai", SeverityCritical}, // critical checked first
	}

	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			assert.Equal(t, tc.expected, c.Classify(TextItem{Text: tc.text}).Severity)
		})
	}
}

func TestClassifier_ClassifyBatch_SkipsEmptyText(t *testing.T) {
	c := testClassifier(t)

	events := c.ClassifyBatch([]TextItem{
		{Text: "Indihome gangguan di Way Halim"},
		{Text: "   "},
		{Text: "@mention #tag http://only.noise"},
		{Text: "mati lampu di Rajabasa"},
	})

	require.Len(t, events, 2)
	assert.Equal(t, IssueDigital, events[0].Issue)
	assert.Equal(t, IssuePowerOutage, events[1].Issue)
}
