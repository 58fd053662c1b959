package lampung

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wirasatya/resilience-monitor/internal/domain"
)

func TestDistricts(t *testing.T) {
	districts := Districts()
	require.NotEmpty(t, districts)

	seen := make(map[string]bool, len(districts))
	for _, d := range districts {
		assert.NotEmpty(t, d.Name)
		assert.NotEmpty(t, d.Regency)
		assert.False(t, seen[d.Name], "duplicate district %q", d.Name)
		seen[d.Name] = true

		// Everything here sits inside the province's bounding box.
		assert.InDelta(t, -5.2, d.Lat, 1.2, d.Name)
		assert.InDelta(t, 105.0, d.Lon, 1.2, d.Name)
	}
}

func TestDistricts_BuildValidGazetteer(t *testing.T) {
	g, err := domain.NewGazetteer(WithAliases())
	require.NoError(t, err)

	t.Run("alias resolves", func(t *testing.T) {
		d, ok := g.Resolve("internet mati di lamsel sejak pagi")
		require.True(t, ok)
		assert.Equal(t, "Kalianda", d.Name)
	})

	t.Run("embedded name prefers the longer match", func(t *testing.T) {
		d, ok := g.Resolve("gangguan di tanjung karang pusat")
		require.True(t, ok)
		assert.Equal(t, "Tanjung Karang Pusat", d.Name)
	})
}

func TestLexicon_BuildsValidClassifier(t *testing.T) {
	g, err := domain.NewGazetteer(WithAliases())
	require.NoError(t, err)

	c, err := domain.NewClassifier(Lexicon(), g)
	require.NoError(t, err)

	event := c.Classify(domain.TextItem{Text: "Indihome gangguan di Way Halim"})
	assert.Equal(t, domain.IssueDigital, event.Issue)
	assert.Equal(t, "Way Halim", event.District)
}

func TestAnchors_MapToKnownDistricts(t *testing.T) {
	known := make(map[string]bool)
	for _, d := range Districts() {
		known[d.Name] = true
	}

	for _, a := range Anchors() {
		assert.NotEmpty(t, a.Host)
		assert.Truef(t, known[a.District], "anchor %s maps to unknown district %q", a.Host, a.District)
	}
}
