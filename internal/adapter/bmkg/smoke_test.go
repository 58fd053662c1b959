//go:build bmkg

package bmkg

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wirasatya/resilience-monitor/internal/domain"
)

// These tests hit the real BMKG API. Run with:
// go test -tags=bmkg ./internal/adapter/bmkg/ -v -count=1

func TestSmoke_FetchBulletins(t *testing.T) {
	c := NewClient("https://data.bmkg.go.id", 15*time.Second, testLogger())

	bulletins, err := c.FetchBulletins(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, bulletins, "BMKG always reports at least the latest quake")

	for _, b := range bulletins {
		assert.Equal(t, domain.BulletinQuake, b.Type)
		assert.NotZero(t, b.Lat)
		assert.NotZero(t, b.Lon)
		assert.Greater(t, b.Magnitude, 0.0)
		assert.NotEmpty(t, b.Description)
	}
}
