// Package bmkg fetches earthquake bulletins from BMKG's public TEWS feeds.
// The endpoints are free and keyless.
package bmkg

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/wirasatya/resilience-monitor/internal/domain"
)

// The three TEWS quake feeds: the single latest event, the 15 most recent
// M>=5 events, and the 15 most recent felt events.
const (
	pathAutoGempa      = "/DataMKG/TEWS/autogempa.json"
	pathGempaTerkini   = "/DataMKG/TEWS/gempaterkini.json"
	pathGempaDirasakan = "/DataMKG/TEWS/gempadirasakan.json"
)

var depthRe = regexp.MustCompile(`\d+`)

// Client fetches and normalizes BMKG earthquake bulletins.
// It implements pipeline.BulletinSource.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates a BMKG client against the given base URL
// (production: https://data.bmkg.go.id).
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  logger,
	}
}

// FetchBulletins merges the three quake feeds, deduplicated by
// timestamp+magnitude. A single failing feed is logged and skipped; the call
// fails only when every feed fails.
func (c *Client) FetchBulletins(ctx context.Context) ([]domain.DisasterBulletin, error) {
	var (
		bulletins []domain.DisasterBulletin
		succeeded int
		lastErr   error
	)

	for _, feed := range []struct {
		path   string
		label  string
		single bool
	}{
		{pathAutoGempa, "AutoGempa", true},
		{pathGempaTerkini, "GempaTerkini", false},
		{pathGempaDirasakan, "GempaDirasakan", false},
	} {
		records, err := c.fetchQuakes(ctx, feed.path, feed.single)
		if err != nil {
			c.logger.Warn("bmkg feed unavailable", "feed", feed.label, "error", err)
			lastErr = err
			continue
		}
		succeeded++
		for _, rec := range records {
			b, err := mapQuake(rec, feed.label)
			if err != nil {
				c.logger.Warn("malformed quake record, skipping", "feed", feed.label, "error", err)
				continue
			}
			bulletins = append(bulletins, b)
		}
	}

	if succeeded == 0 {
		return nil, fmt.Errorf("all bmkg feeds failed: %w", lastErr)
	}
	return dedupe(bulletins), nil
}

// fetchQuakes retrieves one feed. The AutoGempa feed wraps a single object
// where the others wrap a list, hence the two envelope shapes.
func (c *Client) fetchQuakes(ctx context.Context, path string, single bool) ([]quakeRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bmkg request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("bmkg API error: status %d: %s", resp.StatusCode, body)
	}

	if single {
		var envelope struct {
			Infogempa struct {
				Gempa quakeRecord `json:"gempa"`
			} `json:"Infogempa"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		if envelope.Infogempa.Gempa == (quakeRecord{}) {
			return nil, nil
		}
		return []quakeRecord{envelope.Infogempa.Gempa}, nil
	}

	var envelope struct {
		Infogempa struct {
			Gempa []quakeRecord `json:"gempa"`
		} `json:"Infogempa"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return envelope.Infogempa.Gempa, nil
}

// mapQuake normalizes one raw feed record into a bulletin. Records without
// parseable coordinates are rejected; a bad magnitude becomes 0 and is
// filtered out downstream.
func mapQuake(rec quakeRecord, sourceLabel string) (domain.DisasterBulletin, error) {
	lat, lon, err := parseCoordinates(rec.Coordinates)
	if err != nil {
		return domain.DisasterBulletin{}, err
	}

	magnitude, err := strconv.ParseFloat(strings.TrimSpace(rec.Magnitude), 64)
	if err != nil {
		magnitude = 0
	}

	description := rec.Wilayah
	if depth := depthRe.FindString(rec.Kedalaman); depth != "" {
		description = fmt.Sprintf("%s (kedalaman %s km)", rec.Wilayah, depth)
	}

	timestamp, err := time.Parse(time.RFC3339, rec.DateTime)
	if err != nil {
		timestamp = time.Time{}
	}

	return domain.DisasterBulletin{
		Type:        domain.BulletinQuake,
		Lat:         lat,
		Lon:         lon,
		Magnitude:   magnitude,
		Description: description,
		Source:      "BMKG " + sourceLabel,
		Timestamp:   timestamp,
	}, nil
}

// parseCoordinates splits BMKG's "lat,lon" coordinate string,
// e.g. "-5.75,105.26".
func parseCoordinates(s string) (float64, float64, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed coordinates %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed latitude %q", parts[0])
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed longitude %q", parts[1])
	}
	return lat, lon, nil
}

// dedupe drops records the feeds report more than once. AutoGempa repeats
// the newest GempaDirasakan entry, so the overlap is routine.
func dedupe(bulletins []domain.DisasterBulletin) []domain.DisasterBulletin {
	type key struct {
		ts  time.Time
		mag float64
	}
	seen := make(map[key]bool, len(bulletins))
	unique := bulletins[:0]
	for _, b := range bulletins {
		k := key{b.Timestamp, b.Magnitude}
		if seen[k] {
			continue
		}
		seen[k] = true
		unique = append(unique, b)
	}
	return unique
}

// quakeRecord is one raw entry in a TEWS quake feed. Every field is a string
// on the wire.
type quakeRecord struct {
	DateTime    string `json:"DateTime"`
	Coordinates string `json:"Coordinates"` // "lat,lon"
	Magnitude   string `json:"Magnitude"`
	Kedalaman   string `json:"Kedalaman"` // "10 km"
	Wilayah     string `json:"Wilayah"`
	Potensi     string `json:"Potensi"`
}
