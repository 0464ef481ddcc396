package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Summary marker strings. Lookup failures are representable as text and
// never abort task creation.
const (
	SummaryLocationNotFound = "Location not found"
	SummaryDataUnavailable  = "Weather data unavailable"
	SummaryOutOfRange       = "Date out of forecast range"
	SummaryFetchFailed      = "Failed to fetch weather"
)

const requestTimeout = 10 * time.Second

// Candidate is a geocoding result for a free-text place query.
type Candidate struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Admin1    string  `json:"admin1,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type geocodingResponse struct {
	Results []Candidate `json:"results"`
}

type forecastResponse struct {
	Daily *dailySeries `json:"daily"`
}

// dailySeries holds parallel arrays aligned by index.
type dailySeries struct {
	Time           []string  `json:"time"`
	WeatherCode    []int     `json:"weather_code"`
	TemperatureMax []float64 `json:"temperature_2m_max"`
}

// Client resolves free-text locations to coordinates and daily forecasts
// via the Open-Meteo APIs.
type Client struct {
	httpClient   *http.Client
	geocodingURL string
	forecastURL  string
	limiter      *rate.Limiter
}

// NewClient creates a Client for the given API base URLs.
func NewClient(geocodingBaseURL, forecastBaseURL string) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: requestTimeout},
		geocodingURL: geocodingBaseURL,
		forecastURL:  forecastBaseURL,
		// Open-Meteo is a free public API; stay well under its limits.
		limiter: rate.NewLimiter(rate.Limit(5), 10),
	}
}

// Geocode returns the best matches for a free-text place query, most
// relevant first. An empty result is not an error.
func (c *Client) Geocode(ctx context.Context, query string, limit int) ([]Candidate, error) {
	if limit <= 0 {
		limit = 1
	}

	u := fmt.Sprintf("%s/search?name=%s&count=%d&language=en&format=json",
		c.geocodingURL, url.QueryEscape(query), limit)

	var resp geocodingResponse
	if err := c.getJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}

	return resp.Results, nil
}

// Resolve produces a one-line weather summary for a location and an ISO
// date (yyyy-mm-dd). It never fails: every error condition collapses to
// one of the summary marker strings.
func (c *Client) Resolve(ctx context.Context, location, date string) string {
	candidates, err := c.Geocode(ctx, location, 1)
	if err != nil {
		logrus.WithError(err).WithField("location", location).Warn("geocoding failed")
		return SummaryFetchFailed
	}
	if len(candidates) == 0 {
		return SummaryLocationNotFound
	}

	coords := candidates[0]
	u := fmt.Sprintf("%s/forecast?latitude=%v&longitude=%v&daily=weather_code,temperature_2m_max&timezone=auto",
		c.forecastURL, coords.Latitude, coords.Longitude)

	var resp forecastResponse
	if err := c.getJSON(ctx, u, &resp); err != nil {
		logrus.WithError(err).WithField("location", location).Warn("forecast fetch failed")
		return SummaryFetchFailed
	}
	if resp.Daily == nil {
		return SummaryDataUnavailable
	}

	// The forecast window is a handful of days around now; the requested
	// date is matched by exact string equality.
	idx := -1
	for i, d := range resp.Daily.Time {
		if d == date {
			idx = i
			break
		}
	}
	if idx == -1 || idx >= len(resp.Daily.WeatherCode) || idx >= len(resp.Daily.TemperatureMax) {
		return SummaryOutOfRange
	}

	description := Describe(resp.Daily.WeatherCode[idx])
	temp := strconv.FormatFloat(resp.Daily.TemperatureMax[idx], 'f', -1, 64)
	return fmt.Sprintf("%s • %s°C", description, temp)
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
