package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.open-meteo.com"

// Fallback pair returned on any failure. Degrading instead of erroring is
// the contract: the list page must render whether or not the weather API
// is reachable.
const (
	fallbackTempC             = 20
	fallbackCategory Category = Clear
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	lat, lon   float64
}

func NewClient(lat, lon float64) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    defaultBaseURL,
		lat:        lat,
		lon:        lon,
	}
}

// NewClientWithBaseURL exists for tests pointed at a local server.
func NewClientWithBaseURL(base string, hc *http.Client, lat, lon float64) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 5 * time.Second}
	}
	return &Client{httpClient: hc, baseURL: base, lat: lat, lon: lon}
}

type currentWeatherResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		WeatherCode int     `json:"weathercode"`
	} `json:"current_weather"`
}

// Current returns the current category and temperature in Celsius for the
// client's fixed coordinates. One attempt, short timeout; every failure
// path returns (Clear, 20).
func (c *Client) Current(ctx context.Context) (Category, float64) {
	u := fmt.Sprintf("%s/v1/forecast?latitude=%.4f&longitude=%.4f&current_weather=true",
		c.baseURL, c.lat, c.lon)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fallbackCategory, fallbackTempC
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fallbackCategory, fallbackTempC
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fallbackCategory, fallbackTempC
	}

	var raw currentWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return fallbackCategory, fallbackTempC
	}
	return CategoryFromCode(raw.CurrentWeather.WeatherCode), raw.CurrentWeather.Temperature
}
