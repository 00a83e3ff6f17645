package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gardenmaestro/gardenmaestro/pkg/models"
)

// Client talks to an upstream weather API that exposes current conditions
// and hourly/daily forecasts by coordinates.
type Client struct {
	baseURL    string
	httpClient *http.Client
	apiKey     string
}

// ClientOption is a function that configures a Client
type ClientOption func(*Client)

// NewClient creates a new weather API client
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithTimeout sets a custom timeout for the HTTP client
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithAPIKey sets an API key for authentication
func WithAPIKey(apiKey string) ClientOption {
	return func(c *Client) {
		c.apiKey = apiKey
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// doRequest performs an HTTP GET and handles common errors
func (c *Client) doRequest(ctx context.Context, path string, params url.Values) (*http.Response, error) {
	if c.apiKey != "" {
		params.Set("api_key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("weather API error (status %d): %s", resp.StatusCode, string(body))
	}

	return resp, nil
}

func coordParams(lat, lon float64) url.Values {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%.4f", lat))
	params.Set("lon", fmt.Sprintf("%.4f", lon))
	return params
}

// Current retrieves the latest observation for a location.
func (c *Client) Current(ctx context.Context, lat, lon float64) (*models.WeatherObservation, error) {
	resp, err := c.doRequest(ctx, "/v1/current", coordParams(lat, lon))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var obs models.WeatherObservation
	if err := json.NewDecoder(resp.Body).Decode(&obs); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &obs, nil
}

// HourlyForecast retrieves up to hours hourly forecast points.
func (c *Client) HourlyForecast(ctx context.Context, lat, lon float64, hours int) ([]models.ForecastPoint, error) {
	params := coordParams(lat, lon)
	params.Set("hours", fmt.Sprintf("%d", hours))

	resp, err := c.doRequest(ctx, "/v1/forecast/hourly", params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var points []models.ForecastPoint
	if err := json.NewDecoder(resp.Body).Decode(&points); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return points, nil
}

// DailyForecast retrieves up to days daily forecast points.
func (c *Client) DailyForecast(ctx context.Context, lat, lon float64, days int) ([]models.ForecastPoint, error) {
	params := coordParams(lat, lon)
	params.Set("days", fmt.Sprintf("%d", days))

	resp, err := c.doRequest(ctx, "/v1/forecast/daily", params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var points []models.ForecastPoint
	if err := json.NewDecoder(resp.Body).Decode(&points); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return points, nil
}
