package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/cricketiq/prediction-api/internal/models"
)

const (
	// DefaultBaseURL is the OpenWeatherMap current weather API
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

	defaultRateLimit = 1.0 // free tier allows 60 calls per minute
	defaultBurst     = 5
)

var (
	// ErrNoLocation is returned when asked for weather without a location
	ErrNoLocation = errors.New("openweather: location is required")
	// ErrNoAPIKey is returned when the client has no API key configured
	ErrNoAPIKey = errors.New("openweather: api key not configured")
)

// Client is an OpenWeatherMap client. Every method returns usable weather,
// falling back to models.DefaultWeather alongside any error.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithAPIKey sets the appid
func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithRateLimit sets custom rate limiting
func WithRateLimit(rps float64, burst int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// NewClient creates a new OpenWeatherMap client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(defaultRateLimit), defaultBurst),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type currentWeather struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		ID   int    `json:"id"`
		Icon string `json:"icon"`
	} `json:"weather"`
}

// ConditionForID maps an OpenWeatherMap condition id onto a WeatherCondition
func ConditionForID(id int) models.WeatherCondition {
	switch {
	case id >= 200 && id < 300:
		return models.ConditionThunderstorm
	case id >= 300 && id < 400:
		return models.ConditionDrizzle
	case id >= 500 && id < 600:
		return models.ConditionRainy
	case id >= 600 && id < 700:
		return models.ConditionSnow
	case id >= 700 && id < 800:
		return models.ConditionFoggy
	case id > 800:
		return models.ConditionCloudy
	default:
		return models.ConditionSunny
	}
}

// GetWeather fetches current conditions for "location,country"
func (c *Client) GetWeather(ctx context.Context, location, country string) (models.Weather, error) {
	if location == "" {
		return models.DefaultWeather, ErrNoLocation
	}
	if c.apiKey == "" {
		return models.DefaultWeather, ErrNoAPIKey
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return models.DefaultWeather, fmt.Errorf("rate limiter: %w", err)
	}

	query := location
	if country != "" {
		query += "," + country
	}
	params := url.Values{}
	params.Set("q", query)
	params.Set("units", "metric")
	params.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/weather?"+params.Encode(), nil)
	if err != nil {
		return models.DefaultWeather, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.DefaultWeather, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return models.DefaultWeather, fmt.Errorf("weather api error %d: %s", resp.StatusCode, string(body))
	}

	var data currentWeather
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return models.DefaultWeather, fmt.Errorf("decode response: %w", err)
	}
	if len(data.Weather) == 0 {
		return models.DefaultWeather, fmt.Errorf("weather api returned no conditions for %q", query)
	}

	return models.Weather{
		Temperature: math.Round(data.Main.Temp),
		Humidity:    data.Main.Humidity,
		Condition:   ConditionForID(data.Weather[0].ID),
	}, nil
}
