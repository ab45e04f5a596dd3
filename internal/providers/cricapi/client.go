package cricapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/cricketiq/prediction-api/internal/models"
)

const (
	// DefaultBaseURL is the CricAPI v1 base URL
	DefaultBaseURL = "https://api.cricapi.com/v1"

	defaultRateLimit = 5.0 // requests per second
	defaultBurst     = 5
)

// ErrNoData is returned when the API answers without a data payload
var ErrNoData = errors.New("cricapi: no data in response")

// Client is a CricAPI client
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

// WithAPIKey sets the API key sent with every request
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

// NewClient creates a new CricAPI client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(defaultRateLimit), defaultBurst),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type envelope struct {
	Status string          `json:"status"`
	Reason string          `json:"reason,omitempty"`
	Data   json.RawMessage `json:"data"`
}

// matchStats is the wire shape of the match_stats endpoint
type matchStats struct {
	MatchID      string `json:"matchId"`
	TeamHomeName string `json:"teamHomeName"`
	TeamAwayName string `json:"teamAwayName"`
	RecentForm   map[string]struct {
		MatchesWon   int `json:"matchesWon"`
		TotalMatches int `json:"totalMatches"`
	} `json:"recentForm"`
	H2H struct {
		TeamHomeWins int `json:"teamHomeWins"`
		TeamAwayWins int `json:"teamAwayWins"`
		NoResult     int `json:"noResult"`
		Total        int `json:"total"`
	} `json:"h2h"`
	Venue *struct {
		Name              string `json:"name"`
		Location          string `json:"location"`
		HomeTeamAdvantage int    `json:"homeTeamAdvantage"`
	} `json:"venue"`
	KeyPlayers map[string][]struct {
		Name       string   `json:"name"`
		Role       string   `json:"role"`
		BattingAvg *float64 `json:"battingAvg"`
		BowlingAvg *float64 `json:"bowlingAvg"`
		RecentForm float64  `json:"recentForm"`
	} `json:"keyPlayers"`
}

func (m *matchStats) toModel() *models.LiveMatchStats {
	stats := &models.LiveMatchStats{
		MatchID:   m.MatchID,
		TeamAName: m.TeamHomeName,
		TeamBName: m.TeamAwayName,
		HeadToHead: models.HeadToHead{
			TeamAWins: m.H2H.TeamHomeWins,
			TeamBWins: m.H2H.TeamAwayWins,
			NoResult:  m.H2H.NoResult,
			Total:     m.H2H.Total,
		},
		RecentForm: make(map[string]models.FormRecord, len(m.RecentForm)),
		KeyPlayers: make(map[string][]models.KeyPlayer, len(m.KeyPlayers)),
	}

	for team, f := range m.RecentForm {
		stats.RecentForm[team] = models.FormRecord{MatchesWon: f.MatchesWon, TotalMatches: f.TotalMatches}
	}
	for team, players := range m.KeyPlayers {
		out := make([]models.KeyPlayer, 0, len(players))
		for _, p := range players {
			out = append(out, models.KeyPlayer{
				Name:             p.Name,
				Role:             p.Role,
				BattingAvg:       p.BattingAvg,
				BowlingAvg:       p.BowlingAvg,
				RecentFormRating: p.RecentForm,
			})
		}
		stats.KeyPlayers[team] = out
	}
	if m.Venue != nil {
		stats.Venue = &models.LiveVenue{
			Name:              m.Venue.Name,
			Location:          m.Venue.Location,
			HomeTeamAdvantage: m.Venue.HomeTeamAdvantage,
		}
	}
	return stats
}

// GetLiveStats fetches head-to-head, form and key player data for a match
func (c *Client) GetLiveStats(ctx context.Context, matchID string) (*models.LiveMatchStats, error) {
	params := url.Values{}
	params.Set("id", matchID)

	var raw matchStats
	if err := c.get(ctx, "/match_stats", params, &raw); err != nil {
		return nil, err
	}
	if raw.MatchID == "" {
		raw.MatchID = matchID
	}
	return raw.toModel(), nil
}

// CurrentMatches lists matches in progress or about to start
func (c *Client) CurrentMatches(ctx context.Context) ([]models.LiveMatch, error) {
	params := url.Values{}
	params.Set("offset", "0")

	var matches []models.LiveMatch
	if err := c.get(ctx, "/currentMatches", params, &matches); err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []models.LiveMatch{}
	}
	return matches, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	// Wait for rate limiter
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	if params == nil {
		params = url.Values{}
	}
	if c.apiKey != "" {
		params.Set("apikey", c.apiKey)
	}
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("api error %d: %s", resp.StatusCode, string(body))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		if env.Reason != "" {
			return fmt.Errorf("%w: %s", ErrNoData, env.Reason)
		}
		return ErrNoData
	}
	if err := json.Unmarshal(env.Data, result); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}
