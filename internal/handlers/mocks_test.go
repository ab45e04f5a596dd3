package handlers

import (
	"context"
	"errors"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/redis/go-redis/v9"

	"github.com/cricketiq/prediction-api/internal/models"
)

// MockPredictionService
type MockPredictionService struct {
	PredictFunc func(ctx context.Context, req *models.PredictionRequest) (*models.PredictionResult, error)
}

func (m *MockPredictionService) Predict(ctx context.Context, req *models.PredictionRequest) (*models.PredictionResult, error) {
	if m.PredictFunc != nil {
		return m.PredictFunc(ctx, req)
	}
	return &models.PredictionResult{}, nil
}

// MockVenueDirectory
type MockVenueDirectory struct {
	LookupFunc func(ctx context.Context, name string) (*models.VenueProfile, error)
	ListFunc   func(ctx context.Context, country string) ([]models.VenueProfile, error)
}

func (m *MockVenueDirectory) Lookup(ctx context.Context, name string) (*models.VenueProfile, error) {
	if m.LookupFunc != nil {
		return m.LookupFunc(ctx, name)
	}
	return &models.VenueProfile{Name: name}, nil
}

func (m *MockVenueDirectory) List(ctx context.Context, country string) ([]models.VenueProfile, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, country)
	}
	return []models.VenueProfile{}, nil
}

// MockTeamStatsSource
type MockTeamStatsSource struct {
	FetchFunc func(ctx context.Context, team string) (*models.TeamStatsSnapshot, error)
	TeamsFunc func(ctx context.Context) ([]string, error)
}

func (m *MockTeamStatsSource) Fetch(ctx context.Context, team string) (*models.TeamStatsSnapshot, error) {
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, team)
	}
	return &models.TeamStatsSnapshot{Team: team}, nil
}

func (m *MockTeamStatsSource) Teams(ctx context.Context) ([]string, error) {
	if m.TeamsFunc != nil {
		return m.TeamsFunc(ctx)
	}
	return nil, nil
}

// MockWeatherSource
type MockWeatherSource struct {
	GetWeatherFunc func(ctx context.Context, location, country string) (models.Weather, error)
}

func (m *MockWeatherSource) GetWeather(ctx context.Context, location, country string) (models.Weather, error) {
	if m.GetWeatherFunc != nil {
		return m.GetWeatherFunc(ctx, location, country)
	}
	return models.DefaultWeather, nil
}

// MockLiveMatchSource
type MockLiveMatchSource struct {
	GetLiveStatsFunc   func(ctx context.Context, matchID string) (*models.LiveMatchStats, error)
	CurrentMatchesFunc func(ctx context.Context) ([]models.LiveMatch, error)
}

func (m *MockLiveMatchSource) GetLiveStats(ctx context.Context, matchID string) (*models.LiveMatchStats, error) {
	if m.GetLiveStatsFunc != nil {
		return m.GetLiveStatsFunc(ctx, matchID)
	}
	return nil, nil
}

func (m *MockLiveMatchSource) CurrentMatches(ctx context.Context) ([]models.LiveMatch, error) {
	if m.CurrentMatchesFunc != nil {
		return m.CurrentMatchesFunc(ctx)
	}
	return nil, nil
}

// MockScorer
type MockScorer struct {
	State           models.ScorerState
	Err             error
	InitializeCalls int
}

func (m *MockScorer) Status() models.ScorerStatus {
	return models.ScorerStatus{State: m.State, Err: m.Err}
}

func (m *MockScorer) Initialize() {
	m.InitializeCalls++
	if m.State == models.ScorerUnloaded || m.State == models.ScorerErrored {
		m.State, m.Err = models.ScorerLoading, nil
	}
}

func (m *MockScorer) Score(ctx context.Context, text string) (models.SentimentResult, error) {
	return models.SentimentResult{}, errors.New("not implemented")
}

// Readiness mocks

type MockPinger struct {
	Err error
}

func (m *MockPinger) Ping(ctx context.Context) error { return m.Err }

type MockRedisPinger struct {
	Err error
}

func (m *MockRedisPinger) Ping(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", m.Err)
}

type MockClickHouseConn struct {
	driver.Conn
	PingErr error
}

func (m *MockClickHouseConn) Ping(ctx context.Context) error { return m.PingErr }

type MockPredictionLog struct {
	Depth int
}

func (m *MockPredictionLog) QueueDepth() int { return m.Depth }
