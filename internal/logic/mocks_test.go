package logic

import (
	"context"
	"reflect"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"

	"github.com/cricketiq/prediction-api/internal/models"
)

// MockPgPool implements PgPool for testing
type MockPgPool struct {
	QueryFunc    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRowFunc func(ctx context.Context, sql string, args ...any) pgx.Row
}

func (m *MockPgPool) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, sql, args...)
	}
	return &MockPgRows{}, nil
}

func (m *MockPgPool) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if m.QueryRowFunc != nil {
		return m.QueryRowFunc(ctx, sql, args...)
	}
	return &MockPgRow{Err: pgx.ErrNoRows}
}

func (m *MockPgPool) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

// MockPgRows serves Data row by row
type MockPgRows struct {
	pgx.Rows
	Data  [][]any
	Index int
}

func (r *MockPgRows) Close()     {}
func (r *MockPgRows) Err() error { return nil }
func (r *MockPgRows) Next() bool {
	r.Index++
	return r.Index <= len(r.Data)
}
func (r *MockPgRows) Scan(dest ...any) error {
	return scanValues(r.Data[r.Index-1], dest)
}

// MockPgRow returns Err or scans Values
type MockPgRow struct {
	Values []any
	Err    error
}

func (r *MockPgRow) Scan(dest ...any) error {
	if r.Err != nil {
		return r.Err
	}
	return scanValues(r.Values, dest)
}

func scanValues(row []any, dest []any) error {
	for i, val := range row {
		if i < len(dest) {
			setDest(dest[i], val)
		}
	}
	return nil
}

// setDest assigns val to the pointer dest, converting numeric types and
// allocating for pointer destinations. A nil val leaves the zero value.
func setDest(dest any, val any) {
	v := reflect.ValueOf(dest).Elem()
	if val == nil {
		v.Set(reflect.Zero(v.Type()))
		return
	}
	valV := reflect.ValueOf(val)
	if v.Kind() == reflect.Ptr && valV.Type().ConvertibleTo(v.Type().Elem()) {
		p := reflect.New(v.Type().Elem())
		p.Elem().Set(valV.Convert(v.Type().Elem()))
		v.Set(p)
		return
	}
	v.Set(valV.Convert(v.Type()))
}

// MockRedis implements RedisClient for testing
type MockRedis struct {
	GetFunc func(ctx context.Context, key string) *redis.StringCmd
	SetFunc func(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

func (m *MockRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (m *MockRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, expiration)
	}
	return redis.NewStatusResult("OK", nil)
}

// MockLiveSource implements LiveMatchDataSource
type MockLiveSource struct {
	GetLiveStatsFunc func(ctx context.Context, matchID string) (*models.LiveMatchStats, error)
}

func (m *MockLiveSource) GetLiveStats(ctx context.Context, matchID string) (*models.LiveMatchStats, error) {
	return m.GetLiveStatsFunc(ctx, matchID)
}

// MockScorer implements SentimentScorer
type MockScorer struct {
	mu              sync.Mutex
	State           models.ScorerState
	InitializeCalls int
	ScoreFunc       func(ctx context.Context, text string) (models.SentimentResult, error)
}

func (m *MockScorer) Status() models.ScorerStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return models.ScorerStatus{State: m.State}
}

func (m *MockScorer) Initialize() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InitializeCalls++
}

func (m *MockScorer) Score(ctx context.Context, text string) (models.SentimentResult, error) {
	return m.ScoreFunc(ctx, text)
}

// MockVenues implements VenueDirectory
type MockVenues struct {
	LookupFunc func(ctx context.Context, name string) (*models.VenueProfile, error)
}

func (m *MockVenues) Lookup(ctx context.Context, name string) (*models.VenueProfile, error) {
	return m.LookupFunc(ctx, name)
}

func (m *MockVenues) List(ctx context.Context, country string) ([]models.VenueProfile, error) {
	return nil, nil
}

// MockWeather implements WeatherSource
type MockWeather struct {
	GetWeatherFunc func(ctx context.Context, location, country string) (models.Weather, error)
}

func (m *MockWeather) GetWeather(ctx context.Context, location, country string) (models.Weather, error) {
	return m.GetWeatherFunc(ctx, location, country)
}

// MockTeamStats implements TeamStatsSource
type MockTeamStats struct {
	FetchFunc func(ctx context.Context, team string) (*models.TeamStatsSnapshot, error)
}

func (m *MockTeamStats) Fetch(ctx context.Context, team string) (*models.TeamStatsSnapshot, error) {
	return m.FetchFunc(ctx, team)
}

func (m *MockTeamStats) Teams(ctx context.Context) ([]string, error) {
	return nil, nil
}

// MockRecorder implements PredictionRecorder
type MockRecorder struct {
	Records []*models.PredictionResult
	Full    bool
}

func (m *MockRecorder) Record(result *models.PredictionResult) bool {
	if m.Full {
		return false
	}
	m.Records = append(m.Records, result)
	return true
}
