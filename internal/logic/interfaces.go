package logic

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"

	"github.com/cricketiq/prediction-api/internal/models"
)

var (
	// ErrInvalidInput is returned for predictions rejected at the boundary
	ErrInvalidInput = errors.New("invalid prediction input")
	// ErrNotFound is returned when a looked-up entity does not exist
	ErrNotFound = errors.New("not found")
)

// PgPool defines the interface for PostgreSQL connection pool
type PgPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// RedisClient defines the interface for Redis client
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// VenueDirectory resolves cricket grounds by name or country
type VenueDirectory interface {
	Lookup(ctx context.Context, name string) (*models.VenueProfile, error)
	List(ctx context.Context, country string) ([]models.VenueProfile, error)
}

// LiveMatchDataSource fetches live statistics for a match id
type LiveMatchDataSource interface {
	GetLiveStats(ctx context.Context, matchID string) (*models.LiveMatchStats, error)
}

// LiveMatchLister lists matches currently in progress or about to start
type LiveMatchLister interface {
	CurrentMatches(ctx context.Context) ([]models.LiveMatch, error)
}

// WeatherSource returns conditions for a location. Implementations always
// return usable weather (models.DefaultWeather on failure) alongside any error.
type WeatherSource interface {
	GetWeather(ctx context.Context, location, country string) (models.Weather, error)
}

// SentimentScorer is an external text-polarity scorer with its own readiness
// lifecycle. Initialize is idempotent and does not block.
type SentimentScorer interface {
	Status() models.ScorerStatus
	Initialize()
	Score(ctx context.Context, text string) (models.SentimentResult, error)
}

// TeamStatsSource serves season statistics per team
type TeamStatsSource interface {
	Fetch(ctx context.Context, team string) (*models.TeamStatsSnapshot, error)
	Teams(ctx context.Context) ([]string, error)
}

// PredictionRecorder accepts finished predictions for asynchronous logging
type PredictionRecorder interface {
	Record(result *models.PredictionResult) bool
}

// PredictionService is the caller-facing prediction boundary
type PredictionService interface {
	Predict(ctx context.Context, req *models.PredictionRequest) (*models.PredictionResult, error)
}
