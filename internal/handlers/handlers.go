package handlers

import (
	"context"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/cricketiq/prediction-api/internal/logic"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// PostgresPinger is the part of the Postgres pool the readiness probe needs
type PostgresPinger interface {
	Ping(ctx context.Context) error
}

// RedisPinger is the part of the Redis client the readiness probe needs
type RedisPinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

// PredictionLog reports the depth of the asynchronous prediction log
type PredictionLog interface {
	QueueDepth() int
}

// LiveMatchSource serves the live match endpoints
type LiveMatchSource interface {
	logic.LiveMatchDataSource
	logic.LiveMatchLister
}

type Config struct {
	Postgres      PostgresPinger
	Redis         RedisPinger
	ClickHouse    driver.Conn   // optional
	PredictionLog PredictionLog // optional
	Logger        *zap.Logger
	// Services
	Predictions logic.PredictionService
	Venues      logic.VenueDirectory
	TeamStats   logic.TeamStatsSource
	Weather     logic.WeatherSource
	LiveMatches LiveMatchSource
	Sentiment   logic.SentimentScorer // optional
}

type Handler struct {
	pg          PostgresPinger
	redis       RedisPinger
	ch          driver.Conn
	predLog     PredictionLog
	logger      *zap.SugaredLogger
	validator   *validator.Validate
	predictions logic.PredictionService
	venues      logic.VenueDirectory
	teamStats   logic.TeamStatsSource
	weather     logic.WeatherSource
	liveMatches LiveMatchSource
	sentiment   logic.SentimentScorer
}

func New(cfg Config) *Handler {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Handler{
		pg:          cfg.Postgres,
		redis:       cfg.Redis,
		ch:          cfg.ClickHouse,
		predLog:     cfg.PredictionLog,
		logger:      cfg.Logger.Sugar(),
		validator:   validator.New(),
		predictions: cfg.Predictions,
		venues:      cfg.Venues,
		teamStats:   cfg.TeamStats,
		weather:     cfg.Weather,
		liveMatches: cfg.LiveMatches,
		sentiment:   cfg.Sentiment,
	}
}
