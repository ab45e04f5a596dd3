package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/swaggo/swag"
	"go.uber.org/zap"

	"github.com/cricketiq/prediction-api/docs"
	"github.com/cricketiq/prediction-api/internal/cache"
	"github.com/cricketiq/prediction-api/internal/config"
	"github.com/cricketiq/prediction-api/internal/handlers"
	"github.com/cricketiq/prediction-api/internal/logic"
	"github.com/cricketiq/prediction-api/internal/providers/cricapi"
	"github.com/cricketiq/prediction-api/internal/providers/openweather"
	"github.com/cricketiq/prediction-api/internal/providers/sentiment"
	"github.com/cricketiq/prediction-api/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Server exited with error", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func run(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// PostgreSQL
	pg, err := pgxpool.New(ctx, cfg.PostgresURL)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pg.Close()
	if err := pg.Ping(ctx); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}
	log.Info("Connected to PostgreSQL")

	// Redis
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(redisOpts)
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	log.Info("Connected to Redis")

	tables, err := logic.LoadAffinityTables(cfg.AffinityFile)
	if err != nil {
		return err
	}

	// Providers
	cricket := cricapi.NewClient(
		cricapi.WithBaseURL(cfg.CricAPIBaseURL),
		cricapi.WithAPIKey(cfg.CricAPIKey),
		cricapi.WithRateLimit(cfg.ProviderRateLimitPerSecond, cfg.ProviderRateLimitBurst),
	)
	liveMatches := cache.NewLiveStatsCache(rdb, cricket, cfg.LiveStatsCacheTTL, logger)

	weather := openweather.NewClient(
		openweather.WithBaseURL(cfg.OpenWeatherBaseURL),
		openweather.WithAPIKey(cfg.OpenWeatherAPIKey),
		openweather.WithRateLimit(cfg.ProviderRateLimitPerSecond, cfg.ProviderRateLimitBurst),
	)

	scorerOpts := []sentiment.Option{
		sentiment.WithToken(cfg.SentimentToken),
		sentiment.WithRateLimit(cfg.ProviderRateLimitPerSecond, cfg.ProviderRateLimitBurst),
		sentiment.WithLogger(logger),
	}
	if cfg.SentimentURL != "" {
		scorerOpts = append(scorerOpts, sentiment.WithURL(cfg.SentimentURL))
	}
	scorer := sentiment.NewScorer(scorerOpts...)

	engine := logic.NewEngine(logic.EngineConfig{
		Tables:            tables,
		LiveStats:         liveMatches,
		Sentiment:         scorer,
		EnrichmentTimeout: cfg.EnrichmentTimeout,
		Logger:            logger,
	})

	serviceCfg := logic.PredictionServiceConfig{
		Engine:    engine,
		Venues:    logic.NewVenueDirectory(pg),
		Weather:   weather,
		TeamStats: logic.NewTeamStatsService(pg, rdb, cfg.TeamStatsCacheTTL, logger),
		Logger:    logger,
	}
	handlerCfg := handlers.Config{
		Postgres:    pg,
		Redis:       rdb,
		Logger:      logger,
		Venues:      serviceCfg.Venues,
		TeamStats:   serviceCfg.TeamStats,
		Weather:     weather,
		LiveMatches: liveMatches,
		Sentiment:   scorer,
	}

	// ClickHouse prediction log (optional)
	if cfg.ClickHouseURL != "" {
		chOpts, err := clickhouse.ParseDSN(cfg.ClickHouseURL)
		if err != nil {
			return fmt.Errorf("parse clickhouse url: %w", err)
		}
		ch, err := clickhouse.Open(chOpts)
		if err != nil {
			return fmt.Errorf("connect clickhouse: %w", err)
		}
		defer ch.Close()
		if err := ch.Ping(ctx); err != nil {
			return fmt.Errorf("ping clickhouse: %w", err)
		}
		if err := worker.EnsureSchema(ctx, ch, logger); err != nil {
			return fmt.Errorf("prediction log schema: %w", err)
		}
		log.Info("Connected to ClickHouse")

		predictionLog := worker.NewPool(worker.PoolConfig{
			WorkerCount:   cfg.WorkerCount,
			QueueSize:     cfg.QueueSize,
			BatchSize:     cfg.BatchSize,
			FlushInterval: cfg.FlushInterval,
			ClickHouse:    ch,
			Logger:        logger,
		})
		predictionLog.Start(context.Background())
		defer predictionLog.Stop()

		serviceCfg.Recorder = predictionLog
		handlerCfg.ClickHouse = ch
		handlerCfg.PredictionLog = predictionLog
	} else {
		log.Warn("CLICKHOUSE_URL not set, prediction log disabled")
	}

	handlerCfg.Predictions = logic.NewPredictionService(serviceCfg)
	h := handlers.New(handlerCfg)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      newRouter(cfg, h),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Infow("Cricket prediction API listening", "addr", srv.Addr, "env", cfg.Env)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
	case <-ctx.Done():
		log.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	log.Info("Server stopped")
	return nil
}

func newRouter(cfg *config.Config, h *handlers.Handler) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(doc))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/predictions", h.CreatePrediction)

		r.Get("/venues", h.ListVenues)
		r.Get("/venues/{name}", h.GetVenue)

		r.Get("/teams", h.ListTeams)
		r.Get("/teams/{team}/stats", h.GetTeamStats)

		r.Get("/weather", h.GetWeather)

		r.Get("/matches/live", h.ListLiveMatches)
		r.Get("/matches/{matchId}/stats", h.GetMatchStats)

		r.Get("/sentiment/status", h.GetSentimentStatus)
		r.Post("/sentiment/initialize", h.InitializeSentiment)
	})

	return r
}
