// Package worker implements the buffered worker pool that logs finished
// predictions to ClickHouse. Recording never blocks the request path:
// - Load shedding when the queue is full
// - Batch inserts for efficient ClickHouse writes
// - Graceful shutdown with flush guarantees

package worker

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/cricketiq/prediction-api/internal/models"
)

// Prometheus metrics
var (
	predictionsQueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cricket_prediction_log_queued_total",
		Help: "Total number of predictions queued for logging",
	})

	predictionsLogged = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cricket_prediction_log_written_total",
		Help: "Total number of predictions written to ClickHouse",
	})

	predictionsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cricket_prediction_log_failed_total",
		Help: "Total number of predictions that failed to be written",
	})

	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "cricket_prediction_log_queue_depth",
		Help: "Current depth of the prediction log queue",
	})

	batchInsertDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "cricket_prediction_log_batch_insert_duration_seconds",
		Help:    "Duration of batch inserts to ClickHouse",
		Buckets: prometheus.DefBuckets,
	})

	predictionsLoadShed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cricket_prediction_log_load_shed_total",
		Help: "Total number of predictions dropped due to load shedding",
	})
)

const insertPredictions = `
	INSERT INTO cricket.predictions (
		prediction_id, created_at, match_id, team1, team2, venue, match_format,
		winner, probability, team1_score, team2_score,
		weather_condition, temperature, humidity,
		live_stats_used, sentiment_used, weather_fetched, factors
	)
`

// Job represents a unit of work for the worker pool
type Job struct {
	Result    *models.PredictionResult
	Timestamp time.Time
}

// PoolConfig configures the worker pool
type PoolConfig struct {
	WorkerCount   int
	QueueSize     int
	BatchSize     int
	FlushInterval time.Duration
	ClickHouse    driver.Conn
	Logger        *zap.Logger
}

// Pool manages a pool of workers that batch predictions into ClickHouse
type Pool struct {
	config   PoolConfig
	jobQueue chan Job
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	logger   *zap.SugaredLogger
}

// NewPool creates a new worker pool
func NewPool(cfg PoolConfig) *Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 10000
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 500
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &Pool{
		config:   cfg,
		jobQueue: make(chan Job, cfg.QueueSize),
		logger:   cfg.Logger.Sugar(),
	}
}

// Start launches the worker goroutines
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.config.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	go p.reportQueueDepth()

	p.logger.Infow("Prediction log started",
		"workers", p.config.WorkerCount,
		"queueSize", p.config.QueueSize,
		"batchSize", p.config.BatchSize,
	)
}

// Stop drains the queue, flushes every worker and waits for them to exit
func (p *Pool) Stop() {
	p.logger.Info("Stopping prediction log...")

	close(p.jobQueue)
	p.wg.Wait()
	p.cancel()
	p.logger.Info("Prediction log stopped")
}

// Record queues a prediction for logging. It never blocks: when the queue is
// full, or the pool has stopped, the prediction is dropped and false returned.
func (p *Pool) Record(result *models.PredictionResult) (queued bool) {
	job := Job{
		Result:    result,
		Timestamp: time.Now(),
	}

	// Protect against sending on closed channel
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warnw("Failed to record prediction (pool stopped)", "error", r)
			predictionsLoadShed.Inc()
			queued = false
		}
	}()

	select {
	case p.jobQueue <- job:
		predictionsQueued.Inc()
		return true
	default:
		predictionsLoadShed.Inc()
		return false
	}
}

// QueueDepth returns current queue size
func (p *Pool) QueueDepth() int {
	return len(p.jobQueue)
}

// worker processes jobs from the queue in batches
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	batch := make([]Job, 0, p.config.BatchSize)
	ticker := time.NewTicker(p.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}

		start := time.Now()
		if err := p.processBatch(batch); err != nil {
			p.logger.Errorw("Prediction batch failed",
				"worker", id,
				"batchSize", len(batch),
				"error", err,
			)
			predictionsFailed.Add(float64(len(batch)))
		} else {
			p.logger.Debugw("Prediction batch written", "worker", id, "batchSize", len(batch), "duration", time.Since(start))
			predictionsLogged.Add(float64(len(batch)))
		}
		batchInsertDuration.Observe(time.Since(start).Seconds())

		batch = batch[:0]
	}

	for {
		select {
		case job, ok := <-p.jobQueue:
			if !ok {
				// Channel closed, flush remaining
				flush()
				return
			}

			batch = append(batch, job)
			if len(batch) >= p.config.BatchSize {
				flush()
			}

		case <-ticker.C:
			flush()
		}
	}
}

// processBatch writes a batch of predictions in a single insert
func (p *Pool) processBatch(batch []Job) error {
	if len(batch) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	chBatch, err := p.config.ClickHouse.PrepareBatch(ctx, insertPredictions)
	if err != nil {
		return err
	}

	for _, job := range batch {
		r := job.Result

		createdAt := r.CreatedAt
		if createdAt.IsZero() {
			createdAt = job.Timestamp
		}
		matchID := r.MatchID
		if matchID == "" && r.LiveData != nil {
			matchID = r.LiveData.MatchID
		}
		factors, _ := json.Marshal(r.Factors)

		err := chBatch.Append(
			parseOrGenerateUUID(r.ID),
			createdAt,
			matchID,
			r.Team1,
			r.Team2,
			r.Venue,
			string(r.MatchFormat),
			r.Winner,
			uint8(r.Probability),
			r.Team1Score,
			r.Team2Score,
			string(r.Weather.Condition),
			r.Weather.Temperature,
			r.Weather.Humidity,
			r.LiveStatsUsed,
			r.SentimentUsed,
			r.WeatherFetched,
			string(factors),
		)
		if err != nil {
			p.logger.Warnw("Failed to append prediction to batch", "error", err, "predictionID", r.ID)
			continue
		}
	}

	return chBatch.Send()
}

func (p *Pool) reportQueueDepth() {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			queueDepth.Set(float64(len(p.jobQueue)))
		case <-p.ctx.Done():
			return
		}
	}
}

func parseOrGenerateUUID(s string) uuid.UUID {
	if id, err := uuid.Parse(s); err == nil {
		return id
	}
	return uuid.New()
}
