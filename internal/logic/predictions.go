package logic

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cricketiq/prediction-api/internal/models"
)

const (
	formatBonus = 5.0

	// DefaultEnrichmentTimeout bounds each optional enrichment step
	DefaultEnrichmentTimeout = 3 * time.Second
)

// EngineConfig configures the prediction engine
type EngineConfig struct {
	Tables            *AffinityTables
	LiveStats         LiveMatchDataSource // optional
	Sentiment         SentimentScorer     // optional
	EnrichmentTimeout time.Duration
	Logger            *zap.Logger
}

// Engine is the deterministic scoring pipeline. It holds no per-call state
// and is safe for concurrent use.
type Engine struct {
	tables    *AffinityTables
	live      LiveMatchDataSource
	sentiment SentimentScorer
	timeout   time.Duration
	logger    *zap.SugaredLogger
}

// NewEngine creates a prediction engine
func NewEngine(cfg EngineConfig) *Engine {
	if cfg.Tables == nil {
		cfg.Tables = DefaultAffinityTables()
	}
	if cfg.EnrichmentTimeout <= 0 {
		cfg.EnrichmentTimeout = DefaultEnrichmentTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &Engine{
		tables:    cfg.Tables,
		live:      cfg.LiveStats,
		sentiment: cfg.Sentiment,
		timeout:   cfg.EnrichmentTimeout,
		logger:    cfg.Logger.Sugar(),
	}
}

// Tables returns the affinity tables the engine scores with
func (e *Engine) Tables() *AffinityTables {
	return e.tables
}

type liveOutcome struct {
	stats   *models.LiveMatchStats
	bonus   Bonus
	factors []models.PredictionFactor
}

type sentimentOutcome struct {
	used         bool
	team1, team2 float64
}

// Predict scores both teams and returns the ranked outcome. Input is assumed
// to be validated. Live stats and sentiment failures never fail the call;
// they are reported through the result flags. The only error is the caller's
// context being done, in which case no result is returned.
func (e *Engine) Predict(ctx context.Context, input *models.PredictionInput) (*models.PredictionResult, error) {
	start := time.Now()
	defer func() { predictionDuration.Observe(time.Since(start).Seconds()) }()

	team1, team2 := input.Team1, input.Team2

	// 1. Base strengths
	team1Score := EstimateStrength(input.Team1Stats, input.Weather)
	team2Score := EstimateStrength(input.Team2Stats, input.Weather)

	// 2. Named venue advantage
	if favored, ok := e.tables.NamedVenueAdvantage(input.Venue, team1, team2); ok {
		if favored == team1 {
			team1Score += NamedVenueBonus
		} else {
			team2Score += NamedVenueBonus
		}
	}

	// 3. Ground attributes
	if input.VenueDetails != nil {
		venue := e.tables.VenueFactors(input.VenueDetails, team1, team2, input.MatchFormat)
		team1Score += float64(venue.Team1)
		team2Score += float64(venue.Team2)
	}

	// 4. Format fit, each team checked on its own
	team1Score += formatFit(input.MatchFormat, input.Team1Stats, input.Team2Stats)
	team2Score += formatFit(input.MatchFormat, input.Team2Stats, input.Team1Stats)

	// 5 + 6. Optional enrichment, independent of each other
	var live liveOutcome
	var sentiment sentimentOutcome
	var g errgroup.Group
	if input.MatchID != "" {
		g.Go(func() error {
			live = e.fetchLiveStats(ctx, input)
			return nil
		})
	}
	if input.UseSentiment {
		g.Go(func() error {
			sentiment = e.scoreSentiment(ctx, input)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	team1Score += float64(live.bonus.Team1)
	team2Score += float64(live.bonus.Team2)
	if sentiment.used {
		team1Score += SentimentBonus(sentiment.team1)
		team2Score += SentimentBonus(sentiment.team2)
	}

	// 7 + 8. Normalize and pick the winner
	winner, probability := decideWinner(team1, team2, team1Share(team1Score, team2Score))

	// 9. Explain
	factors := ExplainFactors(e.tables, input, winner)
	factors = append(factors, live.factors...)

	winnerSide := "team2"
	if winner == team1 {
		winnerSide = "team1"
	}
	predictionsTotal.WithLabelValues(string(input.MatchFormat), winnerSide).Inc()

	return &models.PredictionResult{
		Winner:        winner,
		Probability:   probability,
		Team1:         team1,
		Team2:         team2,
		Venue:         input.Venue,
		MatchFormat:   input.MatchFormat,
		Factors:       factors,
		VenueDetails:  input.VenueDetails,
		Weather:       input.Weather,
		Team1Stats:    input.Team1Stats,
		Team2Stats:    input.Team2Stats,
		Team1Score:    team1Score,
		Team2Score:    team2Score,
		SentimentUsed: sentiment.used,
		LiveStatsUsed: live.stats != nil,
		MatchID:       input.MatchID,
		LiveData:      live.stats,
	}, nil
}

// formatFit returns the format bonus for a team given its opponent's stats
func formatFit(format models.MatchFormat, own, opponent models.TeamStats) float64 {
	switch format {
	case models.FormatTest:
		if own.BowlingAvg < opponent.BowlingAvg {
			return formatBonus
		}
	case models.FormatT20:
		if own.BattingAvg > 35 {
			return formatBonus
		}
	}
	return 0
}

// team1Share returns team1's rounded percentage of the combined score. A zero
// (or non-finite) total is an even split.
func team1Share(team1Score, team2Score float64) int {
	total := team1Score + team2Score
	if total == 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return 50
	}
	share := roundInt(team1Score / total * 100)
	return max(0, min(100, share))
}

// decideWinner applies the strict-greater-than rule: team1 wins only with a
// share above 50, so an exact 50 goes to team2 at 50.
func decideWinner(team1, team2 string, share int) (string, int) {
	if share > 50 {
		return team1, share
	}
	return team2, 100 - share
}

func (e *Engine) fetchLiveStats(ctx context.Context, input *models.PredictionInput) liveOutcome {
	if e.live == nil {
		enrichmentTotal.WithLabelValues(sourceLiveStats, outcomeUnavailable).Inc()
		return liveOutcome{}
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	stats, err := e.live.GetLiveStats(ctx, input.MatchID)
	if err != nil {
		e.logger.Warnw("Live stats unavailable, continuing without", "matchID", input.MatchID, "error", err)
		enrichmentTotal.WithLabelValues(sourceLiveStats, outcomeFailed).Inc()
		return liveOutcome{}
	}
	if stats == nil {
		enrichmentTotal.WithLabelValues(sourceLiveStats, outcomeUnavailable).Inc()
		return liveOutcome{}
	}

	enrichmentTotal.WithLabelValues(sourceLiveStats, outcomeApplied).Inc()
	return liveOutcome{
		stats:   stats,
		bonus:   LiveBonus(stats, input.Team1, input.Team2),
		factors: LiveFactors(stats, input.Team1, input.Team2),
	}
}

func (e *Engine) scoreSentiment(ctx context.Context, input *models.PredictionInput) sentimentOutcome {
	if e.sentiment == nil {
		enrichmentTotal.WithLabelValues(sourceSentiment, outcomeUnavailable).Inc()
		return sentimentOutcome{}
	}

	// Ask for the model once; never wait for it to finish loading
	e.sentiment.Initialize()
	if status := e.sentiment.Status(); !status.Loaded() {
		e.logger.Debugw("Sentiment scorer not ready, skipping", "state", status.State.String())
		enrichmentTotal.WithLabelValues(sourceSentiment, outcomeNotReady).Inc()
		return sentimentOutcome{}
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	team1, err := e.teamConfidence(ctx, input.Team1, input.Team1Stats)
	if err != nil {
		e.logger.Warnw("Sentiment scoring failed, skipping", "team", input.Team1, "error", err)
		enrichmentTotal.WithLabelValues(sourceSentiment, outcomeFailed).Inc()
		return sentimentOutcome{}
	}
	team2, err := e.teamConfidence(ctx, input.Team2, input.Team2Stats)
	if err != nil {
		e.logger.Warnw("Sentiment scoring failed, skipping", "team", input.Team2, "error", err)
		enrichmentTotal.WithLabelValues(sourceSentiment, outcomeFailed).Inc()
		return sentimentOutcome{}
	}

	enrichmentTotal.WithLabelValues(sourceSentiment, outcomeApplied).Inc()
	return sentimentOutcome{used: true, team1: team1, team2: team2}
}

func (e *Engine) teamConfidence(ctx context.Context, team string, stats models.TeamStats) (float64, error) {
	text := DescribeTeam(team, stats.RecentWins, SentimentWindow, stats.BattingAvg, stats.BowlingAvg)
	result, err := e.sentiment.Score(ctx, text)
	if err != nil {
		return 0, err
	}
	return SentimentConfidence(result), nil
}
