package logic

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cricketiq/prediction-api/internal/models"
)

// DefaultTeamStats is used when a team's stats are neither supplied nor known
var DefaultTeamStats = models.TeamStats{
	RecentWins: 2,
	BattingAvg: 28.5,
	BowlingAvg: 30.2,
}

var validate = validator.New()

// ValidateInput checks a prediction input at the caller boundary. All
// failures wrap ErrInvalidInput.
func ValidateInput(input *models.PredictionInput) error {
	if err := validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s", ErrInvalidInput, describeValidationError(verrs[0]))
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

func describeValidationError(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "nefield":
		return "teams must be different"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

// PredictionServiceConfig wires the prediction boundary to its collaborators.
// Everything except Engine is optional.
type PredictionServiceConfig struct {
	Engine    *Engine
	Venues    VenueDirectory
	Weather   WeatherSource
	TeamStats TeamStatsSource
	Recorder  PredictionRecorder
	Logger    *zap.Logger
}

type predictionService struct {
	engine    *Engine
	venues    VenueDirectory
	weather   WeatherSource
	teamStats TeamStatsSource
	recorder  PredictionRecorder
	logger    *zap.SugaredLogger
	now       func() time.Time
}

// NewPredictionService creates the caller-facing prediction service
func NewPredictionService(cfg PredictionServiceConfig) PredictionService {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &predictionService{
		engine:    cfg.Engine,
		venues:    cfg.Venues,
		weather:   cfg.Weather,
		teamStats: cfg.TeamStats,
		recorder:  cfg.Recorder,
		logger:    cfg.Logger.Sugar(),
		now:       time.Now,
	}
}

// Predict resolves any missing inputs, validates them and runs the engine
func (s *predictionService) Predict(ctx context.Context, req *models.PredictionRequest) (*models.PredictionResult, error) {
	input := &models.PredictionInput{
		Team1:        strings.TrimSpace(req.Team1),
		Team2:        strings.TrimSpace(req.Team2),
		Venue:        strings.TrimSpace(req.Venue),
		MatchFormat:  models.MatchFormat(strings.ToLower(strings.TrimSpace(string(req.MatchFormat)))),
		VenueDetails: req.VenueDetails,
		UseSentiment: req.UseSentiment,
		MatchID:      strings.TrimSpace(req.MatchID),
	}

	// Reject bad identities before spending any lookups on them
	if err := validateIdentity(input); err != nil {
		predictionsRejected.Inc()
		return nil, err
	}

	if input.VenueDetails == nil {
		input.VenueDetails = s.lookupVenue(ctx, input.Venue)
	}

	weatherFetched := false
	if req.Weather != nil {
		input.Weather = *req.Weather
	} else {
		input.Weather, weatherFetched = s.fetchWeather(ctx, input)
	}

	input.Team1Stats = s.resolveStats(ctx, input.Team1, req.Team1Stats)
	input.Team2Stats = s.resolveStats(ctx, input.Team2, req.Team2Stats)

	if err := ValidateInput(input); err != nil {
		predictionsRejected.Inc()
		return nil, err
	}

	result, err := s.engine.Predict(ctx, input)
	if err != nil {
		return nil, err
	}

	result.ID = uuid.New().String()
	result.CreatedAt = s.now().UTC()
	result.WeatherFetched = weatherFetched

	if s.recorder != nil && !s.recorder.Record(result) {
		s.logger.Warnw("Prediction log queue full, dropping record", "predictionID", result.ID)
	}

	s.logger.Infow("Prediction completed",
		"predictionID", result.ID,
		"team1", result.Team1,
		"team2", result.Team2,
		"winner", result.Winner,
		"probability", result.Probability,
		"liveStatsUsed", result.LiveStatsUsed,
		"sentimentUsed", result.SentimentUsed,
	)

	return result, nil
}

func validateIdentity(input *models.PredictionInput) error {
	switch {
	case input.Team1 == "" || input.Team2 == "":
		return fmt.Errorf("%w: both teams are required", ErrInvalidInput)
	case strings.EqualFold(input.Team1, input.Team2):
		return fmt.Errorf("%w: teams must be different", ErrInvalidInput)
	case input.Venue == "":
		return fmt.Errorf("%w: venue is required", ErrInvalidInput)
	}
	return nil
}

func (s *predictionService) lookupVenue(ctx context.Context, name string) *models.VenueProfile {
	if s.venues == nil {
		return nil
	}
	venue, err := s.venues.Lookup(ctx, name)
	switch {
	case errors.Is(err, ErrNotFound):
		enrichmentTotal.WithLabelValues(sourceVenue, outcomeUnavailable).Inc()
		return nil
	case err != nil:
		s.logger.Warnw("Venue lookup failed, predicting without ground details", "venue", name, "error", err)
		enrichmentTotal.WithLabelValues(sourceVenue, outcomeFailed).Inc()
		return nil
	}
	enrichmentTotal.WithLabelValues(sourceVenue, outcomeApplied).Inc()
	return venue
}

func (s *predictionService) fetchWeather(ctx context.Context, input *models.PredictionInput) (models.Weather, bool) {
	if s.weather == nil {
		return models.DefaultWeather, false
	}

	location, country := input.Venue, ""
	if v := input.VenueDetails; v != nil {
		location, country = v.Name, v.Country
	}

	weather, err := s.weather.GetWeather(ctx, location, country)
	if err != nil {
		s.logger.Warnw("Weather unavailable, using fallback conditions", "location", location, "error", err)
		enrichmentTotal.WithLabelValues(sourceWeather, outcomeFailed).Inc()
		return models.DefaultWeather, false
	}
	enrichmentTotal.WithLabelValues(sourceWeather, outcomeApplied).Inc()
	return weather, true
}

func (s *predictionService) resolveStats(ctx context.Context, team string, supplied *models.TeamStats) models.TeamStats {
	if supplied != nil {
		return *supplied
	}
	if s.teamStats == nil {
		return DefaultTeamStats
	}
	snapshot, err := s.teamStats.Fetch(ctx, team)
	if err != nil {
		s.logger.Warnw("Team stats unavailable, using defaults", "team", team, "error", err)
		enrichmentTotal.WithLabelValues(sourceTeamStats, outcomeFailed).Inc()
		return DefaultTeamStats
	}
	enrichmentTotal.WithLabelValues(sourceTeamStats, outcomeApplied).Inc()
	return snapshot.Stats
}
