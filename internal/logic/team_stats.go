package logic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/cricketiq/prediction-api/internal/models"
)

// Team stats data sources
const (
	DataSourcePostgres = "postgres"
	DataSourceBaseline = "baseline"
	DataSourceDefault  = "default"

	// DefaultTeamStatsTTL is how long a resolved snapshot stays in Redis
	DefaultTeamStatsTTL = 10 * time.Minute
)

type baselineTeam struct {
	name  string
	stats models.TeamStats
}

// Season baseline used when Postgres has no row for a team
var baselineTeams = []baselineTeam{
	{"India", models.TeamStats{RecentWins: 4, BattingAvg: 36.8, BowlingAvg: 26.2}},
	{"Australia", models.TeamStats{RecentWins: 3, BattingAvg: 33.5, BowlingAvg: 27.4}},
	{"England", models.TeamStats{RecentWins: 2, BattingAvg: 31.2, BowlingAvg: 29.8}},
	{"South Africa", models.TeamStats{RecentWins: 3, BattingAvg: 30.5, BowlingAvg: 28.1}},
	{"New Zealand", models.TeamStats{RecentWins: 3, BattingAvg: 32.7, BowlingAvg: 26.9}},
	{"Pakistan", models.TeamStats{RecentWins: 2, BattingAvg: 29.8, BowlingAvg: 31.2}},
	{"West Indies", models.TeamStats{RecentWins: 1, BattingAvg: 27.3, BowlingAvg: 33.5}},
	{"Sri Lanka", models.TeamStats{RecentWins: 2, BattingAvg: 28.6, BowlingAvg: 32.7}},
	{"Bangladesh", models.TeamStats{RecentWins: 1, BattingAvg: 26.4, BowlingAvg: 34.8}},
	{"Afghanistan", models.TeamStats{RecentWins: 2, BattingAvg: 25.9, BowlingAvg: 30.2}},
}

// BaselineTeamStats returns the built-in season baseline in table order
func BaselineTeamStats() []models.TeamStatsSnapshot {
	out := make([]models.TeamStatsSnapshot, 0, len(baselineTeams))
	for _, b := range baselineTeams {
		out = append(out, models.TeamStatsSnapshot{Team: b.name, Stats: b.stats, DataSource: DataSourceBaseline})
	}
	return out
}

type teamStatsService struct {
	pg     PgPool
	redis  RedisClient
	ttl    time.Duration
	logger *zap.SugaredLogger
	now    func() time.Time
}

// NewTeamStatsService creates a team stats source. Both stores are optional;
// without them every team resolves from the baseline table.
func NewTeamStatsService(pg PgPool, rdb RedisClient, ttl time.Duration, logger *zap.Logger) TeamStatsSource {
	if ttl <= 0 {
		ttl = DefaultTeamStatsTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &teamStatsService{
		pg:     pg,
		redis:  rdb,
		ttl:    ttl,
		logger: logger.Sugar(),
		now:    time.Now,
	}
}

func teamStatsKey(team string) string {
	return "team:" + strings.ToLower(team) + ":stats"
}

// Fetch resolves a team's stats from Redis, then Postgres, then the baseline
// table. Unknown teams get the default snapshot rather than an error.
func (s *teamStatsService) Fetch(ctx context.Context, team string) (*models.TeamStatsSnapshot, error) {
	team = strings.TrimSpace(team)
	if team == "" {
		return nil, fmt.Errorf("%w: team is required", ErrInvalidInput)
	}

	if cached, ok := s.fromCache(ctx, team); ok {
		return cached, nil
	}

	snapshot, err := s.fromPostgres(ctx, team)
	if err != nil && !errors.Is(err, ErrNotFound) {
		s.logger.Warnw("Team stats query failed, falling back to baseline", "team", team, "error", err)
	}
	if snapshot == nil {
		snapshot = s.fromBaseline(team)
	}

	if snapshot.DataSource != DataSourceDefault {
		s.store(ctx, snapshot)
	}
	return snapshot, nil
}

// Teams lists known teams, from Postgres when available
func (s *teamStatsService) Teams(ctx context.Context) ([]string, error) {
	if s.pg != nil {
		teams, err := s.teamsFromPostgres(ctx)
		if err == nil && len(teams) > 0 {
			return teams, nil
		}
		if err != nil {
			s.logger.Warnw("Team list query failed, using baseline", "error", err)
		}
	}

	teams := make([]string, len(baselineTeams))
	for i, b := range baselineTeams {
		teams[i] = b.name
	}
	return teams, nil
}

func (s *teamStatsService) fromCache(ctx context.Context, team string) (*models.TeamStatsSnapshot, bool) {
	if s.redis == nil {
		return nil, false
	}
	data, err := s.redis.Get(ctx, teamStatsKey(team)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warnw("Team stats cache read failed", "team", team, "error", err)
		}
		return nil, false
	}
	var snapshot models.TeamStatsSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		s.logger.Warnw("Discarding malformed cached team stats", "team", team, "error", err)
		return nil, false
	}
	return &snapshot, true
}

func (s *teamStatsService) store(ctx context.Context, snapshot *models.TeamStatsSnapshot) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, teamStatsKey(snapshot.Team), data, s.ttl).Err(); err != nil {
		s.logger.Warnw("Team stats cache write failed", "team", snapshot.Team, "error", err)
	}
}

func (s *teamStatsService) fromPostgres(ctx context.Context, team string) (*models.TeamStatsSnapshot, error) {
	if s.pg == nil {
		return nil, ErrNotFound
	}

	snapshot := &models.TeamStatsSnapshot{DataSource: DataSourcePostgres}
	err := s.pg.QueryRow(ctx, `
		SELECT team, recent_wins, batting_avg, bowling_avg, updated_at
		FROM team_stats
		WHERE lower(team) = lower($1)
	`, team).Scan(
		&snapshot.Team,
		&snapshot.Stats.RecentWins,
		&snapshot.Stats.BattingAvg,
		&snapshot.Stats.BowlingAvg,
		&snapshot.LastUpdated,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query team stats: %w", err)
	}
	return snapshot, nil
}

func (s *teamStatsService) fromBaseline(team string) *models.TeamStatsSnapshot {
	for _, b := range baselineTeams {
		if strings.EqualFold(b.name, team) {
			return &models.TeamStatsSnapshot{
				Team:        b.name,
				Stats:       b.stats,
				LastUpdated: s.now().UTC(),
				DataSource:  DataSourceBaseline,
			}
		}
	}
	return &models.TeamStatsSnapshot{
		Team:        team,
		Stats:       DefaultTeamStats,
		LastUpdated: s.now().UTC(),
		DataSource:  DataSourceDefault,
	}
}

func (s *teamStatsService) teamsFromPostgres(ctx context.Context) ([]string, error) {
	rows, err := s.pg.Query(ctx, `SELECT team FROM team_stats ORDER BY team ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	var teams []string
	for rows.Next() {
		var team string
		if err := rows.Scan(&team); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, team)
	}
	return teams, rows.Err()
}
