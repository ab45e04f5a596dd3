package logic

import (
	"fmt"
	"sort"

	"github.com/cricketiq/prediction-api/internal/models"
)

// Factor weights. All distinct so a ranked list is strictly descending.
const (
	weightRecentForm     = 25
	weightBatting        = 20
	weightBowling        = 18
	weightHomeAdvantage  = 17
	weightT20Batting     = 16
	weightNamedVenue     = 15
	weightTestBowling    = 14
	weightGroundSize     = 13
	weightOvercastBowl   = 12
	weightSunnyBatting   = 11
	weightHistoricalBase = 10

	// MaxBaseFactors caps the ranked base factor list
	MaxBaseFactors = 5
	// minRuleFactors is the count below which the fallback factor is added
	minRuleFactors = 3
)

// ExplainFactors compares the winner against the loser rule by rule and
// returns at most MaxBaseFactors factors sorted by descending weight. The
// list is never empty.
func ExplainFactors(tables *AffinityTables, input *models.PredictionInput, winner string) []models.PredictionFactor {
	winnerStats, loserStats := input.Team1Stats, input.Team2Stats
	if winner != input.Team1 {
		winnerStats, loserStats = input.Team2Stats, input.Team1Stats
	}

	var factors []models.PredictionFactor
	add := func(weight int, format string, args ...any) {
		factors = append(factors, models.PredictionFactor{
			Label:  fmt.Sprintf(format, args...),
			Weight: weight,
		})
	}

	if winnerStats.RecentWins > loserStats.RecentWins {
		add(weightRecentForm, "%s has better recent form (%d vs %d wins)",
			winner, winnerStats.RecentWins, loserStats.RecentWins)
	}
	if winnerStats.BattingAvg > loserStats.BattingAvg {
		add(weightBatting, "%s has stronger batting lineup", winner)
	}
	if winnerStats.BowlingAvg < loserStats.BowlingAvg {
		add(weightBowling, "%s has more effective bowling attack", winner)
	}

	if favored, ok := tables.NamedVenueAdvantage(input.Venue, input.Team1, input.Team2); ok && favored == winner {
		add(weightNamedVenue, "%s historically favors %s", input.Venue, winner)
	}

	if venue := input.VenueDetails; venue != nil {
		if tables.IsHomeVenue(winner, venue.Country) {
			add(weightHomeAdvantage, "Home advantage at %s", venue.DisplayName())
		}
		if tables.FavorsOnGround(winner, venue.Area()) {
			add(weightGroundSize, "%s's dimensions (%sm × %sm) favor %s's playing style",
				venue.DisplayName(), formatNumber(venue.WidthMeters), formatNumber(venue.HeightMeters), winner)
		}
	}

	switch input.Weather.Condition {
	case models.ConditionRainy, models.ConditionOvercast:
		if winnerStats.BowlingAvg < 28 {
			add(weightOvercastBowl, "%s conditions favor %s's bowling attack", input.Weather.Condition, winner)
		}
	case models.ConditionSunny:
		if winnerStats.BattingAvg > 32 {
			add(weightSunnyBatting, "%s conditions favor %s's batting lineup", input.Weather.Condition, winner)
		}
	}

	switch input.MatchFormat {
	case models.FormatTest:
		if winnerStats.BowlingAvg < 30 {
			add(weightTestBowling, "%s's bowling strength is well-suited for Test matches", winner)
		}
	case models.FormatT20:
		if winnerStats.BattingAvg > 30 {
			add(weightT20Batting, "%s's batting aggression is ideal for T20 format", winner)
		}
	}

	if len(factors) < minRuleFactors {
		add(weightHistoricalBase, "Historical matchup statistics favor %s", winner)
	}

	sort.SliceStable(factors, func(i, j int) bool {
		return factors[i].Weight > factors[j].Weight
	})
	if len(factors) > MaxBaseFactors {
		factors = factors[:MaxBaseFactors]
	}
	return factors
}
