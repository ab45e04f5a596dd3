package logic

import (
	"math"

	"github.com/cricketiq/prediction-api/internal/models"
)

const (
	minStrength = 30.0
	maxStrength = 100.0

	weatherBonus = 5.0
)

// EstimateStrength converts a team's season stats and the match weather into
// a single strength score in [30, 100]. Out-of-range inputs are clamped, not
// rejected.
func EstimateStrength(stats models.TeamStats, weather models.Weather) float64 {
	strength := stats.BattingAvg*1.5 - stats.BowlingAvg*0.8
	strength += float64(stats.RecentWins) * 5

	switch weather.Condition {
	case models.ConditionRainy, models.ConditionOvercast:
		// Seam-friendly conditions reward a strong bowling attack
		if stats.BowlingAvg < 25 {
			strength += weatherBonus
		}
	case models.ConditionSunny:
		if stats.BattingAvg > 30 {
			strength += weatherBonus
		}
	}

	return math.Max(minStrength, math.Min(strength, maxStrength))
}
