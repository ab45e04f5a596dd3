package logic

import (
	"math"
	"testing"

	"github.com/cricketiq/prediction-api/internal/models"
)

var (
	indiaStats     = models.TeamStats{RecentWins: 4, BattingAvg: 36.8, BowlingAvg: 26.2}
	australiaStats = models.TeamStats{RecentWins: 3, BattingAvg: 33.5, BowlingAvg: 27.4}
	sunny30        = models.Weather{Temperature: 30, Humidity: 50, Condition: models.ConditionSunny}
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEstimateStrength(t *testing.T) {
	tests := []struct {
		name    string
		stats   models.TeamStats
		weather models.Weather
		want    float64
	}{
		{"India sunny", indiaStats, sunny30, 59.24},
		{"Australia sunny", australiaStats, sunny30, 48.33},
		{"India cloudy gets no weather bonus", indiaStats, models.Weather{Condition: models.ConditionCloudy}, 54.24},
		{"overcast rewards bowlers under 25",
			models.TeamStats{RecentWins: 2, BattingAvg: 30, BowlingAvg: 24},
			models.Weather{Condition: models.ConditionOvercast}, 45 - 19.2 + 10 + 5},
		{"rain does not reward bowlers at 25",
			models.TeamStats{RecentWins: 2, BattingAvg: 30, BowlingAvg: 25},
			models.Weather{Condition: models.ConditionRainy}, 45 - 20 + 10},
		{"sunny needs batting above 30",
			models.TeamStats{RecentWins: 2, BattingAvg: 30, BowlingAvg: 25}, sunny30, 45 - 20 + 10},
		{"clamped to floor", models.TeamStats{RecentWins: 0, BattingAvg: 10, BowlingAvg: 40}, sunny30, 30},
		{"clamped to ceiling", models.TeamStats{RecentWins: 5, BattingAvg: 80, BowlingAvg: 10}, sunny30, 100},
		{"out of range input clamped not rejected", models.TeamStats{RecentWins: 50, BattingAvg: -5, BowlingAvg: -5}, sunny30, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateStrength(tt.stats, tt.weather)
			if !approxEqual(got, tt.want) {
				t.Errorf("EstimateStrength() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEstimateStrength_AlwaysInRange(t *testing.T) {
	conditions := []models.WeatherCondition{
		models.ConditionSunny, models.ConditionRainy, models.ConditionOvercast, models.ConditionFoggy,
	}
	for wins := 0; wins <= 5; wins++ {
		for bat := 0.0; bat <= 120; bat += 7.5 {
			for bowl := 0.0; bowl <= 120; bowl += 7.5 {
				for _, c := range conditions {
					s := EstimateStrength(models.TeamStats{RecentWins: wins, BattingAvg: bat, BowlingAvg: bowl}, models.Weather{Condition: c})
					if s < 30 || s > 100 {
						t.Fatalf("strength %v out of range for wins=%d bat=%v bowl=%v %s", s, wins, bat, bowl, c)
					}
				}
			}
		}
	}
}
