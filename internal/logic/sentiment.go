package logic

import (
	"fmt"
	"strconv"

	"github.com/cricketiq/prediction-api/internal/models"
)

const (
	// SentimentWindow is the number of recent matches recentWins is read against
	SentimentWindow = 10
	// sentimentScale converts a [0,1] confidence into score points
	sentimentScale = 20.0
)

// DescribeTeam renders the fixed natural-language summary fed to the
// sentiment scorer.
func DescribeTeam(team string, recentWins, window int, battingAvg, bowlingAvg float64) string {
	if window <= 0 {
		window = SentimentWindow
	}
	winRate := float64(recentWins) / float64(window) * 100

	batting := "Their batting needs improvement."
	if battingAvg > 35 {
		batting = "Their batting is strong."
	}
	bowling := "Their bowling could be better."
	if bowlingAvg < 25 {
		bowling = "Their bowling is excellent."
	}

	return fmt.Sprintf(
		"%s has won %d out of their last %d matches, with a win rate of %.1f%%. "+
			"They have a batting average of %s and bowling average of %s. %s %s",
		team, recentWins, window, winRate,
		formatNumber(battingAvg), formatNumber(bowlingAvg), batting, bowling,
	)
}

// SentimentConfidence turns a polarity result into a confidence that the team
// is performing well: the score itself when positive, its complement otherwise.
func SentimentConfidence(result models.SentimentResult) float64 {
	score := clamp01(result.Score)
	if result.Label == models.SentimentPositive {
		return score
	}
	return 1 - score
}

// SentimentBonus converts a confidence into additive score points
func SentimentBonus(confidence float64) float64 {
	return clamp01(confidence) * sentimentScale
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
