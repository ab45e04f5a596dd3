package logic

import (
	"fmt"
	"math"

	"github.com/cricketiq/prediction-api/internal/models"
)

// Live data scaling and factor impacts
const (
	headToHeadScale = 10.0
	recentFormScale = 15.0
	keyPlayerScale  = 0.8

	headToHeadImpact = 7
	recentFormImpact = 8
	keyPlayerImpact  = 6

	// a team must lead the other's recent win rate by this much to be cited
	recentFormLead = 0.2
	// key player rating that counts as exceptional form
	standoutRating = 8.0
)

// HeadToHeadBonus awards up to 10 points per team from the head-to-head
// record. An empty record yields no bonus for either side.
func HeadToHeadBonus(stats *models.LiveMatchStats, team1, team2 string) Bonus {
	total := stats.HeadToHead.Total
	if total <= 0 {
		return Bonus{}
	}

	team1Rate := float64(stats.HeadToHeadWins(team1)) / float64(total)
	team2Rate := float64(stats.HeadToHeadWins(team2)) / float64(total)

	return Bonus{
		Team1: roundInt(team1Rate * headToHeadScale),
		Team2: roundInt(team2Rate * headToHeadScale),
	}
}

// RecentFormBonus awards up to 15 points per team from its recent win rate.
// Teams without a form entry, or with an empty window, get nothing.
func RecentFormBonus(stats *models.LiveMatchStats, team1, team2 string) Bonus {
	return Bonus{
		Team1: roundInt(stats.RecentForm[team1].WinRate() * recentFormScale),
		Team2: roundInt(stats.RecentForm[team2].WinRate() * recentFormScale),
	}
}

// KeyPlayerBonus awards up to 8 points per team from the mean recent-form
// rating of its key players.
func KeyPlayerBonus(stats *models.LiveMatchStats, team1, team2 string) Bonus {
	return Bonus{
		Team1: roundInt(averageRating(stats.KeyPlayers[team1]) * keyPlayerScale),
		Team2: roundInt(averageRating(stats.KeyPlayers[team2]) * keyPlayerScale),
	}
}

// LiveBonus sums all live-data adjustments
func LiveBonus(stats *models.LiveMatchStats, team1, team2 string) Bonus {
	return HeadToHeadBonus(stats, team1, team2).
		Add(RecentFormBonus(stats, team1, team2)).
		Add(KeyPlayerBonus(stats, team1, team2))
}

// LiveFactors explains the live data in human terms. These factors are kept
// apart from the ranked base factors and carry their own impact score.
func LiveFactors(stats *models.LiveMatchStats, team1, team2 string) []models.PredictionFactor {
	var factors []models.PredictionFactor

	if total := stats.HeadToHead.Total; total > 0 {
		team1Wins := stats.HeadToHeadWins(team1)
		team2Wins := stats.HeadToHeadWins(team2)
		switch {
		case team1Wins > team2Wins:
			factors = append(factors, liveFactor("Head-to-Head Record",
				fmt.Sprintf("%s has won %d out of %d matches against %s", team1, team1Wins, total, team2),
				headToHeadImpact))
		case team2Wins > team1Wins:
			factors = append(factors, liveFactor("Head-to-Head Record",
				fmt.Sprintf("%s has won %d out of %d matches against %s", team2, team2Wins, total, team1),
				headToHeadImpact))
		}
	}

	team1Form, ok1 := stats.RecentForm[team1]
	team2Form, ok2 := stats.RecentForm[team2]
	if ok1 && ok2 {
		team1Rate, team2Rate := team1Form.WinRate(), team2Form.WinRate()
		switch {
		case team1Rate > team2Rate+recentFormLead:
			factors = append(factors, liveFactor("Recent Form", describeForm(team1, team1Form), recentFormImpact))
		case team2Rate > team1Rate+recentFormLead:
			factors = append(factors, liveFactor("Recent Form", describeForm(team2, team2Form), recentFormImpact))
		}
	}

	for _, team := range []string{team1, team2} {
		best, ok := bestPlayer(stats.KeyPlayers[team])
		if ok && best.RecentFormRating >= standoutRating {
			factors = append(factors, liveFactor("Key Player Form",
				fmt.Sprintf("%s from %s is in exceptional form (%s/10)", best.Name, team, formatNumber(best.RecentFormRating)),
				keyPlayerImpact))
		}
	}

	return factors
}

func liveFactor(label, description string, impact int) models.PredictionFactor {
	return models.PredictionFactor{
		Label:       label,
		Weight:      impact,
		Description: description,
		Impact:      impact,
	}
}

func describeForm(team string, form models.FormRecord) string {
	return fmt.Sprintf("%s has won %d of their last %d matches (%d%%)",
		team, form.MatchesWon, form.TotalMatches, roundInt(form.WinRate()*100))
}

func averageRating(players []models.KeyPlayer) float64 {
	if len(players) == 0 {
		return 0
	}
	var sum float64
	for _, p := range players {
		sum += p.RecentFormRating
	}
	return sum / float64(len(players))
}

// bestPlayer returns the first player with the highest rating
func bestPlayer(players []models.KeyPlayer) (models.KeyPlayer, bool) {
	if len(players) == 0 {
		return models.KeyPlayer{}, false
	}
	best := players[0]
	for _, p := range players[1:] {
		if p.RecentFormRating > best.RecentFormRating {
			best = p
		}
	}
	return best, true
}

// roundInt rounds half away from zero. Every rounded quantity in the model
// goes through here so .5 cases behave the same everywhere.
func roundInt(v float64) int {
	return int(math.Round(v))
}
