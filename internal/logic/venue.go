package logic

import (
	"github.com/cricketiq/prediction-api/internal/models"
)

// Venue bonus points
const (
	NamedVenueBonus  = 10
	HomeCountryBonus = 3
	ODIGroundBonus   = 2
	GroundSizeBonus  = 2
)

// Bonus is an additive score adjustment for each side of a match
type Bonus struct {
	Team1 int `json:"team1Bonus"`
	Team2 int `json:"team2Bonus"`
}

// Add returns the component-wise sum of two bonuses
func (b Bonus) Add(o Bonus) Bonus {
	return Bonus{Team1: b.Team1 + o.Team1, Team2: b.Team2 + o.Team2}
}

// NamedVenueAdvantage returns the team a named venue historically favors, if
// that team is playing. The venue name must match exactly.
func (a *AffinityTables) NamedVenueAdvantage(venue, team1, team2 string) (string, bool) {
	favored, ok := a.NamedVenues[venue]
	if !ok {
		return "", false
	}
	switch favored {
	case team1:
		return team1, true
	case team2:
		return team2, true
	}
	return "", false
}

// VenueFactors computes bonuses from the physical attributes of a ground.
// Each rule is independent; a team can collect several in one call.
func (a *AffinityTables) VenueFactors(profile *models.VenueProfile, team1, team2 string, format models.MatchFormat) Bonus {
	var bonus Bonus
	if profile == nil {
		return bonus
	}

	if a.IsHomeVenue(team1, profile.Country) {
		bonus.Team1 += HomeCountryBonus
	}
	if a.IsHomeVenue(team2, profile.Country) {
		bonus.Team2 += HomeCountryBonus
	}

	if profile.OdiOnly && format == models.FormatODI {
		if a.isODIStrong(team1) {
			bonus.Team1 += ODIGroundBonus
		}
		if a.isODIStrong(team2) {
			bonus.Team2 += ODIGroundBonus
		}
	}

	area := profile.Area()
	if a.FavorsOnGround(team1, area) {
		bonus.Team1 += GroundSizeBonus
	}
	if a.FavorsOnGround(team2, area) {
		bonus.Team2 += GroundSizeBonus
	}

	return bonus
}
