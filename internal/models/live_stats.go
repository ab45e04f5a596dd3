package models

// HeadToHead is the historical record between the two sides of a live match.
// Wins are keyed by side (A = home, B = away), not by team name.
type HeadToHead struct {
	TeamAWins int `json:"teamAWins"`
	TeamBWins int `json:"teamBWins"`
	NoResult  int `json:"noResult"`
	Total     int `json:"total"`
}

// FormRecord is a team's recent results window
type FormRecord struct {
	MatchesWon   int `json:"matchesWon"`
	TotalMatches int `json:"totalMatches"`
}

// WinRate returns won/total, or 0 for an empty window
func (f FormRecord) WinRate() float64 {
	if f.TotalMatches <= 0 {
		return 0
	}
	return float64(f.MatchesWon) / float64(f.TotalMatches)
}

// KeyPlayer is a player whose current form is tracked for a match
type KeyPlayer struct {
	Name             string   `json:"name"`
	Role             string   `json:"role,omitempty"`
	BattingAvg       *float64 `json:"battingAvg,omitempty"`
	BowlingAvg       *float64 `json:"bowlingAvg,omitempty"`
	RecentFormRating float64  `json:"recentFormRating"` // 0-10
}

// LiveVenue is the venue block reported by the live data feed
type LiveVenue struct {
	Name              string `json:"name"`
	Location          string `json:"location"`
	HomeTeamAdvantage int    `json:"homeTeamAdvantage"` // 0-10
}

// LiveMatchStats is real-time match data fetched per match id
type LiveMatchStats struct {
	MatchID    string                 `json:"matchId"`
	TeamAName  string                 `json:"teamAName"`
	TeamBName  string                 `json:"teamBName"`
	HeadToHead HeadToHead             `json:"headToHead"`
	RecentForm map[string]FormRecord  `json:"recentForm"`
	KeyPlayers map[string][]KeyPlayer `json:"keyPlayers"`
	Venue      *LiveVenue             `json:"venue,omitempty"`
}

// HeadToHeadWins returns the number of head-to-head wins recorded for team
func (s *LiveMatchStats) HeadToHeadWins(team string) int {
	if s.TeamAName == team {
		return s.HeadToHead.TeamAWins
	}
	return s.HeadToHead.TeamBWins
}

// InningsScore is one innings line of a live scorecard
type InningsScore struct {
	Runs    int     `json:"r"`
	Wickets int     `json:"w"`
	Overs   float64 `json:"o"`
	Inning  string  `json:"inning"`
}

// LiveMatch is a summary entry from the current matches feed
type LiveMatch struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Status       string         `json:"status"`
	Venue        string         `json:"venue"`
	Date         string         `json:"date"`
	DateTimeGMT  string         `json:"dateTimeGMT"`
	Teams        []string       `json:"teams"`
	Score        []InningsScore `json:"score"`
	SeriesID     string         `json:"seriesId"`
	MatchType    string         `json:"matchType"`
	MatchStarted bool           `json:"matchStarted"`
	MatchEnded   bool           `json:"matchEnded"`
}
