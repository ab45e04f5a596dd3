package models

import "time"

// PredictionInput is everything the scoring engine needs for one match
type PredictionInput struct {
	Team1        string        `json:"team1" validate:"required"`
	Team2        string        `json:"team2" validate:"required,nefield=Team1"`
	Venue        string        `json:"venue" validate:"required"`
	MatchFormat  MatchFormat   `json:"matchFormat" validate:"required,oneof=odi t20 test"`
	Weather      Weather       `json:"weather"`
	Team1Stats   TeamStats     `json:"team1Stats"`
	Team2Stats   TeamStats     `json:"team2Stats"`
	VenueDetails *VenueProfile `json:"venueDetails,omitempty" validate:"-"`
	UseSentiment bool          `json:"useSentiment"`
	MatchID      string        `json:"matchId,omitempty"`
}

// PredictionFactor is a ranked, human-readable contributor to a prediction.
// Live-data factors also carry a description and their own impact score.
type PredictionFactor struct {
	Label       string `json:"factor"`
	Weight      int    `json:"weight"`
	Description string `json:"description,omitempty"`
	Impact      int    `json:"impact,omitempty"`
}

// PredictionResult is the outcome of one prediction run
type PredictionResult struct {
	ID             string             `json:"id,omitempty"`
	Winner         string             `json:"winner"`
	Probability    int                `json:"probability"` // winner's share, 50-100
	Team1          string             `json:"team1"`
	Team2          string             `json:"team2"`
	Venue          string             `json:"venue"`
	MatchFormat    MatchFormat        `json:"matchFormat"`
	Factors        []PredictionFactor `json:"factors"`
	VenueDetails   *VenueProfile      `json:"venueDetails"`
	Weather        Weather            `json:"weather"`
	WeatherFetched bool               `json:"weatherFetched"`
	Team1Stats     TeamStats          `json:"team1Stats"`
	Team2Stats     TeamStats          `json:"team2Stats"`
	Team1Score     float64            `json:"team1Score"`
	Team2Score     float64            `json:"team2Score"`
	SentimentUsed  bool               `json:"sentimentUsed"`
	LiveStatsUsed  bool               `json:"liveStatsUsed"`
	MatchID        string             `json:"matchId,omitempty"`
	LiveData       *LiveMatchStats    `json:"liveData,omitempty"`
	CreatedAt      time.Time          `json:"createdAt,omitempty"`
}

// LoserProbability is the implied share of the losing side
func (r *PredictionResult) LoserProbability() int {
	return 100 - r.Probability
}
