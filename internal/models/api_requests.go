package models

// PredictionRequest is the body of POST /predictions. Weather, team stats and
// venue details are optional; missing parts are resolved from the data sources.
type PredictionRequest struct {
	Team1        string        `json:"team1"`
	Team2        string        `json:"team2"`
	Venue        string        `json:"venue"`
	MatchFormat  MatchFormat   `json:"matchFormat"`
	Weather      *Weather      `json:"weather,omitempty"`
	Team1Stats   *TeamStats    `json:"team1Stats,omitempty"`
	Team2Stats   *TeamStats    `json:"team2Stats,omitempty"`
	VenueDetails *VenueProfile `json:"venueDetails,omitempty"`
	UseSentiment bool          `json:"useSentiment"`
	MatchID      string        `json:"matchId,omitempty"`
}

// WeatherResponse is returned by GET /weather
type WeatherResponse struct {
	Location string  `json:"location"`
	Country  string  `json:"country"`
	Weather  Weather `json:"weather"`
	Fetched  bool    `json:"fetched"`
}

// SentimentStatusResponse is returned by the sentiment status endpoints
type SentimentStatusResponse struct {
	State   string `json:"state"`
	Loading bool   `json:"loading"`
	Loaded  bool   `json:"loaded"`
	Error   string `json:"error,omitempty"`
}
