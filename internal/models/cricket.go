package models

import "time"

// MatchFormat is the cricket format a prediction is made for
type MatchFormat string

const (
	FormatODI  MatchFormat = "odi"
	FormatT20  MatchFormat = "t20"
	FormatTest MatchFormat = "test"
)

// WeatherCondition is the simplified sky/precipitation state at the venue
type WeatherCondition string

const (
	ConditionSunny        WeatherCondition = "Sunny"
	ConditionCloudy       WeatherCondition = "Cloudy"
	ConditionRainy        WeatherCondition = "Rainy"
	ConditionOvercast     WeatherCondition = "Overcast"
	ConditionPartlyCloudy WeatherCondition = "PartlyCloudy"
	ConditionThunderstorm WeatherCondition = "Thunderstorm"
	ConditionFoggy        WeatherCondition = "Foggy"
	ConditionSnow         WeatherCondition = "Snow"
	ConditionDrizzle      WeatherCondition = "Drizzle"
)

// TeamStats is a team's recent-performance snapshot
type TeamStats struct {
	RecentWins int     `json:"recentWins" validate:"min=0,max=5"`
	BattingAvg float64 `json:"battingAvg" validate:"gte=0"`
	BowlingAvg float64 `json:"bowlingAvg" validate:"gte=0"`
}

// TeamStatsSnapshot is a TeamStats value as served by a stats source
type TeamStatsSnapshot struct {
	Team        string    `json:"team"`
	Stats       TeamStats `json:"stats"`
	LastUpdated time.Time `json:"lastUpdated"`
	DataSource  string    `json:"dataSource"`
}

// Weather describes match-day conditions
type Weather struct {
	Temperature float64          `json:"temperature"`
	Humidity    float64          `json:"humidity" validate:"gte=0,lte=100"`
	Condition   WeatherCondition `json:"condition" validate:"oneof=Sunny Cloudy Rainy Overcast PartlyCloudy Thunderstorm Foggy Snow Drizzle"`
}

// DefaultWeather is used whenever real conditions are unavailable
var DefaultWeather = Weather{
	Temperature: 25,
	Humidity:    50,
	Condition:   ConditionSunny,
}

// VenueRecord is a notable individual performance at a ground
type VenueRecord struct {
	Player  string `json:"player"`
	Country string `json:"country,omitempty"`
	Against string `json:"against,omitempty"`
	Result  string `json:"result"` // score or bowling figures
	Date    string `json:"date,omitempty"`
}

// VenueProfile is read-only reference data about a cricket ground
type VenueProfile struct {
	ID             string       `json:"id,omitempty"`
	Name           string       `json:"name"`
	LongName       string       `json:"longName"`
	Country        string       `json:"country"`
	WidthMeters    float64      `json:"widthMeters"`
	HeightMeters   float64      `json:"heightMeters"`
	RoundedRect    bool         `json:"roundedRect"`
	OdiOnly        bool         `json:"odiOnly"`
	BattingRecord  *VenueRecord `json:"battingRecord,omitempty"`
	BowlingRecord  *VenueRecord `json:"bowlingRecord,omitempty"`
	MeasurementURL string       `json:"measurementUrl,omitempty"`
	Notes          string       `json:"notes,omitempty"`
}

// Area returns the ground's playing area in square meters
func (v *VenueProfile) Area() float64 {
	return v.WidthMeters * v.HeightMeters
}

// DisplayName prefers the long ground name
func (v *VenueProfile) DisplayName() string {
	if v.LongName != "" {
		return v.LongName
	}
	return v.Name
}
