package logic

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Ground size thresholds in square meters
const (
	BigGroundArea   = 22000.0
	SmallGroundArea = 18000.0
)

// AffinityTables holds the static team/venue affinity data the scoring model
// consults. Tables are plain data so they can be swapped per deployment.
type AffinityTables struct {
	// TeamCountries maps a team name to the country code used by venue records
	TeamCountries map[string]string `yaml:"team_countries"`
	// NamedVenues maps an exact venue name to the team it historically favors
	NamedVenues map[string]string `yaml:"named_venues"`
	// ODIStrongTeams gain a bonus on ODI-only grounds in ODI matches
	ODIStrongTeams []string `yaml:"odi_strong_teams"`
	// BigGroundTeams gain a bonus on grounds larger than BigGroundArea
	BigGroundTeams []string `yaml:"big_ground_teams"`
	// SmallGroundTeams gain a bonus on grounds smaller than SmallGroundArea
	SmallGroundTeams []string `yaml:"small_ground_teams"`
}

// DefaultAffinityTables returns the built-in tables
func DefaultAffinityTables() *AffinityTables {
	return &AffinityTables{
		TeamCountries: map[string]string{
			"India":        "Ind",
			"Australia":    "Aus",
			"England":      "UK",
			"South Africa": "SA",
			"New Zealand":  "NZ",
			"Pakistan":     "Pak",
			"Sri Lanka":    "SL",
			"West Indies":  "WI",
			"Bangladesh":   "Ban",
			"Afghanistan":  "Afg",
			"Zimbabwe":     "Zim",
		},
		NamedVenues: map[string]string{
			"Melbourne Cricket Ground":        "Australia",
			"Eden Gardens, Kolkata":           "India",
			"Lord's, London":                  "England",
			"Wankhede Stadium, Mumbai":        "India",
			"Wanderers Stadium, Johannesburg": "South Africa",
		},
		ODIStrongTeams:   []string{"New Zealand", "England"},
		BigGroundTeams:   []string{"Australia", "South Africa"},
		SmallGroundTeams: []string{"West Indies", "India"},
	}
}

// LoadAffinityTables reads YAML overrides from path on top of the defaults.
// Keys missing from the file keep their default values. An empty path returns
// the defaults.
func LoadAffinityTables(path string) (*AffinityTables, error) {
	tables := DefaultAffinityTables()
	if path == "" {
		return tables, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read affinity tables: %w", err)
	}

	var overrides AffinityTables
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse affinity tables: %w", err)
	}

	if overrides.TeamCountries != nil {
		tables.TeamCountries = overrides.TeamCountries
	}
	if overrides.NamedVenues != nil {
		tables.NamedVenues = overrides.NamedVenues
	}
	if overrides.ODIStrongTeams != nil {
		tables.ODIStrongTeams = overrides.ODIStrongTeams
	}
	if overrides.BigGroundTeams != nil {
		tables.BigGroundTeams = overrides.BigGroundTeams
	}
	if overrides.SmallGroundTeams != nil {
		tables.SmallGroundTeams = overrides.SmallGroundTeams
	}

	return tables, nil
}

// CountryOf returns the team's country code, or "" if unknown
func (a *AffinityTables) CountryOf(team string) string {
	return a.TeamCountries[team]
}

// IsHomeVenue reports whether the team's country matches the venue country
func (a *AffinityTables) IsHomeVenue(team, venueCountry string) bool {
	country := a.CountryOf(team)
	return country != "" && country == venueCountry
}

// FavorsOnGround reports whether the team has an affinity for a ground of
// the given area
func (a *AffinityTables) FavorsOnGround(team string, area float64) bool {
	switch {
	case area > BigGroundArea:
		return slices.Contains(a.BigGroundTeams, team)
	case area < SmallGroundArea:
		return slices.Contains(a.SmallGroundTeams, team)
	default:
		return false
	}
}

func (a *AffinityTables) isODIStrong(team string) bool {
	return slices.Contains(a.ODIStrongTeams, team)
}
