package logic

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/cricketiq/prediction-api/internal/models"
)

func TestNamedVenueAdvantage(t *testing.T) {
	tables := DefaultAffinityTables()

	tests := []struct {
		name, venue, team1, team2 string
		wantTeam                  string
		wantOK                    bool
	}{
		{"favored team is team2", "Melbourne Cricket Ground", "India", "Australia", "Australia", true},
		{"favored team is team1", "Eden Gardens, Kolkata", "India", "England", "India", true},
		{"favored team not playing", "Lord's, London", "India", "Australia", "", false},
		{"unknown venue", "Neutral Ground", "India", "Australia", "", false},
		{"match is exact", "melbourne cricket ground", "India", "Australia", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tables.NamedVenueAdvantage(tt.venue, tt.team1, tt.team2)
			if got != tt.wantTeam || ok != tt.wantOK {
				t.Errorf("NamedVenueAdvantage() = (%q, %v), want (%q, %v)", got, ok, tt.wantTeam, tt.wantOK)
			}
		})
	}
}

func TestVenueFactors(t *testing.T) {
	tables := DefaultAffinityTables()

	tests := []struct {
		name         string
		profile      *models.VenueProfile
		team1, team2 string
		format       models.MatchFormat
		want         Bonus
	}{
		{
			name:    "nil profile",
			profile: nil,
			team1:   "India", team2: "Australia", format: models.FormatODI,
			want: Bonus{},
		},
		{
			name:    "home country and big ground",
			profile: &models.VenueProfile{Name: "MCG", Country: "Aus", WidthMeters: 150, HeightMeters: 160},
			team1:   "India", team2: "Australia", format: models.FormatTest,
			want: Bonus{Team1: 0, Team2: HomeCountryBonus + GroundSizeBonus},
		},
		{
			name:    "small ground favors both small-ground teams",
			profile: &models.VenueProfile{Name: "Kensington Oval", Country: "WI", WidthMeters: 120, HeightMeters: 140},
			team1:   "India", team2: "West Indies", format: models.FormatT20,
			want: Bonus{Team1: GroundSizeBonus, Team2: HomeCountryBonus + GroundSizeBonus},
		},
		{
			name:    "ODI-only ground in an ODI",
			profile: &models.VenueProfile{Name: "Trent Bridge", Country: "UK", WidthMeters: 140, HeightMeters: 140, OdiOnly: true},
			team1:   "England", team2: "New Zealand", format: models.FormatODI,
			want: Bonus{Team1: HomeCountryBonus + ODIGroundBonus, Team2: ODIGroundBonus},
		},
		{
			name:    "ODI-only ground outside an ODI",
			profile: &models.VenueProfile{Name: "Trent Bridge", Country: "UK", WidthMeters: 140, HeightMeters: 140, OdiOnly: true},
			team1:   "England", team2: "New Zealand", format: models.FormatT20,
			want: Bonus{Team1: HomeCountryBonus},
		},
		{
			name:    "unknown team never matches an empty country",
			profile: &models.VenueProfile{Name: "Somewhere", WidthMeters: 140, HeightMeters: 140},
			team1:   "Nepal", team2: "Oman", format: models.FormatODI,
			want: Bonus{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tables.VenueFactors(tt.profile, tt.team1, tt.team2, tt.format)
			if got != tt.want {
				t.Errorf("VenueFactors() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadAffinityTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "affinity.yaml")
	content := `
named_venues:
  "Kensington Oval, Bridgetown": "West Indies"
big_ground_teams: ["Australia"]
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	tables, err := LoadAffinityTables(path)
	if err != nil {
		t.Fatalf("LoadAffinityTables failed: %v", err)
	}

	if got := tables.NamedVenues["Kensington Oval, Bridgetown"]; got != "West Indies" {
		t.Errorf("Expected override venue, got %q", got)
	}
	if _, ok := tables.NamedVenues["Melbourne Cricket Ground"]; ok {
		t.Errorf("Expected named venues to be replaced by the override")
	}
	if !reflect.DeepEqual(tables.BigGroundTeams, []string{"Australia"}) {
		t.Errorf("Expected big ground override, got %v", tables.BigGroundTeams)
	}
	// Untouched keys keep defaults
	if tables.CountryOf("India") != "Ind" {
		t.Errorf("Expected default team countries to survive, got %q", tables.CountryOf("India"))
	}
	if !reflect.DeepEqual(tables.SmallGroundTeams, DefaultAffinityTables().SmallGroundTeams) {
		t.Errorf("Expected default small ground teams, got %v", tables.SmallGroundTeams)
	}
}

func TestLoadAffinityTables_EmptyPath(t *testing.T) {
	tables, err := LoadAffinityTables("")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !reflect.DeepEqual(tables, DefaultAffinityTables()) {
		t.Errorf("Expected default tables for empty path")
	}
}

func TestLoadAffinityTables_MissingFile(t *testing.T) {
	if _, err := LoadAffinityTables(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}
