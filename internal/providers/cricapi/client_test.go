package cricapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const matchStatsBody = `{
  "status": "success",
  "data": {
    "matchId": "abc",
    "teamHomeName": "India",
    "teamAwayName": "Australia",
    "recentForm": {
      "India": {"matchesWon": 7, "totalMatches": 10},
      "Australia": {"matchesWon": 6, "totalMatches": 10}
    },
    "h2h": {"teamHomeWins": 5, "teamAwayWins": 3, "noResult": 1, "total": 9},
    "venue": {"name": "Wankhede Stadium", "location": "Mumbai", "homeTeamAdvantage": 7},
    "keyPlayers": {
      "India": [
        {"name": "Player 1", "role": "Batsman", "battingAvg": 48.5, "recentForm": 8},
        {"name": "Player 2", "role": "Bowler", "bowlingAvg": 22.3, "recentForm": 7}
      ],
      "Australia": [
        {"name": "Player 3", "role": "All-rounder", "battingAvg": 38.2, "bowlingAvg": 28.4, "recentForm": 9}
      ]
    }
  }
}`

func TestGetLiveStats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/match_stats" {
			t.Errorf("Expected path /match_stats, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("id") != "abc" {
			t.Errorf("Expected id=abc, got %s", r.URL.Query().Get("id"))
		}
		if r.URL.Query().Get("apikey") != "secret" {
			t.Errorf("Expected apikey=secret, got %s", r.URL.Query().Get("apikey"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(matchStatsBody))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithAPIKey("secret"))

	stats, err := client.GetLiveStats(context.Background(), "abc")
	if err != nil {
		t.Fatalf("GetLiveStats failed: %v", err)
	}

	if stats.TeamAName != "India" || stats.TeamBName != "Australia" {
		t.Errorf("Wrong sides: %s / %s", stats.TeamAName, stats.TeamBName)
	}
	if stats.HeadToHeadWins("India") != 5 || stats.HeadToHeadWins("Australia") != 3 {
		t.Errorf("Wrong head to head: %+v", stats.HeadToHead)
	}
	if stats.RecentForm["Australia"].MatchesWon != 6 {
		t.Errorf("Wrong form: %+v", stats.RecentForm)
	}
	india := stats.KeyPlayers["India"]
	if len(india) != 2 || india[0].RecentFormRating != 8 || india[0].BattingAvg == nil || *india[0].BattingAvg != 48.5 {
		t.Errorf("Wrong key players: %+v", india)
	}
	if india[0].BowlingAvg != nil {
		t.Errorf("Expected no bowling average for a batsman")
	}
	if stats.Venue == nil || stats.Venue.HomeTeamAdvantage != 7 {
		t.Errorf("Wrong venue: %+v", stats.Venue)
	}
}

func TestGetLiveStats_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"server error", http.StatusInternalServerError, `oops`, nil},
		{"no data", http.StatusOK, `{"status":"failure","reason":"Invalid API Key"}`, ErrNoData},
		{"garbage", http.StatusOK, `<html>`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(WithBaseURL(server.URL))
			stats, err := client.GetLiveStats(context.Background(), "abc")
			if err == nil {
				t.Fatal("Expected error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
			if stats != nil {
				t.Errorf("Expected no stats, got %+v", stats)
			}
		})
	}
}

func TestCurrentMatches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/currentMatches" {
			t.Errorf("Expected path /currentMatches, got %s", r.URL.Path)
		}
		w.Write([]byte(`{"status":"success","data":[
			{"id":"m1","name":"India vs Australia","status":"Live","venue":"Sydney Cricket Ground",
			 "teams":["India","Australia"],"score":[{"r":289,"w":10,"o":50,"inning":"Australia Inning 1"}],
			 "matchType":"odi","matchStarted":true,"matchEnded":false}
		]}`))
	}))
	defer server.Close()

	matches, err := NewClient(WithBaseURL(server.URL)).CurrentMatches(context.Background())
	if err != nil {
		t.Fatalf("CurrentMatches failed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("Expected 1 match, got %d", len(matches))
	}
	m := matches[0]
	if m.ID != "m1" || len(m.Teams) != 2 || m.Score[0].Runs != 289 || m.Score[0].Overs != 50 || !m.MatchStarted {
		t.Errorf("Unexpected match %+v", m)
	}
}

func TestRateLimiterHonoursContext(t *testing.T) {
	client := NewClient(WithBaseURL("http://127.0.0.1:0"), WithRateLimit(0.001, 1))
	// Drain the single token
	client.limiter.Allow()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := client.GetLiveStats(ctx, "abc"); err == nil {
		t.Error("Expected rate limiter wait to fail on a cancelled context")
	}
}
