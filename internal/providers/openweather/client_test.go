package openweather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cricketiq/prediction-api/internal/models"
)

func TestConditionForID(t *testing.T) {
	tests := map[int]models.WeatherCondition{
		201: models.ConditionThunderstorm,
		311: models.ConditionDrizzle,
		502: models.ConditionRainy,
		601: models.ConditionSnow,
		741: models.ConditionFoggy,
		800: models.ConditionSunny,
		803: models.ConditionCloudy,
		100: models.ConditionSunny,
	}
	for id, want := range tests {
		if got := ConditionForID(id); got != want {
			t.Errorf("ConditionForID(%d) = %s, want %s", id, got, want)
		}
	}
}

func TestGetWeather(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/weather" {
			t.Errorf("Expected path /weather, got %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("q") != "Melbourne,Aus" || q.Get("units") != "metric" || q.Get("appid") != "k" {
			t.Errorf("Unexpected query %v", q)
		}
		w.Write([]byte(`{"name":"Melbourne","main":{"temp":18.6,"humidity":72},"weather":[{"id":804,"icon":"04d"}]}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithAPIKey("k"))
	weather, err := client.GetWeather(context.Background(), "Melbourne", "Aus")
	if err != nil {
		t.Fatalf("GetWeather failed: %v", err)
	}

	want := models.Weather{Temperature: 19, Humidity: 72, Condition: models.ConditionCloudy}
	if weather != want {
		t.Errorf("GetWeather() = %+v, want %+v", weather, want)
	}
}

func TestGetWeather_FallsBackToDefault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"cod":401,"message":"Invalid API key"}`))
	}))
	defer server.Close()

	tests := []struct {
		name     string
		client   *Client
		location string
		want     error
	}{
		{"no location", NewClient(WithAPIKey("k")), "", ErrNoLocation},
		{"no api key", NewClient(), "Mumbai", ErrNoAPIKey},
		{"api error", NewClient(WithBaseURL(server.URL), WithAPIKey("bad")), "Mumbai", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weather, err := tt.client.GetWeather(context.Background(), tt.location, "Ind")
			if err == nil {
				t.Fatal("Expected error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
			if weather != models.DefaultWeather {
				t.Errorf("Expected default weather, got %+v", weather)
			}
		})
	}
}
