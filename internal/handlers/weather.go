package handlers

import (
	"net/http"
	"strings"

	"github.com/cricketiq/prediction-api/internal/models"
)

// GetWeather returns current conditions for a location. Lookup failures are
// reported through the fetched flag with the default conditions.
// @Summary Current Weather
// @Tags Weather
// @Produce json
// @Param location query string true "City or ground name"
// @Param country query string false "Country"
// @Success 200 {object} models.WeatherResponse
// @Router /weather [get]
func (h *Handler) GetWeather(w http.ResponseWriter, r *http.Request) {
	location := strings.TrimSpace(r.URL.Query().Get("location"))
	country := strings.TrimSpace(r.URL.Query().Get("country"))

	resp := models.WeatherResponse{
		Location: location,
		Country:  country,
		Weather:  models.DefaultWeather,
	}

	if h.weather != nil {
		weather, err := h.weather.GetWeather(r.Context(), location, country)
		if err != nil {
			h.logger.Warnw("Weather lookup failed, using defaults", "location", location, "country", country, "error", err)
		} else {
			resp.Weather = weather
			resp.Fetched = true
		}
	}

	h.jsonResponse(w, http.StatusOK, resp)
}
