package handlers

import (
	"net/http"
	"strings"
)

// ListVenues returns the cricket grounds directory
// @Summary List Venues
// @Tags Venues
// @Produce json
// @Param country query string false "Country code filter, e.g. Aus"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /venues [get]
func (h *Handler) ListVenues(w http.ResponseWriter, r *http.Request) {
	country := strings.TrimSpace(r.URL.Query().Get("country"))

	venues, err := h.venues.List(r.Context(), country)
	if err != nil {
		h.serviceError(w, err, "Failed to list venues", "country", country)
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"venues": venues,
		"count":  len(venues),
	})
}

// GetVenue looks a ground up by (partial) name
// @Summary Get Venue
// @Tags Venues
// @Produce json
// @Param name path string true "Venue name"
// @Success 200 {object} models.VenueProfile
// @Failure 404 {object} map[string]string "Not Found"
// @Router /venues/{name} [get]
func (h *Handler) GetVenue(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(pathParam(r, "name"))
	if name == "" {
		h.errorResponse(w, http.StatusBadRequest, "Venue name is required")
		return
	}

	venue, err := h.venues.Lookup(r.Context(), name)
	if err != nil {
		h.serviceError(w, err, "Failed to look up venue", "venue", name)
		return
	}

	h.jsonResponse(w, http.StatusOK, venue)
}
