package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/cricketiq/prediction-api/internal/models"
	"github.com/cricketiq/prediction-api/internal/providers/cricapi"
)

// ListLiveMatches returns matches currently in progress
// @Summary Live Matches
// @Tags Matches
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} map[string]string "Live data unavailable"
// @Router /matches/live [get]
func (h *Handler) ListLiveMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := h.liveMatches.CurrentMatches(r.Context())
	if err != nil {
		h.logger.Warnw("Failed to list live matches", "error", err)
		h.errorResponse(w, http.StatusBadGateway, "Live match data unavailable")
		return
	}
	if matches == nil {
		matches = []models.LiveMatch{}
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"matches": matches,
		"count":   len(matches),
	})
}

// GetMatchStats returns head-to-head, form and key players for a live match
// @Summary Live Match Stats
// @Tags Matches
// @Produce json
// @Param matchId path string true "Match ID"
// @Success 200 {object} models.LiveMatchStats
// @Failure 400 {object} map[string]string "Invalid match ID"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 502 {object} map[string]string "Live data unavailable"
// @Router /matches/{matchId}/stats [get]
func (h *Handler) GetMatchStats(w http.ResponseWriter, r *http.Request) {
	matchID := strings.TrimSpace(pathParam(r, "matchId"))
	if err := h.validator.Var(matchID, "required,max=64,printascii"); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid match ID")
		return
	}

	stats, err := h.liveMatches.GetLiveStats(r.Context(), matchID)
	if err != nil {
		if errors.Is(err, cricapi.ErrNoData) {
			h.errorResponse(w, http.StatusNotFound, "No live stats for match")
			return
		}
		h.logger.Warnw("Failed to fetch live stats", "matchID", matchID, "error", err)
		h.errorResponse(w, http.StatusBadGateway, "Live match data unavailable")
		return
	}
	if stats == nil {
		h.errorResponse(w, http.StatusNotFound, "No live stats for match")
		return
	}

	h.jsonResponse(w, http.StatusOK, stats)
}
