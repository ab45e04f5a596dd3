package handlers

import (
	"net/http"
	"strings"
)

// ============================================================================
// TEAM STATS ENDPOINTS
// ============================================================================

// ListTeams returns every team with season stats
// @Summary List Teams
// @Tags Teams
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /teams [get]
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamStats.Teams(r.Context())
	if err != nil {
		h.serviceError(w, err, "Failed to list teams")
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{"teams": teams})
}

// GetTeamStats returns the season stats snapshot for a team
// @Summary Team Stats
// @Description Recent wins out of the last five, batting and bowling averages. Unknown teams get the default line.
// @Tags Teams
// @Produce json
// @Param team path string true "Team name"
// @Success 200 {object} models.TeamStatsSnapshot
// @Failure 400 {object} map[string]string "Invalid team"
// @Router /teams/{team}/stats [get]
func (h *Handler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	team := strings.TrimSpace(pathParam(r, "team"))
	if err := h.validator.Var(team, "required,max=64"); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid team name")
		return
	}

	snapshot, err := h.teamStats.Fetch(r.Context(), team)
	if err != nil {
		h.serviceError(w, err, "Failed to fetch team stats", "team", team)
		return
	}

	h.jsonResponse(w, http.StatusOK, snapshot)
}
