package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/cricketiq/prediction-api/internal/models"
)

// CreatePrediction scores a match between two teams
// @Summary Predict Match Winner
// @Description Scores both teams from their stats, weather, venue and format, optionally enriched with live match data and sentiment
// @Tags Predictions
// @Accept json
// @Produce json
// @Param request body models.PredictionRequest true "Match to predict"
// @Success 200 {object} models.PredictionResult
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /predictions [post]
func (h *Handler) CreatePrediction(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	var req models.PredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.predictions.Predict(r.Context(), &req)
	if err != nil {
		h.serviceError(w, err, "Failed to generate prediction", "team1", req.Team1, "team2", req.Team2)
		return
	}

	h.jsonResponse(w, http.StatusOK, result)
}
