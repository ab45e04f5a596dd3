package handlers

import (
	"net/http"

	"github.com/cricketiq/prediction-api/internal/models"
)

func statusResponse(status models.ScorerStatus) models.SentimentStatusResponse {
	resp := models.SentimentStatusResponse{
		State:   status.State.String(),
		Loading: status.Loading(),
		Loaded:  status.Loaded(),
	}
	if status.Err != nil {
		resp.Error = status.Err.Error()
	}
	return resp
}

// GetSentimentStatus reports whether the sentiment model is ready
// @Summary Sentiment Model Status
// @Tags Sentiment
// @Produce json
// @Success 200 {object} models.SentimentStatusResponse
// @Failure 503 {object} map[string]string "Not configured"
// @Router /sentiment/status [get]
func (h *Handler) GetSentimentStatus(w http.ResponseWriter, r *http.Request) {
	if h.sentiment == nil {
		h.errorResponse(w, http.StatusServiceUnavailable, "Sentiment scoring is not configured")
		return
	}

	h.jsonResponse(w, http.StatusOK, statusResponse(h.sentiment.Status()))
}

// InitializeSentiment starts loading the sentiment model in the background
// @Summary Initialize Sentiment Model
// @Tags Sentiment
// @Produce json
// @Success 202 {object} models.SentimentStatusResponse
// @Failure 503 {object} map[string]string "Not configured"
// @Router /sentiment/initialize [post]
func (h *Handler) InitializeSentiment(w http.ResponseWriter, r *http.Request) {
	if h.sentiment == nil {
		h.errorResponse(w, http.StatusServiceUnavailable, "Sentiment scoring is not configured")
		return
	}

	h.sentiment.Initialize()
	h.logger.Info("Sentiment model initialization requested")

	h.jsonResponse(w, http.StatusAccepted, statusResponse(h.sentiment.Status()))
}
