package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"scorekeeper/service"

	log "github.com/sirupsen/logrus"
)

// saveScoreRequest is the JSON payload posted when a game round ends.
// Score is a pointer so a missing field can be told apart from zero.
type saveScoreRequest struct {
	Score       *int64 `json:"score"`
	Mode        string `json:"mode"`
	DisplayName string `json:"display_name"`
}

type saveScoreResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body saveScoreResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Error("Failed to encode response")
	}
}

// SaveScore records one completed game for the authenticated caller.
// Client mistakes get a 400 with a generic message; storage failures get a
// 500 and are only detailed in the server log.
func (h *Handler) SaveScore(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)

	var req saveScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, saveScoreResponse{
			Status:  "error",
			Message: "invalid request body",
		})
		return
	}

	score, err := h.scores.Submit(r.Context(), user.ID, req.Score, req.Mode, req.DisplayName)
	if err != nil {
		if errors.Is(err, service.ErrMissingScore) {
			writeJSON(w, http.StatusBadRequest, saveScoreResponse{
				Status:  "error",
				Message: "score is required",
			})
			return
		}
		log.WithField("user_id", user.ID).WithError(err).Error("Failed to save score")
		writeJSON(w, http.StatusInternalServerError, saveScoreResponse{
			Status:  "error",
			Message: "internal server error",
		})
		return
	}

	log.WithFields(log.Fields{
		"user_id":  user.ID,
		"score_id": score.ID,
		"value":    score.Value,
		"mode":     score.Mode,
	}).Info("Score saved")

	writeJSON(w, http.StatusOK, saveScoreResponse{Status: "success"})
}
