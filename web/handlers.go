package web

import (
	"net/http"

	"scorekeeper/service"

	log "github.com/sirupsen/logrus"
)

// Handler holds the services the HTTP layer delegates to
type Handler struct {
	accounts service.AccountService
	sessions service.SessionService
	scores   service.ScoreService
	renderer *Renderer
}

// NewHandler creates a new HTTP handler set
func NewHandler(accounts service.AccountService, sessions service.SessionService, scores service.ScoreService, renderer *Renderer) *Handler {
	return &Handler{
		accounts: accounts,
		sessions: sessions,
		scores:   scores,
		renderer: renderer,
	}
}

// Home renders the home page
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, "home.html", pageData{User: currentUser(r)})
}

// Game renders the game page
func (h *Handler) Game(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, "game.html", pageData{User: currentUser(r)})
}

// HowToPlay renders the instructions page
func (h *Handler) HowToPlay(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, "how_to_play.html", pageData{User: currentUser(r)})
}

// Scores renders the scoreboard page with the aggregate views
func (h *Handler) Scores(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)

	data, err := h.scores.Scoreboard(r.Context(), user.ID)
	if err != nil {
		log.WithField("user_id", user.ID).WithError(err).Error("Failed to load scoreboard")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.renderer.Render(w, "scores.html", pageData{User: user, Scoreboard: data})
}
