package web

import (
	"context"
	"net/http"

	"scorekeeper/models"

	log "github.com/sirupsen/logrus"
)

// sessionCookie is the name of the cookie carrying the session token
const sessionCookie = "session_id"

type contextKey int

const userContextKey contextKey = iota

// currentUser returns the authenticated user stored by requireUser, nil if absent
func currentUser(r *http.Request) *models.User {
	user, _ := r.Context().Value(userContextKey).(*models.User)
	return user
}

// requireUser resolves the session cookie to a user and stores it on the
// request context. Requests without a live session are redirected to the
// login page instead of being served.
func (h *Handler) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil {
			http.Redirect(w, r, "/login/", http.StatusSeeOther)
			return
		}

		user, err := h.sessions.CurrentUser(r.Context(), cookie.Value)
		if err != nil {
			log.WithError(err).Error("Failed to resolve session")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		if user == nil {
			http.Redirect(w, r, "/login/", http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
