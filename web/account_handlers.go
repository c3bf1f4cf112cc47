package web

import (
	"net/http"
	"time"

	"scorekeeper/service"

	log "github.com/sirupsen/logrus"
)

// flashCookie carries a one-shot message across a redirect
const flashCookie = "flash"

func setFlash(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    message,
		Path:     "/",
		HttpOnly: true,
	})
}

// popFlash reads and clears the flash message, if any
func popFlash(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(flashCookie)
	if err != nil {
		return ""
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return cookie.Value
}

// RegisterForm renders the registration form
func (h *Handler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, "register.html", pageData{Flash: popFlash(w, r)})
}

// Register handles a registration submission. Rejections re-render the form
// with the message so the user can retry; success redirects to the login page.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.Render(w, "register.html", pageData{Error: "invalid form submission"})
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	password2 := r.PostFormValue("password2")

	_, err := h.accounts.Register(r.Context(), username, password, password2)
	if err != nil {
		if service.IsValidationError(err) {
			h.renderer.Render(w, "register.html", pageData{Error: err.Error()})
			return
		}
		log.WithField("username", username).WithError(err).Error("Failed to register user")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	setFlash(w, "Account created successfully!")
	http.Redirect(w, r, "/login/", http.StatusSeeOther)
}

// LoginForm renders the login form
func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, "login.html", pageData{Flash: popFlash(w, r)})
}

// Login handles a login submission, creating the session on success
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.Render(w, "login.html", pageData{Error: "invalid form submission"})
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.accounts.Authenticate(r.Context(), username, password)
	if err != nil {
		if service.IsValidationError(err) {
			h.renderer.Render(w, "login.html", pageData{Error: err.Error()})
			return
		}
		log.WithField("username", username).WithError(err).Error("Failed to authenticate user")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	session, err := h.sessions.Start(r.Context(), user.ID)
	if err != nil {
		log.WithField("user_id", user.ID).WithError(err).Error("Failed to start session")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    session.ID,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/home/", http.StatusSeeOther)
}

// Logout destroys the session and clears the cookie
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if err := h.sessions.End(r.Context(), cookie.Value); err != nil {
			// The cookie is cleared regardless; a stale row is harmless
			log.WithError(err).Warn("Failed to delete session on logout")
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/login/", http.StatusSeeOther)
}
