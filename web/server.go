package web

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
)

// Server wraps the HTTP server and its router
type Server struct {
	httpServer *http.Server
}

// NewServer builds the router and wires the handlers to it
func NewServer(addr string, h *Handler) *Server {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// Public routes
	r.Get("/login/", h.LoginForm)
	r.Post("/login/", h.Login)
	r.Get("/register/", h.RegisterForm)
	r.Post("/register/", h.Register)

	// Everything else requires a live session
	r.Group(func(r chi.Router) {
		r.Use(h.requireUser)
		r.Get("/", h.Home)
		r.Get("/home/", h.Home)
		r.Get("/game/", h.Game)
		r.Get("/how-to-play/", h.HowToPlay)
		r.Get("/scores/", h.Scores)
		r.Post("/logout/", h.Logout)
		r.Post("/save_score/", h.SaveScore)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    addr,
			Handler: r,
		},
	}
}

// Router exposes the handler tree, primarily for tests
func (s *Server) Router() http.Handler {
	return s.httpServer.Handler
}

// Run serves until the context is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", s.httpServer.Addr).Info("HTTP server listening")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return s.httpServer.Shutdown(shutdownCtx)
}
