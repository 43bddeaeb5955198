package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"gorm.io/gorm"

	"cocina/internal/config"
	"cocina/internal/handlers"
	applog "cocina/internal/log"
)

// Server wraps the HTTP server together with the session middleware.
type Server struct {
	httpServer *http.Server
	sessions   *scs.SessionManager
}

// New wires the session manager and handlers and returns a server ready to
// start.
func New(cfg config.Config, db *gorm.DB) *Server {
	sessions := scs.New()
	if cfg.Session.Lifetime > 0 {
		sessions.Lifetime = cfg.Session.Lifetime
	}
	if cfg.Session.CookieName != "" {
		sessions.Cookie.Name = cfg.Session.CookieName
	}
	sessions.Cookie.Domain = cfg.Session.CookieDomain
	sessions.Cookie.Secure = cfg.Session.CookieSecure
	sessions.Cookie.HttpOnly = true
	sessions.Cookie.SameSite = http.SameSiteLaxMode

	handlers.Configure(sessions, db)

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Server.Addr,
			Handler:           sessions.LoadAndSave(newRouter()),
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       time.Minute,
		},
		sessions: sessions,
	}
}

// Handler exposes the full middleware chain, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start blocks serving requests until Stop is called.
func (s *Server) Start() error {
	applog.Info(context.Background(), "http server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop drains in-flight requests and shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
