// Package server is the thin HTTP routing layer over the core services.
// It maps the error taxonomy to transport status codes and extracts the
// caller identity from the X-User-ID header; session resolution itself is
// handled upstream and is not this service's concern.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"note-lab/services"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo          *echo.Echo
	log           *slog.Logger
	notes         services.INoteService
	feed          services.IFeedService
	subscriptions services.ISubscriptionService
	users         services.IUserService
}

func NewServer(
	log *slog.Logger,
	notes services.INoteService,
	feed services.IFeedService,
	subscriptions services.ISubscriptionService,
	users services.IUserService,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	s := &Server{
		echo:          e,
		log:           log,
		notes:         notes,
		feed:          feed,
		subscriptions: subscriptions,
		users:         users,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.echo.POST("/auth/register", s.handleRegister)
	s.echo.POST("/notes", s.handleCreateNote)
	s.echo.GET("/notes", s.handleGetFeed)
	s.echo.GET("/notes/:id", s.handleGetNote)
	s.echo.POST("/subscribe/:userId", s.handleSubscribe)
	s.echo.GET("/users", s.handleGetSubscriptions)
}

// ServeHTTP lets the server be driven directly as an http.Handler, which is
// how the tests exercise the routing without opening a port.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

func (s *Server) Start(address string) error {
	s.log.Info("HTTP server listening", "address", address)
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
