// Package httpapi provides a small echo-based HTTP surface for health and
// connection-state observability (spec §4.6 ambient extension). It runs
// alongside the OSC bridge on its own port and never touches the DAW
// connection itself — it only reads state off internal/usecase.Connection.
package httpapi

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"dawbridge/internal/usecase"
)

// Server exposes GET /healthz and GET /status.
type Server struct {
	conn *usecase.Connection
	echo *echo.Echo
}

// New constructs a Server bound to conn and registers its routes.
func New(conn *usecase.Connection) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[httpapi] %s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	s := &Server{conn: conn, echo: e}
	e.GET("/healthz", s.handleHealthz)
	e.GET("/status", s.handleStatus)
	return s
}

// Start blocks serving on addr until the server is shut down or errors.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown() error {
	return s.echo.Close()
}

type healthzResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealthz(c echo.Context) error {
	return c.JSON(http.StatusOK, healthzResponse{Status: "ok"})
}

type statusResponse struct {
	ConnectionState string `json:"connection_state"`
	PendingRequests int    `json:"pending_requests"`
}

func (s *Server) handleStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, statusResponse{
		ConnectionState: s.conn.State().String(),
		PendingRequests: s.conn.PendingRequests(),
	})
}
