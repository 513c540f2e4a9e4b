package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// registerRoutes sets up the routes that don't belong to any module.
func (s *Server) registerRoutes() {
	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
