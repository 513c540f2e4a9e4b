package server

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/waypoint/internal/config"
	"github.com/nfrund/waypoint/internal/logging"
	"github.com/nfrund/waypoint/internal/module"
	"github.com/nfrund/waypoint/pathreg"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E       *echo.Echo
	Cfg     *config.Config
	Paths   *pathreg.Registry
	modules []module.Module
}

// New creates a new Server instance.
func New() *Server {
	// Load environment variables from .env file if it exists.
	if err := godotenv.Load(); err != nil {
		// We don't have slog configured yet, so we use the standard
		// logger here.
		log.Println("No .env file found, relying on environment variables")
	}

	logging.New()
	cfg := config.New()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	return &Server{
		E:       e,
		Cfg:     cfg,
		Paths:   pathreg.New(),
		modules: AppModules(cfg),
	}
}

// RegisterModules runs the two module lifecycle phases: first every module
// registers its paths, then every module boots its routes. By the time the
// first Boot runs, the whole path registry is populated, so modules can
// safely link across module boundaries.
func (s *Server) RegisterModules(ctx context.Context) error {
	for _, m := range s.modules {
		if err := m.Register(s.Paths); err != nil {
			slog.Error("Module path registration failed", "module", m.Name(), "error", err)
			return err
		}
		slog.Debug("Module paths registered", "module", m.Name())
	}

	root := s.E.Group("")
	for _, m := range s.modules {
		if err := m.Boot(ctx, root, s.Paths); err != nil {
			slog.Error("Module boot failed", "module", m.Name(), "error", err)
			return err
		}
		slog.Info("Module booted", "module", m.Name())
	}

	s.registerRoutes()
	return nil
}

// MustRegisterModules is RegisterModules for main functions: it exits the
// process on failure.
func (s *Server) MustRegisterModules(ctx context.Context) {
	if err := s.RegisterModules(ctx); err != nil {
		os.Exit(1)
	}
}
