// Package server provides the HTTP API for kmapd.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/kmapd/internal/resolver"
	"github.com/fyrsmithlabs/kmapd/internal/testcase"
)

// Server exposes resolution and script generation over HTTP.
type Server struct {
	echo      *echo.Echo
	resolver  *resolver.Resolver
	generator *testcase.Generator
	logger    *zap.Logger
	config    *Config
}

// Config holds HTTP server configuration.
type Config struct {
	Host string
	Port int
}

// NewServer creates a new HTTP server.
func NewServer(r *resolver.Resolver, g *testcase.Generator, logger *zap.Logger, cfg *Config) (*Server, error) {
	if r == nil {
		return nil, fmt.Errorf("resolver cannot be nil")
	}
	if g == nil {
		return nil, fmt.Errorf("generator cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required for request tracking and debugging")
	}
	if cfg == nil {
		cfg = &Config{
			Host: "localhost",
			Port: 9120,
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start)

			logger.Info("http request",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", duration),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)

			return err
		}
	})

	s := &Server{
		echo:      e,
		resolver:  r,
		generator: g,
		logger:    logger,
		config:    cfg,
	}

	s.registerRoutes()

	return s, nil
}

// registerRoutes sets up the HTTP endpoints.
func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)

	v1 := s.echo.Group("/api/v1")
	v1.POST("/resolve", s.handleResolve)
	v1.POST("/resolve/batch", s.handleResolveBatch)
	v1.POST("/testcase", s.handleTestcase)
	v1.GET("/statistics", s.handleStatistics)
	v1.DELETE("/cache", s.handleClearCache)
}

// ResolveRequest is the request body for POST /api/v1/resolve.
type ResolveRequest struct {
	Phrase string `json:"phrase"`
}

// BatchRequest is the request body for POST /api/v1/resolve/batch.
type BatchRequest struct {
	Phrases []string `json:"phrases"`
}

// TestcaseRequest is the request body for POST /api/v1/testcase.
// Mode "script" (default) returns the integrated Groovy script; "analyze"
// returns a mapping coverage report.
type TestcaseRequest struct {
	Content string `json:"content"`
	Mode    string `json:"mode,omitempty"`
}

// TestcaseScriptResponse is the script-mode response for POST /api/v1/testcase.
type TestcaseScriptResponse struct {
	Script string `json:"script"`
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

func (s *Server) handleResolve(c echo.Context) error {
	var req ResolveRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid resolve request", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Phrase == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "phrase field is required")
	}

	return c.JSON(http.StatusOK, s.resolver.Resolve(c.Request().Context(), req.Phrase))
}

func (s *Server) handleResolveBatch(c echo.Context) error {
	var req BatchRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid batch request", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if len(req.Phrases) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "phrases field is required")
	}

	return c.JSON(http.StatusOK, s.resolver.ResolveBatch(c.Request().Context(), req.Phrases))
}

func (s *Server) handleTestcase(c echo.Context) error {
	var req TestcaseRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid testcase request", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Content == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "content field is required")
	}

	doc := testcase.Parse(req.Content)
	if doc.Empty() {
		return echo.NewHTTPError(http.StatusBadRequest, "no phrases found in content")
	}

	ctx := c.Request().Context()
	if req.Mode == "analyze" {
		return c.JSON(http.StatusOK, s.generator.Analyze(ctx, doc))
	}
	return c.JSON(http.StatusOK, TestcaseScriptResponse{
		Script: s.generator.GenerateIntegrated(ctx, doc),
	})
}

func (s *Server) handleStatistics(c echo.Context) error {
	return c.JSON(http.StatusOK, s.resolver.Statistics())
}

func (s *Server) handleClearCache(c echo.Context) error {
	s.resolver.ClearCache()
	return c.NoContent(http.StatusNoContent)
}

// Echo exposes the underlying echo instance so the daemon can attach
// extra handlers like the metrics endpoint.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.logger.Info("starting http server", zap.String("addr", addr))
	return s.echo.Start(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.echo.Shutdown(ctx)
}
