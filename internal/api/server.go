// internal/api/server.go
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agarwalaashrut/JobAppREST/internal/common/config"
	"github.com/agarwalaashrut/JobAppREST/internal/common/logger"
	"github.com/agarwalaashrut/JobAppREST/internal/handlers"
)

const defaultIdleTimeout = 60 * time.Second

// Server wraps the gin engine and the underlying HTTP server.
type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	logger     logger.Logger
}

// NewServer builds the router with its middleware chain and routes.
func NewServer(
	cfg *config.Config,
	log logger.Logger,
	searchHandler *handlers.SearchHandler,
	appsHandler *handlers.ApplicationsHandler,
	healthHandler *handlers.HealthHandler,
) *Server {
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestID())
	engine.Use(RequestLogger(log))
	engine.Use(Metrics())
	engine.Use(CORS())

	SetupRoutes(engine, searchHandler, appsHandler, healthHandler)

	return &Server{
		engine: engine,
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:      engine,
			ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Millisecond,
			WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Millisecond,
			IdleTimeout:  defaultIdleTimeout,
		},
		logger: log,
	}
}

// LoadTemplates loads the HTML templates from the given glob. Split out of
// NewServer so tests can inject templates instead.
func (s *Server) LoadTemplates(glob string) {
	s.engine.LoadHTMLGlob(glob)
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Start blocks serving HTTP until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("HTTP server starting", map[string]interface{}{
		"addr": s.httpServer.Addr,
	})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("HTTP server shutting down", nil)
	return s.httpServer.Shutdown(ctx)
}
