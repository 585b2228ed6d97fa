// Package api exposes the HTTP surface: pipeline ingress, the live event
// websocket and the health endpoint. Browsing and auth are handled by the
// main platform, not here.
package api

import (
	"context"
	"net"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/monadical-sas/reflector/pkg/config"
	"github.com/monadical-sas/reflector/pkg/database"
	"github.com/monadical-sas/reflector/pkg/events"
	"github.com/monadical-sas/reflector/pkg/pipeline"
	"github.com/monadical-sas/reflector/pkg/queue"
)

// Server wires the echo router to the pipeline and streaming components.
type Server struct {
	cfg         *config.Config
	dbClient    *database.Client
	pipeline    *pipeline.Pipeline
	workerPool  *queue.WorkerPool
	connManager *events.ConnectionManager

	echo *echo.Echo
	http *http.Server
}

// NewServer creates the API server and registers all routes.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	pipe *pipeline.Pipeline,
	workerPool *queue.WorkerPool,
	connManager *events.ConnectionManager,
) *Server {
	s := &Server{
		cfg:         cfg,
		dbClient:    dbClient,
		pipeline:    pipe,
		workerPool:  workerPool,
		connManager: connManager,
	}
	s.echo = s.routes()
	return s
}

func (s *Server) routes() *echo.Echo {
	e := echo.New()
	e.Use(securityHeaders())
	e.Use(requestLogger())

	v1 := e.Group("/v1")
	v1.POST("/pipelines/multitrack", s.submitPipelineHandler)
	v1.GET("/ws", s.wsHandler)
	v1.GET("/health", s.healthHandler)

	return e
}

// Start listens on addr and serves until Shutdown or a listener error.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{Addr: addr, Handler: s.echo}
	return s.http.ListenAndServe()
}

// StartWithListener serves on an already-bound listener. Used by tests to
// bind a random port.
func (s *Server) StartWithListener(ln net.Listener) error {
	s.http = &http.Server{Handler: s.echo}
	return s.http.Serve(ln)
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
