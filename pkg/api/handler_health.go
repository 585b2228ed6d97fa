package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/monadical-sas/reflector/pkg/queue"
	"github.com/monadical-sas/reflector/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /v1/health.
// Only reflector's own components (database, worker pool) are checked.
// External dependencies (ASR, LLM, transcript store) are excluded so the
// orchestrator does not restart reflector when an external service is down.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	dbHealth, err := s.dbClient.Health(reqCtx)
	if err != nil {
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	var poolHealth *queue.PoolHealth
	if s.workerPool != nil {
		poolHealth = s.workerPool.Health()
		if poolHealth != nil && !poolHealth.IsHealthy {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			msg := healthStatusUnhealthy
			if poolHealth.DBError != "" {
				msg = poolHealth.DBError
			}
			checks["worker_pool"] = HealthCheck{Status: healthStatusDegraded, Message: msg}
		} else {
			checks["worker_pool"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, &HealthResponse{
		Status:     status,
		Version:    version.GitCommit,
		Checks:     checks,
		Database:   dbHealth,
		WorkerPool: poolHealth,
	})
}
