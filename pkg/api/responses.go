package api

import (
	"github.com/monadical-sas/reflector/pkg/database"
	"github.com/monadical-sas/reflector/pkg/queue"
)

// PipelineResponse is returned by POST /v1/pipelines/multitrack.
type PipelineResponse struct {
	TranscriptID  string `json:"transcript_id"`
	WorkflowRunID string `json:"workflow_run_id"`
	Message       string `json:"message"`
}

// HealthResponse is returned by GET /v1/health.
type HealthResponse struct {
	Status     string                 `json:"status"`
	Version    string                 `json:"version"`
	Checks     map[string]HealthCheck `json:"checks"`
	Database   *database.HealthStatus `json:"database,omitempty"`
	WorkerPool *queue.PoolHealth      `json:"worker_pool,omitempty"`
}

// HealthCheck is one component entry in HealthResponse.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
