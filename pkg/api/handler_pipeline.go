package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/monadical-sas/reflector/pkg/models"
)

// submitPipelineHandler handles POST /v1/pipelines/multitrack.
// Seeds the task DAG for a recording and returns immediately; progress is
// streamed over the websocket.
func (s *Server) submitPipelineHandler(c *echo.Context) error {
	// 1. Bind the recording manifest
	var manifest models.RecordingManifest
	if err := c.Bind(&manifest); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// 2. Validate before touching any state
	if err := manifest.Validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// 3. Claim a run and enqueue. One active run per transcript.
	workflowRunID, err := s.pipeline.Start(c.Request().Context(), &manifest)
	if err != nil {
		return mapServiceError(err)
	}

	// 4. Return response
	return c.JSON(http.StatusAccepted, &PipelineResponse{
		TranscriptID:  manifest.TranscriptID,
		WorkflowRunID: workflowRunID,
		Message:       "Recording accepted for processing",
	})
}
