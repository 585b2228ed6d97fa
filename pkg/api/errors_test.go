package api

import (
	"fmt"
	"net/http"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"

	"github.com/monadical-sas/reflector/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{
			name:       "validation error maps to 400",
			err:        services.NewValidationError("name", "missing field"),
			expectCode: http.StatusBadRequest,
			expectMsg:  "missing field",
		},
		{
			name:       "invalid input maps to 400 with detail",
			err:        fmt.Errorf("%w: at least one track is required", services.ErrInvalidInput),
			expectCode: http.StatusBadRequest,
			expectMsg:  "at least one track is required",
		},
		{
			name:       "not found maps to 404",
			err:        fmt.Errorf("wrapped: %w", services.ErrNotFound),
			expectCode: http.StatusNotFound,
			expectMsg:  "resource not found",
		},
		{
			name:       "active run maps to 409",
			err:        services.ErrActiveRun,
			expectCode: http.StatusConflict,
			expectMsg:  "active workflow run",
		},
		{
			name:       "already exists maps to 409",
			err:        fmt.Errorf("wrapped: %w", services.ErrAlreadyExists),
			expectCode: http.StatusConflict,
			expectMsg:  "resource already exists",
		},
		{
			name:       "unknown error maps to 500",
			err:        fmt.Errorf("something unexpected happened"),
			expectCode: http.StatusInternalServerError,
			expectMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := mapServiceError(tt.err)
			assert.IsType(t, &echo.HTTPError{}, he)
			assert.Equal(t, tt.expectCode, he.Code)
			assert.Contains(t, he.Error(), tt.expectMsg)
		})
	}
}
