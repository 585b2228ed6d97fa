package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

func TestSubmitPipelineHandler_Validation(t *testing.T) {
	// Only manifest validation is tested here (returns 400 before touching
	// the pipeline). Happy-path needs a database and is covered elsewhere.
	s := &Server{}

	tests := []struct {
		name    string
		body    string
		wantErr int
		errMsg  string
	}{
		{
			name:    "malformed JSON",
			body:    `{"recording_id": `,
			wantErr: http.StatusBadRequest,
		},
		{
			name:    "missing recording id",
			body:    `{"bucket":"recordings","transcript_id":"tr-1","tracks":[{"s3_key":"a.webm"}]}`,
			wantErr: http.StatusBadRequest,
			errMsg:  "recording_id is required",
		},
		{
			name:    "missing transcript id",
			body:    `{"recording_id":"rec-1","bucket":"recordings","tracks":[{"s3_key":"a.webm"}]}`,
			wantErr: http.StatusBadRequest,
			errMsg:  "transcript_id is required",
		},
		{
			name:    "missing bucket",
			body:    `{"recording_id":"rec-1","transcript_id":"tr-1","tracks":[{"s3_key":"a.webm"}]}`,
			wantErr: http.StatusBadRequest,
			errMsg:  "bucket is required",
		},
		{
			name:    "no tracks",
			body:    `{"recording_id":"rec-1","transcript_id":"tr-1","bucket":"recordings","tracks":[]}`,
			wantErr: http.StatusBadRequest,
			errMsg:  "at least one track is required",
		},
		{
			name:    "blank track key",
			body:    `{"recording_id":"rec-1","transcript_id":"tr-1","bucket":"recordings","tracks":[{"s3_key":""}]}`,
			wantErr: http.StatusBadRequest,
			errMsg:  "tracks[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/v1/pipelines/multitrack", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := s.submitPipelineHandler(c)
			if assert.Error(t, err) {
				he, ok := err.(*echo.HTTPError)
				if assert.True(t, ok, "expected echo.HTTPError") {
					assert.Equal(t, tt.wantErr, he.Code)
					if tt.errMsg != "" {
						assert.Contains(t, he.Message, tt.errMsg)
					}
				}
			}
		})
	}
}

func TestWSHandler_NoManager(t *testing.T) {
	s := &Server{}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/ws", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := s.wsHandler(c)
	if assert.Error(t, err) {
		he, ok := err.(*echo.HTTPError)
		if assert.True(t, ok) {
			assert.Equal(t, http.StatusServiceUnavailable, he.Code)
		}
	}
}
