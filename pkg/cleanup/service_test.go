package cleanup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monadical-sas/reflector/ent"
	"github.com/monadical-sas/reflector/ent/pipelinetask"
	"github.com/monadical-sas/reflector/ent/transcript"
	"github.com/monadical-sas/reflector/pkg/config"
	"github.com/monadical-sas/reflector/pkg/objectstore"
	testdb "github.com/monadical-sas/reflector/test/database"
)

func testRetention() *config.RetentionConfig {
	return &config.RetentionConfig{
		TaskRetention:       30 * 24 * time.Hour,
		PaddedBlobRetention: 7 * 24 * time.Hour,
		CleanupInterval:     time.Hour,
	}
}

func createTranscript(ctx context.Context, t *testing.T, client *ent.Client, status transcript.Status, age time.Duration) string {
	t.Helper()
	tr, err := client.Transcript.Create().
		SetID(uuid.New().String()).
		SetName("test recording").
		SetStatus(status).
		SetUpdatedAt(time.Now().Add(-age)).
		Save(ctx)
	require.NoError(t, err)
	return tr.ID
}

func createTask(ctx context.Context, t *testing.T, client *ent.Client, transcriptID string, status pipelinetask.Status, age time.Duration) string {
	t.Helper()
	id := uuid.New().String()
	_, err := client.PipelineTask.Create().
		SetID(id).
		SetTranscriptID(transcriptID).
		SetWorkflowRunID(uuid.New().String()).
		SetName("get_recording").
		SetStatus(status).
		SetUpdatedAt(time.Now().Add(-age)).
		Save(ctx)
	require.NoError(t, err)
	return id
}

func TestService_PurgesOldFinishedTasks(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	trID := createTranscript(ctx, t, db.Client, transcript.StatusEnded, 0)
	oldCompleted := createTask(ctx, t, db.Client, trID, pipelinetask.StatusCompleted, 40*24*time.Hour)
	oldCancelled := createTask(ctx, t, db.Client, trID, pipelinetask.StatusCancelled, 40*24*time.Hour)
	oldFailed := createTask(ctx, t, db.Client, trID, pipelinetask.StatusFailed, 40*24*time.Hour)
	recentCompleted := createTask(ctx, t, db.Client, trID, pipelinetask.StatusCompleted, 24*time.Hour)

	svc := NewService(testRetention(), db.Client, nil)
	svc.runAll(ctx)

	remaining, err := db.Client.PipelineTask.Query().IDs(ctx)
	require.NoError(t, err)
	assert.NotContains(t, remaining, oldCompleted)
	assert.NotContains(t, remaining, oldCancelled)
	assert.Contains(t, remaining, oldFailed, "failed rows stay for post-mortems")
	assert.Contains(t, remaining, recentCompleted)
}

func TestService_SweepsErroredRunBlobs(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	// In the sweep window: errored 10 days ago.
	swept := createTranscript(ctx, t, db.Client, transcript.StatusError, 10*24*time.Hour)
	// Too fresh: a retry may still reuse its blobs.
	fresh := createTranscript(ctx, t, db.Client, transcript.StatusError, 24*time.Hour)
	// Past the task-retention horizon: assumed already swept.
	ancient := createTranscript(ctx, t, db.Client, transcript.StatusError, 40*24*time.Hour)
	// Wrong status entirely.
	createTranscript(ctx, t, db.Client, transcript.StatusEnded, 10*24*time.Hour)

	var mu sync.Mutex
	var listedPrefixes, deletedPaths []string
	store := newHTTPStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			prefix := r.URL.Query().Get("prefix")
			mu.Lock()
			listedPrefixes = append(listedPrefixes, prefix)
			mu.Unlock()
			w.Header().Set("Content-Type", "application/xml")
			_, _ = w.Write([]byte(listObjectsXML(prefix,
				prefix+"padded_0.webm", prefix+"padded_1.webm")))
		case http.MethodDelete:
			mu.Lock()
			deletedPaths = append(deletedPaths, r.URL.Path)
			mu.Unlock()
			w.WriteHeader(http.StatusNoContent)
		}
	}))

	svc := NewService(testRetention(), db.Client, store)
	svc.runAll(ctx)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"tmp/" + swept + "/tracks/"}, listedPrefixes)
	assert.Len(t, deletedPaths, 2)
	for _, p := range deletedPaths {
		assert.Contains(t, p, swept)
		assert.NotContains(t, p, fresh)
		assert.NotContains(t, p, ancient)
	}
}

func TestService_StartStop(t *testing.T) {
	db := testdb.NewTestClient(t)

	svc := NewService(testRetention(), db.Client, nil)
	svc.Start(context.Background())
	svc.Stop()

	// Stop on a stopped service is a no-op.
	svc.Stop()
}

// newHTTPStore points a real SDK client at an httptest server.
func newHTTPStore(t *testing.T, handler http.Handler) *objectstore.Store {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store, err := objectstore.New(context.Background(), config.StorageConfig{
		URL:            srv.URL,
		Region:         "us-east-1",
		Bucket:         "recordings",
		AccessKey:      "test-access",
		SecretKey:      "test-secret",
		ForcePathStyle: true,
	})
	require.NoError(t, err)
	return store
}

func listObjectsXML(prefix string, keys ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString(`<ListBucketResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/">`)
	b.WriteString(`<Name>recordings</Name><Prefix>` + prefix + `</Prefix>`)
	b.WriteString(`<MaxKeys>1000</MaxKeys><IsTruncated>false</IsTruncated>`)
	for _, key := range keys {
		b.WriteString(`<Contents><Key>` + key + `</Key><Size>10</Size></Contents>`)
	}
	b.WriteString(`</ListBucketResult>`)
	return b.String()
}
