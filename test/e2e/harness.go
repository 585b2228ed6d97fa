// Package e2e boots the full reflector stack — real PostgreSQL, real
// queue workers, real NOTIFY/LISTEN streaming, real HTTP server — and
// drives it through the public API the way the platform does. External
// services (transcript store, ASR, LLM, Zulip, webhook receivers) are
// replaced by in-process fakes speaking the real wire protocols, so the
// SDK clients and their retry paths are exercised for real.
//
// Tests that shell out to ffmpeg/ffprobe skip themselves when the
// binaries are not installed; everything else runs anywhere Docker (or
// CI_DATABASE_URL) is available.
package e2e

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/monadical-sas/reflector/ent"
	"github.com/monadical-sas/reflector/pkg/api"
	"github.com/monadical-sas/reflector/pkg/asr"
	"github.com/monadical-sas/reflector/pkg/audio"
	"github.com/monadical-sas/reflector/pkg/config"
	"github.com/monadical-sas/reflector/pkg/database"
	"github.com/monadical-sas/reflector/pkg/events"
	"github.com/monadical-sas/reflector/pkg/llm"
	"github.com/monadical-sas/reflector/pkg/objectstore"
	"github.com/monadical-sas/reflector/pkg/pipeline"
	"github.com/monadical-sas/reflector/pkg/queue"
	"github.com/monadical-sas/reflector/pkg/services"
	"github.com/monadical-sas/reflector/pkg/webhook"
	"github.com/monadical-sas/reflector/pkg/zulip"
	testdb "github.com/monadical-sas/reflector/test/database"
	"github.com/monadical-sas/reflector/test/util"
)

// sourceBucket is where tests seed raw recording tracks, distinct from
// the store's default bucket so cross-bucket handling is covered.
const sourceBucket = "sources"

// TestApp is a fully wired reflector instance bound to a random port.
type TestApp struct {
	t *testing.T

	Config     *config.Config
	DBClient   *database.Client
	EntClient  *ent.Client
	Store      *objectstore.Store
	Publisher  *events.Publisher
	Pipeline   *pipeline.Pipeline
	WorkerPool *queue.WorkerPool

	S3       *FakeS3
	ASR      *FakeASR
	LLM      *FakeLLM
	Zulip    *FakeZulip
	Webhooks *WebhookSink

	// BaseURL is http://127.0.0.1:<port>; WSURL is the websocket form.
	BaseURL string
	WSURL   string
}

type appOptions struct {
	defaultWorkers int
	cpuWorkers     int
	chunkWords     int
}

// Option customizes the app under test.
type Option func(*appOptions)

// WithWorkers sets the default-queue worker count. Zero freezes the
// queue: submissions enqueue but nothing ever claims, which tests use
// to observe pre-execution state deterministically.
func WithWorkers(n int) Option {
	return func(o *appOptions) {
		o.defaultWorkers = n
		if n == 0 {
			o.cpuWorkers = 0
		}
	}
}

// WithTopicChunkWords overrides the topic-detection window size so small
// fixture transcripts still fan out into multiple chunks.
func WithTopicChunkWords(n int) Option {
	return func(o *appOptions) { o.chunkWords = n }
}

// NewTestApp boots the stack and tears it down in reverse order when the
// test ends. Skips under -short (the database setup needs Docker or
// CI_DATABASE_URL).
func NewTestApp(t *testing.T, opts ...Option) *TestApp {
	t.Helper()

	options := appOptions{defaultWorkers: 2, cpuWorkers: 1, chunkWords: 12}
	for _, opt := range opts {
		opt(&options)
	}

	ctx := context.Background()
	dbClient := testdb.NewTestClient(t)

	// Fakes come up before any component that may call them, and their
	// t.Cleanup closers run after the worker pool has drained.
	fakeS3 := NewFakeS3(t)
	fakeASR := NewFakeASR(t)
	fakeLLM := NewFakeLLM(t)
	fakeZulip := NewFakeZulip(t)
	sink := NewWebhookSink(t)

	cfg := &config.Config{
		DatabaseURL: util.GetBaseConnectionString(t),
		DataDir:     t.TempDir(),
		PodID:       "e2e-" + uuid.NewString()[:8],
		Pipeline: config.PipelineConfig{
			WaveformSegments:        40,
			TopicChunkWordCount:     options.chunkWords,
			PresignedURLTTL:         15 * time.Minute,
			LLMRetryNetworkAttempts: 2,
			LLMRetryParseAttempts:   2,
			TimeoutShort:            30 * time.Second,
			TimeoutMedium:           60 * time.Second,
			TimeoutLong:             90 * time.Second,
			TimeoutHeavy:            120 * time.Second,
		},
		Storage: config.StorageConfig{
			URL:            fakeS3.URL(),
			Region:         "us-east-1",
			Bucket:         "recordings",
			AccessKey:      "test-access",
			SecretKey:      "test-secret",
			ForcePathStyle: true,
		},
		ASR: config.ASRConfig{URL: fakeASR.URL(), APIKey: "test-key", RetryAttempts: 2},
		LLM: config.LLMConfig{URL: fakeLLM.URL() + "/v1", APIKey: "test-key", Model: "test-model"},
		Zulip: config.ZulipConfig{
			SiteURL:  fakeZulip.URL(),
			BotEmail: "reflector-bot@e2e.test",
			APIKey:   "test-key",
		},
		Queue: &config.QueueConfig{
			DefaultWorkers:          options.defaultWorkers,
			CPUWorkers:              options.cpuWorkers,
			PollInterval:            50 * time.Millisecond,
			PollIntervalJitter:      25 * time.Millisecond,
			HeartbeatInterval:       5 * time.Second,
			GracefulShutdownTimeout: 10 * time.Second,
			OrphanDetectionInterval: time.Minute,
			OrphanThreshold:         time.Minute,
		},
		Retention: config.DefaultRetentionConfig(),
	}

	transcripts := services.NewTranscriptService(dbClient.Client)
	meetings := services.NewMeetingService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)

	publisher := events.NewPublisher(dbClient.Client, eventService)
	connManager := events.NewConnectionManager(events.NewEventServiceAdapter(eventService), 5*time.Second)

	// LISTEN rides the base connection string: NOTIFY channels are
	// database-global, the per-test schema only scopes the tables.
	listener := events.NewNotifyListener(cfg.DatabaseURL, connManager)
	require.NoError(t, listener.Start(ctx))
	connManager.SetListener(listener)
	t.Cleanup(func() { listener.Stop(context.Background()) })

	store, err := objectstore.New(ctx, cfg.Storage)
	require.NoError(t, err)

	pipe := pipeline.New(cfg, dbClient.Client, pipeline.Deps{
		Transcripts: transcripts,
		Meetings:    meetings,
		Publisher:   publisher,
		Store:       store,
		Codec:       audio.New(cfg.Audio),
		ASR:         asr.NewClient(cfg.ASR),
		LLM: llm.NewClient(cfg.LLM, llm.RetryConfig{
			NetworkAttempts: cfg.Pipeline.LLMRetryNetworkAttempts,
			ParseAttempts:   cfg.Pipeline.LLMRetryParseAttempts,
		}),
		Platform: nil, // manifest-only mode, like a standalone deployment
		Zulip:    zulip.NewService(cfg.Zulip),
		Webhook:  webhook.NewSender(),
	})
	registry := queue.NewRegistry()
	pipe.Register(registry)

	workerPool := queue.NewWorkerPool(cfg.PodID, dbClient.Client, cfg.Queue, registry, pipe.FailureHook())
	require.NoError(t, workerPool.Start(ctx))
	t.Cleanup(workerPool.Stop)

	server := api.NewServer(cfg, dbClient, pipe, workerPool, connManager)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = server.StartWithListener(ln) }()
	t.Cleanup(func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	})

	addr := ln.Addr().String()
	return &TestApp{
		t:          t,
		Config:     cfg,
		DBClient:   dbClient,
		EntClient:  dbClient.Client,
		Store:      store,
		Publisher:  publisher,
		Pipeline:   pipe,
		WorkerPool: workerPool,
		S3:         fakeS3,
		ASR:        fakeASR,
		LLM:        fakeLLM,
		Zulip:      fakeZulip,
		Webhooks:   sink,
		BaseURL:    fmt.Sprintf("http://%s", addr),
		WSURL:      fmt.Sprintf("ws://%s/v1/ws", addr),
	}
}
