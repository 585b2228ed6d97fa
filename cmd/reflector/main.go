// Reflector server — provides the HTTP API, manages queue workers, and
// runs the multitrack post-processing pipeline.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/monadical-sas/reflector/pkg/api"
	"github.com/monadical-sas/reflector/pkg/asr"
	"github.com/monadical-sas/reflector/pkg/audio"
	"github.com/monadical-sas/reflector/pkg/cleanup"
	"github.com/monadical-sas/reflector/pkg/config"
	"github.com/monadical-sas/reflector/pkg/database"
	"github.com/monadical-sas/reflector/pkg/events"
	"github.com/monadical-sas/reflector/pkg/llm"
	"github.com/monadical-sas/reflector/pkg/objectstore"
	"github.com/monadical-sas/reflector/pkg/pipeline"
	"github.com/monadical-sas/reflector/pkg/platform"
	"github.com/monadical-sas/reflector/pkg/queue"
	"github.com/monadical-sas/reflector/pkg/services"
	"github.com/monadical-sas/reflector/pkg/version"
	"github.com/monadical-sas/reflector/pkg/webhook"
	"github.com/monadical-sas/reflector/pkg/zulip"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// Parse command-line flags
	configPath := flag.String("config",
		getEnv("REFLECTOR_CONFIG", "./reflector.yaml"),
		"Path to the optional reflector.yaml")
	envPath := flag.String("env-file",
		getEnv("ENV_FILE", ".env"),
		"Path to the .env file")
	flag.Parse()

	// Load .env before anything reads the environment
	if err := godotenv.Load(*envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", *envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", *envPath)
	}

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting reflector",
		"version", version.Full(),
		"pod_id", cfg.PodID,
		"host", cfg.Host,
		"port", cfg.Port)

	// 2. Initialize database (runs embedded migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Verify ffmpeg/ffprobe before accepting any work
	codec := audio.New(cfg.Audio)
	if err := codec.CheckAvailable(ctx); err != nil {
		slog.Error("Audio toolchain unavailable", "error", err)
		os.Exit(1)
	}

	// 4. Domain services
	transcripts := services.NewTranscriptService(dbClient.Client)
	meetings := services.NewMeetingService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	slog.Info("Services initialized")

	// 5. Streaming infrastructure
	publisher := events.NewPublisher(dbClient.Client, eventService)
	catchupQuerier := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(catchupQuerier, 10*time.Second)

	// Start NotifyListener (dedicated pgx connection for LISTEN)
	notifyListener := events.NewNotifyListener(cfg.DatabaseURL, connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)

	// Wire listener ↔ manager bidirectional link
	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 6. External clients
	store, err := objectstore.New(ctx, cfg.Storage)
	if err != nil {
		slog.Error("Failed to initialize transcript store", "error", err)
		os.Exit(1)
	}

	asrClient := asr.NewClient(cfg.ASR)
	llmClient := llm.NewClient(cfg.LLM, llm.RetryConfig{
		NetworkAttempts: cfg.Pipeline.LLMRetryNetworkAttempts,
		ParseAttempts:   cfg.Pipeline.LLMRetryParseAttempts,
		Jitter:          cfg.Pipeline.LLMRetryWaitJitter,
	})

	var platformClient *platform.Client
	if cfg.PlatformEnabled() {
		platformClient = platform.NewClient(cfg.Platform)
		slog.Info("Platform client initialized", "url", cfg.Platform.URL)
	} else {
		slog.Info("Platform API not configured, using manifest data only")
	}

	zulipService := zulip.NewService(cfg.Zulip)
	if zulipService == nil {
		slog.Info("Zulip not configured, room notifications disabled")
	}
	webhookSender := webhook.NewSender()

	// 7. Pipeline handlers + worker pool
	pipe := pipeline.New(cfg, dbClient.Client, pipeline.Deps{
		Transcripts: transcripts,
		Meetings:    meetings,
		Publisher:   publisher,
		Store:       store,
		Codec:       codec,
		ASR:         asrClient,
		LLM:         llmClient,
		Platform:    platformClient,
		Zulip:       zulipService,
		Webhook:     webhookSender,
	})
	registry := queue.NewRegistry()
	pipe.Register(registry)

	workerPool := queue.NewWorkerPool(cfg.PodID, dbClient.Client, cfg.Queue, registry, pipe.FailureHook())
	if err := workerPool.RecoverStartupOrphans(ctx); err != nil {
		slog.Error("Failed to recover startup orphans", "error", err)
		// Non-fatal — the periodic orphan scan will catch them
	}
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 8. Retention janitor
	janitor := cleanup.NewService(cfg.Retention, dbClient.Client, store)
	janitor.Start(ctx)

	// 9. HTTP server (non-blocking)
	httpServer := api.NewServer(cfg, dbClient, pipe, workerPool, connManager)
	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Reflector started successfully",
		"pod_id", cfg.PodID,
		"default_workers", cfg.Queue.DefaultWorkers,
		"cpu_workers", cfg.Queue.CPUWorkers)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown
	janitor.Stop()

	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	// Stop worker pool (wait for in-flight tasks to complete)
	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete tasks will be orphan-recovered")
	}

	// Stop HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
