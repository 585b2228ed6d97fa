// Package config loads and validates all runtime configuration: environment
// variables for endpoints and credentials, plus an optional reflector.yaml
// for operator-tunable worker/queue/retention settings.
package config

import (
	"time"
)

// Config is the umbrella configuration object returned by Load() and
// passed to every component constructor.
type Config struct {
	// DatabaseURL is the Postgres DSN (postgres://...).
	DatabaseURL string

	// DataDir is the local directory for per-transcript artifacts
	// (waveform JSON).
	DataDir string

	// Host and Port bind the HTTP server.
	Host string
	Port int

	// PodID identifies this replica for multi-pod coordination.
	// Defaults to the hostname.
	PodID string

	Pipeline  PipelineConfig
	Storage   StorageConfig
	ASR       ASRConfig
	LLM       LLMConfig
	Platform  PlatformConfig
	Zulip     ZulipConfig
	Audio     AudioConfig
	Queue     *QueueConfig
	Retention *RetentionConfig
}

// PipelineConfig carries the pipeline tuning knobs.
type PipelineConfig struct {
	// WaveformSegments is the fixed length of the waveform vector.
	WaveformSegments int

	// TopicChunkWordCount is the topic-detection window size in words.
	TopicChunkWordCount int

	// PresignedURLTTL bounds the lifetime of presigned object URLs.
	PresignedURLTTL time.Duration

	// LLMRetryNetworkAttempts bounds retries of transient LLM failures.
	LLMRetryNetworkAttempts int

	// LLMRetryParseAttempts bounds re-prompts after schema/parse failures.
	LLMRetryParseAttempts int

	// LLMRetryWaitJitter randomizes the retry backoff when true.
	LLMRetryWaitJitter bool

	// Task execution timeouts by weight class.
	TimeoutShort  time.Duration
	TimeoutMedium time.Duration
	TimeoutLong   time.Duration
	TimeoutHeavy  time.Duration
}

// StorageConfig points at the S3-compatible transcript store.
type StorageConfig struct {
	URL            string
	Region         string
	Bucket         string
	AccessKey      string
	SecretKey      string
	ForcePathStyle bool
}

// ASRConfig points at the remote transcription service.
type ASRConfig struct {
	URL           string
	APIKey        string
	RetryAttempts int
}

// LLMConfig points at an OpenAI-compatible completion gateway.
type LLMConfig struct {
	URL    string
	APIKey string
	Model  string
}

// PlatformConfig points at the conferencing platform API used for
// recording metadata and the participant roster. Optional; the pipeline
// degrades to synthesized speaker names without it.
type PlatformConfig struct {
	URL    string
	APIKey string
}

// ZulipConfig enables chat notifications when all three are set.
type ZulipConfig struct {
	SiteURL  string
	BotEmail string
	APIKey   string
}

// AudioConfig locates the codec binaries.
type AudioConfig struct {
	FFmpegBin  string
	FFprobeBin string
}

// ZulipEnabled reports whether the notification service should start.
func (c *Config) ZulipEnabled() bool {
	return c.Zulip.SiteURL != "" && c.Zulip.BotEmail != "" && c.Zulip.APIKey != ""
}

// PlatformEnabled reports whether the roster/recording client should start.
func (c *Config) PlatformEnabled() bool {
	return c.Platform.URL != ""
}
