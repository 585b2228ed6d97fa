package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// reflectorYAMLConfig represents the optional reflector.yaml file structure.
// Only operator-tunable settings live here; endpoints and credentials come
// from the environment.
type reflectorYAMLConfig struct {
	Queue     *QueueConfig     `yaml:"queue"`
	Retention *RetentionConfig `yaml:"retention"`
}

// Load builds the runtime configuration: environment variables parsed into
// the Config struct, then the optional YAML file at yamlPath merged over the
// built-in queue/retention defaults. Validation failures abort startup.
func Load(yamlPath string) (*Config, error) {
	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DataDir:     getEnvOrDefault("DATA_DIR", "./data"),
		Host:        getEnvOrDefault("HOST", "0.0.0.0"),
		Port:        getEnvInt("PORT", 1250),
		PodID:       resolvePodID(),
		Pipeline: PipelineConfig{
			WaveformSegments:        getEnvInt("WAVEFORM_SEGMENTS", 1000),
			TopicChunkWordCount:     getEnvInt("TOPIC_CHUNK_WORD_COUNT", 300),
			PresignedURLTTL:         getEnvSeconds("PRESIGNED_URL_TTL_SECONDS", 900),
			LLMRetryNetworkAttempts: getEnvInt("LLM_RETRY_NETWORK_ATTEMPTS", 5),
			LLMRetryParseAttempts:   getEnvInt("LLM_RETRY_PARSE_ATTEMPTS", 3),
			LLMRetryWaitJitter:      getEnvBool("LLM_RETRY_WAIT_JITTER", true),
			TimeoutShort:            getEnvSeconds("TIMEOUT_SHORT", 60),
			TimeoutMedium:           getEnvSeconds("TIMEOUT_MEDIUM", 300),
			TimeoutLong:             getEnvSeconds("TIMEOUT_LONG", 600),
			TimeoutHeavy:            getEnvSeconds("TIMEOUT_HEAVY", 900),
		},
		Storage: StorageConfig{
			URL:            os.Getenv("TRANSCRIPT_STORAGE_URL"),
			Region:         getEnvOrDefault("TRANSCRIPT_STORAGE_REGION", "us-east-1"),
			Bucket:         os.Getenv("TRANSCRIPT_STORAGE_BUCKET"),
			AccessKey:      os.Getenv("TRANSCRIPT_STORAGE_ACCESS_KEY"),
			SecretKey:      os.Getenv("TRANSCRIPT_STORAGE_SECRET_KEY"),
			ForcePathStyle: getEnvBool("TRANSCRIPT_STORAGE_FORCE_PATH_STYLE", true),
		},
		ASR: ASRConfig{
			URL:           os.Getenv("ASR_URL"),
			APIKey:        os.Getenv("ASR_API_KEY"),
			RetryAttempts: getEnvInt("ASR_RETRY_ATTEMPTS", 3),
		},
		LLM: LLMConfig{
			URL:    os.Getenv("LLM_URL"),
			APIKey: os.Getenv("LLM_API_KEY"),
			Model:  getEnvOrDefault("LLM_MODEL", "gpt-4o-mini"),
		},
		Platform: PlatformConfig{
			URL:    os.Getenv("PLATFORM_API_URL"),
			APIKey: os.Getenv("PLATFORM_API_KEY"),
		},
		Zulip: ZulipConfig{
			SiteURL:  os.Getenv("ZULIP_SITE_URL"),
			BotEmail: os.Getenv("ZULIP_BOT_EMAIL"),
			APIKey:   os.Getenv("ZULIP_API_KEY"),
		},
		Audio: AudioConfig{
			FFmpegBin:  getEnvOrDefault("FFMPEG_BIN", "ffmpeg"),
			FFprobeBin: getEnvOrDefault("FFPROBE_BIN", "ffprobe"),
		},
		Queue:     DefaultQueueConfig(),
		Retention: DefaultRetentionConfig(),
	}

	if err := mergeYAML(cfg, yamlPath); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	slog.Info("Configuration loaded",
		"data_dir", cfg.DataDir,
		"storage_bucket", cfg.Storage.Bucket,
		"default_workers", cfg.Queue.DefaultWorkers,
		"cpu_workers", cfg.Queue.CPUWorkers,
		"zulip_enabled", cfg.ZulipEnabled(),
		"platform_enabled", cfg.PlatformEnabled())

	return cfg, nil
}

// mergeYAML overlays reflector.yaml values on top of the built-in defaults.
// A missing file is fine; a malformed one is a startup error.
func mergeYAML(cfg *Config, path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var fileCfg reflectorYAMLConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidYAML, path, err)
	}

	// Merge user config into defaults; non-zero user values override.
	if fileCfg.Queue != nil {
		if err := mergo.Merge(cfg.Queue, fileCfg.Queue, mergo.WithOverride); err != nil {
			return fmt.Errorf("failed to merge queue config: %w", err)
		}
	}
	if fileCfg.Retention != nil {
		if err := mergo.Merge(cfg.Retention, fileCfg.Retention, mergo.WithOverride); err != nil {
			return fmt.Errorf("failed to merge retention config: %w", err)
		}
	}
	return nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("%w: DATABASE_URL", ErrMissingRequiredField)
	}
	if c.Storage.Bucket == "" {
		return fmt.Errorf("%w: TRANSCRIPT_STORAGE_BUCKET", ErrMissingRequiredField)
	}
	if c.ASR.URL == "" {
		return fmt.Errorf("%w: ASR_URL", ErrMissingRequiredField)
	}
	if c.LLM.URL == "" {
		return fmt.Errorf("%w: LLM_URL", ErrMissingRequiredField)
	}
	if c.Pipeline.WaveformSegments <= 0 {
		return fmt.Errorf("%w: WAVEFORM_SEGMENTS must be positive", ErrInvalidValue)
	}
	if c.Pipeline.TopicChunkWordCount <= 0 {
		return fmt.Errorf("%w: TOPIC_CHUNK_WORD_COUNT must be positive", ErrInvalidValue)
	}
	if c.Pipeline.LLMRetryNetworkAttempts < 1 || c.Pipeline.LLMRetryParseAttempts < 1 {
		return fmt.Errorf("%w: LLM retry attempts must be at least 1", ErrInvalidValue)
	}
	if c.Queue.DefaultWorkers < 1 {
		return fmt.Errorf("%w: queue.default_workers must be at least 1", ErrInvalidValue)
	}
	if c.Queue.CPUWorkers < 1 {
		return fmt.Errorf("%w: queue.cpu_workers must be at least 1", ErrInvalidValue)
	}
	if c.Queue.PollIntervalJitter >= c.Queue.PollInterval {
		return fmt.Errorf("%w: queue.poll_interval_jitter must be below queue.poll_interval", ErrInvalidValue)
	}
	return nil
}

func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	hostname, err := os.Hostname()
	if err != nil {
		return "reflector-unknown"
	}
	return hostname
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("Invalid integer in environment, using default",
			"key", key, "value", value, "default", defaultValue)
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		slog.Warn("Invalid boolean in environment, using default",
			"key", key, "value", value, "default", defaultValue)
		return defaultValue
	}
	return b
}

func getEnvSeconds(key string, defaultSeconds int) time.Duration {
	return time.Duration(getEnvInt(key, defaultSeconds)) * time.Second
}
