package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how pipeline tasks are polled, claimed, and processed.
type QueueConfig struct {
	// DefaultWorkers is the number of workers pulling from the default
	// queue per replica/pod.
	DefaultWorkers int `yaml:"default_workers"`

	// CPUWorkers is the number of workers pulling from the cpu queue
	// (mixdown and other codec-bound tasks). Keep this small; the work
	// saturates cores.
	CPUWorkers int `yaml:"cpu_workers"`

	// PollInterval is the base interval for checking pending tasks.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// HeartbeatInterval is how often a running task bumps
	// last_interaction_at.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// GracefulShutdownTimeout is the max time to wait for in-flight tasks
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanDetectionInterval is how often to scan for orphaned tasks.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a task can go without a heartbeat
	// before it is considered orphaned and re-driven.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		DefaultWorkers:          5,
		CPUWorkers:              1,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		HeartbeatInterval:       30 * time.Second,
		GracefulShutdownTimeout: 15 * time.Minute,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
	}
}
