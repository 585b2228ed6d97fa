package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// TaskRetention is how long completed/cancelled pipeline-task rows
	// are kept before the janitor deletes them.
	TaskRetention time.Duration `yaml:"task_retention"`

	// PaddedBlobRetention is the maximum age of tmp/ padded-track blobs
	// belonging to errored runs before they are removed from storage.
	// Finalize handles the normal case; this is a safety net.
	PaddedBlobRetention time.Duration `yaml:"padded_blob_retention"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		TaskRetention:       30 * 24 * time.Hour,
		PaddedBlobRetention: 7 * 24 * time.Hour,
		CleanupInterval:     12 * time.Hour,
	}
}
