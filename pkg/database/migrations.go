package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient text search over transcript titles and summaries.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_transcripts_text_gin
		ON transcripts USING gin(to_tsvector('english',
			COALESCE(title, '') || ' ' || COALESCE(short_summary, '') || ' ' || COALESCE(long_summary, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create transcript text GIN index: %w", err)
	}

	// Topic summaries are searched independently of the parent transcript.
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_topics_summary_gin
		ON topics USING gin(to_tsvector('english', title || ' ' || summary))`)
	if err != nil {
		return fmt.Errorf("failed to create topic summary GIN index: %w", err)
	}

	return nil
}

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent cannot express. A platform participant may appear at most once per
// transcript, but anonymous participants (NULL platform_id) are unconstrained.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS participant_transcript_id_platform_id
		ON participants (transcript_id, platform_id)
		WHERE platform_id IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create participant platform index: %w", err)
	}

	return nil
}
