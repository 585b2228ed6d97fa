package zulip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSummaryMessage(t *testing.T) {
	t.Run("title and summary", func(t *testing.T) {
		msg := BuildSummaryMessage("Weekly Sync", "We planned the release.")
		assert.Equal(t, "**Weekly Sync**\n\nWe planned the release.", msg)
	})

	t.Run("title only", func(t *testing.T) {
		assert.Equal(t, "**Weekly Sync**", BuildSummaryMessage("Weekly Sync", ""))
	})

	t.Run("summary only", func(t *testing.T) {
		assert.Equal(t, "We planned the release.", BuildSummaryMessage("", "We planned the release."))
	})

	t.Run("both empty falls back to a placeholder", func(t *testing.T) {
		assert.Equal(t, "Recording processed.", BuildSummaryMessage("", ""))
	})
}
