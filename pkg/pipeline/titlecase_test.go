package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleCase(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"all lower", "quarterly budget review", "Quarterly Budget Review"},
		{"small words stay down", "state of the union", "State of the Union"},
		{"first word always raised", "the quarterly review", "The Quarterly Review"},
		{"last word always raised", "what we agreed on", "What We Agreed On"},
		{"existing caps untouched", "API Review with DevOps", "API Review with DevOps"},
		{"mixed", "planning for the next release", "Planning for the Next Release"},
		{"single word", "standup", "Standup"},
		{"single small word", "on", "On"},
		{"empty", "", ""},
		{"extra whitespace collapsed", "  weekly   sync  ", "Weekly Sync"},
		{"unicode initial", "études review", "Études Review"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TitleCase(tt.in))
		})
	}
}
