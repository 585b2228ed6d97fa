package llm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain object", `{"a":1}`, `{"a":1}`},
		{"plain array", `[1,2]`, `[1,2]`},
		{"whitespace trimmed", "  {\"a\":1}\n", `{"a":1}`},
		{"tagged fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"single line fence", "```{\"a\":1}```", `{"a":1}`},
		{"fence with tag on same line", "```json {\"a\":1}```", `{"a":1}`},
		{"prose around object", `Sure, here you go: {"a":1}`, `{"a":1}`},
		{"prose on both sides", `Here: {"a":1} as requested.`, `{"a":1}`},
		{"no json at all", "no json here", "no json here"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSON(tt.raw))
		})
	}
}

func TestValidateAgainst(t *testing.T) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(titleSchema))
	require.NoError(t, err)

	t.Run("valid document", func(t *testing.T) {
		assert.Nil(t, validateAgainst(schema, `{"title":"Standup"}`))
	})

	t.Run("missing required field", func(t *testing.T) {
		issues := validateAgainst(schema, `{}`)
		require.NotEmpty(t, issues)
		assert.Contains(t, issues[0], "title")
	})

	t.Run("wrong type", func(t *testing.T) {
		issues := validateAgainst(schema, `{"title": 7}`)
		assert.NotEmpty(t, issues)
	})

	t.Run("extra field rejected", func(t *testing.T) {
		issues := validateAgainst(schema, `{"title":"ok","extra":true}`)
		assert.NotEmpty(t, issues)
	})

	t.Run("not json", func(t *testing.T) {
		issues := validateAgainst(schema, "certainly!")
		assert.Len(t, issues, 1)
	})
}

func TestParseError(t *testing.T) {
	perr := &ParseError{Raw: "oops", Issues: []string{"a is required", "b must be a string"}}
	assert.Equal(t, "llm response failed validation: a is required; b must be a string", perr.Error())

	assert.True(t, IsParseError(perr))
	assert.True(t, IsParseError(fmt.Errorf("generate title: %w", perr)))
	assert.False(t, IsParseError(errors.New("connection refused")))
}
