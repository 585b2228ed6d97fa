package llm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ParseError is the terminal error of CompleteStructured: the model's
// last raw output plus everything the validator disliked about it.
type ParseError struct {
	Raw    string
	Issues []string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("llm response failed validation: %s", strings.Join(e.Issues, "; "))
}

// IsParseError checks whether err is a parse/validation failure.
func IsParseError(err error) bool {
	var perr *ParseError
	return errors.As(err, &perr)
}

// validateAgainst returns nil when doc satisfies the schema, else the
// validator's messages. A doc that is not JSON at all comes back as a
// single issue.
func validateAgainst(schema *gojsonschema.Schema, doc string) []string {
	result, err := schema.Validate(gojsonschema.NewStringLoader(doc))
	if err != nil {
		return []string{err.Error()}
	}
	if result.Valid() {
		return nil
	}
	issues := make([]string, 0, len(result.Errors()))
	for _, resErr := range result.Errors() {
		issues = append(issues, resErr.String())
	}
	return issues
}

// extractJSON tolerates markdown code fences and surrounding prose:
// models fence their JSON no matter how firmly the prompt says not to.
func extractJSON(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		if i := strings.IndexByte(s, '\n'); i >= 0 {
			s = s[i+1:]
		}
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}
	if len(s) > 0 && s[0] != '{' && s[0] != '[' {
		if start := strings.IndexByte(s, '{'); start >= 0 {
			if end := strings.LastIndexByte(s, '}'); end > start {
				s = s[start : end+1]
			}
		}
	}
	return s
}
