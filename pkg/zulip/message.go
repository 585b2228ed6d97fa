package zulip

import (
	"fmt"
	"strings"
)

// BuildSummaryMessage renders the recording summary as Zulip markdown:
// a bold title line followed by the short summary. Either part may be
// empty while the pipeline is still filling fields in.
func BuildSummaryMessage(title, shortSummary string) string {
	var b strings.Builder
	if title != "" {
		fmt.Fprintf(&b, "**%s**", title)
	}
	if shortSummary != "" {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(shortSummary)
	}
	if b.Len() == 0 {
		return "Recording processed."
	}
	return b.String()
}
