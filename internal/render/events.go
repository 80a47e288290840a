package render

import (
	"html"
	"strings"

	"invitely/internal/domains"
)

const previewEventsPlaceholder = "<p>Event Details</p>"

// ComposeEvents turns the ordered event list into one markup fragment, one
// line per event. Entries with a blank name or time are dropped, not errored.
// The fragment feeds the {{events}} key of Render.
func ComposeEvents(events []domains.Event, mode Mode) string {
	var b strings.Builder
	for _, event := range events {
		if strings.TrimSpace(event.Name) == "" || strings.TrimSpace(event.Time) == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(html.EscapeString(event.Name))
		b.WriteString(" - ")
		b.WriteString(html.EscapeString(event.Time))
		b.WriteString("</p>")
	}
	if b.Len() == 0 && mode == ModePreview {
		return previewEventsPlaceholder
	}
	return b.String()
}
