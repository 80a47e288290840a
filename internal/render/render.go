// Package render merges personalization data into template markup. It is the
// single substitution engine behind the template browse page, the live preview
// and the public invitation page.
package render

import (
	"html"
	"strings"

	"invitely/internal/domains"
)

// Mode selects the fallback values for absent fields. A preview render shows
// label text so the layout stays readable, a published render leaves the slot
// empty.
type Mode int

const (
	ModePublished Mode = iota
	ModePreview
)

const (
	previewQRPlaceholder = `<div style="width: 120px; height: 120px; background: #f0f0f0; border-radius: 10px; display: flex; align-items: center; justify-content: center; margin: 1rem auto; font-size: 0.8rem; color: #666;">QR Code</div>`
	publishedQRFallback  = `<div style="width: 120px; height: 120px; background: #f0f0f0; border-radius: 10px; margin: 1rem auto;"></div>`
)

// Render replaces every occurrence of a recognized {{key}} token in the
// template markup with its resolved value. Unrecognized tokens stay verbatim.
// The markup is walked exactly once and resolved values are emitted literally,
// so a value that itself contains a token can never be substituted again.
// User-supplied scalars are HTML-escaped; qr is an opaque markup fragment from
// the artifact generator and is positioned as-is.
func Render(tpl domains.Template, data domains.InvitationData, qr string, mode Mode) domains.RenderedDocument {
	values := resolve(data, qr, mode)

	var b strings.Builder
	b.Grow(len(tpl.Markup))
	markup := tpl.Markup
	for {
		open := strings.Index(markup, "{{")
		if open < 0 {
			b.WriteString(markup)
			break
		}
		end := strings.Index(markup[open:], "}}")
		if end < 0 {
			b.WriteString(markup)
			break
		}
		// A stray "{{" before the closing braces is not a token start, emit it
		// literally and rescan from the inner "{{".
		if strings.Contains(markup[open+2:open+end], "{{") {
			b.WriteString(markup[:open+2])
			markup = markup[open+2:]
			continue
		}
		b.WriteString(markup[:open])
		token := markup[open : open+end+2]
		if value, ok := values[token[2:len(token)-2]]; ok {
			b.WriteString(value)
		} else {
			b.WriteString(token)
		}
		markup = markup[open+end+2:]
	}

	return domains.RenderedDocument{Body: b.String(), Style: tpl.Style}
}

// resolve builds the full recognized key set. Every key is always present, an
// absent field resolves to the mode default rather than an error.
func resolve(data domains.InvitationData, qr string, mode Mode) map[string]string {
	if qr == "" {
		if mode == ModePreview {
			qr = previewQRPlaceholder
		} else {
			qr = publishedQRFallback
		}
	}
	return map[string]string{
		"bride_name":    scalar(data.BrideName, "Bride Name", mode),
		"groom_name":    scalar(data.GroomName, "Groom Name", mode),
		"wedding_date":  scalar(data.WeddingDate, "Wedding Date", mode),
		"wedding_time":  scalar(data.WeddingTime, "Time", mode),
		"venue_name":    scalar(data.VenueName, "Venue Name", mode),
		"venue_address": scalar(data.VenueAddress, "Venue Address", mode),
		"events":        ComposeEvents(data.Events, mode),
		"qr_code":       qr,
	}
}

func scalar(value, fallback string, mode Mode) string {
	if strings.TrimSpace(value) == "" {
		if mode == ModePreview {
			return fallback
		}
		return ""
	}
	return html.EscapeString(value)
}
