package render

import (
	"testing"

	"invitely/internal/domains"

	"github.com/stretchr/testify/assert"
)

func TestComposeEvents(t *testing.T) {
	tests := []struct {
		name     string
		events   []domains.Event
		mode     Mode
		expected string
	}{
		{
			name: "single event",
			events: []domains.Event{
				{Name: "Ceremony", Time: "4:00 PM"},
			},
			mode:     ModePublished,
			expected: "<p>Ceremony - 4:00 PM</p>",
		},
		{
			name: "order preserved",
			events: []domains.Event{
				{Name: "Ceremony", Time: "4:00 PM"},
				{Name: "Reception", Time: "6:00 PM"},
				{Name: "After Party", Time: "10:00 PM"},
			},
			mode:     ModePublished,
			expected: "<p>Ceremony - 4:00 PM</p><p>Reception - 6:00 PM</p><p>After Party - 10:00 PM</p>",
		},
		{
			name: "blank name filtered",
			events: []domains.Event{
				{Name: "Ceremony", Time: "4:00 PM"},
				{Name: "", Time: "5:00 PM"},
			},
			mode:     ModePublished,
			expected: "<p>Ceremony - 4:00 PM</p>",
		},
		{
			name: "blank time filtered",
			events: []domains.Event{
				{Name: "Reception", Time: "   "},
			},
			mode:     ModePublished,
			expected: "",
		},
		{
			name:     "no events published",
			events:   nil,
			mode:     ModePublished,
			expected: "",
		},
		{
			name:     "no events preview placeholder",
			events:   nil,
			mode:     ModePreview,
			expected: "<p>Event Details</p>",
		},
		{
			name: "all filtered preview placeholder",
			events: []domains.Event{
				{Name: "", Time: "5:00 PM"},
			},
			mode:     ModePreview,
			expected: "<p>Event Details</p>",
		},
		{
			name: "values escaped",
			events: []domains.Event{
				{Name: "Dinner <b>", Time: "7:00 PM & later"},
			},
			mode:     ModePublished,
			expected: "<p>Dinner &lt;b&gt; - 7:00 PM &amp; later</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComposeEvents(tt.events, tt.mode))
		})
	}
}
