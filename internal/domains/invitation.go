package domains

import (
	"time"
)

// Event is one entry of the repeatable schedule block ("Ceremony - 4:00 PM").
type Event struct {
	Name string `json:"name"`
	Time string `json:"time"`
}

// InvitationData is the personalization payload merged into a template. It is
// ephemeral until the save action freezes it onto an Invitation.
type InvitationData struct {
	BrideName         string  `json:"bride_name"`
	GroomName         string  `json:"groom_name"`
	WeddingDate       string  `json:"wedding_date"`
	WeddingTime       string  `json:"wedding_time"`
	VenueName         string  `json:"venue_name"`
	VenueAddress      string  `json:"venue_address"`
	Events            []Event `json:"events"`
	RSVPLink          *string `json:"rsvp_link,omitempty"`
	AdditionalMessage *string `json:"additional_message,omitempty"`
}

type Invitation struct {
	ID         string         `json:"id"`
	OwnerID    string         `json:"owner_id"`
	TemplateID string         `json:"template_id"`
	Data       InvitationData `json:"invitation_data"`
	Slug       string         `json:"url_slug"`
	QRCode     string         `json:"qr_code,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

type InvitationCreate struct {
	TemplateID string         `json:"template_id"`
	Data       InvitationData `json:"invitation_data"`
}

// PublicInvitation is what the unauthenticated slug endpoint returns.
type PublicInvitation struct {
	Invitation Invitation `json:"invitation"`
	Template   Template   `json:"template"`
}

// RenderedDocument is the output of the substitution engine: merged markup plus
// the template style passed through untouched.
type RenderedDocument struct {
	Body  string `json:"body"`
	Style string `json:"style"`
}
