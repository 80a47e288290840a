package render

import "invitely/internal/domains"

const sampleQR = `<img src="data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg==" width="120" height="120" style="border-radius: 10px;" />`

// SampleData is the fixture shown on the template browse page before the user
// has entered anything of their own.
func SampleData() (domains.InvitationData, string) {
	return domains.InvitationData{
		BrideName:    "Emily",
		GroomName:    "Michael",
		WeddingDate:  "June 15, 2025",
		WeddingTime:  "4:00 PM",
		VenueName:    "Sunset Garden Estate",
		VenueAddress: "123 Vineyard Lane, Napa Valley, CA",
		Events: []domains.Event{
			{Name: "Ceremony", Time: "4:00 PM"},
			{Name: "Reception", Time: "6:00 PM"},
		},
	}, sampleQR
}
