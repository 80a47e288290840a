package domains

import (
	"time"
)

const (
	TierFree    = "free"
	TierPremium = "premium"
)

type Template struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Theme       string    `json:"theme"`
	PreviewURL  string    `json:"preview_url"`
	Markup      string    `json:"html_content"`
	Style       string    `json:"css_content"`
	Tier        string    `json:"tier"`
	CreatedAt   time.Time `json:"created_at"`
}

// TemplateSummary is the catalog projection without the markup payloads.
type TemplateSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Theme       string `json:"theme"`
	PreviewURL  string `json:"preview_url"`
	Tier        string `json:"tier"`
}

func (t Template) IsPremium() bool {
	return t.Tier == TierPremium
}
