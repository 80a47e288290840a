package httptransport

import (
	"net/http"

	"invitely/internal/domains"
	"invitely/internal/httpx"
	"invitely/internal/service"
)

// gateAccess runs the personalization access gate and writes the redirect
// responses for the blocked outcomes. Returns true when the request may
// proceed.
func gateAccess(w http.ResponseWriter, r *http.Request, template domains.Template, upgradeURL string) bool {
	var user *domains.User
	if u, ok := httpx.UserFromContext(r.Context()); ok {
		user = &u
	}

	switch service.Decide(user, template) {
	case service.DecisionRequiresLogin:
		httpx.Error(w, http.StatusUnauthorized, "authentication required")
		return false
	case service.DecisionRequiresUpgrade:
		httpx.JSON(w, http.StatusPaymentRequired, UpgradeRequired{
			Error:      "premium subscription required",
			UpgradeURL: upgradeURL,
		})
		return false
	}
	return true
}
