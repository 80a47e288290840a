package httptransport

type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenRefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UpgradeRequired is the 402 body pointing at the external checkout.
type UpgradeRequired struct {
	Error      string `json:"error"`
	UpgradeURL string `json:"upgrade_url"`
}
