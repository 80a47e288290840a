package service

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const slugBytes = 8

// newSlug mints a URL-safe token. Global uniqueness is not guaranteed here,
// the unique index on invitations.url_slug is the real arbiter.
func newSlug() (string, error) {
	buf := make([]byte, slugBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
