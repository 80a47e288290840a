package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSlug(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		slug, err := newSlug()
		assert.NoError(t, err)
		assert.Len(t, slug, 11) // 8 bytes, raw url-safe base64

		for _, r := range slug {
			ok := r == '-' || r == '_' ||
				(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
			assert.True(t, ok, "slug %q contains non url-safe rune %q", slug, r)
		}

		_, dup := seen[slug]
		assert.False(t, dup, "slug %q minted twice", slug)
		seen[slug] = struct{}{}
	}
}
