// Package artifact talks to the external QR image service. The core stores
// and positions the returned fragment, it never computes the image itself.
package artifact

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// Generate fetches a QR image for target and wraps it into the markup
// fragment the {{qr_code}} placeholder expects.
func (c *Client) Generate(ctx context.Context, target string) (string, error) {
	endpoint := fmt.Sprintf("%s?size=240x240&data=%s", c.baseURL, url.QueryEscape(target))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch qr image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("qr service responded with %d", resp.StatusCode)
	}

	img, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read qr image: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(img)
	return fmt.Sprintf(`<img src="data:image/png;base64,%s" width="120" height="120" style="border-radius: 10px;" />`, encoded), nil
}
