package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// userAgent is sent with every request to the repository.
const userAgent = "dspace-utils"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://repo.example.org/server/api", 30*time.Second)
//	resp, err := client.R().Get("/core/items")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client rooted at baseURL.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, cookie jar and state. A zero timeout
// leaves requests unbounded apart from their context.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
