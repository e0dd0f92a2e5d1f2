package cloudnest

import (
	"net/http"
	"time"
)

// ClientOption represents an option for configuring the CloudNest client
type ClientOption func(*ClientConfig)

// ClientConfig holds the configuration for the CloudNest client
type ClientConfig struct {
	BaseURL        string
	SessionToken   string
	Timeout        time.Duration
	DefaultHeaders map[string]string
	HTTPClient     *http.Client
	UserAgent      string
}

// DefaultConfig returns a sensible default configuration. There is no
// retry policy: in this deployment every call is expected to fail and
// callers decide the fallback, so retrying buys nothing.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL: "http://localhost:8080",
		Timeout: 30 * time.Second,
		DefaultHeaders: map[string]string{
			"Content-Type": "application/json",
		},
		UserAgent: "cloudnest-go-sdk/1.0.0",
	}
}

// WithBaseURL sets the base URL for the CloudNest API
func WithBaseURL(baseURL string) ClientOption {
	return func(c *ClientConfig) {
		c.BaseURL = baseURL
	}
}

// WithSessionToken sets the bearer token sent on authenticated calls
func WithSessionToken(token string) ClientOption {
	return func(c *ClientConfig) {
		c.SessionToken = token
	}
}

// WithTimeout sets the request timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *ClientConfig) {
		c.Timeout = timeout
	}
}

// WithHeader adds a default header to all requests
func WithHeader(key, value string) ClientOption {
	return func(c *ClientConfig) {
		if c.DefaultHeaders == nil {
			c.DefaultHeaders = make(map[string]string)
		}
		c.DefaultHeaders[key] = value
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *ClientConfig) {
		c.HTTPClient = httpClient
	}
}

// WithUserAgent sets a custom user agent
func WithUserAgent(userAgent string) ClientOption {
	return func(c *ClientConfig) {
		c.UserAgent = userAgent
	}
}
