package tmdb

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom API base URL. Useful for tests and proxies.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithBearerToken sets the v4 read access token used for Authorization
// header authentication.
func WithBearerToken(token string) Option {
	return func(c *Client) {
		c.bearerToken = token
	}
}

// WithAPIKey sets the v3 API key. It is appended as the api_key query
// parameter on every request when no bearer token is configured.
func WithAPIKey(apiKey string) Option {
	return func(c *Client) {
		c.apiKey = apiKey
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithLanguage sets a fixed default language applied when a call omits one.
func WithLanguage(language string) Option {
	return WithLanguageFunc(func() string { return language })
}

// WithLanguageFunc sets a supplier for the default language, consulted on
// every call that omits one. The supplier must be safe for concurrent use.
func WithLanguageFunc(fn func() string) Option {
	return func(c *Client) {
		if fn != nil {
			c.language = fn
		}
	}
}

// WithLogger sets the logger used by the service facades. The default is a
// no-op logger, keeping the library silent unless one is injected.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}
