package tmdb

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the production API base.
const DefaultBaseURL = "https://api.themoviedb.org/3"

const defaultTimeout = 30 * time.Second

// Client is a TMDb API client. It holds only immutable configuration, so a
// single client may serve arbitrarily many concurrent calls.
type Client struct {
	baseURL     string
	bearerToken string
	apiKey      string
	userAgent   string
	httpClient  *http.Client
	logger      zerolog.Logger
	language    func() string

	Movies        *MoviesService
	TV            *TVService
	Seasons       *SeasonsService
	Episodes      *EpisodesService
	People        *PeopleService
	Search        *SearchService
	Discover      *DiscoverService
	Trending      *TrendingService
	Configuration *ConfigurationService
	Genres        *GenresService
}

// NewClient creates a new TMDb client. A bearer token or API key is
// required; everything else has defaults.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     zerolog.Nop(),
		language:   func() string { return "" },
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.bearerToken == "" && c.apiKey == "" {
		return nil, ErrMissingCredentials
	}

	c.baseURL = strings.TrimRight(c.baseURL, "/")

	c.Movies = &MoviesService{client: c}
	c.TV = &TVService{client: c}
	c.Seasons = &SeasonsService{client: c}
	c.Episodes = &EpisodesService{client: c}
	c.People = &PeopleService{client: c}
	c.Search = &SearchService{client: c}
	c.Discover = &DiscoverService{client: c}
	c.Trending = &TrendingService{client: c}
	c.Configuration = &ConfigurationService{client: c}
	c.Genres = &GenresService{client: c}

	return c, nil
}

// TestConnection verifies the base URL and credentials by fetching the API
// configuration.
func (c *Client) TestConnection(ctx context.Context) error {
	_, err := c.Configuration.Details(ctx)
	return err
}

// defaultLanguage resolves the effective language for a call: the caller's
// value when given, otherwise the configured default.
func (c *Client) defaultLanguage(language string) string {
	if language != "" {
		return language
	}
	return c.language()
}

// defaultLocales resolves the locale list for image-language filters: the
// caller's list when given, otherwise the configured default language as a
// single-entry list, otherwise nothing.
func (c *Client) defaultLocales(locales []string) []string {
	if len(locales) > 0 {
		return locales
	}
	if lang := c.language(); lang != "" {
		return []string{lang}
	}
	return nil
}

// requestURL builds the absolute URL for a request. The query string is
// encoded by hand so parameters keep the order the builder produced; the
// api_key parameter, when used, always comes last.
func (c *Client) requestURL(r Request) string {
	var sb strings.Builder
	sb.WriteString(c.baseURL)
	sb.WriteString(r.Path)

	query := r.Query
	if c.bearerToken == "" && c.apiKey != "" {
		query = append(query[:len(query):len(query)], QueryParam{Key: "api_key", Value: c.apiKey})
	}

	for i, p := range query {
		if i == 0 {
			sb.WriteByte('?')
		} else {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}

	return sb.String()
}

// do executes a request and decodes the JSON response into dst. It is the
// sole failure origin in the package: transport failures surface as
// *NetworkError, non-2xx statuses as *HTTPError, undecodable bodies as
// *DecodingError, and a cancelled context as the bare context error.
func (c *Client) do(ctx context.Context, r Request, dst any) error {
	var body io.Reader
	if r.Body != nil {
		body = bytes.NewReader(r.Body)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, c.requestURL(r), body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	req.Header.Set("Accept", "application/json")
	if r.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearerToken)
	}
	// Descriptor headers win on conflict.
	for k, v := range r.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if dst == nil {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return &DecodingError{Target: targetName(dst), Err: err}
	}

	return nil
}
