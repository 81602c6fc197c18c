package cta

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/walkingsnake-lab/ctamap/internal/logging"
)

// Default CTA Train Tracker endpoints.
const (
	DefaultPositionsURL = "http://lapi.transitchicago.com/api/1.0/ttpositions.aspx"
	DefaultFollowURL    = "http://lapi.transitchicago.com/api/1.0/ttfollow.aspx"

	defaultTimeout = 10 * time.Second
)

// DefaultRoutes is the full set of CTA "L" route codes, in display order.
// The aggregate response preserves this order.
var DefaultRoutes = []string{"red", "blue", "brn", "G", "org", "P", "pink", "Y"}

// Config holds the settings for a Train Tracker client.
type Config struct {
	// Key is the Train Tracker API key passed on every upstream request.
	Key string

	// Routes is the set of route codes to aggregate over. Defaults to
	// DefaultRoutes.
	Routes []string

	// PositionsURL and FollowURL override the upstream endpoints, mainly
	// for tests.
	PositionsURL string
	FollowURL    string

	// Timeout bounds each individual upstream request. Defaults to 10s.
	Timeout time.Duration

	// HTTPClient is the underlying HTTP client. Must be safe for
	// concurrent use. Defaults to http.DefaultClient.
	HTTPClient *http.Client
}

// Client talks to the CTA Train Tracker API. It is safe for concurrent use.
type Client struct {
	key          string
	routes       []string
	positionsURL string
	followURL    string
	timeout      time.Duration
	httpClient   *http.Client
}

// NewClient creates a Client, filling in defaults for any unset Config field.
func NewClient(config Config) *Client {
	client := &Client{
		key:          config.Key,
		routes:       config.Routes,
		positionsURL: config.PositionsURL,
		followURL:    config.FollowURL,
		timeout:      config.Timeout,
		httpClient:   config.HTTPClient,
	}

	if len(client.routes) == 0 {
		client.routes = DefaultRoutes
	}
	if client.positionsURL == "" {
		client.positionsURL = DefaultPositionsURL
	}
	if client.followURL == "" {
		client.followURL = DefaultFollowURL
	}
	if client.timeout == 0 {
		client.timeout = defaultTimeout
	}
	if client.httpClient == nil {
		client.httpClient = http.DefaultClient
	}

	return client
}

// Routes returns the configured route codes in aggregation order.
func (c *Client) Routes() []string {
	return c.routes
}

// get issues one upstream request and decodes the response envelope. Both
// transport and decode failures surface as errors; interpreting the
// envelope's status code is left to the caller.
func (c *Client) get(ctx context.Context, baseURL string, params url.Values) (*envelope, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params.Set("key", c.key)
	params.Set("outputType", "JSON")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("error building upstream request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error requesting upstream: %w", err)
	}
	defer logging.SafeCloseWithLogging(resp.Body, logging.FromContext(ctx), "upstream_response_body")

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("error decoding upstream response: %w", err)
	}

	return &env, nil
}
