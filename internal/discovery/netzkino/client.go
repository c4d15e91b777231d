package netzkino

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/cinedaily/cinedaily/internal/config"
)

var ErrAPIError = errors.New("netzkino API error")

// Client is a Netzkino search API client. It performs no retries; retry
// policy belongs to the discovery orchestrator.
type Client struct {
	httpClient *http.Client
	config     config.NetzkinoConfig
	logger     zerolog.Logger
}

// NewClient creates a new Netzkino client.
func NewClient(cfg config.NetzkinoConfig, logger zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		config: cfg,
		logger: logger.With().Str("component", "netzkino").Logger(),
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return "netzkino"
}

// Search performs a free-text search and returns the raw candidate posts.
func (c *Client) Search(ctx context.Context, term string) ([]Post, error) {
	params := url.Values{}
	params.Set("q", term)
	params.Set("d", c.config.Env)

	reqURL := fmt.Sprintf("%s?%s", c.config.BaseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("term", term).Msg("HTTP request failed")
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrAPIError, resp.StatusCode)
	}

	var response SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug().
		Str("term", term).
		Int("results", len(response.Posts)).
		Msg("search completed")

	return response.Posts, nil
}
