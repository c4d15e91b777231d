package tmdb

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

// ArtworkUnavailable is the failure sentinel returned when no artwork URL
// can be resolved for an external id. Callers check for this one value
// instead of distinguishing empty results, missing fields and unknown ids.
const ArtworkUnavailable = "N/A"

var (
	ErrAPIKeyMissing = errors.New("TMDB API key is not configured")
	ErrAPIError      = errors.New("TMDB API error")
	ErrRateLimited   = errors.New("TMDB API rate limited")
)

// Client is a TMDB find API client.
type Client struct {
	httpClient *http.Client
	config     config.TMDBConfig
	logger     zerolog.Logger
}

// NewClient creates a new TMDB client.
func NewClient(cfg config.TMDBConfig, logger zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		config: cfg,
		logger: logger.With().Str("component", "tmdb").Logger(),
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return "tmdb"
}

// IsConfigured returns true if the API key is set.
func (c *Client) IsConfigured() bool {
	return c.config.APIKey != ""
}

// ResolveArtwork resolves an IMDb id to a full backdrop image URL.
// Transport failures surface as errors; a response without a usable
// backdrop yields ArtworkUnavailable.
func (c *Client) ResolveArtwork(ctx context.Context, imdbID string) (string, error) {
	if !c.IsConfigured() {
		return "", ErrAPIKeyMissing
	}
	if imdbID == "" {
		return ArtworkUnavailable, nil
	}

	endpoint := fmt.Sprintf("%s/%s", c.config.BaseURL, url.PathEscape(imdbID))
	params := url.Values{}
	params.Set("api_key", c.config.APIKey)
	params.Set("language", c.config.Language)
	params.Set("external_source", "imdb_id")

	var response FindResponse
	if err := c.doRequest(ctx, endpoint, params, &response); err != nil {
		return "", err
	}

	if len(response.MovieResults) == 0 {
		c.logger.Debug().Str("imdbId", imdbID).Msg("no movie results")
		return ArtworkUnavailable, nil
	}

	backdrop := response.MovieResults[0].BackdropPath
	if backdrop == "" {
		c.logger.Debug().Str("imdbId", imdbID).Msg("no backdrop image")
		return ArtworkUnavailable, nil
	}

	imageURL := c.config.ImageBaseURL + backdrop
	c.logger.Debug().Str("imdbId", imdbID).Str("url", imageURL).Msg("resolved artwork")
	return imageURL, nil
}

// doRequest performs an HTTP GET request and decodes the JSON response.
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values, result interface{}) error {
	reqURL := endpoint
	if len(params) > 0 {
		reqURL = fmt.Sprintf("%s?%s", endpoint, params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("url", endpoint).Msg("HTTP request failed")
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil {
			c.logger.Error().
				Int("status", resp.StatusCode).
				Str("message", errResp.StatusMessage).
				Msg("TMDB API error")
		}

		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: invalid API key", ErrAPIError)
		case http.StatusTooManyRequests:
			return ErrRateLimited
		default:
			return fmt.Errorf("%w: status %d", ErrAPIError, resp.StatusCode)
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
