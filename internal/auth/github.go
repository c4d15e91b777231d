package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cinedaily/cinedaily/internal/config"
)

var ErrOAuthExchange = errors.New("oauth exchange failed")

// OAuthClient exchanges authorization codes for user identities against a
// GitHub-style OAuth provider.
type OAuthClient struct {
	httpClient *http.Client
	config     *config.AuthConfig
	logger     zerolog.Logger
}

func NewOAuthClient(cfg *config.AuthConfig, logger zerolog.Logger) *OAuthClient {
	return &OAuthClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		config:     cfg,
		logger:     logger.With().Str("component", "oauth").Logger(),
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Scope       string `json:"scope"`
}

// Exchange trades an authorization code for the provider's user identity.
func (c *OAuthClient) Exchange(ctx context.Context, code string) (Principal, error) {
	accessToken, err := c.fetchAccessToken(ctx, code)
	if err != nil {
		return nil, err
	}
	return c.fetchUser(ctx, accessToken)
}

func (c *OAuthClient) fetchAccessToken(ctx context.Context, code string) (string, error) {
	form := url.Values{}
	form.Set("client_id", c.config.OAuthClientID)
	form.Set("client_secret", c.config.OAuthClientSecret)
	form.Set("code", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.OAuthTokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: token endpoint returned status %d", ErrOAuthExchange, resp.StatusCode)
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", ErrOAuthExchange)
	}
	return token.AccessToken, nil
}

func (c *OAuthClient) fetchUser(ctx context.Context, accessToken string) (Principal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.OAuthUserURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create user request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("user request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: user endpoint returned status %d", ErrOAuthExchange, resp.StatusCode)
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode user response: %w", err)
	}

	idRaw, ok := raw["id"]
	if !ok {
		return nil, fmt.Errorf("%w: user response missing id", ErrOAuthExchange)
	}

	attributes := make(map[string]string, len(raw))
	for name, value := range raw {
		attributes[name] = decodeAttribute(value)
	}

	c.logger.Debug().Str("provider_id", attributes["id"]).Msg("Resolved OAuth user")

	return &oauthPrincipal{
		id:         decodeAttribute(idRaw),
		attributes: attributes,
	}, nil
}

// decodeAttribute flattens a JSON value to its string form. GitHub returns
// the user id as a number, so numeric values keep their literal text.
func decodeAttribute(value json.RawMessage) string {
	var s string
	if err := json.Unmarshal(value, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(value, &n); err == nil {
		return n.String()
	}
	var b bool
	if err := json.Unmarshal(value, &b); err == nil {
		return strconv.FormatBool(b)
	}
	return strings.Trim(string(value), `"`)
}
