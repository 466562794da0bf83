package amadeus

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// expiryMargin is subtracted from the provider's expires_in so a token is
// never used at the edge of its lifetime.
const expiryMargin = 300 * time.Second

// tokenCache holds one bearer token with its expiry. The mutex is held
// across the whole check-then-refresh so concurrent callers never issue
// duplicate token requests.
type tokenCache struct {
	mu      sync.Mutex
	token   string
	expires time.Time
	now     func() time.Time
}

func newTokenCache() *tokenCache {
	return &tokenCache{now: time.Now}
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.token.mu.Lock()
	defer c.token.mu.Unlock()

	if c.token.token != "" && c.token.now().Before(c.token.expires) {
		return c.token.token, nil
	}

	token, expiresIn, err := c.fetchToken(ctx)
	if err != nil {
		return "", &AuthError{Err: err}
	}

	c.token.token = token
	c.token.expires = c.token.now().Add(time.Duration(expiresIn)*time.Second - expiryMargin)
	return token, nil
}

func (c *Client) fetchToken(ctx context.Context) (string, int, error) {
	if c.config.RateLimiter != nil {
		if err := c.config.RateLimiter.Wait(ctx, EndpointToken); err != nil {
			return "", 0, err
		}
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.config.ClientID)
	form.Set("client_secret", c.config.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.config.BaseURL+"/v1/security/oauth2/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", 0, &apiError{StatusCode: resp.StatusCode, Detail: extractDetail(body)}
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", 0, err
	}

	return payload.AccessToken, payload.ExpiresIn, nil
}
