// Package amadeus is the HTTP client for the remote flight-data provider:
// token acquisition, location search, flight-offer search, and airline
// name lookup.
package amadeus

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"skysearch/internal/ratelimit"
)

const (
	EndpointToken     = "token"
	EndpointLocations = "locations"
	EndpointFlights   = "flights"
	EndpointAirlines  = "airlines"
)

type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
	MaxRetries   int
	RetryDelays  []time.Duration
	RateLimiter  *ratelimit.EndpointLimiter
}

func DefaultConfig() Config {
	return Config{
		Timeout:    10 * time.Second,
		MaxRetries: 1,
		RetryDelays: []time.Duration{
			200 * time.Millisecond,
			400 * time.Millisecond,
		},
	}
}

type Client struct {
	config     Config
	httpClient *http.Client
	token      *tokenCache
}

func NewClient(config Config) *Client {
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		token:      newTokenCache(),
	}
}

// doWithRetry runs fn up to MaxRetries+1 times with bounded backoff,
// respecting the per-endpoint rate limit before each attempt.
func (c *Client) doWithRetry(ctx context.Context, endpoint string, fn func() error) error {
	var lastErr error

	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if attempt > 0 {
			delayIdx := attempt - 1
			if delayIdx >= len(c.config.RetryDelays) {
				delayIdx = len(c.config.RetryDelays) - 1
			}
			var delay time.Duration
			if delayIdx >= 0 && len(c.config.RetryDelays) > 0 {
				delay = c.config.RetryDelays[delayIdx]
			}

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if c.config.RateLimiter != nil {
			if err := c.config.RateLimiter.Wait(ctx, endpoint); err != nil {
				return err
			}
		}

		if err := fn(); err != nil {
			lastErr = err
			log.Printf("Provider %s attempt %d failed: %v", endpoint, attempt+1, err)
			continue
		}
		return nil
	}

	return lastErr
}

// getJSON issues an authenticated GET and decodes the response into out.
// Non-2xx responses are returned as an apiError with the provider's
// best-effort detail text.
func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &apiError{
			StatusCode: resp.StatusCode,
			Detail:     extractDetail(body),
		}
	}

	return json.Unmarshal(body, out)
}

// extractDetail pulls errors[0].detail out of the provider's error envelope.
// Anything unparseable yields an empty detail and callers fall back to a
// generic message.
func extractDetail(body []byte) string {
	var envelope struct {
		Errors []struct {
			Detail string `json:"detail"`
			Title  string `json:"title"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	if len(envelope.Errors) == 0 {
		return ""
	}
	if envelope.Errors[0].Detail != "" {
		return envelope.Errors[0].Detail
	}
	return envelope.Errors[0].Title
}
