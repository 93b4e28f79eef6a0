package apifootball

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
)

const (
	defaultBaseURL = "https://api-football-v1.p.rapidapi.com"
	defaultAPIHost = "api-football-v1.p.rapidapi.com"
)

type Client struct {
	baseURL   string
	apiKey    string
	apiHost   string
	userAgent string
	client    *http.Client

	resolvedURL string // cached mirror resolution result
	resolvedMu  sync.RWMutex
}

func NewClient(baseURL, mirrorURL, apiKey, apiHost, userAgent string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")
	if apiHost == "" {
		apiHost = defaultAPIHost
	}
	// Allow env override to avoid committing the key into configs.
	if apiKey == "" {
		apiKey = os.Getenv("FOOTBALL_API_KEY")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	c := &Client{
		baseURL:   baseURL,
		apiKey:    apiKey,
		apiHost:   apiHost,
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}

	if mirrorURL != "" {
		resolved, err := resolveMirror(mirrorURL, timeout)
		if err == nil {
			c.resolvedMu.Lock()
			c.resolvedURL = strings.TrimSuffix(resolved, "/")
			c.resolvedMu.Unlock()
		}
	}

	return c
}

// GetLiveFixtures fetches all fixtures currently in play.
// GET /v3/fixtures?live=all
func (c *Client) GetLiveFixtures(ctx context.Context) ([]fixtureEntry, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("api key not configured (set source.apifootball.api_key or FOOTBALL_API_KEY)")
	}

	u := fmt.Sprintf("%s/v3/fixtures?live=all", c.effectiveBaseURL())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.apiHost)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	var out fixturesResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	return out.Response, nil
}

func (c *Client) effectiveBaseURL() string {
	c.resolvedMu.RLock()
	defer c.resolvedMu.RUnlock()
	if c.resolvedURL != "" {
		return c.resolvedURL
	}
	return c.baseURL
}
