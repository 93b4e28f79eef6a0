package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://site.api.espn.com"

// defaultLeagues are the top five European leagues the original dashboard
// tracked. Overridable via source.espn.leagues.
var defaultLeagues = []string{"eng.1", "esp.1", "fra.1", "ger.1", "ita.1"}

type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

// GetScoreboard fetches today's scoreboard for one league slug (e.g. "eng.1").
func (c *Client) GetScoreboard(ctx context.Context, league string) (*scoreboardResponse, error) {
	u := fmt.Sprintf("%s/apis/site/v2/sports/soccer/%s/scoreboard", c.baseURL, league)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
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

	var out scoreboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode scoreboard: %w", err)
	}
	return &out, nil
}
