package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ZaguanLabs/locfetch"
)

// HTTPClient fetches translation payloads from a translation service
// over HTTP. It expects GET {base}/translations/{platform}/{language}
// to return a JSON envelope of the form:
//
//	{"data": {"general": {"hello": "Hi"}}}
type HTTPClient struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

// HTTPConfig holds configuration for the HTTP client.
type HTTPConfig struct {
	BaseURL  string        // Base URL of the translation service (required)
	APIToken string        // Bearer token for the service (optional)
	Timeout  time.Duration // Per-request timeout (default: 10s)
}

// NewHTTPClient creates an HTTP translation service client.
func NewHTTPClient(cfg HTTPConfig) *HTTPClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &HTTPClient{
		baseURL:  cfg.BaseURL,
		apiToken: cfg.APIToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// envelope is the service's response wrapper.
type envelope struct {
	Data locfetch.Payload `json:"data"`
}

// FetchTranslation retrieves the payload for a platform+language pair.
func (c *HTTPClient) FetchTranslation(ctx context.Context, platform, language string) (*locfetch.Record, error) {
	endpoint := fmt.Sprintf("%s/translations/%s/%s",
		c.baseURL, url.PathEscape(platform), url.PathEscape(language))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", locfetch.UserAgent())
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling translation service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("translation service returned status %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decoding translation response: %w", err)
	}
	if env.Data == nil {
		return nil, fmt.Errorf("translation response missing data")
	}

	return locfetch.NewRecord(platform, language, env.Data), nil
}

// Verify HTTPClient implements Fetcher
var _ Fetcher = (*HTTPClient)(nil)
