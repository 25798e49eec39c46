package youtubeprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"ytworth/internal/models"
	"ytworth/internal/provider"
)

const DefaultBaseURL = "https://www.googleapis.com/youtube/v3/videos"

type Logger interface {
	Errorf(format string, args ...any)
	Warnf(format string, args ...any)
	Infof(format string, args ...any)
	Info(args ...any)
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	client  HTTPClient
	baseURL url.URL
	apiKey  string
	logger  Logger
}

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// NewHTTPClient returns the *http.Client used in production.
func NewHTTPClient(cfg Config) *http.Client {
	return &http.Client{Timeout: cfg.Timeout}
}

func NewClient(http HTTPClient, cfg Config, logger Logger) (*Client, error) {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}

	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid youtube base url: %w", err)
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("youtube api key is empty: %w", models.ErrInvalidRequest)
	}

	return &Client{
		client:  http,
		baseURL: *u,
		apiKey:  cfg.APIKey,
		logger:  logger,
	}, nil
}

var _ provider.StatisticsProvider = (*Client)(nil)

// GetVideoStats issues a single GET for the video's statistics.
func (c *Client) GetVideoStats(ctx context.Context, videoID string) (*provider.VideoStats, error) {
	fullURL := c.baseURL

	q := fullURL.Query()
	q.Set("key", c.apiKey)
	q.Set("part", "statistics")
	q.Set("id", videoID)
	fullURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Errorf("youtube: http request failed id=%s: %v", videoID, err)
		return nil, fmt.Errorf("request to youtube failed: %v: %w", err, models.ErrUpstream)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Errorf("youtube: close response body: %v", cerr)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %v: %w", err, models.ErrUpstream)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr APIErrorResponse
		if jerr := json.Unmarshal(body, &apiErr); jerr == nil && apiErr.Error.Message != "" {
			c.logger.Errorf("youtube: bad status id=%s status=%d message=%s",
				videoID, resp.StatusCode, apiErr.Error.Message)
		} else {
			c.logger.Errorf("youtube: bad status id=%s status=%d body=%s",
				videoID, resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("youtube status %d: %w", resp.StatusCode, models.ErrUpstream)
	}

	var data StatisticsResponse
	if err := json.Unmarshal(body, &data); err != nil {
		c.logger.Errorf("youtube: decode failed id=%s err=%v", videoID, err)
		return nil, fmt.Errorf("decode youtube response: %v: %w", err, models.ErrUpstream)
	}

	stats, err := data.ToProviderStats(videoID)
	if err != nil {
		c.logger.Warnf("youtube: unusable statistics id=%s: %v", videoID, err)
		return nil, err
	}

	return stats, nil
}
