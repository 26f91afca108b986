package nasa

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"github.com/five82/nasaimager/internal/cache"
)

// Fetcher defines the two lookups the UI performs. It is implemented by
// *Client and can be replaced in tests.
type Fetcher interface {
	Search(ctx context.Context, query string) ([]ImageSummary, error)
	Asset(ctx context.Context, assetID string) (string, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

const (
	// DefaultBaseURL is NASA's public image and video library API.
	DefaultBaseURL = "https://images-api.nasa.gov"

	defaultUserAgent = "nasaimager/0.1"
	defaultTimeout   = 10 * time.Second
	defaultRate      = 4.0
	maxErrorBody     = 4 << 10
)

// Options configure a Client. The zero value talks to DefaultBaseURL.
type Options struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64 // zero uses the default, negative disables limiting
	UserAgent         string
	Cache             cache.Cache
	Logger            *log.Logger
	HTTPClient        *http.Client
}

// Client talks to the NASA image API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	limiter   *rate.Limiter
	cache     cache.Cache
	logger    *log.Logger
}

// NewClient builds a Client from opts.
func NewClient(opts Options) (*Client, error) {
	base, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	limit := rate.Limit(defaultRate)
	switch {
	case opts.RequestsPerSecond < 0:
		limit = rate.Inf
	case opts.RequestsPerSecond > 0:
		limit = rate.Limit(opts.RequestsPerSecond)
	}

	userAgent := strings.TrimSpace(opts.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Client{
		baseURL:   base,
		http:      httpClient,
		userAgent: userAgent,
		limiter:   rate.NewLimiter(limit, 1),
		cache:     opts.Cache,
		logger:    logger.WithPrefix("nasa"),
	}, nil
}

// Search returns the image hits for query, in API order.
func (c *Client) Search(ctx context.Context, query string) ([]ImageSummary, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	values := url.Values{}
	values.Set("q", query)
	values.Set("media_type", "image")
	rel := &url.URL{Path: "/search", RawQuery: values.Encode()}

	var images []ImageSummary
	err := c.doURL(ctx, rel, func(raw []byte) error {
		var payload SearchResponse
		if err := decodeJSON(raw, &payload); err != nil {
			return err
		}
		var err error
		images, err = payload.Summaries()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	c.logger.Debug("search resolved", "query", query, "items", len(images))
	return images, nil
}

// Asset resolves the secure URL of the original-resolution file of assetID.
func (c *Client) Asset(ctx context.Context, assetID string) (string, error) {
	if c == nil {
		return "", fmt.Errorf("client is nil")
	}
	if assetID == "" {
		return "", ErrEmptyAssetID
	}
	rel := &url.URL{
		Path:    "/asset/" + assetID,
		RawPath: "/asset/" + url.PathEscape(assetID),
	}

	var href string
	err := c.doURL(ctx, rel, func(raw []byte) error {
		var payload AssetResponse
		if err := decodeJSON(raw, &payload); err != nil {
			return err
		}
		var err error
		href, err = payload.Original()
		return err
	})
	if err != nil {
		return "", fmt.Errorf("asset %s: %w", assetID, err)
	}
	c.logger.Debug("asset resolved", "asset", assetID, "href", href)
	return href, nil
}

// doURL fetches rel and hands the body to accept. Only bodies that accept
// takes without error are cached, so a rejected payload is refetched on the
// next call.
func (c *Client) doURL(ctx context.Context, rel *url.URL, accept func(raw []byte) error) error {
	reqURL := c.baseURL.ResolveReference(rel)
	key := reqURL.String()

	if c.cache != nil {
		if body, ok := c.cache.Get(key); ok {
			if err := accept(body); err == nil {
				c.logger.Debug("cache hit", "url", key)
				return nil
			}
			c.logger.Warn("discarding unusable cache entry", "url", key)
		}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, key, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "br, gzip")
	req.Header.Set("User-Agent", c.userAgent)

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("response", "url", key, "status", resp.StatusCode, "elapsed", time.Since(started))

	body, err := decodedBody(resp)
	if err != nil {
		return err
	}
	defer func() { _ = body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(rel.Path, resp.StatusCode, body)
	}

	raw, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if err := accept(raw); err != nil {
		return err
	}
	if c.cache != nil {
		c.cache.Put(key, raw)
	}
	return nil
}

func decodeJSON(raw []byte, dest any) error {
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodedBody undoes the Content-Encoding the server chose. Setting
// Accept-Encoding by hand turns off net/http's transparent gzip handling.
// Closing the result leaves resp.Body to the caller.
func decodedBody(resp *http.Response) (io.ReadCloser, error) {
	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "", "identity":
		return io.NopCloser(resp.Body), nil
	case "br":
		return io.NopCloser(brotli.NewReader(resp.Body)), nil
	case "gzip":
		zr, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("open gzip body: %w", err)
		}
		return zr, nil
	default:
		return nil, fmt.Errorf("unsupported content encoding %q", resp.Header.Get("Content-Encoding"))
	}
}

func newAPIError(path string, status int, body io.Reader) *APIError {
	apiErr := &APIError{Path: path, StatusCode: status}
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return apiErr
	}
	var payload struct {
		Reason string `json:"reason"`
	}
	if json.Unmarshal(raw, &payload) == nil {
		apiErr.Reason = strings.TrimSpace(payload.Reason)
	}
	return apiErr
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse base url %q: missing host", raw)
	}
	u.Path = ""
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
