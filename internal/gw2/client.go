package gw2

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gw2inventory/internal/failures"
	"gw2inventory/internal/logging"
)

// MaxBatchSize is the largest number of ids the /items endpoint accepts in a
// single request.
const MaxBatchSize = 200

// DefaultBaseURL is the public v2 API root.
const DefaultBaseURL = "https://api.guildwars2.com/v2"

// Remote defines the API operations used by the cache and session loader.
type Remote interface {
	CharacterNames(ctx context.Context) ([]string, error)
	Inventory(ctx context.Context, character string) (*Inventory, error)
	ItemIDs(ctx context.Context) ([]int64, error)
	Items(ctx context.Context, ids []int64) ([]Item, error)
}

// Client provides authenticated access to the GW2 API.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ Remote = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithLogger attaches a logger for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logging.NewComponentLogger(logger, "gw2")
		}
	}
}

// WithLanguage sets the lang query parameter used for item names.
func WithLanguage(language string) Option {
	return func(c *Client) {
		c.language = strings.TrimSpace(language)
	}
}

// WithTimeout overrides the request timeout of the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

// New creates an API client.
func New(apiKey, baseURL string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, failures.Wrap(failures.ErrConfiguration, "gw2", "new client", "api key required", nil)
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// CharacterNames lists the characters on the account that owns the key.
func (c *Client) CharacterNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := c.get(ctx, "characters", "/characters", nil, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// Inventory fetches the bags of a single character.
func (c *Client) Inventory(ctx context.Context, character string) (*Inventory, error) {
	character = strings.TrimSpace(character)
	if character == "" {
		return nil, errors.New("character name must not be empty")
	}
	var inv Inventory
	path := "/characters/" + url.PathEscape(character) + "/inventory"
	if err := c.get(ctx, "inventory", path, nil, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// ItemIDs lists every valid item id in the game.
func (c *Client) ItemIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	if err := c.get(ctx, "item ids", "/items", nil, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// Items fetches metadata for up to MaxBatchSize ids.
func (c *Client) Items(ctx context.Context, ids []int64) ([]Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if len(ids) > MaxBatchSize {
		return nil, fmt.Errorf("item batch of %d exceeds limit of %d", len(ids), MaxBatchSize)
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	params := url.Values{}
	params.Set("ids", strings.Join(parts, ","))
	var items []Item
	if err := c.get(ctx, "items", "/items", params, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// TokenInfo reports the name and permission scopes of the configured key.
func (c *Client) TokenInfo(ctx context.Context) (*TokenInfo, error) {
	var info TokenInfo
	if err := c.get(ctx, "token info", "/tokeninfo", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) get(ctx context.Context, operation, path string, params url.Values, out any) error {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return failures.Wrap(failures.ErrNetwork, "gw2", operation, "parse url", err)
	}
	if params == nil {
		params = url.Values{}
	}
	if c.language != "" {
		params.Set("lang", c.language)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return failures.Wrap(failures.ErrNetwork, "gw2", operation, "build request", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return failures.Wrap(failures.ErrNetwork, "gw2", operation, fmt.Sprintf("execute request (latency=%v)", latency), err)
	}
	defer resp.Body.Close()

	c.logger.Debug("api response",
		logging.String("operation", operation),
		logging.String("path", path),
		logging.Int("status", resp.StatusCode),
		logging.Duration("latency", latency))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return failures.Wrap(failures.ErrNetwork, "gw2", operation, fmt.Sprintf("api returned %d (latency=%v)", resp.StatusCode, latency), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return failures.Wrap(failures.ErrDeserialization, "gw2", operation, "decode response", err)
	}
	return nil
}
