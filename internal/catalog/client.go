package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"shaker/internal/cocktail"
	"shaker/internal/config"
)

const (
	// DefaultBaseURL is TheCocktailDB's free-tier API base URL.
	DefaultBaseURL = "https://www.thecocktaildb.com/api/json/v1/1"

	maxResponseBytes = 512 * 1024
)

// Client is the read-only bridge to the remote cocktail catalog. Recipes it
// returns are rebuilt fresh on every call and never persisted here.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a catalog client. The default transport retries transient
// failures a couple of times; callers still see ErrUnavailable when it gives up.
func NewClient(cfg config.CatalogConfig) *Client {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		rc := retryablehttp.NewClient()
		rc.RetryMax = 2
		rc.Logger = nil
		rc.HTTPClient.Timeout = 20 * time.Second
		if cfg.TimeoutSeconds > 0 {
			rc.HTTPClient.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
		}
		httpClient = rc.StandardClient()
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// SearchByName queries the catalog for recipes whose name matches query. The
// catalog answering "no matches" is success with an empty slice, not an error.
func (c *Client) SearchByName(ctx context.Context, query string) ([]cocktail.Recipe, error) {
	params := url.Values{}
	params.Set("s", query)

	payload, err := c.getDrinks(ctx, "/search.php", params, "search")
	if err != nil {
		return nil, err
	}

	recipes := make([]cocktail.Recipe, 0, len(payload.Drinks))
	for i := range payload.Drinks {
		recipes = append(recipes, payload.Drinks[i].normalize())
	}
	return recipes, nil
}

// FetchByID looks a single recipe up by its catalog id. An id the catalog
// doesn't recognize yields cocktail.ErrNotFound.
func (c *Client) FetchByID(ctx context.Context, id string) (*cocktail.Recipe, error) {
	params := url.Values{}
	params.Set("i", id)

	payload, err := c.getDrinks(ctx, "/lookup.php", params, "lookup")
	if err != nil {
		return nil, err
	}
	if len(payload.Drinks) == 0 {
		return nil, cocktail.ErrNotFound
	}

	recipe := payload.Drinks[0].normalize()
	return &recipe, nil
}

func (c *Client) getDrinks(ctx context.Context, path string, params url.Values, op string) (*drinksResponse, error) {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("parse %s URL: %w", op, err)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Correlation-ID", uuid.NewString())

	slog.InfoContext(ctx, "querying cocktail catalog", "op", op, "url", endpoint.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s request: %w", ErrUnavailable, op, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s response: %w", ErrUnavailable, op, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		slog.ErrorContext(ctx, "catalog request failed", "op", op, "status", resp.StatusCode)
		return nil, &StatusError{Operation: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var payload drinksResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode %s response: %w", ErrUnavailable, op, err)
	}
	return &payload, nil
}
