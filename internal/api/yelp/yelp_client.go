package yelp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/ggggzj/la-cocktail-finder/internal/api/provider"
	"github.com/ggggzj/la-cocktail-finder/internal/types"
)

const defaultBaseURL = "https://api.yelp.com/v3"

var _ provider.Client = (*Client)(nil)

// Client wraps the Yelp Fusion business search, details and reviews
// endpoints. All methods fail soft per the provider.Client contract.
type Client struct {
	logger     *slog.Logger
	httpClient *http.Client
	enricher   *provider.Enricher
	apiKey     string
	baseURL    string
}

func NewClient(apiKey, baseURL string, enricher *provider.Enricher, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		logger:     logger,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		enricher:   enricher,
		apiKey:     apiKey,
		baseURL:    baseURL,
	}
}

func (c *Client) Name() string { return "yelp" }

func (c *Client) Configured() bool { return c.apiKey != "" }

// SearchNear finds cocktail bars around a coordinate, capped at the
// Fusion page size of 20. Returns an empty slice when unconfigured or
// on any request/parse failure.
func (c *Client) SearchNear(ctx context.Context, lat, lng float64, radiusMeters int) []types.Bar {
	if !c.Configured() {
		c.logger.WarnContext(ctx, "Yelp API key not configured, skipping search")
		return nil
	}

	params := url.Values{}
	params.Set("term", "cocktail bar")
	params.Set("latitude", fmt.Sprintf("%f", lat))
	params.Set("longitude", fmt.Sprintf("%f", lng))
	params.Set("radius", fmt.Sprintf("%d", radiusMeters))
	params.Set("categories", "bars,cocktailbars")
	params.Set("sort_by", "rating")
	params.Set("limit", "20")

	var resp businessSearchResponse
	if err := c.getJSON(ctx, c.baseURL+"/businesses/search?"+params.Encode(), &resp); err != nil {
		c.logger.ErrorContext(ctx, "Yelp business search failed", slog.Any("error", err))
		return nil
	}

	return c.normalizeBusinesses(resp.Businesses)
}

// GetDetails fetches contact info, hours and reviews for one business.
// The reviews call is issued separately; its failure downgrades to an
// empty review list rather than failing the whole details fetch.
func (c *Client) GetDetails(ctx context.Context, id string) *types.BarDetails {
	if !c.Configured() {
		return nil
	}

	var business businessRecord
	if err := c.getJSON(ctx, c.baseURL+"/businesses/"+url.PathEscape(id), &business); err != nil {
		c.logger.ErrorContext(ctx, "Yelp business details fetch failed",
			slog.String("business_id", id), slog.Any("error", err))
		return nil
	}

	return c.normalizeDetails(business, c.fetchReviews(ctx, id))
}

func (c *Client) fetchReviews(ctx context.Context, id string) []reviewRecord {
	var resp reviewsResponse
	if err := c.getJSON(ctx, c.baseURL+"/businesses/"+url.PathEscape(id)+"/reviews", &resp); err != nil {
		c.logger.ErrorContext(ctx, "Yelp reviews fetch failed",
			slog.String("business_id", id), slog.Any("error", err))
		return nil
	}
	return resp.Reviews
}

func (c *Client) getJSON(ctx context.Context, rawURL string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
