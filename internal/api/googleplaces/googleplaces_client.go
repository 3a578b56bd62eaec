package googleplaces

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

const defaultBaseURL = "https://maps.googleapis.com/maps/api/place"

var _ provider.Client = (*Client)(nil)

// Client wraps the Google Places nearby-search and details endpoints.
// All methods fail soft per the provider.Client contract.
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

func (c *Client) Name() string { return "google" }

func (c *Client) Configured() bool { return c.apiKey != "" }

// SearchNear finds cocktail bars around a coordinate. Returns an empty
// slice when unconfigured or on any request/parse failure.
func (c *Client) SearchNear(ctx context.Context, lat, lng float64, radiusMeters int) []types.Bar {
	if !c.Configured() {
		c.logger.WarnContext(ctx, "Google Places API key not configured, skipping search")
		return nil
	}

	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("radius", fmt.Sprintf("%d", radiusMeters))
	params.Set("type", "bar")
	params.Set("keyword", "cocktail|lounge|speakeasy")
	params.Set("key", c.apiKey)

	var resp placesSearchResponse
	if err := c.getJSON(ctx, c.baseURL+"/nearbysearch/json?"+params.Encode(), &resp); err != nil {
		c.logger.ErrorContext(ctx, "Google Places nearby search failed", slog.Any("error", err))
		return nil
	}
	if resp.Status != "OK" {
		c.logger.ErrorContext(ctx, "Google Places nearby search returned non-OK status",
			slog.String("status", resp.Status))
		return nil
	}

	return c.normalizePlaces(resp.Results)
}

// GetDetails fetches contact info, hours and reviews for one place.
// Returns nil when unconfigured or on any failure.
func (c *Client) GetDetails(ctx context.Context, id string) *types.BarDetails {
	if !c.Configured() {
		return nil
	}

	params := url.Values{}
	params.Set("place_id", id)
	params.Set("fields", "name,formatted_address,formatted_phone_number,website,opening_hours,photos,price_level,rating,reviews")
	params.Set("key", c.apiKey)

	var resp placeDetailsResponse
	if err := c.getJSON(ctx, c.baseURL+"/details/json?"+params.Encode(), &resp); err != nil {
		c.logger.ErrorContext(ctx, "Google Places details fetch failed",
			slog.String("place_id", id), slog.Any("error", err))
		return nil
	}
	if resp.Status != "OK" {
		c.logger.ErrorContext(ctx, "Google Places details returned non-OK status",
			slog.String("place_id", id), slog.String("status", resp.Status))
		return nil
	}

	return c.normalizeDetails(resp.Result)
}

func (c *Client) getJSON(ctx context.Context, rawURL string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

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
