package bars

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/ggggzj/la-cocktail-finder/internal/api"
	"github.com/ggggzj/la-cocktail-finder/internal/types"
)

// Downtown LA, the default map center when the caller sends no
// coordinates.
const (
	defaultLatitude  = 34.0522
	defaultLongitude = -118.2437
)

type Handler struct {
	barService          Service
	defaultRadiusMeters int
	logger              *slog.Logger
}

func NewHandler(barService Service, defaultRadiusMeters int, logger *slog.Logger) *Handler {
	return &Handler{
		barService:          barService,
		defaultRadiusMeters: defaultRadiusMeters,
		logger:              logger,
	}
}

// ListBars returns the aggregated bar set near a coordinate, narrowed
// by any filter params present.
// @Summary      List Bars
// @Description  Aggregates cocktail bars from all providers near a coordinate and applies filters.
// @Tags         Bars
// @Produce      json
// @Param        lat query number false "Latitude (defaults to downtown LA)"
// @Param        lng query number false "Longitude (defaults to downtown LA)"
// @Param        radius query int false "Search radius in meters"
// @Param        search query string false "Free-text search"
// @Param        price_range query string false "Comma-separated price levels (1-4)"
// @Param        rating query number false "Minimum rating"
// @Param        cocktail_types query string false "Comma-separated cocktail type names"
// @Param        atmosphere query string false "Comma-separated atmosphere tags"
// @Param        open_now query bool false "Only bars open right now"
// @Success      200 {array} types.Bar "Bars"
// @Router       /bars [get]
func (h *Handler) ListBars(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("BarHandler").Start(r.Context(), "ListBars", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/bars"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "ListBars"))

	lat, lng, radius := h.ParseCoordinates(r)
	bars := h.barService.FetchBarsNear(ctx, lat, lng, radius)
	filtered := ApplyFilters(bars, ParseFilterOptions(r), time.Now())

	l.DebugContext(ctx, "Bars listed",
		slog.Int("aggregated", len(bars)), slog.Int("after_filters", len(filtered)))
	api.WriteJSONResponse(w, r, http.StatusOK, filtered)
}

// EnrichBar merges both providers' detail responses onto the posted bar.
// @Summary      Enrich Bar
// @Description  Fetches richer fields (hours, contact, reviews) from all providers for one bar.
// @Tags         Bars
// @Accept       json
// @Produce      json
// @Param        bar body types.Bar true "Bar to enrich"
// @Success      200 {object} types.Bar "Enriched bar"
// @Failure      400 {object} map[string]interface{} "Invalid body"
// @Router       /bars/enrich [post]
func (h *Handler) EnrichBar(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("BarHandler").Start(r.Context(), "EnrichBar", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/bars/enrich"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "EnrichBar"))

	var bar types.Bar
	if err := api.DecodeJSONBody(w, r, &bar); err != nil {
		l.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if bar.ID == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Bar ID is required")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, h.barService.EnrichWithDetails(ctx, bar))
}

// GetProviderStatus reports which providers hold credentials.
// @Summary      Provider Status
// @Description  Diagnostic view of which lookup providers are configured.
// @Tags         Bars
// @Produce      json
// @Success      200 {object} types.ProviderStatus "Provider status"
// @Router       /providers/status [get]
func (h *Handler) GetProviderStatus(w http.ResponseWriter, r *http.Request) {
	api.WriteJSONResponse(w, r, http.StatusOK, h.barService.ProviderStatus())
}

// ParseCoordinates reads lat/lng/radius query params, substituting the
// default map center and radius for anything absent or malformed.
func (h *Handler) ParseCoordinates(r *http.Request) (lat, lng float64, radiusMeters int) {
	lat = queryFloat(r, "lat", defaultLatitude)
	lng = queryFloat(r, "lng", defaultLongitude)
	radiusMeters = queryInt(r, "radius", h.defaultRadiusMeters)
	if radiusMeters <= 0 {
		radiusMeters = h.defaultRadiusMeters
	}
	return lat, lng, radiusMeters
}

// ParseFilterOptions maps query params onto the filter options the
// pipeline consumes. Absent params leave their predicate disabled.
func ParseFilterOptions(r *http.Request) types.FilterOptions {
	return types.FilterOptions{
		Search:        r.URL.Query().Get("search"),
		PriceRange:    queryIntList(r, "price_range"),
		Rating:        queryFloat(r, "rating", 0),
		CocktailTypes: queryStringList(r, "cocktail_types"),
		Atmosphere:    queryStringList(r, "atmosphere"),
		OpenNow:       r.URL.Query().Get("open_now") == "true",
	}
}

func queryFloat(r *http.Request, key string, fallback float64) float64 {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func queryStringList(r *http.Request, key string) []string {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func queryIntList(r *http.Request, key string) []int {
	var out []int
	for _, p := range queryStringList(r, key) {
		if v, err := strconv.Atoi(p); err == nil {
			out = append(out, v)
		}
	}
	return out
}
