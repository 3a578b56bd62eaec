package recommendations

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/ggggzj/la-cocktail-finder/internal/api"
	"github.com/ggggzj/la-cocktail-finder/internal/api/bars"
	"github.com/ggggzj/la-cocktail-finder/internal/api/session"
	"github.com/ggggzj/la-cocktail-finder/internal/types"
)

const (
	defaultViewLimit    = 10
	defaultSimilarLimit = 3
)

// Handler serves the trending / recommended / similar views over the
// live aggregate, mirroring the tab views of the directory UI.
type Handler struct {
	recService   Service
	barService   bars.Service
	barHandler   *bars.Handler
	sessionStore *session.Store
	logger       *slog.Logger
}

func NewHandler(recService Service, barService bars.Service, barHandler *bars.Handler,
	sessionStore *session.Store, logger *slog.Logger) *Handler {
	return &Handler{
		recService:   recService,
		barService:   barService,
		barHandler:   barHandler,
		sessionStore: sessionStore,
		logger:       logger,
	}
}

// GetTrendingBars returns the filtered aggregate ranked by review
// volume times rating.
// @Summary      Trending Bars
// @Description  Ranks the filtered aggregate by rating x review count.
// @Tags         Recommendations
// @Produce      json
// @Param        limit query int false "Maximum results"
// @Success      200 {array} types.Bar "Trending bars"
// @Router       /bars/trending [get]
func (h *Handler) GetTrendingBars(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("RecommendationHandler").Start(r.Context(), "GetTrendingBars", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/bars/trending"),
	))
	defer span.End()

	candidates := h.filteredAggregate(ctx, r)
	trending := h.recService.GetTrendingBars(candidates, queryLimit(r, defaultViewLimit))

	span.SetAttributes(attribute.Int("bars.count", len(trending)))
	api.WriteJSONResponse(w, r, http.StatusOK, trending)
}

// GetRecommendedBars scores the filtered aggregate against the
// session's preferences and favorites.
// @Summary      Recommended Bars
// @Description  Scores the filtered aggregate against the session's taste profile.
// @Tags         Recommendations
// @Produce      json
// @Param        limit query int false "Maximum results"
// @Success      200 {array} types.ScoredBar "Scored bars with reasons"
// @Router       /bars/recommended [get]
func (h *Handler) GetRecommendedBars(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("RecommendationHandler").Start(r.Context(), "GetRecommendedBars", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/bars/recommended"),
	))
	defer span.End()

	state := h.sessionStore.Get(session.EnsureSessionID(w, r))
	candidates := h.filteredAggregate(ctx, r)
	recommended := h.recService.GetRecommendations(candidates, state.Preferences, state.Favorites, queryLimit(r, defaultViewLimit))

	span.SetAttributes(attribute.Int("bars.count", len(recommended)))
	api.WriteJSONResponse(w, r, http.StatusOK, recommended)
}

// GetSimilarBars returns bars sharing attributes with the one named in
// the path, drawn from the same aggregate.
// @Summary      Similar Bars
// @Description  Ranks other aggregated bars by shared attributes with the target.
// @Tags         Recommendations
// @Produce      json
// @Param        id path string true "Target bar ID"
// @Param        limit query int false "Maximum results"
// @Success      200 {array} types.Bar "Similar bars"
// @Failure      404 {object} map[string]interface{} "Unknown bar"
// @Router       /bars/{id}/similar [get]
func (h *Handler) GetSimilarBars(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("RecommendationHandler").Start(r.Context(), "GetSimilarBars", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/bars/{id}/similar"),
	))
	defer span.End()

	barID := chi.URLParam(r, "id")
	candidates := h.aggregate(ctx, r)

	for _, bar := range candidates {
		if bar.ID == barID {
			similar := h.recService.GetSimilarBars(bar, candidates, queryLimit(r, defaultSimilarLimit))
			span.SetAttributes(attribute.Int("bars.count", len(similar)))
			api.WriteJSONResponse(w, r, http.StatusOK, similar)
			return
		}
	}

	h.logger.WarnContext(ctx, "Similar-bars target not in aggregate", slog.String("bar_id", barID))
	api.ErrorResponse(w, r, http.StatusNotFound, "Bar not found in current results")
}

func (h *Handler) aggregate(ctx context.Context, r *http.Request) []types.Bar {
	lat, lng, radius := h.barHandler.ParseCoordinates(r)
	return h.barService.FetchBarsNear(ctx, lat, lng, radius)
}

func (h *Handler) filteredAggregate(ctx context.Context, r *http.Request) []types.Bar {
	return bars.ApplyFilters(h.aggregate(ctx, r), bars.ParseFilterOptions(r), time.Now())
}

func queryLimit(r *http.Request, fallback int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
