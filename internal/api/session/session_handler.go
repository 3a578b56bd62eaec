package session

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/ggggzj/la-cocktail-finder/internal/api"
	"github.com/ggggzj/la-cocktail-finder/internal/types"
)

const cookieName = "cocktail_finder_session"

type Handler struct {
	store  *Store
	logger *slog.Logger
}

func NewHandler(store *Store, logger *slog.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// EnsureSessionID returns the caller's session id, minting a new cookie
// when none is present. Sessions carry no identity beyond the cookie.
func EnsureSessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// GetFavorites lists the session's favorite bar ids.
// @Summary      Get Favorites
// @Description  Returns the transient favorite-bar id list for this session.
// @Tags         Session
// @Produce      json
// @Success      200 {object} map[string][]string "Favorites"
// @Router       /session/favorites [get]
func (h *Handler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	sessionID := EnsureSessionID(w, r)
	state := h.store.Get(sessionID)
	api.WriteJSONResponse(w, r, http.StatusOK, map[string][]string{"favorites": state.Favorites})
}

// ToggleFavorite flips one bar in and out of the session's favorites.
// @Summary      Toggle Favorite
// @Description  Adds the bar to the session's favorites, or removes it when already present.
// @Tags         Session
// @Produce      json
// @Param        barID path string true "Bar ID"
// @Success      200 {object} map[string][]string "Updated favorites"
// @Failure      400 {object} map[string]interface{} "Missing bar ID"
// @Router       /session/favorites/{barID} [post]
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("SessionHandler").Start(r.Context(), "ToggleFavorite", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/session/favorites/{barID}"),
	))
	defer span.End()

	barID := chi.URLParam(r, "barID")
	if barID == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Bar ID is required")
		return
	}

	sessionID := EnsureSessionID(w, r)
	favorites := h.store.ToggleFavorite(sessionID, barID)

	h.logger.DebugContext(ctx, "Favorite toggled", slog.String("bar_id", barID))
	api.WriteJSONResponse(w, r, http.StatusOK, map[string][]string{"favorites": favorites})
}

// GetPreferences returns the session's preference profile.
// @Summary      Get Preferences
// @Description  Returns the session's taste profile, defaulting on first touch.
// @Tags         Session
// @Produce      json
// @Success      200 {object} types.UserPreferences "Preferences"
// @Router       /session/preferences [get]
func (h *Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	sessionID := EnsureSessionID(w, r)
	state := h.store.Get(sessionID)
	api.WriteJSONResponse(w, r, http.StatusOK, state.Preferences)
}

// UpdatePreferences replaces the session's preference profile wholesale.
// @Summary      Update Preferences
// @Description  Replaces (never patches) the session's taste profile.
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        preferences body types.UserPreferences true "New preferences"
// @Success      200 {object} types.UserPreferences "Stored preferences"
// @Failure      400 {object} map[string]interface{} "Invalid body"
// @Router       /session/preferences [put]
func (h *Handler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("SessionHandler").Start(r.Context(), "UpdatePreferences", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/session/preferences"),
	))
	defer span.End()

	var prefs types.UserPreferences
	if err := api.DecodeJSONBody(w, r, &prefs); err != nil {
		h.logger.ErrorContext(ctx, "Failed to decode preferences", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	for _, level := range prefs.PricePreference {
		if level < 1 || level > 4 {
			api.ErrorResponse(w, r, http.StatusBadRequest, "Price preference levels must be between 1 and 4")
			return
		}
	}

	sessionID := EnsureSessionID(w, r)
	h.store.SetPreferences(sessionID, normalizePreferences(prefs))

	api.WriteJSONResponse(w, r, http.StatusOK, h.store.Get(sessionID).Preferences)
}

// normalizePreferences swaps nil slices for empty ones so stored state
// always marshals as JSON arrays.
func normalizePreferences(prefs types.UserPreferences) types.UserPreferences {
	if prefs.FavoriteTypes == nil {
		prefs.FavoriteTypes = []string{}
	}
	if prefs.PricePreference == nil {
		prefs.PricePreference = []int{}
	}
	if prefs.AtmospherePreference == nil {
		prefs.AtmospherePreference = []string{}
	}
	if prefs.SavedBars == nil {
		prefs.SavedBars = []string{}
	}
	return prefs
}
