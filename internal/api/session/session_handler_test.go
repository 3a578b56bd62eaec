package session

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ggggzj/la-cocktail-finder/internal/types"
)

func newTestHandler() *Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(newTestStore(), logger)
}

func sessionRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/session/favorites", h.GetFavorites)
	r.Post("/session/favorites/{barID}", h.ToggleFavorite)
	r.Get("/session/preferences", h.GetPreferences)
	r.Put("/session/preferences", h.UpdatePreferences)
	return r
}

func TestEnsureSessionIDMintsCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/session/favorites", nil)

	id := EnsureSessionID(rec, req)

	require.NotEmpty(t, id)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, cookieName, cookies[0].Name)
	assert.Equal(t, id, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestEnsureSessionIDReusesCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/session/favorites", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "existing-id"})

	assert.Equal(t, "existing-id", EnsureSessionID(rec, req))
	assert.Empty(t, rec.Result().Cookies())
}

func TestToggleFavoriteRoundTrip(t *testing.T) {
	router := sessionRouter(newTestHandler())

	req := httptest.NewRequest(http.MethodPost, "/session/favorites/bar-1", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "s1"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"bar-1"}, body["favorites"])

	// Same request again removes it.
	req = httptest.NewRequest(http.MethodPost, "/session/favorites/bar-1", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "s1"})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body["favorites"])
}

func TestGetPreferencesDefaults(t *testing.T) {
	router := sessionRouter(newTestHandler())

	req := httptest.NewRequest(http.MethodGet, "/session/preferences", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var prefs types.UserPreferences
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prefs))
	assert.Equal(t, []string{"whiskey", "gin"}, prefs.FavoriteTypes)
}

func TestUpdatePreferences(t *testing.T) {
	router := sessionRouter(newTestHandler())

	body := `{"favoriteTypes": ["mezcal"], "pricePreference": [3, 4]}`
	req := httptest.NewRequest(http.MethodPut, "/session/preferences", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "s1"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var prefs types.UserPreferences
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prefs))
	assert.Equal(t, []string{"mezcal"}, prefs.FavoriteTypes)
	assert.Equal(t, []int{3, 4}, prefs.PricePreference)
	// nil slices in the request come back as empty arrays, not null.
	assert.NotNil(t, prefs.AtmospherePreference)
	assert.Empty(t, prefs.AtmospherePreference)
}

func TestUpdatePreferencesRejectsBadPriceLevel(t *testing.T) {
	router := sessionRouter(newTestHandler())

	body := `{"pricePreference": [0, 5]}`
	req := httptest.NewRequest(http.MethodPut, "/session/preferences", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
