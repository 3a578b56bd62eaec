package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/ggggzj/la-cocktail-finder/internal/api/bars"
	"github.com/ggggzj/la-cocktail-finder/internal/api/recommendations"
	"github.com/ggggzj/la-cocktail-finder/internal/api/session"
)

// Config contains dependencies needed for the router setup
type Config struct {
	BarHandler            *bars.Handler
	RecommendationHandler *recommendations.Handler
	SessionHandler        *session.Handler
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (like logger, requestID, recoverer) are expected
// to be applied *before* mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/bars", func(r chi.Router) {
			r.Get("/", cfg.BarHandler.ListBars)
			r.Get("/trending", cfg.RecommendationHandler.GetTrendingBars)
			r.Get("/recommended", cfg.RecommendationHandler.GetRecommendedBars)
			r.Get("/{id}/similar", cfg.RecommendationHandler.GetSimilarBars)
			r.Post("/enrich", cfg.BarHandler.EnrichBar)
		})

		r.Get("/providers/status", cfg.BarHandler.GetProviderStatus)

		r.Route("/session", func(r chi.Router) {
			r.Get("/favorites", cfg.SessionHandler.GetFavorites)
			r.Post("/favorites/{barID}", cfg.SessionHandler.ToggleFavorite)
			r.Get("/preferences", cfg.SessionHandler.GetPreferences)
			r.Put("/preferences", cfg.SessionHandler.UpdatePreferences)
		})
	})

	return r
}
