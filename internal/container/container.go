package container

import (
	"log/slog"
	"time"

	"github.com/ggggzj/la-cocktail-finder/config"
	"github.com/ggggzj/la-cocktail-finder/internal/api/bars"
	"github.com/ggggzj/la-cocktail-finder/internal/api/googleplaces"
	"github.com/ggggzj/la-cocktail-finder/internal/api/provider"
	"github.com/ggggzj/la-cocktail-finder/internal/api/recommendations"
	"github.com/ggggzj/la-cocktail-finder/internal/api/session"
	"github.com/ggggzj/la-cocktail-finder/internal/api/yelp"
)

// Container holds all application dependencies
type Container struct {
	Config                *config.Config
	Logger                *slog.Logger
	BarService            bars.Service
	SessionStore          *session.Store
	BarHandler            *bars.Handler
	RecommendationHandler *recommendations.Handler
	SessionHandler        *session.Handler
}

// NewContainer initializes and returns a new dependency container.
// Provider clients are constructed here and injected into the
// aggregator rather than living as package-level singletons, so tests
// can substitute doubles.
func NewContainer(cfg *config.Config, logger *slog.Logger) *Container {
	enricher := provider.NewEnricher()

	googleClient := googleplaces.NewClient(cfg.GoogleAPIKey(), cfg.Providers.Google.BaseURL, enricher, logger)
	yelpClient := yelp.NewClient(cfg.YelpAPIKey(), cfg.Providers.Yelp.BaseURL, enricher, logger)

	barService := bars.NewServiceImpl(googleClient, yelpClient, logger)
	barHandler := bars.NewHandler(barService, cfg.Search.DefaultRadiusMeters, logger)

	sessionTTL := cfg.Session.TTL
	if sessionTTL <= 0 {
		sessionTTL = 12 * time.Hour
	}
	sessionStore := session.NewStore(sessionTTL, logger)
	sessionHandler := session.NewHandler(sessionStore, logger)

	recService := recommendations.NewServiceImpl(logger)
	recHandler := recommendations.NewHandler(recService, barService, barHandler, sessionStore, logger)

	return &Container{
		Config:                cfg,
		Logger:                logger,
		BarService:            barService,
		SessionStore:          sessionStore,
		BarHandler:            barHandler,
		RecommendationHandler: recHandler,
		SessionHandler:        sessionHandler,
	}
}
