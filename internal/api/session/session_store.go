package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/ggggzj/la-cocktail-finder/internal/types"
)

// State is one browser session's transient slice of UI state: the
// favorite-bar id list and the preference profile. Nothing survives a
// restart or the cache TTL; that is the intended lifecycle.
type State struct {
	Favorites   []string              `json:"favorites"`
	Preferences types.UserPreferences `json:"preferences"`
}

// Store keeps per-session state in an expiring in-memory cache.
type Store struct {
	logger *slog.Logger
	mu     sync.Mutex
	cache  *cache.Cache
}

func NewStore(ttl time.Duration, logger *slog.Logger) *Store {
	return &Store{
		logger: logger,
		cache:  cache.New(ttl, ttl/2),
	}
}

// Get returns the session's state, creating a default one (empty
// favorites, default preferences) on first touch.
func (s *Store) Get(sessionID string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked(sessionID)
}

func (s *Store) getLocked(sessionID string) State {
	if v, found := s.cache.Get(sessionID); found {
		return v.(State)
	}
	state := State{
		Favorites:   []string{},
		Preferences: types.DefaultUserPreferences(),
	}
	s.cache.Set(sessionID, state, cache.DefaultExpiration)
	return state
}

// ToggleFavorite adds the bar id to the session's favorites, or removes
// it when already present, and returns the updated list.
func (s *Store) ToggleFavorite(sessionID, barID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.getLocked(sessionID)
	updated := make([]string, 0, len(state.Favorites)+1)
	removed := false
	for _, id := range state.Favorites {
		if id == barID {
			removed = true
			continue
		}
		updated = append(updated, id)
	}
	if !removed {
		updated = append(updated, barID)
	}

	state.Favorites = updated
	s.cache.Set(sessionID, state, cache.DefaultExpiration)
	s.logger.Debug("Toggled favorite",
		slog.String("bar_id", barID), slog.Bool("removed", removed), slog.Int("favorites", len(updated)))
	return updated
}

// SetPreferences replaces the session's preference profile wholesale.
func (s *Store) SetPreferences(sessionID string, prefs types.UserPreferences) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.getLocked(sessionID)
	state.Preferences = prefs
	s.cache.Set(sessionID, state, cache.DefaultExpiration)
}
