package recommendations

import (
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/ggggzj/la-cocktail-finder/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Service produces explainable relevance scores and derived rankings.
// Every method is a pure function over its inputs: no I/O, no caching,
// new slices returned.
type Service interface {
	ScoreBarForUser(bar types.Bar, prefs types.UserPreferences, favoriteIDs, trendingIDs []string) types.ScoredBar
	GetRecommendations(bars []types.Bar, prefs types.UserPreferences, favoriteIDs []string, limit int) []types.ScoredBar
	GetTrendingBars(bars []types.Bar, limit int) []types.Bar
	GetSimilarBars(target types.Bar, allBars []types.Bar, limit int) []types.Bar
}

type ServiceImpl struct {
	logger *slog.Logger
}

func NewServiceImpl(logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{logger: logger}
}

// ScoreBarForUser computes a weighted relevance score for one bar,
// starting from rating*10 and adjusting for preference matches, the
// trending bonus set, and a discovery bias against known favorites.
// Each triggered adjustment appends a human-readable reason.
func (s *ServiceImpl) ScoreBarForUser(bar types.Bar, prefs types.UserPreferences, favoriteIDs, trendingIDs []string) types.ScoredBar {
	score := bar.Rating * 10
	var reasons []string

	var matchingTypes []string
	for _, ct := range bar.CocktailTypes {
		if containsString(prefs.FavoriteTypes, ct.Name) {
			matchingTypes = append(matchingTypes, ct.Name)
		}
	}
	if len(matchingTypes) > 0 {
		score += float64(len(matchingTypes)) * 15
		reasons = append(reasons, "Serves your favorite cocktails: "+strings.Join(matchingTypes, ", "))
	}

	if containsInt(prefs.PricePreference, bar.PriceRange) {
		score += 20
		reasons = append(reasons, "Matches your price preference")
	}

	var matchingAtmosphere []string
	for _, tag := range bar.Atmosphere {
		if containsString(prefs.AtmospherePreference, tag) {
			matchingAtmosphere = append(matchingAtmosphere, tag)
		}
	}
	if len(matchingAtmosphere) > 0 {
		score += float64(len(matchingAtmosphere)) * 10
		reasons = append(reasons, "Perfect atmosphere: "+strings.Join(matchingAtmosphere, ", "))
	}

	if containsString(trendingIDs, bar.ID) {
		score += 25
		reasons = append(reasons, "Currently trending in LA")
	}

	// Discovery bias: favorites score lower so new places surface
	// first. The reason string reads like a benefit; that wording is
	// part of the established output.
	if containsString(favoriteIDs, bar.ID) {
		score -= 10
		reasons = append(reasons, "Already in your favorites")
	}

	if bar.Rating >= 4.5 {
		score += 15
		reasons = append(reasons, "Highly rated by users")
	}

	if len(bar.CocktailTypes) >= 4 {
		score += 10
		reasons = append(reasons, "Great cocktail variety")
	}

	return types.ScoredBar{
		Bar:     bar,
		Score:   math.Max(0, score),
		Reasons: reasons,
	}
}

// GetRecommendations scores every bar against the preferences, using
// the top-3 bars by raw rating from the same input as the trending
// bonus set, and returns the highest-scoring bars. Ties keep input
// order (stable sort).
func (s *ServiceImpl) GetRecommendations(bars []types.Bar, prefs types.UserPreferences, favoriteIDs []string, limit int) []types.ScoredBar {
	byRating := make([]types.Bar, len(bars))
	copy(byRating, bars)
	sort.SliceStable(byRating, func(i, j int) bool {
		return byRating[i].Rating > byRating[j].Rating
	})

	trendingIDs := make([]string, 0, 3)
	for i := 0; i < len(byRating) && i < 3; i++ {
		trendingIDs = append(trendingIDs, byRating[i].ID)
	}

	scored := make([]types.ScoredBar, 0, len(bars))
	for _, bar := range bars {
		scored = append(scored, s.ScoreBarForUser(bar, prefs, favoriteIDs, trendingIDs))
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	s.logger.Debug("Computed recommendations",
		slog.Int("candidates", len(bars)), slog.Int("returned", len(scored)))
	return scored
}

// GetTrendingBars ranks by rating x review count, so trending demands
// review volume: a bar with zero reviews scores zero regardless of its
// rating.
func (s *ServiceImpl) GetTrendingBars(bars []types.Bar, limit int) []types.Bar {
	ranked := make([]types.Bar, len(bars))
	copy(ranked, bars)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Rating*float64(len(ranked[i].Reviews)) > ranked[j].Rating*float64(len(ranked[j].Reviews))
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// GetSimilarBars ranks the other bars by shared attributes with the
// target: shared cocktail types and atmosphere tags, plus bonuses for
// close price range and close rating. The target itself is excluded.
func (s *ServiceImpl) GetSimilarBars(target types.Bar, allBars []types.Bar, limit int) []types.Bar {
	type candidate struct {
		bar        types.Bar
		similarity int
	}

	candidates := make([]candidate, 0, len(allBars))
	for _, bar := range allBars {
		if bar.ID == target.ID {
			continue
		}

		similarity := 0
		for _, ct := range bar.CocktailTypes {
			if hasCocktailType(target.CocktailTypes, ct.Name) {
				similarity += 2
			}
		}
		for _, tag := range bar.Atmosphere {
			if containsString(target.Atmosphere, tag) {
				similarity += 3
			}
		}
		if abs(bar.PriceRange-target.PriceRange) <= 1 {
			similarity += 5
		}
		if math.Abs(bar.Rating-target.Rating) <= 0.5 {
			similarity += 3
		}
		candidates = append(candidates, candidate{bar: bar, similarity: similarity})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].similarity > candidates[j].similarity
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	similar := make([]types.Bar, 0, len(candidates))
	for _, c := range candidates {
		similar = append(similar, c.bar)
	}
	return similar
}

func hasCocktailType(cocktailTypes []types.CocktailType, name string) bool {
	for _, ct := range cocktailTypes {
		if ct.Name == name {
			return true
		}
	}
	return false
}

func containsString(s []string, v string) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}

func containsInt(s []int, v int) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
