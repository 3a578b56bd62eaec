package bars

import (
	"strings"
	"time"

	"github.com/ggggzj/la-cocktail-finder/internal/types"
)

// ApplyFilters narrows bars by the active filter options. Pure: returns
// a new slice, never mutates the input, and is deterministic for a
// fixed reference time. The predicates are independent, so their order
// only affects short-circuit cost, never the result set.
func ApplyFilters(in []types.Bar, opts types.FilterOptions, now time.Time) []types.Bar {
	out := make([]types.Bar, 0, len(in))
	for _, bar := range in {
		if matchesFilters(bar, opts, now) {
			out = append(out, bar)
		}
	}
	return out
}

func matchesFilters(bar types.Bar, opts types.FilterOptions, now time.Time) bool {
	if opts.Search != "" && !matchesSearch(bar, opts.Search) {
		return false
	}
	// Selecting every price level (or none) disables the predicate.
	if len(opts.PriceRange) > 0 && len(opts.PriceRange) < 4 && !containsInt(opts.PriceRange, bar.PriceRange) {
		return false
	}
	if opts.Rating > 0 && bar.Rating < opts.Rating {
		return false
	}
	if len(opts.CocktailTypes) > 0 && !hasAnyCocktailType(bar, opts.CocktailTypes) {
		return false
	}
	if len(opts.Atmosphere) > 0 && !hasAnyTag(bar.Atmosphere, opts.Atmosphere) {
		return false
	}
	if opts.OpenNow && !bar.OpenHours.OpenAt(now) {
		return false
	}
	return true
}

// matchesSearch tests the term case-insensitively as a substring of the
// bar's name, address, description, cocktail-type names and atmosphere
// tags; any single match passes.
func matchesSearch(bar types.Bar, term string) bool {
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(bar.Name), term) ||
		strings.Contains(strings.ToLower(bar.Address), term) ||
		strings.Contains(strings.ToLower(bar.Description), term) {
		return true
	}
	for _, ct := range bar.CocktailTypes {
		if strings.Contains(strings.ToLower(ct.Name), term) {
			return true
		}
	}
	for _, tag := range bar.Atmosphere {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func hasAnyCocktailType(bar types.Bar, selected []string) bool {
	for _, ct := range bar.CocktailTypes {
		for _, name := range selected {
			if ct.Name == name {
				return true
			}
		}
	}
	return false
}

func hasAnyTag(tags, selected []string) bool {
	for _, tag := range tags {
		for _, name := range selected {
			if tag == name {
				return true
			}
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
