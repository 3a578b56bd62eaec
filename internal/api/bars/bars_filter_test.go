package bars

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ggggzj/la-cocktail-finder/internal/types"
)

// Friday 20:00 local; the sample dataset's bars are all open then.
var fridayEvening = time.Date(2024, 3, 8, 20, 0, 0, 0, time.UTC)

func filterFixtures() []types.Bar {
	return []types.Bar{
		{
			ID: "whiskey-den", Name: "The Whiskey Den", Address: "100 Spring St",
			Description: "Dim lit whiskey hideout", Rating: 4.8, PriceRange: 3,
			CocktailTypes: []types.CocktailType{{Name: "whiskey", Popularity: 9}},
			Atmosphere:    []string{"intimate", "sophisticated"},
			OpenHours:     types.WeekSchedule{"friday": {Open: "19:00", Close: "02:00"}},
		},
		{
			ID: "daytime-cafe", Name: "Morning Spritz", Address: "200 Main St",
			Description: "Brunch cocktails", Rating: 4.1, PriceRange: 2,
			CocktailTypes: []types.CocktailType{{Name: "gin", Popularity: 7}},
			Atmosphere:    []string{"casual", "lively"},
			OpenHours:     types.WeekSchedule{"friday": {Open: "09:00", Close: "15:00"}},
		},
		{
			ID: "dive", Name: "Rusty Anchor", Address: "300 Harbor Blvd",
			Description: "No frills beer and rum", Rating: 3.2, PriceRange: 1,
			CocktailTypes: []types.CocktailType{{Name: "rum", Popularity: 6}},
			Atmosphere:    []string{"casual"},
			OpenHours:     types.WeekSchedule{"friday": {Open: "12:00", Close: "23:00"}},
		},
	}
}

func idsOf(bars []types.Bar) []string {
	ids := make([]string, 0, len(bars))
	for _, b := range bars {
		ids = append(ids, b.ID)
	}
	return ids
}

func TestApplyFiltersNoOptionsKeepsEverything(t *testing.T) {
	in := filterFixtures()
	out := ApplyFilters(in, types.FilterOptions{}, fridayEvening)
	assert.Equal(t, idsOf(in), idsOf(out))
}

func TestApplyFiltersSearch(t *testing.T) {
	in := filterFixtures()

	tests := []struct {
		term string
		want []string
	}{
		{"WHISKEY", []string{"whiskey-den"}},         // name + description, case-insensitive
		{"harbor", []string{"dive"}},                 // address
		{"gin", []string{"daytime-cafe"}},            // cocktail type name
		{"casual", []string{"daytime-cafe", "dive"}}, // atmosphere tag
		{"tiki", []string{}},
	}
	for _, tt := range tests {
		out := ApplyFilters(in, types.FilterOptions{Search: tt.term}, fridayEvening)
		assert.Equal(t, tt.want, idsOf(out), "search %q", tt.term)
	}
}

func TestApplyFiltersPriceRange(t *testing.T) {
	in := filterFixtures()

	out := ApplyFilters(in, types.FilterOptions{PriceRange: []int{1, 2}}, fridayEvening)
	assert.Equal(t, []string{"daytime-cafe", "dive"}, idsOf(out))

	// Selecting all four levels is the same as no price filter.
	out = ApplyFilters(in, types.FilterOptions{PriceRange: []int{1, 2, 3, 4}}, fridayEvening)
	assert.Len(t, out, len(in))
}

func TestApplyFiltersRating(t *testing.T) {
	in := filterFixtures()
	out := ApplyFilters(in, types.FilterOptions{Rating: 4.0}, fridayEvening)
	assert.Equal(t, []string{"whiskey-den", "daytime-cafe"}, idsOf(out))
}

func TestApplyFiltersCocktailTypesAnyMatch(t *testing.T) {
	in := filterFixtures()
	out := ApplyFilters(in, types.FilterOptions{CocktailTypes: []string{"gin", "rum"}}, fridayEvening)
	assert.Equal(t, []string{"daytime-cafe", "dive"}, idsOf(out))
}

func TestApplyFiltersAtmosphereAnyMatch(t *testing.T) {
	in := filterFixtures()
	out := ApplyFilters(in, types.FilterOptions{Atmosphere: []string{"intimate"}}, fridayEvening)
	assert.Equal(t, []string{"whiskey-den"}, idsOf(out))
}

func TestApplyFiltersOpenNow(t *testing.T) {
	in := filterFixtures()

	out := ApplyFilters(in, types.FilterOptions{OpenNow: true}, fridayEvening)
	assert.Equal(t, []string{"whiskey-den", "dive"}, idsOf(out))

	morning := time.Date(2024, 3, 8, 10, 0, 0, 0, time.UTC)
	out = ApplyFilters(in, types.FilterOptions{OpenNow: true}, morning)
	assert.Equal(t, []string{"daytime-cafe"}, idsOf(out))
}

func TestApplyFiltersCombined(t *testing.T) {
	in := filterFixtures()
	out := ApplyFilters(in, types.FilterOptions{
		Search:     "st",
		PriceRange: []int{2, 3},
		Rating:     4.0,
		OpenNow:    true,
	}, fridayEvening)
	assert.Equal(t, []string{"whiskey-den"}, idsOf(out))
}

// Sequentially applying each predicate on its own must reach the same
// result set as the combined filter, in every order.
func TestApplyFiltersOrderIndependent(t *testing.T) {
	in := filterFixtures()
	combined := types.FilterOptions{
		Search:        "o",
		PriceRange:    []int{1, 2},
		Rating:        3.0,
		CocktailTypes: []string{"gin", "rum"},
		Atmosphere:    []string{"casual"},
		OpenNow:       true,
	}
	singles := []types.FilterOptions{
		{Search: combined.Search},
		{PriceRange: combined.PriceRange},
		{Rating: combined.Rating},
		{CocktailTypes: combined.CocktailTypes},
		{Atmosphere: combined.Atmosphere},
		{OpenNow: true},
	}

	want := idsOf(ApplyFilters(in, combined, fridayEvening))
	require.NotEmpty(t, want)

	for _, order := range permutations(len(singles)) {
		got := in
		for _, idx := range order {
			got = ApplyFilters(got, singles[idx], fridayEvening)
		}
		assert.Equal(t, want, idsOf(got), "order %v", order)
	}
}

func TestApplyFiltersIdempotent(t *testing.T) {
	in := filterFixtures()
	opts := types.FilterOptions{Rating: 4.0, OpenNow: true}

	once := ApplyFilters(in, opts, fridayEvening)
	twice := ApplyFilters(once, opts, fridayEvening)
	assert.Equal(t, idsOf(once), idsOf(twice))
}

func TestApplyFiltersDoesNotMutateInput(t *testing.T) {
	in := filterFixtures()
	ApplyFilters(in, types.FilterOptions{Rating: 5.0}, fridayEvening)
	assert.Equal(t, idsOf(filterFixtures()), idsOf(in))
}

func permutations(n int) [][]int {
	base := make([]int, n)
	for i := range base {
		base[i] = i
	}
	var out [][]int
	var recurse func(k int)
	recurse = func(k int) {
		if k == n {
			perm := make([]int, n)
			copy(perm, base)
			out = append(out, perm)
			return
		}
		for i := k; i < n; i++ {
			base[k], base[i] = base[i], base[k]
			recurse(k + 1)
			base[k], base[i] = base[i], base[k]
		}
	}
	recurse(0)
	return out
}
