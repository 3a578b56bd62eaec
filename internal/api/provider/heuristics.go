package provider

import (
	"math/rand"
	"sync"

	"github.com/jaswdr/faker"

	"github.com/ggggzj/la-cocktail-finder/internal/types"
)

// cocktailVocabulary is the fixed taxonomy bars are sampled from when a
// provider exposes no structured cocktail data.
var cocktailVocabulary = []string{"whiskey", "gin", "vodka", "rum", "tequila", "mezcal", "brandy", "bourbon"}

// defaultAtmospheres pads keyword-derived atmosphere tags up to the
// target count.
var defaultAtmospheres = []string{"intimate", "upscale", "casual", "sophisticated", "lively"}

// Enricher generates the heuristic fields neither provider supplies
// (cocktail taxonomy, atmosphere padding, review helpful counts). The
// generated values are deliberately approximate enrichments, not facts;
// outputs are nondeterministic unless constructed with a fixed seed.
type Enricher struct {
	mu sync.Mutex
	f  faker.Faker
}

// NewEnricher returns an Enricher backed by an unseeded source.
func NewEnricher() *Enricher {
	return &Enricher{f: faker.New()}
}

// NewSeededEnricher returns an Enricher with pinned output, for tests.
func NewSeededEnricher(seed int64) *Enricher {
	return &Enricher{f: faker.NewWithSeed(rand.NewSource(seed))}
}

// SampleCocktailTypes draws 3 to 6 distinct entries from the fixed
// vocabulary, each with a popularity in [6,9].
func (e *Enricher) SampleCocktailTypes() []types.CocktailType {
	e.mu.Lock()
	defer e.mu.Unlock()

	pool := make([]string, len(cocktailVocabulary))
	copy(pool, cocktailVocabulary)

	count := e.f.IntBetween(3, 6)
	selected := make([]types.CocktailType, 0, count)
	for i := 0; i < count; i++ {
		idx := e.f.IntBetween(0, len(pool)-1)
		selected = append(selected, types.CocktailType{
			Name:       pool[idx],
			Popularity: e.f.IntBetween(6, 9),
		})
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return selected
}

// PadAtmosphere tops the keyword-derived tags up to target entries with
// random defaults not already present.
func (e *Enricher) PadAtmosphere(tags []string, target int) []string {
	if len(tags) >= target {
		return tags
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	pool := make([]string, 0, len(defaultAtmospheres))
	for _, a := range defaultAtmospheres {
		if !containsString(tags, a) {
			pool = append(pool, a)
		}
	}
	for len(tags) < target && len(pool) > 0 {
		idx := e.f.IntBetween(0, len(pool)-1)
		tags = append(tags, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return tags
}

// HelpfulCount fabricates a small helpful-vote count in [0,max) for
// reviews whose provider does not expose one.
func (e *Enricher) HelpfulCount(max int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.f.IntBetween(0, max-1)
}

// DefaultWeekSchedule is the fallback when a provider reports no hours
// or the reported hours are unparsable: Monday dark, late-night hours
// the rest of the week.
func DefaultWeekSchedule() types.WeekSchedule {
	ws := types.WeekSchedule{
		"monday": {Closed: true},
		"sunday": {Open: "17:00", Close: "24:00"},
	}
	for _, day := range []string{"tuesday", "wednesday", "thursday", "friday", "saturday"} {
		ws[day] = types.DayHours{Open: "17:00", Close: "02:00"}
	}
	return ws
}

func containsString(s []string, v string) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}
