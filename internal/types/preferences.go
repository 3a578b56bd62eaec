package types

// UserPreferences is the session-scoped taste profile the recommendation
// engine scores against. Replaced wholesale on every update, never patched.
type UserPreferences struct {
	FavoriteTypes        []string `json:"favoriteTypes"`
	PricePreference      []int    `json:"pricePreference"`
	AtmospherePreference []string `json:"atmospherePreference"`
	SavedBars            []string `json:"savedBars"`
}

// DefaultUserPreferences is the fixed starter profile used until a
// session sets its own.
func DefaultUserPreferences() UserPreferences {
	return UserPreferences{
		FavoriteTypes:        []string{"whiskey", "gin"},
		PricePreference:      []int{2, 3},
		AtmospherePreference: []string{"upscale", "intimate"},
		SavedBars:            []string{},
	}
}

// ScoredBar pairs a bar with its relevance score and the human-readable
// reasons that produced it.
type ScoredBar struct {
	Bar     Bar      `json:"bar"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
}

// ProviderStatus reports which lookup providers have credentials
// configured. Diagnostic only; an unconfigured provider simply yields
// empty results through its own soft-fail path.
type ProviderStatus struct {
	Google bool `json:"google"`
	Yelp   bool `json:"yelp"`
}
