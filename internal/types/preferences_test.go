package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultUserPreferences(t *testing.T) {
	prefs := DefaultUserPreferences()

	assert.Equal(t, []string{"whiskey", "gin"}, prefs.FavoriteTypes)
	assert.Equal(t, []int{2, 3}, prefs.PricePreference)
	assert.Equal(t, []string{"upscale", "intimate"}, prefs.AtmospherePreference)
	assert.Empty(t, prefs.SavedBars)
}

func TestDefaultUserPreferencesReturnsFreshSlices(t *testing.T) {
	a := DefaultUserPreferences()
	a.FavoriteTypes[0] = "mezcal"

	assert.Equal(t, []string{"whiskey", "gin"}, DefaultUserPreferences().FavoriteTypes)
}
