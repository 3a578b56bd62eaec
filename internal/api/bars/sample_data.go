package bars

import "github.com/ggggzj/la-cocktail-finder/internal/types"

// SampleBars is the hand-authored fallback dataset served whenever live
// aggregation yields nothing (both providers empty, unconfigured, or
// failing). Venues are real LA cocktail bars.
var SampleBars = []types.Bar{
	{
		ID:          "1",
		Name:        "The Varnish",
		Address:     "118 E 6th St, Los Angeles, CA 90014",
		Latitude:    34.0466,
		Longitude:   -118.2506,
		Rating:      4.5,
		PriceRange:  3,
		PhoneNumber: "(213) 622-9999",
		Website:     "https://thevarnishbar.com",
		Description: "Hidden speakeasy-style cocktail bar in downtown LA",
		ImageURL:    "https://images.unsplash.com/photo-1514362545857-3bc16c4c7d1b?w=500",
		OpenHours: types.WeekSchedule{
			"monday":    {Closed: true},
			"tuesday":   {Open: "19:00", Close: "02:00"},
			"wednesday": {Open: "19:00", Close: "02:00"},
			"thursday":  {Open: "19:00", Close: "02:00"},
			"friday":    {Open: "19:00", Close: "02:00"},
			"saturday":  {Open: "19:00", Close: "02:00"},
			"sunday":    {Open: "19:00", Close: "02:00"},
		},
		Features: []string{"speakeasy", "craft cocktails", "intimate setting"},
		CocktailTypes: []types.CocktailType{
			{Name: "whiskey", Popularity: 9},
			{Name: "gin", Popularity: 8},
			{Name: "rum", Popularity: 7},
		},
		Atmosphere: []string{"intimate", "upscale", "dimly lit"},
		Reviews: []types.Review{
			{
				ID:       "r1",
				UserName: "Sarah M.",
				Rating:   5,
				Comment:  "Amazing craft cocktails and intimate atmosphere. Perfect for date night!",
				Date:     "2024-01-15",
				Helpful:  12,
			},
		},
	},
	{
		ID:          "2",
		Name:        "Broken Shaker",
		Address:     "1760 N Vermont Ave, Los Angeles, CA 90027",
		Latitude:    34.1026,
		Longitude:   -118.2912,
		Rating:      4.3,
		PriceRange:  2,
		PhoneNumber: "(323) 452-0040",
		Description: "Tropical-inspired cocktails in a poolside setting",
		ImageURL:    "https://images.unsplash.com/photo-1566737236500-c8ac43014a8e?w=500",
		OpenHours: types.WeekSchedule{
			"monday":    {Open: "18:00", Close: "24:00"},
			"tuesday":   {Open: "18:00", Close: "24:00"},
			"wednesday": {Open: "18:00", Close: "24:00"},
			"thursday":  {Open: "18:00", Close: "01:00"},
			"friday":    {Open: "18:00", Close: "02:00"},
			"saturday":  {Open: "18:00", Close: "02:00"},
			"sunday":    {Open: "18:00", Close: "24:00"},
		},
		Features: []string{"outdoor seating", "tropical cocktails", "poolside"},
		CocktailTypes: []types.CocktailType{
			{Name: "rum", Popularity: 9},
			{Name: "tequila", Popularity: 8},
			{Name: "mezcal", Popularity: 7},
		},
		Atmosphere: []string{"casual", "tropical", "outdoor"},
		Reviews: []types.Review{
			{
				ID:       "r2",
				UserName: "Mike R.",
				Rating:   4,
				Comment:  "Great tropical vibes and creative cocktails. Can get crowded on weekends.",
				Date:     "2024-01-20",
				Helpful:  8,
			},
		},
	},
	{
		ID:          "3",
		Name:        "Death & Co",
		Address:     "1681 N Highland Ave, Los Angeles, CA 90028",
		Latitude:    34.1042,
		Longitude:   -118.3389,
		Rating:      4.7,
		PriceRange:  4,
		PhoneNumber: "(323) 666-6699",
		Website:     "https://deathandcompany.com",
		Description: "Award-winning cocktail lounge with innovative drinks",
		ImageURL:    "https://images.unsplash.com/photo-1551538827-9c037cb4f32a?w=500",
		OpenHours: types.WeekSchedule{
			"monday":    {Closed: true},
			"tuesday":   {Open: "18:00", Close: "01:00"},
			"wednesday": {Open: "18:00", Close: "01:00"},
			"thursday":  {Open: "18:00", Close: "02:00"},
			"friday":    {Open: "18:00", Close: "02:00"},
			"saturday":  {Open: "18:00", Close: "02:00"},
			"sunday":    {Open: "18:00", Close: "01:00"},
		},
		Features: []string{"award-winning", "innovative cocktails", "upscale"},
		CocktailTypes: []types.CocktailType{
			{Name: "whiskey", Popularity: 9},
			{Name: "gin", Popularity: 8},
			{Name: "brandy", Popularity: 7},
			{Name: "mezcal", Popularity: 8},
		},
		Atmosphere: []string{"upscale", "sophisticated", "moody"},
		Reviews: []types.Review{
			{
				ID:       "r3",
				UserName: "Jennifer L.",
				Rating:   5,
				Comment:  "Exceptional cocktails and knowledgeable bartenders. Worth every penny!",
				Date:     "2024-01-25",
				Helpful:  15,
			},
		},
	},
	{
		ID:          "4",
		Name:        "Black Rabbit Rose",
		Address:     "1719 N Hudson Ave, Los Angeles, CA 90028",
		Latitude:    34.1039,
		Longitude:   -118.3396,
		Rating:      4.2,
		PriceRange:  3,
		PhoneNumber: "(323) 469-2669",
		Description: "Magic-themed cocktail bar with live performances",
		ImageURL:    "https://images.unsplash.com/photo-1572116469696-31de0f17cc34?w=500",
		OpenHours: types.WeekSchedule{
			"monday":    {Closed: true},
			"tuesday":   {Closed: true},
			"wednesday": {Open: "20:00", Close: "02:00"},
			"thursday":  {Open: "20:00", Close: "02:00"},
			"friday":    {Open: "20:00", Close: "02:00"},
			"saturday":  {Open: "20:00", Close: "02:00"},
			"sunday":    {Open: "20:00", Close: "02:00"},
		},
		Features: []string{"live entertainment", "magic shows", "unique theme"},
		CocktailTypes: []types.CocktailType{
			{Name: "gin", Popularity: 8},
			{Name: "vodka", Popularity: 7},
			{Name: "rum", Popularity: 6},
		},
		Atmosphere: []string{"theatrical", "unique", "entertaining"},
		Reviews: []types.Review{
			{
				ID:       "r4",
				UserName: "David K.",
				Rating:   4,
				Comment:  "Unique experience with great cocktails and magic shows. Very entertaining!",
				Date:     "2024-02-01",
				Helpful:  10,
			},
		},
	},
	{
		ID:          "5",
		Name:        "Harvard & Stone",
		Address:     "5221 Hollywood Blvd, Los Angeles, CA 90027",
		Latitude:    34.1022,
		Longitude:   -118.3067,
		Rating:      4.1,
		PriceRange:  2,
		PhoneNumber: "(323) 466-6063",
		Description: "Vintage-style cocktail lounge with live music",
		ImageURL:    "https://images.unsplash.com/photo-1470337458703-46ad1756a187?w=500",
		OpenHours: types.WeekSchedule{
			"monday":    {Open: "18:00", Close: "02:00"},
			"tuesday":   {Open: "18:00", Close: "02:00"},
			"wednesday": {Open: "18:00", Close: "02:00"},
			"thursday":  {Open: "18:00", Close: "02:00"},
			"friday":    {Open: "18:00", Close: "02:00"},
			"saturday":  {Open: "18:00", Close: "02:00"},
			"sunday":    {Open: "18:00", Close: "02:00"},
		},
		Features: []string{"live music", "vintage decor", "dancing"},
		CocktailTypes: []types.CocktailType{
			{Name: "whiskey", Popularity: 8},
			{Name: "vodka", Popularity: 7},
			{Name: "gin", Popularity: 6},
		},
		Atmosphere: []string{"vintage", "lively", "musical"},
		Reviews: []types.Review{
			{
				ID:       "r5",
				UserName: "Lisa P.",
				Rating:   4,
				Comment:  "Great vintage atmosphere and live music. Perfect for a fun night out!",
				Date:     "2024-02-05",
				Helpful:  7,
			},
		},
	},
}

// CocktailTypeOptions and AtmosphereOptions back the filter UI controls.
var CocktailTypeOptions = []string{"whiskey", "gin", "vodka", "rum", "tequila", "mezcal", "brandy", "bourbon"}

var AtmosphereOptions = []string{
	"intimate", "upscale", "casual", "tropical", "vintage", "sophisticated",
	"moody", "lively", "theatrical", "outdoor", "speakeasy",
}
