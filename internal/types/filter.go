package types

// FilterOptions narrows an aggregated bar list. Zero values disable the
// corresponding predicate (empty search, empty or full price selection,
// zero rating threshold, empty tag selections, OpenNow=false).
type FilterOptions struct {
	Search        string          `json:"search"`
	PriceRange    []int           `json:"priceRange"`
	Rating        float64         `json:"rating"`
	CocktailTypes []string        `json:"cocktailTypes"`
	Atmosphere    []string        `json:"atmosphere"`
	OpenNow       bool            `json:"isOpen"`
	Location      *LocationFilter `json:"location,omitempty"`
}

// LocationFilter is carried for the presentation layer's map view; the
// filter pipeline itself delegates radius queries to the providers.
type LocationFilter struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Radius float64 `json:"radius"`
}
