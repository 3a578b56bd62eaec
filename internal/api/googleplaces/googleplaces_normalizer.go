package googleplaces

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ggggzj/la-cocktail-finder/internal/api/provider"
	"github.com/ggggzj/la-cocktail-finder/internal/types"
)

// Raw wire shapes for the Places API. Only the fields the normalizer
// consumes are mapped; everything else in the provider payload is ignored.

type placesSearchResponse struct {
	Status  string        `json:"status"`
	Results []placeRecord `json:"results"`
}

type placeDetailsResponse struct {
	Status string      `json:"status"`
	Result placeRecord `json:"result"`
}

type placeRecord struct {
	PlaceID              string        `json:"place_id"`
	Name                 string        `json:"name"`
	Vicinity             string        `json:"vicinity"`
	FormattedAddress     string        `json:"formatted_address"`
	FormattedPhoneNumber string        `json:"formatted_phone_number"`
	Website              string        `json:"website"`
	Rating               float64       `json:"rating"`
	PriceLevel           int           `json:"price_level"`
	Types                []string      `json:"types"`
	Geometry             placeGeometry `json:"geometry"`
	OpeningHours         *placeHours   `json:"opening_hours"`
	EditorialSummary     *placeSummary `json:"editorial_summary"`
	Photos               []placePhoto  `json:"photos"`
	Reviews              []placeReview `json:"reviews"`
}

type placeGeometry struct {
	Location struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
}

type placeHours struct {
	WeekdayText []string `json:"weekday_text"`
}

type placeSummary struct {
	Overview string `json:"overview"`
}

type placePhoto struct {
	PhotoReference string `json:"photo_reference"`
}

type placeReview struct {
	AuthorName string `json:"author_name"`
	Rating     int    `json:"rating"`
	Text       string `json:"text"`
	Time       int64  `json:"time"`
}

// weekdayTextRe pulls the opening and closing clock out of a Places
// weekday_text line such as "Tuesday: 5:00 PM – 2:00 AM".
var weekdayTextRe = regexp.MustCompile(`(\d{1,2}:\d{2})\s*(AM|PM).*?(\d{1,2}:\d{2})\s*(AM|PM)`)

// normalizePlaces maps a page of nearby-search records onto canonical
// bars, substituting deterministic defaults for anything missing.
func (c *Client) normalizePlaces(places []placeRecord) []types.Bar {
	bars := make([]types.Bar, 0, len(places))
	for i, place := range places {
		bars = append(bars, c.normalizePlace(place, i))
	}
	return bars
}

func (c *Client) normalizePlace(place placeRecord, index int) types.Bar {
	bar := types.Bar{
		ID:            place.PlaceID,
		Name:          place.Name,
		Address:       place.Vicinity,
		Latitude:      place.Geometry.Location.Lat,
		Longitude:     place.Geometry.Location.Lng,
		Rating:        place.Rating,
		PriceRange:    clampPriceLevel(place.PriceLevel),
		PhoneNumber:   place.FormattedPhoneNumber,
		Website:       place.Website,
		Description:   "Cocktail bar and lounge",
		OpenHours:     mapOpeningHours(place.OpeningHours),
		Features:      extractFeatures(place),
		CocktailTypes: c.enricher.SampleCocktailTypes(),
		Atmosphere:    generateAtmosphere(place.Name, place.Types, c.enricher),
		Reviews:       []types.Review{},
	}

	if bar.ID == "" {
		bar.ID = fmt.Sprintf("google-%d", index)
	}
	if bar.Name == "" {
		bar.Name = "Unknown Bar"
	}
	if bar.Address == "" {
		bar.Address = "Address not available"
	}
	if bar.Rating == 0 {
		bar.Rating = 4.0
	}
	if place.EditorialSummary != nil && place.EditorialSummary.Overview != "" {
		bar.Description = place.EditorialSummary.Overview
	}
	if len(place.Photos) > 0 {
		bar.ImageURL = c.photoURL(place.Photos[0].PhotoReference)
	}
	return bar
}

func (c *Client) normalizeDetails(place placeRecord) *types.BarDetails {
	details := &types.BarDetails{
		PhoneNumber: place.FormattedPhoneNumber,
		Website:     place.Website,
		OpenHours:   mapOpeningHours(place.OpeningHours),
		Reviews:     make([]types.Review, 0, len(place.Reviews)),
	}

	for i, review := range place.Reviews {
		rating := review.Rating
		if rating == 0 {
			rating = 4
		}
		userName := review.AuthorName
		if userName == "" {
			userName = "Anonymous"
		}
		details.Reviews = append(details.Reviews, types.Review{
			ID:       fmt.Sprintf("review-%d", i),
			UserName: userName,
			Rating:   rating,
			Comment:  review.Text,
			Date:     time.Unix(review.Time, 0).UTC().Format("2006-01-02"),
			Helpful:  c.enricher.HelpfulCount(20),
		})
	}
	return details
}

// clampPriceLevel coerces the Places 0-4 price level into [1,4],
// defaulting to mid-range when absent.
func clampPriceLevel(level int) int {
	if level == 0 {
		return 2
	}
	if level < 1 {
		return 1
	}
	if level > 4 {
		return 4
	}
	return level
}

// mapOpeningHours converts weekday_text lines into the canonical weekly
// schedule. Lines that fail to parse fall back to late-night hours; an
// absent block falls back to the default schedule entirely.
func mapOpeningHours(hours *placeHours) types.WeekSchedule {
	if hours == nil || len(hours.WeekdayText) == 0 {
		return provider.DefaultWeekSchedule()
	}

	ws := types.WeekSchedule{}
	for i, dayText := range hours.WeekdayText {
		if i >= len(types.Weekdays) {
			break
		}
		day := types.Weekdays[i]
		if strings.Contains(dayText, "Closed") {
			ws[day] = types.DayHours{Closed: true}
			continue
		}
		match := weekdayTextRe.FindStringSubmatch(dayText)
		if match == nil {
			ws[day] = types.DayHours{Open: "17:00", Close: "02:00"}
			continue
		}
		ws[day] = types.DayHours{
			Open:  convertTo24Hour(match[1], match[2]),
			Close: convertTo24Hour(match[3], match[4]),
		}
	}
	return ws
}

// convertTo24Hour turns a 12-hour clock ("5:00", "PM") into "17:00".
func convertTo24Hour(clock, period string) string {
	parts := strings.SplitN(clock, ":", 2)
	hours, _ := strconv.Atoi(parts[0])
	minutes := 0
	if len(parts) == 2 {
		minutes, _ = strconv.Atoi(parts[1])
	}

	if period == "PM" && hours != 12 {
		hours += 12
	}
	if period == "AM" && hours == 12 {
		hours = 0
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

func (c *Client) photoURL(photoReference string) string {
	return fmt.Sprintf("%s/photo?maxwidth=500&photo_reference=%s&key=%s", c.baseURL, photoReference, c.apiKey)
}

func extractFeatures(place placeRecord) []string {
	var features []string

	if containsType(place.Types, "night_club") {
		features = append(features, "nightlife")
	}
	if containsType(place.Types, "restaurant") {
		features = append(features, "dining")
	}
	lowerName := strings.ToLower(place.Name)
	if strings.Contains(lowerName, "rooftop") {
		features = append(features, "rooftop")
	}
	if strings.Contains(lowerName, "speakeasy") {
		features = append(features, "speakeasy")
	}
	if place.Rating >= 4.5 {
		features = append(features, "highly rated")
	}

	if len(features) == 0 {
		return []string{"cocktails", "bar"}
	}
	return features
}

func generateAtmosphere(name string, placeTypes []string, enricher *provider.Enricher) []string {
	var atmosphere []string
	upperName := strings.ToUpper(name)

	if strings.Contains(upperName, "ROOFTOP") {
		atmosphere = append(atmosphere, "rooftop")
	}
	if strings.Contains(upperName, "LOUNGE") {
		atmosphere = append(atmosphere, "upscale", "sophisticated")
	}
	if strings.Contains(upperName, "SPEAKEASY") {
		atmosphere = append(atmosphere, "intimate", "vintage")
	}
	if containsType(placeTypes, "night_club") {
		atmosphere = append(atmosphere, "lively", "dancing")
	}

	return enricher.PadAtmosphere(atmosphere, 2)
}

func containsType(placeTypes []string, target string) bool {
	for _, t := range placeTypes {
		if t == target {
			return true
		}
	}
	return false
}
