package yelp

import (
	"fmt"
	"strings"
	"time"

	"github.com/ggggzj/la-cocktail-finder/internal/api/provider"
	"github.com/ggggzj/la-cocktail-finder/internal/types"
)

// Raw wire shapes for the Fusion API.

type businessSearchResponse struct {
	Businesses []businessRecord `json:"businesses"`
}

type reviewsResponse struct {
	Reviews []reviewRecord `json:"reviews"`
}

type businessRecord struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Rating       float64          `json:"rating"`
	Price        string           `json:"price"`
	DisplayPhone string           `json:"display_phone"`
	URL          string           `json:"url"`
	ImageURL     string           `json:"image_url"`
	ReviewCount  int              `json:"review_count"`
	Transactions []string         `json:"transactions"`
	Coordinates  coordinates      `json:"coordinates"`
	Location     businessLocation `json:"location"`
	Categories   []category       `json:"categories"`
	Hours        []hoursBlock     `json:"hours"`
}

type coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type businessLocation struct {
	Address1 string `json:"address1"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
}

type category struct {
	Title string `json:"title"`
}

type hoursBlock struct {
	HoursType string      `json:"hours_type"`
	Open      []hoursSlot `json:"open"`
}

type hoursSlot struct {
	Day   int    `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type reviewRecord struct {
	Rating      int    `json:"rating"`
	Text        string `json:"text"`
	TimeCreated string `json:"time_created"`
	User        struct {
		Name string `json:"name"`
	} `json:"user"`
}

func (c *Client) normalizeBusinesses(businesses []businessRecord) []types.Bar {
	bars := make([]types.Bar, 0, len(businesses))
	for i, business := range businesses {
		bars = append(bars, c.normalizeBusiness(business, i))
	}
	return bars
}

func (c *Client) normalizeBusiness(business businessRecord, index int) types.Bar {
	bar := types.Bar{
		ID:            business.ID,
		Name:          business.Name,
		Address:       formatAddress(business.Location),
		Latitude:      business.Coordinates.Latitude,
		Longitude:     business.Coordinates.Longitude,
		Rating:        business.Rating,
		PriceRange:    mapPriceRange(business.Price),
		PhoneNumber:   business.DisplayPhone,
		Website:       business.URL,
		Description:   generateDescription(business),
		ImageURL:      business.ImageURL,
		OpenHours:     mapHours(business.Hours),
		Features:      extractFeatures(business),
		CocktailTypes: c.enricher.SampleCocktailTypes(),
		Atmosphere:    generateAtmosphere(business, c.enricher),
		Reviews:       []types.Review{},
	}

	if bar.ID == "" {
		bar.ID = fmt.Sprintf("yelp-%d", index)
	}
	if bar.Name == "" {
		bar.Name = "Unknown Bar"
	}
	if bar.Rating == 0 {
		bar.Rating = 4.0
	}
	return bar
}

func (c *Client) normalizeDetails(business businessRecord, reviews []reviewRecord) *types.BarDetails {
	details := &types.BarDetails{
		PhoneNumber: business.DisplayPhone,
		Website:     business.URL,
		OpenHours:   mapHours(business.Hours),
		Reviews:     make([]types.Review, 0, len(reviews)),
	}

	for i, review := range reviews {
		rating := review.Rating
		if rating == 0 {
			rating = 4
		}
		userName := review.User.Name
		if userName == "" {
			userName = "Anonymous"
		}
		date := strings.SplitN(review.TimeCreated, " ", 2)[0]
		if date == "" {
			date = time.Now().UTC().Format("2006-01-02")
		}
		details.Reviews = append(details.Reviews, types.Review{
			ID:       fmt.Sprintf("yelp-review-%d", i),
			UserName: userName,
			Rating:   rating,
			Comment:  review.Text,
			Date:     date,
			Helpful:  c.enricher.HelpfulCount(15),
		})
	}
	return details
}

func formatAddress(location businessLocation) string {
	parts := make([]string, 0, 4)
	for _, part := range []string{location.Address1, location.City, location.State, location.ZipCode} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return "Address not available"
	}
	return strings.Join(parts, ", ")
}

// mapPriceRange converts Yelp's "$".."$$$$" notation to [1,4],
// defaulting to mid-range when absent.
func mapPriceRange(price string) int {
	if price == "" {
		return 2
	}
	if len(price) > 4 {
		return 4
	}
	return len(price)
}

// mapHours maps the REGULAR hours block onto the canonical weekly
// schedule. Yelp reports day indices Monday-first; a weekday with no
// slot is marked closed. Absent hours fall back to the default schedule.
func mapHours(blocks []hoursBlock) types.WeekSchedule {
	if len(blocks) == 0 {
		return provider.DefaultWeekSchedule()
	}

	var regular *hoursBlock
	for i := range blocks {
		if blocks[i].HoursType == "REGULAR" {
			regular = &blocks[i]
			break
		}
	}
	if regular == nil {
		return provider.DefaultWeekSchedule()
	}

	ws := types.WeekSchedule{}
	for _, day := range types.Weekdays {
		ws[day] = types.DayHours{Closed: true}
	}
	for _, slot := range regular.Open {
		if slot.Day < 0 || slot.Day >= len(types.Weekdays) {
			continue
		}
		ws[types.Weekdays[slot.Day]] = types.DayHours{
			Open:  convertClock(slot.Start),
			Close: convertClock(slot.End),
		}
	}
	return ws
}

// convertClock turns Yelp's 4-digit "HHMM" into "HH:MM", falling back
// to a typical opening time for malformed values.
func convertClock(clock string) string {
	if len(clock) != 4 {
		return "17:00"
	}
	return clock[:2] + ":" + clock[2:]
}

func generateDescription(business businessRecord) string {
	titles := make([]string, 0, len(business.Categories))
	for _, cat := range business.Categories {
		titles = append(titles, cat.Title)
	}
	categories := strings.Join(titles, ", ")
	if categories == "" {
		categories = "Cocktail bar"
	}

	snippet := "Great cocktail destination"
	if business.ReviewCount > 0 {
		snippet = fmt.Sprintf("Popular spot with %d reviews", business.ReviewCount)
	}

	city := business.Location.City
	if city == "" {
		city = "Los Angeles"
	}
	return fmt.Sprintf("%s. %s in %s.", categories, snippet, city)
}

func extractFeatures(business businessRecord) []string {
	var features []string

	if containsString(business.Transactions, "delivery") {
		features = append(features, "delivery")
	}
	if containsString(business.Transactions, "pickup") {
		features = append(features, "takeout")
	}
	if business.Price == "$$$$" {
		features = append(features, "upscale")
	}
	if business.Rating >= 4.5 {
		features = append(features, "highly rated")
	}
	if business.ReviewCount >= 100 {
		features = append(features, "popular")
	}

	for _, cat := range business.Categories {
		title := strings.ToLower(cat.Title)
		if strings.Contains(title, "speakeasy") {
			features = append(features, "speakeasy")
		}
		if strings.Contains(title, "wine") {
			features = append(features, "wine bar")
		}
		if strings.Contains(title, "cocktail") {
			features = append(features, "craft cocktails")
		}
	}

	if len(features) == 0 {
		return []string{"cocktails", "bar"}
	}
	return features
}

func generateAtmosphere(business businessRecord, enricher *provider.Enricher) []string {
	var atmosphere []string
	name := strings.ToLower(business.Name)

	if strings.Contains(name, "rooftop") {
		atmosphere = append(atmosphere, "rooftop")
	}
	if strings.Contains(name, "lounge") {
		atmosphere = append(atmosphere, "upscale", "sophisticated")
	}
	if strings.Contains(name, "speakeasy") {
		atmosphere = append(atmosphere, "intimate", "vintage")
	}
	if business.Price == "$$$$" {
		atmosphere = append(atmosphere, "upscale")
	}
	if business.Price == "$" {
		atmosphere = append(atmosphere, "casual")
	}

	for _, cat := range business.Categories {
		title := strings.ToLower(cat.Title)
		if strings.Contains(title, "wine") {
			atmosphere = append(atmosphere, "sophisticated")
		}
		if strings.Contains(title, "dive") {
			atmosphere = append(atmosphere, "casual")
		}
	}

	return enricher.PadAtmosphere(atmosphere, 2)
}

func containsString(s []string, v string) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}
