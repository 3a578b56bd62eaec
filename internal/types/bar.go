package types

import (
	"strconv"
	"strings"
	"time"
)

// Weekdays lists the canonical lowercase weekday keys used by WeekSchedule,
// in Monday-first order (the order both providers report hours in).
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// Bar is the canonical venue entity every provider record is normalized into.
type Bar struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Address       string         `json:"address"`
	Latitude      float64        `json:"latitude"`
	Longitude     float64        `json:"longitude"`
	Rating        float64        `json:"rating"`
	PriceRange    int            `json:"priceRange"`
	PhoneNumber   string         `json:"phoneNumber,omitempty"`
	Website       string         `json:"website,omitempty"`
	Description   string         `json:"description,omitempty"`
	ImageURL      string         `json:"imageUrl,omitempty"`
	OpenHours     WeekSchedule   `json:"openHours"`
	Features      []string       `json:"features"`
	CocktailTypes []CocktailType `json:"cocktailTypes"`
	Atmosphere    []string       `json:"atmosphere"`
	Reviews       []Review       `json:"reviews"`
}

// BarDetails is a partial Bar carrying only the fields the providers'
// details endpoints can enrich. Zero-valued fields are left untouched
// when the patch is applied.
type BarDetails struct {
	PhoneNumber string       `json:"phoneNumber,omitempty"`
	Website     string       `json:"website,omitempty"`
	OpenHours   WeekSchedule `json:"openHours,omitempty"`
	Reviews     []Review     `json:"reviews,omitempty"`
}

type CocktailType struct {
	Name       string `json:"name"`
	Popularity int    `json:"popularity"`
}

type Review struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Date     string `json:"date"`
	Helpful  int    `json:"helpful"`
}

// DayHours is one weekday's opening window in 24-hour "HH:MM" strings.
// A closed day carries empty open/close and Closed=true. Close earlier
// than Open means the window wraps past midnight.
type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed,omitempty"`
}

// WeekSchedule maps lowercase English weekday names to hours. Consumers
// must tolerate missing days; a missing day counts as closed.
type WeekSchedule map[string]DayHours

// OpenAt reports whether the schedule is open at the given instant.
// Times are compared as HH*100+MM, which is monotonic in time-of-day for
// any valid HH:MM, so plain integer comparison orders them correctly.
func (ws WeekSchedule) OpenAt(t time.Time) bool {
	day := strings.ToLower(t.Weekday().String())
	hours, ok := ws[day]
	if !ok || hours.Closed {
		return false
	}

	now := t.Hour()*100 + t.Minute()
	open := clockCode(hours.Open)
	close := clockCode(hours.Close)
	if open < 0 || close < 0 {
		return false
	}

	if close < open {
		// Window wraps past midnight.
		return now >= open || now <= close
	}
	return now >= open && now <= close
}

// clockCode converts "HH:MM" to HH*100+MM, or -1 when unparsable.
func clockCode(s string) int {
	v, err := strconv.Atoi(strings.Replace(s, ":", "", 1))
	if err != nil {
		return -1
	}
	return v
}
