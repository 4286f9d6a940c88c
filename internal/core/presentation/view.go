// Package presentation derives display models from a session view. Values
// are computed at render time; stored snapshots are never modified.
package presentation

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"weatherlookup.app/internal/core/conditions"
	"weatherlookup.app/internal/core/forecast"
	"weatherlookup.app/internal/core/lookup"
	"weatherlookup.app/internal/core/units"
	"weatherlookup.app/internal/core/weather"
)

const (
	// EmptyHint is shown before the first lookup
	EmptyHint = "Search for a city or use your location to get started"

	iconURLFormat = "https://openweathermap.org/img/wn/%s@2x.png"
)

// Options control how a page is rendered
type Options struct {
	Now      time.Time
	Location *time.Location
}

// Page is everything needed to draw the application
type Page struct {
	Theme      string        `json:"theme"`
	Unit       string        `json:"unit"`
	Phase      string        `json:"phase"`
	Background Background    `json:"background"`
	SearchBar  SearchBar     `json:"search_bar"`
	Weather    *WeatherCard  `json:"weather,omitempty"`
	Forecast   []ForecastDay `json:"forecast,omitempty"`
	ShareText  string        `json:"share_text,omitempty"`
	Hint       string        `json:"hint,omitempty"`
}

// Background is the gradient drawn behind the page
type Background struct {
	Category string `json:"category"`
	Gradient string `json:"gradient"`
}

// SearchBar is the state of the search controls
type SearchBar struct {
	Disabled        bool   `json:"disabled"`
	ButtonLabel     string `json:"button_label"`
	LocationPending bool   `json:"location_pending"`
	LastCity        string `json:"last_city,omitempty"`
	Error           string `json:"error,omitempty"`
}

// WeatherCard renders the current conditions
type WeatherCard struct {
	Location    string `json:"location"`
	Updated     string `json:"updated"`
	IconURL     string `json:"icon_url"`
	Temperature string `json:"temperature"`
	FeelsLike   string `json:"feels_like"`
	Description string `json:"description"`
	Humidity    string `json:"humidity"`
	Wind        string `json:"wind"`
	Pressure    string `json:"pressure"`
}

// ForecastDay is one card of the forecast strip
type ForecastDay struct {
	Label       string `json:"label"`
	Date        string `json:"date"`
	IconURL     string `json:"icon_url"`
	Temperature string `json:"temperature"`
	High        string `json:"high"`
	Low         string `json:"low"`
	Description string `json:"description"`
}

// Render builds the page for a session view
func Render(view lookup.View, opts Options) Page {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	page := Page{
		Theme: view.Theme.String(),
		Unit:  view.Unit.String(),
		Phase: view.State.Phase.String(),
		SearchBar: SearchBar{
			Disabled:        view.Loading(),
			ButtonLabel:     "Search",
			LocationPending: view.LocationPending,
			LastCity:        view.LastCity,
			Error:           view.Error,
		},
	}
	if view.Loading() {
		page.SearchBar.ButtonLabel = "Searching..."
	}

	category := conditions.Clear
	if view.HasResult() {
		snapshot := view.State.Snapshot
		category = conditions.Classify(snapshot.Condition.ID)
		card := RenderWeatherCard(snapshot, view.Unit, opts.Now)
		page.Weather = &card
		page.ShareText = lookup.ShareText(snapshot, view.Unit)
		if view.State.Forecast != nil {
			page.Forecast = RenderForecast(view.State.Forecast.Samples, view.Unit, opts.Location)
		}
	} else if !view.Loading() && view.Error == "" {
		page.Hint = EmptyHint
	}

	page.Background = Background{
		Category: string(category),
		Gradient: conditions.Gradient(category, view.Theme),
	}
	return page
}

// RenderWeatherCard formats a snapshot in unit
func RenderWeatherCard(snapshot *weather.Snapshot, unit units.Unit, now time.Time) WeatherCard {
	return WeatherCard{
		Location:    snapshot.Location(),
		Updated:     "Updated " + humanize.RelTime(snapshot.ObservedAt, now, "ago", "from now"),
		IconURL:     IconURL(snapshot.Condition.Icon),
		Temperature: units.Format(snapshot.Temperature, unit),
		FeelsLike:   units.Format(snapshot.FeelsLike, unit),
		Description: snapshot.Condition.Description,
		Humidity:    fmt.Sprintf("%d%%", snapshot.Humidity),
		Wind:        strconv.FormatFloat(snapshot.WindSpeed, 'f', -1, 64) + " m/s",
		Pressure:    fmt.Sprintf("%d hPa", snapshot.Pressure),
	}
}

// RenderForecast picks one sample per day and formats it. The first card is
// labelled "Today", the rest with their weekday.
func RenderForecast(samples []weather.ForecastSample, unit units.Unit, loc *time.Location) []ForecastDay {
	daily := forecast.PickDaily(samples, loc)
	days := make([]ForecastDay, 0, len(daily))
	for i, sample := range daily {
		local := sample.Timestamp.In(loc)
		label := local.Format("Mon")
		if i == 0 {
			label = "Today"
		}
		days = append(days, ForecastDay{
			Label:       label,
			Date:        local.Format("Jan 2"),
			IconURL:     IconURL(sample.Condition.Icon),
			Temperature: units.Format(sample.Temperature, unit),
			High:        units.Format(sample.TempMax, unit),
			Low:         units.Format(sample.TempMin, unit),
			Description: sample.Condition.Description,
		})
	}
	return days
}

// IconURL returns the provider icon for an icon key
func IconURL(icon string) string {
	if icon == "" {
		return ""
	}
	return fmt.Sprintf(iconURLFormat, icon)
}
