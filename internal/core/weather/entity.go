package weather

import (
	"fmt"
	"strings"
	"time"
)

// Condition describes the weather phenomenon reported by the provider
type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Coordinates is a geographic position in decimal degrees
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// Snapshot is a single point-in-time observation. Temperatures are Celsius.
// A snapshot is replaced in full by the next fetch and never mutated.
type Snapshot struct {
	City        string      `json:"city"`
	Country     string      `json:"country"`
	ObservedAt  time.Time   `json:"observed_at"`
	Condition   Condition   `json:"condition"`
	Temperature float64     `json:"temperature"`
	FeelsLike   float64     `json:"feels_like"`
	TempMin     float64     `json:"temp_min"`
	TempMax     float64     `json:"temp_max"`
	Humidity    int         `json:"humidity"`
	Pressure    int         `json:"pressure"`
	WindSpeed   float64     `json:"wind_speed"`
	Coordinates Coordinates `json:"coordinates"`
}

// ForecastSample is one 3-hour forecast entry
type ForecastSample struct {
	Timestamp   time.Time `json:"timestamp"`
	Condition   Condition `json:"condition"`
	Temperature float64   `json:"temperature"`
	TempMin     float64   `json:"temp_min"`
	TempMax     float64   `json:"temp_max"`
}

// ForecastSeries is the provider's ordered forecast feed for one location
type ForecastSeries struct {
	City    string           `json:"city"`
	Country string           `json:"country"`
	Samples []ForecastSample `json:"samples"`
}

// Query selects a location either by city name or by coordinates
type Query struct {
	City        string
	Coordinates *Coordinates
}

// ByCity builds a city query with surrounding whitespace removed
func ByCity(city string) Query {
	return Query{City: strings.TrimSpace(city)}
}

// ByCoordinates builds a coordinates query
func ByCoordinates(coords Coordinates) Query {
	return Query{Coordinates: &coords}
}

// IsValid validates the query
func (q Query) IsValid() error {
	if q.Coordinates != nil {
		return q.Coordinates.IsValid()
	}
	if strings.TrimSpace(q.City) == "" {
		return fmt.Errorf("city cannot be empty")
	}
	return nil
}

// Source names the kind of lookup for logs and metrics
func (q Query) Source() string {
	if q.Coordinates != nil {
		return "coordinates"
	}
	return "city"
}

// String returns a representation suitable for logs
func (q Query) String() string {
	if q.Coordinates != nil {
		return q.Coordinates.String()
	}
	return q.City
}

// IsValid checks that the coordinates are within geographic bounds
func (c Coordinates) IsValid() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	return nil
}

// String formats the coordinates with four decimals
func (c Coordinates) String() string {
	return fmt.Sprintf("%.4f,%.4f", c.Latitude, c.Longitude)
}

// Location returns "City, CC", or just the city when the country is unknown.
// Unnamed places, such as open sea, are shown by their coordinates.
func (s *Snapshot) Location() string {
	city := strings.TrimSpace(s.City)
	switch {
	case city == "" && s.Country == "":
		return s.Coordinates.String()
	case city == "":
		return s.Country
	case s.Country == "":
		return city
	}
	return fmt.Sprintf("%s, %s", city, s.Country)
}

// IsValid validates snapshot data. The place name may be empty: the provider
// answers remote coordinates without one.
func (s *Snapshot) IsValid() error {
	if s.Temperature < -273.15 {
		return fmt.Errorf("temperature cannot be below absolute zero")
	}
	if s.Humidity < 0 || s.Humidity > 100 {
		return fmt.Errorf("humidity must be between 0 and 100")
	}
	return nil
}
