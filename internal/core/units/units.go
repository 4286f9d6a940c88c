// Package units converts Celsius readings into the display unit chosen by the user.
// Stored snapshots always stay in Celsius; conversion happens at render time.
package units

import (
	"fmt"
	"math"
	"strings"

	"weatherlookup.app/pkg/errors"
)

// Unit is the temperature unit used for display
type Unit int

const (
	Celsius Unit = iota
	Fahrenheit
)

// String returns the persisted name of the unit
func (u Unit) String() string {
	switch u {
	case Fahrenheit:
		return "fahrenheit"
	default:
		return "celsius"
	}
}

// Symbol returns the conventional symbol shown after the degree sign
func (u Unit) Symbol() string {
	if u == Fahrenheit {
		return "F"
	}
	return "C"
}

// Toggle returns the other unit
func (u Unit) Toggle() Unit {
	if u == Fahrenheit {
		return Celsius
	}
	return Fahrenheit
}

// IsValid reports whether u is one of the two known units
func (u Unit) IsValid() bool {
	return u == Celsius || u == Fahrenheit
}

// ParseUnit accepts the persisted names as well as the metric/imperial aliases.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "celsius", "metric", "c":
		return Celsius, nil
	case "fahrenheit", "imperial", "f":
		return Fahrenheit, nil
	default:
		return Celsius, errors.NewValidationError(fmt.Sprintf("unknown temperature unit: %q", s))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler
func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// CelsiusToFahrenheit converts and rounds half away from zero.
func CelsiusToFahrenheit(celsius float64) int {
	return int(math.Round(celsius*9/5 + 32))
}

// FahrenheitToCelsius converts and rounds half away from zero.
func FahrenheitToCelsius(fahrenheit float64) int {
	return int(math.Round((fahrenheit - 32) * 5 / 9))
}

// Convert returns the Celsius reading as a rounded value in the requested unit
func Convert(celsius float64, unit Unit) int {
	if unit == Fahrenheit {
		return CelsiusToFahrenheit(celsius)
	}
	return int(math.Round(celsius))
}

// Format renders a Celsius reading such as "21°C" or "70°F"
func Format(celsius float64, unit Unit) string {
	return fmt.Sprintf("%d°%s", Convert(celsius, unit), unit.Symbol())
}
