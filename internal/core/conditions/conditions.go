// Package conditions maps provider condition codes to weather categories and
// each category to the background gradient shown for it.
package conditions

import (
	"fmt"
	"strings"

	"weatherlookup.app/pkg/errors"
)

// Category is a weather category derived from a condition code
type Category string

const (
	Clear        Category = "clear"
	Clouds       Category = "clouds"
	Rain         Category = "rain"
	Drizzle      Category = "drizzle"
	Thunderstorm Category = "thunderstorm"
	Snow         Category = "snow"
	Mist         Category = "mist"
	Fog          Category = "fog"
	Haze         Category = "haze"
	Dust         Category = "dust"
	Sand         Category = "sand"
	Ash          Category = "ash"
	Squall       Category = "squall"
	Tornado      Category = "tornado"
)

// AllCategories returns every category in a stable order
func AllCategories() []Category {
	return []Category{
		Clear, Clouds, Rain, Drizzle, Thunderstorm, Snow, Mist,
		Fog, Haze, Dust, Sand, Ash, Squall, Tornado,
	}
}

// atmosphere covers the 7xx band, which is subdivided by exact code.
var atmosphere = map[int]Category{
	701: Mist,
	711: Fog,
	721: Haze,
	731: Dust,
	751: Sand,
	761: Dust,
	762: Ash,
	771: Squall,
	781: Tornado,
}

// Classify maps a condition code to its category. Rules are evaluated in order
// and unknown codes fall back to Clear.
func Classify(code int) Category {
	switch {
	case code >= 200 && code < 300:
		return Thunderstorm
	case code >= 300 && code < 400:
		return Drizzle
	case code >= 500 && code < 600:
		return Rain
	case code >= 600 && code < 700:
		return Snow
	case code >= 700 && code < 800:
		if category, ok := atmosphere[code]; ok {
			return category
		}
		return Fog
	case code == 800:
		return Clear
	case code >= 801 && code <= 804:
		return Clouds
	default:
		return Clear
	}
}

// Theme selects the light or dark variant of the presentation
type Theme int

const (
	Light Theme = iota
	Dark
)

// String returns the persisted name of the theme
func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

// Toggle returns the other theme
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// ParseTheme parses "light" or "dark"
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return Light, errors.NewValidationError(fmt.Sprintf("unknown theme: %q", s))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *Theme) UnmarshalText(text []byte) error {
	parsed, err := ParseTheme(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (t Theme) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

type gradientPair struct {
	light string
	dark  string
}

var gradients = map[Category]gradientPair{
	Clear: {
		light: "from-blue-400 via-blue-500 to-blue-600",
		dark:  "from-blue-900 via-blue-800 to-blue-700",
	},
	Clouds: {
		light: "from-gray-400 via-gray-500 to-gray-600",
		dark:  "from-gray-800 via-gray-700 to-gray-900",
	},
	Rain: {
		light: "from-blue-500 via-blue-600 to-indigo-700",
		dark:  "from-blue-900 via-indigo-900 to-purple-900",
	},
	Drizzle: {
		light: "from-blue-400 via-blue-500 to-blue-600",
		dark:  "from-blue-800 via-blue-900 to-indigo-900",
	},
	Thunderstorm: {
		light: "from-purple-600 via-indigo-700 to-gray-800",
		dark:  "from-purple-900 via-indigo-900 to-gray-950",
	},
	Snow: {
		light: "from-blue-200 via-blue-300 to-blue-400",
		dark:  "from-blue-800 via-indigo-800 to-purple-800",
	},
	Mist: {
		light: "from-gray-300 via-gray-400 to-gray-500",
		dark:  "from-gray-700 via-gray-800 to-gray-900",
	},
	Fog: {
		light: "from-gray-300 via-gray-400 to-gray-500",
		dark:  "from-gray-700 via-gray-800 to-gray-900",
	},
	Haze: {
		light: "from-yellow-200 via-yellow-300 to-orange-300",
		dark:  "from-yellow-900 via-orange-900 to-red-900",
	},
	Dust: {
		light: "from-yellow-300 via-orange-300 to-orange-400",
		dark:  "from-yellow-800 via-orange-800 to-red-800",
	},
	Sand: {
		light: "from-yellow-300 via-orange-300 to-orange-400",
		dark:  "from-yellow-800 via-orange-800 to-red-800",
	},
	Ash: {
		light: "from-gray-400 via-gray-500 to-gray-600",
		dark:  "from-gray-700 via-gray-800 to-gray-900",
	},
	Squall: {
		light: "from-blue-500 via-indigo-600 to-purple-700",
		dark:  "from-blue-900 via-indigo-900 to-purple-900",
	},
	Tornado: {
		light: "from-gray-500 via-gray-600 to-gray-700",
		dark:  "from-gray-800 via-gray-900 to-black",
	},
}

// Gradient returns the background gradient classes for a category and theme.
// Unknown categories use the clear entry of the requested theme.
func Gradient(category Category, theme Theme) string {
	pair, ok := gradients[category]
	if !ok {
		pair = gradients[Clear]
	}
	if theme == Dark {
		return pair.dark
	}
	return pair.light
}

// HasGradient reports whether the table holds an explicit entry for category
func HasGradient(category Category) bool {
	_, ok := gradients[category]
	return ok
}
