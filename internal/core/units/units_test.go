package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherlookup.app/pkg/errors"
)

func TestCelsiusToFahrenheit(t *testing.T) {
	tests := []struct {
		name     string
		celsius  float64
		expected int
	}{
		{name: "freezing", celsius: 0, expected: 32},
		{name: "boiling", celsius: 100, expected: 212},
		{name: "crossover", celsius: -40, expected: -40},
		{name: "room", celsius: 21.3, expected: 70},
		{name: "half_rounds_up", celsius: -17.5, expected: 1}, // -17.5°C is exactly 0.5°F
		{name: "negative", celsius: -10, expected: 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CelsiusToFahrenheit(tt.celsius))
		})
	}
}

func TestFahrenheitToCelsius(t *testing.T) {
	assert.Equal(t, 0, FahrenheitToCelsius(32))
	assert.Equal(t, 100, FahrenheitToCelsius(212))
	assert.Equal(t, -40, FahrenheitToCelsius(-40))
	assert.Equal(t, 21, FahrenheitToCelsius(70))
}

// Rounding is pinned to half-away-from-zero so .5 boundaries are deterministic.
func TestConvert_HalfBoundaries(t *testing.T) {
	assert.Equal(t, 3, Convert(2.5, Celsius))
	assert.Equal(t, -3, Convert(-2.5, Celsius))
	assert.Equal(t, 1, Convert(0.5, Celsius))
	assert.Equal(t, -1, Convert(-0.5, Celsius))
	assert.Equal(t, 0, Convert(-0.4, Celsius))
}

func TestConvert_MatchesFormula(t *testing.T) {
	for c := -60.0; c <= 60.0; c += 0.1 {
		assert.Equal(t, int(math.Round(c*9/5+32)), Convert(c, Fahrenheit), "celsius %.1f", c)
	}
}

func TestConvert_RoundTripWithinOneDegree(t *testing.T) {
	for c := -60.0; c <= 60.0; c += 0.05 {
		back := FahrenheitToCelsius(float64(Convert(c, Fahrenheit)))
		assert.LessOrEqual(t, math.Abs(float64(back)-c), 1.0, "celsius %.2f came back as %d", c, back)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "21°C", Format(21.4, Celsius))
	assert.Equal(t, "71°F", Format(21.4, Fahrenheit))
	assert.Equal(t, "-5°C", Format(-4.6, Celsius))
}

func TestUnit_Toggle(t *testing.T) {
	assert.Equal(t, Fahrenheit, Celsius.Toggle())
	assert.Equal(t, Celsius, Fahrenheit.Toggle())
	assert.Equal(t, Celsius, Celsius.Toggle().Toggle())
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		input    string
		expected Unit
		wantErr  bool
	}{
		{input: "celsius", expected: Celsius},
		{input: "metric", expected: Celsius},
		{input: " F ", expected: Fahrenheit},
		{input: "imperial", expected: Fahrenheit},
		{input: "kelvin", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			unit, err := ParseUnit(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, unit)
		})
	}
}

func TestUnit_TextRoundTrip(t *testing.T) {
	text, err := Fahrenheit.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "fahrenheit", string(text))

	var u Unit
	require.NoError(t, u.UnmarshalText([]byte("fahrenheit")))
	assert.Equal(t, Fahrenheit, u)
	assert.Error(t, u.UnmarshalText([]byte("rankine")))
}
