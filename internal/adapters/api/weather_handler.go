package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"weatherlookup.app/internal/core/conditions"
	"weatherlookup.app/internal/core/lookup"
	"weatherlookup.app/internal/core/presentation"
	"weatherlookup.app/internal/core/units"
	"weatherlookup.app/internal/core/weather"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

// WeatherQuery represents the query string of GET /api/weather
type WeatherQuery struct {
	City      string   `form:"city"`
	Latitude  *float64 `form:"lat" binding:"omitempty,latitude"`
	Longitude *float64 `form:"lon" binding:"omitempty,longitude"`
	Unit      string   `form:"unit" binding:"omitempty,unit"`
	Theme     string   `form:"theme" binding:"omitempty,theme"`
}

func (q WeatherQuery) toQuery() (weather.Query, error) {
	if city := strings.TrimSpace(q.City); city != "" {
		return weather.ByCity(city), nil
	}
	if q.Latitude != nil && q.Longitude != nil {
		return weather.ByCoordinates(weather.Coordinates{Latitude: *q.Latitude, Longitude: *q.Longitude}), nil
	}
	return weather.Query{}, errors.NewValidationError("city or lat and lon parameters are required")
}

// getWeather handles GET /api/weather requests. It is stateless: nothing is
// persisted and no session is involved.
func (s *HTTPServerAdapter) getWeather(c *gin.Context) {
	var params WeatherQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		s.logger.Debug("Request binding error", ports.F("error", err.Error()))
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	query, err := params.toQuery()
	if err != nil {
		s.handleError(c, err)
		return
	}

	unit := units.Celsius
	if params.Unit != "" {
		unit, _ = units.ParseUnit(params.Unit)
	}
	theme := conditions.Light
	if params.Theme != "" {
		theme, _ = conditions.ParseTheme(params.Theme)
	}

	s.logger.Debug("Getting weather", ports.F("query", query.String()))

	result, err := s.lookup.Fetch(c.Request.Context(), query)
	if err != nil {
		s.handleError(c, err)
		return
	}

	view := lookup.View{
		State: lookup.FetchState{
			Phase:     lookup.Success,
			Snapshot:  result.Snapshot,
			Forecast:  result.Forecast,
			UpdatedAt: s.now(),
		},
		Unit:  unit,
		Theme: theme,
	}
	c.JSON(http.StatusOK, presentation.Render(view, s.renderOptions()))
}

func (s *HTTPServerAdapter) renderOptions() presentation.Options {
	return presentation.Options{Now: s.now(), Location: s.config.Location}
}
