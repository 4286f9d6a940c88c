// Package external provides adapters for external services
// These adapters implement ports for the weather provider, position sources,
// preference storage and sharing.
package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"weatherlookup.app/internal/core/weather"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

const defaultOpenWeatherMapURL = "https://api.openweathermap.org/data/2.5"

// Endpoint names used in logs and metrics
const (
	EndpointCurrent  = "weather"
	EndpointForecast = "forecast"
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OpenWeatherMapClient implements the WeatherClient port against the
// OpenWeatherMap 2.5 API. Each call issues exactly one GET; there are no
// retries and no caching.
type OpenWeatherMapClient struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// OpenWeatherMapClientParams holds parameters for creating the client
type OpenWeatherMapClientParams struct {
	APIKey     string
	BaseURL    string
	HTTPClient HTTPClient
	Logger     ports.Logger
}

type owmCondition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type owmMain struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

type owmCoord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// OpenWeatherMapCurrentResponse is the /weather payload
type OpenWeatherMapCurrentResponse struct {
	Coord   owmCoord       `json:"coord"`
	Weather []owmCondition `json:"weather"`
	Main    owmMain        `json:"main"`
	Wind    struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Dt  int64 `json:"dt"`
	Sys struct {
		Country string `json:"country"`
	} `json:"sys"`
	Name string `json:"name"`
}

// OpenWeatherMapForecastResponse is the /forecast payload
type OpenWeatherMapForecastResponse struct {
	List []struct {
		Dt      int64          `json:"dt"`
		Main    owmMain        `json:"main"`
		Weather []owmCondition `json:"weather"`
	} `json:"list"`
	City struct {
		Name    string   `json:"name"`
		Country string   `json:"country"`
		Coord   owmCoord `json:"coord"`
	} `json:"city"`
}

// NewOpenWeatherMapClient creates a new OpenWeatherMap client. A missing API
// key is not an error here; every call then fails with MissingCredential.
func NewOpenWeatherMapClient(params OpenWeatherMapClientParams) *OpenWeatherMapClient {
	baseURL := strings.TrimRight(params.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultOpenWeatherMapURL
	}
	client := params.HTTPClient
	if client == nil {
		client = &http.Client{}
	}

	return &OpenWeatherMapClient{
		apiKey:  params.APIKey,
		baseURL: baseURL,
		client:  client,
		logger:  params.Logger,
	}
}

// CurrentByCity retrieves current conditions for a city name
func (c *OpenWeatherMapClient) CurrentByCity(ctx context.Context, city string) (*weather.Snapshot, error) {
	var resp OpenWeatherMapCurrentResponse
	if err := c.get(ctx, EndpointCurrent, url.Values{"q": {city}}, city, errors.MsgWeatherFailure, &resp); err != nil {
		return nil, err
	}
	return resp.toSnapshot(), nil
}

// CurrentByCoords retrieves current conditions for a position
func (c *OpenWeatherMapClient) CurrentByCoords(ctx context.Context, coords weather.Coordinates) (*weather.Snapshot, error) {
	var resp OpenWeatherMapCurrentResponse
	if err := c.get(ctx, EndpointCurrent, coordsQuery(coords), "", errors.MsgWeatherFailure, &resp); err != nil {
		return nil, err
	}
	return resp.toSnapshot(), nil
}

// ForecastByCity retrieves the 5-day/3-hour forecast for a city name
func (c *OpenWeatherMapClient) ForecastByCity(ctx context.Context, city string) (*weather.ForecastSeries, error) {
	var resp OpenWeatherMapForecastResponse
	if err := c.get(ctx, EndpointForecast, url.Values{"q": {city}}, city, errors.MsgForecastFailure, &resp); err != nil {
		return nil, err
	}
	return resp.toSeries(), nil
}

// ForecastByCoords retrieves the 5-day/3-hour forecast for a position
func (c *OpenWeatherMapClient) ForecastByCoords(ctx context.Context, coords weather.Coordinates) (*weather.ForecastSeries, error) {
	var resp OpenWeatherMapForecastResponse
	if err := c.get(ctx, EndpointForecast, coordsQuery(coords), "", errors.MsgForecastFailure, &resp); err != nil {
		return nil, err
	}
	return resp.toSeries(), nil
}

// get performs one request. city is set only for by-city calls, which are
// the only ones where 404 means NotFound.
func (c *OpenWeatherMapClient) get(ctx context.Context, endpoint string, query url.Values, city, failureMsg string, target interface{}) error {
	if c.apiKey == "" {
		return errors.NewMissingCredentialError()
	}

	query.Set("appid", c.apiKey)
	query.Set("units", "metric")
	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return errors.NewUnknownFailureError(failureMsg, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.NewNetworkUnavailableError(err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("Failed to close OpenWeatherMap response body", ports.F("error", closeErr))
		}
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound && city != "":
		return errors.NewCityNotFoundError(city)
	case resp.StatusCode == http.StatusUnauthorized:
		return errors.NewUnauthorizedError()
	case resp.StatusCode == http.StatusTooManyRequests:
		return errors.NewRateLimitedError()
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return errors.NewUnknownFailureError(failureMsg,
			fmt.Errorf("OpenWeatherMap %s returned status %d", endpoint, resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return errors.NewUnknownFailureError(failureMsg, fmt.Errorf("decode %s response: %w", endpoint, err))
	}
	return nil
}

func coordsQuery(coords weather.Coordinates) url.Values {
	return url.Values{
		"lat": {strconv.FormatFloat(coords.Latitude, 'f', -1, 64)},
		"lon": {strconv.FormatFloat(coords.Longitude, 'f', -1, 64)},
	}
}

func (c owmCondition) toCondition() weather.Condition {
	return weather.Condition{ID: c.ID, Main: c.Main, Description: c.Description, Icon: c.Icon}
}

func firstCondition(conditions []owmCondition) weather.Condition {
	if len(conditions) == 0 {
		return weather.Condition{ID: 800, Main: "Clear", Description: "clear sky", Icon: "01d"}
	}
	return conditions[0].toCondition()
}

func (r *OpenWeatherMapCurrentResponse) toSnapshot() *weather.Snapshot {
	return &weather.Snapshot{
		City:        r.Name,
		Country:     r.Sys.Country,
		ObservedAt:  time.Unix(r.Dt, 0).UTC(),
		Condition:   firstCondition(r.Weather),
		Temperature: r.Main.Temp,
		FeelsLike:   r.Main.FeelsLike,
		TempMin:     r.Main.TempMin,
		TempMax:     r.Main.TempMax,
		Humidity:    r.Main.Humidity,
		Pressure:    r.Main.Pressure,
		WindSpeed:   r.Wind.Speed,
		Coordinates: weather.Coordinates{Latitude: r.Coord.Lat, Longitude: r.Coord.Lon},
	}
}

func (r *OpenWeatherMapForecastResponse) toSeries() *weather.ForecastSeries {
	samples := make([]weather.ForecastSample, 0, len(r.List))
	for _, item := range r.List {
		samples = append(samples, weather.ForecastSample{
			Timestamp:   time.Unix(item.Dt, 0).UTC(),
			Condition:   firstCondition(item.Weather),
			Temperature: item.Main.Temp,
			TempMin:     item.Main.TempMin,
			TempMax:     item.Main.TempMax,
		})
	}
	return &weather.ForecastSeries{
		City:    r.City.Name,
		Country: r.City.Country,
		Samples: samples,
	}
}
