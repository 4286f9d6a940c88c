package external

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"

	"weatherlookup.app/internal/core/weather"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

const defaultIPAPIURL = "http://ip-api.com/json/"

// IPAPIPositionSource resolves the position of the host from its public IP.
// IP lookups cannot honour HighAccuracy; the option is accepted and ignored.
type IPAPIPositionSource struct {
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// IPAPIPositionSourceParams holds parameters for creating the IP position source
type IPAPIPositionSourceParams struct {
	BaseURL    string
	HTTPClient HTTPClient
	Logger     ports.Logger
}

type ipAPIResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// NewIPAPIPositionSource creates a position source backed by ip-api.com
func NewIPAPIPositionSource(params IPAPIPositionSourceParams) *IPAPIPositionSource {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultIPAPIURL
	}
	client := params.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	return &IPAPIPositionSource{baseURL: baseURL, client: client, logger: params.Logger}
}

// CurrentPosition implements ports.PositionSource
func (s *IPAPIPositionSource) CurrentPosition(ctx context.Context, opts ports.PositionOptions) (weather.Coordinates, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	sep := "?"
	if strings.Contains(s.baseURL, "?") {
		sep = "&"
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+sep+"fields=status,message,lat,lon", nil)
	if err != nil {
		return weather.Coordinates{}, errors.NewPositionUnavailableError(err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
			return weather.Coordinates{}, errors.NewTimedOutError(err)
		}
		return weather.Coordinates{}, errors.NewPositionUnavailableError(err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			s.logger.Warn("Failed to close position response body", ports.F("error", closeErr))
		}
	}()

	switch {
	case resp.StatusCode == http.StatusForbidden:
		return weather.Coordinates{}, errors.NewPermissionDeniedError(fmt.Errorf("position service returned status %d", resp.StatusCode))
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return weather.Coordinates{}, errors.NewPositionUnavailableError(fmt.Errorf("position service returned status %d", resp.StatusCode))
	}

	var body ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return weather.Coordinates{}, errors.NewPositionUnavailableError(fmt.Errorf("decode position response: %w", err))
	}
	if body.Status != "success" {
		return weather.Coordinates{}, errors.NewPositionUnavailableError(fmt.Errorf("position lookup failed: %s", body.Message))
	}

	return weather.Coordinates{Latitude: body.Lat, Longitude: body.Lon}, nil
}

// StaticPositionSource always reports the same configured position
type StaticPositionSource struct {
	coords weather.Coordinates
}

// NewStaticPositionSource creates a source fixed at coords
func NewStaticPositionSource(coords weather.Coordinates) *StaticPositionSource {
	return &StaticPositionSource{coords: coords}
}

// CurrentPosition implements ports.PositionSource
func (s *StaticPositionSource) CurrentPosition(ctx context.Context, _ ports.PositionOptions) (weather.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return weather.Coordinates{}, errors.NewTimedOutError(err)
	}
	return s.coords, nil
}
