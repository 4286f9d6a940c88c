package api

import (
	"github.com/go-playground/validator/v10"
	"weatherlookup.app/internal/core/conditions"
	"weatherlookup.app/internal/core/units"
	"weatherlookup.app/pkg/errors"
)

// Reported geolocation failure reasons accepted from clients
var geoReasons = map[string]func() error{
	"unsupported":          func() error { return errors.NewUnsupportedError() },
	"permission_denied":    func() error { return errors.NewPermissionDeniedError(nil) },
	"position_unavailable": func() error { return errors.NewPositionUnavailableError(nil) },
	"timeout":              func() error { return errors.NewTimedOutError(nil) },
}

// RegisterValidators adds the unit, theme and geo_reason binding tags
func RegisterValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("unit", validateUnit); err != nil {
		return err
	}
	if err := v.RegisterValidation("theme", validateTheme); err != nil {
		return err
	}
	return v.RegisterValidation("geo_reason", validateGeoReason)
}

func validateUnit(fl validator.FieldLevel) bool {
	_, err := units.ParseUnit(fl.Field().String())
	return err == nil
}

func validateTheme(fl validator.FieldLevel) bool {
	_, err := conditions.ParseTheme(fl.Field().String())
	return err == nil
}

func validateGeoReason(fl validator.FieldLevel) bool {
	_, ok := geoReasons[fl.Field().String()]
	return ok
}

// geoReasonError converts a validated reason into its geolocation error
func geoReasonError(reason string) error {
	if build, ok := geoReasons[reason]; ok {
		return build()
	}
	return errors.NewPositionUnavailableError(nil)
}
