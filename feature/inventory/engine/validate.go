package engine

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"equipment-tracker/core/apperr"
	"equipment-tracker/core/pin"
	"equipment-tracker/feature/inventory/models"

	"github.com/go-playground/validator/v10"
)

const maxExpectedReturn = 365 * 24 * time.Hour

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkStruct runs tag validation and reports the first failure.
func (e *Engine) checkStruct(req any) error {
	err := e.validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperr.Internal(err, "request validation failed")
	}
	f := verrs[0]
	switch f.Tag() {
	case "required":
		return apperr.Validation("%s is required", f.Field())
	case "uuid":
		return apperr.Validation("%s must be a valid id", f.Field())
	default:
		return apperr.Validation("%s is invalid", f.Field())
	}
}

func checkPIN(p string) error {
	if !pin.Valid(p) {
		return apperr.Validation("%s", pin.ErrInvalid.Error())
	}
	return nil
}

// checkCounts validates the mix shape and returns its total.
func checkCounts(counts models.ConditionCounts) (int, error) {
	if err := counts.Validate(); err != nil {
		return 0, err
	}
	return counts.Sum(), nil
}

func checkExpectedReturn(at *time.Time, now time.Time) error {
	if at == nil {
		return nil
	}
	if !at.After(now) {
		return apperr.Validation("Expected return date must be in the future")
	}
	if at.Sub(now) > maxExpectedReturn {
		return apperr.Validation("Expected return date must be within one year")
	}
	return nil
}
