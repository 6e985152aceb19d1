package services

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/apperrors"
)

// asValidationError flattens an ozzo validation result into the app error
// taxonomy so handlers only ever see apperrors types.
func asValidationError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		details := make(map[string]string, len(verrs))
		for field, ferr := range verrs {
			details[field] = ferr.Error()
		}
		return apperrors.ValidationWithDetails("validation failed", details)
	}
	return apperrors.Validation("%s", err.Error())
}
