package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/parisboutique/storefront/internal/utils/response"
)

// writeValidationFailure renders validator failures as the per-field
// validation envelope; anything else falls back to a generic 400 body.
func writeValidationFailure(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		response.ValidationError(w, validationErrs)
		return
	}

	response.WriteJson(w, http.StatusBadRequest, response.GeneralError(err))
}
