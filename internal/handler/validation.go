package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/Shubham1613/FastAPI-Mongo/internal/repository"
	"github.com/Shubham1613/FastAPI-Mongo/pkg/apierror"
	"github.com/Shubham1613/FastAPI-Mongo/pkg/response"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their JSON name so error details match the wire format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// decodeAndValidate binds the JSON body into payload and applies the
// payload's validator tags. Malformed JSON, wrong field types, and missing
// required fields all surface as a 422 validation error.
func decodeAndValidate(r *http.Request, payload interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		return apierror.ValidationError("invalid request body")
	}

	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return apierror.ValidationError("invalid request body")
	}

	details := make([]apierror.FieldError, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		var msg string
		switch fieldErr.Tag() {
		case "required":
			msg = "is required"
		default:
			msg = fmt.Sprintf("failed %s validation", fieldErr.Tag())
		}
		details = append(details, apierror.FieldError{
			Field:   fieldErr.Field(),
			Message: msg,
		})
	}

	return apierror.ValidationError("validation failed", details...)
}

// writeError maps a service or repository error onto the wire. Not-found
// conditions use 204 No Content; everything else goes through response.Error.
func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		response.NoContent(w)
		return
	}
	response.Error(w, err)
}
