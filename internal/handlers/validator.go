package handlers

import (
	"errors"
	"reflect"
	"strings"

	"movie-catalog/internal/utils"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRequest returns nil when req is valid.
func validateRequest(req interface{}) []utils.FieldError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []utils.FieldError{{Field: "body", Error: err.Error()}}
	}

	fieldErrors := make([]utils.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, utils.FieldError{
			Field: fe.Field(),
			Error: describe(fe),
		})
	}
	return fieldErrors
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "url":
		return "must be a valid URL"
	default:
		return "is invalid"
	}
}
