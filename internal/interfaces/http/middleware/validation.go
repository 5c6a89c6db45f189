package middleware

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/salmoriadev/Sistema-CaFerri/internal/interfaces/http/dto"
)

// SetupValidator configures gin's validator to report JSON field names
// in validation errors instead of Go struct field names
func SetupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			return name
		})
	}
}

// ValidationDetail describes one failed field
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FormatValidationErrors turns a binding error into a standard response.
// Non-validator errors (malformed JSON, wrong types) fall back to the
// plain error text.
func FormatValidationErrors(err error, requestID string) dto.Response {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return dto.NewErrorResponseWithRequestID(dto.ErrCodeBadRequest, err.Error(), requestID)
	}

	details := make([]ValidationDetail, 0, len(validationErrors))
	for _, e := range validationErrors {
		details = append(details, ValidationDetail{
			Field:   e.Field(),
			Message: validationMessage(e),
		})
	}

	resp := dto.NewErrorResponseWithRequestID(dto.ErrCodeBadRequest, "Request validation failed", requestID)
	resp.Error.Details = details
	return resp
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		if e.Type().Kind() == reflect.String {
			return "Must be at least " + e.Param() + " characters"
		}
		return "Must be at least " + e.Param()
	case "max":
		if e.Type().Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "oneof":
		return "Must be one of: " + e.Param()
	case "gt":
		return "Must be greater than " + e.Param()
	default:
		return "Failed validation: " + e.Tag()
	}
}
