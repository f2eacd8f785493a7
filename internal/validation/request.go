package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apierrors "upstreamcli/internal/errors"
)

// RequestValidator validates decoded request parameters using struct tags.
// Error fields use the name from the query or json tag.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a RequestValidator with the lote rule
// registered.
func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"query", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	_ = v.RegisterValidation("lote", isValidLote)

	return &RequestValidator{validate: v}
}

// Struct validates s. Failures come back as a VALIDATION_FAILED APIError
// listing every offending field.
func (rv *RequestValidator) Struct(s interface{}) error {
	err := rv.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apierrors.InvalidRequestWithError(err)
	}

	fields := make([]apierrors.ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apierrors.ValidationError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return apierrors.NewValidationErrors(fields)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "lote":
		return fmt.Sprintf("%s contains invalid characters", fe.Field())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

// isValidLote rejects control characters and path separators.
func isValidLote(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	for _, r := range s {
		if r < 0x20 || r == 0x7f || r == '/' || r == '\\' {
			return false
		}
	}
	return true
}
