package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Struct validates a request struct against its validate tags.
func Struct(s interface{}) error {
	return validate.Struct(s)
}

// Messages flattens validator errors into field-level strings for JSON
// error responses.
func Messages(err error) []string {
	var out []string
	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range errs {
			switch e.Tag() {
			case "required":
				out = append(out, fmt.Sprintf("%s is required", e.Field()))
			case "oneof":
				out = append(out, fmt.Sprintf("%s must be one of: %s", e.Field(), e.Param()))
			case "email":
				out = append(out, fmt.Sprintf("%s must be a valid email", e.Field()))
			default:
				out = append(out, fmt.Sprintf("%s is invalid", e.Field()))
			}
		}
		return out
	}
	return []string{err.Error()}
}
