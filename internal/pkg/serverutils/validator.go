package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest validates a DTO against its `validate` tags, returning a
// 400 AppError naming the offending fields.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return NewBadRequestError("Invalid request body")
	}

	fields := make([]string, len(validationErrors))
	for i, fe := range validationErrors {
		fields[i] = fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag())
	}
	return NewBadRequestError("Validation failed: " + strings.Join(fields, ", "))
}
