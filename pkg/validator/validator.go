package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jcastellr/bizpulse-api/internal/domain"
)

var validate = validator.New()

// Struct valida un DTO con sus tags `validate` y devuelve un
// domain.ValidationError con los campos en falta (nombre del campo JSON).
func Struct(data interface{}) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domain.ErrInvalidInput
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return domain.NewValidationError(fields...)
}
