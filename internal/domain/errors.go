package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrSKUAlreadyExists   = errors.New("el SKU ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrTokenMissing       = errors.New("token requerido")
	ErrTokenMalformed     = errors.New("token inválido")
	ErrTokenExpired       = errors.New("token expirado")
	ErrAIUnavailable      = errors.New("servicio de IA no disponible")
)

// ValidationError lista los campos faltantes o inválidos de una petición.
// Envuelve ErrInvalidInput para que errors.Is siga funcionando en los handlers.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("campos faltantes o inválidos: %s", strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NewValidationError construye el error con los campos reportados.
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}
