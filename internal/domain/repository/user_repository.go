package repository

import (
	"context"

	"github.com/jcastellr/bizpulse-api/internal/domain/entity"
)

// UserRepository puerto de persistencia de usuarios (almacén de credenciales).
type UserRepository interface {
	// Create persiste el usuario; devuelve domain.ErrEmailAlreadyExists si el email ya existe.
	Create(ctx context.Context, user *entity.User) error
	// GetByEmail devuelve nil, nil si no existe (el caller decide el error).
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
