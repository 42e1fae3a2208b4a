package repository

import "context"

// Owned es el contrato mínimo de un almacén con alcance por propietario:
// toda fila pertenece a un usuario y solo es visible a través de él.
// Los repos concretos lo parametrizan con su entidad (Product, Customer, Sale).
type Owned[T any] interface {
	// Create persiste la entidad con su UserID ya asignado.
	Create(ctx context.Context, e *T) error
	// ListByOwner devuelve solo las filas del propietario, más recientes primero.
	ListByOwner(ctx context.Context, ownerID string) ([]*T, error)
}

// OwnedMutable añade mutaciones con predicado doble (id + owner):
// una petición sobre el id de otro usuario devuelve ErrNotFound, nunca
// toca datos ajenos ni hace un no-op silencioso.
type OwnedMutable[T any] interface {
	Owned[T]
	Update(ctx context.Context, ownerID string, e *T) error
	Delete(ctx context.Context, ownerID, id string) error
}
